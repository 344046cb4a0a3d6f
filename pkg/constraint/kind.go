package constraint

// Kind identifies one of the closed catalogue of constraint shapes. The
// catalogue is grouped the way spec documents group it: per-room, per-area,
// counts, global-qualitative, relational, spatial, conditional,
// temperature/funky, and quantity comparisons.
type Kind int

const (
	// Per-room.
	RoomWallColorIs Kind = iota
	RoomWallColorIsNot
	RoomWallWarm
	RoomWallCool
	RoomHasObjectType
	RoomNoObjectType
	RoomHasStyle
	RoomNoStyle
	RoomHasColorObject
	RoomNoColorObject

	// Per-area.
	AreaHasObjectType
	AreaNoObjectType
	AreaHasColorObject
	AreaNoColorObject
	AreaHasStyle
	AreaNoStyle

	// Counts.
	ExactlyNRoomsColor
	AtLeastNObjectType
	AtLeastNColorObjects
	AtLeastNStyleObjects
	AtLeastNWarmObjects
	AtLeastNCoolObjects
	NoColorObjectsInHouse

	// Global qualitative.
	AllObjectTypeSameColor
	AllObjectTypeSameStyle

	// Relational.
	EqualRoomCountsTwoColors
	TypeAImpliesTypeB
	NoRoomMultipleSameStyle

	// Spatial.
	AboveStyleNoWallColor
	BelowStyleNoWallColor
	BesideStyleNoWallColor
	DiagStyleNoWallColor
	DiagRoomsSameWall
	AdjRoomsDiffWall

	// Conditional.
	WallColorForbidsStyle
	WallColorForbidsObjColor
	StylePairNeverCooccur
	TypeRequiresWallColor
	TypeForbidsTypeSameRoom

	// Temperature / funky.
	MoreWarmThanCool
	MoreCoolThanWarm
	WallMatchesObjectAlways
	WallMatchesObjectNever
	ExclusionZone

	// Quantity comparisons.
	ObjectColorCountGtStyleCount
	StyleCountGtColorCount
	MoreTypeAreaThanTypeArea
	ColorCountGtColorCount

	numKinds
)

var kindNames = [numKinds]string{
	RoomWallColorIs:          "ROOM_WALL_COLOR_IS",
	RoomWallColorIsNot:       "ROOM_WALL_COLOR_IS_NOT",
	RoomWallWarm:             "ROOM_WALL_WARM",
	RoomWallCool:             "ROOM_WALL_COOL",
	RoomHasObjectType:        "ROOM_HAS_OBJECT_TYPE",
	RoomNoObjectType:         "ROOM_NO_OBJECT_TYPE",
	RoomHasStyle:             "ROOM_HAS_STYLE",
	RoomNoStyle:              "ROOM_NO_STYLE",
	RoomHasColorObject:       "ROOM_HAS_COLOR_OBJECT",
	RoomNoColorObject:        "ROOM_NO_COLOR_OBJECT",
	AreaHasObjectType:        "AREA_HAS_OBJECT_TYPE",
	AreaNoObjectType:         "AREA_NO_OBJECT_TYPE",
	AreaHasColorObject:       "AREA_HAS_COLOR_OBJECT",
	AreaNoColorObject:        "AREA_NO_COLOR_OBJECT",
	AreaHasStyle:             "AREA_HAS_STYLE",
	AreaNoStyle:              "AREA_NO_STYLE",
	ExactlyNRoomsColor:       "EXACTLY_N_ROOMS_COLOR",
	AtLeastNObjectType:       "AT_LEAST_N_OBJECT_TYPE",
	AtLeastNColorObjects:     "AT_LEAST_N_COLOR_OBJECTS",
	AtLeastNStyleObjects:     "AT_LEAST_N_STYLE_OBJECTS",
	AtLeastNWarmObjects:      "AT_LEAST_N_WARM_OBJECTS",
	AtLeastNCoolObjects:      "AT_LEAST_N_COOL_OBJECTS",
	NoColorObjectsInHouse:    "NO_COLOR_OBJECTS_IN_HOUSE",
	AllObjectTypeSameColor:   "ALL_OBJECT_TYPE_SAME_COLOR",
	AllObjectTypeSameStyle:   "ALL_OBJECT_TYPE_SAME_STYLE",
	EqualRoomCountsTwoColors: "EQUAL_ROOM_COUNTS_TWO_COLORS",
	TypeAImpliesTypeB:        "TYPE_A_IMPLIES_TYPE_B",
	NoRoomMultipleSameStyle:  "NO_ROOM_MULTIPLE_SAME_STYLE",
	AboveStyleNoWallColor:    "ABOVE_STYLE_NO_WALL_COLOR",
	BelowStyleNoWallColor:    "BELOW_STYLE_NO_WALL_COLOR",
	BesideStyleNoWallColor:   "BESIDE_STYLE_NO_WALL_COLOR",
	DiagStyleNoWallColor:     "DIAG_STYLE_NO_WALL_COLOR",
	DiagRoomsSameWall:        "DIAG_ROOMS_SAME_WALL",
	AdjRoomsDiffWall:         "ADJ_ROOMS_DIFF_WALL",
	WallColorForbidsStyle:    "WALL_COLOR_FORBIDS_STYLE",
	WallColorForbidsObjColor: "WALL_COLOR_FORBIDS_OBJ_COLOR",
	StylePairNeverCooccur:    "STYLE_PAIR_NEVER_COOCCUR",
	TypeRequiresWallColor:    "TYPE_REQUIRES_WALL_COLOR",
	TypeForbidsTypeSameRoom:  "TYPE_FORBIDS_TYPE_SAME_ROOM",
	MoreWarmThanCool:         "MORE_WARM_THAN_COOL",
	MoreCoolThanWarm:         "MORE_COOL_THAN_WARM",
	WallMatchesObjectAlways:  "WALL_MATCHES_OBJECT_ALWAYS",
	WallMatchesObjectNever:   "WALL_MATCHES_OBJECT_NEVER",
	ExclusionZone:            "EXCLUSION_ZONE",
	ObjectColorCountGtStyleCount: "OBJECT_COLOR_COUNT_GT_STYLE_COUNT",
	StyleCountGtColorCount:       "STYLE_COUNT_GT_COLOR_COUNT",
	MoreTypeAreaThanTypeArea:     "MORE_TYPE_AREA_THAN_TYPE_AREA",
	ColorCountGtColorCount:       "COLOR_COUNT_GT_COLOR_COUNT",
}

// String returns the catalogue name a human (or a rendered rule's debug
// dump) recognizes, e.g. "ROOM_WALL_COLOR_IS".
func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return "UNKNOWN_KIND"
	}
	return kindNames[k]
}

// negativeKinds is the explicit set spec.md §4.6 requires for the
// assigner's polarity bias: wall-color-is-not, room-no-object-type,
// area-no-*, spatial "no X", conditional forbids, exclusion zone,
// adjacency diff-wall, no-wall-matches.
var negativeKinds = map[Kind]bool{
	RoomWallColorIsNot:       true,
	RoomNoObjectType:         true,
	RoomNoStyle:              true,
	RoomNoColorObject:        true,
	AreaNoObjectType:         true,
	AreaNoColorObject:        true,
	AreaNoStyle:              true,
	NoColorObjectsInHouse:    true,
	AboveStyleNoWallColor:    true,
	BelowStyleNoWallColor:    true,
	BesideStyleNoWallColor:   true,
	DiagStyleNoWallColor:     true,
	AdjRoomsDiffWall:         true,
	WallColorForbidsStyle:    true,
	WallColorForbidsObjColor: true,
	StylePairNeverCooccur:    true,
	TypeForbidsTypeSameRoom:  true,
	ExclusionZone:            true,
	WallMatchesObjectNever:   true,
}

// IsNegative reports whether k belongs to spec.md §4.6's "negative kind"
// set used for the assigner's polarity-diversity bias. All kinds not in the
// set are positive.
func (k Kind) IsNegative() bool {
	return negativeKinds[k]
}
