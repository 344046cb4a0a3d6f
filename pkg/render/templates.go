package render

import "scenariogen/pkg/constraint"

// kindTemplates holds the neutral-voice sentence for every catalogue kind.
// Every template ends with a period and uses "must"/"must not"/"may"/"may not"
// as its modal verb so the voice transforms in transform.go have something to
// rewrite.
var kindTemplates = map[constraint.Kind]string{
	constraint.RoomWallColorIs:      "The {room} wall must be painted {color}.",
	constraint.RoomWallColorIsNot:   "The {room} wall must not be painted {color}.",
	constraint.RoomWallWarm:         "The {room} wall must be a warm color.",
	constraint.RoomWallCool:         "The {room} wall must be a cool color.",
	constraint.RoomHasObjectType:    "The {room} must contain a {objTypeLower}.",
	constraint.RoomNoObjectType:     "The {room} must not contain a {objTypeLower}.",
	constraint.RoomHasStyle:         "The {room} must contain a {styleLower} object.",
	constraint.RoomNoStyle:          "The {room} must not contain a {styleLower} object.",
	constraint.RoomHasColorObject:   "The {room} must contain a {color} object.",
	constraint.RoomNoColorObject:    "The {room} must not contain a {color} object.",

	constraint.AreaHasObjectType:  "The {area} must contain a {objTypeLower}.",
	constraint.AreaNoObjectType:   "The {area} must not contain a {objTypeLower}.",
	constraint.AreaHasColorObject: "The {area} must contain a {color} object.",
	constraint.AreaNoColorObject:  "The {area} must not contain a {color} object.",
	constraint.AreaHasStyle:       "The {area} must contain a {styleLower} object.",
	constraint.AreaNoStyle:        "The {area} must not contain a {styleLower} object.",

	constraint.ExactlyNRoomsColor:    "Exactly {n} {roomWord} must have {color} walls.",
	constraint.AtLeastNObjectType:    "At least {n} {objTypePlural} must be placed.",
	constraint.AtLeastNColorObjects:  "At least {n} {color} {objWord} must be placed.",
	constraint.AtLeastNStyleObjects:  "At least {n} {styleLower} {objWord} must be placed.",
	constraint.AtLeastNWarmObjects:   "At least {n} warm-colored {objWord} must be placed.",
	constraint.AtLeastNCoolObjects:   "At least {n} cool-colored {objWord} must be placed.",
	constraint.NoColorObjectsInHouse: "No {color} objects may be placed anywhere in the house.",

	constraint.AllObjectTypeSameColor: "Every {objTypeLower} must be {color}.",
	constraint.AllObjectTypeSameStyle: "Every {objTypeLower} must be {styleLower}.",

	constraint.EqualRoomCountsTwoColors: "The number of {color} rooms must equal the number of {colorB} rooms.",
	constraint.TypeAImpliesTypeB:        "Every room with a {objTypeLower} must also contain a {objTypeBLower}.",
	constraint.NoRoomMultipleSameStyle:  "No room may contain more than one {styleLower} object.",

	constraint.AboveStyleNoWallColor:  "The room above any {styleLower} object must not be painted {color}.",
	constraint.BelowStyleNoWallColor:  "The room below any {styleLower} object must not be painted {color}.",
	constraint.BesideStyleNoWallColor: "The room beside any {styleLower} object must not be painted {color}.",
	constraint.DiagStyleNoWallColor:   "The room diagonal from any {styleLower} object must not be painted {color}.",
	constraint.DiagRoomsSameWall:      "Diagonal rooms must share the same wall color.",
	constraint.AdjRoomsDiffWall:       "Adjacent rooms must never share the same wall color.",

	constraint.WallColorForbidsStyle:    "A room painted {color} must not contain a {styleLower} object.",
	constraint.WallColorForbidsObjColor: "A room painted {color} must not contain a {colorB} object.",
	constraint.StylePairNeverCooccur:    "A room may not contain both a {styleLower} object and a {styleBLower} object.",
	constraint.TypeRequiresWallColor:    "Any room with a {objTypeLower} must be painted {color}.",
	constraint.TypeForbidsTypeSameRoom:  "A room with a {objTypeLower} must not also contain a {objTypeBLower}.",

	constraint.MoreWarmThanCool:        "There must be more warm-colored objects than cool-colored objects.",
	constraint.MoreCoolThanWarm:        "There must be more cool-colored objects than warm-colored objects.",
	constraint.WallMatchesObjectAlways: "Every room with an object must contain one matching its wall color.",
	constraint.WallMatchesObjectNever:  "No room may contain an object matching its own wall color.",
	constraint.ExclusionZone:           "At most one room painted {color} may contain a {objTypeLower}.",

	constraint.ObjectColorCountGtStyleCount: "There must be more {color} objects than {styleLower} objects.",
	constraint.StyleCountGtColorCount:       "There must be more {styleLower} objects than {color} objects.",
	constraint.MoreTypeAreaThanTypeArea:     "The {area} must have more {objTypeLower} than the {areaB} has {objTypeBLower}.",
	constraint.ColorCountGtColorCount:       "There must be more {color} objects than {colorB} objects.",
}
