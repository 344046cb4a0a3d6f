package constraint

import "scenariogen/pkg/house"

// Evaluate is the single exhaustive dispatch point for every catalogue
// kind: a total, pure function of (c, s) with no side effects. Reaching the
// default arm means c.Kind is not one of the declared constants — a
// programming error, since the catalogue is closed — and it panics rather
// than returning a zero value that would silently corrupt a caller's logic.
func Evaluate(c Constraint, s *house.State) bool {
	p := c.Params

	switch c.Kind {

	// Per-room.
	case RoomWallColorIs:
		room := s.Room(p.Room)
		return room != nil && room.WallColor == p.Color
	case RoomWallColorIsNot:
		room := s.Room(p.Room)
		return room != nil && room.WallColor != p.Color
	case RoomWallWarm:
		room := s.Room(p.Room)
		return room != nil && room.WallColor.Warm()
	case RoomWallCool:
		room := s.Room(p.Room)
		return room != nil && room.WallColor.Cool()
	case RoomHasObjectType:
		room := s.Room(p.Room)
		return room != nil && room.HasObjectType(p.Type)
	case RoomNoObjectType:
		room := s.Room(p.Room)
		return room != nil && !room.HasObjectType(p.Type)
	case RoomHasStyle:
		room := s.Room(p.Room)
		return room != nil && room.HasStyle(p.Style)
	case RoomNoStyle:
		room := s.Room(p.Room)
		return room != nil && !room.HasStyle(p.Style)
	case RoomHasColorObject:
		room := s.Room(p.Room)
		return room != nil && room.HasColorObject(p.Color)
	case RoomNoColorObject:
		room := s.Room(p.Room)
		return room != nil && !room.HasColorObject(p.Color)

	// Per-area.
	case AreaHasObjectType:
		for _, room := range s.Area(p.Area) {
			if room.HasObjectType(p.Type) {
				return true
			}
		}
		return false
	case AreaNoObjectType:
		for _, room := range s.Area(p.Area) {
			if room.HasObjectType(p.Type) {
				return false
			}
		}
		return true
	case AreaHasColorObject:
		for _, room := range s.Area(p.Area) {
			if room.HasColorObject(p.Color) {
				return true
			}
		}
		return false
	case AreaNoColorObject:
		for _, room := range s.Area(p.Area) {
			if room.HasColorObject(p.Color) {
				return false
			}
		}
		return true
	case AreaHasStyle:
		for _, room := range s.Area(p.Area) {
			if room.HasStyle(p.Style) {
				return true
			}
		}
		return false
	case AreaNoStyle:
		for _, room := range s.Area(p.Area) {
			if room.HasStyle(p.Style) {
				return false
			}
		}
		return true

	// Counts.
	case ExactlyNRoomsColor:
		return s.WallColorCount(p.Color) == p.N
	case AtLeastNObjectType:
		return s.ObjectTypeCount(p.Type) >= p.N
	case AtLeastNColorObjects:
		return s.ObjectColorCount(p.Color) >= p.N
	case AtLeastNStyleObjects:
		return s.ObjectStyleCount(p.Style) >= p.N
	case AtLeastNWarmObjects:
		return s.WarmObjectCount() >= p.N
	case AtLeastNCoolObjects:
		return s.CoolObjectCount() >= p.N
	case NoColorObjectsInHouse:
		return s.ObjectColorCount(p.Color) == 0

	// Global qualitative: vacuously true when fewer than two instances.
	case AllObjectTypeSameColor:
		colors := collect(s, p.Type, func(t *house.Token) any { return t.Color() })
		return len(colors) < 2 || allEqual(colors)
	case AllObjectTypeSameStyle:
		styles := collect(s, p.Type, func(t *house.Token) any { return t.Style })
		return len(styles) < 2 || allEqual(styles)

	// Relational.
	case EqualRoomCountsTwoColors:
		return s.WallColorCount(p.Color) == s.WallColorCount(p.ColorB)
	case TypeAImpliesTypeB:
		for _, name := range s.RoomNames() {
			room := s.Room(name)
			if room.HasObjectType(p.Type) && !room.HasObjectType(p.TypeB) {
				return false
			}
		}
		return true
	case NoRoomMultipleSameStyle:
		for _, name := range s.RoomNames() {
			room := s.Room(name)
			n := 0
			for _, ot := range house.ObjectTypes {
				if tok := room.Token(ot); tok != nil && tok.Style == p.Style {
					n++
				}
			}
			if n > 1 {
				return false
			}
		}
		return true

	// Spatial: quantify over rooms that have the style; vacuously true if
	// no room has it.
	case AboveStyleNoWallColor:
		return noPartnerColor(s, p.Style, p.Color, s.Above)
	case BelowStyleNoWallColor:
		return noPartnerColor(s, p.Style, p.Color, s.Below)
	case BesideStyleNoWallColor:
		return noPartnerColor(s, p.Style, p.Color, s.Beside)
	case DiagStyleNoWallColor:
		return noPartnerColor(s, p.Style, p.Color, s.Diagonal)
	case DiagRoomsSameWall:
		for _, pair := range s.DiagonalPairs() {
			if s.Room(pair[0]).WallColor != s.Room(pair[1]).WallColor {
				return false
			}
		}
		return true
	case AdjRoomsDiffWall:
		for _, pair := range s.AdjacentPairs() {
			if s.Room(pair[0]).WallColor == s.Room(pair[1]).WallColor {
				return false
			}
		}
		return true

	// Conditional.
	case WallColorForbidsStyle:
		for _, name := range s.RoomNames() {
			room := s.Room(name)
			if room.WallColor == p.Color && room.HasStyle(p.Style) {
				return false
			}
		}
		return true
	case WallColorForbidsObjColor:
		for _, name := range s.RoomNames() {
			room := s.Room(name)
			if room.WallColor == p.Color && room.HasColorObject(p.ColorB) {
				return false
			}
		}
		return true
	case StylePairNeverCooccur:
		for _, name := range s.RoomNames() {
			room := s.Room(name)
			if room.HasStyle(p.Style) && room.HasStyle(p.StyleB) {
				return false
			}
		}
		return true
	case TypeRequiresWallColor:
		for _, name := range s.RoomNames() {
			room := s.Room(name)
			if room.HasObjectType(p.Type) && room.WallColor != p.Color {
				return false
			}
		}
		return true
	case TypeForbidsTypeSameRoom:
		for _, name := range s.RoomNames() {
			room := s.Room(name)
			if room.HasObjectType(p.Type) && room.HasObjectType(p.TypeB) {
				return false
			}
		}
		return true

	// Temperature / funky.
	case MoreWarmThanCool:
		return s.WarmObjectCount() > s.CoolObjectCount()
	case MoreCoolThanWarm:
		return s.CoolObjectCount() > s.WarmObjectCount()
	case WallMatchesObjectAlways:
		for _, name := range s.RoomNames() {
			room := s.Room(name)
			if room.HasObject() && !room.HasColorObject(room.WallColor) {
				return false
			}
		}
		return true
	case WallMatchesObjectNever:
		for _, name := range s.RoomNames() {
			room := s.Room(name)
			if room.HasColorObject(room.WallColor) {
				return false
			}
		}
		return true
	case ExclusionZone:
		n := 0
		for _, name := range s.RoomNames() {
			room := s.Room(name)
			if room.WallColor == p.Color && room.HasObjectType(p.Type) {
				n++
			}
		}
		return n <= 1

	// Quantity comparisons.
	case ObjectColorCountGtStyleCount:
		return s.ObjectColorCount(p.Color) > s.ObjectStyleCount(p.Style)
	case StyleCountGtColorCount:
		return s.ObjectStyleCount(p.Style) > s.ObjectColorCount(p.Color)
	case MoreTypeAreaThanTypeArea:
		return s.AreaObjectTypeCount(p.Area, p.Type) > s.AreaObjectTypeCount(p.AreaB, p.TypeB)
	case ColorCountGtColorCount:
		return s.ObjectColorCount(p.Color) > s.ObjectColorCount(p.ColorB)

	default:
		panic("constraint: unknown Kind in Evaluate")
	}
}

// noPartnerColor implements the four directional spatial predicates: for
// every room that has style s, its partner in the given direction (if any)
// must not be painted color. Vacuously true if no room has the style, or if
// a styled room has no partner in that direction (edge of the grid).
func noPartnerColor(s *house.State, style house.Style, color house.Color, partner func(string) *house.Room) bool {
	for _, name := range s.RoomNames() {
		room := s.Room(name)
		if !room.HasStyle(style) {
			continue
		}
		p := partner(name)
		if p != nil && p.WallColor == color {
			return false
		}
	}
	return true
}

func collect(s *house.State, t house.ObjectType, extract func(*house.Token) any) []any {
	var out []any
	for _, name := range s.RoomNames() {
		if tok := s.Room(name).Token(t); tok != nil {
			out = append(out, extract(tok))
		}
	}
	return out
}

func allEqual(xs []any) bool {
	for _, x := range xs[1:] {
		if x != xs[0] {
			return false
		}
	}
	return true
}
