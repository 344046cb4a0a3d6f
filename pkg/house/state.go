package house

import (
	"sort"
	"strings"
)

// Rooms2P are the four room names used for a 2-player house.
var Rooms2P = []string{"Bathroom", "Bedroom", "Living Room", "Kitchen"}

// Rooms34P are the four room names used for 3- or 4-player houses.
var Rooms34P = []string{"Bedroom A", "Bedroom B", "Living Room", "Kitchen"}

// RoomNamesFor returns the canonical room-name list for a player count,
// per spec.md §3: 2 players get Rooms2P, 3 or 4 players get Rooms34P.
func RoomNamesFor(numPlayers int) []string {
	if numPlayers == 2 {
		return append([]string(nil), Rooms2P...)
	}
	return append([]string(nil), Rooms34P...)
}

// Position is a 2x2 grid coordinate. Row 0 is upstairs, row 1 downstairs;
// column 0 is the left side, column 1 the right side.
type Position struct {
	Row, Col int
}

// AreaName identifies one of the four named areas.
type AreaName string

const (
	Upstairs   AreaName = "upstairs"
	Downstairs AreaName = "downstairs"
	LeftSide   AreaName = "left side"
	RightSide  AreaName = "right side"
)

// State is the full house state: four rooms placed on a 2x2 grid.
type State struct {
	NumPlayers int

	order     []string // room names in grid order: (0,0),(0,1),(1,0),(1,1)
	rooms     map[string]*Room
	positions map[string]Position
}

// New constructs a fresh house for numPlayers, all walls Red and all slots
// empty. numPlayers must be 2, 3, or 4; behavior for other values is the
// caller's responsibility per spec.md §7.
func New(numPlayers int) *State {
	names := RoomNamesFor(numPlayers)

	s := &State{
		NumPlayers: numPlayers,
		order:      append([]string(nil), names...),
		rooms:      make(map[string]*Room, len(names)),
		positions:  make(map[string]Position, len(names)),
	}

	grid := []Position{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	for i, name := range names {
		s.rooms[name] = newRoom(name)
		s.positions[name] = grid[i]
	}
	return s
}

// RoomNames returns the four room names in grid order (not sorted).
func (s *State) RoomNames() []string {
	return append([]string(nil), s.order...)
}

// SortedRoomNames returns the four room names in lexicographic order, the
// canonical order Fingerprint and pair-enumeration use.
func (s *State) SortedRoomNames() []string {
	names := append([]string(nil), s.order...)
	sort.Strings(names)
	return names
}

// Room returns the named room, or nil if no such room exists in this
// house.
func (s *State) Room(name string) *Room {
	return s.rooms[name]
}

// PositionOf returns the grid position of the named room.
func (s *State) PositionOf(name string) (Position, bool) {
	p, ok := s.positions[name]
	return p, ok
}

func (s *State) roomAt(p Position) *Room {
	for _, name := range s.order {
		if s.positions[name] == p {
			return s.rooms[name]
		}
	}
	return nil
}

// Above returns the room directly above name, or nil if name is already
// upstairs (off the top of the grid).
func (s *State) Above(name string) *Room {
	p, ok := s.positions[name]
	if !ok || p.Row == 0 {
		return nil
	}
	return s.roomAt(Position{p.Row - 1, p.Col})
}

// Below returns the room directly below name, or nil if name is already
// downstairs.
func (s *State) Below(name string) *Room {
	p, ok := s.positions[name]
	if !ok || p.Row == 1 {
		return nil
	}
	return s.roomAt(Position{p.Row + 1, p.Col})
}

// Beside returns the room on the other side of the same floor.
func (s *State) Beside(name string) *Room {
	p, ok := s.positions[name]
	if !ok {
		return nil
	}
	return s.roomAt(Position{p.Row, 1 - p.Col})
}

// Diagonal returns name's single diagonal partner.
func (s *State) Diagonal(name string) *Room {
	p, ok := s.positions[name]
	if !ok {
		return nil
	}
	return s.roomAt(Position{1 - p.Row, 1 - p.Col})
}

// VerticalArea returns Upstairs or Downstairs for the named room.
func (s *State) VerticalArea(name string) AreaName {
	if s.positions[name].Row == 0 {
		return Upstairs
	}
	return Downstairs
}

// HorizontalArea returns LeftSide or RightSide for the named room.
func (s *State) HorizontalArea(name string) AreaName {
	if s.positions[name].Col == 0 {
		return LeftSide
	}
	return RightSide
}

// Area returns the rooms belonging to the named area.
func (s *State) Area(area AreaName) []*Room {
	var out []*Room
	for _, name := range s.order {
		switch area {
		case Upstairs, Downstairs:
			if s.VerticalArea(name) == area {
				out = append(out, s.rooms[name])
			}
		case LeftSide, RightSide:
			if s.HorizontalArea(name) == area {
				out = append(out, s.rooms[name])
			}
		}
	}
	return out
}

// AllAreas lists the four area names in a fixed order.
var AllAreas = []AreaName{Upstairs, Downstairs, LeftSide, RightSide}

// AdjacentPairs enumerates every ROOK-adjacent room pair exactly once,
// each pair canonically ordered by lexicographic room name.
func (s *State) AdjacentPairs() [][2]string {
	return s.pairsWhere(func(a, b Position) bool {
		return (a.Row == b.Row && abs(a.Col-b.Col) == 1) ||
			(a.Col == b.Col && abs(a.Row-b.Row) == 1)
	})
}

// DiagonalPairs enumerates the two diagonal room pairs exactly once, each
// canonically ordered by lexicographic room name.
func (s *State) DiagonalPairs() [][2]string {
	return s.pairsWhere(func(a, b Position) bool {
		return abs(a.Row-b.Row) == 1 && abs(a.Col-b.Col) == 1
	})
}

func (s *State) pairsWhere(match func(a, b Position) bool) [][2]string {
	names := s.SortedRoomNames()
	var out [][2]string
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			if match(s.positions[names[i]], s.positions[names[j]]) {
				out = append(out, [2]string{names[i], names[j]})
			}
		}
	}
	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// WallColorCount returns the number of rooms whose wall is painted c.
func (s *State) WallColorCount(c Color) int {
	n := 0
	for _, name := range s.order {
		if s.rooms[name].WallColor == c {
			n++
		}
	}
	return n
}

// DistinctWallColors returns the number of distinct wall colors currently
// in use across the house.
func (s *State) DistinctWallColors() int {
	seen := map[Color]bool{}
	for _, name := range s.order {
		seen[s.rooms[name].WallColor] = true
	}
	return len(seen)
}

// ObjectColorCount returns the number of placed tokens with color c.
func (s *State) ObjectColorCount(c Color) int {
	n := 0
	s.forEachToken(func(_ *Room, tok *Token) {
		if tok.Color() == c {
			n++
		}
	})
	return n
}

// ObjectStyleCount returns the number of placed tokens with style st.
func (s *State) ObjectStyleCount(st Style) int {
	n := 0
	s.forEachToken(func(_ *Room, tok *Token) {
		if tok.Style == st {
			n++
		}
	})
	return n
}

// ObjectTypeCount returns the number of rooms where type t is present
// (equivalently, the number of placed tokens of type t, since at most one
// instance of each type exists per room).
func (s *State) ObjectTypeCount(t ObjectType) int {
	n := 0
	for _, name := range s.order {
		if s.rooms[name].HasObjectType(t) {
			n++
		}
	}
	return n
}

// WarmObjectCount returns the number of placed tokens whose color is warm.
func (s *State) WarmObjectCount() int {
	n := 0
	s.forEachToken(func(_ *Room, tok *Token) {
		if tok.Color().Warm() {
			n++
		}
	})
	return n
}

// CoolObjectCount returns the number of placed tokens whose color is cool.
func (s *State) CoolObjectCount() int {
	n := 0
	s.forEachToken(func(_ *Room, tok *Token) {
		if tok.Color().Cool() {
			n++
		}
	})
	return n
}

// TotalObjectCount returns the number of placed tokens across the house.
func (s *State) TotalObjectCount() int {
	n := 0
	s.forEachToken(func(_ *Room, _ *Token) { n++ })
	return n
}

func (s *State) forEachToken(fn func(room *Room, tok *Token)) {
	for _, name := range s.order {
		room := s.rooms[name]
		for _, t := range ObjectTypes {
			if tok := room.Slots[t]; tok != nil {
				fn(room, tok)
			}
		}
	}
}

// AreaObjectTypeCount returns the number of rooms in area that have an
// object of type t (at most one per room, so this is also the number of
// matching tokens in the area).
func (s *State) AreaObjectTypeCount(area AreaName, t ObjectType) int {
	n := 0
	for _, room := range s.Area(area) {
		if room.HasObjectType(t) {
			n++
		}
	}
	return n
}

// AddObject places a token in roomName's slot for t. It fails (and leaves
// the state unchanged) if the room doesn't exist or the slot is already
// occupied.
func (s *State) AddObject(roomName string, t ObjectType, style Style) bool {
	room := s.rooms[roomName]
	if room == nil || room.Slots[t] != nil {
		return false
	}
	room.Slots[t] = &Token{Type: t, Style: style}
	return true
}

// RemoveObject clears roomName's slot for t, returning the token that was
// there (nil if the slot was already empty or the room doesn't exist).
func (s *State) RemoveObject(roomName string, t ObjectType) *Token {
	room := s.rooms[roomName]
	if room == nil {
		return nil
	}
	prev := room.Slots[t]
	if prev == nil {
		return nil
	}
	delete(room.Slots, t)
	return prev
}

// SwapObject changes the style of the token in roomName's slot for t,
// returning the previous token. It fails (returns nil, leaves state
// unchanged) if the slot is empty or the room doesn't exist.
func (s *State) SwapObject(roomName string, t ObjectType, newStyle Style) *Token {
	room := s.rooms[roomName]
	if room == nil || room.Slots[t] == nil {
		return nil
	}
	prev := *room.Slots[t]
	room.Slots[t] = &Token{Type: t, Style: newStyle}
	return &prev
}

// PaintRoom repaints roomName's walls, returning the previous color. The
// returned bool is false (state unchanged) if the room doesn't exist.
func (s *State) PaintRoom(roomName string, newColor Color) (Color, bool) {
	room := s.rooms[roomName]
	if room == nil {
		return "", false
	}
	prev := room.WallColor
	room.WallColor = newColor
	return prev, true
}

// DeepCopy returns an independent copy of the state.
func (s *State) DeepCopy() *State {
	cp := &State{
		NumPlayers: s.NumPlayers,
		order:      append([]string(nil), s.order...),
		rooms:      make(map[string]*Room, len(s.rooms)),
		positions:  make(map[string]Position, len(s.positions)),
	}
	for name, room := range s.rooms {
		cp.rooms[name] = room.deepCopy()
	}
	for name, pos := range s.positions {
		cp.positions[name] = pos
	}
	return cp
}

// Fingerprint returns a canonical string key for the state: rooms in
// lexicographic order, each contributing its wall color followed by the
// style of each of its three slots in fixed type order (empty slots
// contribute an empty string). Two fingerprints are equal iff the states
// are semantically equal.
func (s *State) Fingerprint() string {
	var b strings.Builder
	for _, name := range s.SortedRoomNames() {
		room := s.rooms[name]
		b.WriteString(string(room.WallColor))
		b.WriteByte('|')
		for _, t := range ObjectTypes {
			if tok := room.Slots[t]; tok != nil {
				b.WriteString(string(tok.Style))
			}
			b.WriteByte(',')
		}
		b.WriteByte(';')
	}
	return b.String()
}
