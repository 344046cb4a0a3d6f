package house

import (
	"sort"
	"testing"
)

func TestNewStateRoomNamesByPlayerCount(t *testing.T) {
	tests := []struct {
		name       string
		numPlayers int
		want       []string
	}{
		{"2 players", 2, Rooms2P},
		{"3 players", 3, Rooms34P},
		{"4 players", 4, Rooms34P},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.numPlayers)
			got := s.RoomNames()
			sort.Strings(got)
			want := append([]string(nil), tt.want...)
			sort.Strings(want)
			if len(got) != len(want) {
				t.Fatalf("RoomNames() = %v, want %v", got, want)
			}
			for i := range got {
				if got[i] != want[i] {
					t.Errorf("RoomNames()[%d] = %q, want %q", i, got[i], want[i])
				}
			}
		})
	}
}

func TestNewStateAllWallsRedAllSlotsEmpty(t *testing.T) {
	s := New(2)
	for _, name := range s.RoomNames() {
		room := s.Room(name)
		if room == nil {
			t.Fatalf("Room(%q) = nil", name)
		}
		if room.WallColor != Red {
			t.Errorf("Room(%q).WallColor = %s, want %s", name, room.WallColor, Red)
		}
		for _, ot := range ObjectTypes {
			if room.HasObjectType(ot) {
				t.Errorf("Room(%q) has object type %s before any placement", name, ot)
			}
		}
	}
}

func TestEveryRoomHasOneDiagonalPartner(t *testing.T) {
	s := New(4)
	for _, name := range s.RoomNames() {
		diag := s.Diagonal(name)
		if diag == nil {
			t.Fatalf("Diagonal(%q) = nil", name)
		}
		if diag.Name == name {
			t.Errorf("Diagonal(%q) returned itself", name)
		}
	}
}

func TestDiagonalPairsCountExactlyTwo(t *testing.T) {
	s := New(4)
	if got := len(s.DiagonalPairs()); got != 2 {
		t.Errorf("len(DiagonalPairs()) = %d, want 2", got)
	}
}

func TestAdjacentPairsAreCanonicallyOrdered(t *testing.T) {
	s := New(4)
	for _, pair := range s.AdjacentPairs() {
		if pair[0] >= pair[1] {
			t.Errorf("adjacent pair %v not canonically ordered", pair)
		}
	}
	for _, pair := range s.DiagonalPairs() {
		if pair[0] >= pair[1] {
			t.Errorf("diagonal pair %v not canonically ordered", pair)
		}
	}
}

func TestAdjacentPairsCountFour(t *testing.T) {
	s := New(4)
	if got := len(s.AdjacentPairs()); got != 4 {
		t.Errorf("len(AdjacentPairs()) = %d, want 4", got)
	}
}

func TestEveryRoomBelongsToOneVerticalAndOneHorizontalArea(t *testing.T) {
	s := New(4)
	for _, name := range s.RoomNames() {
		v := s.VerticalArea(name)
		if v != Upstairs && v != Downstairs {
			t.Errorf("VerticalArea(%q) = %s, want Upstairs or Downstairs", name, v)
		}
		h := s.HorizontalArea(name)
		if h != LeftSide && h != RightSide {
			t.Errorf("HorizontalArea(%q) = %s, want LeftSide or RightSide", name, h)
		}
	}
}

func TestAreaHasExactlyTwoRooms(t *testing.T) {
	s := New(4)
	for _, area := range AllAreas {
		if got := len(s.Area(area)); got != 2 {
			t.Errorf("len(Area(%s)) = %d, want 2", area, got)
		}
	}
}

func TestAboveBelowOffGridReturnsNil(t *testing.T) {
	s := New(2)
	var upstairsRoom, downstairsRoom string
	for _, name := range s.RoomNames() {
		if s.VerticalArea(name) == Upstairs {
			upstairsRoom = name
		} else {
			downstairsRoom = name
		}
	}

	if s.Above(upstairsRoom) != nil {
		t.Errorf("Above(%q) != nil, want nil for the topmost room", upstairsRoom)
	}
	if s.Below(upstairsRoom) == nil {
		t.Errorf("Below(%q) = nil, want non-nil", upstairsRoom)
	}
	if s.Below(downstairsRoom) != nil {
		t.Errorf("Below(%q) != nil, want nil for the bottommost room", downstairsRoom)
	}
	if s.Above(downstairsRoom) == nil {
		t.Errorf("Above(%q) = nil, want non-nil", downstairsRoom)
	}
}

func TestAddObjectSucceedsOnEmptySlot(t *testing.T) {
	s := New(2)
	name := s.RoomNames()[0]
	if !s.AddObject(name, Lamp, Modern) {
		t.Fatal("AddObject() on an empty slot returned false")
	}
	if !s.Room(name).HasObjectType(Lamp) {
		t.Error("room does not report the added object type")
	}
}

func TestAddObjectFailsWhenOccupied(t *testing.T) {
	s := New(2)
	name := s.RoomNames()[0]
	if !s.AddObject(name, Lamp, Modern) {
		t.Fatal("first AddObject() returned false")
	}
	if s.AddObject(name, Lamp, Retro) {
		t.Error("AddObject() on an occupied slot returned true")
	}
	if got := s.Room(name).Token(Lamp).Style; got != Modern {
		t.Errorf("occupied slot's style changed to %s, want %s", got, Modern)
	}
}

func TestRemoveObjectReturnsPreviousToken(t *testing.T) {
	s := New(2)
	name := s.RoomNames()[0]
	s.AddObject(name, Curio, Antique)

	prev := s.RemoveObject(name, Curio)
	if prev == nil {
		t.Fatal("RemoveObject() = nil")
	}
	if prev.Style != Antique {
		t.Errorf("removed token style = %s, want %s", prev.Style, Antique)
	}
	if s.Room(name).HasObjectType(Curio) {
		t.Error("room still reports the removed object type")
	}
}

func TestRemoveObjectOnEmptySlotReturnsNil(t *testing.T) {
	s := New(2)
	name := s.RoomNames()[0]
	if s.RemoveObject(name, Curio) != nil {
		t.Error("RemoveObject() on an empty slot != nil")
	}
}

func TestSwapObjectReturnsPreviousAndChangesStyle(t *testing.T) {
	s := New(2)
	name := s.RoomNames()[0]
	s.AddObject(name, WallHanging, Modern)

	prev := s.SwapObject(name, WallHanging, Unusual)
	if prev == nil {
		t.Fatal("SwapObject() = nil")
	}
	if prev.Style != Modern {
		t.Errorf("previous style = %s, want %s", prev.Style, Modern)
	}
	if got := s.Room(name).Token(WallHanging).Style; got != Unusual {
		t.Errorf("new style = %s, want %s", got, Unusual)
	}
}

func TestSwapObjectOnEmptySlotFails(t *testing.T) {
	s := New(2)
	name := s.RoomNames()[0]
	if s.SwapObject(name, WallHanging, Unusual) != nil {
		t.Error("SwapObject() on an empty slot != nil")
	}
}

func TestPaintRoomReturnsPreviousColor(t *testing.T) {
	s := New(2)
	name := s.RoomNames()[0]
	prev, ok := s.PaintRoom(name, Blue)
	if !ok {
		t.Fatal("PaintRoom() returned ok=false")
	}
	if prev != Red {
		t.Errorf("previous color = %s, want %s", prev, Red)
	}
	if got := s.Room(name).WallColor; got != Blue {
		t.Errorf("new wall color = %s, want %s", got, Blue)
	}
}

func TestPaintUnknownRoomFails(t *testing.T) {
	s := New(2)
	if _, ok := s.PaintRoom("Attic", Blue); ok {
		t.Error("PaintRoom() on an unknown room returned ok=true")
	}
}

func TestDeepCopyIsIndependent(t *testing.T) {
	s := New(2)
	name := s.RoomNames()[0]
	s.AddObject(name, Lamp, Modern)

	cp := s.DeepCopy()
	cp.SwapObject(name, Lamp, Retro)

	if got := s.Room(name).Token(Lamp).Style; got != Modern {
		t.Errorf("original state's style changed to %s, want %s", got, Modern)
	}
	if got := cp.Room(name).Token(Lamp).Style; got != Retro {
		t.Errorf("copy's style = %s, want %s", got, Retro)
	}
}

func TestFingerprintEqualForEqualStates(t *testing.T) {
	a := New(2)
	b := New(2)
	if a.Fingerprint() != b.Fingerprint() {
		t.Fatal("two fresh states have different fingerprints")
	}

	name := a.RoomNames()[0]
	a.AddObject(name, Lamp, Modern)
	if a.Fingerprint() == b.Fingerprint() {
		t.Error("fingerprints match after one state diverged")
	}

	b.AddObject(name, Lamp, Modern)
	if a.Fingerprint() != b.Fingerprint() {
		t.Error("fingerprints differ after both states converged")
	}
}

func TestMoveInversionRestoresFingerprint(t *testing.T) {
	s := New(2)
	name := "Kitchen"
	if s.Room(name) == nil {
		name = s.RoomNames()[0]
	}
	s.AddObject(name, Lamp, Modern)
	before := s.Fingerprint()

	move := Move{Kind: MoveSwap, Room: name, Type: Lamp, OldStyle: Modern, NewStyle: Retro}
	if !move.Apply(s) {
		t.Fatal("move failed to apply")
	}
	if s.Fingerprint() == before {
		t.Fatal("fingerprint unchanged after applying the move")
	}

	if !move.Inverse().Apply(s) {
		t.Fatal("inverse move failed to apply")
	}
	if got := s.Fingerprint(); got != before {
		t.Errorf("fingerprint after round trip = %s, want %s", got, before)
	}
}

func TestCountingHelpers(t *testing.T) {
	s := New(2)
	names := s.RoomNames()
	s.PaintRoom(names[0], Blue)
	s.PaintRoom(names[1], Blue)
	s.AddObject(names[0], Lamp, Modern)  // Lamp Modern -> Red
	s.AddObject(names[1], Curio, Modern) // Curio Modern -> Blue

	checks := []struct {
		name string
		got  int
		want int
	}{
		{"WallColorCount(Blue)", s.WallColorCount(Blue), 2},
		{"ObjectTypeCount(Lamp)", s.ObjectTypeCount(Lamp), 1},
		{"ObjectTypeCount(Curio)", s.ObjectTypeCount(Curio), 1},
		{"ObjectTypeCount(WallHanging)", s.ObjectTypeCount(WallHanging), 0},
		{"TotalObjectCount()", s.TotalObjectCount(), 2},
		{"ObjectStyleCount(Modern)", s.ObjectStyleCount(Modern), 2},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %d, want %d", c.name, c.got, c.want)
		}
	}
}

func TestColorForAndStyleForAreInverse(t *testing.T) {
	for _, ot := range ObjectTypes {
		for _, st := range Styles {
			c := ColorFor(ot, st)
			gotStyle, ok := StyleFor(ot, c)
			if !ok {
				t.Fatalf("StyleFor(%s, %s) returned ok=false", ot, c)
			}
			if gotStyle != st {
				t.Errorf("StyleFor(%s, ColorFor(%s, %s)) = %s, want %s", ot, ot, st, gotStyle, st)
			}
		}
	}
}

func TestViewRoundTripsTokenColors(t *testing.T) {
	s := New(2)
	name := s.RoomNames()[0]
	s.AddObject(name, Lamp, Antique)

	view := s.View()
	if len(view.Rooms) != 4 {
		t.Fatalf("len(View().Rooms) = %d, want 4", len(view.Rooms))
	}

	for _, rv := range view.Rooms {
		if rv.Name == name {
			if rv.Lamp == nil {
				t.Fatal("view's room has no Lamp token")
			}
			if rv.Lamp.Style != Antique {
				t.Errorf("view Lamp.Style = %s, want %s", rv.Lamp.Style, Antique)
			}
			if want := ColorFor(Lamp, Antique); rv.Lamp.Color != want {
				t.Errorf("view Lamp.Color = %s, want %s", rv.Lamp.Color, want)
			}
		}
	}
}

func TestViewLayoutCoversAllAreas(t *testing.T) {
	s := New(4)
	view := s.View()
	for _, area := range AllAreas {
		if got := len(view.Layout[string(area)]); got != 2 {
			t.Errorf("len(View().Layout[%q]) = %d, want 2", area, got)
		}
	}
}
