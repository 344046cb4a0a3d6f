package house

// TokenView is the JSON-facing projection of a Token: the style plus its
// derived color, so external collaborators never need styleToColor.
type TokenView struct {
	Style Style `json:"style"`
	Color Color `json:"color"`
}

// RoomView is the JSON-facing projection of a Room.
type RoomView struct {
	Name        string     `json:"name"`
	WallColor   Color      `json:"wallColor"`
	Lamp        *TokenView `json:"lamp"`
	WallHanging *TokenView `json:"wallHanging"`
	Curio       *TokenView `json:"curio"`
}

// View is the serialized form of a State consumed by external
// collaborators (the HTTP layer and viewer named out of scope in
// spec.md §1).
type View struct {
	NumPlayers int                 `json:"numPlayers"`
	Rooms      []RoomView          `json:"rooms"`
	Layout     map[string][]string `json:"layout"`
}

func tokenView(tok *Token) *TokenView {
	if tok == nil {
		return nil
	}
	return &TokenView{Style: tok.Style, Color: tok.Color()}
}

// View renders the state's serialization view. Rooms are emitted in grid
// order (not sorted), matching the order a player's UI would lay out a
// 2x2 floor plan.
func (s *State) View() View {
	rooms := make([]RoomView, 0, len(s.order))
	for _, name := range s.order {
		room := s.rooms[name]
		rooms = append(rooms, RoomView{
			Name:        room.Name,
			WallColor:   room.WallColor,
			Lamp:        tokenView(room.Slots[Lamp]),
			WallHanging: tokenView(room.Slots[WallHanging]),
			Curio:       tokenView(room.Slots[Curio]),
		})
	}

	layout := make(map[string][]string, len(AllAreas))
	for _, area := range AllAreas {
		names := make([]string, 0, 2)
		for _, r := range s.Area(area) {
			names = append(names, r.Name)
		}
		layout[string(area)] = names
	}

	return View{NumPlayers: s.NumPlayers, Rooms: rooms, Layout: layout}
}
