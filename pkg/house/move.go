package house

import "fmt"

// MoveKind identifies one of the four atomic edit kinds.
type MoveKind int

const (
	MovePaint MoveKind = iota
	MoveSwap
	MoveRemove
	MoveAdd
)

func (k MoveKind) String() string {
	switch k {
	case MovePaint:
		return "paint"
	case MoveSwap:
		return "swap"
	case MoveRemove:
		return "remove"
	case MoveAdd:
		return "add"
	default:
		return "unknown"
	}
}

// Move is a single atomic edit: paint, swap, remove, or add. Only the
// fields relevant to Kind are meaningful; the rest are zero.
type Move struct {
	Kind MoveKind
	Room string
	Type ObjectType

	OldColor Color // paint
	NewColor Color // paint

	OldStyle Style // swap, remove
	NewStyle Style // swap, add
}

// Apply performs the move against s, returning false (state unchanged) if
// the move cannot legally be applied — target slot already occupied for
// Add, target slot empty for Swap/Remove, or room missing.
func (m Move) Apply(s *State) bool {
	switch m.Kind {
	case MovePaint:
		_, ok := s.PaintRoom(m.Room, m.NewColor)
		return ok
	case MoveSwap:
		return s.SwapObject(m.Room, m.Type, m.NewStyle) != nil
	case MoveRemove:
		return s.RemoveObject(m.Room, m.Type) != nil
	case MoveAdd:
		return s.AddObject(m.Room, m.Type, m.NewStyle)
	default:
		panic("house: unknown MoveKind")
	}
}

// Inverse returns the move that undoes m. Composing m with its inverse
// leaves a state's fingerprint unchanged.
func (m Move) Inverse() Move {
	switch m.Kind {
	case MovePaint:
		return Move{Kind: MovePaint, Room: m.Room, OldColor: m.NewColor, NewColor: m.OldColor}
	case MoveSwap:
		return Move{Kind: MoveSwap, Room: m.Room, Type: m.Type, OldStyle: m.NewStyle, NewStyle: m.OldStyle}
	case MoveRemove:
		return Move{Kind: MoveAdd, Room: m.Room, Type: m.Type, NewStyle: m.OldStyle}
	case MoveAdd:
		return Move{Kind: MoveRemove, Room: m.Room, Type: m.Type, OldStyle: m.NewStyle}
	default:
		panic("house: unknown MoveKind")
	}
}

// Describe renders the move the way perturbationLog entries are recorded,
// e.g. "Paint Kitchen: Red -> Blue" or
// "Swap Modern Red Lamp -> Retro Blue Lamp in Bedroom".
func (m Move) Describe() string {
	switch m.Kind {
	case MovePaint:
		return fmt.Sprintf("Paint %s: %s -> %s", m.Room, m.OldColor, m.NewColor)
	case MoveSwap:
		oldColor := ColorFor(m.Type, m.OldStyle)
		newColor := ColorFor(m.Type, m.NewStyle)
		return fmt.Sprintf("Swap %s %s %s -> %s %s %s in %s",
			m.OldStyle, oldColor, m.Type, m.NewStyle, newColor, m.Type, m.Room)
	case MoveRemove:
		color := ColorFor(m.Type, m.OldStyle)
		return fmt.Sprintf("Remove %s %s %s from %s", m.OldStyle, color, m.Type, m.Room)
	case MoveAdd:
		color := ColorFor(m.Type, m.NewStyle)
		return fmt.Sprintf("Add %s %s %s to %s", m.NewStyle, color, m.Type, m.Room)
	default:
		panic("house: unknown MoveKind")
	}
}
