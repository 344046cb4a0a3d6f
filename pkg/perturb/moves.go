package perturb

import "scenariogen/pkg/house"

// enumerateMoves lists every legal move of an allowed kind against s's
// current layout: a paint to each other color, a swap to each other style
// for an occupied slot, a remove for an occupied slot, or an add of each
// style for an empty slot.
func enumerateMoves(s *house.State, cfg Config) []house.Move {
	var out []house.Move
	for _, name := range s.RoomNames() {
		room := s.Room(name)

		if cfg.allows(house.MovePaint) {
			for _, c := range house.Colors {
				if c == room.WallColor {
					continue
				}
				out = append(out, house.Move{Kind: house.MovePaint, Room: name, OldColor: room.WallColor, NewColor: c})
			}
		}

		for _, t := range house.ObjectTypes {
			tok := room.Token(t)
			if tok != nil {
				if cfg.allows(house.MoveSwap) {
					for _, st := range house.Styles {
						if st == tok.Style {
							continue
						}
						out = append(out, house.Move{Kind: house.MoveSwap, Room: name, Type: t, OldStyle: tok.Style, NewStyle: st})
					}
				}
				if cfg.allows(house.MoveRemove) {
					out = append(out, house.Move{Kind: house.MoveRemove, Room: name, Type: t, OldStyle: tok.Style})
				}
			} else if cfg.allows(house.MoveAdd) {
				for _, st := range house.Styles {
					out = append(out, house.Move{Kind: house.MoveAdd, Room: name, Type: t, NewStyle: st})
				}
			}
		}
	}
	return out
}

func weightsFor(cfg Config, moves []house.Move) []float64 {
	weights := make([]float64, len(moves))
	for i, m := range moves {
		weights[i] = cfg.TypeWeights[m.Kind]
	}
	return weights
}

func removeAt(moves []house.Move, i int) []house.Move {
	moves[i] = moves[len(moves)-1]
	return moves[:len(moves)-1]
}
