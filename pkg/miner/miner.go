package miner

import (
	"github.com/sirupsen/logrus"

	"scenariogen/pkg/constraint"
	"scenariogen/pkg/house"
)

// verticalAreas is the subset of house.AllAreas the quantity-comparison
// "(type, vertical area)" family quantifies over (spec.md §4.5).
var verticalAreas = []house.AreaName{house.Upstairs, house.Downstairs}

// Miner enumerates every constraint a board satisfies, narrating each
// family's yield over an injected logger.
type Miner struct {
	logger *logrus.Logger
}

// NewMiner constructs a Miner. A nil logger defaults to logrus's standard
// logger.
func NewMiner(logger *logrus.Logger) *Miner {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Miner{logger: logger}
}

// Mine enumerates every constraint satisfied by s, each tagged with its
// base salience score. It never emits a constraint s doesn't actually
// satisfy.
func (mi *Miner) Mine(s *house.State) []constraint.Constraint {
	families := []struct {
		name string
		fn   func(*house.State) []constraint.Constraint
	}{
		{"room", mineRoom},
		{"area", mineArea},
		{"counts", mineCounts},
		{"globalQualitative", mineGlobalQualitative},
		{"relational", mineRelational},
		{"spatial", mineSpatial},
		{"conditional", mineConditional},
		{"temperature", mineTemperature},
		{"quantity", mineQuantity},
	}

	var out []constraint.Constraint
	for _, f := range families {
		yield := f.fn(s)
		mi.logger.WithFields(logrus.Fields{
			"family": f.name,
			"count":  len(yield),
		}).Debug("mined constraint family")
		out = append(out, yield...)
	}

	mi.logger.WithField("total", len(out)).Debug("mining complete")
	return out
}

// Mine is the package-level convenience form of (*Miner).Mine, logging
// through logrus's standard logger.
func Mine(s *house.State) []constraint.Constraint {
	return NewMiner(nil).Mine(s)
}

func emitIf(out *[]constraint.Constraint, k constraint.Kind, p constraint.Params, score float64, satisfied bool) {
	if satisfied {
		*out = append(*out, constraint.Constraint{Kind: k, Params: p, Score: score})
	}
}

func mineRoom(s *house.State) []constraint.Constraint {
	var out []constraint.Constraint
	for _, name := range s.RoomNames() {
		room := s.Room(name)
		nonEmpty := room.HasObject()

		for _, c := range house.Colors {
			emitIf(&out, constraint.RoomWallColorIs, constraint.Params{Room: name, Color: c}, 6.0, room.WallColor == c)
			emitIf(&out, constraint.RoomWallColorIsNot, constraint.Params{Room: name, Color: c}, 3.0, room.WallColor != c)
		}
		emitIf(&out, constraint.RoomWallWarm, constraint.Params{Room: name}, 4.0, room.WallColor.Warm())
		emitIf(&out, constraint.RoomWallCool, constraint.Params{Room: name}, 4.0, room.WallColor.Cool())

		for _, t := range house.ObjectTypes {
			emitIf(&out, constraint.RoomHasObjectType, constraint.Params{Room: name, Type: t}, 5.5, room.HasObjectType(t))
			emitIf(&out, constraint.RoomNoObjectType, constraint.Params{Room: name, Type: t}, roomNegScore(nonEmpty, 4.5), !room.HasObjectType(t))
		}
		for _, st := range house.Styles {
			emitIf(&out, constraint.RoomHasStyle, constraint.Params{Room: name, Style: st}, 5.0, room.HasStyle(st))
			emitIf(&out, constraint.RoomNoStyle, constraint.Params{Room: name, Style: st}, roomNegScore(nonEmpty, 4.0), !room.HasStyle(st))
		}
		for _, c := range house.Colors {
			emitIf(&out, constraint.RoomHasColorObject, constraint.Params{Room: name, Color: c}, 5.25, room.HasColorObject(c))
			emitIf(&out, constraint.RoomNoColorObject, constraint.Params{Room: name, Color: c}, roomNegScore(nonEmpty, 4.25), !room.HasColorObject(c))
		}
	}
	return out
}

func areaHasObject(s *house.State, area house.AreaName) bool {
	for _, room := range s.Area(area) {
		if room.HasObject() {
			return true
		}
	}
	return false
}

func mineArea(s *house.State) []constraint.Constraint {
	var out []constraint.Constraint
	for _, area := range house.AllAreas {
		nonEmpty := areaHasObject(s, area)

		for _, t := range house.ObjectTypes {
			has := constraint.Evaluate(constraint.Constraint{Kind: constraint.AreaHasObjectType, Params: constraint.Params{Area: area, Type: t}}, s)
			emitIf(&out, constraint.AreaHasObjectType, constraint.Params{Area: area, Type: t}, 6.0, has)
			emitIf(&out, constraint.AreaNoObjectType, constraint.Params{Area: area, Type: t}, roomNegScore(nonEmpty, 5.5), !has)
		}
		for _, c := range house.Colors {
			has := constraint.Evaluate(constraint.Constraint{Kind: constraint.AreaHasColorObject, Params: constraint.Params{Area: area, Color: c}}, s)
			emitIf(&out, constraint.AreaHasColorObject, constraint.Params{Area: area, Color: c}, 5.75, has)
			emitIf(&out, constraint.AreaNoColorObject, constraint.Params{Area: area, Color: c}, roomNegScore(nonEmpty, 5.25), !has)
		}
		for _, st := range house.Styles {
			has := constraint.Evaluate(constraint.Constraint{Kind: constraint.AreaHasStyle, Params: constraint.Params{Area: area, Style: st}}, s)
			emitIf(&out, constraint.AreaHasStyle, constraint.Params{Area: area, Style: st}, 5.5, has)
			emitIf(&out, constraint.AreaNoStyle, constraint.Params{Area: area, Style: st}, roomNegScore(nonEmpty, 5.0), !has)
		}
	}
	return out
}

func mineCounts(s *house.State) []constraint.Constraint {
	var out []constraint.Constraint

	for _, c := range house.Colors {
		n := s.WallColorCount(c)
		out = append(out, constraint.Constraint{Kind: constraint.ExactlyNRoomsColor, Params: constraint.Params{Color: c, N: n}, Score: exactlyNScore(n)})
	}
	for _, c := range house.Colors {
		if s.ObjectColorCount(c) == 0 {
			out = append(out, constraint.Constraint{Kind: constraint.NoColorObjectsInHouse, Params: constraint.Params{Color: c}, Score: 3.5})
		}
	}

	for _, t := range house.ObjectTypes {
		emitAtLeastN(&out, constraint.AtLeastNObjectType, func(n int) constraint.Params { return constraint.Params{Type: t, N: n} }, s.ObjectTypeCount(t))
	}
	for _, c := range house.Colors {
		emitAtLeastN(&out, constraint.AtLeastNColorObjects, func(n int) constraint.Params { return constraint.Params{Color: c, N: n} }, s.ObjectColorCount(c))
	}
	for _, st := range house.Styles {
		emitAtLeastN(&out, constraint.AtLeastNStyleObjects, func(n int) constraint.Params { return constraint.Params{Style: st, N: n} }, s.ObjectStyleCount(st))
	}
	emitAtLeastN(&out, constraint.AtLeastNWarmObjects, func(n int) constraint.Params { return constraint.Params{N: n} }, s.WarmObjectCount())
	emitAtLeastN(&out, constraint.AtLeastNCoolObjects, func(n int) constraint.Params { return constraint.Params{N: n} }, s.CoolObjectCount())

	return out
}

// emitAtLeastN emits the at-least-n candidates for one dimension whose
// actual count is actual: N=actual (k=n, ratio 1.0) and, when actual>=2,
// N=actual-1 (k=n-1), per spec.md §4.5's formula and the "k in {n-1, n}"
// note.
func emitAtLeastN(out *[]constraint.Constraint, k constraint.Kind, params func(n int) constraint.Params, actual int) {
	if actual < 1 {
		return
	}
	*out = append(*out, constraint.Constraint{Kind: k, Params: params(actual), Score: atLeastNScore(actual, actual)})
	if actual >= 2 {
		n := actual - 1
		*out = append(*out, constraint.Constraint{Kind: k, Params: params(n), Score: atLeastNScore(n, actual)})
	}
}

func mineGlobalQualitative(s *house.State) []constraint.Constraint {
	var out []constraint.Constraint
	for _, t := range house.ObjectTypes {
		var colors []house.Color
		var styles []house.Style
		for _, name := range s.RoomNames() {
			if tok := s.Room(name).Token(t); tok != nil {
				colors = append(colors, tok.Color())
				styles = append(styles, tok.Style)
			}
		}
		if len(colors) >= 2 && allColorsEqual(colors) {
			out = append(out, constraint.Constraint{Kind: constraint.AllObjectTypeSameColor, Params: constraint.Params{Type: t}, Score: 7.5})
		}
		if len(styles) >= 2 && allStylesEqual(styles) {
			out = append(out, constraint.Constraint{Kind: constraint.AllObjectTypeSameStyle, Params: constraint.Params{Type: t}, Score: 7.5})
		}
	}
	return out
}

func allColorsEqual(xs []house.Color) bool {
	for _, x := range xs[1:] {
		if x != xs[0] {
			return false
		}
	}
	return true
}

func allStylesEqual(xs []house.Style) bool {
	for _, x := range xs[1:] {
		if x != xs[0] {
			return false
		}
	}
	return true
}

func mineRelational(s *house.State) []constraint.Constraint {
	var out []constraint.Constraint

	for i, a := range house.Colors {
		for _, b := range house.Colors[i+1:] {
			if s.WallColorCount(a) == s.WallColorCount(b) {
				out = append(out, constraint.Constraint{Kind: constraint.EqualRoomCountsTwoColors, Params: constraint.Params{Color: a, ColorB: b}, Score: 5.0})
			}
		}
	}

	for _, a := range house.ObjectTypes {
		for _, b := range house.ObjectTypes {
			if a == b {
				continue
			}
			p := constraint.Params{Type: a, TypeB: b}
			if constraint.Evaluate(constraint.Constraint{Kind: constraint.TypeAImpliesTypeB, Params: p}, s) {
				out = append(out, constraint.Constraint{Kind: constraint.TypeAImpliesTypeB, Params: p, Score: 5.5})
			}
		}
	}

	for _, st := range house.Styles {
		if constraint.Evaluate(constraint.Constraint{Kind: constraint.NoRoomMultipleSameStyle, Params: constraint.Params{Style: st}}, s) {
			out = append(out, constraint.Constraint{Kind: constraint.NoRoomMultipleSameStyle, Params: constraint.Params{Style: st}, Score: 4.5})
		}
	}

	return out
}

func mineSpatial(s *house.State) []constraint.Constraint {
	var out []constraint.Constraint

	directional := []struct {
		kind  constraint.Kind
		score float64
	}{
		{constraint.AboveStyleNoWallColor, 7.0},
		{constraint.BelowStyleNoWallColor, 7.0},
		{constraint.BesideStyleNoWallColor, 6.5},
		{constraint.DiagStyleNoWallColor, 7.5},
	}
	for _, d := range directional {
		for _, st := range house.Styles {
			for _, c := range house.Colors {
				p := constraint.Params{Style: st, Color: c}
				if constraint.Evaluate(constraint.Constraint{Kind: d.kind, Params: p}, s) {
					out = append(out, constraint.Constraint{Kind: d.kind, Params: p, Score: d.score})
				}
			}
		}
	}

	if constraint.Evaluate(constraint.Constraint{Kind: constraint.DiagRoomsSameWall}, s) {
		out = append(out, constraint.Constraint{Kind: constraint.DiagRoomsSameWall, Score: 7.5})
	}
	if constraint.Evaluate(constraint.Constraint{Kind: constraint.AdjRoomsDiffWall}, s) {
		out = append(out, constraint.Constraint{Kind: constraint.AdjRoomsDiffWall, Score: 8.0})
	}

	return out
}

func mineConditional(s *house.State) []constraint.Constraint {
	var out []constraint.Constraint

	for _, c := range house.Colors {
		for _, st := range house.Styles {
			p := constraint.Params{Color: c, Style: st}
			if constraint.Evaluate(constraint.Constraint{Kind: constraint.WallColorForbidsStyle, Params: p}, s) {
				score := 5.0
				if s.ObjectStyleCount(st) > 0 {
					score = 7.5
				}
				out = append(out, constraint.Constraint{Kind: constraint.WallColorForbidsStyle, Params: p, Score: score})
			}
		}
		for _, cb := range house.Colors {
			p := constraint.Params{Color: c, ColorB: cb}
			if constraint.Evaluate(constraint.Constraint{Kind: constraint.WallColorForbidsObjColor, Params: p}, s) {
				score := 4.5
				if s.ObjectColorCount(cb) > 0 {
					score = 7.0
				}
				out = append(out, constraint.Constraint{Kind: constraint.WallColorForbidsObjColor, Params: p, Score: score})
			}
		}
	}

	for i, a := range house.Styles {
		for _, b := range house.Styles[i+1:] {
			p := constraint.Params{Style: a, StyleB: b}
			if constraint.Evaluate(constraint.Constraint{Kind: constraint.StylePairNeverCooccur, Params: p}, s) {
				out = append(out, constraint.Constraint{Kind: constraint.StylePairNeverCooccur, Params: p, Score: 6.0})
			}
		}
	}

	for _, t := range house.ObjectTypes {
		for _, c := range house.Colors {
			p := constraint.Params{Type: t, Color: c}
			if constraint.Evaluate(constraint.Constraint{Kind: constraint.TypeRequiresWallColor, Params: p}, s) {
				out = append(out, constraint.Constraint{Kind: constraint.TypeRequiresWallColor, Params: p, Score: 6.0})
			}
		}
	}

	for i, a := range house.ObjectTypes {
		for _, b := range house.ObjectTypes[i+1:] {
			p := constraint.Params{Type: a, TypeB: b}
			if constraint.Evaluate(constraint.Constraint{Kind: constraint.TypeForbidsTypeSameRoom, Params: p}, s) {
				out = append(out, constraint.Constraint{Kind: constraint.TypeForbidsTypeSameRoom, Params: p, Score: 6.0})
			}
		}
	}

	return out
}

func mineTemperature(s *house.State) []constraint.Constraint {
	var out []constraint.Constraint

	emitIf(&out, constraint.MoreWarmThanCool, constraint.Params{}, 6.5, s.WarmObjectCount() > s.CoolObjectCount())
	emitIf(&out, constraint.MoreCoolThanWarm, constraint.Params{}, 6.5, s.CoolObjectCount() > s.WarmObjectCount())
	emitIf(&out, constraint.WallMatchesObjectAlways, constraint.Params{}, 6.0, constraint.Evaluate(constraint.Constraint{Kind: constraint.WallMatchesObjectAlways}, s))
	emitIf(&out, constraint.WallMatchesObjectNever, constraint.Params{}, 6.0, constraint.Evaluate(constraint.Constraint{Kind: constraint.WallMatchesObjectNever}, s))

	for _, c := range house.Colors {
		for _, t := range house.ObjectTypes {
			p := constraint.Params{Color: c, Type: t}
			if constraint.Evaluate(constraint.Constraint{Kind: constraint.ExclusionZone, Params: p}, s) {
				out = append(out, constraint.Constraint{Kind: constraint.ExclusionZone, Params: p, Score: 6.5})
			}
		}
	}

	return out
}

func mineQuantity(s *house.State) []constraint.Constraint {
	var out []constraint.Constraint

	for _, c := range house.Colors {
		for _, st := range house.Styles {
			colorN, styleN := s.ObjectColorCount(c), s.ObjectStyleCount(st)
			if colorN > styleN {
				p := constraint.Params{Color: c, Style: st}
				out = append(out, constraint.Constraint{Kind: constraint.ObjectColorCountGtStyleCount, Params: p, Score: quantityScore(colorN - styleN)})
			}
			if styleN > colorN {
				p := constraint.Params{Style: st, Color: c}
				out = append(out, constraint.Constraint{Kind: constraint.StyleCountGtColorCount, Params: p, Score: quantityScore(styleN - colorN)})
			}
		}
	}

	for _, areaA := range verticalAreas {
		for _, areaB := range verticalAreas {
			if areaA == areaB {
				continue
			}
			for _, ta := range house.ObjectTypes {
				for _, tb := range house.ObjectTypes {
					na := s.AreaObjectTypeCount(areaA, ta)
					nb := s.AreaObjectTypeCount(areaB, tb)
					if na > nb {
						p := constraint.Params{Area: areaA, Type: ta, AreaB: areaB, TypeB: tb}
						out = append(out, constraint.Constraint{Kind: constraint.MoreTypeAreaThanTypeArea, Params: p, Score: quantityScore(na - nb)})
					}
				}
			}
		}
	}

	for _, a := range house.Colors {
		for _, b := range house.Colors {
			if a == b {
				continue
			}
			na, nb := s.ObjectColorCount(a), s.ObjectColorCount(b)
			if na > nb {
				p := constraint.Params{Color: a, ColorB: b}
				out = append(out, constraint.Constraint{Kind: constraint.ColorCountGtColorCount, Params: p, Score: quantityScore(na - nb)})
			}
		}
	}

	return out
}
