package finalstate

import (
	"github.com/sirupsen/logrus"

	"scenariogen/pkg/house"
	"scenariogen/pkg/rng"
)

type slot struct {
	Room string
	Type house.ObjectType
}

type theme struct {
	Type  house.ObjectType
	Style house.Style
}

const maxWallResampleAttempts = 100

// Engine generates solution boards, narrating each stage of spec.md
// §4.4's algorithm over an injected logger.
type Engine struct {
	logger *logrus.Logger
}

// NewEngine constructs an Engine. A nil logger defaults to logrus's
// standard logger.
func NewEngine(logger *logrus.Logger) *Engine {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Engine{logger: logger}
}

// Generate runs spec.md §4.4's seven-step algorithm and returns the
// finished solution board.
func (e *Engine) Generate(r *rng.RNG, numPlayers int, dp DifficultyParams) *house.State {
	e.logger.WithFields(logrus.Fields{
		"numPlayers": numPlayers,
		"numColors":  dp.NumColors,
		"numStyles":  dp.NumStyles,
	}).Debug("generating final state")

	s := generate(r, numPlayers, dp)

	e.logger.WithField("totalObjects", s.TotalObjectCount()).Debug("final state generated")
	return s
}

// Generate is the package-level convenience form of (*Engine).Generate,
// logging through logrus's standard logger.
func Generate(r *rng.RNG, numPlayers int, dp DifficultyParams) *house.State {
	return NewEngine(nil).Generate(r, numPlayers, dp)
}

func generate(r *rng.RNG, numPlayers int, dp DifficultyParams) *house.State {
	s := house.New(numPlayers)

	chosenColors := rng.Sample(r, house.Colors, min(dp.NumColors, 4))
	chosenStyles := rng.Sample(r, house.Styles, min(dp.NumStyles, 4))

	assignWallColors(r, s, chosenColors)

	target := r.Int(dp.TotalItemsMin, dp.TotalItemsMax)
	slots := allSlots(s)
	slots = rng.Shuffle(r, slots)

	var th *theme
	if r.Next() < 0.4 {
		tType, _ := rng.Choice(r, house.ObjectTypes)
		tStyle, _ := rng.Choice(r, chosenStyles)
		th = &theme{Type: tType, Style: tStyle}
	}

	placed := 0
	for _, sl := range slots {
		if placed >= target {
			break
		}
		style := chooseStyle(r, s, sl, dp.PatternProb, chosenStyles, th)
		if s.AddObject(sl.Room, sl.Type, style) {
			placed++
		}
	}

	coveragePass(r, s, chosenStyles)
	varietyPass(r, s, chosenStyles)

	return s
}

func assignWallColors(r *rng.RNG, s *house.State, chosenColors []house.Color) {
	for attempt := 0; attempt < maxWallResampleAttempts; attempt++ {
		for _, name := range s.RoomNames() {
			c, _ := rng.Choice(r, chosenColors)
			s.PaintRoom(name, c)
		}
		if s.DistinctWallColors() >= 2 {
			return
		}
	}
}

func allSlots(s *house.State) []slot {
	slots := make([]slot, 0, len(s.RoomNames())*len(house.ObjectTypes))
	for _, name := range s.RoomNames() {
		for _, t := range house.ObjectTypes {
			slots = append(slots, slot{Room: name, Type: t})
		}
	}
	return slots
}

func chooseStyle(r *rng.RNG, s *house.State, sl slot, patternProb float64, chosenStyles []house.Style, th *theme) house.Style {
	if th != nil && sl.Type == th.Type && r.Next() < 0.7 {
		return th.Style
	}
	if r.Next() < patternProb {
		wallColor := s.Room(sl.Room).WallColor
		if derived, ok := house.StyleFor(sl.Type, wallColor); ok && containsStyle(chosenStyles, derived) {
			return derived
		}
	}
	style, _ := rng.Choice(r, chosenStyles)
	return style
}

// coveragePass places one instance of every object type that has zero
// instances after the main placement walk, in a random empty slot of that
// type with a random chosen style (spec.md §4.4 step 6).
func coveragePass(r *rng.RNG, s *house.State, chosenStyles []house.Style) {
	for _, t := range house.ObjectTypes {
		if s.ObjectTypeCount(t) > 0 {
			continue
		}
		var empty []string
		for _, name := range s.RoomNames() {
			if !s.Room(name).HasObjectType(t) {
				empty = append(empty, name)
			}
		}
		if len(empty) == 0 {
			continue
		}
		room, _ := rng.Choice(r, empty)
		style, _ := rng.Choice(r, chosenStyles)
		s.AddObject(room, t, style)
	}
}

// varietyPass changes exactly one object's style if fewer than two distinct
// styles appear across all placed objects and at least two styles were
// available to choose from (spec.md §4.4 step 7). It exits immediately
// after the first substitution.
func varietyPass(r *rng.RNG, s *house.State, chosenStyles []house.Style) {
	if len(chosenStyles) < 2 {
		return
	}

	seen := map[house.Style]bool{}
	for _, name := range s.RoomNames() {
		room := s.Room(name)
		for _, t := range house.ObjectTypes {
			if tok := room.Token(t); tok != nil {
				seen[tok.Style] = true
			}
		}
	}
	if len(seen) >= 2 {
		return
	}

	for _, name := range s.RoomNames() {
		room := s.Room(name)
		for _, t := range house.ObjectTypes {
			tok := room.Token(t)
			if tok == nil {
				continue
			}
			alt := otherStyle(r, chosenStyles, tok.Style)
			s.SwapObject(name, t, alt)
			return
		}
	}
}

func otherStyle(r *rng.RNG, chosenStyles []house.Style, current house.Style) house.Style {
	var alts []house.Style
	for _, st := range chosenStyles {
		if st != current {
			alts = append(alts, st)
		}
	}
	chosen, _ := rng.Choice(r, alts)
	return chosen
}

func containsStyle(styles []house.Style, s house.Style) bool {
	for _, st := range styles {
		if st == s {
			return true
		}
	}
	return false
}
