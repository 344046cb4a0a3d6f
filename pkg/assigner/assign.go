package assigner

import (
	"sort"

	"github.com/sirupsen/logrus"

	"scenariogen/pkg/constraint"
	"scenariogen/pkg/rng"
)

// PlayerAssignment is one player's rule set.
type PlayerAssignment struct {
	Constraints []constraint.Constraint
}

// Assignment is the full distribution of candidates across players.
type Assignment struct {
	Players []PlayerAssignment
	// Filled[i] is the number of rules player i actually received, which
	// can be less than rulesPerPlayer if the candidate pool ran dry. The
	// core does not treat a short rule list as an error (spec.md §4.6
	// "Failure"); callers that care can inspect this.
	Filled []int
}

var warmCoolKinds = map[constraint.Kind]bool{
	constraint.RoomWallWarm:       true,
	constraint.RoomWallCool:       true,
	constraint.AtLeastNWarmObjects: true,
	constraint.AtLeastNCoolObjects: true,
	constraint.MoreWarmThanCool:    true,
	constraint.MoreCoolThanWarm:    true,
}

// Assigner distributes mined candidates across players, narrating each
// round's draws and flagging any player left under quota over an injected
// logger.
type Assigner struct {
	logger *logrus.Logger
}

// NewAssigner constructs an Assigner. A nil logger defaults to logrus's
// standard logger.
func NewAssigner(logger *logrus.Logger) *Assigner {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Assigner{logger: logger}
}

// Assign runs spec.md §4.6's four-step distribution algorithm.
func (as *Assigner) Assign(r *rng.RNG, candidates []constraint.Constraint, numPlayers, rulesPerPlayer int, warmCoolBias float64) Assignment {
	pool := applyWarmCoolBias(candidates, warmCoolBias)
	pool = dedupe(pool)
	pool = rankedShuffle(r, pool)

	as.logger.WithFields(logrus.Fields{
		"poolSize":       len(pool),
		"numPlayers":     numPlayers,
		"rulesPerPlayer": rulesPerPlayer,
	}).Debug("starting assignment")

	players := make([]PlayerAssignment, numPlayers)
	filled := make([]int, numPlayers)
	states := make([]playerState, numPlayers)
	for i := range states {
		states[i] = newPlayerState()
	}

	used := make(map[string]bool, len(pool))

	for round := 0; round < rulesPerPlayer; round++ {
		for p := 0; p < numPlayers; p++ {
			avail := availableCandidates(pool, used)
			if len(avail) == 0 {
				as.logger.WithFields(logrus.Fields{
					"round":  round,
					"player": p,
				}).Debug("candidate pool exhausted")
				break
			}
			weights := make([]float64, len(avail))
			for i, c := range avail {
				weights[i] = adjustedScore(c, states[p])
			}
			idx := r.WeightedIndex(weights)
			if idx < 0 {
				break
			}
			chosen := avail[idx]
			used[chosen.Key()] = true
			players[p].Constraints = append(players[p].Constraints, chosen)
			filled[p]++
			states[p].observe(chosen)
			as.logger.WithFields(logrus.Fields{
				"round":  round,
				"player": p,
				"kind":   chosen.Kind.String(),
			}).Debug("rule assigned")
		}
	}

	for p, n := range filled {
		if n < rulesPerPlayer {
			as.logger.WithFields(logrus.Fields{
				"player":         p,
				"filled":         n,
				"rulesPerPlayer": rulesPerPlayer,
			}).Warn("player assigned fewer rules than requested, candidate pool ran dry")
		}
	}

	return Assignment{Players: players, Filled: filled}
}

// Assign is the package-level convenience form of (*Assigner).Assign,
// logging through logrus's standard logger.
func Assign(r *rng.RNG, candidates []constraint.Constraint, numPlayers, rulesPerPlayer int, warmCoolBias float64) Assignment {
	return NewAssigner(nil).Assign(r, candidates, numPlayers, rulesPerPlayer, warmCoolBias)
}

func applyWarmCoolBias(candidates []constraint.Constraint, bias float64) []constraint.Constraint {
	out := make([]constraint.Constraint, len(candidates))
	for i, c := range candidates {
		if warmCoolKinds[c.Kind] {
			c.Score *= bias
		}
		out[i] = c
	}
	return out
}

// dedupe keeps, for each (kind, sorted-params) key, the highest-scoring
// candidate.
func dedupe(candidates []constraint.Constraint) []constraint.Constraint {
	best := make(map[string]constraint.Constraint, len(candidates))
	order := make([]string, 0, len(candidates))
	for _, c := range candidates {
		key := canonicalKey(c)
		if existing, ok := best[key]; !ok {
			best[key] = c
			order = append(order, key)
		} else if c.Score > existing.Score {
			best[key] = c
		}
	}
	out := make([]constraint.Constraint, 0, len(order))
	for _, key := range order {
		out = append(out, best[key])
	}
	return out
}

// canonicalKey normalizes the two kinds whose pair of params is
// order-independent (two colors with equal counts, a style pair that never
// co-occurs) so that (A,B) and (B,A) dedupe to the same entry.
func canonicalKey(c constraint.Constraint) string {
	p := c.Params
	switch c.Kind {
	case constraint.EqualRoomCountsTwoColors:
		if p.ColorB < p.Color {
			p.Color, p.ColorB = p.ColorB, p.Color
		}
	case constraint.StylePairNeverCooccur:
		if p.StyleB < p.Style {
			p.Style, p.StyleB = p.StyleB, p.Style
		}
	}
	return constraint.Key(c.Kind, p)
}

// rankedShuffle shuffles the pool, then stable-sorts it by descending
// score — the shuffle breaks ties between equal-score candidates
// deterministically-but-not-predictably, and the stable sort preserves
// that tie order within each score bucket.
func rankedShuffle(r *rng.RNG, candidates []constraint.Constraint) []constraint.Constraint {
	shuffled := rng.Shuffle(r, candidates)
	sort.SliceStable(shuffled, func(i, j int) bool {
		return shuffled[i].Score > shuffled[j].Score
	})
	return shuffled
}

func availableCandidates(pool []constraint.Constraint, used map[string]bool) []constraint.Constraint {
	out := make([]constraint.Constraint, 0, len(pool))
	for _, c := range pool {
		if !used[c.Key()] {
			out = append(out, c)
		}
	}
	return out
}

// playerState tracks what a player's rule set has accumulated so far, for
// the adjusted-score bias deltas in spec.md §4.6 step 4.
type playerState struct {
	rooms       map[string]bool
	kinds       map[constraint.Kind]bool
	hasPositive bool
	hasNegative bool
}

func newPlayerState() playerState {
	return playerState{rooms: map[string]bool{}, kinds: map[constraint.Kind]bool{}}
}

func (ps *playerState) observe(c constraint.Constraint) {
	if c.Params.Room != "" {
		ps.rooms[c.Params.Room] = true
	}
	ps.kinds[c.Kind] = true
	if c.Kind.IsNegative() {
		ps.hasNegative = true
	} else {
		ps.hasPositive = true
	}
}

// adjustedScore computes the per-candidate score a player would draw this
// candidate at, per spec.md §4.6 step 4's bias deltas, clamped to >=0.1.
func adjustedScore(c constraint.Constraint, ps playerState) float64 {
	score := c.Score
	referencesRoom := c.Params.Room != ""
	newRoom := referencesRoom && !ps.rooms[c.Params.Room]

	if newRoom {
		score += 1.5
	}
	if !ps.kinds[c.Kind] {
		score += 1.0
	}
	if c.Kind.IsNegative() {
		if !ps.hasNegative {
			score += 1.0
		}
	} else if !ps.hasPositive {
		score += 1.0
	}
	if referencesRoom && !newRoom && len(ps.rooms) >= 2 {
		score -= 2.0
	}
	if ps.kinds[c.Kind] {
		score -= 1.5
	}
	if score < 0.1 {
		score = 0.1
	}
	return score
}
