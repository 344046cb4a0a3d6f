package perturb

import (
	"github.com/sirupsen/logrus"

	"scenariogen/pkg/constraint"
	"scenariogen/pkg/house"
	"scenariogen/pkg/rng"
)

// Result is the outcome of the best attempt Run found: the board players
// see at the start of the scenario, the sequence of moves that separates
// it from the solution (in application order from the solution to the
// initial board; initial -> solution is the reverse of this log with each
// move inverted), and how many players ended
// up with at least Config.MinViolPerPlayer broken rules.
type Result struct {
	InitialBoard    *house.State
	PerturbationLog []string
	// Moves is PerturbationLog in the same order, as applied house.Move
	// values rather than their rendered descriptions. Replaying Moves from
	// a copy of the solution reconstructs InitialBoard; replaying their
	// inverses in reverse from InitialBoard reconstructs the solution.
	Moves        []house.Move
	Score        int
	AttemptsUsed int
}

// Perturber walks a solved board backward into a playable initial board
// (spec.md §4.7), narrating its search over an injected logger.
type Perturber struct {
	logger *logrus.Logger
}

// NewPerturber constructs a Perturber. A nil logger defaults to logrus's
// standard logger.
func NewPerturber(logger *logrus.Logger) *Perturber {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Perturber{logger: logger}
}

// Run attempts, up to cfg.MaxAttempts times, to walk the solution backward
// into an initial board where as many players as possible start with at
// least cfg.MinViolPerPlayer of their own rules broken (spec.md §4.7). Each
// attempt starts fresh from a copy of the solution; the best-scoring
// attempt across all tries is returned, even if no attempt reaches full
// score.
func (p *Perturber) Run(r *rng.RNG, solution *house.State, playerRules [][]constraint.Constraint, cfg Config) Result {
	cfg = normalizeConfig(cfg)
	numPlayers := len(playerRules)

	best := Result{Score: -1}
	attemptsUsed := 0

	for attempt := 0; attempt < cfg.MaxAttempts; attempt++ {
		attemptsUsed = attempt + 1
		working := solution.DeepCopy()
		visited := map[string]bool{working.Fingerprint(): true}
		var lastMove *house.Move
		var log []string
		var moves []house.Move

		for step := 0; step < cfg.NumPerturbations; step++ {
			move, ok := p.phase1Step(r, working, cfg, lastMove, visited)
			if !ok {
				p.logger.WithFields(logrus.Fields{
					"attempt": attempt,
					"step":    step,
				}).Debug("phase 1 candidate pool exhausted")
				break
			}
			p.logger.WithFields(logrus.Fields{
				"attempt": attempt,
				"step":    step,
				"move":    move.Describe(),
			}).Debug("phase 1 move accepted")
			log = append(log, move.Describe())
			moves = append(moves, move)
			m := move
			lastMove = &m
		}

		for iter := 0; iter < 10; iter++ {
			if allMeetTarget(playerRules, working, cfg.MinViolPerPlayer) {
				break
			}
			pl := pickUnderTargetPlayer(r, playerRules, working, cfg.MinViolPerPlayer)
			if pl < 0 {
				break
			}
			move, ok := p.phase2Step(r, working, playerRules[pl], cfg, lastMove, visited)
			if !ok {
				p.logger.WithFields(logrus.Fields{
					"attempt": attempt,
					"iter":    iter,
					"player":  pl,
				}).Debug("phase 2 found no falsifying move for player")
				continue
			}
			p.logger.WithFields(logrus.Fields{
				"attempt": attempt,
				"iter":    iter,
				"player":  pl,
				"move":    move.Describe(),
			}).Debug("phase 2 move accepted")
			log = append(log, move.Describe())
			moves = append(moves, move)
			m := move
			lastMove = &m
		}

		score := countMeetingTarget(playerRules, working, cfg.MinViolPerPlayer)
		if score > best.Score {
			best = Result{InitialBoard: working, PerturbationLog: log, Moves: moves, Score: score}
		}
		if score == numPlayers {
			break
		}
	}

	best.AttemptsUsed = attemptsUsed

	if best.Score < numPlayers {
		p.logger.WithFields(logrus.Fields{
			"numPlayers":   numPlayers,
			"bestScore":    best.Score,
			"attemptsUsed": attemptsUsed,
			"maxAttempts":  cfg.MaxAttempts,
		}).Warn("perturbation search exhausted without meeting every player's target")
	}

	return best
}

// Run is the package-level convenience form of (*Perturber).Run, logging
// through logrus's standard logger.
func Run(r *rng.RNG, solution *house.State, playerRules [][]constraint.Constraint, cfg Config) Result {
	return NewPerturber(nil).Run(r, solution, playerRules, cfg)
}

// phase1Step draws one weighted candidate move, rejecting it (and resuming
// the draw over the shrinking pool) if it is the inverse of lastMove or if
// applying it lands on an already-visited fingerprint. It returns ok=false
// once the pool is exhausted without finding an acceptable move.
func (p *Perturber) phase1Step(r *rng.RNG, working *house.State, cfg Config, lastMove *house.Move, visited map[string]bool) (house.Move, bool) {
	candidates := enumerateMoves(working, cfg)

	for len(candidates) > 0 {
		weights := weightsFor(cfg, candidates)
		idx := r.WeightedIndex(weights)
		if idx < 0 {
			return house.Move{}, false
		}
		cand := candidates[idx]

		if lastMove != nil && cand == lastMove.Inverse() {
			p.logger.WithField("move", cand.Describe()).Debug("phase 1 candidate rejected: inverse of last move")
			candidates = removeAt(candidates, idx)
			continue
		}

		if !cand.Apply(working) {
			p.logger.WithField("move", cand.Describe()).Debug("phase 1 candidate rejected: illegal to apply")
			candidates = removeAt(candidates, idx)
			continue
		}
		fp := working.Fingerprint()
		if visited[fp] {
			p.logger.WithField("move", cand.Describe()).Debug("phase 1 candidate rejected: fingerprint already visited")
			cand.Inverse().Apply(working)
			candidates = removeAt(candidates, idx)
			continue
		}
		visited[fp] = true
		return cand, true
	}

	return house.Move{}, false
}

// phase2Step searches, in random rule order, a player's currently satisfied
// rules for any move that falsifies that rule without backtracking the
// last move or revisiting a fingerprint already seen this attempt.
func (p *Perturber) phase2Step(r *rng.RNG, working *house.State, rules []constraint.Constraint, cfg Config, lastMove *house.Move, visited map[string]bool) (house.Move, bool) {
	var satisfied []constraint.Constraint
	for _, c := range rules {
		if constraint.Evaluate(c, working) {
			satisfied = append(satisfied, c)
		}
	}
	satisfied = rng.Shuffle(r, satisfied)

	for _, rule := range satisfied {
		candidates := enumerateMoves(working, cfg)
		for _, cand := range candidates {
			if lastMove != nil && cand == lastMove.Inverse() {
				continue
			}
			if !cand.Apply(working) {
				continue
			}
			fp := working.Fingerprint()
			if !visited[fp] && !constraint.Evaluate(rule, working) {
				visited[fp] = true
				return cand, true
			}
			cand.Inverse().Apply(working)
		}
	}

	p.logger.WithField("rulesConsidered", len(satisfied)).Debug("phase 2 found no falsifying move among player's satisfied rules")
	return house.Move{}, false
}

func violationCount(working *house.State, rules []constraint.Constraint) int {
	n := 0
	for _, c := range rules {
		if !constraint.Evaluate(c, working) {
			n++
		}
	}
	return n
}

func allMeetTarget(playerRules [][]constraint.Constraint, working *house.State, minViol int) bool {
	for _, rules := range playerRules {
		if violationCount(working, rules) < minViol {
			return false
		}
	}
	return true
}

func countMeetingTarget(playerRules [][]constraint.Constraint, working *house.State, minViol int) int {
	n := 0
	for _, rules := range playerRules {
		if violationCount(working, rules) >= minViol {
			n++
		}
	}
	return n
}

// pickUnderTargetPlayer returns a uniformly-chosen player index whose
// current violation count is still below minViol, or -1 if none.
func pickUnderTargetPlayer(r *rng.RNG, playerRules [][]constraint.Constraint, working *house.State, minViol int) int {
	var under []int
	for p, rules := range playerRules {
		if violationCount(working, rules) < minViol {
			under = append(under, p)
		}
	}
	idx, ok := rng.Choice(r, under)
	if !ok {
		return -1
	}
	return idx
}
