package finalstate

// Difficulty is the closed set of difficulty presets spec.md §4.4 tables.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// PertWeights is the relative weight of each perturbation move kind, used
// by pkg/perturb's Phase 1 random walk.
type PertWeights struct {
	Paint  float64
	Swap   float64
	Remove float64
	Add    float64
}

// DifficultyParams is spec.md §4.4's per-difficulty parameter row. Every
// field here is a tuned magic number the spec requires preserved exactly —
// changing one shifts the generated distribution and breaks
// reproducibility-adjacent tests (spec.md §9 "Scoring heuristics").
type DifficultyParams struct {
	NumColors int
	NumStyles int

	TotalItemsMin int
	TotalItemsMax int

	PatternProb    float64
	RulesPerPlayer int

	PertRangeMin int
	PertRangeMax int

	WarmCoolBias float64
	PertWeights  PertWeights
}

var difficultyTable = map[Difficulty]DifficultyParams{
	Easy: {
		NumColors: 3, NumStyles: 3,
		TotalItemsMin: 5, TotalItemsMax: 7,
		PatternProb: 0.35, RulesPerPlayer: 3,
		PertRangeMin: 3, PertRangeMax: 5,
		WarmCoolBias: 1.5,
		PertWeights:  PertWeights{Paint: 1.0, Swap: 1.5, Remove: 0.5, Add: 0.3},
	},
	Medium: {
		NumColors: 3, NumStyles: 4,
		TotalItemsMin: 6, TotalItemsMax: 9,
		PatternProb: 0.30, RulesPerPlayer: 4,
		PertRangeMin: 5, PertRangeMax: 8,
		WarmCoolBias: 1.5,
		PertWeights:  PertWeights{Paint: 1.0, Swap: 1.5, Remove: 0.8, Add: 0.3},
	},
	Hard: {
		NumColors: 4, NumStyles: 4,
		TotalItemsMin: 7, TotalItemsMax: 10,
		PatternProb: 0.25, RulesPerPlayer: 4,
		PertRangeMin: 7, PertRangeMax: 10,
		WarmCoolBias: 1.5,
		PertWeights:  PertWeights{Paint: 1.0, Swap: 1.2, Remove: 1.0, Add: 0.5},
	},
}

// ParamsFor returns the difficulty row for d, defaulting to Medium for an
// unrecognized value (spec.md §7: the core normalizes rather than erroring
// on malformed config).
func ParamsFor(d Difficulty) DifficultyParams {
	if p, ok := difficultyTable[d]; ok {
		return p
	}
	return difficultyTable[Medium]
}
