package scenario

import "scenariogen/pkg/house"

// RuleText is the rendered form of one assigned constraint.
type RuleText struct {
	Text string `json:"text"`
}

// PlayerScenario is one player's slice of the generated scenario.
type PlayerScenario struct {
	ID          int        `json:"id"`
	Voice       string     `json:"voice"`
	Constraints []RuleText `json:"constraints"`
}

// Scenario is GenerateScenario's output (spec.md §6). Constraints are not
// exposed in structured form, only their rendered text — downstream
// components that need the records themselves work with the pkg/constraint
// values directly rather than through this type.
type Scenario struct {
	NumPlayers      int              `json:"numPlayers"`
	Difficulty      string           `json:"difficulty"`
	InitialBoard    house.View       `json:"initialBoard"`
	SolutionBoard   house.View       `json:"solutionBoard"`
	Players         []PlayerScenario `json:"players"`
	PerturbationLog []string         `json:"perturbationLog"`
}

// Diagnostics carries internal generation statistics that aren't part of
// the external Scenario contract but are useful for metrics/logging
// wrappers (pkg/metrics, cmd/scenariogen).
type Diagnostics struct {
	CandidatesMined      int
	PerturbationAttempts int
	PerturbationScore    int
}
