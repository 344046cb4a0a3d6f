package scenario

import (
	"scenariogen/pkg/assigner"
	"scenariogen/pkg/constraint"
	"scenariogen/pkg/finalstate"
	"scenariogen/pkg/house"
	"scenariogen/pkg/miner"
	"scenariogen/pkg/perturb"
	"scenariogen/pkg/render"
	"scenariogen/pkg/rng"
)

// GenerateScenario is the pure top-level entry point (spec.md §6): a total
// function of cfg (including its seed) with no I/O, no timers, and no
// shared mutable state (spec.md §5). A single top-level seed fans out into
// four independent child streams via rng's fixed transforms — identity for
// the final-state generator, doubled for the assigner's draws, tripled-
// plus-seven for the perturbation search, and quintupled-plus-index for
// each player's own voice-rendering stream — so that reusing a seed
// reproduces byte-identical output (spec.md §9).
func GenerateScenario(cfg GenerateConfig) (Scenario, Diagnostics) {
	cfg = normalizeConfig(cfg)
	dp := finalstate.ParamsFor(finalstate.Difficulty(cfg.Difficulty))
	if cfg.DifficultyOverride != nil {
		dp = *cfg.DifficultyOverride
	}

	finalRNG := rng.DeriveChild(*cfg.Seed, rng.ChildIdentity, 0)
	solution := finalstate.Generate(finalRNG, cfg.NumPlayers, dp)

	candidates := miner.Mine(solution)

	warmCoolBias := dp.WarmCoolBias
	if cfg.WarmCoolBias != nil {
		warmCoolBias = *cfg.WarmCoolBias
	}

	assignerRNG := rng.DeriveChild(*cfg.Seed, rng.ChildDoubled, 0)
	assignment := assigner.Assign(assignerRNG, candidates, cfg.NumPlayers, dp.RulesPerPlayer, warmCoolBias)

	playerRules := make([][]constraint.Constraint, cfg.NumPlayers)
	for i, pa := range assignment.Players {
		playerRules[i] = pa.Constraints
	}

	perturbRNG := rng.DeriveChild(*cfg.Seed, rng.ChildTripleOffset, 0)
	pertCfg := buildPerturbConfig(perturbRNG, dp, cfg.Perturbation)
	result := perturb.Run(perturbRNG, solution, playerRules, pertCfg)

	players := make([]PlayerScenario, cfg.NumPlayers)
	for i := 0; i < cfg.NumPlayers; i++ {
		voice := render.VoiceFor(i)
		renderRNG := rng.DeriveChild(*cfg.Seed, rng.ChildQuintupleIndexed, i)

		var rules []constraint.Constraint
		if i < len(playerRules) {
			rules = playerRules[i]
		}
		texts := make([]RuleText, len(rules))
		for j, c := range rules {
			texts[j] = RuleText{Text: render.ForPlayer(renderRNG, voice, c)}
		}
		players[i] = PlayerScenario{ID: i + 1, Voice: string(voice), Constraints: texts}
	}

	sc := Scenario{
		NumPlayers:      cfg.NumPlayers,
		Difficulty:      cfg.Difficulty,
		InitialBoard:    result.InitialBoard.View(),
		SolutionBoard:   solution.View(),
		Players:         players,
		PerturbationLog: result.PerturbationLog,
	}

	diag := Diagnostics{
		CandidatesMined:      len(candidates),
		PerturbationAttempts: result.AttemptsUsed,
		PerturbationScore:    result.Score,
	}

	return sc, diag
}

// buildPerturbConfig derives the difficulty-scaled perturbation config and
// applies any caller overrides. numPerturbations, when not overridden, is
// itself a draw from r — part of the same dedicated perturbation stream
// Run goes on to consume, not a side draw from some other RNG.
func buildPerturbConfig(r *rng.RNG, dp finalstate.DifficultyParams, ov *PerturbationOverrides) perturb.Config {
	cfg := perturb.Config{
		NumPerturbations: r.Int(dp.PertRangeMin, dp.PertRangeMax),
		MinViolPerPlayer: 1,
		TypeWeights:      typeWeightsFrom(dp.PertWeights),
		MaxAttempts:      30,
	}

	if ov == nil {
		return cfg
	}
	if ov.NumPerturbations != nil {
		cfg.NumPerturbations = *ov.NumPerturbations
	}
	if ov.MinViolPerPlayer != nil {
		cfg.MinViolPerPlayer = *ov.MinViolPerPlayer
	}
	if len(ov.AllowedTypes) > 0 {
		cfg.AllowedTypes = ov.AllowedTypes
	}
	if len(ov.TypeWeights) > 0 {
		cfg.TypeWeights = ov.TypeWeights
	}
	if ov.MaxAttempts != nil {
		cfg.MaxAttempts = *ov.MaxAttempts
	}
	return cfg
}

func typeWeightsFrom(pw finalstate.PertWeights) map[house.MoveKind]float64 {
	return map[house.MoveKind]float64{
		house.MovePaint:  pw.Paint,
		house.MoveSwap:   pw.Swap,
		house.MoveRemove: pw.Remove,
		house.MoveAdd:    pw.Add,
	}
}
