package scenario

import (
	"time"

	"scenariogen/pkg/finalstate"
	"scenariogen/pkg/house"
)

// PerturbationOverrides lets a caller override any subset of the
// difficulty-derived perturbation parameters (spec.md §6).
type PerturbationOverrides struct {
	NumPerturbations *int
	MinViolPerPlayer *int
	AllowedTypes     []house.MoveKind
	TypeWeights      map[house.MoveKind]float64
	MaxAttempts      *int
}

// GenerateConfig is GenerateScenario's input (spec.md §6).
type GenerateConfig struct {
	NumPlayers   int
	Difficulty   string
	Seed         *uint32
	Perturbation *PerturbationOverrides
	WarmCoolBias *float64

	// DifficultyOverride, when set, replaces finalstate.ParamsFor's table
	// lookup entirely. pkg/config populates this from an optional YAML
	// profile file so an operator can retune difficulty presets without a
	// code change; the core itself stays ignorant of YAML or files.
	DifficultyOverride *finalstate.DifficultyParams
}

// normalizeConfig clamps/defaults a caller-supplied config per spec.md §7:
// the core normalizes rather than leaving degenerate values for the
// generator to choke on.
func normalizeConfig(cfg GenerateConfig) GenerateConfig {
	switch cfg.NumPlayers {
	case 2, 3, 4:
	default:
		cfg.NumPlayers = 3
	}

	switch finalstate.Difficulty(cfg.Difficulty) {
	case finalstate.Easy, finalstate.Medium, finalstate.Hard:
	default:
		cfg.Difficulty = string(finalstate.Medium)
	}

	if cfg.Seed == nil {
		seed := uint32(time.Now().UnixMilli())
		cfg.Seed = &seed
	}

	return cfg
}
