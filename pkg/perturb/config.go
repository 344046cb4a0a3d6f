package perturb

import "scenariogen/pkg/house"

// Config controls one Run of the perturbation engine.
type Config struct {
	NumPerturbations int
	MinViolPerPlayer int
	AllowedTypes     []house.MoveKind
	TypeWeights      map[house.MoveKind]float64
	MaxAttempts      int
}

var allMoveKinds = []house.MoveKind{house.MovePaint, house.MoveSwap, house.MoveRemove, house.MoveAdd}

func normalizeConfig(cfg Config) Config {
	if cfg.MinViolPerPlayer <= 0 {
		cfg.MinViolPerPlayer = 1
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 30
	}
	if len(cfg.AllowedTypes) == 0 {
		cfg.AllowedTypes = allMoveKinds
	}
	if len(cfg.TypeWeights) == 0 {
		weights := make(map[house.MoveKind]float64, len(allMoveKinds))
		for _, k := range allMoveKinds {
			weights[k] = 1.0
		}
		cfg.TypeWeights = weights
	}
	return cfg
}

func (cfg Config) allows(k house.MoveKind) bool {
	for _, a := range cfg.AllowedTypes {
		if a == k {
			return true
		}
	}
	return false
}
