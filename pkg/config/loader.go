package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"scenariogen/pkg/finalstate"
)

// difficultyPatch is a partial override of finalstate.DifficultyParams; any
// field absent from the YAML (left nil) keeps the table default, while a
// field given explicitly, even as zero, replaces it. Mirrors
// the override-table idea of the teacher's YAML-tagged PCG template
// structs, scaled down to this engine's handful of tunables.
type difficultyPatch struct {
	NumColors *int `yaml:"numColors"`
	NumStyles *int `yaml:"numStyles"`

	TotalItemsMin *int `yaml:"totalItemsMin"`
	TotalItemsMax *int `yaml:"totalItemsMax"`

	PatternProb    *float64 `yaml:"patternProb"`
	RulesPerPlayer *int     `yaml:"rulesPerPlayer"`

	PertRangeMin *int `yaml:"pertRangeMin"`
	PertRangeMax *int `yaml:"pertRangeMax"`

	WarmCoolBias *float64 `yaml:"warmCoolBias"`

	PertWeights *struct {
		Paint  *float64 `yaml:"paint"`
		Swap   *float64 `yaml:"swap"`
		Remove *float64 `yaml:"remove"`
		Add    *float64 `yaml:"add"`
	} `yaml:"pertWeights"`
}

// difficultyProfileFile is the on-disk shape of DIFFICULTY_PROFILE_FILE:
// a map keyed by "easy"/"medium"/"hard", each value a partial override.
type difficultyProfileFile map[string]difficultyPatch

// LoadDifficultyOverrides reads filename (if non-empty) and returns, for
// each difficulty present in the file, finalstate.ParamsFor's table row
// with the file's overrides applied on top. Difficulties absent from the
// file are simply absent from the returned map; callers fall back to
// finalstate.ParamsFor for anything not present.
func LoadDifficultyOverrides(filename string) (map[finalstate.Difficulty]finalstate.DifficultyParams, error) {
	if filename == "" {
		return nil, nil
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading difficulty profile file: %w", err)
	}

	var file difficultyProfileFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing difficulty profile file: %w", err)
	}

	out := make(map[finalstate.Difficulty]finalstate.DifficultyParams, len(file))
	for key, patch := range file {
		d := finalstate.Difficulty(key)
		switch d {
		case finalstate.Easy, finalstate.Medium, finalstate.Hard:
		default:
			return nil, fmt.Errorf("difficulty profile file: unknown difficulty %q", key)
		}
		out[d] = applyPatch(finalstate.ParamsFor(d), patch)
	}

	return out, nil
}

func applyPatch(base finalstate.DifficultyParams, p difficultyPatch) finalstate.DifficultyParams {
	if p.NumColors != nil {
		base.NumColors = *p.NumColors
	}
	if p.NumStyles != nil {
		base.NumStyles = *p.NumStyles
	}
	if p.TotalItemsMin != nil {
		base.TotalItemsMin = *p.TotalItemsMin
	}
	if p.TotalItemsMax != nil {
		base.TotalItemsMax = *p.TotalItemsMax
	}
	if p.PatternProb != nil {
		base.PatternProb = *p.PatternProb
	}
	if p.RulesPerPlayer != nil {
		base.RulesPerPlayer = *p.RulesPerPlayer
	}
	if p.PertRangeMin != nil {
		base.PertRangeMin = *p.PertRangeMin
	}
	if p.PertRangeMax != nil {
		base.PertRangeMax = *p.PertRangeMax
	}
	if p.WarmCoolBias != nil {
		base.WarmCoolBias = *p.WarmCoolBias
	}
	if p.PertWeights != nil {
		if p.PertWeights.Paint != nil {
			base.PertWeights.Paint = *p.PertWeights.Paint
		}
		if p.PertWeights.Swap != nil {
			base.PertWeights.Swap = *p.PertWeights.Swap
		}
		if p.PertWeights.Remove != nil {
			base.PertWeights.Remove = *p.PertWeights.Remove
		}
		if p.PertWeights.Add != nil {
			base.PertWeights.Add = *p.PertWeights.Add
		}
	}
	return base
}
