package scenario

import (
	"time"

	"github.com/sirupsen/logrus"

	"scenariogen/pkg/metrics"
)

// ScenarioGenerator wraps GenerateScenario with the ambient logging and
// metrics concerns GenerateScenario itself must stay free of (spec.md §5:
// the core is a pure function).
type ScenarioGenerator struct {
	logger *logrus.Logger
	m      *metrics.Metrics
}

// NewScenarioGenerator constructs a ScenarioGenerator. A nil logger
// defaults to logrus's standard logger; m may be nil to disable metrics.
func NewScenarioGenerator(logger *logrus.Logger, m *metrics.Metrics) *ScenarioGenerator {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &ScenarioGenerator{logger: logger, m: m}
}

// Generate runs GenerateScenario and records its observable side effects:
// a Prometheus summary (when metrics were configured) and a post-hoc
// structured log line.
func (g *ScenarioGenerator) Generate(cfg GenerateConfig) Scenario {
	var end func()
	if g.m != nil {
		end = g.m.BeginGeneration()
		defer end()
	}

	start := time.Now()
	sc, diag := GenerateScenario(cfg)
	duration := time.Since(start)

	success := diag.PerturbationScore == sc.NumPlayers

	if g.m != nil {
		g.m.RecordGeneration(sc.Difficulty, success, duration)
		g.m.RecordPerturbationAttempts(sc.Difficulty, diag.PerturbationAttempts)
		g.m.RecordCandidatesMined(sc.Difficulty, diag.CandidatesMined)
	}

	g.logger.WithFields(logrus.Fields{
		"numPlayers":           sc.NumPlayers,
		"difficulty":           sc.Difficulty,
		"candidatesMined":      diag.CandidatesMined,
		"perturbationAttempts": diag.PerturbationAttempts,
		"perturbationScore":    diag.PerturbationScore,
		"durationMs":           duration.Milliseconds(),
	}).Info("scenario generated")

	if !success {
		g.logger.WithFields(logrus.Fields{
			"numPlayers":           sc.NumPlayers,
			"difficulty":           sc.Difficulty,
			"perturbationScore":    diag.PerturbationScore,
			"perturbationAttempts": diag.PerturbationAttempts,
		}).Warn("scenario generated without meeting every player's perturbation target")
	}

	return sc
}

// GenerateObserved is the package-level convenience form of
// (*ScenarioGenerator).Generate, logging through logrus's standard logger.
// logger and m may both be nil.
func GenerateObserved(cfg GenerateConfig, logger *logrus.Logger, m *metrics.Metrics) Scenario {
	return NewScenarioGenerator(logger, m).Generate(cfg)
}
