package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"scenariogen/pkg/config"
	"scenariogen/pkg/finalstate"
	"scenariogen/pkg/metrics"
	"scenariogen/pkg/scenario"
)

// uuidNamespace roots the deterministic ScenarioID derivation; any fixed
// UUID works here, it just has to never change between runs.
var uuidNamespace = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

func main() {
	cfg := loadAndConfigureSystem()
	genCfg, serveMetrics := parseFlags(cfg)

	m := maybeNewMetrics(cfg)

	output := buildScenario(genCfg, m)

	if err := json.NewEncoder(os.Stdout).Encode(output); err != nil {
		logrus.WithError(err).Fatal("failed to encode scenario")
	}

	if serveMetrics {
		if m == nil {
			logrus.Fatal("-serve-metrics requires METRICS_ENABLED=true")
		}
		runMetricsServer(cfg, m)
	}
}

// scenarioOutput is the CLI's JSON wire shape: the pure core's Scenario
// plus a ScenarioID stamped here, not in pkg/scenario, so the core stays
// free of identifier/storage concerns (spec.md §1 places persistence
// out of scope).
type scenarioOutput struct {
	scenario.Scenario
	ScenarioID uuid.UUID `json:"scenarioId"`
}

func buildScenario(genCfg scenario.GenerateConfig, m *metrics.Metrics) scenarioOutput {
	if genCfg.Seed == nil {
		s := uint32(time.Now().UnixMilli())
		genCfg.Seed = &s
	}
	sc := scenario.GenerateObserved(genCfg, logrus.StandardLogger(), m)

	seedBytes := []byte(fmt.Sprintf("%d:%d:%s", derefSeed(genCfg.Seed), sc.NumPlayers, sc.Difficulty))
	id := uuid.NewSHA1(uuidNamespace, seedBytes)

	return scenarioOutput{Scenario: sc, ScenarioID: id}
}

func derefSeed(seed *uint32) uint32 {
	if seed == nil {
		return 0
	}
	return *seed
}

// parseFlags builds a GenerateConfig from CLI flags layered over cfg's
// environment-derived defaults, and reports whether -serve-metrics was
// passed.
func parseFlags(cfg *config.Config) (scenario.GenerateConfig, bool) {
	numPlayers := flag.Int("num-players", cfg.DefaultNumPlayers, "number of players (2, 3, or 4)")
	difficulty := flag.String("difficulty", cfg.DefaultDifficulty, "easy, medium, or hard")
	seed := flag.Uint64("seed", 0, "top-level 32-bit seed (0 = wall-clock derived)")
	warmCoolBias := flag.Float64("warm-cool-bias", 0, "override the difficulty's warm/cool assignment bias (0 = use difficulty default)")
	numPerturbations := flag.Int("num-perturbations", 0, "override perturbation step count (0 = use difficulty default)")
	minViolPerPlayer := flag.Int("min-viol-per-player", 0, "override minimum violations per player (0 = use the default of 1)")
	maxAttempts := flag.Int("max-attempts", 0, "override perturbation search attempt cap (0 = use the default of 30)")
	difficultyProfileFile := flag.String("difficulty-profile-file", cfg.DifficultyProfileFile, "optional YAML file overriding difficulty presets")
	serveMetrics := flag.Bool("serve-metrics", false, "serve the Prometheus metrics handler after printing the scenario")
	flag.Parse()

	genCfg := scenario.GenerateConfig{
		NumPlayers: *numPlayers,
		Difficulty: *difficulty,
	}

	if *seed != 0 {
		s := uint32(*seed)
		genCfg.Seed = &s
	}
	if *warmCoolBias != 0 {
		genCfg.WarmCoolBias = warmCoolBias
	}

	var pert scenario.PerturbationOverrides
	hasPert := false
	if *numPerturbations != 0 {
		pert.NumPerturbations = numPerturbations
		hasPert = true
	}
	if *minViolPerPlayer != 0 {
		pert.MinViolPerPlayer = minViolPerPlayer
		hasPert = true
	}
	if *maxAttempts != 0 {
		pert.MaxAttempts = maxAttempts
		hasPert = true
	}
	if hasPert {
		genCfg.Perturbation = &pert
	}

	if *difficultyProfileFile != "" {
		overrides, err := config.LoadDifficultyOverrides(*difficultyProfileFile)
		if err != nil {
			logrus.WithError(err).Fatal("failed to load difficulty profile file")
		}
		if dp, ok := overrides[finalstate.Difficulty(*difficulty)]; ok {
			genCfg.DifficultyOverride = &dp
		}
	}

	return genCfg, *serveMetrics
}

func maybeNewMetrics(cfg *config.Config) *metrics.Metrics {
	if !cfg.MetricsEnabled {
		return nil
	}
	return metrics.New()
}

// loadAndConfigureSystem loads configuration and sets up logging.
func loadAndConfigureSystem() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load configuration")
	}

	configureLogging(cfg.LogLevel, cfg.LogFormat)
	return cfg
}

// configureLogging sets up the logging system based on configuration.
func configureLogging(logLevel, logFormat string) {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.WithError(err).Warn("invalid log level, using info")
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	if logFormat == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{})
	}
}

// runMetricsServer starts the metrics HTTP handler and blocks until a
// shutdown signal arrives.
func runMetricsServer(cfg *config.Config, m *metrics.Metrics) {
	snap := cfg.Snapshot()

	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())

	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", snap.MetricsPort))
	if err != nil {
		logrus.WithError(err).Fatal("failed to start metrics listener")
	}

	srv := &http.Server{Handler: mux}
	errChan := make(chan error, 1)
	go func() {
		logrus.WithField("address", listener.Addr()).Info("metrics server listening")
		if err := srv.Serve(listener); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("metrics server failed: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logrus.WithField("signal", sig).Info("received shutdown signal")
	case err := <-errChan:
		logrus.WithError(err).Error("metrics server error")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Warn("error during metrics server shutdown")
	}
}
