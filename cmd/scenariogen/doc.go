// Package main implements the scenariogen CLI.
//
// scenariogen generates one deterministic decoration-puzzle scenario per
// invocation and prints it as JSON to stdout.
//
// # Usage
//
//	scenariogen -num-players 3 -difficulty hard -seed 42
//
// # Flags
//
//   - -num-players: 2, 3, or 4 (default from DEFAULT_NUM_PLAYERS)
//   - -difficulty: easy, medium, or hard (default from DEFAULT_DIFFICULTY)
//   - -seed: top-level 32-bit seed; omit for a wall-clock-derived one
//   - -warm-cool-bias: overrides the difficulty's warm/cool assignment bias
//   - -num-perturbations, -min-viol-per-player, -max-attempts: perturbation
//     engine overrides
//   - -serve-metrics: start the Prometheus metrics HTTP handler on
//     METRICS_PORT and block until terminated, instead of exiting after
//     printing the scenario
//
// # Environment Variables
//
// See pkg/config for the full list (LOG_LEVEL, LOG_FORMAT,
// DEFAULT_DIFFICULTY, DEFAULT_NUM_PLAYERS, METRICS_ENABLED, METRICS_PORT,
// DIFFICULTY_PROFILE_FILE).
package main
