// Package metrics exposes Prometheus instrumentation for scenario
// generation: counts, durations, and perturbation-search effort, labeled
// by difficulty.
package metrics
