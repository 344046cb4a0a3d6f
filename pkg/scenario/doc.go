// Package scenario wires together pkg/finalstate, pkg/miner, pkg/assigner,
// pkg/perturb, and pkg/render into the single pure top-level entry point:
// GenerateScenario. It owns the PRNG derivation plan (spec.md §9) that
// fans one top-level seed out into the independent child streams each
// stage consumes.
package scenario
