// Package perturb implements the two-phase backward search that turns a
// solution board into an initial board: a bounded random walk (Phase 1)
// followed by targeted violation repair (Phase 2), attempted up to
// maxAttempts times and scored by how many players end up with at least
// minViolPerPlayer broken rules (spec.md §4.7).
package perturb
