// Package constraint defines the closed catalogue of rule kinds a scenario
// can state about a house.State, plus the single exhaustive evaluator every
// kind dispatches through.
//
// The catalogue is a tagged union, not an open plugin registry: every kind
// is a Go constant and every kind has exactly one arm in Evaluate. Go does
// not check a switch for exhaustiveness, so a kind without an arm surfaces
// at runtime in the default arm. Reaching it means the enum and the
// evaluator have drifted apart — a programming error, not a data error — so
// it panics.
package constraint
