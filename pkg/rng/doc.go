// Package rng implements the Mulberry32 pseudo-random generator used by
// every stage of scenario generation.
//
// Determinism is the whole point of this package: given the same uint32
// seed, every method call sequence must produce bit-identical output
// across runs and across re-implementations in other languages. That
// rules out widening the internal state to 64 bits, using math/rand, or
// substituting a "better" generator — see DESIGN.md for why.
package rng
