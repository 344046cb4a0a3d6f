// Package miner enumerates every constraint.Constraint satisfied by a
// given house.State and tags each with a base salience score (spec.md
// §4.5). The miner must never emit a constraint the state doesn't actually
// satisfy — that invariant is the package's whole correctness contract —
// so most emission sites check constraint.Evaluate directly rather than
// trusting the enumeration to be constructively correct.
package miner
