// Package finalstate builds the solution board: the fully-placed house.State
// a scenario's perturbation engine will later walk away from and a
// player's rule set will later be scored against.
//
// Generation is a single pure function of (rng, numPlayers, DifficultyParams)
// — no package-level state, no clock, no I/O.
package finalstate
