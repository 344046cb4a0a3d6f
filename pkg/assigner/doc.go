// Package assigner distributes mined candidates (pkg/miner) across players,
// biasing toward room/kind/polarity diversity within each player's rule set
// (spec.md §4.6).
package assigner
