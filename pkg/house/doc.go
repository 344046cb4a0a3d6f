// Package house implements the furnished-house state model: rooms arranged
// on a 2x2 grid, the closed color/style/object-type palettes, the
// style-to-color map, and the mutations, adjacency queries, and
// fingerprinting that the constraint evaluator, miner, and perturbation
// engine all build on.
package house
