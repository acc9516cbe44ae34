// Package pattern implements the ternary pattern features consumed by the
// phase-adaptive neural evaluator: for each of a fixed set of square groups
// ("patterns"), a base-3 digit is assigned to every square in the group
// (empty / mine / opponent's) and the digits are combined into a single
// index into that pattern's weight table. The set of squares in each
// pattern, and the way an index changes when a handful of discs flip, is
// exactly the interface the NNUE package's input transformer consumes.
package pattern

// NumPatternFeatures is the number of distinct pattern tables.
const NumPatternFeatures = 16

// MaxPatternSquares bounds the number of squares in any single pattern.
const MaxPatternSquares = 10
