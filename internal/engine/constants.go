// Package engine implements parallel alpha-beta search over Reversi
// positions: a bucketed transposition table (one spin lock per bucket, not
// lock-free), ProbCut-accelerated
// midgame search, a last-empties endgame solver driven by board.EmptyList,
// and a Lazy-SMP style worker pool sharing that table and the position's
// NNUE accumulator state.
package engine

import "github.com/natsutteatsuiyone/neural-reversi-sub002/internal/nnue"

// Score is a search value in the same scaled units nnue.NetworkSmall
// produces: one disc of material is EvalScoreScale units. Exact endgame
// results (a final disc differential) are scaled up by EvalScoreScale so
// they compare directly against midgame NNUE scores.
type Score = int32

const (
	// Infinity bounds alpha-beta search; it must exceed any possible Score.
	Infinity Score = 1 << 20

	// WinScore/LoseScore are the extreme exact endgame results, scaled,
	// used as internal alpha-beta bounds (negamax/tryProbCut never see
	// unscaled Score values).
	WinScore  Score = 64 * nnue.EvalScoreScale
	LoseScore Score = -WinScore

	// MaxDiscDiff is the same extreme, in the raw disc-differential units
	// Search/SolveRoot report at their outward-facing boundary.
	MaxDiscDiff Score = 64

	// MaxSearchPly bounds PV/killer/history tables; a Reversi game is at
	// most 60 plies deep from the position after the opening four discs.
	MaxSearchPly = 64
)

// toExactScore scales a raw disc differential (the losing/winning margin,
// in the range [-64,64]) into Score units.
func toExactScore(discDiff int) Score {
	return Score(discDiff) * nnue.EvalScoreScale
}

// toRawScore converts an internal, NNUE-scaled Score back to a plain disc
// differential: the unit Search/SolveRoot report at their outward-facing
// boundary, so that a caller (or a test comparing against an independently
// published exact endgame score) never has to know about EvalScoreScale.
func toRawScore(s Score) Score {
	return s / nnue.EvalScoreScale
}
