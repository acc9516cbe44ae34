// Package nnue implements the phase-adaptive quantized neural evaluator:
// a pattern-feature input transformer feeding 60 ply-indexed stacks of
// quantized affine layers, ported in spirit from Stockfish's NNUE layers
// the way sfnnue/nnue_architecture.go ports them,
// but driven by Reversi pattern features instead of HalfKA-v2 chess
// features.
package nnue

const (
	// MaxPly bounds the ply-indexed layer stack and phase-adaptive input
	// selection; a Reversi game has at most 60 plies after the 4 opening
	// discs are placed.
	MaxPly = 60

	// NumLayerStacks is the number of independent L1/L2/output layer triples,
	// one per ply.
	NumLayerStacks = 60

	// NumPhaseAdaptiveInput is the number of independent input-transformer
	// weight sets, each covering a 10-ply band of the game.
	NumPhaseAdaptiveInput = 6
	plysPerPhaseInput     = MaxPly / NumPhaseAdaptiveInput

	// MobilityScale is the multiplier applied to the mover's move count
	// before it is folded into the network as an extra scalar input.
	MobilityScale = 3

	// HiddenWeightScaleBits is the fixed-point shift applied by ClippedReLU
	// between hidden layers.
	HiddenWeightScaleBits = 6
	// OutputWeightScaleBits is the fixed-point shift applied to the final
	// layer's raw output to produce a Score.
	OutputWeightScaleBits = 4

	// PAOutputSize is the width of the phase-adaptive input transformer's
	// output accumulator.
	PAOutputSize = 64

	// L1PAInputDims is the phase-adaptive input width plus one slot for the
	// mobility feature.
	L1PAInputDims  = PAOutputSize + 1
	L1PAOutputDims = 8

	L2InputDims  = L1PAOutputDims
	L2OutputDims = 32

	LOInputDims = L2OutputDims

	// UnivOutputSize is the width of the main network's (non-phase-banked)
	// input transformer's output accumulator, wider than PAOutputSize since
	// one weight set has to cover every midgame ply instead of a 10-ply
	// band of it.
	UnivOutputSize = 128

	// L1UnivInputDims is the universal-input width plus one slot for the
	// mobility feature. L1UnivOutputDims matches L1PAOutputDims so both
	// networks' layer stacks can share the same L2/output dimensions.
	L1UnivInputDims  = UnivOutputSize + 1
	L1UnivOutputDims = L1PAOutputDims

	// MainNetworkPlyThreshold is the ply at which Evaluator switches from
	// the main network to NetworkSmall, grounded on original_source/
	// reversi_core/src/eval.rs's literal `ctx.ply() < 30` dispatch.
	MainNetworkPlyThreshold = 30

	// EvalScoreScaleBits/EvalScoreScale convert between a disc-count Score
	// and the finer-grained internal scale the network operates on.
	EvalScoreScaleBits = 6
	EvalScoreScale     = 1 << EvalScoreScaleBits

	ScoreMax = 64
	ScoreMin = -64

	MidScoreMax = ScoreMax << EvalScoreScaleBits
	MidScoreMin = ScoreMin << EvalScoreScaleBits
)

// clamp restricts x to [lo, hi].
func clamp(x, lo, hi int32) int32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
