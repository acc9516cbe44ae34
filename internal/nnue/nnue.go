package nnue

import (
	"math/bits"

	"github.com/natsutteatsuiyone/neural-reversi-sub002/internal/board"
	"github.com/natsutteatsuiyone/neural-reversi-sub002/internal/pattern"
)

// accumulatorEntry holds the pattern-feature indices for both the side to
// move and its opponent at one point in the search stack, from which
// NetworkSmall.Evaluate's flat feature vector is derived.
type accumulatorEntry struct {
	self, other pattern.Indices
}

// AccumulatorStack mirrors sfnnue's depth-indexed accumulator stack:
// Push/Pop move a cursor over a preallocated array instead of
// allocating per node, and Evaluator.Update reuses the parent entry's
// indices instead of recomputing them from the board.
// maxStackDepth bounds how deep a single search line can push the
// accumulator stack; 128 comfortably covers the 60-ply game length plus
// quiescence/extension overshoot.
const maxStackDepth = 128

type AccumulatorStack struct {
	entries [maxStackDepth]accumulatorEntry
	depth   int
}

// NewAccumulatorStack returns a stack positioned at depth 0, uncomputed.
func NewAccumulatorStack() *AccumulatorStack {
	return &AccumulatorStack{}
}

// Push duplicates the current entry onto a new stack slot, so the child
// node starts from its parent's feature indices before being updated.
func (s *AccumulatorStack) Push() {
	s.entries[s.depth+1] = s.entries[s.depth]
	s.depth++
}

// Pop discards the current slot and returns to the parent's.
func (s *AccumulatorStack) Pop() {
	s.depth--
}

// Reset returns the stack to depth 0, entry left as-is; callers should
// Refresh after Reset if the board at depth 0 has changed.
func (s *AccumulatorStack) Reset() {
	s.depth = 0
}

// Evaluator is the search-facing NNUE scorer: the main network and
// NetworkSmall, dispatched by ply, plus a push/pop accumulator stack of
// incrementally maintained pattern-feature indices, one entry per
// search-tree ply. Grounded on original_source/reversi_core/src/eval.rs's
// Eval struct, which holds both network and network_sm side by side.
type Evaluator struct {
	netMain  *Network
	netSmall *NetworkSmall
	stack    *AccumulatorStack
}

// NewEvaluator loads the main and small weight files and returns a ready
// Evaluator. An empty path leaves the corresponding network
// zero-initialized, which is useful for tests that only exercise the
// accumulator bookkeeping.
func NewEvaluator(mainWeightsFile, smallWeightsFile string) (*Evaluator, error) {
	netMain, err := loadOrNewNetwork(mainWeightsFile)
	if err != nil {
		return nil, err
	}
	netSmall, err := loadOrNewNetworkSmall(smallWeightsFile)
	if err != nil {
		return nil, err
	}

	return &Evaluator{
		netMain:  netMain,
		netSmall: netSmall,
		stack:    NewAccumulatorStack(),
	}, nil
}

func loadOrNewNetwork(weightsFile string) (*Network, error) {
	if weightsFile == "" {
		return NewNetwork(), nil
	}
	return LoadNetwork(weightsFile)
}

func loadOrNewNetworkSmall(weightsFile string) (*NetworkSmall, error) {
	if weightsFile == "" {
		return NewNetworkSmall(), nil
	}
	return LoadNetworkSmall(weightsFile)
}

// NewEvaluatorSharing returns an Evaluator that reuses already-loaded
// networks (read-only once loaded) with its own fresh accumulator stack.
// Lazy-SMP worker pools use this so every worker's evaluator shares one
// in-memory copy of the weights instead of reloading and duplicating them
// per goroutine.
func NewEvaluatorSharing(netMain *Network, netSmall *NetworkSmall) *Evaluator {
	return &Evaluator{
		netMain:  netMain,
		netSmall: netSmall,
		stack:    NewAccumulatorStack(),
	}
}

// Reset returns the accumulator stack to depth 0 for a new search; callers
// must Refresh afterward before evaluating.
func (e *Evaluator) Reset() {
	e.stack.Reset()
}

// Push saves accumulator state; call before descending to a child node.
func (e *Evaluator) Push() {
	e.stack.Push()
}

// Pop restores the parent's accumulator state; call after returning from a
// child node.
func (e *Evaluator) Pop() {
	e.stack.Pop()
}

// Refresh recomputes the current entry's feature indices from scratch. Call
// on search start and whenever incremental tracking would be more expensive
// than a fresh computation (e.g. after a null move).
func (e *Evaluator) Refresh(b board.Board) {
	cur := &e.stack.entries[e.stack.depth]
	cur.self, cur.other = pattern.Compute(b)
}

// Update incrementally advances the current entry's feature indices for the
// move (sq, flipped) just played; call after Board.MakeMove on the child's
// entry (i.e. after Push).
func (e *Evaluator) Update(sq board.Square, flipped board.Bitboard) {
	cur := &e.stack.entries[e.stack.depth]
	cur.self, cur.other = pattern.Update(cur.self, cur.other, sq, flipped)
}

// Evaluate scores b from the side-to-move perspective whose feature indices
// are tracked as "self" in the current accumulator entry. ply is the number
// of discs played since the game's initial four, used to select both the
// phase-adaptive input bank and the layer stack. Plies before
// MainNetworkPlyThreshold are scored by the main network; the rest by the
// leaner NetworkSmall, the same split original_source's eval.rs dispatches
// on.
func (e *Evaluator) Evaluate(b board.Board, ply int) int32 {
	if ply >= MaxPly {
		ply = MaxPly - 1
	}
	cur := &e.stack.entries[e.stack.depth]
	mobility := bits.OnesCount64(uint64(b.GetMoves()))
	if ply < MainNetworkPlyThreshold {
		return e.netMain.Evaluate(cur.self, mobility, ply)
	}
	return e.netSmall.Evaluate(cur.self, mobility, ply)
}
