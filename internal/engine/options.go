package engine

import (
	"runtime"
	"time"

	"github.com/natsutteatsuiyone/neural-reversi-sub002/internal/board"
	"github.com/natsutteatsuiyone/neural-reversi-sub002/internal/nnue"
	"github.com/natsutteatsuiyone/neural-reversi-sub002/internal/storage"
)

// Options configures an Engine for its lifetime: table sizes and worker
// count. Grounded on NewEngine(ttSizeMB)'s constructor argument plus
// original_source's SearchOptions builder, generalized into a single
// options struct in Go's own idiom (plain struct + functional defaults)
// rather than ported method-chaining.
type Options struct {
	TTSizeMB      int
	EvalCacheLog2 uint
	NumThreads    int

	// EvalWeightPath loads NetworkSmall, used from ply
	// nnue.MainNetworkPlyThreshold onward. EvalMainWeightPath loads the
	// main network used for every ply before that.
	EvalWeightPath     string
	EvalMainWeightPath string

	// Store, if non-nil, lets NewEngine seed any zero-valued field above
	// from previously persisted storage.EngineSettings, and lets
	// Engine.Search warm-start/persist exact endgame results through
	// storage.PositionRecord. Optional: an Engine built with Store == nil
	// behaves exactly as before, consulting only the in-memory TT/EvalCache.
	Store *storage.Storage
}

// DefaultOptions returns sane defaults: 64MB transposition table, a 2^20
// entry eval cache, and one worker per logical CPU.
func DefaultOptions() Options {
	return Options{
		TTSizeMB:      64,
		EvalCacheLog2: 20,
		NumThreads:    runtime.GOMAXPROCS(0),
	}
}

// Constraint is the terminating condition for one search call: either a
// fixed strength Level or a time budget.
type Constraint struct {
	Level    Level
	MoveTime time.Duration
	UseLevel bool
}

// LevelConstraint returns a Constraint that runs to a fixed level's depth.
func LevelConstraint(level Level) Constraint {
	return Constraint{Level: level, UseLevel: true}
}

// TimeConstraint returns a Constraint that searches until moveTime elapses.
func TimeConstraint(moveTime time.Duration) Constraint {
	return Constraint{MoveTime: moveTime, Level: GetLevel(MaxLevel)}
}

// RunOptions configures a single search call.
type RunOptions struct {
	Constraint  Constraint
	Selectivity int
	OnProgress  func(Info)
}

// GamePhase classifies a position by which network evaluates it, mirroring
// original_source/reversi_core/src/eval.rs's GamePhase enum's MidGame/
// EndGame split.
type GamePhase int

const (
	MidGame GamePhase = iota
	EndGame
)

func (p GamePhase) String() string {
	if p == EndGame {
		return "endgame"
	}
	return "midgame"
}

// gamePhaseFor classifies a position by remaining empty squares against the
// same ply threshold the NNUE evaluator dispatches networks on.
func gamePhaseFor(emptyCount int) GamePhase {
	ply := 60 - emptyCount
	if ply >= nnue.MainNetworkPlyThreshold {
		return EndGame
	}
	return MidGame
}

// selectivityProbability maps each ProbCut selectivity band to the
// statistical confidence, as a percentage, that its cutoffs are correct:
// the widely published Edax/Logistello figures paired with probcut.go's
// probCutT z-scores.
var selectivityProbability = [NumSelectivityLevels]float64{
	74, 87, 95, 98, 99, 99.8, 100,
}

// ProbabilityFor returns the statistical confidence, as a percentage, of an
// exact result at the given selectivity band.
func ProbabilityFor(selectivity int) float64 {
	if selectivity < 0 {
		selectivity = 0
	}
	if selectivity >= NumSelectivityLevels {
		selectivity = NumSelectivityLevels - 1
	}
	return selectivityProbability[selectivity]
}

// RootMove is one root candidate's evaluation: the move itself, its score,
// and the principal variation found after it. SearchResult.PVMoves carries
// one entry per root move under multi-PV search; this engine only ever
// populates the single best line found; a caller wanting true multi-PV
// would need Engine.Search to keep searching root moves after the best one
// is found, which is future work rather than a plumbing gap.
type RootMove struct {
	Sq    board.Square
	Score Score
	PV    []board.Move
}

// SearchResult is Engine.Search's return value: the outward-facing contract
// a caller uses to pick a move and report on the search, mirroring
// SearchWithLimits's result alongside the selectivity/game-phase/multi-PV
// fields a full search-result contract carries.
type SearchResult struct {
	Score       Score
	BestMove    board.Square
	PVLine      []board.Move
	Depth       int
	Selectivity int
	NNodes      uint64
	GamePhase   GamePhase
	PVMoves     []RootMove
}

// Info reports the state of an in-progress or completed search, mirroring
// SearchInfo's shape (depth/score/nodes/time/PV/hash fullness) and extended
// with the selectivity/game-phase/confidence fields a progress-callback
// contract carries.
type Info struct {
	Depth       int
	Score       Score
	Nodes       uint64
	Elapsed     time.Duration
	PV          []board.Move
	HashFull    int
	Selectivity int
	GamePhase   GamePhase
	Probability float64
	PVMoves     []RootMove
}
