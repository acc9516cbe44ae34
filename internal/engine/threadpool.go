package engine

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/natsutteatsuiyone/neural-reversi-sub002/internal/board"
	"github.com/natsutteatsuiyone/neural-reversi-sub002/internal/evalcache"
	"github.com/natsutteatsuiyone/neural-reversi-sub002/internal/nnue"
	"github.com/natsutteatsuiyone/neural-reversi-sub002/internal/storage"
)

// workerResult is one worker's contribution for one completed depth,
// grounded on engine.go's WorkerResult/resultCh pattern.
type workerResult struct {
	depth int
	score Score
	move  board.Square
	pv    []board.Square
}

// Engine is the top-level Reversi search engine: a shared transposition
// table and eval cache, the main and small NNUE networks shared read-only
// across a pool of per-worker SearchContexts, and the Lazy-SMP
// iterative-deepening driver that fans work out across them. Grounded on
// internal/engine/engine.go's Engine (NewEngine(ttSizeMB), SearchWithLimits's
// worker/WaitGroup/result-channel loop), with book/tablebase/UCI-specific
// collaborators dropped (out of scope for this evaluator) and Difficulty
// replaced by the Level ladder from level.go.
type Engine struct {
	tt        *TranspositionTable
	evalCache *evalcache.EvalCache
	netMain   *nnue.Network
	netSmall  *nnue.NetworkSmall
	store     *storage.Storage

	contexts []*SearchContext
	stopFlag atomic.Bool
}

// NewEngine builds an engine around opts, loading NNUE weights from
// opts.EvalMainWeightPath/opts.EvalWeightPath if set (otherwise running with
// zero-initialized networks, useful for tests that only exercise search
// plumbing). If opts.Store is set, any of TTSizeMB/EvalCacheLog2/NumThreads/
// EvalWeightPath left at their Go zero value are seeded from the caller's
// last persisted storage.EngineSettings, and the effective settings are
// written back so the next NewEngine call (even with bare Options{Store:
// opts.Store}) resumes them.
func NewEngine(opts Options) (*Engine, error) {
	savedSelectivity := NoSelectivity
	if opts.Store != nil {
		saved, err := opts.Store.LoadSettings()
		if err != nil {
			return nil, fmt.Errorf("load persisted engine settings: %w", err)
		}
		if opts.TTSizeMB == 0 {
			opts.TTSizeMB = saved.TTSizeMB
		}
		if opts.EvalCacheLog2 == 0 {
			opts.EvalCacheLog2 = saved.EvalCacheLog2
		}
		if opts.NumThreads == 0 {
			opts.NumThreads = saved.NumThreads
		}
		if opts.EvalWeightPath == "" {
			opts.EvalWeightPath = saved.EvalWeightPath
		}
		savedSelectivity = saved.Selectivity
	}

	tt := NewTranspositionTable(opts.TTSizeMB)
	ec := evalcache.New(opts.EvalCacheLog2)

	var netMain *nnue.Network
	if opts.EvalMainWeightPath != "" {
		loaded, err := nnue.LoadNetwork(opts.EvalMainWeightPath)
		if err != nil {
			return nil, fmt.Errorf("load main evaluator weights: %w", err)
		}
		netMain = loaded
	} else {
		netMain = nnue.NewNetwork()
	}

	var netSmall *nnue.NetworkSmall
	if opts.EvalWeightPath != "" {
		loaded, err := nnue.LoadNetworkSmall(opts.EvalWeightPath)
		if err != nil {
			return nil, fmt.Errorf("load small evaluator weights: %w", err)
		}
		netSmall = loaded
	} else {
		netSmall = nnue.NewNetworkSmall()
	}

	n := opts.NumThreads
	if n < 1 {
		n = 1
	}

	e := &Engine{
		tt:        tt,
		evalCache: ec,
		netMain:   netMain,
		netSmall:  netSmall,
		store:     opts.Store,
		contexts:  make([]*SearchContext, n),
	}

	if opts.Store != nil {
		if err := opts.Store.SaveSettings(&storage.EngineSettings{
			TTSizeMB:       opts.TTSizeMB,
			EvalCacheLog2:  opts.EvalCacheLog2,
			NumThreads:     n,
			Selectivity:    savedSelectivity,
			EvalWeightPath: opts.EvalWeightPath,
		}); err != nil {
			return nil, fmt.Errorf("persist engine settings: %w", err)
		}
	}

	for i := 0; i < n; i++ {
		e.contexts[i] = NewSearchContext(tt, ec, nnue.NewEvaluatorSharing(netMain, netSmall), &e.stopFlag)
	}

	log.Printf("[engine] ready with %d workers, tt=%dMB", n, opts.TTSizeMB)
	return e, nil
}

// Stop asks any in-progress Search to return as soon as possible.
func (e *Engine) Stop() {
	e.stopFlag.Store(true)
}

// IsAborted reports whether Stop has been called for the current or most
// recent Search.
func (e *Engine) IsAborted() bool {
	return e.stopFlag.Load()
}

// Clear empties the transposition and eval caches, e.g. between unrelated
// games.
func (e *Engine) Clear() {
	e.tt.Clear()
	e.evalCache.Clear()
}

// Search runs a Lazy-SMP iterative-deepening search from g: every worker
// independently deepens from ply 1 upward against the same shared
// transposition table, so workers that get lucky with move ordering at a
// given depth accelerate the others' cutoffs at that same depth. The
// deepest result any worker completes before run's constraint fires is
// reported back, the same style of aggregation as SearchWithLimits's loop.
func (e *Engine) Search(g board.GameState, run RunOptions) SearchResult {
	e.stopFlag.Store(false)
	e.tt.NewSearch()

	phase := gamePhaseFor(g.Board.EmptyCount())
	probability := ProbabilityFor(run.Selectivity)

	maxDepth := g.Board.EmptyCount()
	if run.Constraint.UseLevel && run.Constraint.Level.MidDepth < maxDepth {
		maxDepth = run.Constraint.Level.MidDepth
	}

	// An exact full solve (selectivity disabled, depth budget reaching the
	// end of the game) is the only result precise enough to persist or
	// trust from a prior run: seed the shared TT with any matching record
	// before searching. The seeded entry carries no best move and the root
	// takes no TT cutoff, so the search still runs and picks its own move.
	exactFullSolve := run.Selectivity == NoSelectivity && maxDepth >= g.Board.EmptyCount()
	if exactFullSolve && e.store != nil {
		if rec, found, err := e.store.LoadPosition(g.Board.Hash); err == nil && found &&
			rec.Selectivity == NoSelectivity && int(rec.Depth) >= g.Board.EmptyCount() {
			e.tt.Store(g.Board.Hash, int(rec.Depth), int(rec.Selectivity), toExactScore(int(rec.Score)), BoundExact, board.NoSquare)
		}
	}

	var deadline time.Time
	if run.Constraint.MoveTime > 0 {
		deadline = time.Now().Add(run.Constraint.MoveTime)
	}

	resultCh := make(chan workerResult, len(e.contexts)*(maxDepth+1))
	var wg sync.WaitGroup
	for _, sc := range e.contexts {
		sc.SetRoot(g)
		wg.Add(1)
		go e.runWorker(sc, maxDepth, run.Selectivity, resultCh, &wg)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(resultCh)
		close(done)
	}()

	start := time.Now()
	var bestScore Score
	var bestMove board.Square = board.NoSquare
	var bestPV []board.Square
	var bestDepth int

collect:
	for {
		select {
		case r, ok := <-resultCh:
			if !ok {
				break collect
			}
			if r.depth > bestDepth || (r.depth == bestDepth && r.score > bestScore) {
				bestDepth, bestScore, bestMove, bestPV = r.depth, r.score, r.move, r.pv
				if run.OnProgress != nil {
					run.OnProgress(Info{
						Depth:       bestDepth,
						Score:       bestScore,
						Nodes:       e.totalNodes(),
						Elapsed:     time.Since(start),
						PV:          movesFromSquares(bestPV),
						HashFull:    e.tt.HashFull(),
						Selectivity: run.Selectivity,
						GamePhase:   phase,
						Probability: probability,
						PVMoves: []RootMove{
							{Sq: bestMove, Score: bestScore, PV: movesFromSquares(bestPV)},
						},
					})
				}
				if bestScore >= MaxDiscDiff || bestScore <= -MaxDiscDiff {
					e.stopFlag.Store(true)
				}
			}
			if !deadline.IsZero() && time.Now().After(deadline) {
				e.stopFlag.Store(true)
			}
		case <-done:
			break collect
		}
	}

	e.stopFlag.Store(true)
	<-done

	if exactFullSolve && e.store != nil && bestDepth >= g.Board.EmptyCount() {
		if err := e.store.SavePosition(storage.PositionRecord{
			Hash:        g.Board.Hash,
			Score:       bestScore,
			Depth:       uint8(bestDepth),
			Selectivity: uint8(run.Selectivity),
		}); err != nil {
			log.Printf("[engine] persist position record: %v", err)
		}
	}

	return SearchResult{
		Score:       bestScore,
		BestMove:    bestMove,
		PVLine:      movesFromSquares(bestPV),
		Depth:       bestDepth,
		Selectivity: run.Selectivity,
		NNodes:      e.totalNodes(),
		GamePhase:   phase,
		PVMoves: []RootMove{
			{Sq: bestMove, Score: bestScore, PV: movesFromSquares(bestPV)},
		},
	}
}

// runWorker iteratively deepens sc from depth 1 to maxDepth, publishing a
// workerResult after every completed depth, until the shared stop flag is
// set.
func (e *Engine) runWorker(sc *SearchContext, maxDepth int, selectivity int, out chan<- workerResult, wg *sync.WaitGroup) {
	defer wg.Done()

	for depth := 1; depth <= maxDepth; depth++ {
		if e.stopFlag.Load() {
			return
		}
		score, move := Search(sc, depth, selectivity)
		if e.stopFlag.Load() {
			return
		}
		out <- workerResult{
			depth: depth,
			score: score,
			move:  move,
			pv:    sc.PV(),
		}
	}
}

func (e *Engine) totalNodes() uint64 {
	var total uint64
	for _, sc := range e.contexts {
		total += sc.Nodes()
	}
	return total
}

func movesFromSquares(squares []board.Square) []board.Move {
	out := make([]board.Move, len(squares))
	for i, sq := range squares {
		out[i] = board.Move{Sq: sq}
	}
	return out
}
