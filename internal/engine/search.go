package engine

import "github.com/natsutteatsuiyone/neural-reversi-sub002/internal/board"

// Search runs a midgame-or-endgame negamax search from sc's current root,
// to depth ply (interpreted as a search-tree depth, not a game ply), at the
// given selectivity, and returns the score and the root's best square
// (board.NoSquare if the side to move has no legal move, whether it must
// pass or the game is already over).
func Search(sc *SearchContext, depth int, selectivity int) (Score, board.Square) {
	empties := sc.game.Board.EmptyCount()
	if empties <= depth {
		// The remaining game fits inside this search's depth budget: solve
		// it exactly with the dedicated endgame path instead of running a
		// depth-limited midgame search that would otherwise just reach the
		// same leaves through a slower, NNUE-evaluating code path.
		el := board.NewEmptyListOrdered(parityOrderedEmpties(sc.game.Board))
		return SolveRoot(sc, el, selectivity)
	}

	score := sc.negamax(depth, 0, -Infinity, Infinity, selectivity)
	return toRawScore(score), sc.rootBestMove()
}

// rootBestMove returns the first move of the PV recorded at ply 0, or
// NoSquare if the search never recorded one (no legal moves at the root).
func (sc *SearchContext) rootBestMove() board.Square {
	if sc.pv[0].length == 0 {
		return board.NoSquare
	}
	return sc.pv[0].moves[0]
}

// negamax is the midgame search: NNUE leaf evaluation, transposition table
// cutoffs, PVS re-search, late-move reductions and a ProbCut pre-check
// before committing to a full-width search at depth. Grounded on
// internal/engine/search.go's negamax shape and internal/engine/
// worker.go's logarithmic LMR table (generalized in ordering.go's
// reductionFor, stripped of the statScore/cut-node/aspiration-window
// adjustments that have no Reversi analogue), generalized to Reversi:
// moves never "stand pat" (there's no quiescence search — every leaf is
// the NNUE evaluator, matching how original_source's SearchPhase trait
// treats the midgame phase uniformly at every depth), and a side with no
// legal move passes instead of the search terminating, exactly mirroring
// board.Board.PassMove/IsGameOver.
func (sc *SearchContext) negamax(depth, ply int, alpha, beta Score, selectivity int) Score {
	if sc.stopped() {
		return 0
	}
	sc.nodes++
	sc.pv[ply].length = ply

	if depth <= 0 {
		return sc.evaluate()
	}

	b := sc.game.Board
	moves := board.GenerateMoves(b)
	if moves.Len() == 0 {
		if !b.PassMove().HasMoves() {
			return toExactScore(b.PlayerDiscCount() - b.OpponentDiscCount())
		}
		sc.makePass()
		score := -sc.negamax(depth, ply+1, -beta, -alpha, selectivity)
		sc.unmakeMove(true)
		return score
	}

	var ttMove board.Square = board.NoSquare
	if entry, ok := sc.tt.Probe(b.Hash, selectivity); ok {
		ttMove = entry.bestMove
		if ply > 0 && int(entry.depth) >= depth {
			score := Score(entry.score)
			switch entry.bound {
			case BoundExact:
				return score
			case BoundLower:
				if score > alpha {
					alpha = score
				}
			case BoundUpper:
				if score < beta {
					beta = score
				}
			}
			if alpha >= beta {
				return score
			}
		}
	}

	if score, ok := sc.tryProbCut(depth, ply, alpha, beta, selectivity); ok {
		return score
	}

	if depth >= minETCDepth {
		if score, ok := sc.enhancedTTCutoff(b, &moves, depth, beta, selectivity); ok {
			return score
		}
	}

	sc.orderer.ScoreMoves(&moves, b, ply, depth, ttMove)

	bestScore := -Infinity
	bestSq := board.NoSquare
	bound := BoundUpper

	for i := 0; i < moves.Len(); i++ {
		m := moves.PickBest(i)
		m.Reduction = reductionFor(m, i, depth, ttMove, sc.orderer.killers[ply])

		sc.makeMove(m.Sq, m.Flipped)
		var score Score
		if i == 0 {
			score = -sc.negamax(depth-1, ply+1, -beta, -alpha, selectivity)
		} else {
			// PVS + LMR: verify with a null window first, at a reduced depth
			// if the move qualifies, re-searching at full depth (still a
			// null window) whenever the reduced probe fails high, and only
			// then re-searching with the full window if it also beats alpha.
			searchDepth := depth - 1 - int(m.Reduction)
			score = -sc.negamax(searchDepth, ply+1, -alpha-1, -alpha, selectivity)
			if score > alpha && m.Reduction > 0 {
				score = -sc.negamax(depth-1, ply+1, -alpha-1, -alpha, selectivity)
			}
			if score > alpha && score < beta {
				score = -sc.negamax(depth-1, ply+1, -beta, -alpha, selectivity)
			}
		}
		sc.unmakeMove(false)

		if sc.stopped() {
			return 0
		}

		if score > bestScore {
			bestScore = score
			bestSq = m.Sq
			if score > alpha {
				alpha = score
				bound = BoundExact
				sc.pv[ply].moves[ply] = m.Sq
				copy(sc.pv[ply].moves[ply+1:sc.pv[ply+1].length], sc.pv[ply+1].moves[ply+1:sc.pv[ply+1].length])
				sc.pv[ply].length = sc.pv[ply+1].length
			}
		}

		if score >= beta {
			sc.tt.Store(b.Hash, depth, selectivity, score, BoundLower, bestSq)
			sc.orderer.UpdateKillers(m.Sq, ply)
			sc.orderer.UpdateHistory(m.Sq, depth, true)
			return score
		}
	}

	sc.tt.Store(b.Hash, depth, selectivity, bestScore, bound, bestSq)
	return bestScore
}

// minETCDepth gates Enhanced Transposition Cutoff to nodes deep enough that
// probing every child's transposition entry is worth its cost, grounded on
// original_source/reversi_core/src/search/search_phase.rs's
// MidGamePhase::MIN_ETC_DEPTH.
const minETCDepth = 6

// enhancedTTCutoff probes the transposition table for every child of b
// before any child is actually searched: if a child already has a stored
// entry deep enough to prove its true score is no better than beta's
// negation, the whole node can be cut without searching a single move.
// Grounded on the classic Enhanced Transposition Cutoff technique that
// search_phase.rs's SearchPhase trait names but whose call site isn't
// present in the filtered source; the bound direction follows this
// package's own BoundUpper/BoundExact convention (trueScore <= stored).
func (sc *SearchContext) enhancedTTCutoff(b board.Board, moves *board.MoveList, depth int, beta Score, selectivity int) (Score, bool) {
	sideToMove := sc.game.SideToMove
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		child := b.MakeMove(m.Sq, m.Flipped, sideToMove)

		entry, ok := sc.tt.Probe(child.Hash, selectivity)
		if !ok || int(entry.depth) < depth-1 || entry.bound == BoundLower {
			continue
		}

		childScore := Score(entry.score)
		if score := -childScore; score >= beta {
			return score, true
		}
	}
	return 0, false
}

// tryProbCut attempts a statistical cutoff: a shallow search's score is
// compared against the window widened by the selectivity band's margin,
// and if it clears the bound comfortably the full-depth search is skipped.
// Grounded on the ProbCut technique original_source's datagen/probcut.rs
// calibrates offline (see probcut.go for the coefficient-table decision).
func (sc *SearchContext) tryProbCut(depth, ply int, alpha, beta Score, selectivity int) (Score, bool) {
	if selectivity >= NoSelectivity || depth < 5 {
		return 0, false
	}
	shallow := probCutShallowDepth(depth)
	margin := probCutMargin(selectivity, depth-shallow)
	if margin >= Infinity {
		return 0, false
	}

	if beta < WinScore {
		probBeta := beta + margin
		if score := sc.negamax(shallow, ply, probBeta-1, probBeta, selectivity); score >= probBeta {
			return beta, true
		}
	}
	if alpha > LoseScore {
		probAlpha := alpha - margin
		if score := sc.negamax(shallow, ply, probAlpha, probAlpha+1, selectivity); score <= probAlpha {
			return alpha, true
		}
	}
	return 0, false
}
