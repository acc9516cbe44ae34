package engine

import "github.com/natsutteatsuiyone/neural-reversi-sub002/internal/board"

// SolveRoot exactly solves the position at the root of sc, using el's
// iteration order for move generation, and returns the exact score (raw
// disc differential, as toRawScore yields it) together with the best
// square. Selectivity controls
// whether the transposition table is consulted/populated at the reduced
// accuracy a midgame ProbCut-narrowed window would imply; the endgame
// solver itself always computes an exact result once it runs.
func SolveRoot(sc *SearchContext, el *board.EmptyList, selectivity int) (Score, board.Square) {
	score := sc.solveEndgame(el, 0, -Infinity, Infinity, selectivity)
	return toRawScore(score), sc.rootBestMove()
}

// lastFlipEmptyCount and maxHandUnrolledEmpty mark the leaf specializations
// below: one empty square is solved directly from the flip count of the
// single remaining move, and two to four are solved by solveShallow's
// TT-free negamax rather than falling through to the generic, TT-backed
// recursion every other node count uses.
const (
	lastFlipEmptyCount   = 1
	maxHandUnrolledEmpty = 4
)

// solveEndgame is the last-empties exact solver, grounded on
// original_source/reversi_core/src/search/endgame_cache.rs's specialization
// of the search once only a handful of empty squares remain: it walks
// board.EmptyList directly instead of regenerating a MoveList every node
// (cheap O(1) remove/restore instead of a fresh bitboard scan), and never
// calls the NNUE evaluator since a full board (or a position where neither
// side can move) has an exact, trivially computed score.
func (sc *SearchContext) solveEndgame(el *board.EmptyList, ply int, alpha, beta Score, selectivity int) Score {
	if sc.stopped() {
		return 0
	}

	b := sc.game.Board
	empties := b.EmptyCount()
	if empties == 0 {
		sc.nodes++
		sc.pv[ply].length = ply
		return toExactScore(b.PlayerDiscCount() - b.OpponentDiscCount())
	}
	if empties == lastFlipEmptyCount {
		return sc.solveLastEmpty(el.First(), ply)
	}
	if empties <= maxHandUnrolledEmpty {
		return sc.solveShallow(el, ply, alpha, beta)
	}

	sc.nodes++
	sc.pv[ply].length = ply

	// Only entries searched to the end of the game are exact here, and the
	// root never takes a cutoff, since that would leave it without a move.
	if entry, ok := sc.tt.Probe(b.Hash, selectivity); ok && ply > 0 && int(entry.depth) >= empties {
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

	bestScore := -Infinity
	bestSq := board.NoSquare
	bound := BoundUpper
	played := 0

	for sq := el.First(); sq != board.NoSquare; sq = el.Next(sq) {
		moves := b.GetMoves()
		if !moves.IsSet(sq) {
			continue
		}
		played++

		flipped := board.FlipDiscs(sq, b.Player, b.Opponent)
		el.Remove(sq)
		sc.makeMove(sq, flipped)

		var score Score
		if bestSq == board.NoSquare {
			score = -sc.solveEndgame(el, ply+1, -beta, -alpha, selectivity)
		} else {
			score = -sc.solveEndgame(el, ply+1, -alpha-1, -alpha, selectivity)
			if score > alpha && score < beta {
				score = -sc.solveEndgame(el, ply+1, -beta, -alpha, selectivity)
			}
		}

		sc.unmakeMove(false)
		el.Restore(sq)

		if sc.stopped() {
			return 0
		}

		if score > bestScore {
			bestScore = score
			bestSq = sq
			if score > alpha {
				alpha = score
				bound = BoundExact
				sc.pv[ply].moves[ply] = sq
				copy(sc.pv[ply].moves[ply+1:sc.pv[ply+1].length], sc.pv[ply+1].moves[ply+1:sc.pv[ply+1].length])
				sc.pv[ply].length = sc.pv[ply+1].length
			}
		}
		if score >= beta {
			sc.tt.Store(b.Hash, b.EmptyCount(), selectivity, score, BoundLower, bestSq)
			return score
		}
	}

	if played == 0 {
		// No move here: pass if the opponent can play; otherwise neither
		// side can move and the game has ended early, with empties still on
		// the board.
		if b.PassMove().HasMoves() {
			sc.makePass()
			score := -sc.solveEndgame(el, ply+1, -beta, -alpha, selectivity)
			sc.unmakeMove(true)
			return score
		}
		return toExactScore(finalDiscDiff(b))
	}

	sc.tt.Store(b.Hash, b.EmptyCount(), selectivity, bestScore, bound, bestSq)
	return bestScore
}

// solveLastEmpty scores the single-empty-square endgame directly from the
// flip count of the only move left, without generating a move list, making a
// move, or touching the transposition table. Grounded on
// original_source/reversi_core/src/search/endgame_cache.rs's count-last-flip
// specialization, the classic one-empty fast path every bitboard Reversi
// engine special-cases since it is by far the most frequently visited leaf.
func (sc *SearchContext) solveLastEmpty(sq board.Square, ply int) Score {
	sc.nodes++
	sc.pv[ply].length = ply

	b := sc.game.Board
	if b.GetMoves().IsSet(sq) {
		flips := board.CountLastFlip(sq, b.Player, b.Opponent)
		diff := b.PlayerDiscCount() - b.OpponentDiscCount() + 2*flips + 1
		sc.pv[ply].moves[ply] = sq
		sc.pv[ply].length = ply + 1
		return toExactScore(diff)
	}

	passed := b.PassMove()
	if passed.GetMoves().IsSet(sq) {
		flips := board.CountLastFlip(sq, passed.Player, passed.Opponent)
		diff := passed.PlayerDiscCount() - passed.OpponentDiscCount() + 2*flips + 1
		return -toExactScore(diff)
	}

	return toExactScore(finalDiscDiff(b))
}

// finalDiscDiff scores a finished game from the side to move's point of
// view: the disc differential, with any squares still empty counted for the
// side that is ahead (a draw stays 0).
func finalDiscDiff(b board.Board) int {
	diff := b.PlayerDiscCount() - b.OpponentDiscCount()
	switch {
	case diff > 0:
		return diff + b.EmptyCount()
	case diff < 0:
		return diff - b.EmptyCount()
	}
	return 0
}

// solveShallow is solveEndgame's negamax without the transposition table:
// at two to four empty squares, a TT probe/store costs more than the search
// it could prune, so these near-leaf nodes walk el directly and bottom out
// at solveLastEmpty instead.
func (sc *SearchContext) solveShallow(el *board.EmptyList, ply int, alpha, beta Score) Score {
	if sc.stopped() {
		return 0
	}
	sc.nodes++
	sc.pv[ply].length = ply

	b := sc.game.Board
	if b.EmptyCount() == lastFlipEmptyCount {
		return sc.solveLastEmpty(el.First(), ply)
	}

	bestScore := -Infinity
	played := 0

	for sq := el.First(); sq != board.NoSquare; sq = el.Next(sq) {
		moves := b.GetMoves()
		if !moves.IsSet(sq) {
			continue
		}
		played++

		flipped := board.FlipDiscs(sq, b.Player, b.Opponent)
		el.Remove(sq)
		sc.makeMove(sq, flipped)

		score := -sc.solveShallow(el, ply+1, -beta, -alpha)

		sc.unmakeMove(false)
		el.Restore(sq)

		if sc.stopped() {
			return 0
		}

		if score > bestScore {
			bestScore = score
			if score > alpha {
				alpha = score
				sc.pv[ply].moves[ply] = sq
				copy(sc.pv[ply].moves[ply+1:sc.pv[ply+1].length], sc.pv[ply+1].moves[ply+1:sc.pv[ply+1].length])
				sc.pv[ply].length = sc.pv[ply+1].length
			}
		}
		if score >= beta {
			return score
		}
	}

	if played == 0 {
		if b.PassMove().HasMoves() {
			sc.makePass()
			score := -sc.solveShallow(el, ply+1, -beta, -alpha)
			sc.unmakeMove(true)
			return score
		}
		return toExactScore(finalDiscDiff(b))
	}

	return bestScore
}

// parityOrderedEmpties returns every empty square of b ordered so that
// squares belonging to odd-sized connected empty regions are visited
// before even-sized ones, the classic endgame move-ordering heuristic:
// playing into an odd region leaves the opponent the forced, usually
// worse, parity.
func parityOrderedEmpties(b board.Board) []board.Square {
	empty := ^(b.Player | b.Opponent)
	visited := board.Bitboard(0)

	var odd, even [][]board.Square
	for rem := empty; rem != 0; {
		seed := rem.PopLSB()
		if visited.IsSet(seed) {
			continue
		}
		region := floodFillRegion(empty, seed, &visited)
		if len(region)%2 == 1 {
			odd = append(odd, region)
		} else {
			even = append(even, region)
		}
	}

	var out []board.Square
	for _, r := range odd {
		out = append(out, r...)
	}
	for _, r := range even {
		out = append(out, r...)
	}
	return out
}

func floodFillRegion(empty board.Bitboard, seed board.Square, visited *board.Bitboard) []board.Square {
	queue := []board.Square{seed}
	*visited |= seed.Bitboard()
	var region []board.Square

	for len(queue) > 0 {
		sq := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		region = append(region, sq)

		f, r := sq.File(), sq.Rank()
		for df := -1; df <= 1; df++ {
			for dr := -1; dr <= 1; dr++ {
				if df == 0 && dr == 0 {
					continue
				}
				nf, nr := f+df, r+dr
				if nf < 0 || nf > 7 || nr < 0 || nr > 7 {
					continue
				}
				n := board.NewSquare(nf, nr)
				if empty.IsSet(n) && !visited.IsSet(n) {
					*visited |= n.Bitboard()
					queue = append(queue, n)
				}
			}
		}
	}
	return region
}
