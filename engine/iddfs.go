package engine

import "github.com/corvidchess/corvid/board"

// aspirationDelta is δ in §4.4, the half-width of the window drawn around
// the previous iteration's estimate.
const aspirationDelta = 30

// aspirationStartDepth is the depth at which aspiration windows kick in;
// shallower iterations always search the full (-inf, +inf) window, since
// there is no prior estimate yet worth narrowing around.
const aspirationStartDepth = 3

const (
	negInf = -Mate - 1
	posInf = Mate + 1
)

// IterativeResult is the outcome of a full iterative-deepening run: the
// deepest completed iteration's move and score, plus whether any iteration
// ever completed at all (false only when depth 1 itself aborted on time).
type IterativeResult struct {
	Move      board.Move
	HasMove   bool
	Score     int
	Depth     int
	Completed bool
}

// iterativeDeepen runs §4.4's outer loop: grow depth, narrow the window
// around the previous estimate, widen and re-search on fail-high/fail-low,
// and stop at the first aborted iteration without ever committing its
// result.
func (s *searcher) iterativeDeepen(pos board.Position, qdepth int, onIteration func(IterativeResult)) IterativeResult {
	var best IterativeResult
	estimate := 0

	for depth := 1; depth <= MaxDepth; depth++ {
		var result SearchResult

		if depth < aspirationStartDepth {
			result = s.negamax(pos, depth, qdepth, 0, negInf, posInf, false)
		} else {
			alpha := estimate - aspirationDelta
			beta := estimate + aspirationDelta
			result = s.negamax(pos, depth, qdepth, 0, alpha, beta, false)

			if result.Completed && result.Score >= beta {
				result = s.negamax(pos, depth, qdepth, 0, result.Score, posInf, false)
			} else if result.Completed && result.Score <= alpha {
				result = s.negamax(pos, depth, qdepth, 0, negInf, result.Score, false)
			}
			if result.Completed && (result.Score <= alpha || result.Score >= beta) {
				result = s.negamax(pos, depth, qdepth, 0, negInf, posInf, false)
			}
		}

		if !result.Completed {
			break
		}

		estimate = result.Score
		best = IterativeResult{
			Move:      result.Move,
			HasMove:   result.HasMove,
			Score:     result.Score,
			Depth:     depth,
			Completed: true,
		}
		if onIteration != nil {
			onIteration(best)
		}
	}

	return best
}
