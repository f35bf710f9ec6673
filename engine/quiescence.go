package engine

import (
	"sort"

	"github.com/corvidchess/corvid/board"
)

// quiescence implements §4.9: the capture-only extension past the horizon,
// using stand-pat as a lower bound. It never touches the TT or killer
// table and never attempts null-move pruning.
func (s *searcher) quiescence(pos board.Position, qdepth, totalDepth, alpha, beta int) SearchResult {
	// Step 1: deadline poll.
	if s.ctx.visit() {
		return SearchResult{Score: alpha, Completed: false}
	}

	// Step 2: stand-pat.
	standPat := Evaluate(pos)
	if pos.SideToMove() == board.ColorBlack {
		standPat = -standPat
	}
	if standPat >= beta {
		return SearchResult{Score: standPat, Completed: true}
	}
	if standPat > alpha {
		alpha = standPat
	}

	moves := pos.GenerateLegalMoves()
	status := board.ComputeStatus(pos, moves)

	// Step 3: terminal or out of quiescence depth.
	if status != board.Ongoing || qdepth == 0 {
		return SearchResult{Score: standPat, Completed: true}
	}

	// Step 4: captures only, unless in check (then keep evasions).
	inCheck := pos.IsInCheck()
	if !inCheck {
		captures := moves[:0:0]
		for _, m := range moves {
			if m.Captured != board.Empty {
				captures = append(captures, m)
			}
		}
		moves = captures
		if len(moves) == 0 {
			return SearchResult{Score: standPat, Completed: true}
		}
	}

	// Step 5: order by mover role ascending.
	sort.SliceStable(moves, func(i, j int) bool {
		return rolePriority(moves[i].Piece) < rolePriority(moves[j].Piece)
	})

	// Step 6: recurse.
	for _, m := range moves {
		child := pos.Apply(m)
		childResult := s.quiescence(child, qdepth-1, totalDepth+1, -beta, -alpha)
		if !childResult.Completed {
			return SearchResult{Score: alpha, Completed: false}
		}
		score := -childResult.Score

		if score >= beta {
			return SearchResult{Score: beta, Completed: true}
		}
		if score > alpha {
			alpha = score
		}
	}

	// Step 7.
	return SearchResult{Score: alpha, Completed: true}
}
