package engine

import "github.com/corvidchess/corvid/board"

// nullMoveReduction is R in §4.10.
const nullMoveReduction = 3

// hasNonPawnMaterial is the zugzwang guard of §4.10: the side to move must
// have at least one piece on the board besides king and pawns, or a null
// move's "do nothing" assumption can be unsound (classic zugzwang).
func hasNonPawnMaterial(pos board.Position, side board.Color) bool {
	var own board.Bitboard
	if side == board.ColorWhite {
		own = pos.White
	} else {
		own = pos.Black
	}
	nonPawnKing := pos.Knights | pos.Bishops | pos.Rooks | pos.Queens
	return (nonPawnKing & own) != 0
}

// tryNullMove attempts the null-move cutoff test of §4.10. It reports
// whether a cutoff was found and, if so, the SearchResult to return from
// the caller's negamax frame.
func (s *searcher) tryNullMove(pos board.Position, depth, qdepth, totalDepth, beta int) (bool, SearchResult) {
	if depth <= nullMoveReduction || totalDepth == 0 {
		return false, SearchResult{}
	}
	if pos.IsInCheck() {
		return false, SearchResult{}
	}
	if !hasNonPawnMaterial(pos, pos.SideToMove()) {
		return false, SearchResult{}
	}

	child := pos.ApplyNull()
	result := s.negamax(child, depth-nullMoveReduction, qdepth, totalDepth+1, -beta, -(beta - 1), true)
	if !result.Completed {
		return false, SearchResult{}
	}

	score := -result.Score
	if score >= beta {
		return true, SearchResult{Score: beta, Completed: true}
	}
	return false, SearchResult{}
}
