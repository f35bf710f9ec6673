package engine

import (
	"sort"

	"github.com/corvidchess/corvid/board"
)

// MaxDepth bounds iterative deepening (§4.4) and sizes the killer table (§3).
const MaxDepth = 30

// SearchResult is the (score, chosen_move?, completed) triple of §3.
// HasMove distinguishes "no move" (terminal node, or a null-move cutoff)
// from the zero board.Move value. When Completed is false the Score and
// Move fields are unreliable and must never be stored in the TT or
// committed as the engine's chosen move (§3, §4.4, §4.8).
type SearchResult struct {
	Score     int
	Move      board.Move
	HasMove   bool
	Completed bool
}

// searcher bundles the state negamax/quiescence borrow mutably for the
// duration of one search (§9: "owned by the facade, borrowed mutably").
type searcher struct {
	tt      *TranspositionTable
	killers *killerTable
	ctx     *SearchContext

	useNullMove bool
	useQuiesce  bool
}

// rolePriority orders quiescence captures by the mover's role ascending
// (§4.7): prefer capturing with the least valuable attacker.
func rolePriority(p board.Piece) int {
	switch p {
	case board.Pawn:
		return 1
	case board.Knight:
		return 3
	case board.Bishop:
		return 4
	case board.Rook:
		return 5
	case board.Queen:
		return 9
	case board.King:
		return 10
	}
	return 0
}

// orderMoves sorts moves descending by priority (§4.7), with one addition
// beyond the literal killer formula: a TT move, when present, is an
// explicit move-ordering hint per §4.5's probe semantics ("keep the stored
// move as a move-ordering hint"), so it sorts ahead of killers.
func (s *searcher) orderMoves(moves []board.Move, ply int, ttMove board.Move, hasTTMove bool) {
	priority := func(m board.Move) int {
		if hasTTMove && m == ttMove {
			return KillerPriority + KillerSize + 1
		}
		return s.killers.priority(ply, m)
	}
	sort.SliceStable(moves, func(i, j int) bool {
		return priority(moves[i]) > priority(moves[j])
	})
}

// negamax implements the core driver of §4.8.
func (s *searcher) negamax(pos board.Position, depth, qdepth, totalDepth, alpha, beta int, prevWasNull bool) SearchResult {
	// Step 1: deadline poll.
	if s.ctx.visit() {
		return SearchResult{Score: alpha, Completed: false}
	}

	alphaOriginal := alpha

	// Step 2: TT probe.
	hasTTMove := false
	var ttMove board.Move
	if entry, ok := s.tt.Probe(pos.Hash); ok {
		if entry.Depth >= depth {
			switch entry.Flag {
			case TTFlagExact:
				return SearchResult{Score: entry.Score, Move: entry.BestMove, HasMove: true, Completed: true}
			case TTFlagLower:
				if entry.Score < beta {
					beta = entry.Score
				}
			case TTFlagUpper:
				if entry.Score > alpha {
					alpha = entry.Score
				}
			}
			if alpha >= beta {
				return SearchResult{Score: entry.Score, Move: entry.BestMove, HasMove: true, Completed: true}
			}
		}
		ttMove, hasTTMove = entry.BestMove, true
	}

	// Step 3: generate legal moves, handle terminal status.
	moves := pos.GenerateLegalMoves()
	status := board.ComputeStatus(pos, moves)
	if status != board.Ongoing {
		score := ScoreFromRoot(pos, status, totalDepth)
		s.tt.Store(pos.Hash, score, depth, TTFlagExact, board.Move{})
		return SearchResult{Score: score, Completed: true}
	}

	// Step 4: horizon reached, drop to quiescence.
	if depth == 0 {
		if !s.useQuiesce {
			score := Evaluate(pos)
			if pos.SideToMove() == board.ColorBlack {
				score = -score
			}
			return SearchResult{Score: score, Completed: true}
		}
		return s.quiescence(pos, qdepth, totalDepth, alpha, beta)
	}

	// Step 5: null-move pruning.
	if s.useNullMove && !prevWasNull {
		if cutoff, result := s.tryNullMove(pos, depth, qdepth, totalDepth, beta); cutoff {
			return result
		}
	}

	// Step 6: order moves.
	s.orderMoves(moves, totalDepth, ttMove, hasTTMove)
	bestMove := moves[0]

	// Step 7: recursive descent.
	for _, m := range moves {
		child := pos.Apply(m)
		childResult := s.negamax(child, depth-1, qdepth, totalDepth+1, -beta, -alpha, false)
		if !childResult.Completed {
			return SearchResult{Score: alpha, Move: bestMove, HasMove: true, Completed: false}
		}
		score := -childResult.Score

		if score >= beta {
			s.tt.Store(pos.Hash, score, depth, TTFlagLower, m)
			if s.killers.priority(totalDepth, m) == 0 {
				s.killers.store(totalDepth, m)
			}
			return SearchResult{Score: beta, Move: m, HasMove: true, Completed: true}
		}
		if score > alpha {
			alpha = score
			bestMove = m
			if s.killers.priority(totalDepth, m) == 0 {
				s.killers.store(totalDepth, m)
			}
		}
	}

	// Step 8: store and return.
	flag := TTFlagUpper
	if alpha > alphaOriginal {
		flag = TTFlagExact
	}
	s.tt.Store(pos.Hash, alpha, depth, flag, bestMove)
	return SearchResult{Score: alpha, Move: bestMove, HasMove: true, Completed: true}
}
