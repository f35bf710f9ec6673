package engine

import "github.com/corvidchess/corvid/board"

// Piece values in centipawns (§4.6).
const (
	PawnValue   = 100
	KnightValue = 320
	BishopValue = 330
	RookValue   = 500
	QueenValue  = 900
)

// Mate is the sentinel magnitude for a forced mate score (§3). Ordinary
// scores stay strictly below SubMateThreshold so the two ranges never
// overlap.
const Mate = 1_000_000_000

// SubMateThreshold is 10^8 (§8): any score at or beyond this magnitude is a
// mate score, not an ordinary evaluation.
const SubMateThreshold = 100_000_000

var pawnPST = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	50, 50, 50, 50, 50, 50, 50, 50,
	10, 10, 20, 30, 30, 20, 10, 10,
	5, 5, 10, 25, 25, 10, 5, 5,
	0, 0, 0, 20, 20, 0, 0, 0,
	5, -5, -10, 0, 0, -10, -5, 5,
	5, 10, 10, -20, -20, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightPST = [64]int{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var bishopPST = [64]int{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

var rookPST = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, 10, 10, 10, 10, 5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	0, 0, 0, 5, 5, 0, 0, 0,
}

var queenPST = [64]int{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-5, 0, 5, 5, 5, 5, 0, -5,
	0, 0, 5, 5, 5, 5, 0, -5,
	-10, 5, 5, 5, 5, 5, 0, -10,
	-10, 0, 5, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

var kingPST = [64]int{
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	20, 20, 0, 0, 0, 0, 20, 20,
	20, 30, 10, 0, 0, 10, 30, 20,
}

func pstTable(p board.Piece) *[64]int {
	switch p {
	case board.Pawn:
		return &pawnPST
	case board.Knight:
		return &knightPST
	case board.Bishop:
		return &bishopPST
	case board.Rook:
		return &rookPST
	case board.Queen:
		return &queenPST
	case board.King:
		return &kingPST
	}
	return nil
}

func pieceValue(p board.Piece) int {
	switch p {
	case board.Pawn:
		return PawnValue
	case board.Knight:
		return KnightValue
	case board.Bishop:
		return BishopValue
	case board.Rook:
		return RookValue
	case board.Queen:
		return QueenValue
	}
	return 0
}

// mirror flips a White-perspective square index to read a PST from Black's
// perspective (the table is indexed from the owner's own side, §4.6).
func mirror(sq int) int { return sq ^ 56 }

// Evaluate scores pos from White's perspective: material plus
// piece-square-table bonuses. It does not itself handle terminal states —
// callers consult board.ComputeStatus and §4.6's mate/stalemate polarity
// before falling back to this function for Ongoing positions.
func Evaluate(pos board.Position) int {
	var white, black int

	for sq := 0; sq < 64; sq++ {
		piece, color := pos.PieceAt(sq)
		if piece == board.Empty {
			continue
		}
		table := pstTable(piece)
		value := pieceValue(piece)

		var positional int
		if table != nil {
			if color == board.ColorWhite {
				positional = table[sq]
			} else {
				positional = table[mirror(sq)]
			}
		}

		if color == board.ColorWhite {
			white += value + positional
		} else {
			black += value + positional
		}
	}

	return white - black
}

// ScoreFromRoot applies §4.6's terminal-state polarity and converts to the
// side-to-move-relative frame negamax requires. depthFromRoot is the ply
// count from the search root, used so shallower mates score strictly
// higher in magnitude than deeper ones.
func ScoreFromRoot(pos board.Position, status board.Status, depthFromRoot int) int {
	switch status {
	case board.Checkmate:
		return -Mate + 100*depthFromRoot
	case board.Stalemate, board.InsufficientMaterial:
		return 0
	default:
		score := Evaluate(pos)
		if pos.SideToMove() == board.ColorBlack {
			score = -score
		}
		return score
	}
}
