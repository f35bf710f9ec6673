package board

// Precomputed leaper attack tables (knight, king) and pawn-attack tables,
// plus ray-stepped sliding attacks for bishops/rooks/queens. The board
// layer favors this simple, obviously-correct form over magic-bitboard
// lookup tables — it sits outside the engineering-depth budget (§1), and
// correctness matters far more here than raw node throughput.

var knightAttacks [64]Bitboard
var kingAttacks [64]Bitboard
var pawnAttacks [2][64]Bitboard

func fileOf(sq int) int { return sq & 7 }
func rankOf(sq int) int { return sq >> 3 }

func init() {
	knightDeltas := [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	kingDeltas := [8][2]int{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}

	for sq := 0; sq < 64; sq++ {
		f, r := fileOf(sq), rankOf(sq)

		var knight Bitboard
		for _, d := range knightDeltas {
			nf, nr := f+d[0], r+d[1]
			if nf >= 0 && nf <= 7 && nr >= 0 && nr <= 7 {
				knight.SetBit(squareIndex(nf, nr))
			}
		}
		knightAttacks[sq] = knight

		var king Bitboard
		for _, d := range kingDeltas {
			nf, nr := f+d[0], r+d[1]
			if nf >= 0 && nf <= 7 && nr >= 0 && nr <= 7 {
				king.SetBit(squareIndex(nf, nr))
			}
		}
		kingAttacks[sq] = king

		var whitePawn, blackPawn Bitboard
		if f-1 >= 0 && r+1 <= 7 {
			whitePawn.SetBit(squareIndex(f-1, r+1))
		}
		if f+1 <= 7 && r+1 <= 7 {
			whitePawn.SetBit(squareIndex(f+1, r+1))
		}
		if f-1 >= 0 && r-1 >= 0 {
			blackPawn.SetBit(squareIndex(f-1, r-1))
		}
		if f+1 <= 7 && r-1 >= 0 {
			blackPawn.SetBit(squareIndex(f+1, r-1))
		}
		pawnAttacks[ColorWhite][sq] = whitePawn
		pawnAttacks[ColorBlack][sq] = blackPawn
	}
}

// rayAttacks walks from sq in direction (df, dr) until it runs off the
// board or hits an occupied square (inclusive of that square, for capture).
func rayAttacks(sq int, occ Bitboard, df, dr int) Bitboard {
	var attacks Bitboard
	f, r := fileOf(sq), rankOf(sq)
	for {
		f += df
		r += dr
		if f < 0 || f > 7 || r < 0 || r > 7 {
			break
		}
		s := squareIndex(f, r)
		attacks.SetBit(s)
		if occ.IsBitSet(s) {
			break
		}
	}
	return attacks
}

func bishopAttacks(sq int, occ Bitboard) Bitboard {
	return rayAttacks(sq, occ, 1, 1) | rayAttacks(sq, occ, 1, -1) |
		rayAttacks(sq, occ, -1, 1) | rayAttacks(sq, occ, -1, -1)
}

func rookAttacks(sq int, occ Bitboard) Bitboard {
	return rayAttacks(sq, occ, 1, 0) | rayAttacks(sq, occ, -1, 0) |
		rayAttacks(sq, occ, 0, 1) | rayAttacks(sq, occ, 0, -1)
}

func queenAttacks(sq int, occ Bitboard) Bitboard {
	return bishopAttacks(sq, occ) | rookAttacks(sq, occ)
}

// IsSquareAttacked reports whether sq is attacked by any piece of color by.
func (pos *Position) IsSquareAttacked(sq int, by Color) bool {
	occ := pos.Occupancy()

	var attackerPawns, attackerKnights, attackerBishops, attackerRooks, attackerQueens, attackerKings Bitboard
	if by == ColorWhite {
		attackerPawns = pos.Pawns & pos.White
		attackerKnights = pos.Knights & pos.White
		attackerBishops = pos.Bishops & pos.White
		attackerRooks = pos.Rooks & pos.White
		attackerQueens = pos.Queens & pos.White
		attackerKings = pos.Kings & pos.White
	} else {
		attackerPawns = pos.Pawns & pos.Black
		attackerKnights = pos.Knights & pos.Black
		attackerBishops = pos.Bishops & pos.Black
		attackerRooks = pos.Rooks & pos.Black
		attackerQueens = pos.Queens & pos.Black
		attackerKings = pos.Kings & pos.Black
	}

	// A pawn of color `by` attacks sq iff it stands on one of the squares
	// that a pawn of the opposite color standing on sq would itself attack.
	opposite := ColorWhite
	if by == ColorWhite {
		opposite = ColorBlack
	}
	if pawnAttacks[opposite][sq]&attackerPawns != 0 {
		return true
	}
	if knightAttacks[sq]&attackerKnights != 0 {
		return true
	}
	if kingAttacks[sq]&attackerKings != 0 {
		return true
	}
	if bishopAttacks(sq, occ)&(attackerBishops|attackerQueens) != 0 {
		return true
	}
	if rookAttacks(sq, occ)&(attackerRooks|attackerQueens) != 0 {
		return true
	}
	return false
}

// IsInCheck reports whether the side to move's king is currently attacked.
func (pos *Position) IsInCheck() bool {
	side := pos.SideToMove()
	king := pos.KingSquare(side)
	if king < 0 {
		return false
	}
	attacker := ColorBlack
	if side == ColorBlack {
		attacker = ColorWhite
	}
	return pos.IsSquareAttacked(king, attacker)
}
