package board

// GenerateLegalMoves returns every legal move for the side to move, as
// described in the data model (§3): pseudo-legal generation followed by a
// king-safety filter (play the move, keep it only if the mover's own king
// is not left in check).
func (pos Position) GenerateLegalMoves() []Move {
	pseudo := pos.generatePseudoLegalMoves()
	legal := make([]Move, 0, len(pseudo))

	mover := pos.SideToMove()
	opponent := ColorBlack
	if mover == ColorBlack {
		opponent = ColorWhite
	}

	for _, m := range pseudo {
		next := pos.Apply(m)
		kingSq := next.KingSquare(mover)
		if kingSq < 0 || next.IsSquareAttacked(kingSq, opponent) {
			continue
		}
		legal = append(legal, m)
	}
	return legal
}

// GenerateCaptures returns the pseudo-legal-then-filtered captures only,
// used by quiescence search (§4.9) when the side to move is not in check.
func (pos Position) GenerateCaptures() []Move {
	all := pos.GenerateLegalMoves()
	captures := all[:0:0]
	for _, m := range all {
		if m.Captured != Empty {
			captures = append(captures, m)
		}
	}
	return captures
}

func (pos Position) generatePseudoLegalMoves() []Move {
	moves := make([]Move, 0, 48)

	var own, enemy Bitboard
	color := ColorWhite
	if pos.WhiteMove {
		own, enemy = pos.White, pos.Black
	} else {
		own, enemy = pos.Black, pos.White
		color = ColorBlack
	}
	occ := pos.Occupancy()

	moves = pos.genPawnMoves(moves, own, enemy, color)
	moves = pos.genLeaperMoves(moves, pos.Knights&own, own, enemy, knightAttacks, Knight)
	moves = pos.genSliderMoves(moves, pos.Bishops&own, own, enemy, occ, Bishop, bishopAttacks)
	moves = pos.genSliderMoves(moves, pos.Rooks&own, own, enemy, occ, Rook, rookAttacks)
	moves = pos.genSliderMoves(moves, pos.Queens&own, own, enemy, occ, Queen, queenAttacks)
	moves = pos.genLeaperMoves(moves, pos.Kings&own, own, enemy, kingAttacks, King)
	moves = pos.genCastling(moves, color, occ)

	return moves
}

func pieceRoleAt(pos Position, sq int) Piece {
	p, _ := pos.PieceAt(sq)
	return p
}

func (pos Position) genLeaperMoves(moves []Move, pieces, own, enemy Bitboard, table [64]Bitboard, role Piece) []Move {
	for _, fromBB := range pieces.ToSlice() {
		from := bitboardToIndex(fromBB)
		targets := table[from] &^ own
		for _, toBB := range targets.ToSlice() {
			to := bitboardToIndex(toBB)
			captured := Empty
			if enemy.IsBitSet(to) {
				captured = pieceRoleAt(pos, to)
			}
			moves = append(moves, Move{From: fromBB, To: toBB, Piece: role, Captured: captured})
		}
	}
	return moves
}

func (pos Position) genSliderMoves(moves []Move, pieces, own, enemy, occ Bitboard, role Piece, attacksFn func(int, Bitboard) Bitboard) []Move {
	for _, fromBB := range pieces.ToSlice() {
		from := bitboardToIndex(fromBB)
		targets := attacksFn(from, occ) &^ own
		for _, toBB := range targets.ToSlice() {
			to := bitboardToIndex(toBB)
			captured := Empty
			if enemy.IsBitSet(to) {
				captured = pieceRoleAt(pos, to)
			}
			moves = append(moves, Move{From: fromBB, To: toBB, Piece: role, Captured: captured})
		}
	}
	return moves
}

var promotionRoles = [4]Piece{Queen, Rook, Bishop, Knight}

func (pos Position) genPawnMoves(moves []Move, own, enemy Bitboard, color Color) []Move {
	occ := pos.Occupancy()
	pawns := pos.Pawns & own

	forward, startRank, promoRank := -8, Rank2, Rank8
	if color == ColorWhite {
		forward, startRank, promoRank = 8, Rank2, Rank8
	} else {
		forward, startRank, promoRank = -8, Rank7, Rank1
	}

	for _, fromBB := range pawns.ToSlice() {
		from := bitboardToIndex(fromBB)
		f, r := fileOf(from), rankOf(from)

		// single push
		to := from + forward
		if to >= 0 && to < 64 && !occ.IsBitSet(to) {
			moves = appendPawnMove(moves, fromBB, IndexToBitBoard(to), Empty, rankOf(to) == promoRank)

			// double push from the start rank
			if r == startRank {
				to2 := to + forward
				if to2 >= 0 && to2 < 64 && !occ.IsBitSet(to2) {
					moves = append(moves, Move{From: fromBB, To: IndexToBitBoard(to2), Piece: Pawn})
				}
			}
		}

		// captures
		for _, df := range []int{-1, 1} {
			nf := f + df
			if nf < 0 || nf > 7 {
				continue
			}
			capTo := from + forward + df
			if capTo < 0 || capTo >= 64 {
				continue
			}
			capBB := IndexToBitBoard(capTo)
			if enemy.IsBitSet(capTo) {
				captured := pieceRoleAt(pos, capTo)
				moves = appendPawnCapture(moves, fromBB, capBB, captured, rankOf(capTo) == promoRank)
			} else if pos.EnPassant != 0 && pos.EnPassant == capBB {
				moves = append(moves, Move{From: fromBB, To: capBB, Piece: Pawn, Captured: Pawn, Flags: FlagEnPassant})
			}
		}
	}
	return moves
}

func appendPawnMove(moves []Move, from, to Bitboard, captured Piece, promotes bool) []Move {
	if !promotes {
		return append(moves, Move{From: from, To: to, Piece: Pawn, Captured: captured})
	}
	for _, role := range promotionRoles {
		moves = append(moves, Move{From: from, To: to, Piece: Pawn, Captured: captured, Promotion: role})
	}
	return moves
}

func appendPawnCapture(moves []Move, from, to Bitboard, captured Piece, promotes bool) []Move {
	return appendPawnMove(moves, from, to, captured, promotes)
}

func (pos Position) genCastling(moves []Move, color Color, occ Bitboard) []Move {
	if color == ColorWhite {
		if pos.CastleSide&CastleWhiteKingSide != 0 &&
			!occ.IsBitSet(5) && !occ.IsBitSet(6) &&
			!pos.IsSquareAttacked(4, ColorBlack) && !pos.IsSquareAttacked(5, ColorBlack) && !pos.IsSquareAttacked(6, ColorBlack) {
			moves = append(moves, Move{From: IndexToBitBoard(4), To: IndexToBitBoard(6), Piece: King, Flags: FlagCastling})
		}
		if pos.CastleSide&CastleWhiteQueenSide != 0 &&
			!occ.IsBitSet(1) && !occ.IsBitSet(2) && !occ.IsBitSet(3) &&
			!pos.IsSquareAttacked(4, ColorBlack) && !pos.IsSquareAttacked(3, ColorBlack) && !pos.IsSquareAttacked(2, ColorBlack) {
			moves = append(moves, Move{From: IndexToBitBoard(4), To: IndexToBitBoard(2), Piece: King, Flags: FlagCastling})
		}
	} else {
		if pos.CastleSide&CastleBlackKingSide != 0 &&
			!occ.IsBitSet(61) && !occ.IsBitSet(62) &&
			!pos.IsSquareAttacked(60, ColorWhite) && !pos.IsSquareAttacked(61, ColorWhite) && !pos.IsSquareAttacked(62, ColorWhite) {
			moves = append(moves, Move{From: IndexToBitBoard(60), To: IndexToBitBoard(62), Piece: King, Flags: FlagCastling})
		}
		if pos.CastleSide&CastleBlackQueenSide != 0 &&
			!occ.IsBitSet(57) && !occ.IsBitSet(58) && !occ.IsBitSet(59) &&
			!pos.IsSquareAttacked(60, ColorWhite) && !pos.IsSquareAttacked(59, ColorWhite) && !pos.IsSquareAttacked(58, ColorWhite) {
			moves = append(moves, Move{From: IndexToBitBoard(60), To: IndexToBitBoard(58), Piece: King, Flags: FlagCastling})
		}
	}
	return moves
}
