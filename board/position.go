// Package board Layout 2: https://gekomad.github.io/Cinnamon/BitboardCalculator/
//
//	56	57	58	59	60	61	62	63
//	48	49	50	51	52	53	54	55
//	40	41	42	43	44	45	46	47
//	32	33	34	35	36	37	38	39
//	24	25	26	27	28	29	30	31
//	16	17	18	19	20	21	22	23
//	08	09	10	11	12	13	14	15
//	00	01	02	03	04	05	06	07
package board

// Piece identifies a chess piece's role, independent of color.
type Piece uint8

const (
	Empty Piece = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// Color identifies the side a piece or the move belongs to.
type Color uint8

const (
	ColorWhite Color = iota
	ColorBlack
)

const (
	CastleWhiteKingSide = 1 << iota
	CastleWhiteQueenSide
	CastleBlackKingSide
	CastleBlackQueenSide
)

// Position is the opaque chess state described in the data model: bitboards
// per piece role, occupancy per color, side to move, castling rights, the en
// passant target (if any), the halfmove clock, the fullmove counter and the
// Zobrist hash of the position. It is a small value type, cheap to copy —
// Apply returns a new Position rather than mutating the receiver.
type Position struct {
	Pawns, Knights, Bishops, Rooks, Queens, Kings Bitboard
	White, Black                                  Bitboard
	WhiteMove                                     bool
	CastleSide                                    uint8
	EnPassant                                     Bitboard
	HalfmoveClock                                 uint8
	FullmoveNumber                                int
	Hash                                          uint64
}

type coloredPiece struct {
	piece Piece
	color Color
}

type coloredBoard [64]coloredPiece

const InitialPosition = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var noPiece = coloredPiece{Empty, Color(255)}

func createPosition(cb coloredBoard) Position {
	pos := Position{}
	for i, cp := range cb {
		switch cp.piece {
		case Pawn:
			pos.Pawns.SetBit(i)
		case Knight:
			pos.Knights.SetBit(i)
		case Bishop:
			pos.Bishops.SetBit(i)
		case Rook:
			pos.Rooks.SetBit(i)
		case Queen:
			pos.Queens.SetBit(i)
		case King:
			pos.Kings.SetBit(i)
		}
		switch cp.color {
		case ColorWhite:
			pos.White.SetBit(i)
		case ColorBlack:
			pos.Black.SetBit(i)
		}
	}
	return pos
}

// GetPiece returns a pointer to the bitboard owning the given piece role.
func (pos *Position) GetPiece(p Piece) *Bitboard {
	switch p {
	case Pawn:
		return &pos.Pawns
	case Knight:
		return &pos.Knights
	case Bishop:
		return &pos.Bishops
	case Rook:
		return &pos.Rooks
	case Queen:
		return &pos.Queens
	case King:
		return &pos.Kings
	default:
		var discard Bitboard
		return &discard
	}
}

// SideToMove returns the color of the player to move.
func (pos *Position) SideToMove() Color {
	if pos.WhiteMove {
		return ColorWhite
	}
	return ColorBlack
}

// Occupancy returns the combined occupancy bitboard of both colors.
func (pos *Position) Occupancy() Bitboard {
	return pos.White | pos.Black
}

// PieceAt reports the role and color of whatever occupies sq, if anything.
func (pos *Position) PieceAt(sq int) (Piece, Color) {
	bb := IndexToBitBoard(sq)
	var color Color
	switch {
	case pos.White&bb != 0:
		color = ColorWhite
	case pos.Black&bb != 0:
		color = ColorBlack
	default:
		return Empty, ColorWhite
	}
	switch {
	case pos.Pawns&bb != 0:
		return Pawn, color
	case pos.Knights&bb != 0:
		return Knight, color
	case pos.Bishops&bb != 0:
		return Bishop, color
	case pos.Rooks&bb != 0:
		return Rook, color
	case pos.Queens&bb != 0:
		return Queen, color
	case pos.Kings&bb != 0:
		return King, color
	}
	return Empty, color
}

// KingSquare returns the square index of the king of the given color, or -1
// if it's not on the board (should not happen for a legal position).
func (pos *Position) KingSquare(c Color) int {
	var own Bitboard
	if c == ColorWhite {
		own = pos.White
	} else {
		own = pos.Black
	}
	kings := pos.Kings & own
	if kings == 0 {
		return -1
	}
	return bitboardToIndex(kings)
}
