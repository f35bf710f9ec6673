package board

import (
	"fmt"
	"math/bits"
	"slices"
	"strconv"
	"strings"
	"unicode"
)

var fileNumber = map[string]int{
	"a": 1, "b": 2, "c": 3, "d": 4, "e": 5, "f": 6, "g": 7, "h": 8,
}

var rune2Piece = map[rune]coloredPiece{
	'P': {Pawn, ColorWhite},
	'N': {Knight, ColorWhite},
	'B': {Bishop, ColorWhite},
	'R': {Rook, ColorWhite},
	'Q': {Queen, ColorWhite},
	'K': {King, ColorWhite},
	'p': {Pawn, ColorBlack},
	'n': {Knight, ColorBlack},
	'b': {Bishop, ColorBlack},
	'r': {Rook, ColorBlack},
	'q': {Queen, ColorBlack},
	'k': {King, ColorBlack},
}

// ParseFEN parses a 6-field FEN string into a Position. A malformed FEN is
// an argument error (spec §7): it is returned, never fatal to the process.
func ParseFEN(fen string) (Position, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return Position{}, fmt.Errorf("board: bad fen %q: want 6 fields, got %d", fen, len(fields))
	}

	cb, err := createColoredBoard(fields[0])
	if err != nil {
		return Position{}, fmt.Errorf("board: bad fen %q: %w", fen, err)
	}
	pos := createPosition(cb)

	pos.WhiteMove = fields[1] == "w"
	pos.CastleSide = castleAbility(fields[2])

	ep, err := enPassant(fields[3])
	if err != nil {
		return Position{}, fmt.Errorf("board: bad fen %q: %w", fen, err)
	}
	pos.EnPassant = ep

	halfMoveClock, err := strconv.Atoi(fields[4])
	if err != nil {
		return Position{}, fmt.Errorf("board: bad fen %q: bad halfmove clock: %w", fen, err)
	}
	pos.HalfmoveClock = uint8(halfMoveClock)

	fullMove, err := strconv.Atoi(fields[5])
	if err != nil {
		return Position{}, fmt.Errorf("board: bad fen %q: bad fullmove number: %w", fen, err)
	}
	pos.FullmoveNumber = fullMove

	pos.Hash = pos.ComputeHash()

	return pos, nil
}

// MustParseFEN is ParseFEN for callers holding a FEN known-good at compile
// time (the start position, test fixtures); it panics on error.
func MustParseFEN(fen string) Position {
	pos, err := ParseFEN(fen)
	if err != nil {
		panic(err)
	}
	return pos
}

func enPassant(s string) (Bitboard, error) {
	var ep Bitboard
	if s == "-" {
		return ep, nil
	}
	if len(s) != 2 {
		return 0, fmt.Errorf("bad en passant square %q", s)
	}
	file, ok := fileNumber[s[:1]]
	if !ok {
		return 0, fmt.Errorf("bad en passant square %q", s)
	}
	rank, err := strconv.Atoi(s[1:])
	if err != nil {
		return 0, fmt.Errorf("bad en passant square %q", s)
	}
	ep.SetBit(squareIndex(file-1, rank-1))
	return ep, nil
}

func castleAbility(c string) uint8 {
	var castle int
	for _, ch := range c {
		switch ch {
		case 'K':
			castle |= CastleWhiteKingSide
		case 'Q':
			castle |= CastleWhiteQueenSide
		case 'k':
			castle |= CastleBlackKingSide
		case 'q':
			castle |= CastleBlackQueenSide
		}
	}
	return uint8(castle)
}

func createColoredBoard(piecePlacement string) (coloredBoard, error) {
	ranks := strings.Split(piecePlacement, "/")
	slices.Reverse(ranks)
	if len(ranks) != 8 {
		return coloredBoard{}, fmt.Errorf("bad ranks: want 8, got %d", len(ranks))
	}
	b := coloredBoard{}
	bIndex := 0
	for _, rank := range ranks {
		for _, char := range rank {
			switch {
			case unicode.IsDigit(char):
				n, _ := strconv.Atoi(string(char))
				for range n {
					if bIndex >= 64 {
						return coloredBoard{}, fmt.Errorf("bad piece placement %q", piecePlacement)
					}
					b[bIndex] = noPiece
					bIndex++
				}
			case unicode.IsLetter(char):
				cp, ok := rune2Piece[char]
				if !ok || bIndex >= 64 {
					return coloredBoard{}, fmt.Errorf("bad piece placement %q", piecePlacement)
				}
				b[bIndex] = cp
				bIndex++
			}
		}
	}
	if bIndex != 64 {
		return coloredBoard{}, fmt.Errorf("bad piece placement %q: covers %d squares", piecePlacement, bIndex)
	}
	return b, nil
}

// ToFEN returns the FEN string for the current position.
func (pos Position) ToFEN() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := range 8 {
			sq := rank*8 + file
			bb := Bitboard(1 << sq)

			piece := Empty
			isWhite := false

			if pos.White&bb != 0 {
				isWhite = true
			} else if pos.Black&bb != 0 {
				isWhite = false
			} else {
				empty++
				continue
			}

			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}

			switch {
			case pos.Pawns&bb != 0:
				piece = Pawn
			case pos.Knights&bb != 0:
				piece = Knight
			case pos.Bishops&bb != 0:
				piece = Bishop
			case pos.Rooks&bb != 0:
				piece = Rook
			case pos.Queens&bb != 0:
				piece = Queen
			case pos.Kings&bb != 0:
				piece = King
			}

			char := ""
			switch piece {
			case Pawn:
				char = "p"
			case Knight:
				char = "n"
			case Bishop:
				char = "b"
			case Rook:
				char = "r"
			case Queen:
				char = "q"
			case King:
				char = "k"
			}

			if isWhite {
				char = strings.ToUpper(char)
			}
			sb.WriteString(char)
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteString("/")
		}
	}

	sb.WriteString(" ")
	if pos.WhiteMove {
		sb.WriteString("w")
	} else {
		sb.WriteString("b")
	}
	sb.WriteString(" ")

	castling := ""
	if pos.CastleSide&CastleWhiteKingSide != 0 {
		castling += "K"
	}
	if pos.CastleSide&CastleWhiteQueenSide != 0 {
		castling += "Q"
	}
	if pos.CastleSide&CastleBlackKingSide != 0 {
		castling += "k"
	}
	if pos.CastleSide&CastleBlackQueenSide != 0 {
		castling += "q"
	}
	if castling == "" {
		castling = "-"
	}
	sb.WriteString(castling)
	sb.WriteString(" ")

	if pos.EnPassant != 0 {
		idx := bits.TrailingZeros64(uint64(pos.EnPassant))
		file := idx % 8
		rank := idx / 8
		sb.WriteString(fmt.Sprintf("%c%d", rune('a'+file), rank+1))
	} else {
		sb.WriteString("-")
	}
	sb.WriteString(" ")

	sb.WriteString(strconv.Itoa(int(pos.HalfmoveClock)))
	sb.WriteString(" ")

	fullMove := pos.FullmoveNumber
	if fullMove == 0 {
		fullMove = 1
	}
	sb.WriteString(strconv.Itoa(fullMove))

	return sb.String()
}
