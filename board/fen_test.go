package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFEN_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"start position", InitialPosition},
		{"after e4", "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"},
		{"midgame, castling rights intact", "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R b KQkq - 4 4"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pos, err := ParseFEN(tc.fen)
			require.NoError(t, err)
			assert.Equal(t, tc.fen, pos.ToFEN())
		})
	}
}

func TestParseFEN_RejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"too few fields", "8/8/8/8/8/8/8/8 w - -"},
		{"bad rank count", "8/8/8/8/8/8/8 w KQkq - 0 1"},
		{"bad en passant square", "8/8/8/8/8/8/8/8 w - z9 0 1"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseFEN(tc.fen)
			assert.Error(t, err)
		})
	}
}

func TestParseFEN_ComputesHash(t *testing.T) {
	pos := MustParseFEN(InitialPosition)
	assert.Equal(t, pos.ComputeHash(), pos.Hash)
	assert.NotZero(t, pos.Hash)
}
