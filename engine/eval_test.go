package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidchess/corvid/board"
)

func TestEvaluate_StartPositionIsZero(t *testing.T) {
	pos := board.MustParseFEN(StartFEN)
	assert.Equal(t, 0, Evaluate(pos))
}

func TestEvaluate_MaterialAdvantage(t *testing.T) {
	// White is up a queen. The kings' table terms cancel; the queen on d1
	// carries a -5 positional term.
	pos, err := board.ParseFEN("4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
	require.NoError(t, err)
	assert.Equal(t, QueenValue-5, Evaluate(pos))
}

func TestEvaluate_ColorSymmetry(t *testing.T) {
	// A position and its color-swapped, rank-flipped mirror must evaluate
	// to exactly opposite scores (§8: color symmetry of evaluation).
	white, err := board.ParseFEN("4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	require.NoError(t, err)
	black, err := board.ParseFEN("r3k3/8/8/8/8/8/8/4K3 b - - 0 1")
	require.NoError(t, err)

	assert.Equal(t, Evaluate(white), -Evaluate(black))
}

func TestScoreFromRoot_CheckmatePolarity(t *testing.T) {
	// Fool's mate: black has just delivered checkmate against white.
	pos, err := board.ParseFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	require.NoError(t, err)

	moves := pos.GenerateLegalMoves()
	status := board.ComputeStatus(pos, moves)
	require.Equal(t, board.Checkmate, status)

	score := ScoreFromRoot(pos, status, 3)
	assert.LessOrEqual(t, score, -SubMateThreshold)
}

func TestScoreFromRoot_DeeperMateIsWorse(t *testing.T) {
	pos, err := board.ParseFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	require.NoError(t, err)
	moves := pos.GenerateLegalMoves()
	status := board.ComputeStatus(pos, moves)

	shallow := ScoreFromRoot(pos, status, 3)
	deep := ScoreFromRoot(pos, status, 9)

	assert.Greater(t, abs(shallow), abs(deep))
}

func TestScoreFromRoot_StalemateIsZero(t *testing.T) {
	pos, err := board.ParseFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)
	moves := pos.GenerateLegalMoves()
	status := board.ComputeStatus(pos, moves)
	require.Equal(t, board.Stalemate, status)

	assert.Equal(t, 0, ScoreFromRoot(pos, status, 1))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
