package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidchess/corvid/board"
)

func newSearcher() *searcher {
	return &searcher{
		tt:          NewTranspositionTable(1),
		killers:     newKillerTable(),
		ctx:         NewSearchContext(5 * time.Second),
		useNullMove: true,
		useQuiesce:  true,
	}
}

func TestNegamax_AbortedSearchNeverWritesTT(t *testing.T) {
	pos := board.MustParseFEN("r1bqkbnr/pppppppp/2n5/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1")

	tt := NewTranspositionTable(1)
	ctx := NewSearchContext(0)
	ctx.Stop()
	s := &searcher{tt: tt, killers: newKillerTable(), ctx: ctx, useNullMove: true, useQuiesce: true}

	result := s.negamax(pos, 10, 4, 0, negInf, posInf, false)
	require.False(t, result.Completed)

	_, found := tt.Probe(pos.Hash)
	assert.False(t, found, "an aborted search must not have stored any TT entry")
}

func TestNegamax_FindsMateInOne(t *testing.T) {
	// White to move, mate in one: Qf7# is not it; use a clean back-rank
	// mate-in-1 position instead.
	pos, err := board.ParseFEN("6k1/5ppp/8/8/8/8/8/4R1K1 w - - 0 1")
	require.NoError(t, err)

	s := newSearcher()
	result := s.negamax(pos, 3, 4, 0, negInf, posInf, false)
	require.True(t, result.Completed)
	require.True(t, result.HasMove)
	assert.GreaterOrEqual(t, result.Score, SubMateThreshold)
}

func TestNegamax_TerminalPositionReturnsImmediately(t *testing.T) {
	pos, err := board.ParseFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	require.NoError(t, err)

	s := newSearcher()
	result := s.negamax(pos, 4, 4, 0, negInf, posInf, false)
	require.True(t, result.Completed)
	assert.LessOrEqual(t, result.Score, -SubMateThreshold)
	assert.False(t, result.HasMove)
}

func TestNegamax_AbortedSearchReportsIncomplete(t *testing.T) {
	pos := board.MustParseFEN(StartFEN)
	s := newSearcher()
	s.ctx = NewSearchContext(0)
	time.Sleep(time.Millisecond)

	result := s.negamax(pos, MaxDepth, 4, 0, negInf, posInf, false)
	assert.False(t, result.Completed)
}

func TestNegamax_AlphaBetaSoundness(t *testing.T) {
	// Disabling null-move and quiescence, a fixed-depth search's score in a
	// wide-enough window must equal the search in a tighter window clamped
	// into that window (§8).
	pos := board.MustParseFEN(StartFEN)

	wide := &searcher{tt: NewTranspositionTable(1), killers: newKillerTable(), ctx: NewSearchContext(5 * time.Second)}
	wideResult := wide.negamax(pos, 2, 0, 0, negInf, posInf, false)
	require.True(t, wideResult.Completed)

	narrow := &searcher{tt: NewTranspositionTable(1), killers: newKillerTable(), ctx: NewSearchContext(5 * time.Second)}
	alpha, beta := -50, 50
	narrowResult := narrow.negamax(pos, 2, 0, 0, alpha, beta, false)
	require.True(t, narrowResult.Completed)

	clamped := wideResult.Score
	if clamped < alpha {
		clamped = alpha
	}
	if clamped > beta {
		clamped = beta
	}
	assert.Equal(t, clamped, narrowResult.Score)
}

func TestOrderMoves_TTMoveOutranksKillers(t *testing.T) {
	s := newSearcher()
	m1 := move(1, 2)
	m2 := move(3, 4)
	m3 := move(5, 6)
	s.killers.store(0, m2)

	moves := []board.Move{m1, m2, m3}
	s.orderMoves(moves, 0, m3, true)

	assert.Equal(t, m3, moves[0])
	assert.Equal(t, m2, moves[1])
}

func TestRolePriority_Ordering(t *testing.T) {
	assert.Less(t, rolePriority(board.Pawn), rolePriority(board.Knight))
	assert.Less(t, rolePriority(board.Knight), rolePriority(board.Bishop))
	assert.Less(t, rolePriority(board.Queen), rolePriority(board.King))
}
