package uci

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidchess/corvid/engine"
)

func newTestLoop(t *testing.T) (*Loop, *bytes.Buffer) {
	t.Helper()
	opts := engine.DefaultOptions()
	opts.OwnBook = false
	eng, err := engine.New(opts, zerolog.Nop())
	require.NoError(t, err)

	var out bytes.Buffer
	return NewLoop(eng, &out), &out
}

func runLines(l *Loop, lines ...string) {
	l.Run(strings.NewReader(strings.Join(lines, "\n") + "\n"))
}

func TestLoop_UCIHandshake(t *testing.T) {
	l, out := newTestLoop(t)
	runLines(l, "uci", "quit")

	output := out.String()
	assert.Contains(t, output, "id name Corvid")
	assert.Contains(t, output, "uciok")
}

func TestLoop_IsReady(t *testing.T) {
	l, out := newTestLoop(t)
	runLines(l, "isready", "quit")
	assert.Contains(t, out.String(), "readyok")
}

func TestLoop_GoMovetimeZeroEmitsBestmove(t *testing.T) {
	l, out := newTestLoop(t)
	runLines(l, "position startpos", "go movetime 0", "quit")
	assert.Contains(t, out.String(), "bestmove")
}

func TestLoop_UnknownCommand(t *testing.T) {
	l, out := newTestLoop(t)
	runLines(l, "frobnicate", "quit")
	assert.Contains(t, out.String(), "Unknown command |frobnicate|")
}

func TestLoop_PositionStartposWithMoves(t *testing.T) {
	l, out := newTestLoop(t)
	runLines(l, "position startpos moves e2e4 e7e5", "go movetime 0", "quit")
	assert.Contains(t, out.String(), "bestmove")
}

func TestLoop_PositionFEN(t *testing.T) {
	l, out := newTestLoop(t)
	runLines(l, "position fen 4k3/8/8/8/8/8/8/4K2R w K - 0 1", "go movetime 0", "quit")
	assert.Contains(t, out.String(), "bestmove")
}

func TestLoop_SetOption(t *testing.T) {
	l, out := newTestLoop(t)
	runLines(l, "setoption name Hash value 16", "isready", "quit")
	assert.Contains(t, out.String(), "readyok")
}

func TestLoop_UCINewGame(t *testing.T) {
	l, out := newTestLoop(t)
	runLines(l, "position startpos moves e2e4", "ucinewgame", "go movetime 0", "quit")
	assert.Contains(t, out.String(), "bestmove")
}
