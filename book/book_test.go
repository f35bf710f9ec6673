package book

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleBook = `
e2e4:
  best: e7e5
  e7e5:
    best: g1f3
    g1f3: {}
  c7c5:
    best: g1f3
`

func writeSample(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "book.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleBook), 0o644))
	return path
}

func TestLoad_MissingPathYieldsEmptyBook(t *testing.T) {
	b, err := Load("")
	require.NoError(t, err)
	c := b.NewCursor()
	assert.False(t, c.InBook())
	_, ok := c.Best()
	assert.False(t, ok)
}

func TestLoad_NonexistentFileErrors(t *testing.T) {
	_, err := Load("/nonexistent/path/book.yaml")
	assert.Error(t, err)
}

func TestCursor_AdvanceAndBest(t *testing.T) {
	b, err := Load(writeSample(t))
	require.NoError(t, err)

	c := b.NewCursor()
	require.True(t, c.InBook())

	// The sample's root has no "best" key, so the root designates no reply.
	mv, ok := c.Best()
	require.False(t, ok)
	assert.Equal(t, "", mv)

	c.Advance("e2e4")
	require.True(t, c.InBook())

	mv, ok = c.Best()
	require.True(t, ok)
	assert.Equal(t, "e7e5", mv)

	c.Advance("e7e5")
	require.True(t, c.InBook())
	mv, ok = c.Best()
	require.True(t, ok)
	assert.Equal(t, "g1f3", mv)

	c.Advance("g1f3")
	require.True(t, c.InBook())
	_, ok = c.Best()
	assert.False(t, ok, "leaf node designates no best child")
}

func TestCursor_AdvanceOffBookGoesNull(t *testing.T) {
	b, err := Load(writeSample(t))
	require.NoError(t, err)

	c := b.NewCursor()
	c.Advance("d2d4")
	assert.False(t, c.InBook())

	_, ok := c.Best()
	assert.False(t, ok)

	c.Advance("anything")
	assert.False(t, c.InBook(), "once null, stays null")
}

func TestCursor_Reset(t *testing.T) {
	b, err := Load(writeSample(t))
	require.NoError(t, err)

	c := b.NewCursor()
	c.Advance("e2e4")
	c.Advance("c7c5")
	require.True(t, c.InBook())

	c.Advance("d2d4")
	assert.False(t, c.InBook())

	c.Reset()
	assert.True(t, c.InBook())
	c.Advance("e2e4")
	mv, ok := c.Best()
	require.True(t, ok)
	assert.Equal(t, "e7e5", mv)
}

func TestCursor_ReplayingSameSequenceTwiceIsIdempotent(t *testing.T) {
	b, err := Load(writeSample(t))
	require.NoError(t, err)

	moves := []string{"e2e4", "e7e5", "g1f3"}

	c1 := b.NewCursor()
	for _, m := range moves {
		c1.Advance(m)
	}

	c2 := b.NewCursor()
	for _, m := range moves {
		c2.Advance(m)
	}

	assert.Equal(t, c1.InBook(), c2.InBook())
	mv1, ok1 := c1.Best()
	mv2, ok2 := c2.Best()
	assert.Equal(t, ok1, ok2)
	assert.Equal(t, mv1, mv2)
}

func TestCursor_NilBookNewCursorIsNull(t *testing.T) {
	var b *Book
	c := b.NewCursor()
	assert.False(t, c.InBook())
}
