package splitter

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitSmallTextSingleChunk(t *testing.T) {
	s := New(100, 10)
	chunks := s.Split("short transcript")
	require.Len(t, chunks, 1)
	assert.Equal(t, "short transcript", chunks[0])
}

func TestSplitEmpty(t *testing.T) {
	s := New(100, 10)
	assert.Empty(t, s.Split(""))
}

func TestSplitRespectsChunkSize(t *testing.T) {
	text := strings.Repeat("one two three four five. ", 200)
	s := New(120, 20)

	for i, c := range s.Split(text) {
		assert.LessOrEqual(t, len(c), 120, "chunk %d exceeds size", i)
		assert.NotEmpty(t, c, "chunk %d is empty", i)
	}
}

func TestSplitPrefersParagraphBoundaries(t *testing.T) {
	para := strings.Repeat("word ", 10) // 50 chars
	text := strings.TrimSpace(strings.Repeat(para+"\n\n", 4))
	s := New(60, 0)

	chunks := s.Split(text)
	require.Greater(t, len(chunks), 1)
	for _, c := range chunks {
		assert.NotContains(t, strings.Trim(c, "\n"), "\n\n",
			"chunk spans a paragraph boundary: %q", c)
	}
}

func TestSplitCoversAllText(t *testing.T) {
	text := strings.Repeat("alpha beta gamma delta.\n", 100)
	s := New(80, 0)

	joined := strings.Join(s.Split(text), "")
	assert.Equal(t, text, joined, "with zero overlap, chunks must concatenate to the input")
}

func TestSplitOverlapCarriesContext(t *testing.T) {
	text := strings.Repeat("segment ", 100) // 800 chars of identical words
	s := New(100, 24)

	chunks := s.Split(text)
	require.Greater(t, len(chunks), 1)
	for i := 1; i < len(chunks); i++ {
		tail := chunks[i-1][len(chunks[i-1])-8:]
		assert.True(t, strings.HasPrefix(chunks[i], tail) || strings.Contains(chunks[i], tail),
			"chunk %d shares no context with its predecessor", i)
	}
}

func TestHardSplitKeepsRunesWhole(t *testing.T) {
	// 2-byte runes with an odd chunk size force every naive cut mid-rune.
	text := strings.Repeat("é", 300)
	s := New(101, 0)

	chunks := s.Split(text)
	require.Greater(t, len(chunks), 1)
	for i, c := range chunks {
		assert.True(t, utf8.ValidString(c), "chunk %d cuts a rune in half: %q", i, c)
		assert.LessOrEqual(t, len(c), 101, "chunk %d exceeds size", i)
	}
	assert.Equal(t, text, strings.Join(chunks, ""))
}

func TestHardSplitRuneBoundariesWithOverlap(t *testing.T) {
	text := strings.Repeat("世界和平", 50) // 3-byte runes, no separators
	s := New(40, 7)

	for i, c := range s.Split(text) {
		assert.True(t, utf8.ValidString(c), "chunk %d cuts a rune in half: %q", i, c)
		assert.NotEmpty(t, c)
	}
}

func TestSplitMultiByteTextValidChunks(t *testing.T) {
	text := strings.TrimSpace(strings.Repeat("продажи выросли на десять процентов\n\n", 20))
	s := New(90, 15)

	for i, c := range s.Split(text) {
		assert.True(t, utf8.ValidString(c), "chunk %d cuts a rune in half: %q", i, c)
	}
}

func TestHardSplitNoSeparators(t *testing.T) {
	text := strings.Repeat("x", 250)
	s := New(100, 0)

	chunks := s.Split(text)
	require.Len(t, chunks, 3)
	assert.Equal(t, text, strings.Join(chunks, ""))
}
