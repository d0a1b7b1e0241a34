// Package splitter breaks oversized transcripts into overlapping chunks so
// each piece fits in one model request. Splits prefer paragraph, then line,
// then word boundaries before falling back to hard character cuts.
package splitter

import (
	"strings"
	"unicode/utf8"
)

var defaultSeparators = []string{"\n\n", "\n", " ", ""}

type Splitter struct {
	chunkSize    int
	chunkOverlap int
	separators   []string
}

// New creates a Splitter producing chunks of at most chunkSize characters,
// with up to chunkOverlap characters of context repeated between adjacent
// chunks. chunkOverlap must be smaller than chunkSize.
func New(chunkSize, chunkOverlap int) *Splitter {
	return &Splitter{
		chunkSize:    chunkSize,
		chunkOverlap: chunkOverlap,
		separators:   defaultSeparators,
	}
}

// Split returns the chunks of text in order. Text at most chunkSize long is
// returned as a single chunk. Concatenating the chunks minus their overlaps
// reproduces the input.
func (s *Splitter) Split(text string) []string {
	if text == "" {
		return nil
	}
	return s.split(text, s.separators)
}

func (s *Splitter) split(text string, separators []string) []string {
	if len(text) <= s.chunkSize {
		return []string{text}
	}

	sep, rest := pickSeparator(text, separators)
	if sep == "" {
		return s.hardSplit(text)
	}

	pieces := splitKeepSeparator(text, sep)

	var chunks []string
	var window []string
	windowLen := 0

	flush := func() {
		if windowLen == 0 {
			return
		}
		chunks = append(chunks, strings.Join(window, ""))
		// Retain a tail of pieces as overlap for the next chunk.
		for windowLen > s.chunkOverlap && len(window) > 1 {
			windowLen -= len(window[0])
			window = window[1:]
		}
		if windowLen > s.chunkOverlap {
			window = nil
			windowLen = 0
		}
	}

	for _, piece := range pieces {
		if len(piece) > s.chunkSize {
			flush()
			window, windowLen = nil, 0
			chunks = append(chunks, s.split(piece, rest)...)
			continue
		}
		if windowLen+len(piece) > s.chunkSize {
			flush()
			// Shed retained overlap that would push the next chunk over.
			for windowLen+len(piece) > s.chunkSize && len(window) > 0 {
				windowLen -= len(window[0])
				window = window[1:]
			}
		}
		window = append(window, piece)
		windowLen += len(piece)
	}
	if windowLen > 0 {
		chunks = append(chunks, strings.Join(window, ""))
	}

	return chunks
}

// hardSplit cuts text into fixed windows when no separator is usable.
// Cut points back up to rune starts so a multi-byte rune is never halved.
func (s *Splitter) hardSplit(text string) []string {
	var chunks []string
	start := 0
	for start < len(text) {
		end := start + s.chunkSize
		if end >= len(text) {
			chunks = append(chunks, text[start:])
			break
		}
		for end > start && !utf8.RuneStart(text[end]) {
			end--
		}
		if end == start {
			// A single rune wider than the window still goes out whole.
			_, size := utf8.DecodeRuneInString(text[start:])
			end = start + size
		}
		chunks = append(chunks, text[start:end])

		next := end - s.chunkOverlap
		for next > start && !utf8.RuneStart(text[next]) {
			next--
		}
		if next <= start {
			next = end
		}
		start = next
	}
	return chunks
}

// pickSeparator returns the first separator present in text and the
// separators remaining after it, for recursion into oversized pieces.
func pickSeparator(text string, separators []string) (string, []string) {
	for i, sep := range separators {
		if sep == "" {
			return "", nil
		}
		if strings.Contains(text, sep) {
			return sep, separators[i+1:]
		}
	}
	return "", nil
}

// splitKeepSeparator splits text on sep, keeping the separator attached to
// the preceding piece so rejoining pieces reproduces the input.
func splitKeepSeparator(text, sep string) []string {
	parts := strings.Split(text, sep)
	pieces := make([]string, 0, len(parts))
	for i, p := range parts {
		if i < len(parts)-1 {
			p += sep
		}
		if p != "" {
			pieces = append(pieces, p)
		}
	}
	return pieces
}
