package unicodeservice

import (
	"unicode/utf8"

	"github.com/go-text/typesetting/segmenter"

	"github.com/textshape/shaper"
)

// NewLineBreakIterator wraps a github.com/go-text/typesetting/segmenter
// Segmenter's line iterator, which reports break opportunities as rune
// offsets into a []rune copy of the text, behind shaper.BreakIterator's
// byte-offset contract. The whole text is segmented eagerly on
// construction (the segmenter has no incremental API), then replayed
// lazily through Current/Next.
func (s *Services) NewLineBreakIterator(text string) (shaper.BreakIterator, error) {
	runes := []rune(text)

	runeToByte := make([]int, len(runes)+1)
	b := 0
	for i := range runes {
		runeToByte[i] = b
		_, n := utf8.DecodeRuneInString(text[b:])
		b += n
	}
	runeToByte[len(runes)] = b

	var sg segmenter.Segmenter
	sg.Init(runes)

	var offsets []int
	it := sg.LineIterator()
	for it.Next() {
		line := it.Line()
		endRune := line.Offset + len(line.Text)
		offsets = append(offsets, runeToByte[endRune])
	}

	return &lineBreakIterator{offsets: offsets}, nil
}

// lineBreakIterator replays a precomputed sequence of break byte
// offsets, matching the ICU ubrk_current/ubrk_next contract the root
// package's BreakIterator interface is modeled on: Current starts at
// the beginning of the text and only changes when Next is called.
type lineBreakIterator struct {
	offsets []int
	pos     int
	current int
}

func (it *lineBreakIterator) Current() int { return it.current }

func (it *lineBreakIterator) Next() int {
	if it.pos >= len(it.offsets) {
		return shaper.BreakDone
	}
	it.current = it.offsets[it.pos]
	it.pos++
	return it.current
}
