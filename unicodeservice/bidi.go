package unicodeservice

import (
	"golang.org/x/text/unicode/bidi"

	"github.com/textshape/shaper"
)

// UTF16Levels implements shaper.UnicodeServices. It mirrors the
// teacher's BuiltinSegmenter.computeBidiLevels: run bidi.Paragraph
// analysis over the whole text, flatten each resulting run to an
// even/odd embedding level by direction, then expand from per-rune to
// per-UTF-16-unit levels since surrogate pairs occupy two units.
func (s *Services) UTF16Levels(text string, base shaper.Direction) ([]shaper.Level, error) {
	if text == "" {
		return nil, nil
	}

	runes := []rune(text)
	runeLevels := make([]shaper.Level, len(runes))

	defaultDir := bidi.LeftToRight
	if base == shaper.RightToLeft {
		defaultDir = bidi.RightToLeft
	}

	var p bidi.Paragraph
	if _, err := p.SetString(text, bidi.DefaultDirection(defaultDir)); err != nil {
		return nil, shaper.ErrUTF16Conversion
	}

	ordering, err := p.Order()
	if err != nil {
		return nil, shaper.ErrUTF16Conversion
	}

	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		startRune, endRune := run.Pos()
		level := shaper.Level(0)
		if run.Direction() == bidi.RightToLeft {
			level = 1
		}
		for j := startRune; j <= endRune && j < len(runeLevels); j++ {
			runeLevels[j] = level
		}
	}

	levels := make([]shaper.Level, 0, len(runes))
	for i, r := range runes {
		units := runeUTF16Len(r)
		if units < 1 {
			units = 1
		}
		for k := 0; k < units; k++ {
			levels = append(levels, runeLevels[i])
		}
	}
	return levels, nil
}

// runeUTF16Len mirrors unicode/utf16.RuneLen: the number of 16-bit
// words needed to encode r, or -1 if r cannot be encoded in UTF-16.
func runeUTF16Len(r rune) int {
	switch {
	case r < 0 || (0xd800 <= r && r < 0xe000):
		return -1
	case r <= 0xffff:
		return 1
	case r > 0x10ffff:
		return -1
	default:
		return 2
	}
}
