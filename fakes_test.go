package shaper

import (
	"errors"
	"unicode/utf16"
)

// errFakeLevels is a sentinel error tests use to force UTF16Levels to fail.
var errFakeLevels = errors.New("fake: UTF16Levels failed")

// fakeTypeface is a minimal Typeface used across this package's tests.
type fakeTypeface struct {
	name      string
	coversAll bool
	covered   map[rune]bool
	style     FontStyle

	ascentPerEm, descentPerEm, leadingPerEm float32
}

func (f *fakeTypeface) Covers(r rune) bool {
	if f.coversAll {
		return true
	}
	return f.covered[r]
}

func (f *fakeTypeface) Style() FontStyle { return f.style }

func (f *fakeTypeface) Metrics(size float32) FontMetrics {
	return FontMetrics{
		Ascent:  f.ascentPerEm * size,
		Descent: f.descentPerEm * size,
		Leading: f.leadingPerEm * size,
	}
}

// fakeShapingFont is the ShapingFont fakeShapingEngine hands back.
type fakeShapingFont struct {
	upem   int32
	closed bool
}

func (f *fakeShapingFont) Scale() (int32, int32) { return f.upem, f.upem }
func (f *fakeShapingFont) Close() error          { f.closed = true; return nil }

// fakeShapingEngine shapes every code point to one glyph whose advance
// is a configurable number of font units, defaulting to one em — which
// makes the scaled pixel advance equal to the shaping size, simplifying
// arithmetic in tests.
type fakeShapingEngine struct {
	upem            int32
	advancePerGlyph int32
	createErr       error
	shapeErr        error
}

func (e *fakeShapingEngine) CreateFont(t Typeface) (ShapingFont, error) {
	if e.createErr != nil {
		return nil, e.createErr
	}
	upem := e.upem
	if upem == 0 {
		upem = 1000
	}
	return &fakeShapingFont{upem: upem}, nil
}

func (e *fakeShapingEngine) Shape(font ShapingFont, in ShapeInput) (ShapeOutput, error) {
	if e.shapeErr != nil {
		return ShapeOutput{}, e.shapeErr
	}
	ff := font.(*fakeShapingFont)
	adv := e.advancePerGlyph
	if adv == 0 {
		adv = ff.upem
	}

	sub := in.Text[in.RunStart:in.RunEnd]
	var glyphs []EngineGlyph
	for i, r := range sub {
		glyphs = append(glyphs, EngineGlyph{
			GlyphID:  uint16(r),
			Cluster:  uint32(i),
			XAdvance: adv,
		})
	}
	return ShapeOutput{Glyphs: glyphs}, nil
}

// fakeFontProvider returns a single configured fallback, or no match.
type fakeFontProvider struct {
	fallback *fakeTypeface
}

func (p *fakeFontProvider) MatchFamilyStyleCharacter(familyHint string, style FontStyle, tags []string, r rune) (Typeface, bool) {
	if p.fallback != nil && p.fallback.Covers(r) {
		return p.fallback, true
	}
	return nil, false
}

// fakeUnicodeServices is a small, deterministic UnicodeServices stand-in.
// scriptFunc and levelsFunc let individual tests override classification
// without a new fake type.
type fakeUnicodeServices struct {
	scriptFunc func(rune) Script
	levelsFunc func(text string, base Direction) ([]Level, error)
}

func (s *fakeUnicodeServices) UTF16Levels(text string, base Direction) ([]Level, error) {
	if s.levelsFunc != nil {
		return s.levelsFunc(text, base)
	}
	level := Level(0)
	if base == RightToLeft {
		level = 1
	}
	units := utf16.Encode([]rune(text))
	levels := make([]Level, len(units))
	for i := range levels {
		levels[i] = level
	}
	return levels, nil
}

func (s *fakeUnicodeServices) ScriptOf(r rune) Script {
	if s.scriptFunc != nil {
		return s.scriptFunc(r)
	}
	return ScriptCommon
}

func (s *fakeUnicodeServices) ReorderVisual(levels []Level) []int {
	return reorderVisualL2(levels)
}

func (s *fakeUnicodeServices) NewLineBreakIterator(text string) (BreakIterator, error) {
	return newFakeBreakIterator(text), nil
}

// reorderVisualL2 is a standalone UAX#9 rule L2 implementation used
// only by this package's fakes, so the tests exercising emitLines don't
// depend on the unicodeservice package's own copy of the same algorithm.
func reorderVisualL2(levels []Level) []int {
	n := len(levels)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	if n == 0 {
		return order
	}
	var maxLevel, minOddLevel Level
	minOddLevel = 255
	for _, l := range levels {
		if l > maxLevel {
			maxLevel = l
		}
		if l%2 == 1 && l < minOddLevel {
			minOddLevel = l
		}
	}
	for level := maxLevel; level >= minOddLevel && level > 0; level-- {
		i := 0
		for i < n {
			if levels[order[i]] < level {
				i++
				continue
			}
			j := i
			for j < n && levels[order[j]] >= level {
				j++
			}
			for a, b := i, j-1; a < b; a, b = a+1, b-1 {
				order[a], order[b] = order[b], order[a]
			}
			i = j
		}
	}
	return order
}

// fakeBreakIterator places a break opportunity before index 0, before
// every space, and at the end of the text.
type fakeBreakIterator struct {
	boundaries []int
	idx        int
}

func newFakeBreakIterator(text string) *fakeBreakIterator {
	bs := []int{0}
	for i, r := range text {
		if r == ' ' {
			bs = append(bs, i)
		}
	}
	bs = append(bs, len(text))
	return &fakeBreakIterator{boundaries: bs}
}

func (it *fakeBreakIterator) Current() int {
	if it.idx >= len(it.boundaries) {
		return BreakDone
	}
	return it.boundaries[it.idx]
}

func (it *fakeBreakIterator) Next() int {
	if it.idx+1 < len(it.boundaries) {
		it.idx++
		return it.boundaries[it.idx]
	}
	it.idx = len(it.boundaries)
	return BreakDone
}

// recordedRun is one NewRunBuffer call captured by recordingSink.
type recordedRun struct {
	info RunInfo
	font ResolvedFont
	buf  *RunBuffer
}

// recordingSink is a RunSink that only records what it was asked to
// store, for assertions in tests; it never renders anything.
type recordingSink struct {
	withClusters bool
	withUTF8     bool
	runs         []recordedRun
}

func (s *recordingSink) NewRunBuffer(info RunInfo, font ResolvedFont, numGlyphs, utf8ByteCount int) *RunBuffer {
	buf := &RunBuffer{
		Glyphs:    make([]uint16, numGlyphs),
		Positions: make([]Point, numGlyphs),
	}
	if s.withClusters {
		buf.Clusters = make([]uint32, numGlyphs)
	}
	if s.withUTF8 {
		buf.UTF8Text = make([]byte, utf8ByteCount)
	}
	s.runs = append(s.runs, recordedRun{info: info, font: font, buf: buf})
	return buf
}
