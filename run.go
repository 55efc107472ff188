package shaper

// ResolvedFont is the font a ShapedRun was actually shaped with: the
// caller's base font overridden with whichever typeface the
// FontRunIterator selected for that run (primary or a cached fallback).
type ResolvedFont struct {
	Typeface Typeface
	Size     float32

	// ScaleX is the run's horizontal scale factor. Shape always records
	// 1 here, and the segment-and-shape pass's scaleFactors does not
	// read it: glyph advances and offsets carry no extra horizontal
	// scaling.
	ScaleX float32
}

// ShapedRun is a maximal run over which bidi level, script, and typeface
// are constant. Glyphs are always stored in logical order, regardless of
// the run's direction — the reorder-and-emit pass is what produces
// visual order.
type ShapedRun struct {
	UTF8Start, UTF8End int
	Font               ResolvedFont
	Level              Level
	Glyphs             []ShapedGlyph
	TotalAdvance       Point
}

// NumGlyphs returns the number of glyphs in the run.
func (r *ShapedRun) NumGlyphs() int { return len(r.Glyphs) }

// ShapedRuns is an ordered sequence of ShapedRun in logical order of
// appearance, covering the shaped input with no gaps or overlaps.
type ShapedRuns struct {
	runs []ShapedRun
}

func (s *ShapedRuns) append(r ShapedRun) { s.runs = append(s.runs, r) }

// Len returns the number of runs.
func (s *ShapedRuns) Len() int { return len(s.runs) }

// Run returns the run at index i.
func (s *ShapedRuns) Run(i int) *ShapedRun { return &s.runs[i] }

// Cursor is a (run_index, glyph_index) pair into a ShapedRuns sequence.
// Two cursors are equal iff they share the same ShapedRuns and indices.
type Cursor struct {
	runs       *ShapedRuns
	RunIndex   int
	GlyphIndex int
}

// newCursor returns a cursor at the first glyph of runs, or an
// already-at-end cursor if runs is empty.
func newCursor(runs *ShapedRuns) Cursor {
	c := Cursor{runs: runs}
	c.skipEmptyRuns()
	return c
}

// skipEmptyRuns advances past any run with zero glyphs, matching
// SkShaper's ShapedRunGlyphIterator behaviour of never resting on an
// empty run.
func (c *Cursor) skipEmptyRuns() {
	for c.RunIndex < c.runs.Len() && c.runs.Run(c.RunIndex).NumGlyphs() == 0 {
		c.RunIndex++
		c.GlyphIndex = 0
	}
}

// AtEnd reports whether the cursor has advanced past the last glyph.
func (c Cursor) AtEnd() bool { return c.RunIndex >= c.runs.Len() }

// Current returns the glyph the cursor currently points to. The caller
// must ensure !AtEnd().
func (c Cursor) Current() *ShapedGlyph {
	return &c.runs.Run(c.RunIndex).Glyphs[c.GlyphIndex]
}

// Next advances the cursor by one glyph and returns the glyph it now
// points to, or nil if the cursor reached the end.
func (c *Cursor) Next() *ShapedGlyph {
	if c.AtEnd() {
		return nil
	}
	c.GlyphIndex++
	if c.GlyphIndex >= c.runs.Run(c.RunIndex).NumGlyphs() {
		c.RunIndex++
		c.GlyphIndex = 0
		c.skipEmptyRuns()
	}
	if c.AtEnd() {
		return nil
	}
	return c.Current()
}

// Equal reports whether two cursors reference the same sequence and
// position.
func (c Cursor) Equal(other Cursor) bool {
	return c.runs == other.runs && c.RunIndex == other.RunIndex && c.GlyphIndex == other.GlyphIndex
}
