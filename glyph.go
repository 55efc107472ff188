package shaper

// ShapedGlyph is one positioned glyph produced by the shaping engine and
// annotated by the line-break pass. Clusters are stored as absolute
// UTF-8 byte offsets into the original input, even though the shaping
// engine reports them relative to the segment being shaped — the shift
// happens once, at record time, in the segment-and-shape pass.
type ShapedGlyph struct {
	GlyphID uint16

	// Cluster is the absolute UTF-8 byte offset this glyph is attributed
	// to. Multiple glyphs may share a cluster (ligature components) or
	// multiple source clusters may collapse onto one glyph.
	Cluster uint32

	Offset  Point
	Advance Point

	// MayBreakBefore is a Unicode line-break opportunity reported by the
	// break iterator: true if breaking before this glyph is permitted.
	MayBreakBefore bool

	// MustBreakBefore is set by the line-break pass: true for the first
	// glyph of every line after the first.
	MustBreakBefore bool

	// HasVisual is false for glyphs that contribute no ink (a TODO in
	// the source this was distilled from about pulling invisible glyphs
	// across line breaks is resolved in DESIGN.md); currently always
	// true for glyphs the shaping engine returns.
	HasVisual bool
}
