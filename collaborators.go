package shaper

import "io"

// FontStyle is the subset of typeface style FontProvider fallback
// lookups match on.
type FontStyle struct {
	Weight int
	Italic bool
}

// Typeface models a resolved, fallback-selected font: enough for the
// FontRunIterator's coverage probe and for a ShapingEngine to build its
// own native font handle from. Concrete typefaces (see package fontset)
// typically implement a second, engine-specific interface that the
// ShapingEngine implementation they're paired with type-asserts for.
type Typeface interface {
	// Covers reports whether the typeface has at least one glyph for r.
	Covers(r rune) bool
	// Style reports the typeface's style, used by FontProvider lookups.
	Style() FontStyle
	// Metrics reports ascent, descent, and leading scaled to size,
	// feeding the reorder-and-emit pass's per-line extremum tracking.
	Metrics(size float32) FontMetrics
}

// FontProvider resolves a fallback typeface for a style and code point
// the primary typeface does not cover. Font enumeration, typeface
// loading, and font-data byte acquisition all live behind this
// interface; this module never touches a filesystem or font cache
// directly.
type FontProvider interface {
	// MatchFamilyStyleCharacter implements
	// match_family_style_character: returns a typeface matching
	// familyHint and style that covers r, and whether a match was
	// found at all.
	MatchFamilyStyleCharacter(familyHint string, style FontStyle, languageTags []string, r rune) (Typeface, bool)
}

// Script is a Unicode script identifier as reported by UnicodeServices,
// using the four-letter codes from the Unicode Script property (the
// same codes HarfBuzz and ICU surface in diagnostics). The shaper never
// branches on a specific script value beyond Common/Inherited, which it
// needs to merge neutral characters into neighboring runs.
type Script string

const (
	ScriptCommon    Script = "Zyyy"
	ScriptInherited Script = "Zinh"
	ScriptUnknown   Script = "Zzzz"
)

// ShapingFont is an engine-native font handle: the result of
// ShapingEngine.CreateFont (font_create). It reports the engine's
// internal font-unit scale and must be released when no longer cached.
type ShapingFont interface {
	io.Closer
	// Scale implements font_get_scale: the font's horizontal and
	// vertical scale in the shaping engine's internal font units.
	Scale() (x, y int32)
}

// EngineGlyph is one glyph as reported by the shaping engine, before
// the driver applies scaling, absolute-offset correction, or RTL
// buffer reversal.
type EngineGlyph struct {
	GlyphID uint16

	// Cluster is the source byte offset relative to the shaped
	// segment's start, not an absolute offset into the original input.
	Cluster uint32

	XOffset, YOffset   int32
	XAdvance, YAdvance int32

	// UnsafeToBreak mirrors HarfBuzz's unsafe-to-break cluster flag,
	// inverted: false here means the shaping engine considers this
	// glyph a safe line-break candidate. The segment-and-shape and
	// line-break passes do not read it; break opportunities come only
	// from the BreakIterator.
	UnsafeToBreak bool
}

// ShapeInput is the buffer state the segment-and-shape pass builds
// before invoking the shaping engine: the pre/post context, per-code-point
// text, script, and direction a HarfBuzz-style buffer would otherwise be
// built from one call at a time, collapsed into one value since this
// module never manipulates the engine's buffer object directly.
type ShapeInput struct {
	// Text is the full paragraph text; RunStart/RunEnd mark the segment
	// within it to shape. Bytes outside [RunStart, RunEnd) are supplied
	// as shaping context only and must not appear in the output.
	Text             string
	RunStart, RunEnd int
	Script           Script
	Direction        Direction
}

// ShapeOutput is the result of ShapingEngine.Shape: glyphs in the
// engine's native logical order, i.e. before the driver's RTL buffer
// reversal.
type ShapeOutput struct {
	Glyphs []EngineGlyph
}

// ShapingEngine is the complex-script shaping primitive (real
// implementations wrap HarfBuzz). It is given a typeface handle and a
// UTF-8 buffer with context and returns glyph records in logical order
// with monotonic clusters.
type ShapingEngine interface {
	// CreateFont implements font_create: resolves t to an engine-native
	// font handle.
	CreateFont(t Typeface) (ShapingFont, error)
	// Shape implements buffer_create/buffer_add*/shape() fused into one
	// call.
	Shape(font ShapingFont, in ShapeInput) (ShapeOutput, error)
}

// BreakDone is the sentinel BreakIterator.Next returns once exhausted,
// mirroring ICU's UBRK_DONE.
const BreakDone = -1

// BreakIterator walks UAX#14 line-break opportunities by UTF-8 byte
// offset (break_iterator_current/break_iterator_next).
type BreakIterator interface {
	// Current returns the byte offset of the iterator's current
	// position without advancing it.
	Current() int
	// Next advances to the next break opportunity and returns its byte
	// offset, or BreakDone if there are no more.
	Next() int
}

// UnicodeServices is the Unicode-property collaborator (real
// implementations wrap ICU): UTF-8/UTF-16 conversion, bidi paragraph
// analysis, visual reordering, script classification, and line-break
// iteration.
type UnicodeServices interface {
	// UTF16Levels implements utf8_to_utf16 + bidi_open_sized +
	// bidi_set_para + bidi_get_level_at, fused: per-UTF-16-unit bidi
	// embedding levels for text under the given default paragraph
	// direction.
	UTF16Levels(text string, base Direction) ([]Level, error)

	// ReorderVisual implements bidi_reorder_visual: given the bidi
	// levels of a sequence of runs appearing on one line, returns
	// logicalFromVisual, a permutation mapping visual position to
	// logical run index.
	ReorderVisual(levels []Level) []int

	// ScriptOf implements unicode_script: the Unicode script property
	// of a single code point.
	ScriptOf(r rune) Script

	// NewLineBreakIterator implements break_iterator_open (line mode) +
	// break_iterator_set_utf8_text.
	NewLineBreakIterator(text string) (BreakIterator, error)
}

// RunInfo describes the visual run a RunSink is being asked to store:
// which line it belongs to, its total advance, and the line metrics in
// effect when it was emitted.
type RunInfo struct {
	LineIndex                int
	RunAdvance               Point
	Ascent, Descent, Leading float32
}

// RunBuffer is storage a RunSink hands back from NewRunBuffer. Glyphs
// and Positions are required and must have length numGlyphs; Clusters
// and UTF8Text are optional (nil) — a sink that doesn't need clusters
// or a UTF-8 copy leaves the corresponding field nil and the
// reorder-and-emit pass skips writing it.
type RunBuffer struct {
	Glyphs    []uint16
	Positions []Point
	Clusters  []uint32
	UTF8Text  []byte
}

// RunSink receives per-line run buffers and line metrics. It is the
// consumer of the laid-out runs: this module never renders or
// rasterizes anything itself.
type RunSink interface {
	// NewRunBuffer implements new_run_buffer: requests a buffer sized
	// for numGlyphs glyphs and utf8ByteCount bytes of source text, for
	// the run described by info and font.
	NewRunBuffer(info RunInfo, font ResolvedFont, numGlyphs, utf8ByteCount int) *RunBuffer
}
