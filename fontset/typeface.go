package fontset

import (
	"github.com/go-text/typesetting/font"

	"github.com/textshape/shaper"
)

// Typeface is the default shaper.Typeface implementation: a Source
// plus the style read from its own tables and the TypefaceOptions
// configured for it.
//
// Typeface also implements the engine-specific interfaces package
// hbengine's CreateFont consults: FontBytes (always), and Variations
// and UnitsPerEmOverride when configured with WithVariations or
// WithUnitsPerEm.
type Typeface struct {
	source *Source
	style  shaper.FontStyle
	config typefaceConfig
}

// NewTypeface wraps source, claiming the weight and italic-ness read
// from the font's OS/2 and head tables. See WithRanges, WithVariations,
// and WithUnitsPerEm for the available options.
func NewTypeface(source *Source, opts ...TypefaceOption) *Typeface {
	source.copyCheck()
	cfg := defaultTypefaceConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	aspect := source.font.Describe().Aspect
	return &Typeface{
		source: source,
		style: shaper.FontStyle{
			Weight: int(aspect.Weight),
			Italic: aspect.Style == font.StyleItalic,
		},
		config: cfg,
	}
}

var _ shaper.Typeface = (*Typeface)(nil)

// Covers implements shaper.Typeface.
func (t *Typeface) Covers(r rune) bool {
	if !inRanges(r, t.config.ranges) {
		return false
	}
	_, ok := t.source.font.NominalGlyph(r)
	return ok
}

// Style implements shaper.Typeface.
func (t *Typeface) Style() shaper.FontStyle { return t.style }

// Metrics implements shaper.Typeface. It reads the font's horizontal
// extents in font units, under this typeface's configured variation
// coordinates if any, and scales them to size. A fresh *font.Face is
// built per call since Face is not safe for concurrent use, the same
// split package hbengine keeps between a cacheable *font.Font and a
// per-call *font.Face.
func (t *Typeface) Metrics(size float32) shaper.FontMetrics {
	upem := float32(t.effectiveUpem())
	if upem == 0 {
		return shaper.FontMetrics{}
	}

	face := font.NewFace(t.source.font)
	if len(t.config.variations) > 0 {
		face.SetCoords(t.config.variations)
	}
	extents, ok := face.FontHExtents()
	if !ok {
		return shaper.FontMetrics{}
	}

	scale := size / upem
	return shaper.FontMetrics{
		// Ascender is positive, Descender negative, in font units
		// (growing up); this module's Ascent is negative, Descent
		// positive (growing down), so both are negated.
		Ascent:  -extents.Ascender * scale,
		Descent: -extents.Descender * scale,
		Leading: extents.LineGap * scale,
	}
}

func (t *Typeface) effectiveUpem() int32 {
	if t.config.upemOverride != 0 {
		return t.config.upemOverride
	}
	return int32(t.source.font.Upem())
}

// FontBytes implements hbengine.FontBytesProvider.
func (t *Typeface) FontBytes() []byte { return t.source.FontBytes() }

// Variations implements hbengine.VariationsProvider.
func (t *Typeface) Variations() []font.VarCoord { return t.config.variations }

// UnitsPerEmOverride implements hbengine.UnitsPerEmProvider.
func (t *Typeface) UnitsPerEmOverride() (int32, bool) {
	return t.config.upemOverride, t.config.upemOverride != 0
}
