// Package hbengine implements shaper.ShapingEngine on top of
// github.com/go-text/typesetting's HarfBuzz port. It splits its
// caching the way a shaping wrapper generally should: a font's parsed
// *font.Font is safe for concurrent use and cached once per Typeface,
// while the per-call *font.Face and the pooled HarfbuzzShaper instance
// are not and are built fresh (or borrowed from a pool) on every Shape.
package hbengine

import (
	"sync"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/shaping"

	"github.com/textshape/shaper"
)

// FontBytesProvider is the engine-specific interface a shaper.Typeface
// must additionally implement to be usable with this engine: the raw
// font file bytes CreateFont parses with font.ParseTTF. Typefaces from
// package fontset satisfy this.
type FontBytesProvider interface {
	FontBytes() []byte
}

// VariationsProvider is an optional engine-specific interface a
// shaper.Typeface may additionally implement to shape with a specific
// variable-font instance instead of the font's default master.
// CreateFont records the returned coordinates on the engine font, and
// Shape applies them to every *font.Face it builds from that font.
type VariationsProvider interface {
	Variations() []font.VarCoord
}

// UnitsPerEmProvider is an optional engine-specific interface a
// shaper.Typeface may additionally implement to override the
// units-per-em CreateFont scales shaping output against, instead of
// trusting the value the font file itself declares.
type UnitsPerEmProvider interface {
	UnitsPerEmOverride() (upem int32, ok bool)
}

// Engine is the default shaper.ShapingEngine implementation. It is
// safe for concurrent use: the HarfbuzzShaper instances it borrows from
// its pool are not shared across concurrent calls.
type Engine struct {
	shaperPool sync.Pool
}

// New returns an Engine ready to use.
func New() *Engine {
	return &Engine{
		shaperPool: sync.Pool{
			New: func() any { return &shaping.HarfbuzzShaper{} },
		},
	}
}

var _ shaper.ShapingEngine = (*Engine)(nil)

// CreateFont implements shaper.ShapingEngine. It type-asserts t to
// FontBytesProvider and parses the font data with font.ParseTTF; the
// resulting *font.Font is read-only and safe to keep cached for the
// typeface's lifetime. If t also implements VariationsProvider or
// UnitsPerEmProvider, the returned engineFont carries the configured
// variation coordinates and units-per-em override for Shape to apply.
func (e *Engine) CreateFont(t shaper.Typeface) (shaper.ShapingFont, error) {
	provider, ok := t.(FontBytesProvider)
	if !ok {
		return nil, &UnsupportedTypefaceError{Typeface: t}
	}

	parsed, err := font.ParseTTF(newBytesResource(provider.FontBytes()))
	if err != nil {
		return nil, err
	}

	ef := &engineFont{font: parsed.Font, upem: int32(parsed.Font.Upem())}

	if vp, ok := t.(VariationsProvider); ok {
		ef.coords = vp.Variations()
	}
	if up, ok := t.(UnitsPerEmProvider); ok {
		if upem, ok := up.UnitsPerEmOverride(); ok && upem != 0 {
			ef.upem = upem
		}
	}

	return ef, nil
}

// UnsupportedTypefaceError is returned by CreateFont when the supplied
// Typeface does not also implement FontBytesProvider.
type UnsupportedTypefaceError struct {
	Typeface shaper.Typeface
}

func (e *UnsupportedTypefaceError) Error() string {
	return "hbengine: typeface does not implement FontBytesProvider"
}
