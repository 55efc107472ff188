package fontset

import "github.com/go-text/typesetting/font"

// TypefaceOption configures Typeface creation.
type TypefaceOption func(*typefaceConfig)

// typefaceConfig holds configuration for a Typeface.
type typefaceConfig struct {
	ranges       []UnicodeRange
	variations   []font.VarCoord
	upemOverride int32
}

func defaultTypefaceConfig() typefaceConfig {
	return typefaceConfig{}
}

// WithRanges restricts the coverage a Typeface reports to the given
// Unicode ranges, independent of what glyphs the underlying font
// actually contains. The default (no WithRanges call) claims the
// font's full coverage.
func WithRanges(ranges ...UnicodeRange) TypefaceOption {
	return func(c *typefaceConfig) {
		c.ranges = ranges
	}
}

// WithVariations sets normalized variation-axis coordinates the
// Typeface's shaping-engine font is built with, so a variable font
// shapes with a specific named or custom instance instead of its
// default master.
func WithVariations(coords ...font.VarCoord) TypefaceOption {
	return func(c *typefaceConfig) {
		c.variations = coords
	}
}

// WithUnitsPerEm overrides the units-per-em the shaping engine scales
// glyph positions against, instead of trusting the value the font file
// declares. Mainly useful for synthetic or test fonts built with a
// deliberately small, easy-to-check unit scale.
func WithUnitsPerEm(upem int32) TypefaceOption {
	return func(c *typefaceConfig) {
		c.upemOverride = upem
	}
}
