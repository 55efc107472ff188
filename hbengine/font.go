package hbengine

import (
	"bytes"

	"github.com/go-text/typesetting/font"
)

// newBytesResource adapts a byte slice to font.Resource (an
// io.Reader+Seeker+ReaderAt) via bytes.NewReader.
func newBytesResource(data []byte) font.Resource {
	return bytes.NewReader(data)
}

// engineFont is the shaper.ShapingFont this engine hands back from
// CreateFont. *font.Font is read-only and safe for concurrent use, so
// a single engineFont can be shared across goroutines shaping with the
// same typeface; only the per-call *font.Face built in Shape is not.
type engineFont struct {
	font   *font.Font
	upem   int32
	coords []font.VarCoord
}

// Scale implements shaper.ShapingFont: HarfBuzz's default scale is the
// font's units-per-em on both axes, so Shape's output stays in raw
// font design units and the driver's own scaleFactors converts to the
// requested size.
func (f *engineFont) Scale() (x, y int32) { return f.upem, f.upem }

// Close implements io.Closer. Parsed font data is plain heap memory
// with no OS resource behind it, so there is nothing to release.
func (f *engineFont) Close() error { return nil }
