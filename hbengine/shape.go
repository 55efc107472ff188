package hbengine

import (
	"unicode/utf8"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/textshape/shaper"
)

// Shape implements shaper.ShapingEngine. It requests shaping at the
// font's own units-per-em (rather than the caller's actual point size)
// so the returned EngineGlyph values stay in raw font design units;
// the driver's scaleFactors applies the real size afterward. This
// mirrors HarfBuzz's own default hb_font_get_scale of (upem, upem).
func (e *Engine) Shape(sf shaper.ShapingFont, in shaper.ShapeInput) (shaper.ShapeOutput, error) {
	ef, ok := sf.(*engineFont)
	if !ok {
		return shaper.ShapeOutput{}, &WrongEngineFontError{}
	}
	if in.RunEnd <= in.RunStart {
		return shaper.ShapeOutput{}, nil
	}

	runes := []rune(in.Text)
	byteToRune, runeToByte := buildOffsetTables(in.Text, runes)

	runStartRune := byteToRune[in.RunStart]
	runEndRune := byteToRune[in.RunEnd]

	face := font.NewFace(ef.font)
	if len(ef.coords) > 0 {
		face.SetCoords(ef.coords)
	}

	input := shaping.Input{
		Text:      runes,
		RunStart:  runStartRune,
		RunEnd:    runEndRune,
		Direction: mapDirection(in.Direction),
		Face:      face,
		Size:      intToFixed(ef.upem),
		Script:    scriptForRun(runes, runStartRune, runEndRune),
		Language:  language.NewLanguage("en"),
	}

	hbShaper := e.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hbShaper.Shape(input)
	e.shaperPool.Put(hbShaper)

	glyphs := make([]shaper.EngineGlyph, len(output.Glyphs))
	for i, g := range output.Glyphs {
		clusterByte := runeToByte[g.ClusterIndex]
		glyphs[i] = shaper.EngineGlyph{
			GlyphID:       uint16(g.GlyphID),
			Cluster:       uint32(clusterByte - in.RunStart),
			XOffset:       fixedToInt32(g.XOffset),
			YOffset:       fixedToInt32(g.YOffset),
			XAdvance:      fixedToInt32(g.XAdvance),
			YAdvance:      fixedToInt32(g.YAdvance),
			UnsafeToBreak: false,
		}
	}

	return shaper.ShapeOutput{Glyphs: glyphs}, nil
}

// WrongEngineFontError is returned by Shape when given a
// shaper.ShapingFont that did not come from this engine's CreateFont.
type WrongEngineFontError struct{}

func (e *WrongEngineFontError) Error() string {
	return "hbengine: ShapingFont was not created by this engine"
}

// buildOffsetTables returns byteToRune (indexed by byte offset,
// length len(text)+1) and runeToByte (indexed by rune index, length
// len(runes)+1), the same cumulative-length bookkeeping a
// computeByteOffsets helper would use, just inverted one way too.
func buildOffsetTables(text string, runes []rune) (byteToRune, runeToByte []int) {
	byteToRune = make([]int, len(text)+1)
	runeToByte = make([]int, len(runes)+1)

	b := 0
	for i := range runes {
		runeToByte[i] = b
		// Decode from the source bytes rather than re-encoding the rune:
		// an invalid byte becomes U+FFFD in runes but still spans one byte.
		_, n := utf8.DecodeRuneInString(text[b:])
		for k := 0; k < n; k++ {
			byteToRune[b+k] = i
		}
		b += n
	}
	byteToRune[len(text)] = len(runes)
	runeToByte[len(runes)] = len(text)
	return byteToRune, runeToByte
}

func mapDirection(d shaper.Direction) di.Direction {
	if d == shaper.RightToLeft {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// scriptForRun reports one language.Script for the run: it has already
// been segmented by script upstream, so every rune in it whose script is
// neither Common nor Inherited reports the same script; the first such
// rune suffices. A run with no such rune reports Common.
func scriptForRun(runes []rune, start, end int) language.Script {
	for i := start; i < end; i++ {
		s := language.LookupScript(runes[i])
		if s == language.Common || s == language.Inherited {
			continue
		}
		return s
	}
	return language.Common
}

func intToFixed(v int32) fixed.Int26_6 { return fixed.Int26_6(v) << 6 }

func fixedToInt32(v fixed.Int26_6) int32 { return int32(v) >> 6 }
