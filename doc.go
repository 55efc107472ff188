// Package shaper shapes paragraphs of arbitrary-script text into
// positioned glyphs ready for rendering, handling bidi reordering,
// script and font segmentation, complex-script shaping, and greedy
// line breaking along the way.
//
// # Overview
//
// shaper is a line-breaking complex-text shaper in the tradition of
// Skia's SkShaper: feed it a paragraph and a wrap width, and it calls
// back into a RunSink with each line's visual runs of glyphs, already
// reordered for bidi and scaled to the requested size.
//
// # Quick Start
//
//	import "github.com/textshape/shaper"
//
//	primary := fontset.NewTypeface(source)
//	s, err := shaper.NewShaper(primary, hbengine.New(), unicodeservice.New(), nil)
//	if err != nil {
//		// handle SetupError
//	}
//
//	pen := s.Shape(sink, 16, "Hello, world!", true, shaper.Point{}, 300)
//
// # Architecture
//
// The package is organized into:
//   - Public API: Shaper, the collaborator interfaces (ShapingEngine,
//     UnicodeServices, FontProvider, Typeface, RunSink) it is built
//     against, and the ShapedRuns/ResolvedFont value types it emits.
//   - Internal: the four run iterators (bidi, script, font, and the
//     priority-queue merge that drives them together), the
//     segment-and-shape and line-break passes, and the reorder-and-emit
//     pass that turns logical glyph order into visual runs.
//   - Collaborators: package hbengine (a ShapingEngine over
//     go-text/typesetting's HarfBuzz port), package unicodeservice (a
//     UnicodeServices over golang.org/x/text's bidi package, the
//     standard library's unicode script tables, and
//     go-text/typesetting's segmenter), package fontset (a Typeface/FontProvider pair over
//     go-text/typesetting's font parser), and package runsink (two
//     RunSink implementations for measuring and tracing shaped output).
//
// # Coordinate System
//
// Uses standard computer graphics coordinates: origin at top-left, X
// increasing right, Y increasing down. Ascent is negative and descent
// positive in this convention, the opposite of font-table sign
// conventions that grow up from the baseline.
package shaper
