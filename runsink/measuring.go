// Package runsink provides two shaper.RunSink implementations: a
// MeasuringSink that records per-run metadata without rendering
// anything (for tests and pure layout measurement), and a TraceSink
// that formats a human-readable trace of the laid-out runs to an
// io.Writer (for cmd/shapedemo). Both follow the recording-sink test
// double already used inside the root package's own tests, extended
// to retain what a real consumer needs.
package runsink

import "github.com/textshape/shaper"

// MeasuringRun is one run a MeasuringSink recorded.
type MeasuringRun struct {
	Info shaper.RunInfo
	Font shaper.ResolvedFont
}

// MeasuringSink is a shaper.RunSink that only records line and run
// metadata; it never asks for or retains glyph, position, cluster, or
// UTF-8 data. Use it to measure laid-out text (total width, line
// count, line heights) without a rendering backend.
type MeasuringSink struct {
	runs []MeasuringRun
}

var _ shaper.RunSink = (*MeasuringSink)(nil)

// NewRunBuffer implements shaper.RunSink. The returned buffer's Glyphs
// and Positions are allocated (the interface requires it) but
// discarded; Clusters and UTF8Text are left nil.
func (s *MeasuringSink) NewRunBuffer(info shaper.RunInfo, font shaper.ResolvedFont, numGlyphs, _ int) *shaper.RunBuffer {
	s.runs = append(s.runs, MeasuringRun{Info: info, Font: font})
	return &shaper.RunBuffer{
		Glyphs:    make([]uint16, numGlyphs),
		Positions: make([]shaper.Point, numGlyphs),
	}
}

// Runs returns the runs recorded so far, in emission order.
func (s *MeasuringSink) Runs() []MeasuringRun { return s.runs }

// LineCount returns one past the highest LineIndex seen, or 0 if no
// runs were recorded.
func (s *MeasuringSink) LineCount() int {
	max := 0
	for _, r := range s.runs {
		if n := r.Info.LineIndex + 1; n > max {
			max = n
		}
	}
	return max
}

// LineWidth returns the sum of RunAdvance.X over every run on line.
func (s *MeasuringSink) LineWidth(line int) float32 {
	var width float32
	for _, r := range s.runs {
		if r.Info.LineIndex == line {
			width += r.Info.RunAdvance.X
		}
	}
	return width
}
