package runsink

import (
	"fmt"
	"io"

	"github.com/textshape/shaper"
)

// traceRun is one run a TraceSink recorded, retained until Flush.
type traceRun struct {
	info shaper.RunInfo
	font shaper.ResolvedFont
	buf  *shaper.RunBuffer
}

// TraceSink is a shaper.RunSink that requests UTF-8 text and cluster
// data for every run, then prints a human-readable trace of the
// laid-out lines and runs on Flush. It never rasterizes a glyph; it is
// for inspecting a shaping result, e.g. from cmd/shapedemo.
type TraceSink struct {
	runs []traceRun
}

var _ shaper.RunSink = (*TraceSink)(nil)

// NewRunBuffer implements shaper.RunSink. Glyphs, Positions, Clusters,
// and UTF8Text are all allocated so Flush can report cluster-to-source
// mapping and the run's original text alongside its glyphs.
func (s *TraceSink) NewRunBuffer(info shaper.RunInfo, font shaper.ResolvedFont, numGlyphs, utf8ByteCount int) *shaper.RunBuffer {
	buf := &shaper.RunBuffer{
		Glyphs:    make([]uint16, numGlyphs),
		Positions: make([]shaper.Point, numGlyphs),
		Clusters:  make([]uint32, numGlyphs),
		UTF8Text:  make([]byte, utf8ByteCount),
	}
	s.runs = append(s.runs, traceRun{info: info, font: font, buf: buf})
	return buf
}

// Flush writes the recorded trace to w, one line per run, in the order
// the reorder-and-emit pass emitted them (visual order within each
// line). Call it only after the Shaper.Shape call that populated this
// sink has returned — NewRunBuffer hands back buffers that callers
// fill in place, with no separate "done" notification.
func (s *TraceSink) Flush(w io.Writer) error {
	currentLine := -1
	for _, r := range s.runs {
		if r.info.LineIndex != currentLine {
			currentLine = r.info.LineIndex
			if _, err := fmt.Fprintf(w, "line %d:\n", currentLine); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "  run %q: %d glyphs, advance=(%.2f,%.2f) ascent=%.2f descent=%.2f leading=%.2f\n",
			r.buf.UTF8Text, len(r.buf.Glyphs), r.info.RunAdvance.X, r.info.RunAdvance.Y,
			r.info.Ascent, r.info.Descent, r.info.Leading); err != nil {
			return err
		}
		for i, gid := range r.buf.Glyphs {
			pos := r.buf.Positions[i]
			cluster := uint32(0)
			if i < len(r.buf.Clusters) {
				cluster = r.buf.Clusters[i]
			}
			if _, err := fmt.Fprintf(w, "    glyph %d: gid=%d cluster=%d pos=(%.2f,%.2f)\n",
				i, gid, cluster, pos.X, pos.Y); err != nil {
				return err
			}
		}
	}
	return nil
}
