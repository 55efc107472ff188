package shaper

import (
	"log/slog"
	"testing"
)

func TestEmitLines_SingleLineSingleRun(t *testing.T) {
	run := ShapedRun{
		UTF8Start: 0,
		UTF8End:   2,
		Font:      ResolvedFont{Typeface: &fakeTypeface{}, Size: 10},
		Level:     0,
		Glyphs: []ShapedGlyph{
			{GlyphID: 1, Advance: Point{X: 5}, Cluster: 0},
			{GlyphID: 2, Advance: Point{X: 5}, Cluster: 1},
		},
	}
	runs := &ShapedRuns{}
	runs.append(run)

	sink := &recordingSink{withClusters: true}
	svc := &fakeUnicodeServices{}
	origin := Point{X: 0, Y: 0}

	pen := emitLines(runs, sink, origin, svc, "ab", logger())

	if len(sink.runs) != 1 {
		t.Fatalf("got %d buffers, want 1", len(sink.runs))
	}
	got := sink.runs[0]
	if got.buf.Glyphs[0] != 1 || got.buf.Glyphs[1] != 2 {
		t.Errorf("glyphs = %v, want [1 2]", got.buf.Glyphs)
	}
	if pen.X != 10 {
		t.Errorf("pen.X = %v, want 10", pen.X)
	}
}

func TestEmitLines_TwoLinesResetXAndAdvanceY(t *testing.T) {
	tf := &fakeTypeface{ascentPerEm: -1, descentPerEm: 0.2, leadingPerEm: 0}
	run := ShapedRun{
		UTF8End: 4,
		Font:    ResolvedFont{Typeface: tf, Size: 10},
		Glyphs: []ShapedGlyph{
			{GlyphID: 1, Advance: Point{X: 5}, Cluster: 0},
			{GlyphID: 2, Advance: Point{X: 5}, Cluster: 1, MustBreakBefore: true},
			{GlyphID: 3, Advance: Point{X: 5}, Cluster: 2},
		},
	}
	runs := &ShapedRuns{}
	runs.append(run)

	sink := &recordingSink{}
	svc := &fakeUnicodeServices{}
	origin := Point{X: 0, Y: 0}

	pen := emitLines(runs, sink, origin, svc, "abcd", logger())

	if len(sink.runs) != 2 {
		t.Fatalf("got %d buffers, want 2 (one per visual run per line)", len(sink.runs))
	}
	if pen.X != 10 {
		t.Errorf("pen.X = %v, want 10 (end of the second line, not reset since it's the last)", pen.X)
	}
	perLine := -tf.ascentPerEm*10 + tf.descentPerEm*10
	wantY := 2 * perLine
	if pen.Y != wantY {
		t.Errorf("pen.Y = %v, want %v", pen.Y, wantY)
	}
}

func TestAppendRun_EmptyRangeIsNoop(t *testing.T) {
	run := &ShapedRun{Glyphs: []ShapedGlyph{{GlyphID: 1, Advance: Point{X: 5}}}}
	sink := &recordingSink{}
	origin := Point{X: 1, Y: 2}

	got := appendRun(run, 0, 0, origin, sink, 0, LineMetrics{}, "a", logger())
	if got != origin {
		t.Errorf("appendRun with empty range returned %v, want unchanged %v", got, origin)
	}
	if len(sink.runs) != 0 {
		t.Errorf("appendRun with empty range requested a buffer, want none")
	}
}

func TestAppendRun_ReversesGlyphsForRTL(t *testing.T) {
	run := &ShapedRun{
		Level: 1,
		Glyphs: []ShapedGlyph{
			{GlyphID: 1, Advance: Point{X: 1}},
			{GlyphID: 2, Advance: Point{X: 1}},
			{GlyphID: 3, Advance: Point{X: 1}},
		},
	}
	sink := &recordingSink{}

	appendRun(run, 0, 3, Point{}, sink, 0, LineMetrics{}, "", logger())

	got := sink.runs[0].buf.Glyphs
	want := []uint16{3, 2, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("glyph %d = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestAppendRun_NilBufferFromSinkIsHandled(t *testing.T) {
	run := &ShapedRun{Glyphs: []ShapedGlyph{{GlyphID: 1, Advance: Point{X: 5}}}}
	origin := Point{X: 0, Y: 0}

	got := appendRun(run, 0, 1, origin, &nilSink{}, 0, LineMetrics{}, "a", logger())
	if got != origin {
		t.Errorf("appendRun with a nil buffer returned %v, want unchanged %v", got, origin)
	}
}

type nilSink struct{}

func (nilSink) NewRunBuffer(info RunInfo, font ResolvedFont, numGlyphs, utf8ByteCount int) *RunBuffer {
	return nil
}

func logger() *slog.Logger { return newNopLogger() }
