package shaper

import "testing"

func newTestShaper(t *testing.T, tf *fakeTypeface, engine *fakeShapingEngine, svc UnicodeServices) *Shaper {
	t.Helper()
	sh, err := NewShaper(tf, engine, svc, nil)
	if err != nil {
		t.Fatalf("NewShaper: %v", err)
	}
	if !sh.Good() {
		t.Fatalf("NewShaper returned a Shaper that is not Good()")
	}
	return sh
}

func TestNewShaper_RejectsMissingCollaborators(t *testing.T) {
	tf := &fakeTypeface{coversAll: true}
	engine := &fakeShapingEngine{}
	svc := &fakeUnicodeServices{}

	cases := []struct {
		name    string
		primary Typeface
		engine  ShapingEngine
		svc     UnicodeServices
		want    error
	}{
		{"nil primary", nil, engine, svc, ErrNoPrimaryTypeface},
		{"nil engine", tf, nil, svc, ErrNoShapingEngine},
		{"nil services", tf, engine, nil, ErrNoUnicodeServices},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := NewShaper(c.primary, c.engine, c.svc, nil)
			if err != c.want {
				t.Errorf("NewShaper() error = %v, want %v", err, c.want)
			}
		})
	}
}

func TestShape_ASCIINoWrap(t *testing.T) {
	tf := &fakeTypeface{coversAll: true}
	engine := &fakeShapingEngine{upem: 1000, advancePerGlyph: 1000}
	svc := &fakeUnicodeServices{}
	sh := newTestShaper(t, tf, engine, svc)

	sink := &recordingSink{withClusters: true}
	origin := Point{X: 0, Y: 100}
	size := float32(10)

	pen := sh.Shape(sink, size, "Hello", true, origin, 1e9)

	if len(sink.runs) != 1 {
		t.Fatalf("got %d run buffers, want 1", len(sink.runs))
	}
	got := sink.runs[0]
	if len(got.buf.Glyphs) != 5 {
		t.Fatalf("got %d glyphs, want 5", len(got.buf.Glyphs))
	}
	for i, r := range "Hello" {
		if got.buf.Glyphs[i] != uint16(r) {
			t.Errorf("glyph %d = %d, want %d", i, got.buf.Glyphs[i], uint16(r))
		}
		if got.buf.Clusters[i] != uint32(i) {
			t.Errorf("cluster %d = %d, want %d", i, got.buf.Clusters[i], i)
		}
	}

	wantX := origin.X + 5*size
	if pen.X != wantX {
		t.Errorf("pen.X = %v, want %v", pen.X, wantX)
	}
	if pen.Y != origin.Y {
		t.Errorf("pen.Y = %v, want %v", pen.Y, origin.Y)
	}
}

func TestShape_EmergencyOverflowSingleGlyph(t *testing.T) {
	// A glyph wider than the available width must still be emitted alone
	// on its own line rather than dropped or looped on forever.
	tf := &fakeTypeface{coversAll: true}
	engine := &fakeShapingEngine{upem: 1000, advancePerGlyph: 1000}
	svc := &fakeUnicodeServices{}
	sh := newTestShaper(t, tf, engine, svc)

	sink := &recordingSink{}
	pen := sh.Shape(sink, 10, "W", true, Point{}, 0)

	if len(sink.runs) != 1 {
		t.Fatalf("got %d run buffers, want 1", len(sink.runs))
	}
	if n := len(sink.runs[0].buf.Glyphs); n != 1 {
		t.Fatalf("got %d glyphs, want 1", n)
	}
	if pen.X != 10 {
		t.Errorf("pen.X = %v, want 10", pen.X)
	}
}

func TestShape_EmptyTextReturnsOrigin(t *testing.T) {
	tf := &fakeTypeface{coversAll: true}
	engine := &fakeShapingEngine{}
	svc := &fakeUnicodeServices{}
	sh := newTestShaper(t, tf, engine, svc)

	origin := Point{X: 5, Y: 5}
	sink := &recordingSink{}
	pen := sh.Shape(sink, 10, "", true, origin, 100)

	if pen != origin {
		t.Errorf("pen = %v, want unchanged origin %v", pen, origin)
	}
	if len(sink.runs) != 0 {
		t.Errorf("got %d run buffers for empty text, want 0", len(sink.runs))
	}
}

func TestShape_NilSinkIsNoop(t *testing.T) {
	tf := &fakeTypeface{coversAll: true}
	engine := &fakeShapingEngine{}
	svc := &fakeUnicodeServices{}
	sh := newTestShaper(t, tf, engine, svc)

	origin := Point{X: 1, Y: 2}
	pen := sh.Shape(nil, 10, "hi", true, origin, 100)
	if pen != origin {
		t.Errorf("pen = %v, want unchanged origin %v", pen, origin)
	}
}

func TestShape_UncoveredRuneWithNoFallbackSkipsSegment(t *testing.T) {
	// primary covers only ASCII; no FontProvider is configured, so the
	// uncovered code point's segment must be skipped rather than panic.
	tf := &fakeTypeface{covered: map[rune]bool{'a': true, 'b': true}}
	engine := &fakeShapingEngine{upem: 1000, advancePerGlyph: 1000}
	svc := &fakeUnicodeServices{}
	sh := newTestShaper(t, tf, engine, svc)

	sink := &recordingSink{}
	pen := sh.Shape(sink, 10, "a中b", true, Point{}, 1e9)

	var total int
	for _, r := range sink.runs {
		total += len(r.buf.Glyphs)
	}
	if total != 2 {
		t.Fatalf("got %d glyphs across all runs, want 2 (uncovered segment skipped)", total)
	}
	if pen.X != 20 {
		t.Errorf("pen.X = %v, want 20", pen.X)
	}
}
