package shaper

import "log/slog"

// maxAddressableLength is the InputError threshold: the largest UTF-8
// byte length this module will attempt to shape, matching the 32-bit
// offset range the bidi and shaping engines are specified against.
const maxAddressableLength = 1<<31 - 1

// Shaper is the shaping driver. It owns a shaping-engine font for its
// primary typeface and is reused across Shape calls; it is not safe
// for concurrent use without external synchronisation.
type Shaper struct {
	primary     Typeface
	primaryFont ShapingFont

	engine   ShapingEngine
	services UnicodeServices
	provider FontProvider

	config shaperConfig
	ok     bool
}

// NewShaper constructs a Shaper for primary, backed by engine and
// services for shaping and Unicode analysis, with provider supplying
// fallback typefaces for code points primary doesn't cover. provider
// may be nil if the caller never expects fallback to be needed;
// FontRunIterator then treats every uncovered code point as
// FallbackUnavailable.
//
// NewShaper returns a SetupError (as a plain error) if construction
// fails: this is a fatal programming error, not something Shape
// recovers from.
func NewShaper(primary Typeface, engine ShapingEngine, services UnicodeServices, provider FontProvider, opts ...ShaperOption) (*Shaper, error) {
	if primary == nil {
		return nil, ErrNoPrimaryTypeface
	}
	if engine == nil {
		return nil, ErrNoShapingEngine
	}
	if services == nil {
		return nil, ErrNoUnicodeServices
	}

	cfg := defaultShaperConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	primaryFont, err := engine.CreateFont(primary)
	if err != nil {
		return nil, &SegmenterConstructionError{Segmenter: "font", Err: err}
	}

	// Exercise the break-iterator machinery once at construction time so
	// a broken UnicodeServices implementation fails fast as a SetupError
	// rather than silently degrading every later Shape call.
	if _, err := services.NewLineBreakIterator(""); err != nil {
		primaryFont.Close()
		return nil, ErrBreakIteratorSetup
	}

	return &Shaper{
		primary:     primary,
		primaryFont: primaryFont,
		engine:      engine,
		services:    services,
		provider:    provider,
		config:      cfg,
		ok:          true,
	}, nil
}

// Good reports whether the Shaper's primary shaping font and typeface
// are present and ready to shape.
func (s *Shaper) Good() bool {
	return s != nil && s.ok && s.primary != nil && s.primaryFont != nil
}

// Close releases the primary shaping-engine font.
func (s *Shaper) Close() error {
	if s.primaryFont == nil {
		return nil
	}
	return s.primaryFont.Close()
}

func (s *Shaper) log() *slog.Logger {
	if s.config.logger != nil {
		return s.config.logger
	}
	return Logger()
}

// Shape lays out text starting at origin, wrapping at width, and
// emits the resulting lines to sink. It returns the final pen position;
// on any setup failure (input too long, a segmenter failing to
// construct) it returns origin unchanged without calling sink at all.
func (s *Shaper) Shape(sink RunSink, size float32, text string, leftToRight bool, origin Point, width float32) Point {
	if !s.Good() || sink == nil {
		return origin
	}
	if len(text) > maxAddressableLength {
		return origin
	}

	base := LeftToRight
	if !leftToRight {
		base = RightToLeft
	}

	breakIter, err := s.services.NewLineBreakIterator(text)
	if err != nil {
		s.log().Debug("shape: break iterator open failed", "error", err)
		return origin
	}

	runs, err := s.segmentAndShape(text, base, size, breakIter)
	if err != nil {
		s.log().Debug("shape: segment-and-shape failed", "error", err)
		return origin
	}
	if runs.Len() == 0 {
		return origin
	}

	assignLineBreaks(runs, width)
	return emitLines(runs, sink, origin, s.services, text, s.log())
}

// segmentAndShape drives the RunSegmenterQueue over bidi, script, and
// font runs, shapes each resulting aggregate segment, and records the
// result as a ShapedRun with absolute clusters
// and scaled, line-break-annotated glyphs.
func (s *Shaper) segmentAndShape(text string, base Direction, size float32, breakIter BreakIterator) (*ShapedRuns, error) {
	bidiIt, err := newBidiRunIterator(text, base, s.services)
	if err != nil {
		return nil, &SegmenterConstructionError{Segmenter: "bidi", Err: err}
	}
	scriptIt := newScriptRunIterator(text, s.services)
	fontIt := newFontRunIterator(text, s.primary, s.primaryFont, s.provider, s.engine, s.config.familyHint, s.config.languageTags)
	defer fontIt.Close()

	q := newRunSegmenterQueue(bidiIt, scriptIt, fontIt)

	runs := &ShapedRuns{}
	segStart := 0

	for {
		ok, err := q.advanceRuns()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		segEnd := q.endOfCurrentRun()
		if segEnd <= segStart {
			continue
		}

		level := bidiIt.currentLevel()
		script := scriptIt.currentScript()
		typeface := fontIt.currentTypeface()
		font := fontIt.currentShapingFont()

		if font == nil {
			// PerSegmentSkip: FontRunIterator couldn't resolve a
			// typeface for this segment.
			s.log().Debug("shape: skipping segment with no current font", "start", segStart, "end", segEnd)
			segStart = segEnd
			continue
		}

		direction := LeftToRight
		if level.IsRTL() {
			direction = RightToLeft
		}

		out, err := s.engine.Shape(font, ShapeInput{
			Text:      text,
			RunStart:  segStart,
			RunEnd:    segEnd,
			Script:    script,
			Direction: direction,
		})
		if err != nil || len(out.Glyphs) == 0 {
			// PerSegmentSkip: shaping failed or produced no glyphs.
			if err != nil {
				s.log().Debug("shape: engine shape failed", "error", err, "start", segStart, "end", segEnd)
			}
			segStart = segEnd
			continue
		}

		if direction == RightToLeft {
			reverseEngineGlyphs(out.Glyphs)
		}

		sx, sy := scaleFactors(size, font)

		run := ShapedRun{
			UTF8Start: segStart,
			UTF8End:   segEnd,
			Font:      ResolvedFont{Typeface: typeface, Size: size, ScaleX: 1},
			Level:     level,
			Glyphs:    make([]ShapedGlyph, len(out.Glyphs)),
		}

		previousCluster := -1
		for i, g := range out.Glyphs {
			absCluster := segStart + int(g.Cluster)

			for breakIter.Current() != BreakDone && breakIter.Current() < absCluster {
				breakIter.Next()
			}
			mayBreak := absCluster != previousCluster && breakIter.Current() == absCluster

			glyph := ShapedGlyph{
				GlyphID:        g.GlyphID,
				Cluster:        uint32(absCluster),
				Offset:         Point{X: float32(g.XOffset) * sx, Y: float32(g.YOffset) * sy},
				Advance:        Point{X: float32(g.XAdvance) * sx, Y: float32(g.YAdvance) * sy},
				MayBreakBefore: mayBreak,
				HasVisual:      true,
			}
			run.Glyphs[i] = glyph
			run.TotalAdvance = run.TotalAdvance.Add(glyph.Advance)
			previousCluster = absCluster
		}

		runs.append(run)
		segStart = segEnd
	}

	return runs, nil
}

// scaleFactors computes the per-axis scale from font design units to
// the requested size: sx = fontSize/scale_x*srcFont.scale_x,
// sy = fontSize/scale_y. This module doesn't yet expose a per-call
// synthetic scale_x knob, so srcFont.scale_x is always 1.
func scaleFactors(size float32, font ShapingFont) (sx, sy float32) {
	ux, uy := font.Scale()
	if ux == 0 {
		ux = 1
	}
	if uy == 0 {
		uy = 1
	}
	return size / float32(ux), size / float32(uy)
}

func reverseEngineGlyphs(g []EngineGlyph) {
	for i, j := 0, len(g)-1; i < j; i, j = i+1, j-1 {
		g[i], g[j] = g[j], g[i]
	}
}
