package shaper

import "log/slog"

// emitLines walks glyphs in logical order, detects line boundaries via
// MustBreakBefore, and for each completed line resolves visual run
// order through UnicodeServices before emitting each visual run's
// glyphs to sink.
func emitLines(runs *ShapedRuns, sink RunSink, origin Point, services UnicodeServices, text string, logger *slog.Logger) Point {
	cursor := newCursor(runs)
	previousBreak := cursor

	var metrics LineMetrics
	previousRunIndex := -1
	currentPoint := origin
	lineIndex := 0

	for !cursor.AtEnd() {
		runIndex := cursor.RunIndex
		glyphIndex := cursor.GlyphIndex

		if runIndex != previousRunIndex {
			metrics.accumulate(runs.Run(runIndex).Font.Typeface.Metrics(runs.Run(runIndex).Font.Size))
			previousRunIndex = runIndex
		}

		next := cursor.Next()
		if next != nil && !next.MustBreakBefore {
			continue
		}

		// End of line: it spans runs [previousBreak.RunIndex .. runIndex].
		currentPoint.Y -= metrics.Ascent

		levels := make([]Level, runIndex-previousBreak.RunIndex+1)
		for i := range levels {
			levels[i] = runs.Run(previousBreak.RunIndex + i).Level
		}
		logicalFromVisual := services.ReorderVisual(levels)

		for _, li := range logicalFromVisual {
			logicalRun := previousBreak.RunIndex + li
			run := runs.Run(logicalRun)

			start := 0
			if logicalRun == previousBreak.RunIndex {
				start = previousBreak.GlyphIndex
			}
			end := run.NumGlyphs()
			if logicalRun == runIndex {
				end = glyphIndex + 1
			}

			currentPoint = appendRun(run, start, end, currentPoint, sink, lineIndex, metrics, text, logger)
		}

		currentPoint.Y += metrics.Descent + metrics.Leading
		if !cursor.AtEnd() {
			currentPoint.X = origin.X
		}
		metrics.reset()
		previousRunIndex = -1
		lineIndex++
		previousBreak = cursor
	}

	return currentPoint
}

// appendRun appends one visual run's glyphs starting at point:
// requests a run buffer from the sink and fills it glyph by glyph,
// visiting the source glyphs in visual order (reversed for RTL runs
// even though storage is always logical), with a y-flip on glyph
// offsets since ascent is negative in this module's coordinates.
func appendRun(run *ShapedRun, start, end int, point Point, sink RunSink, lineIndex int, metrics LineMetrics, text string, logger *slog.Logger) Point {
	n := end - start
	if n <= 0 {
		return point
	}

	var advance Point
	for i := start; i < end; i++ {
		advance = advance.Add(run.Glyphs[i].Advance)
	}

	info := RunInfo{
		LineIndex:  lineIndex,
		RunAdvance: advance,
		Ascent:     metrics.Ascent,
		Descent:    metrics.Descent,
		Leading:    metrics.Leading,
	}

	buf := sink.NewRunBuffer(info, run.Font, n, run.UTF8End-run.UTF8Start)
	if buf == nil {
		logger.Debug("emit: sink returned nil run buffer", "start", run.UTF8Start, "end", run.UTF8End)
		return point
	}
	if buf.UTF8Text != nil {
		copy(buf.UTF8Text, text[run.UTF8Start:run.UTF8End])
	}

	ltr := isLTR(run.Level)
	for i := 0; i < n; i++ {
		var g *ShapedGlyph
		if ltr {
			g = &run.Glyphs[start+i]
		} else {
			g = &run.Glyphs[end-1-i]
		}

		if i < len(buf.Glyphs) {
			buf.Glyphs[i] = g.GlyphID
		}
		if i < len(buf.Positions) {
			buf.Positions[i] = Point{X: point.X + g.Offset.X, Y: point.Y - g.Offset.Y}
		}
		if buf.Clusters != nil && i < len(buf.Clusters) {
			buf.Clusters[i] = g.Cluster
		}
		point = point.Add(g.Advance)
	}
	return point
}
