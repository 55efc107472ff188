package shaper

// LineMetrics holds the component-wise extremum of ascent, descent, and
// leading across all runs contributing glyphs to one line: the minimum
// ascent (ascent values are negative) and the maximum descent and
// leading.
type LineMetrics struct {
	Ascent  float32
	Descent float32
	Leading float32
}

// accumulate folds m into the running line metrics, the first step of
// the reorder-and-emit pass.
func (lm *LineMetrics) accumulate(m FontMetrics) {
	if m.Ascent < lm.Ascent {
		lm.Ascent = m.Ascent
	}
	if m.Descent > lm.Descent {
		lm.Descent = m.Descent
	}
	if m.Leading > lm.Leading {
		lm.Leading = m.Leading
	}
}

// reset zeroes the accumulator at the start of a new line.
func (lm *LineMetrics) reset() { *lm = LineMetrics{} }

// FontMetrics is the subset of a typeface's metrics the reorder-and-emit
// pass needs to compute line metrics. Ascent is negative in this
// module's coordinate system (the pen moves up for ascent).
type FontMetrics struct {
	Ascent  float32
	Descent float32
	Leading float32
}
