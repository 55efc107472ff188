package unicodeservice

import "github.com/textshape/shaper"

// ReorderVisual implements UAX#9 rule L2: repeatedly find the highest
// level present, reverse every maximal run at or above that level, and
// step down one level at a time until only level 0 (or the lowest odd
// level, for an RTL base) remains. No library in this module's
// dependency graph exposes this directly, so it is implemented by hand
// against the algorithm text rather than against any one reference
// implementation.
func (s *Services) ReorderVisual(levels []shaper.Level) []int {
	n := len(levels)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	if n == 0 {
		return order
	}

	maxLevel := levels[0]
	minOddLevel := shaper.Level(255)
	for _, l := range levels {
		if l > maxLevel {
			maxLevel = l
		}
		if l.IsRTL() && l < minOddLevel {
			minOddLevel = l
		}
	}
	if minOddLevel == 255 {
		return order
	}

	for level := maxLevel; level >= minOddLevel; level-- {
		start := -1
		for i := 0; i <= n; i++ {
			atOrAbove := i < n && levels[i] >= level
			if atOrAbove && start < 0 {
				start = i
			} else if !atOrAbove && start >= 0 {
				reverse(order[start:i])
				start = -1
			}
		}
	}
	return order
}

func reverse(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
