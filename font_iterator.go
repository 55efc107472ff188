package shaper

import "unicode/utf8"

// fontRunIterator is the RunIterator walking maximal runs of constant
// font coverage, with a size-1 fallback cache: "first typeface with
// Covers wins, else ask the provider" pared down to a cache of one.
type fontRunIterator struct {
	text string
	pos  int

	primary     Typeface
	primaryFont ShapingFont

	fallback     Typeface
	fallbackFont ShapingFont

	current     Typeface
	currentFont ShapingFont

	provider     FontProvider
	engine       ShapingEngine
	familyHint   string
	languageTags []string
}

func newFontRunIterator(text string, primary Typeface, primaryFont ShapingFont, provider FontProvider, engine ShapingEngine, familyHint string, languageTags []string) *fontRunIterator {
	return &fontRunIterator{
		text:         text,
		primary:      primary,
		primaryFont:  primaryFont,
		provider:     provider,
		engine:       engine,
		familyHint:   familyHint,
		languageTags: languageTags,
	}
}

func (it *fontRunIterator) atEnd() bool          { return it.pos >= len(it.text) }
func (it *fontRunIterator) endOfCurrentRun() int { return it.pos }

func (it *fontRunIterator) currentTypeface() Typeface     { return it.current }
func (it *fontRunIterator) currentShapingFont() ShapingFont { return it.currentFont }

func (it *fontRunIterator) consume() error {
	if it.atEnd() {
		return nil
	}
	r, size := utf8.DecodeRuneInString(it.text[it.pos:])
	if err := it.selectFor(r); err != nil {
		return err
	}
	it.pos += size

	if it.current == nil {
		// FallbackUnavailable: no typeface to extend coverage with.
		return nil
	}

	for it.pos < len(it.text) {
		next, nsize := utf8.DecodeRuneInString(it.text[it.pos:])
		usingFallback := it.current != it.primary
		if usingFallback && it.primary.Covers(next) {
			break
		}
		if !it.current.Covers(next) {
			break
		}
		it.pos += nsize
	}
	return nil
}

// selectFor chooses the typeface for u, in order: primary, then cached
// fallback, then a fresh FontProvider lookup.
func (it *fontRunIterator) selectFor(u rune) error {
	switch {
	case it.primary.Covers(u):
		it.current, it.currentFont = it.primary, it.primaryFont
		return nil
	case it.fallback != nil && it.fallback.Covers(u):
		it.current, it.currentFont = it.fallback, it.fallbackFont
		return nil
	default:
		if it.provider == nil {
			it.current, it.currentFont = nil, nil
			return nil
		}
		tf, ok := it.provider.MatchFamilyStyleCharacter(it.familyHint, it.primary.Style(), it.languageTags, u)
		if !ok {
			it.current, it.currentFont = nil, nil
			return nil
		}
		font, err := it.engine.CreateFont(tf)
		if err != nil {
			it.current, it.currentFont = nil, nil
			return nil
		}
		if it.fallbackFont != nil {
			it.fallbackFont.Close()
		}
		it.fallback, it.fallbackFont = tf, font
		it.current, it.currentFont = tf, font
		return nil
	}
}

// Close releases the cached fallback shaping-engine font, if any. The
// primary font's lifetime belongs to the Shaper that created it, not to
// this iterator.
func (it *fontRunIterator) Close() error {
	if it.fallbackFont != nil {
		return it.fallbackFont.Close()
	}
	return nil
}
