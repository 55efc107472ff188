package fontset

import "github.com/textshape/shaper"

// Provider is the default shaper.FontProvider: an ordered fallback
// chain of typefaces, returning the first that covers the requested
// rune.
type Provider struct {
	typefaces []*Typeface
}

// NewProvider builds a Provider that tries typefaces in order.
func NewProvider(typefaces ...*Typeface) *Provider {
	return &Provider{typefaces: typefaces}
}

var _ shaper.FontProvider = (*Provider)(nil)

// MatchFamilyStyleCharacter implements shaper.FontProvider. familyHint,
// style, and languageTags are accepted for interface conformance; this
// provider's fallback order is coverage-only and does not attempt
// family-name, style, or language matching. It reports false rather
// than falling back to the first typeface when none cover r, since the
// caller (font_iterator.go's selectFor) treats a false result as "no
// font can render this rune" rather than "use anything".
func (p *Provider) MatchFamilyStyleCharacter(familyHint string, style shaper.FontStyle, languageTags []string, r rune) (shaper.Typeface, bool) {
	for _, tf := range p.typefaces {
		if tf.Covers(r) {
			return tf, true
		}
	}
	return nil, false
}
