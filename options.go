package shaper

import "log/slog"

// shaperConfig holds the fields ShaperOption values mutate. The zero
// value is the Shaper's baseline behavior; every option is a deviation
// a caller opts into.
type shaperConfig struct {
	familyHint      string
	languageTags    []string
	fallbackCacheOK bool // always true in this module (cache of size 1); kept for option symmetry
	logger          *slog.Logger
}

func defaultShaperConfig() shaperConfig {
	return shaperConfig{
		fallbackCacheOK: true,
		logger:          Logger(),
	}
}

// ShaperOption configures a Shaper at construction time, following the
// functional-options pattern common to this codebase's other
// configurable constructors.
type ShaperOption func(*shaperConfig)

// WithFamilyHint sets the family name passed to FontProvider lookups
// when the primary typeface doesn't cover a code point.
func WithFamilyHint(family string) ShaperOption {
	return func(c *shaperConfig) { c.familyHint = family }
}

// WithLanguageTags sets the language tags passed to FontProvider
// lookups. Language tagging for the shaping engine itself remains
// otherwise unspecified; see hbengine for its own defaulting.
func WithLanguageTags(tags ...string) ShaperOption {
	return func(c *shaperConfig) { c.languageTags = append([]string(nil), tags...) }
}

// WithLogger overrides the package-level logger for one Shaper
// instance, without affecting SetLogger's global default.
func WithLogger(l *slog.Logger) ShaperOption {
	return func(c *shaperConfig) {
		if l == nil {
			l = newNopLogger()
		}
		c.logger = l
	}
}
