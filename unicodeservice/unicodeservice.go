// Package unicodeservice implements shaper.UnicodeServices on top of
// golang.org/x/text/unicode/bidi for bidi analysis, the standard
// library's unicode script range tables for script classification, and
// github.com/go-text/typesetting/segmenter for UAX#14 line-break
// opportunities. Visual reordering (UAX#9 rule L2) has no off-the-shelf
// equivalent in the module's dependency graph and is implemented here
// directly.
package unicodeservice

import "github.com/textshape/shaper"

// Services is the default shaper.UnicodeServices implementation. It is
// stateless and safe for concurrent use; construct one and share it
// across Shaper instances.
type Services struct{}

// New returns a Services value ready to use.
func New() *Services { return &Services{} }

var _ shaper.UnicodeServices = (*Services)(nil)
