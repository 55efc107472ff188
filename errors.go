package shaper

import "errors"

// Sentinel errors returned by package-level setup and shaping calls.
var (
	// ErrNoUnicodeServices is returned by NewShaper when no UnicodeServices
	// implementation is supplied. Construction cannot proceed without one.
	ErrNoUnicodeServices = errors.New("shaper: unicode services not configured")

	// ErrNoShapingEngine is returned by NewShaper when no ShapingEngine
	// implementation is supplied.
	ErrNoShapingEngine = errors.New("shaper: shaping engine not configured")

	// ErrNoPrimaryTypeface is returned by NewShaper when the primary
	// typeface is nil. No default typeface is substituted.
	ErrNoPrimaryTypeface = errors.New("shaper: primary typeface is nil")

	// ErrBreakIteratorSetup is returned when the UnicodeServices
	// implementation fails to open a line-break iterator.
	ErrBreakIteratorSetup = errors.New("shaper: failed to open break iterator")

	// ErrTextTooLong describes input that exceeds the byte-offset range
	// the shaping engine and bidi analysis can address. Shape has no
	// error result and does not return it: for such input Shape returns
	// the origin unchanged.
	ErrTextTooLong = errors.New("shaper: input exceeds maximum addressable length")

	// ErrUTF16Conversion is returned when the input cannot be converted
	// to UTF-16 for bidi paragraph analysis.
	ErrUTF16Conversion = errors.New("shaper: utf-16 conversion failed")

	// ErrNilSink describes a nil caller-supplied RunSink. Shape does not
	// return it: given a nil sink, Shape returns the origin unchanged.
	ErrNilSink = errors.New("shaper: run sink is nil")
)

// SegmenterConstructionError reports that one of the three RunIterators
// (bidi, script, or font) could not be constructed for a given input.
// Shape treats this the same as InputError: it returns the origin
// unchanged without emitting any runs.
type SegmenterConstructionError struct {
	Segmenter string // "bidi", "script", or "font"
	Err       error
}

func (e *SegmenterConstructionError) Error() string {
	return "shaper: " + e.Segmenter + " run iterator construction failed: " + e.Err.Error()
}

func (e *SegmenterConstructionError) Unwrap() error { return e.Err }
