package shaper

import "unicode/utf8"

// scriptRunIterator is the RunIterator walking maximal runs of constant
// Unicode script, with Common/Inherited code points merged into their
// neighbors.
type scriptRunIterator struct {
	text string
	svc  UnicodeServices

	pos    int
	script Script
}

func newScriptRunIterator(text string, svc UnicodeServices) *scriptRunIterator {
	return &scriptRunIterator{text: text, svc: svc}
}

func (it *scriptRunIterator) atEnd() bool          { return it.pos >= len(it.text) }
func (it *scriptRunIterator) endOfCurrentRun() int { return it.pos }
func (it *scriptRunIterator) currentScript() Script { return it.script }

func (it *scriptRunIterator) consume() error {
	if it.atEnd() {
		return nil
	}
	r, size := utf8.DecodeRuneInString(it.text[it.pos:])
	it.script = it.svc.ScriptOf(r)
	it.pos += size

	for it.pos < len(it.text) {
		r, size = utf8.DecodeRuneInString(it.text[it.pos:])
		s := it.svc.ScriptOf(r)
		switch {
		case s == it.script:
			// extend with no change.
		case it.script == ScriptInherited || it.script == ScriptCommon:
			it.script = s
		case s == ScriptInherited || s == ScriptCommon:
			// keep current, extend.
		default:
			return nil // rewind: stop before this code point.
		}
		it.pos += size
	}

	if it.script == ScriptInherited {
		it.script = ScriptCommon
	}
	return nil
}
