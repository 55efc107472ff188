// Package fontset provides the default shaper.Typeface and
// shaper.FontProvider implementations, parsing real font files with
// github.com/go-text/typesetting/font and exposing them through the
// narrow interfaces package shaper and package hbengine expect.
package fontset

import (
	"bytes"
	"errors"

	"github.com/go-text/typesetting/font"
)

// ErrEmptyFontData is returned by NewSource when given no data.
var ErrEmptyFontData = errors.New("fontset: font data is empty")

// Source holds one parsed font file. A Source is heavyweight and meant
// to be shared: every Typeface built from it (at different styles or
// Unicode-range restrictions) reads the same parsed *font.Font.
//
// Source must not be copied after construction (enforced by
// copyCheck, the Ebitengine pattern).
type Source struct {
	addr *Source

	data []byte
	font *font.Font
	name string
}

// NewSource parses data (TTF or OTF) into a Source. data is copied
// internally and can be reused after this call returns.
func NewSource(data []byte) (*Source, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	face, err := font.ParseTTF(bytes.NewReader(dataCopy))
	if err != nil {
		return nil, err
	}

	s := &Source{
		data: dataCopy,
		font: face.Font,
		name: face.Font.Describe().Family,
	}
	s.addr = s
	return s, nil
}

// copyCheck panics if Source was copied by value.
func (s *Source) copyCheck() {
	if s.addr != s {
		panic("fontset: Source must not be copied by value")
	}
}

// Name returns the font family name read from the font's name table.
func (s *Source) Name() string {
	s.copyCheck()
	return s.name
}

// FontBytes implements hbengine.FontBytesProvider.
func (s *Source) FontBytes() []byte {
	s.copyCheck()
	return s.data
}

// Close releases the Source's font data. Typefaces built from it must
// not be used afterward.
func (s *Source) Close() error {
	s.copyCheck()
	s.data = nil
	s.font = nil
	return nil
}
