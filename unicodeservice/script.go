package unicodeservice

import (
	"sort"
	"unicode"

	"github.com/textshape/shaper"
)

// ScriptOf implements shaper.UnicodeServices using the standard
// library's unicode.Scripts range tables, translated to the four-letter
// ISO 15924 codes the root package's Script type uses (the same codes
// HarfBuzz and ICU report) through the iso15924 lookup table below,
// rather than maintaining a private uint32 enum.
func (s *Services) ScriptOf(r rune) shaper.Script {
	if table, ok := unicode.Scripts["Common"]; ok && unicode.Is(table, r) {
		return shaper.ScriptCommon
	}
	if table, ok := unicode.Scripts["Inherited"]; ok && unicode.Is(table, r) {
		return shaper.ScriptInherited
	}
	for _, name := range scriptNameOrder {
		if unicode.Is(unicode.Scripts[name], r) {
			if code, ok := iso15924[name]; ok {
				return shaper.Script(code)
			}
			return shaper.ScriptUnknown
		}
	}
	return shaper.ScriptUnknown
}

// scriptNameOrder fixes iteration order over unicode.Scripts (a map)
// so ScriptOf is deterministic; it lists every name this package maps
// to an ISO 15924 code.
var scriptNameOrder = func() []string {
	names := make([]string, 0, len(iso15924))
	for name := range iso15924 {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}()

// iso15924 maps unicode.Scripts names to the four-letter codes the
// root package's Script type carries. Scripts absent from this table
// resolve to shaper.ScriptUnknown.
var iso15924 = map[string]string{
	"Latin":                "Latn",
	"Cyrillic":             "Cyrl",
	"Greek":                "Grek",
	"Arabic":               "Arab",
	"Hebrew":               "Hebr",
	"Han":                  "Hani",
	"Hiragana":             "Hira",
	"Katakana":             "Kana",
	"Hangul":               "Hang",
	"Devanagari":           "Deva",
	"Thai":                 "Thai",
	"Armenian":             "Armn",
	"Georgian":             "Geor",
	"Bengali":              "Beng",
	"Tamil":                "Taml",
	"Telugu":               "Telu",
	"Kannada":              "Knda",
	"Malayalam":            "Mlym",
	"Gujarati":             "Gujr",
	"Oriya":                "Orya",
	"Gurmukhi":             "Guru",
	"Sinhala":              "Sinh",
	"Khmer":                "Khmr",
	"Lao":                  "Laoo",
	"Myanmar":              "Mymr",
	"Tibetan":              "Tibt",
	"Ethiopic":             "Ethi",
	"Mongolian":            "Mong",
	"Syriac":               "Syrc",
	"Thaana":               "Thaa",
	"Nko":                  "Nkoo",
	"Vai":                  "Vaii",
	"Cherokee":             "Cher",
	"Canadian_Aboriginal":  "Cans",
	"Ogham":                "Ogam",
	"Runic":                "Runr",
	"Osmanya":              "Osma",
	"Coptic":               "Copt",
	"Glagolitic":           "Glag",
	"Gothic":               "Goth",
	"Deseret":              "Dsrt",
	"Tifinagh":             "Tfng",
	"Bopomofo":             "Bopo",
	"Braille":              "Brai",
	"Yi":                   "Yiii",
	"Limbu":                "Limb",
	"Tagalog":              "Tglg",
	"Hanunoo":              "Hano",
	"Buhid":                "Buhd",
	"Tagbanwa":             "Tagb",
	"New_Tai_Lue":          "Talu",
	"Buginese":             "Bugi",
	"Balinese":             "Bali",
	"Sundanese":            "Sund",
	"Lepcha":               "Lepc",
	"Ol_Chiki":             "Olck",
	"Javanese":             "Java",
	"Cham":                 "Cham",
	"Tai_Viet":             "Tavt",
	"Meetei_Mayek":         "Mtei",
	"Batak":                "Batk",
	"Rejang":               "Rjng",
	"Saurashtra":           "Saur",
	"Kayah_Li":             "Kali",
	"Lisu":                 "Lisu",
}
