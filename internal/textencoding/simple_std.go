/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package textencoding

import "sync"

const baseStd = "StandardEncoding"

func init() {
	RegisterSimpleEncoding(baseStd, NewStandardEncoder)
}

// NewStandardEncoder returns a SimpleEncoder that implements StandardEncoding.
func NewStandardEncoder() SimpleEncoder {
	stdOnce.Do(initStd)
	return std.NewEncoder()
}

var (
	stdOnce sync.Once
	std     *simpleMapping
)

// stdToGlyph is Adobe StandardEncoding, PDF 32000-1:2008 Table D.2.
var stdToGlyph = map[byte]GlyphName{
	0x20: "space",
	0x21: "exclam",
	0x22: "quotedbl",
	0x23: "numbersign",
	0x24: "dollar",
	0x25: "percent",
	0x26: "ampersand",
	0x27: "quoteright",
	0x28: "parenleft",
	0x29: "parenright",
	0x2A: "asterisk",
	0x2B: "plus",
	0x2C: "comma",
	0x2D: "hyphen",
	0x2E: "period",
	0x2F: "slash",
	0x30: "zero",
	0x31: "one",
	0x32: "two",
	0x33: "three",
	0x34: "four",
	0x35: "five",
	0x36: "six",
	0x37: "seven",
	0x38: "eight",
	0x39: "nine",
	0x3A: "colon",
	0x3B: "semicolon",
	0x3C: "less",
	0x3D: "equal",
	0x3E: "greater",
	0x3F: "question",
	0x40: "at",
	0x41: "A",
	0x42: "B",
	0x43: "C",
	0x44: "D",
	0x45: "E",
	0x46: "F",
	0x47: "G",
	0x48: "H",
	0x49: "I",
	0x4A: "J",
	0x4B: "K",
	0x4C: "L",
	0x4D: "M",
	0x4E: "N",
	0x4F: "O",
	0x50: "P",
	0x51: "Q",
	0x52: "R",
	0x53: "S",
	0x54: "T",
	0x55: "U",
	0x56: "V",
	0x57: "W",
	0x58: "X",
	0x59: "Y",
	0x5A: "Z",
	0x5B: "bracketleft",
	0x5C: "backslash",
	0x5D: "bracketright",
	0x5E: "asciicircum",
	0x5F: "underscore",
	0x60: "quoteleft",
	0x61: "a",
	0x62: "b",
	0x63: "c",
	0x64: "d",
	0x65: "e",
	0x66: "f",
	0x67: "g",
	0x68: "h",
	0x69: "i",
	0x6A: "j",
	0x6B: "k",
	0x6C: "l",
	0x6D: "m",
	0x6E: "n",
	0x6F: "o",
	0x70: "p",
	0x71: "q",
	0x72: "r",
	0x73: "s",
	0x74: "t",
	0x75: "u",
	0x76: "v",
	0x77: "w",
	0x78: "x",
	0x79: "y",
	0x7A: "z",
	0x7B: "braceleft",
	0x7C: "bar",
	0x7D: "braceright",
	0x7E: "asciitilde",
	0xA1: "exclamdown",
	0xA2: "cent",
	0xA3: "sterling",
	0xA4: "fraction",
	0xA5: "yen",
	0xA6: "florin",
	0xA7: "section",
	0xA8: "currency",
	0xA9: "quotesingle",
	0xAA: "quotedblleft",
	0xAB: "guillemotleft",
	0xAC: "guilsinglleft",
	0xAD: "guilsinglright",
	0xAE: "fi",
	0xAF: "fl",
	0xB1: "endash",
	0xB2: "dagger",
	0xB3: "daggerdbl",
	0xB4: "periodcentered",
	0xB6: "paragraph",
	0xB7: "bullet",
	0xB8: "quotesinglbase",
	0xB9: "quotedblbase",
	0xBA: "quotedblright",
	0xBB: "guillemotright",
	0xBC: "ellipsis",
	0xBD: "perthousand",
	0xBF: "questiondown",
	0xC1: "grave",
	0xC2: "acute",
	0xC3: "circumflex",
	0xC4: "tilde",
	0xC5: "macron",
	0xC6: "breve",
	0xC7: "dotaccent",
	0xC8: "dieresis",
	0xCA: "ring",
	0xCB: "cedilla",
	0xCD: "hungarumlaut",
	0xCE: "ogonek",
	0xCF: "caron",
	0xD0: "emdash",
	0xE1: "AE",
	0xE3: "ordfeminine",
	0xE8: "Lslash",
	0xE9: "Oslash",
	0xEA: "OE",
	0xEB: "ordmasculine",
	0xF1: "ae",
	0xF5: "dotlessi",
	0xF8: "lslash",
	0xF9: "oslash",
	0xFA: "oe",
	0xFB: "germandbls",
}

func initStd() {
	decode := make(map[byte]rune, len(stdToGlyph))
	for b, glyph := range stdToGlyph {
		if r, ok := GlyphToRune(glyph); ok {
			decode[b] = r
		}
	}
	std = newSimpleMapping(baseStd, decode)
}
