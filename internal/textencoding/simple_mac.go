/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package textencoding

import (
	"sync"

	"golang.org/x/text/encoding/charmap"
)

const (
	baseMacRoman  = "MacRomanEncoding"
	baseMacExpert = "MacExpertEncoding"
)

func init() {
	RegisterSimpleEncoding(baseMacRoman, NewMacRomanEncoder)
	RegisterSimpleEncoding(baseMacExpert, NewMacExpertEncoder)
}

// NewMacRomanEncoder returns a SimpleEncoder that implements MacRomanEncoding.
func NewMacRomanEncoder() SimpleEncoder {
	macRomanOnce.Do(initMacRoman)
	return macRoman.NewEncoder()
}

// NewMacExpertEncoder returns a SimpleEncoder that implements MacExpertEncoding.
func NewMacExpertEncoder() SimpleEncoder {
	macExpertOnce.Do(initMacExpert)
	return macExpert.NewEncoder()
}

var (
	macRomanOnce  sync.Once
	macRoman      *simpleMapping
	macExpertOnce sync.Once
	macExpert     *simpleMapping
)

func initMacRoman() {
	decode := make(map[byte]rune, 224)

	enc := charmap.Macintosh

	// Mac OS Roman places the euro sign at 0xDB; PDF's MacRomanEncoding
	// keeps the original currency sign there (PDF 32000-1:2008 Table D.2).
	replace := map[byte]rune{
		0xDB: '¤',
	}

	for i := int(' '); i < 256; i++ {
		b := byte(i)
		r := enc.DecodeByte(b)
		if rp, ok := replace[b]; ok {
			r = rp
		}
		decode[b] = r
	}
	macRoman = newSimpleMapping(baseMacRoman, decode)
}

// macExpertToGlyph covers the MacExpertEncoding code points whose expert glyphs
// carry a standard Unicode value via the glyph list: oldstyle figures, small
// capitals, f-ligatures and the expert punctuation. Codes outside the table
// decode to MissingCodeRune.
var macExpertToGlyph = map[byte]GlyphName{
	0x20: "space",
	0x21: "exclamsmall",
	0x24: "dollaroldstyle",
	0x26: "ampersandsmall",
	0x2C: "comma",
	0x2D: "hyphen",
	0x2E: "period",
	0x2F: "fraction",
	0x30: "zerooldstyle",
	0x31: "oneoldstyle",
	0x32: "twooldstyle",
	0x33: "threeoldstyle",
	0x34: "fouroldstyle",
	0x35: "fiveoldstyle",
	0x36: "sixoldstyle",
	0x37: "sevenoldstyle",
	0x38: "eightoldstyle",
	0x39: "nineoldstyle",
	0x3A: "colon",
	0x3B: "semicolon",
	0x3F: "questionsmall",
	0x56: "ff",
	0x57: "fi",
	0x58: "fl",
	0x59: "ffi",
	0x5A: "ffl",
	0x61: "Asmall",
	0x62: "Bsmall",
	0x63: "Csmall",
	0x64: "Dsmall",
	0x65: "Esmall",
	0x66: "Fsmall",
	0x67: "Gsmall",
	0x68: "Hsmall",
	0x69: "Ismall",
	0x6A: "Jsmall",
	0x6B: "Ksmall",
	0x6C: "Lsmall",
	0x6D: "Msmall",
	0x6E: "Nsmall",
	0x6F: "Osmall",
	0x70: "Psmall",
	0x71: "Qsmall",
	0x72: "Rsmall",
	0x73: "Ssmall",
	0x74: "Tsmall",
	0x75: "Usmall",
	0x76: "Vsmall",
	0x77: "Wsmall",
	0x78: "Xsmall",
	0x79: "Ysmall",
	0x7A: "Zsmall",
}

func initMacExpert() {
	decode := make(map[byte]rune, len(macExpertToGlyph))
	for b, glyph := range macExpertToGlyph {
		if r, ok := GlyphToRune(glyph); ok {
			decode[b] = r
		}
	}
	macExpert = newSimpleMapping(baseMacExpert, decode)
}
