/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package textencoding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBasicEncodings checks known charcode->rune mappings in every registered base encoding.
func TestBasicEncodings(t *testing.T) {
	cases := []struct {
		encoding string
		code     CharCode
		expected rune
	}{
		{"StandardEncoding", 0x61, 'a'},
		{"StandardEncoding", 0x27, '’'}, // quoteright
		{"StandardEncoding", 0xEB, 'º'}, // ordmasculine
		{"StandardEncoding", 0xF5, 'ı'}, // dotlessi
		{"WinAnsiEncoding", 0xD7, '×'},
		{"WinAnsiEncoding", 0xF7, '÷'},
		{"WinAnsiEncoding", 0xAE, '®'},
		{"WinAnsiEncoding", 0x80, '€'},
		{"MacRomanEncoding", 0xD7, '◊'}, // lozenge
		{"MacRomanEncoding", 0xDE, 'ﬁ'}, // fi ligature
		{"MacRomanEncoding", 0xFF, 'ˇ'}, // caron
		{"MacExpertEncoding", 0x61, '\uf761'}, // Asmall
		{"MacExpertEncoding", 0x30, '\uf730'}, // zerooldstyle
		{"MacExpertEncoding", 0x57, 'ﬁ'},
		{"SymbolEncoding", 0x64, 'δ'},
		{"SymbolEncoding", 0xB6, '∂'},
		{"SymbolEncoding", 0xC0, 'ℵ'},
		{"SymbolEncoding", 0xF5, '⌡'}, // integralbt
		{"ZapfDingbatsEncoding", 0x25, '☎'}, // a4
		{"ZapfDingbatsEncoding", 0xAC, '①'}, // a120
		{"ZapfDingbatsEncoding", 0xD4, '➔'}, // a160
		{"ZapfDingbatsEncoding", 0xE8, '➨'}, // a178
	}

	for _, c := range cases {
		enc, err := NewSimpleTextEncoder(c.encoding, nil)
		require.NoError(t, err, "encoding %q", c.encoding)

		r, ok := enc.CharcodeToRune(c.code)
		require.True(t, ok, "%s: code 0x%02X unmapped", c.encoding, c.code)
		assert.Equal(t, c.expected, r, "%s: code 0x%02X", c.encoding, c.code)

		code, ok := enc.RuneToCharcode(c.expected)
		require.True(t, ok, "%s: rune %q has no code", c.encoding, c.expected)
		assert.Equal(t, c.code, code, "%s: rune %q", c.encoding, c.expected)
	}
}

// TestUnknownEncodingRejected checks that a name outside the registry fails rather than silently
// falling back.
func TestUnknownEncodingRejected(t *testing.T) {
	_, err := NewSimpleTextEncoder("NoSuchEncoding", nil)
	require.Error(t, err)
}

func TestWinAnsiEncoder(t *testing.T) {
	enc := NewWinAnsiEncoder()

	r, found := enc.CharcodeToRune(32)
	require.True(t, found)
	assert.Equal(t, ' ', r)

	code, found := enc.RuneToCharcode('þ')
	require.True(t, found)
	assert.Equal(t, CharCode(254), code)

	glyph, found := RuneToGlyph('þ')
	require.True(t, found)
	assert.Equal(t, GlyphName("thorn"), glyph)
}

// TestGlyphRune tests that glyphlistGlyphToRuneMap and glyphlistRuneToGlyphMap are consistent.
func TestGlyphRune(t *testing.T) {
	for r, g := range glyphlistRuneToGlyphMap {
		r2, ok := glyphlistGlyphToRuneMap[g]
		require.True(t, ok, "rune=0x%04x glyph=%q", r, g)
		assert.Equal(t, r, r2, "glyph %q", g)
	}
}

func TestExpandLigatures(t *testing.T) {
	assert.Equal(t, "difficult offer", ExpandLigatures([]rune("diﬀicult oﬀer")))
	assert.Equal(t, "fix float", ExpandLigatures([]rune("ﬁx ﬂoat")))
}
