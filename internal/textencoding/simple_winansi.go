/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package textencoding

import (
	"sync"

	"golang.org/x/text/encoding/charmap"
)

const baseWinAnsi = "WinAnsiEncoding"

func init() {
	RegisterSimpleEncoding(baseWinAnsi, NewWinAnsiEncoder)
}

// NewWinAnsiEncoder returns a SimpleEncoder that implements WinAnsiEncoding.
func NewWinAnsiEncoder() SimpleEncoder {
	winAnsiOnce.Do(initWinAnsi)
	return winAnsi.NewEncoder()
}

var (
	winAnsiOnce sync.Once
	winAnsi     *simpleMapping
)

func initWinAnsi() {
	decode := make(map[byte]rune, 224)

	// WinAnsiEncoding is also known as CP1252.
	enc := charmap.Windows1252

	// Comparing to CP1252, WinAnsiEncoding replaces all unused and
	// non-visual codes with the bullet character.
	const bullet = '•'
	replace := map[byte]rune{
		127: bullet, // DEL

		// unused
		129: bullet,
		141: bullet,
		143: bullet,
		144: bullet,
		157: bullet,

		// typographically similar
		160: ' ', // no-break space -> space
		173: '-', // soft hyphen -> hyphen
	}

	for i := int(' '); i < 256; i++ {
		b := byte(i)
		r := enc.DecodeByte(b)
		if rp, ok := replace[b]; ok {
			r = rp
		}
		decode[b] = r
	}
	winAnsi = newSimpleMapping(baseWinAnsi, decode)
}
