/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package textencoding

import (
	"unicode/utf8"

	"golang.org/x/text/encoding"
	xtransform "golang.org/x/text/transform"
)

// NewDecoder implements encoding.Encoding, letting a simpleEncoding be driven through
// golang.org/x/text's Decoder.Bytes/String helpers instead of a bespoke byte-walk.
func (enc *simpleEncoding) NewDecoder() *encoding.Decoder {
	return &encoding.Decoder{Transformer: byteToRuneTransform{table: enc.decode}}
}

// NewEncoder implements encoding.Encoding, the inverse of NewDecoder.
func (enc *simpleEncoding) NewEncoder() *encoding.Encoder {
	return &encoding.Encoder{Transformer: runeToByteTransform{table: enc.encode}}
}

// byteToRuneTransform is an x/text Transformer that maps each input byte through table, emitting
// MissingCodeRune for codes the encoding doesn't define.
type byteToRuneTransform struct {
	table map[byte]rune
}

// Transform implements xtransform.Transformer.
func (t byteToRuneTransform) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, _ error) {
	for len(src) != 0 {
		b := src[0]
		src = src[1:]

		r, ok := t.table[b]
		if !ok {
			r = MissingCodeRune
		}
		if utf8.RuneLen(r) > len(dst) {
			return nDst, nSrc, xtransform.ErrShortDst
		}
		n := utf8.EncodeRune(dst, r)
		dst = dst[n:]

		nSrc++
		nDst += n
	}
	return nDst, nSrc, nil
}

// Reset implements xtransform.Transformer.
func (t byteToRuneTransform) Reset() {}

// runeToByteTransform is an x/text Transformer that maps each input rune through table, falling
// back to whatever byte (if any) the encoding maps MissingCodeRune to.
type runeToByteTransform struct {
	table map[rune]byte
}

// Transform implements xtransform.Transformer.
func (t runeToByteTransform) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, _ error) {
	for len(src) != 0 {
		if !utf8.FullRune(src) && !atEOF {
			return nDst, nSrc, xtransform.ErrShortSrc
		} else if len(dst) == 0 {
			return nDst, nSrc, xtransform.ErrShortDst
		}
		r, n := utf8.DecodeRune(src)
		if r == utf8.RuneError {
			r = MissingCodeRune
		}
		src = src[n:]
		nSrc += n

		b, ok := t.table[r]
		if !ok {
			b = t.table[MissingCodeRune]
		}
		dst[0] = b

		dst = dst[1:]
		nDst++
	}
	return nDst, nSrc, nil
}

// Reset implements xtransform.Transformer.
func (t runeToByteTransform) Reset() {}
