/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package textencoding

import (
	"errors"
	"fmt"
	"sort"

	"github.com/lazypdf/lazypdf/common"
	"github.com/lazypdf/lazypdf/core"
	"golang.org/x/text/encoding"
)

// SimpleEncoder is a 1-byte font encoding: PDF 32000-1:2008 Table D.2's named base encodings
// (StandardEncoding, WinAnsiEncoding, MacRomanEncoding, MacExpertEncoding) plus a font's own
// /Differences overlay, or a custom map built directly from a font dictionary's /Encoding.
type SimpleEncoder interface {
	TextEncoder
	BaseName() string
	Charcodes() []CharCode
}

// simpleRegistry holds the constructor for every base encoding registered with
// RegisterSimpleEncoding, keyed by the PDF name a font's /Encoding entry carries.
var simpleRegistry = make(map[string]func() SimpleEncoder)

// RegisterSimpleEncoding registers a SimpleEncoder constructor under a PDF encoding name. Called
// once per base encoding from this package's init functions; registering the same name twice is a
// programming error.
func RegisterSimpleEncoding(name string, fnc func() SimpleEncoder) {
	if _, ok := simpleRegistry[name]; ok {
		panic("already registered")
	}
	simpleRegistry[name] = fnc
}

// NewSimpleTextEncoder looks up the base encoding named baseName and layers differences on top of
// it, producing the SimpleEncoder a font's /Encoding dictionary describes (PDF 9.6.6.2).
func NewSimpleTextEncoder(baseName string, differences map[CharCode]GlyphName) (SimpleEncoder, error) {
	ctor, ok := simpleRegistry[baseName]
	if !ok {
		common.Log.Debug("ERROR: NewSimpleTextEncoder. Unknown encoding %q", baseName)
		return nil, fmt.Errorf("unsupported font encoding: %q (%v)", baseName, core.ErrNotSupported)
	}
	enc := ctor()
	if len(differences) != 0 {
		enc = ApplyDifferences(enc, differences)
	}
	return enc, nil
}

// NewCustomSimpleTextEncoder builds a SimpleEncoder directly from a charcode->glyph-name map (a
// font's inline /Encoding dictionary with no named base) plus an optional differences overlay.
func NewCustomSimpleTextEncoder(encoding, differences map[CharCode]GlyphName) (SimpleEncoder, error) {
	if len(encoding) == 0 {
		return nil, errors.New("empty custom encoding")
	}

	byteToRune := make(map[byte]rune, len(encoding))
	for code, glyph := range encoding {
		r, ok := GlyphToRune(glyph)
		if !ok {
			common.Log.Debug("ERROR: Unknown glyph. %q", glyph)
			continue
		}
		byteToRune[byte(code)] = r
	}
	// TODO(dennwc): this seems to be incorrect - byteToRune won't be saved when converting to PDF object
	enc := newSimpleEncoderFromMap("custom", byteToRune)
	if len(differences) != 0 {
		enc = ApplyDifferences(enc, differences)
	}
	return enc, nil
}

var (
	_ SimpleEncoder     = (*simpleEncoding)(nil)
	_ encoding.Encoding = (*simpleEncoding)(nil)
)

// simpleEncoding is the concrete 1-byte SimpleEncoder: a pair of maps translating between PDF
// charcodes and Unicode runes, plus the registeredMap bookkeeping a font subsetter would consult
// to find which codes were actually used.
type simpleEncoding struct {
	baseName string
	encode   map[rune]byte
	decode   map[byte]rune

	registeredMap map[rune]struct{}
}

// newSimpleEncoderFromMap builds a simpleEncoding from a charcode->rune decode table, deriving the
// reverse encode table by picking the lowest charcode when more than one maps to the same rune.
func newSimpleEncoderFromMap(name string, decode map[byte]rune) SimpleEncoder {
	se := &simpleEncoding{
		baseName: name,
		decode:   decode,
		encode:   make(map[rune]byte, len(decode)),
	}
	for b, r := range se.decode {
		if b2, has := se.encode[r]; !has || b < b2 {
			se.encode[r] = b
		}
	}
	return se
}

// Encode converts the Go unicode string to a PDF encoded string.
func (enc *simpleEncoding) Encode(str string) []byte {
	data, _ := enc.NewEncoder().Bytes([]byte(str))
	return data
}

// Decode converts PDF encoded string to a Go unicode string.
func (enc *simpleEncoding) Decode(raw []byte) string {
	data, _ := enc.NewDecoder().Bytes(raw)
	return string(data)
}

// String returns a text representation of encoding.
func (enc *simpleEncoding) String() string {
	return "simpleEncoding(" + enc.baseName + ")"
}

// BaseName returns a base name of the encoder, as specified in the PDF spec.
func (enc *simpleEncoding) BaseName() string {
	return enc.baseName
}

// Charcodes returns every charcode this encoding maps, in ascending order.
func (enc *simpleEncoding) Charcodes() []CharCode {
	codes := make([]CharCode, 0, len(enc.decode))
	for b := range enc.decode {
		codes = append(codes, CharCode(b))
	}
	sort.Slice(codes, func(i, j int) bool {
		return codes[i] < codes[j]
	})
	return codes
}

// RuneToCharcode looks up the charcode for r, recording r as used for later subsetting.
func (enc *simpleEncoding) RuneToCharcode(r rune) (CharCode, bool) {
	b, ok := enc.encode[r]
	enc.markUsed(r)
	return CharCode(b), ok
}

// CharcodeToRune looks up the rune for a 1-byte code, recording the result as used.
func (enc *simpleEncoding) CharcodeToRune(code CharCode) (rune, bool) {
	if code > 0xff {
		return MissingCodeRune, false
	}
	b := byte(code)
	r, ok := enc.decode[b]
	enc.markUsed(r)
	return r, ok
}

func (enc *simpleEncoding) markUsed(r rune) {
	if enc.registeredMap == nil {
		enc.registeredMap = map[rune]struct{}{}
	}
	enc.registeredMap[r] = struct{}{}
}

// ToPdfObject returns the encoding's PDF name operand.
func (enc *simpleEncoding) ToPdfObject() core.PdfObject {
	return core.MakeName(enc.baseName)
}
