/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package textencoding

import "sync"

// simpleMapping is a lazily-initialized byte<->rune table backing one of the named base
// encodings (WinAnsiEncoding and friends). The reverse (rune->byte) table is built once, on first
// use, rather than at package init for every base encoding whether or not a document needs it.
type simpleMapping struct {
	baseName string
	once     sync.Once
	decode   map[byte]rune
	encode   map[rune]byte
}

// newSimpleMapping wraps a byte->rune decode table as a simpleMapping that builds simpleEncoders
// on demand via NewEncoder.
func newSimpleMapping(name string, decode map[byte]rune) *simpleMapping {
	return &simpleMapping{baseName: name, decode: decode}
}

// init builds the reverse encode table, preferring the lowest charcode when more than one maps to
// the same rune so repeated calls are deterministic.
func (m *simpleMapping) init() {
	m.encode = make(map[rune]byte, len(m.decode))
	for b, r := range m.decode {
		if b2, has := m.encode[r]; !has || b < b2 {
			m.encode[r] = b
		}
	}
}

// NewEncoder returns a SimpleEncoder for this mapping's base encoding, building the reverse table
// the first time it's called.
func (m *simpleMapping) NewEncoder() SimpleEncoder {
	m.once.Do(m.init)
	return &simpleEncoding{
		baseName: m.baseName,
		encode:   m.encode,
		decode:   m.decode,
	}
}
