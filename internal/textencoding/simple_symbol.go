/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */
/*
 * The embedded character encodings specified in this file are distributed under the terms
 * listed in ./testdata/glyphlist/glyphlist.txt
 */

package textencoding

const baseSymbol = "SymbolEncoding"

func init() {
	RegisterSimpleEncoding(baseSymbol, NewSymbolEncoder)
}

// NewSymbolEncoder returns a SimpleEncoder that implements SymbolEncoding,
// the built-in encoding of the standard Symbol font.
func NewSymbolEncoder() SimpleEncoder {
	return symbol.NewEncoder()
}

var symbol = newSimpleMapping(baseSymbol, symbolCharToRune)

// symbolCharToRune is the built-in encoding of the Symbol font, from its AFM.
var symbolCharToRune = map[byte]rune{
	0x20: '\u0020', // space
	0x21: '\u0021', // exclam
	0x22: '\u2200', // universal
	0x23: '\u0023', // numbersign
	0x24: '\u2203', // existential
	0x25: '\u0025', // percent
	0x26: '\u0026', // ampersand
	0x27: '\u220b', // suchthat
	0x28: '\u0028', // parenleft
	0x29: '\u0029', // parenright
	0x2a: '\u2217', // asteriskmath
	0x2b: '\u002b', // plus
	0x2c: '\u002c', // comma
	0x2d: '\u2212', // minus
	0x2e: '\u002e', // period
	0x2f: '\u002f', // slash
	0x30: '\u0030', // zero
	0x31: '\u0031', // one
	0x32: '\u0032', // two
	0x33: '\u0033', // three
	0x34: '\u0034', // four
	0x35: '\u0035', // five
	0x36: '\u0036', // six
	0x37: '\u0037', // seven
	0x38: '\u0038', // eight
	0x39: '\u0039', // nine
	0x3a: '\u003a', // colon
	0x3b: '\u003b', // semicolon
	0x3c: '\u003c', // less
	0x3d: '\u003d', // equal
	0x3e: '\u003e', // greater
	0x3f: '\u003f', // question
	0x40: '\u2245', // congruent
	0x41: '\u0391', // Alpha
	0x42: '\u0392', // Beta
	0x43: '\u03a7', // Chi
	0x44: '\u2206', // Delta
	0x45: '\u0395', // Epsilon
	0x46: '\u03a6', // Phi
	0x47: '\u0393', // Gamma
	0x48: '\u0397', // Eta
	0x49: '\u0399', // Iota
	0x4a: '\u03d1', // theta1
	0x4b: '\u039a', // Kappa
	0x4c: '\u039b', // Lambda
	0x4d: '\u039c', // Mu
	0x4e: '\u039d', // Nu
	0x4f: '\u039f', // Omicron
	0x50: '\u03a0', // Pi
	0x51: '\u0398', // Theta
	0x52: '\u03a1', // Rho
	0x53: '\u03a3', // Sigma
	0x54: '\u03a4', // Tau
	0x55: '\u03a5', // Upsilon
	0x56: '\u03c2', // sigma1
	0x57: '\u2126', // Omega
	0x58: '\u039e', // Xi
	0x59: '\u03a8', // Psi
	0x5a: '\u0396', // Zeta
	0x5b: '\u005b', // bracketleft
	0x5c: '\u2234', // therefore
	0x5d: '\u005d', // bracketright
	0x5e: '\u22a5', // perpendicular
	0x5f: '\u005f', // underscore
	0x60: '\uf8e5', // radicalex
	0x61: '\u03b1', // alpha
	0x62: '\u03b2', // beta
	0x63: '\u03c7', // chi
	0x64: '\u03b4', // delta
	0x65: '\u03b5', // epsilon
	0x66: '\u03c6', // phi
	0x67: '\u03b3', // gamma
	0x68: '\u03b7', // eta
	0x69: '\u03b9', // iota
	0x6a: '\u03d5', // phi1
	0x6b: '\u03ba', // kappa
	0x6c: '\u03bb', // lambda
	0x6d: '\u00b5', // mu
	0x6e: '\u03bd', // nu
	0x6f: '\u03bf', // omicron
	0x70: '\u03c0', // pi
	0x71: '\u03b8', // theta
	0x72: '\u03c1', // rho
	0x73: '\u03c3', // sigma
	0x74: '\u03c4', // tau
	0x75: '\u03c5', // upsilon
	0x76: '\u03d6', // omega1
	0x77: '\u03c9', // omega
	0x78: '\u03be', // xi
	0x79: '\u03c8', // psi
	0x7a: '\u03b6', // zeta
	0x7b: '\u007b', // braceleft
	0x7c: '\u007c', // bar
	0x7d: '\u007d', // braceright
	0x7e: '\u223c', // similar
	0xa0: '\u20ac', // Euro
	0xa1: '\u03d2', // Upsilon1
	0xa2: '\u2032', // minute
	0xa3: '\u2264', // lessequal
	0xa4: '\u2044', // fraction
	0xa5: '\u221e', // infinity
	0xa6: '\u0192', // florin
	0xa7: '\u2663', // club
	0xa8: '\u2666', // diamond
	0xa9: '\u2665', // heart
	0xaa: '\u2660', // spade
	0xab: '\u2194', // arrowboth
	0xac: '\u2190', // arrowleft
	0xad: '\u2191', // arrowup
	0xae: '\u2192', // arrowright
	0xaf: '\u2193', // arrowdown
	0xb0: '\u00b0', // degree
	0xb1: '\u00b1', // plusminus
	0xb2: '\u2033', // second
	0xb3: '\u2265', // greaterequal
	0xb4: '\u00d7', // multiply
	0xb5: '\u221d', // proportional
	0xb6: '\u2202', // partialdiff
	0xb7: '\u2022', // bullet
	0xb8: '\u00f7', // divide
	0xb9: '\u2260', // notequal
	0xba: '\u2261', // equivalence
	0xbb: '\u2248', // approxequal
	0xbc: '\u2026', // ellipsis
	0xbd: '\uf8e6', // arrowvertex
	0xbe: '\uf8e7', // arrowhorizex
	0xbf: '\u21b5', // carriagereturn
	0xc0: '\u2135', // aleph
	0xc1: '\u2111', // Ifraktur
	0xc2: '\u211c', // Rfraktur
	0xc3: '\u2118', // weierstrass
	0xc4: '\u2297', // circlemultiply
	0xc5: '\u2295', // circleplus
	0xc6: '\u2205', // emptyset
	0xc7: '\u2229', // intersection
	0xc8: '\u222a', // union
	0xc9: '\u2283', // propersuperset
	0xca: '\u2287', // reflexsuperset
	0xcb: '\u2284', // notsubset
	0xcc: '\u2282', // propersubset
	0xcd: '\u2286', // reflexsubset
	0xce: '\u2208', // element
	0xcf: '\u2209', // notelement
	0xd0: '\u2220', // angle
	0xd1: '\u2207', // gradient
	0xd2: '\uf6da', // registerserif
	0xd3: '\uf6d9', // copyrightserif
	0xd4: '\uf6db', // trademarkserif
	0xd5: '\u220f', // product
	0xd6: '\u221a', // radical
	0xd7: '\u22c5', // dotmath
	0xd8: '\u00ac', // logicalnot
	0xd9: '\u2227', // logicaland
	0xda: '\u2228', // logicalor
	0xdb: '\u21d4', // arrowdblboth
	0xdc: '\u21d0', // arrowdblleft
	0xdd: '\u21d1', // arrowdblup
	0xde: '\u21d2', // arrowdblright
	0xdf: '\u21d3', // arrowdbldown
	0xe0: '\u25ca', // lozenge
	0xe1: '\u2329', // angleleft
	0xe2: '\uf8e8', // registersans
	0xe3: '\uf8e9', // copyrightsans
	0xe4: '\uf8ea', // trademarksans
	0xe5: '\u2211', // summation
	0xe6: '\uf8eb', // parenlefttp
	0xe7: '\uf8ec', // parenleftex
	0xe8: '\uf8ed', // parenleftbt
	0xe9: '\uf8ee', // bracketlefttp
	0xea: '\uf8ef', // bracketleftex
	0xeb: '\uf8f0', // bracketleftbt
	0xec: '\uf8f1', // bracelefttp
	0xed: '\uf8f2', // braceleftmid
	0xee: '\uf8f3', // braceleftbt
	0xef: '\uf8f4', // braceex
	0xf1: '\u232a', // angleright
	0xf2: '\u222b', // integral
	0xf3: '\u2320', // integraltp
	0xf4: '\uf8f5', // integralex
	0xf5: '\u2321', // integralbt
	0xf6: '\uf8f6', // parenrighttp
	0xf7: '\uf8f7', // parenrightex
	0xf8: '\uf8f8', // parenrightbt
	0xf9: '\uf8f9', // bracketrighttp
	0xfa: '\uf8fa', // bracketrightex
	0xfb: '\uf8fb', // bracketrightbt
	0xfc: '\uf8fc', // bracerighttp
	0xfd: '\uf8fd', // bracerightmid
	0xfe: '\uf8fe', // bracerightbt
}
