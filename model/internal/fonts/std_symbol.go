/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */
/*
 * The embedded character metrics specified in this file are distributed under the terms listed in
 * ./testdata/afms/MustRead.html.
 */

package fonts

import (
	"github.com/lazypdf/lazypdf/internal/textencoding"
)

func init() {
	RegisterStdFont(SymbolName, newFontSymbol)
}

// SymbolName is a PDF name of the Symbol font.
const SymbolName = StdFontName("Symbol")

// newFontSymbol returns a new instance of the font with the font's built-in encoder.
func newFontSymbol() StdFont {
	desc := Descriptor{
		Name:        SymbolName,
		Family:      string(SymbolName),
		Weight:      FontWeightMedium,
		Flags:       0x0004,
		BBox:        [4]float64{-180, -293, 1090, 1010},
		ItalicAngle: 0,
		Ascent:      0,
		Descent:     0,
		CapHeight:   0,
		XHeight:     0,
		StemV:       85,
		StemH:       92,
	}
	return NewStdFontWithEncoding(desc, symbolCharMetrics, textencoding.NewSymbolEncoder())
}

// symbolCharMetrics are the font metrics loaded from afms/Symbol.afm.
// See afms/MustRead.html for license information.
var symbolCharMetrics = map[rune]CharMetrics{
	'\u0020': {Wx: 250}, // space
	'\u0021': {Wx: 333}, // exclam
	'\u2200': {Wx: 713}, // universal
	'\u0023': {Wx: 500}, // numbersign
	'\u2203': {Wx: 549}, // existential
	'\u0025': {Wx: 833}, // percent
	'\u0026': {Wx: 778}, // ampersand
	'\u220b': {Wx: 439}, // suchthat
	'\u0028': {Wx: 333}, // parenleft
	'\u0029': {Wx: 333}, // parenright
	'\u2217': {Wx: 500}, // asteriskmath
	'\u002b': {Wx: 549}, // plus
	'\u002c': {Wx: 250}, // comma
	'\u2212': {Wx: 549}, // minus
	'\u002e': {Wx: 250}, // period
	'\u002f': {Wx: 278}, // slash
	'\u0030': {Wx: 500}, // zero
	'\u0031': {Wx: 500}, // one
	'\u0032': {Wx: 500}, // two
	'\u0033': {Wx: 500}, // three
	'\u0034': {Wx: 500}, // four
	'\u0035': {Wx: 500}, // five
	'\u0036': {Wx: 500}, // six
	'\u0037': {Wx: 500}, // seven
	'\u0038': {Wx: 500}, // eight
	'\u0039': {Wx: 500}, // nine
	'\u003a': {Wx: 278}, // colon
	'\u003b': {Wx: 278}, // semicolon
	'\u003c': {Wx: 549}, // less
	'\u003d': {Wx: 549}, // equal
	'\u003e': {Wx: 549}, // greater
	'\u003f': {Wx: 444}, // question
	'\u2245': {Wx: 549}, // congruent
	'\u0391': {Wx: 722}, // Alpha
	'\u0392': {Wx: 667}, // Beta
	'\u03a7': {Wx: 722}, // Chi
	'\u2206': {Wx: 612}, // Delta
	'\u0395': {Wx: 611}, // Epsilon
	'\u03a6': {Wx: 763}, // Phi
	'\u0393': {Wx: 603}, // Gamma
	'\u0397': {Wx: 722}, // Eta
	'\u0399': {Wx: 333}, // Iota
	'\u03d1': {Wx: 631}, // theta1
	'\u039a': {Wx: 722}, // Kappa
	'\u039b': {Wx: 686}, // Lambda
	'\u039c': {Wx: 889}, // Mu
	'\u039d': {Wx: 722}, // Nu
	'\u039f': {Wx: 722}, // Omicron
	'\u03a0': {Wx: 768}, // Pi
	'\u0398': {Wx: 741}, // Theta
	'\u03a1': {Wx: 556}, // Rho
	'\u03a3': {Wx: 592}, // Sigma
	'\u03a4': {Wx: 611}, // Tau
	'\u03a5': {Wx: 690}, // Upsilon
	'\u03c2': {Wx: 439}, // sigma1
	'\u2126': {Wx: 768}, // Omega
	'\u039e': {Wx: 645}, // Xi
	'\u03a8': {Wx: 795}, // Psi
	'\u0396': {Wx: 611}, // Zeta
	'\u005b': {Wx: 333}, // bracketleft
	'\u2234': {Wx: 863}, // therefore
	'\u005d': {Wx: 333}, // bracketright
	'\u22a5': {Wx: 658}, // perpendicular
	'\u005f': {Wx: 500}, // underscore
	'\uf8e5': {Wx: 500}, // radicalex
	'\u03b1': {Wx: 631}, // alpha
	'\u03b2': {Wx: 549}, // beta
	'\u03c7': {Wx: 549}, // chi
	'\u03b4': {Wx: 494}, // delta
	'\u03b5': {Wx: 439}, // epsilon
	'\u03c6': {Wx: 521}, // phi
	'\u03b3': {Wx: 411}, // gamma
	'\u03b7': {Wx: 603}, // eta
	'\u03b9': {Wx: 329}, // iota
	'\u03d5': {Wx: 603}, // phi1
	'\u03ba': {Wx: 549}, // kappa
	'\u03bb': {Wx: 549}, // lambda
	'\u00b5': {Wx: 576}, // mu
	'\u03bd': {Wx: 521}, // nu
	'\u03bf': {Wx: 549}, // omicron
	'\u03c0': {Wx: 549}, // pi
	'\u03b8': {Wx: 521}, // theta
	'\u03c1': {Wx: 549}, // rho
	'\u03c3': {Wx: 603}, // sigma
	'\u03c4': {Wx: 439}, // tau
	'\u03c5': {Wx: 576}, // upsilon
	'\u03d6': {Wx: 713}, // omega1
	'\u03c9': {Wx: 686}, // omega
	'\u03be': {Wx: 493}, // xi
	'\u03c8': {Wx: 686}, // psi
	'\u03b6': {Wx: 494}, // zeta
	'\u007b': {Wx: 480}, // braceleft
	'\u007c': {Wx: 200}, // bar
	'\u007d': {Wx: 480}, // braceright
	'\u223c': {Wx: 549}, // similar
	'\u20ac': {Wx: 750}, // Euro
	'\u03d2': {Wx: 620}, // Upsilon1
	'\u2032': {Wx: 247}, // minute
	'\u2264': {Wx: 549}, // lessequal
	'\u2044': {Wx: 167}, // fraction
	'\u221e': {Wx: 713}, // infinity
	'\u0192': {Wx: 500}, // florin
	'\u2663': {Wx: 753}, // club
	'\u2666': {Wx: 753}, // diamond
	'\u2665': {Wx: 753}, // heart
	'\u2660': {Wx: 753}, // spade
	'\u2194': {Wx: 1042}, // arrowboth
	'\u2190': {Wx: 987}, // arrowleft
	'\u2191': {Wx: 603}, // arrowup
	'\u2192': {Wx: 987}, // arrowright
	'\u2193': {Wx: 603}, // arrowdown
	'\u00b0': {Wx: 400}, // degree
	'\u00b1': {Wx: 549}, // plusminus
	'\u2033': {Wx: 411}, // second
	'\u2265': {Wx: 549}, // greaterequal
	'\u00d7': {Wx: 549}, // multiply
	'\u221d': {Wx: 713}, // proportional
	'\u2202': {Wx: 494}, // partialdiff
	'\u2022': {Wx: 460}, // bullet
	'\u00f7': {Wx: 549}, // divide
	'\u2260': {Wx: 549}, // notequal
	'\u2261': {Wx: 549}, // equivalence
	'\u2248': {Wx: 549}, // approxequal
	'\u2026': {Wx: 1000}, // ellipsis
	'\uf8e6': {Wx: 603}, // arrowvertex
	'\uf8e7': {Wx: 1000}, // arrowhorizex
	'\u21b5': {Wx: 658}, // carriagereturn
	'\u2135': {Wx: 823}, // aleph
	'\u2111': {Wx: 686}, // Ifraktur
	'\u211c': {Wx: 795}, // Rfraktur
	'\u2118': {Wx: 987}, // weierstrass
	'\u2297': {Wx: 768}, // circlemultiply
	'\u2295': {Wx: 768}, // circleplus
	'\u2205': {Wx: 823}, // emptyset
	'\u2229': {Wx: 768}, // intersection
	'\u222a': {Wx: 768}, // union
	'\u2283': {Wx: 713}, // propersuperset
	'\u2287': {Wx: 713}, // reflexsuperset
	'\u2284': {Wx: 713}, // notsubset
	'\u2282': {Wx: 713}, // propersubset
	'\u2286': {Wx: 713}, // reflexsubset
	'\u2208': {Wx: 713}, // element
	'\u2209': {Wx: 713}, // notelement
	'\u2220': {Wx: 768}, // angle
	'\u2207': {Wx: 713}, // gradient
	'\uf6da': {Wx: 790}, // registerserif
	'\uf6d9': {Wx: 790}, // copyrightserif
	'\uf6db': {Wx: 890}, // trademarkserif
	'\u220f': {Wx: 823}, // product
	'\u221a': {Wx: 549}, // radical
	'\u22c5': {Wx: 250}, // dotmath
	'\u00ac': {Wx: 713}, // logicalnot
	'\u2227': {Wx: 603}, // logicaland
	'\u2228': {Wx: 603}, // logicalor
	'\u21d4': {Wx: 1042}, // arrowdblboth
	'\u21d0': {Wx: 987}, // arrowdblleft
	'\u21d1': {Wx: 603}, // arrowdblup
	'\u21d2': {Wx: 987}, // arrowdblright
	'\u21d3': {Wx: 603}, // arrowdbldown
	'\u25ca': {Wx: 494}, // lozenge
	'\u2329': {Wx: 329}, // angleleft
	'\uf8e8': {Wx: 790}, // registersans
	'\uf8e9': {Wx: 790}, // copyrightsans
	'\uf8ea': {Wx: 786}, // trademarksans
	'\u2211': {Wx: 713}, // summation
	'\uf8eb': {Wx: 384}, // parenlefttp
	'\uf8ec': {Wx: 384}, // parenleftex
	'\uf8ed': {Wx: 384}, // parenleftbt
	'\uf8ee': {Wx: 384}, // bracketlefttp
	'\uf8ef': {Wx: 384}, // bracketleftex
	'\uf8f0': {Wx: 384}, // bracketleftbt
	'\uf8f1': {Wx: 494}, // bracelefttp
	'\uf8f2': {Wx: 494}, // braceleftmid
	'\uf8f3': {Wx: 494}, // braceleftbt
	'\uf8f4': {Wx: 494}, // braceex
	'\u232a': {Wx: 329}, // angleright
	'\u222b': {Wx: 274}, // integral
	'\u2320': {Wx: 686}, // integraltp
	'\uf8f5': {Wx: 686}, // integralex
	'\u2321': {Wx: 686}, // integralbt
	'\uf8f6': {Wx: 384}, // parenrighttp
	'\uf8f7': {Wx: 384}, // parenrightex
	'\uf8f8': {Wx: 384}, // parenrightbt
	'\uf8f9': {Wx: 384}, // bracketrighttp
	'\uf8fa': {Wx: 384}, // bracketrightex
	'\uf8fb': {Wx: 384}, // bracketrightbt
	'\uf8fc': {Wx: 494}, // bracerighttp
	'\uf8fd': {Wx: 494}, // bracerightmid
	'\uf8fe': {Wx: 494}, // bracerightbt
}
