/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */
/*
 * The embedded character encodings specified in this file are distributed under the terms
 * listed in ./testdata/glyphlist/zapfdingbats.txt
 */

package textencoding

const baseZapfDingbats = "ZapfDingbatsEncoding"

func init() {
	RegisterSimpleEncoding(baseZapfDingbats, NewZapfDingbatsEncoder)
}

// NewZapfDingbatsEncoder returns a SimpleEncoder that implements the built-in
// encoding of the standard ZapfDingbats font.
func NewZapfDingbatsEncoder() SimpleEncoder {
	return zapfDingbats.NewEncoder()
}

var zapfDingbats = newSimpleMapping(baseZapfDingbats, zapfDingbatsCharToRune)

// zapfDingbatsCharToRune is the built-in encoding of the ZapfDingbats font, from its AFM.
var zapfDingbatsCharToRune = map[byte]rune{
	0x20: '\u0020', // space
	0x21: '\u2701', // a1
	0x22: '\u2702', // a2
	0x23: '\u2703', // a202
	0x24: '\u2704', // a3
	0x25: '\u260e', // a4
	0x26: '\u2706', // a5
	0x27: '\u2707', // a119
	0x28: '\u2708', // a118
	0x29: '\u2709', // a117
	0x2a: '\u261b', // a11
	0x2b: '\u261e', // a12
	0x2c: '\u270c', // a13
	0x2d: '\u270d', // a14
	0x2e: '\u270e', // a15
	0x2f: '\u270f', // a16
	0x30: '\u2710', // a105
	0x31: '\u2711', // a17
	0x32: '\u2712', // a18
	0x33: '\u2713', // a19
	0x34: '\u2714', // a20
	0x35: '\u2715', // a21
	0x36: '\u2716', // a22
	0x37: '\u2717', // a23
	0x38: '\u2718', // a24
	0x39: '\u2719', // a25
	0x3a: '\u271a', // a26
	0x3b: '\u271b', // a27
	0x3c: '\u271c', // a28
	0x3d: '\u271d', // a6
	0x3e: '\u271e', // a7
	0x3f: '\u271f', // a8
	0x40: '\u2720', // a9
	0x41: '\u2721', // a10
	0x42: '\u2722', // a29
	0x43: '\u2723', // a30
	0x44: '\u2724', // a31
	0x45: '\u2725', // a32
	0x46: '\u2726', // a33
	0x47: '\u2727', // a34
	0x48: '\u2605', // a35
	0x49: '\u2729', // a36
	0x4a: '\u272a', // a37
	0x4b: '\u272b', // a38
	0x4c: '\u272c', // a39
	0x4d: '\u272d', // a40
	0x4e: '\u272e', // a41
	0x4f: '\u272f', // a42
	0x50: '\u2730', // a43
	0x51: '\u2731', // a44
	0x52: '\u2732', // a45
	0x53: '\u2733', // a46
	0x54: '\u2734', // a47
	0x55: '\u2735', // a48
	0x56: '\u2736', // a49
	0x57: '\u2737', // a50
	0x58: '\u2738', // a51
	0x59: '\u2739', // a52
	0x5a: '\u273a', // a53
	0x5b: '\u273b', // a54
	0x5c: '\u273c', // a55
	0x5d: '\u273d', // a56
	0x5e: '\u273e', // a57
	0x5f: '\u273f', // a58
	0x60: '\u2740', // a59
	0x61: '\u2741', // a60
	0x62: '\u2742', // a61
	0x63: '\u2743', // a62
	0x64: '\u2744', // a63
	0x65: '\u2745', // a64
	0x66: '\u2746', // a65
	0x67: '\u2747', // a66
	0x68: '\u2748', // a67
	0x69: '\u2749', // a68
	0x6a: '\u274a', // a69
	0x6b: '\u274b', // a70
	0x6c: '\u25cf', // a71
	0x6d: '\u274d', // a72
	0x6e: '\u25a0', // a73
	0x6f: '\u274f', // a74
	0x70: '\u2750', // a203
	0x71: '\u2751', // a75
	0x72: '\u2752', // a204
	0x73: '\u25b2', // a76
	0x74: '\u25bc', // a77
	0x75: '\u25c6', // a78
	0x76: '\u2756', // a79
	0x77: '\u25d7', // a81
	0x78: '\u2758', // a82
	0x79: '\u2759', // a83
	0x7a: '\u275a', // a84
	0x7b: '\u275b', // a97
	0x7c: '\u275c', // a98
	0x7d: '\u275d', // a99
	0x7e: '\u275e', // a100
	0x80: '\uf8d7', // a89
	0x81: '\uf8d8', // a90
	0x82: '\uf8d9', // a93
	0x83: '\uf8da', // a94
	0x84: '\uf8db', // a91
	0x85: '\uf8dc', // a92
	0x86: '\uf8dd', // a205
	0x87: '\uf8de', // a85
	0x88: '\uf8df', // a206
	0x89: '\uf8e0', // a86
	0x8a: '\uf8e1', // a87
	0x8b: '\uf8e2', // a88
	0x8c: '\uf8e3', // a95
	0x8d: '\uf8e4', // a96
	0xa1: '\u2761', // a101
	0xa2: '\u2762', // a102
	0xa3: '\u2763', // a103
	0xa4: '\u2764', // a104
	0xa5: '\u2765', // a106
	0xa6: '\u2766', // a107
	0xa7: '\u2767', // a108
	0xa8: '\u2663', // a112
	0xa9: '\u2666', // a111
	0xaa: '\u2665', // a110
	0xab: '\u2660', // a109
	0xac: '\u2460', // a120
	0xad: '\u2461', // a121
	0xae: '\u2462', // a122
	0xaf: '\u2463', // a123
	0xb0: '\u2464', // a124
	0xb1: '\u2465', // a125
	0xb2: '\u2466', // a126
	0xb3: '\u2467', // a127
	0xb4: '\u2468', // a128
	0xb5: '\u2469', // a129
	0xb6: '\u2776', // a130
	0xb7: '\u2777', // a131
	0xb8: '\u2778', // a132
	0xb9: '\u2779', // a133
	0xba: '\u277a', // a134
	0xbb: '\u277b', // a135
	0xbc: '\u277c', // a136
	0xbd: '\u277d', // a137
	0xbe: '\u277e', // a138
	0xbf: '\u277f', // a139
	0xc0: '\u2780', // a140
	0xc1: '\u2781', // a141
	0xc2: '\u2782', // a142
	0xc3: '\u2783', // a143
	0xc4: '\u2784', // a144
	0xc5: '\u2785', // a145
	0xc6: '\u2786', // a146
	0xc7: '\u2787', // a147
	0xc8: '\u2788', // a148
	0xc9: '\u2789', // a149
	0xca: '\u278a', // a150
	0xcb: '\u278b', // a151
	0xcc: '\u278c', // a152
	0xcd: '\u278d', // a153
	0xce: '\u278e', // a154
	0xcf: '\u278f', // a155
	0xd0: '\u2790', // a156
	0xd1: '\u2791', // a157
	0xd2: '\u2792', // a158
	0xd3: '\u2793', // a159
	0xd4: '\u2794', // a160
	0xd5: '\u2192', // a161
	0xd6: '\u2194', // a163
	0xd7: '\u2195', // a164
	0xd8: '\u2798', // a196
	0xd9: '\u2799', // a165
	0xda: '\u279a', // a192
	0xdb: '\u279b', // a166
	0xdc: '\u279c', // a167
	0xdd: '\u279d', // a168
	0xde: '\u279e', // a169
	0xdf: '\u279f', // a170
	0xe0: '\u27a0', // a171
	0xe1: '\u27a1', // a172
	0xe2: '\u27a2', // a173
	0xe3: '\u27a3', // a162
	0xe4: '\u27a4', // a174
	0xe5: '\u27a5', // a175
	0xe6: '\u27a6', // a176
	0xe7: '\u27a7', // a177
	0xe8: '\u27a8', // a178
	0xe9: '\u27a9', // a179
	0xea: '\u27aa', // a193
	0xeb: '\u27ab', // a180
	0xec: '\u27ac', // a199
	0xed: '\u27ad', // a181
	0xee: '\u27ae', // a200
	0xef: '\u27af', // a182
	0xf1: '\u27b1', // a201
	0xf2: '\u27b2', // a183
	0xf3: '\u27b3', // a184
	0xf4: '\u27b4', // a197
	0xf5: '\u27b5', // a185
	0xf6: '\u27b6', // a194
	0xf7: '\u27b7', // a198
	0xf8: '\u27b8', // a186
	0xf9: '\u27b9', // a195
	0xfa: '\u27ba', // a187
	0xfb: '\u27bb', // a188
	0xfc: '\u27bc', // a189
	0xfd: '\u27bd', // a190
	0xfe: '\u27be', // a191
}
