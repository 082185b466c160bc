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
	RegisterStdFont(ZapfDingbatsName, newFontZapfDingbats)
}

// ZapfDingbatsName is a PDF name of the ZapfDingbats font.
const ZapfDingbatsName = StdFontName("ZapfDingbats")

// newFontZapfDingbats returns a new instance of the font with the font's built-in encoder.
func newFontZapfDingbats() StdFont {
	desc := Descriptor{
		Name:        ZapfDingbatsName,
		Family:      string(ZapfDingbatsName),
		Weight:      FontWeightMedium,
		Flags:       0x0004,
		BBox:        [4]float64{-1, -143, 981, 820},
		ItalicAngle: 0,
		Ascent:      0,
		Descent:     0,
		CapHeight:   0,
		XHeight:     0,
		StemV:       90,
		StemH:       28,
	}
	return NewStdFontWithEncoding(desc, zapfDingbatsCharMetrics, textencoding.NewZapfDingbatsEncoder())
}

// zapfDingbatsCharMetrics are the font metrics loaded from afms/ZapfDingbats.afm.
// See afms/MustRead.html for license information.
var zapfDingbatsCharMetrics = map[rune]CharMetrics{
	'\u0020': {Wx: 278}, // space
	'\u2701': {Wx: 974}, // a1
	'\u2702': {Wx: 961}, // a2
	'\u2703': {Wx: 974}, // a202
	'\u2704': {Wx: 980}, // a3
	'\u260e': {Wx: 719}, // a4
	'\u2706': {Wx: 789}, // a5
	'\u2707': {Wx: 790}, // a119
	'\u2708': {Wx: 791}, // a118
	'\u2709': {Wx: 690}, // a117
	'\u261b': {Wx: 960}, // a11
	'\u261e': {Wx: 939}, // a12
	'\u270c': {Wx: 549}, // a13
	'\u270d': {Wx: 855}, // a14
	'\u270e': {Wx: 911}, // a15
	'\u270f': {Wx: 933}, // a16
	'\u2710': {Wx: 911}, // a105
	'\u2711': {Wx: 945}, // a17
	'\u2712': {Wx: 974}, // a18
	'\u2713': {Wx: 755}, // a19
	'\u2714': {Wx: 846}, // a20
	'\u2715': {Wx: 762}, // a21
	'\u2716': {Wx: 761}, // a22
	'\u2717': {Wx: 571}, // a23
	'\u2718': {Wx: 677}, // a24
	'\u2719': {Wx: 763}, // a25
	'\u271a': {Wx: 760}, // a26
	'\u271b': {Wx: 759}, // a27
	'\u271c': {Wx: 754}, // a28
	'\u271d': {Wx: 494}, // a6
	'\u271e': {Wx: 552}, // a7
	'\u271f': {Wx: 537}, // a8
	'\u2720': {Wx: 577}, // a9
	'\u2721': {Wx: 692}, // a10
	'\u2722': {Wx: 786}, // a29
	'\u2723': {Wx: 788}, // a30
	'\u2724': {Wx: 788}, // a31
	'\u2725': {Wx: 790}, // a32
	'\u2726': {Wx: 793}, // a33
	'\u2727': {Wx: 794}, // a34
	'\u2605': {Wx: 816}, // a35
	'\u2729': {Wx: 823}, // a36
	'\u272a': {Wx: 789}, // a37
	'\u272b': {Wx: 841}, // a38
	'\u272c': {Wx: 823}, // a39
	'\u272d': {Wx: 833}, // a40
	'\u272e': {Wx: 816}, // a41
	'\u272f': {Wx: 831}, // a42
	'\u2730': {Wx: 923}, // a43
	'\u2731': {Wx: 744}, // a44
	'\u2732': {Wx: 723}, // a45
	'\u2733': {Wx: 749}, // a46
	'\u2734': {Wx: 790}, // a47
	'\u2735': {Wx: 792}, // a48
	'\u2736': {Wx: 695}, // a49
	'\u2737': {Wx: 776}, // a50
	'\u2738': {Wx: 768}, // a51
	'\u2739': {Wx: 792}, // a52
	'\u273a': {Wx: 759}, // a53
	'\u273b': {Wx: 707}, // a54
	'\u273c': {Wx: 708}, // a55
	'\u273d': {Wx: 682}, // a56
	'\u273e': {Wx: 701}, // a57
	'\u273f': {Wx: 826}, // a58
	'\u2740': {Wx: 815}, // a59
	'\u2741': {Wx: 789}, // a60
	'\u2742': {Wx: 789}, // a61
	'\u2743': {Wx: 707}, // a62
	'\u2744': {Wx: 687}, // a63
	'\u2745': {Wx: 696}, // a64
	'\u2746': {Wx: 689}, // a65
	'\u2747': {Wx: 786}, // a66
	'\u2748': {Wx: 787}, // a67
	'\u2749': {Wx: 713}, // a68
	'\u274a': {Wx: 791}, // a69
	'\u274b': {Wx: 785}, // a70
	'\u25cf': {Wx: 791}, // a71
	'\u274d': {Wx: 873}, // a72
	'\u25a0': {Wx: 761}, // a73
	'\u274f': {Wx: 762}, // a74
	'\u2750': {Wx: 762}, // a203
	'\u2751': {Wx: 759}, // a75
	'\u2752': {Wx: 759}, // a204
	'\u25b2': {Wx: 892}, // a76
	'\u25bc': {Wx: 892}, // a77
	'\u25c6': {Wx: 788}, // a78
	'\u2756': {Wx: 784}, // a79
	'\u25d7': {Wx: 438}, // a81
	'\u2758': {Wx: 138}, // a82
	'\u2759': {Wx: 277}, // a83
	'\u275a': {Wx: 415}, // a84
	'\u275b': {Wx: 392}, // a97
	'\u275c': {Wx: 392}, // a98
	'\u275d': {Wx: 668}, // a99
	'\u275e': {Wx: 668}, // a100
	'\uf8d7': {Wx: 390}, // a89
	'\uf8d8': {Wx: 390}, // a90
	'\uf8d9': {Wx: 317}, // a93
	'\uf8da': {Wx: 317}, // a94
	'\uf8db': {Wx: 276}, // a91
	'\uf8dc': {Wx: 276}, // a92
	'\uf8dd': {Wx: 509}, // a205
	'\uf8de': {Wx: 509}, // a85
	'\uf8df': {Wx: 410}, // a206
	'\uf8e0': {Wx: 410}, // a86
	'\uf8e1': {Wx: 234}, // a87
	'\uf8e2': {Wx: 234}, // a88
	'\uf8e3': {Wx: 334}, // a95
	'\uf8e4': {Wx: 334}, // a96
	'\u2761': {Wx: 732}, // a101
	'\u2762': {Wx: 544}, // a102
	'\u2763': {Wx: 544}, // a103
	'\u2764': {Wx: 910}, // a104
	'\u2765': {Wx: 667}, // a106
	'\u2766': {Wx: 760}, // a107
	'\u2767': {Wx: 760}, // a108
	'\u2663': {Wx: 776}, // a112
	'\u2666': {Wx: 595}, // a111
	'\u2665': {Wx: 694}, // a110
	'\u2660': {Wx: 626}, // a109
	'\u2460': {Wx: 788}, // a120
	'\u2461': {Wx: 788}, // a121
	'\u2462': {Wx: 788}, // a122
	'\u2463': {Wx: 788}, // a123
	'\u2464': {Wx: 788}, // a124
	'\u2465': {Wx: 788}, // a125
	'\u2466': {Wx: 788}, // a126
	'\u2467': {Wx: 788}, // a127
	'\u2468': {Wx: 788}, // a128
	'\u2469': {Wx: 788}, // a129
	'\u2776': {Wx: 788}, // a130
	'\u2777': {Wx: 788}, // a131
	'\u2778': {Wx: 788}, // a132
	'\u2779': {Wx: 788}, // a133
	'\u277a': {Wx: 788}, // a134
	'\u277b': {Wx: 788}, // a135
	'\u277c': {Wx: 788}, // a136
	'\u277d': {Wx: 788}, // a137
	'\u277e': {Wx: 788}, // a138
	'\u277f': {Wx: 788}, // a139
	'\u2780': {Wx: 788}, // a140
	'\u2781': {Wx: 788}, // a141
	'\u2782': {Wx: 788}, // a142
	'\u2783': {Wx: 788}, // a143
	'\u2784': {Wx: 788}, // a144
	'\u2785': {Wx: 788}, // a145
	'\u2786': {Wx: 788}, // a146
	'\u2787': {Wx: 788}, // a147
	'\u2788': {Wx: 788}, // a148
	'\u2789': {Wx: 788}, // a149
	'\u278a': {Wx: 788}, // a150
	'\u278b': {Wx: 788}, // a151
	'\u278c': {Wx: 788}, // a152
	'\u278d': {Wx: 788}, // a153
	'\u278e': {Wx: 788}, // a154
	'\u278f': {Wx: 788}, // a155
	'\u2790': {Wx: 788}, // a156
	'\u2791': {Wx: 788}, // a157
	'\u2792': {Wx: 788}, // a158
	'\u2793': {Wx: 788}, // a159
	'\u2794': {Wx: 894}, // a160
	'\u2192': {Wx: 838}, // a161
	'\u2194': {Wx: 1016}, // a163
	'\u2195': {Wx: 458}, // a164
	'\u2798': {Wx: 748}, // a196
	'\u2799': {Wx: 924}, // a165
	'\u279a': {Wx: 748}, // a192
	'\u279b': {Wx: 918}, // a166
	'\u279c': {Wx: 927}, // a167
	'\u279d': {Wx: 928}, // a168
	'\u279e': {Wx: 928}, // a169
	'\u279f': {Wx: 834}, // a170
	'\u27a0': {Wx: 873}, // a171
	'\u27a1': {Wx: 828}, // a172
	'\u27a2': {Wx: 924}, // a173
	'\u27a3': {Wx: 924}, // a162
	'\u27a4': {Wx: 917}, // a174
	'\u27a5': {Wx: 930}, // a175
	'\u27a6': {Wx: 931}, // a176
	'\u27a7': {Wx: 463}, // a177
	'\u27a8': {Wx: 883}, // a178
	'\u27a9': {Wx: 836}, // a179
	'\u27aa': {Wx: 836}, // a193
	'\u27ab': {Wx: 867}, // a180
	'\u27ac': {Wx: 867}, // a199
	'\u27ad': {Wx: 696}, // a181
	'\u27ae': {Wx: 696}, // a200
	'\u27af': {Wx: 874}, // a182
	'\u27b1': {Wx: 874}, // a201
	'\u27b2': {Wx: 760}, // a183
	'\u27b3': {Wx: 946}, // a184
	'\u27b4': {Wx: 771}, // a197
	'\u27b5': {Wx: 865}, // a185
	'\u27b6': {Wx: 771}, // a194
	'\u27b7': {Wx: 888}, // a198
	'\u27b8': {Wx: 967}, // a186
	'\u27b9': {Wx: 888}, // a195
	'\u27ba': {Wx: 831}, // a187
	'\u27bb': {Wx: 873}, // a188
	'\u27bc': {Wx: 927}, // a189
	'\u27bd': {Wx: 970}, // a190
	'\u27be': {Wx: 918}, // a191
}
