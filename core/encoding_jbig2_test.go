/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestJBIG2DecodeStreamPassthrough checks that JBIG2Decode leaves the raw
// stream payload untouched, mirroring the DCTDecode treatment.
func TestJBIG2DecodeStreamPassthrough(t *testing.T) {
	raw := []byte{0x00, 0x01, 0x02, 0x03, 0xff}
	stream := &PdfObjectStream{
		PdfObjectDictionary: MakeDict(),
		Stream:              raw,
	}

	enc := &JBIG2Encoder{}
	decoded, err := enc.DecodeStream(stream)
	require.NoError(t, err)
	assert.Equal(t, raw, decoded)
}

func TestJBIG2ChocolateData(t *testing.T) {
	enc := &JBIG2Encoder{}
	enc.setChocolateData(MakeArray(MakeFloat(1.0), MakeFloat(0.0)))
	assert.True(t, enc.IsChocolateData)

	enc.setChocolateData(MakeArray(MakeFloat(0.0), MakeFloat(1.0)))
	assert.False(t, enc.IsChocolateData)
}

func TestNewJBIG2DecoderFromStreamGlobals(t *testing.T) {
	globalsStream := &PdfObjectStream{
		PdfObjectDictionary: MakeDict(),
		Stream:              []byte{0xAA, 0xBB},
	}
	parms := MakeDict()
	parms.Set("JBIG2Globals", globalsStream)

	stream := &PdfObjectStream{
		PdfObjectDictionary: MakeDict(),
		Stream:              []byte{0x01},
	}
	stream.Set("DecodeParms", parms)

	enc, err := newJBIG2DecoderFromStream(stream, nil)
	require.NoError(t, err)
	assert.Equal(t, globalsStream.Stream, enc.Globals)
}
