/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package core

import (
	"github.com/lazypdf/lazypdf/common"
)

// JBIG2Encoder implements the StreamEncoder interface for the JBIG2Decode filter.
// JBIG2 bitmap reconstruction is outside the reading core (no rasterization, see
// Non-goals): DecodeStream returns the stream's raw payload unchanged, the same
// treatment DCTDecode gets. Globals and the chocolate-data flag are still parsed
// from the stream dictionary so that callers inspecting an Image XObject's
// DecodeParms see the values a JBIG2-aware caller would need.
type JBIG2Encoder struct {
	// Globals holds the raw bytes of the JBIG2Globals stream referenced from
	// DecodeParms, when present. Undecoded, for the same reason as the image
	// payload itself.
	Globals []byte
	// IsChocolateData reports whether the stream's Decode array inverts bit
	// polarity ('/Decode [1.0 0.0]', PDF32000:2008 7.10.2): binary '1' means
	// black rather than white.
	IsChocolateData bool
}

// DecodeBytes returns encoded unchanged: JBIG2 bitmap decoding is not implemented.
func (enc *JBIG2Encoder) DecodeBytes(encoded []byte) ([]byte, error) {
	return encoded, nil
}

// DecodeStream returns a JBIG2 encoded stream's payload unchanged. Like DCTDecode,
// JBIG2Decode is a pass-through filter here.
func (enc *JBIG2Encoder) DecodeStream(streamObj *PdfObjectStream) ([]byte, error) {
	return streamObj.Stream, nil
}

// EncodeBytes returns data unchanged: the core never writes PDFs.
func (enc *JBIG2Encoder) EncodeBytes(data []byte) ([]byte, error) {
	return data, nil
}

// GetFilterName returns the name of the encoding filter.
func (enc *JBIG2Encoder) GetFilterName() string {
	return StreamEncodingFilterNameJBIG2
}

// MakeDecodeParams makes a new instance of an encoding dictionary based on the current encoder settings.
func (enc *JBIG2Encoder) MakeDecodeParams() PdfObject {
	return MakeDict()
}

// MakeStreamDict makes a new instance of an encoding dictionary for a stream object.
func (enc *JBIG2Encoder) MakeStreamDict() *PdfObjectDictionary {
	dict := MakeDict()
	if enc.IsChocolateData {
		dict.Set("Decode", MakeArray(MakeFloat(1.0), MakeFloat(0.0)))
	}
	dict.Set("Filter", MakeName(enc.GetFilterName()))
	return dict
}

// UpdateParams updates the parameter values of the encoder.
func (enc *JBIG2Encoder) UpdateParams(params *PdfObjectDictionary) {
	if decode := params.Get("Decode"); decode != nil {
		enc.setChocolateData(decode)
	}
}

// setChocolateData inspects a stream's /Decode array (PDF32000:2008 Table 39) and
// records whether bit polarity is inverted.
func (enc *JBIG2Encoder) setChocolateData(decode PdfObject) {
	arr, ok := decode.(*PdfObjectArray)
	if !ok {
		common.Log.Debug("JBIG2Encoder - Decode is not an array. %T", decode)
		return
	}

	vals, err := arr.GetAsFloat64Slice()
	if err != nil {
		common.Log.Debug("JBIG2Encoder unsupported Decode value. %s", arr.String())
		return
	}
	if len(vals) != 2 {
		return
	}

	first, second := int(vals[0]), int(vals[1])
	switch {
	case first == 1 && second == 0:
		enc.IsChocolateData = true
	case first == 0 && second == 1:
		enc.IsChocolateData = false
	default:
		common.Log.Debug("JBIG2Encoder unsupported DecodeParams->Decode value: %s", arr.String())
	}
}

func newJBIG2DecoderFromStream(streamObj *PdfObjectStream, decodeParams *PdfObjectDictionary) (*JBIG2Encoder, error) {
	const processName = "newJBIG2DecoderFromStream"
	encoder := &JBIG2Encoder{}
	encDict := streamObj.PdfObjectDictionary
	if encDict == nil {
		return encoder, nil
	}

	if decodeParams == nil {
		obj := encDict.Get("DecodeParms")
		if obj != nil {
			switch t := obj.(type) {
			case *PdfObjectDictionary:
				decodeParams = t
			case *PdfObjectArray:
				if t.Len() == 1 {
					if dp, ok := GetDict(t.Get(0)); ok {
						decodeParams = dp
					}
				}
			default:
				common.Log.Error("DecodeParams not a dictionary %#v", obj)
				return nil, ErrTypeError
			}
		}
	}

	if decodeParams != nil {
		if globals := decodeParams.Get("JBIG2Globals"); globals != nil {
			globalsStream, ok := globals.(*PdfObjectStream)
			if !ok {
				common.Log.Debug("ERROR: %s: jbig2.Globals stream should be an Object Stream", processName)
				return nil, ErrTypeError
			}
			encoder.Globals = globalsStream.Stream
		}
	}

	if decode := streamObj.Get("Decode"); decode != nil {
		encoder.setChocolateData(decode)
	}
	return encoder, nil
}
