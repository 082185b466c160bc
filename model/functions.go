/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

import (
	"errors"
	"math"

	"github.com/lazypdf/lazypdf/common"
	"github.com/lazypdf/lazypdf/core"
)

// PdfFunction interface represents the common methods of a function in PDF.
type PdfFunction interface {
	Evaluate([]float64) ([]float64, error)
	ToPdfObject() core.PdfObject
}

// In PDF: A function object may be a dictionary or a stream, depending on the type of function.
// - Stream: Type 0, Type 4
// - Dictionary: Type 2, Type 3.

// newPdfFunctionFromPdfObject loads a PDF Function from a PdfObject: a stream for types 0 and 4,
// a dictionary (direct or indirect) for types 2 and 3.
func newPdfFunctionFromPdfObject(obj core.PdfObject) (PdfFunction, error) {
	obj = core.ResolveReference(obj)
	if stream, is := obj.(*core.PdfObjectStream); is {
		return newStreamFunction(stream)
	}

	dict, _, err := dictionaryOrIndirect(obj)
	if err != nil {
		common.Log.Debug("Function Type error: %#v", obj)
		return nil, errors.New("type error")
	}
	return newDictFunction(obj, dict)
}

// newStreamFunction dispatches a stream-backed function object (types 0 and 4) to its constructor.
func newStreamFunction(stream *core.PdfObjectStream) (PdfFunction, error) {
	ftype, err := functionType(stream.PdfObjectDictionary)
	if err != nil {
		return nil, err
	}

	switch ftype {
	case 0:
		return newPdfFunctionType0FromStream(stream)
	case 4:
		return newPdfFunctionType4FromStream(stream)
	default:
		return nil, errors.New("invalid function type")
	}
}

// newDictFunction dispatches a dictionary-backed function object (types 2 and 3) to its
// constructor, passing the original obj so the constructed function can keep the indirect
// container if there was one.
func newDictFunction(obj core.PdfObject, dict *core.PdfObjectDictionary) (PdfFunction, error) {
	ftype, err := functionType(dict)
	if err != nil {
		return nil, err
	}

	switch ftype {
	case 2:
		return newPdfFunctionType2FromPdfObject(obj)
	case 3:
		return newPdfFunctionType3FromPdfObject(obj)
	default:
		return nil, errors.New("invalid function type")
	}
}

// functionType reads and validates the required /FunctionType entry.
func functionType(dict *core.PdfObjectDictionary) (int64, error) {
	ftype, ok := dict.Get("FunctionType").(*core.PdfObjectInteger)
	if !ok {
		common.Log.Error("FunctionType number missing")
		return 0, errors.New("invalid parameter or missing")
	}
	return int64(*ftype), nil
}

// dictionaryOrIndirect unwraps obj into its dictionary, reporting the PdfIndirectObject container
// if there was one so callers needing to round-trip ToPdfObject can keep it.
func dictionaryOrIndirect(obj core.PdfObject) (*core.PdfObjectDictionary, *core.PdfIndirectObject, error) {
	switch t := obj.(type) {
	case *core.PdfIndirectObject:
		d, ok := t.PdfObject.(*core.PdfObjectDictionary)
		if !ok {
			return nil, nil, errors.New("type check error")
		}
		return d, t, nil
	case *core.PdfObjectDictionary:
		return t, nil, nil
	default:
		return nil, nil, errors.New("type check error")
	}
}

// evenLengthFloatArray converts arr to a float64 slice, requiring an even length since PDF
// function Domain/Range/Encode/Decode arrays always come in (min, max) pairs.
func evenLengthFloatArray(arr *core.PdfObjectArray, errMsg string) ([]float64, error) {
	if arr.Len() < 0 || arr.Len()%2 != 0 {
		return nil, errors.New(errMsg)
	}
	return arr.ToFloat64Array()
}

// requiredDomain reads the required /Domain entry as an even-length float64 slice.
func requiredDomain(dict *core.PdfObjectDictionary) ([]float64, error) {
	array, has := core.TraceToDirectObject(dict.Get("Domain")).(*core.PdfObjectArray)
	if !has {
		common.Log.Error("Domain not specified")
		return nil, errors.New("required attribute missing or invalid")
	}
	domain, err := evenLengthFloatArray(array, "invalid domain range")
	if err != nil {
		common.Log.Error("Domain invalid")
	}
	return domain, err
}

// optionalRange reads the optional /Range entry as an even-length float64 slice, returning nil,
// nil if absent.
func optionalRange(dict *core.PdfObjectDictionary) ([]float64, error) {
	array, has := core.TraceToDirectObject(dict.Get("Range")).(*core.PdfObjectArray)
	if !has {
		return nil, nil
	}
	return evenLengthFloatArray(array, "invalid range")
}

// interpolate performs the simple linear interpolation from PDF32000-1:2008 7.10.5.
func interpolate(x, xmin, xmax, ymin, ymax float64) float64 {
	if math.Abs(xmax-xmin) < 0.000001 {
		return ymin
	}

	y := ymin + (x-xmin)*(ymax-ymin)/(xmax-xmin)
	return y
}
