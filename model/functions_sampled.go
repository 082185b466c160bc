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
	"github.com/lazypdf/lazypdf/internal/sampling"
)

// PdfFunctionType0 uses a sequence of sample values (contained in a stream) to provide an
// approximation for functions whose domains and ranges are bounded. The samples are organized as
// an m-dimensional table in which each entry has n components.
type PdfFunctionType0 struct {
	Domain []float64 // required; 2*m length; where m is the number of input values
	Range  []float64 // required (type 0); 2*n length; where n is the number of output values

	NumInputs  int
	NumOutputs int

	Size          []int
	BitsPerSample int
	Order         int // Values 1 or 3 (linear or cubic spline interpolation)
	Encode        []float64
	Decode        []float64

	rawData []byte
	data    []uint32

	container *core.PdfObjectStream
}

// newPdfFunctionType0FromStream constructs the function from a stream object (typically loaded
// from a PDF file).
func newPdfFunctionType0FromStream(stream *core.PdfObjectStream) (*PdfFunctionType0, error) {
	fun := &PdfFunctionType0{container: stream}
	dict := stream.PdfObjectDictionary

	domain, err := requiredDomain(dict)
	if err != nil {
		return nil, err
	}
	fun.Domain = domain
	fun.NumInputs = len(domain) / 2

	rang, err := requiredRange(dict)
	if err != nil {
		return nil, err
	}
	fun.Range = rang
	fun.NumOutputs = len(rang) / 2

	if err := fun.loadSize(dict); err != nil {
		return nil, err
	}
	if err := fun.loadBitsPerSample(dict); err != nil {
		return nil, err
	}
	fun.loadOrder(dict)

	// Encode: a 2*m array specifying the linear mapping of input values into the domain of the
	// function's sample table.
	if array, has := core.TraceToDirectObject(dict.Get("Encode")).(*core.PdfObjectArray); has {
		encode, err := array.ToFloat64Array()
		if err != nil {
			return nil, err
		}
		fun.Encode = encode
	}

	if array, has := core.TraceToDirectObject(dict.Get("Decode")).(*core.PdfObjectArray); has {
		decode, err := array.ToFloat64Array()
		if err != nil {
			return nil, err
		}
		fun.Decode = decode
	}

	data, err := core.DecodeStream(stream)
	if err != nil {
		return nil, err
	}
	fun.rawData = data

	return fun, nil
}

// requiredRange reads the required /Range entry as an even-length float64 slice.
func requiredRange(dict *core.PdfObjectDictionary) ([]float64, error) {
	array, has := core.TraceToDirectObject(dict.Get("Range")).(*core.PdfObjectArray)
	if !has {
		common.Log.Error("Range not specified")
		return nil, errors.New("required attribute missing or invalid")
	}
	return evenLengthFloatArray(array, "invalid range")
}

// loadSize reads the required /Size entry: the number of samples in each input dimension.
func (f *PdfFunctionType0) loadSize(dict *core.PdfObjectDictionary) error {
	array, has := core.TraceToDirectObject(dict.Get("Size")).(*core.PdfObjectArray)
	if !has {
		common.Log.Error("Size not specified")
		return errors.New("required attribute missing or invalid")
	}
	tablesize, err := array.ToIntegerArray()
	if err != nil {
		return err
	}
	if len(tablesize) != f.NumInputs {
		common.Log.Error("Table size not matching number of inputs")
		return errors.New("range check")
	}
	f.Size = tablesize
	return nil
}

// loadBitsPerSample reads and validates the required /BitsPerSample entry.
func (f *PdfFunctionType0) loadBitsPerSample(dict *core.PdfObjectDictionary) error {
	bps, has := core.TraceToDirectObject(dict.Get("BitsPerSample")).(*core.PdfObjectInteger)
	if !has {
		common.Log.Error("BitsPerSample not specified")
		return errors.New("required attribute missing or invalid")
	}
	switch *bps {
	case 1, 2, 4, 8, 12, 16, 24, 32:
		f.BitsPerSample = int(*bps)
		return nil
	default:
		common.Log.Error("Bits per sample outside range (%d)", *bps)
		return errors.New("range check")
	}
}

// loadOrder reads the optional /Order entry, defaulting to 1 (linear interpolation).
func (f *PdfFunctionType0) loadOrder(dict *core.PdfObjectDictionary) {
	f.Order = 1
	order, has := core.TraceToDirectObject(dict.Get("Order")).(*core.PdfObjectInteger)
	if !has {
		return
	}
	if *order != 1 && *order != 3 {
		common.Log.Error("Invalid order (%d)", *order)
		return
	}
	f.Order = int(*order)
}

// ToPdfObject returns the PDF representation of the function.
func (f *PdfFunctionType0) ToPdfObject() core.PdfObject {
	if f.container == nil {
		f.container = &core.PdfObjectStream{}
	}

	dict := core.MakeDict()
	dict.Set("FunctionType", core.MakeInteger(0))

	// Domain (required).
	domainArray := &core.PdfObjectArray{}
	for _, val := range f.Domain {
		domainArray.Append(core.MakeFloat(val))
	}
	dict.Set("Domain", domainArray)

	// Range (required).
	rangeArray := &core.PdfObjectArray{}
	for _, val := range f.Range {
		rangeArray.Append(core.MakeFloat(val))
	}
	dict.Set("Range", rangeArray)

	// Size (required).
	sizeArray := &core.PdfObjectArray{}
	for _, val := range f.Size {
		sizeArray.Append(core.MakeInteger(int64(val)))
	}
	dict.Set("Size", sizeArray)

	dict.Set("BitsPerSample", core.MakeInteger(int64(f.BitsPerSample)))

	if f.Order != 1 {
		dict.Set("Order", core.MakeInteger(int64(f.Order)))
	}

	// TODO: Encode.
	// Either here, or automatically later on when writing out.
	dict.Set("Length", core.MakeInteger(int64(len(f.rawData))))
	f.container.Stream = f.rawData

	f.container.PdfObjectDictionary = dict
	return f.container
}

// Evaluate runs the function on the passed in slice and returns the results.
func (f *PdfFunctionType0) Evaluate(x []float64) ([]float64, error) {
	if len(x) != f.NumInputs {
		common.Log.Error("Number of inputs not matching what is needed")
		return nil, errors.New("range check error")
	}

	if f.data == nil {
		// Process the samples if not already done.
		if err := f.processSamples(); err != nil {
			return nil, err
		}
	}

	// Fall back to default Encode/Decode params if not set.
	encode := f.Encode
	if encode == nil {
		encode = []float64{}
		for i := 0; i < len(f.Size); i++ {
			encode = append(encode, 0)
			encode = append(encode, float64(f.Size[i]-1))
		}
	}
	decode := f.Decode
	if decode == nil {
		decode = f.Range
	}

	indices := f.nearestIndices(x, encode)

	// Calculate the index into the flattened sample table.
	m := indices[0]
	for i := 1; i < f.NumInputs; i++ {
		add := indices[i]
		for j := 0; j < i; j++ {
			add *= f.Size[j]
		}
		m += add
	}
	m *= f.NumOutputs

	// Output values.
	var outputs []float64
	for j := 0; j < f.NumOutputs; j++ {
		rjIdx := m + j
		if rjIdx >= len(f.data) {
			common.Log.Debug("WARN: not enough input samples to determine output values. Output may be incorrect.")
			continue
		}

		rj := f.data[rjIdx]
		rjp := interpolate(float64(rj), 0, math.Pow(2, float64(f.BitsPerSample)), decode[2*j], decode[2*j+1])
		yj := math.Min(math.Max(rjp, f.Range[2*j]), f.Range[2*j+1])
		outputs = append(outputs, yj)
	}

	return outputs, nil
}

// nearestIndices maps each input value into a nearest-neighbour index into the sample table. See
// section 7.10.2 Type 0 (Sampled) Functions (pp. 93-94 PDF32000_2008).
//
// Initial implementation is simply nearest neighbour; linear and bicubic/spline interpolation
// (selected by Order) are not yet implemented.
func (f *PdfFunctionType0) nearestIndices(x, encode []float64) []int {
	var indices []int
	for i := 0; i < len(x); i++ {
		xi := x[i]

		xip := math.Min(math.Max(xi, f.Domain[2*i]), f.Domain[2*i+1])
		ei := interpolate(xip, f.Domain[2*i], f.Domain[2*i+1], encode[2*i], encode[2*i+1])
		eip := math.Min(math.Max(ei, 0), float64(f.Size[i]-1))
		// eip represents coordinate into the data table, as a real value at this point.

		index := int(math.Floor(eip + 0.5))
		if index < 0 {
			index = 0
		} else if index > f.Size[i] {
			index = f.Size[i] - 1
		}
		indices = append(indices, index)
	}
	return indices
}

// processSamples converts raw data to the data table. The maximum supported BitsPerSample is 32,
// so the resulting data is stored in a uint32 array; wasteful for a small BitsPerSample, but these
// tables are presumably not huge at any rate.
func (f *PdfFunctionType0) processSamples() error {
	f.data = sampling.ResampleBytes(f.rawData, f.BitsPerSample)
	return nil
}
