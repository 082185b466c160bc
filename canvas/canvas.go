/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package canvas

import (
	"github.com/lazypdf/lazypdf/contentstream"
	"github.com/lazypdf/lazypdf/core"
	"github.com/lazypdf/lazypdf/model"
)

// Canvas is a per-page accumulator filled in by the content-stream interpreter during render. It
// is reset fresh on every Viewer.navigate, so results from one page never leak into the next.
type Canvas struct {
	// Strings holds the decoded Unicode fragments produced by text-showing operators, in
	// content-stream order, left-to-right within a TJ array.
	Strings []string

	// InlineImages holds the inline images (BI...ID...EI) encountered, in encounter order.
	InlineImages []*InlineImage

	// Images holds the Image XObjects invoked via Do, in encounter order, with Form XObject
	// contents interleaved at the point of the invoking Do (preorder).
	Images []*Image

	// Forms holds the Form XObjects invoked via Do, in encounter order.
	Forms []*Form

	// TextContent is a reproduction of the page's content stream with string operands to
	// text-showing operators replaced by their decoded Unicode form.
	TextContent string
}

func newCanvas() *Canvas {
	return &Canvas{}
}

// Image is a decoded view over an Image XObject invoked by a page's content stream.
type Image struct {
	Name             string
	Width            int64
	Height           int64
	BitsPerComponent int64
	ColorSpace       string
	Filter           string
	DecodeParms      core.PdfObject

	ximg *model.XObjectImage
}

// DecodedBytes applies the image's filter pipeline to its raw payload. DCTDecode and JBIG2Decode
// are pass-through filters here: the returned bytes are the still-encoded JPEG/JBIG2 payload
// rather than rasterized samples, matching core.DecodeStream's treatment of those two filters.
func (img *Image) DecodedBytes() ([]byte, error) {
	switch img.Filter {
	case core.StreamEncodingFilterNameDCT, core.StreamEncodingFilterNameJBIG2:
		return img.ximg.Stream, nil
	}
	return img.ximg.Filter.DecodeBytes(img.ximg.Stream)
}

func newImage(name string, ximg *model.XObjectImage) *Image {
	img := &Image{Name: name, ximg: ximg}
	if ximg.Width != nil {
		img.Width = *ximg.Width
	}
	if ximg.Height != nil {
		img.Height = *ximg.Height
	}
	if ximg.BitsPerComponent != nil {
		img.BitsPerComponent = *ximg.BitsPerComponent
	}
	if ximg.ColorSpace != nil {
		img.ColorSpace = ximg.ColorSpace.String()
	}
	if ximg.Filter != nil {
		img.Filter = ximg.Filter.GetFilterName()
	}
	if stream, ok := ximg.GetContainingPdfObject().(*core.PdfObjectStream); ok {
		img.DecodeParms = stream.Get("DecodeParms")
		if img.DecodeParms == nil {
			img.DecodeParms = stream.Get("DP")
		}
	}
	return img
}

// InlineImage is a decoded view over an inline image (BI...ID...EI) encountered in a page's
// content stream.
type InlineImage struct {
	Width            int64
	Height           int64
	BitsPerComponent int64
	ColorSpace       string
	Filter           string
	DecodeParms      core.PdfObject

	raw *contentstream.ContentStreamInlineImage
}

// DecodedBytes applies the inline image's filter pipeline to its raw payload, with the same
// DCTDecode/JBIG2Decode pass-through treatment as Image.DecodedBytes.
func (img *InlineImage) DecodedBytes() ([]byte, error) {
	return img.raw.DecodedBytes()
}

func newInlineImage(raw *contentstream.ContentStreamInlineImage, resources *model.PdfPageResources) *InlineImage {
	img := &InlineImage{raw: raw}

	if w, ok := core.GetIntVal(raw.Width); ok {
		img.Width = int64(w)
	}
	if h, ok := core.GetIntVal(raw.Height); ok {
		img.Height = int64(h)
	}
	if bpc, ok := core.GetIntVal(raw.BitsPerComponent); ok {
		img.BitsPerComponent = int64(bpc)
	} else {
		img.BitsPerComponent = 8
	}
	if cs, err := raw.GetColorSpace(resources); err == nil && cs != nil {
		img.ColorSpace = cs.String()
	}
	if enc, err := raw.GetEncoder(); err == nil && enc != nil {
		img.Filter = enc.GetFilterName()
	}
	img.DecodeParms = raw.DecodeParms

	return img
}

// Form is a record of a Form XObject invocation encountered via Do. Its content stream has
// already been interpreted recursively into the same Canvas by the time it appears here.
type Form struct {
	Name string
}
