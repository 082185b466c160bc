/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package canvas

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lazypdf/lazypdf/contentstream"
	"github.com/lazypdf/lazypdf/core"
	"github.com/lazypdf/lazypdf/internal/transform"
	"github.com/lazypdf/lazypdf/model"
)

// maxFormDepth bounds recursive Form XObject evaluation. A form invoking itself, directly or
// through a cycle of other forms, would otherwise recurse until the stack overflows.
const maxFormDepth = 12

// textObjectState tracks whether the interpreter is between BT and ET. Operators that only make
// sense inside a text object (Tj, Td, Tm, ...) are reported and ignored outside of one.
type textObjectState int

const (
	stateAtPage textObjectState = iota
	stateInText
)

// textState holds the text-showing parameters that Table 104 (PDF 32000-1:2008, 9.3) specifies as
// part of the graphics state. The processor's own GraphicsState does not track them, so the
// interpreter keeps a parallel stack pushed and popped alongside q/Q.
type textState struct {
	font        *model.PdfFont
	fontSize    float64
	charSpacing float64
	wordSpacing float64
	hscale      float64
	leading     float64
	renderMode  int64
	rise        float64
}

func defaultTextState() textState {
	return textState{hscale: 100}
}

// interpreter walks a page's content-stream operations, accumulating decoded text, images and form
// invocations into a Canvas. One interpreter is used per top-level render, and recurses into itself
// for nested Form XObjects.
type interpreter struct {
	doc    *Document
	canvas *Canvas

	ts      textState
	tsStack []textState

	object textObjectState
	tm     transform.Matrix
	tlm    transform.Matrix

	fonts map[core.PdfObjectName]*model.PdfFont

	depth int

	text strings.Builder
}

func newInterpreter(doc *Document, c *Canvas) *interpreter {
	return &interpreter{
		doc:    doc,
		canvas: c,
		ts:     defaultTextState(),
		fonts:  make(map[core.PdfObjectName]*model.PdfFont),
	}
}

// run parses contentStr and interprets it against resources, appending everything it produces to
// the interpreter's Canvas.
func (ip *interpreter) run(contentStr string, resources *model.PdfPageResources) error {
	parser := contentstream.NewContentStreamParser(contentStr)
	ops, err := parser.Parse()
	if err != nil {
		return fmt.Errorf("canvas: parsing content stream: %w", err)
	}

	proc := contentstream.NewContentStreamProcessor(*ops)
	proc.AddHandler(contentstream.HandlerConditionEnumAllOperands, "",
		func(op *contentstream.ContentStreamOperation, gs contentstream.GraphicsState, resources *model.PdfPageResources) error {
			return ip.handle(op, gs, resources)
		})

	return proc.Process(resources)
}

func (ip *interpreter) handle(op *contentstream.ContentStreamOperation, gs contentstream.GraphicsState, resources *model.PdfPageResources) error {
	ip.reproduce(op)

	switch op.Operand {
	case "Tj", "'", `"`, "TJ", "Td", "TD", "Tm", "T*":
		if ip.object != stateInText {
			return fmt.Errorf("canvas: %s outside a text object", op.Operand)
		}
	}

	switch op.Operand {
	case "q":
		ip.tsStack = append(ip.tsStack, ip.ts)
	case "Q":
		if n := len(ip.tsStack); n > 0 {
			ip.ts = ip.tsStack[n-1]
			ip.tsStack = ip.tsStack[:n-1]
		}

	case "BT":
		ip.object = stateInText
		ip.tm = transform.IdentityMatrix()
		ip.tlm = transform.IdentityMatrix()
	case "ET":
		ip.object = stateAtPage

	case "Tc":
		return ip.setFloatParam(op, 1, func(f []float64) { ip.ts.charSpacing = f[0] })
	case "Tw":
		return ip.setFloatParam(op, 1, func(f []float64) { ip.ts.wordSpacing = f[0] })
	case "Tz":
		return ip.setFloatParam(op, 1, func(f []float64) { ip.ts.hscale = f[0] })
	case "TL":
		return ip.setFloatParam(op, 1, func(f []float64) { ip.ts.leading = f[0] })
	case "Ts":
		return ip.setFloatParam(op, 1, func(f []float64) { ip.ts.rise = f[0] })
	case "Tr":
		return ip.setFloatParam(op, 1, func(f []float64) { ip.ts.renderMode = int64(f[0]) })

	case "Tf":
		return ip.handleTf(op, resources)

	case "Td":
		return ip.handleTd(op)
	case "TD":
		return ip.handleTD(op)
	case "Tm":
		return ip.handleTm(op)
	case "T*":
		return ip.nextLine()

	case "Tj":
		return ip.handleTj(op)
	case "'":
		if err := ip.nextLine(); err != nil {
			return err
		}
		return ip.handleTj(op)
	case `"`:
		return ip.handleDoubleQuote(op)
	case "TJ":
		return ip.handleTJ(op)

	case "Do":
		return ip.handleDo(op, gs, resources)

	case "BI":
		return ip.handleInlineImage(op, resources)
	}

	return nil
}

// reproduce appends the operator and its (unresolved) operands to the text-content reproduction,
// the way they were written in the content stream, except that show-text operators are handled by
// their own handlers below which substitute the decoded Unicode string instead of the raw operand.
func (ip *interpreter) reproduce(op *contentstream.ContentStreamOperation) {
	switch op.Operand {
	case "Tj", "'", `"`, "TJ":
		return
	}
	if ip.text.Len() > 0 {
		ip.text.WriteByte(' ')
	}
	for _, param := range op.Params {
		ip.text.WriteString(param.String())
		ip.text.WriteByte(' ')
	}
	ip.text.WriteString(op.Operand)
}

func (ip *interpreter) setFloatParam(op *contentstream.ContentStreamOperation, n int, set func([]float64)) error {
	if len(op.Params) < n {
		return fmt.Errorf("canvas: %s: expected %d operands, got %d", op.Operand, n, len(op.Params))
	}
	f, err := core.GetNumbersAsFloat(op.Params[:n])
	if err != nil {
		return err
	}
	set(f)
	return nil
}

func (ip *interpreter) handleTf(op *contentstream.ContentStreamOperation, resources *model.PdfPageResources) error {
	if len(op.Params) != 2 {
		return errors.New("canvas: Tf: expected 2 operands")
	}
	name, ok := core.GetName(op.Params[0])
	if !ok {
		return errors.New("canvas: Tf: invalid font name operand")
	}
	size, err := core.GetNumbersAsFloat(op.Params[1:])
	if err != nil {
		return err
	}

	font, err := ip.resolveFont(*name, resources)
	if err != nil {
		return err
	}
	ip.ts.font = font
	ip.ts.fontSize = size[0]
	return nil
}

func (ip *interpreter) resolveFont(name core.PdfObjectName, resources *model.PdfPageResources) (*model.PdfFont, error) {
	if font, ok := ip.fonts[name]; ok {
		return font, nil
	}
	obj, ok := resources.GetFontByName(name)
	if !ok {
		return nil, fmt.Errorf("canvas: font %q not found in resources", name)
	}
	font, err := model.NewPdfFontFromPdfObject(obj)
	if err != nil {
		return nil, err
	}
	ip.fonts[name] = font
	return font, nil
}

func (ip *interpreter) handleTd(op *contentstream.ContentStreamOperation) error {
	f, err := core.GetNumbersAsFloat(op.Params)
	if err != nil || len(f) != 2 {
		return errors.New("canvas: Td: expected 2 numeric operands")
	}
	next := ip.tlm
	next.Concat(transform.TranslationMatrix(f[0], f[1]))
	ip.tlm = next
	ip.tm = ip.tlm
	return nil
}

func (ip *interpreter) handleTD(op *contentstream.ContentStreamOperation) error {
	f, err := core.GetNumbersAsFloat(op.Params)
	if err != nil || len(f) != 2 {
		return errors.New("canvas: TD: expected 2 numeric operands")
	}
	ip.ts.leading = -f[1]
	return ip.handleTd(op)
}

func (ip *interpreter) handleTm(op *contentstream.ContentStreamOperation) error {
	f, err := core.GetNumbersAsFloat(op.Params)
	if err != nil || len(f) != 6 {
		return errors.New("canvas: Tm: expected 6 numeric operands")
	}
	m := transform.NewMatrix(f[0], f[1], f[2], f[3], f[4], f[5])
	ip.tm = m
	ip.tlm = m
	return nil
}

func (ip *interpreter) nextLine() error {
	next := ip.tlm
	next.Concat(transform.TranslationMatrix(0, -ip.ts.leading))
	ip.tlm = next
	ip.tm = ip.tlm
	return nil
}

// handleTj decodes and appends the show-text operand of a Tj (or the re-dispatched ' operator).
func (ip *interpreter) handleTj(op *contentstream.ContentStreamOperation) error {
	if len(op.Params) < 1 {
		return errors.New("canvas: Tj: missing string operand")
	}
	s, ok := core.GetStringBytes(op.Params[len(op.Params)-1])
	if !ok {
		return errors.New("canvas: Tj: non-string operand")
	}
	return ip.showText(s)
}

// handleDoubleQuote implements aw ac string ", which sets word and character spacing before
// showing text on a new line.
func (ip *interpreter) handleDoubleQuote(op *contentstream.ContentStreamOperation) error {
	if len(op.Params) != 3 {
		return errors.New(`canvas: ": expected 3 operands`)
	}
	f, err := core.GetNumbersAsFloat(op.Params[:2])
	if err != nil {
		return err
	}
	ip.ts.wordSpacing = f[0]
	ip.ts.charSpacing = f[1]
	if err := ip.nextLine(); err != nil {
		return err
	}
	s, ok := core.GetStringBytes(op.Params[2])
	if !ok {
		return errors.New(`canvas: ": non-string operand`)
	}
	return ip.showText(s)
}

// handleTJ implements the TJ array operator: alternating strings (shown) and numbers (a
// thousandths-of-em adjustment). The numbers are only reproduced in text_content; the text matrix
// is not moved by them.
func (ip *interpreter) handleTJ(op *contentstream.ContentStreamOperation) error {
	if len(op.Params) != 1 {
		return errors.New("canvas: TJ: expected 1 array operand")
	}
	arr, ok := core.GetArray(op.Params[0])
	if !ok {
		return errors.New("canvas: TJ: operand is not an array")
	}

	if ip.text.Len() > 0 {
		ip.text.WriteByte(' ')
	}
	ip.text.WriteByte('[')
	for i, elem := range arr.Elements() {
		if i > 0 {
			ip.text.WriteByte(' ')
		}
		if s, ok := core.GetStringBytes(elem); ok {
			decoded, err := ip.decodeAndAdvance(s)
			if err != nil {
				return err
			}
			ip.text.WriteString(strconv.Quote(decoded))
			continue
		}
		if _, err := core.GetNumberAsFloat(elem); err == nil {
			ip.text.WriteString(elem.String())
			continue
		}
	}
	ip.text.WriteString("] TJ")
	return nil
}

// showText decodes s and records it on the Canvas and text_content. The text matrix is not
// advanced by the shown text's displacement.
func (ip *interpreter) showText(s []byte) error {
	decoded, err := ip.decodeAndAdvance(s)
	if err != nil {
		return err
	}
	if ip.text.Len() > 0 {
		ip.text.WriteByte(' ')
	}
	ip.text.WriteString(strconv.Quote(decoded))
	ip.text.WriteString(" Tj")
	return nil
}

// decodeAndAdvance decodes raw show-text bytes s with the current font and appends the result to
// Canvas.Strings. Glyph-by-glyph advance of the text matrix is not tracked: the Canvas exposes no
// glyph positions, only the decoded text itself, so there is nothing for an advance to feed.
func (ip *interpreter) decodeAndAdvance(s []byte) (string, error) {
	if ip.ts.font == nil {
		return "", errors.New("canvas: show-text operator with no font selected")
	}
	decoded, _, _ := ip.ts.font.CharcodeBytesToUnicode(s)
	ip.canvas.Strings = append(ip.canvas.Strings, decoded)
	return decoded, nil
}

// handleDo dispatches an XObject invocation: Image XObjects are recorded directly, Form XObjects
// are evaluated recursively under a saved CTM and their own (or the caller's) resources.
func (ip *interpreter) handleDo(op *contentstream.ContentStreamOperation, gs contentstream.GraphicsState, resources *model.PdfPageResources) error {
	if len(op.Params) != 1 {
		return errors.New("canvas: Do: expected 1 name operand")
	}
	name, ok := core.GetName(op.Params[0])
	if !ok {
		return errors.New("canvas: Do: invalid name operand")
	}

	stream, xtype := resources.GetXObjectByName(*name)
	if stream == nil {
		return fmt.Errorf("canvas: XObject %q not found in resources", *name)
	}

	switch xtype {
	case model.XObjectTypeImage:
		ximg, err := model.NewXObjectImageFromStream(stream)
		if err != nil {
			return err
		}
		ip.canvas.Images = append(ip.canvas.Images, newImage(string(*name), ximg))
		return nil

	case model.XObjectTypeForm:
		return ip.handleForm(string(*name), stream, resources)
	}

	return nil
}

func (ip *interpreter) handleForm(name string, stream *core.PdfObjectStream, callerResources *model.PdfPageResources) error {
	if ip.depth >= maxFormDepth {
		return fmt.Errorf("canvas: form %q exceeds maximum nesting depth", name)
	}

	form, err := model.NewXObjectFormFromStream(stream)
	if err != nil {
		return err
	}
	content, err := form.GetContentStream()
	if err != nil {
		return err
	}

	resources := callerResources
	if form.Resources != nil {
		resources = form.Resources
	}

	ip.canvas.Forms = append(ip.canvas.Forms, &Form{Name: name})

	ip.depth++
	defer func() { ip.depth-- }()

	return ip.run(string(content), resources)
}

func (ip *interpreter) handleInlineImage(op *contentstream.ContentStreamOperation, resources *model.PdfPageResources) error {
	if len(op.Params) != 1 {
		return errors.New("canvas: BI: missing inline image operand")
	}
	raw, ok := op.Params[0].(*contentstream.ContentStreamInlineImage)
	if !ok {
		return errors.New("canvas: BI: operand is not an inline image")
	}
	ip.canvas.InlineImages = append(ip.canvas.InlineImages, newInlineImage(raw, resources))
	return nil
}
