/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package contentstream

import (
	"bufio"
	"bytes"
	"io"

	"github.com/lazypdf/lazypdf/common"
	"github.com/lazypdf/lazypdf/core"
)

// ContentStreamParser tokenizes and parses a page or Form XObject content stream (PDF 32000-1:2008
// 7.8.2) into a flat list of operations: an operand (the command) preceded by its operands.
type ContentStreamParser struct {
	reader *bufio.Reader
}

// NewContentStreamParser returns a ContentStreamParser reading contentStr.
func NewContentStreamParser(contentStr string) *ContentStreamParser {
	// A trailing newline lets the last operand be recognized without hitting EOF first.
	buf := bytes.NewBufferString(contentStr + "\n")
	return &ContentStreamParser{reader: bufio.NewReader(buf)}
}

// Parse tokenizes the entire stream and returns every operation it contains, in stream order.
func (p *ContentStreamParser) Parse() (*ContentStreamOperations, error) {
	ops := ContentStreamOperations{}

	for {
		op := ContentStreamOperation{}

		for {
			obj, isOperand, err := p.parseObject()
			if err != nil {
				if err == io.EOF {
					return &ops, nil
				}
				return &ops, err
			}
			if isOperand {
				op.Operand, _ = core.GetStringVal(obj)
				ops = append(ops, &op)
				break
			}
			op.Params = append(op.Params, obj)
		}

		if op.Operand == "BI" {
			// Everything between BI and EI (including the image's own binary data) is
			// consumed as a single inline-image parameter, not as further operands.
			im, err := p.ParseInlineImage()
			if err != nil {
				return &ops, err
			}
			op.Params = append(op.Params, im)
		}
	}
}

// parseObject parses one direct object or operand and reports which it was. An operand is
// returned as a PdfObjectString carrying the bare operator name (e.g. "Tj").
func (p *ContentStreamParser) parseObject() (obj core.PdfObject, isOperand bool, err error) {
	p.skipSpaces()
	for {
		bb, err := p.reader.Peek(2)
		if err != nil {
			return nil, false, err
		}

		common.Log.Trace("Peek string: %s", string(bb))
		switch {
		case bb[0] == '%':
			p.skipComments()
			continue
		case bb[0] == '/':
			name, err := p.parseName()
			common.Log.Trace("->Name: '%s'", name)
			return &name, false, err
		case bb[0] == '(':
			common.Log.Trace("->String!")
			str, err := p.parseString()
			return str, false, err
		case bb[0] == '<' && bb[1] != '<':
			common.Log.Trace("->Hex String!")
			str, err := p.parseHexString()
			return str, false, err
		case bb[0] == '[':
			common.Log.Trace("->Array!")
			arr, err := p.parseArray()
			return arr, false, err
		case core.IsFloatDigit(bb[0]) || (bb[0] == '-' && core.IsFloatDigit(bb[1])):
			common.Log.Trace("->Number!")
			number, err := p.parseNumber()
			return number, false, err
		case bb[0] == '<' && bb[1] == '<':
			dict, err := p.parseDict()
			return dict, false, err
		default:
			return p.parseKeywordOrOperand()
		}
	}
}

// parseKeywordOrOperand handles the catch-all branch of parseObject: a bare keyword ("null",
// "true", "false") or an operand (command name) with no leading delimiter of its own.
func (p *ContentStreamParser) parseKeywordOrOperand() (core.PdfObject, bool, error) {
	common.Log.Trace("->Operand or bool?")
	bb, _ := p.reader.Peek(5)
	peekStr := string(bb)
	common.Log.Trace("cont Peek str: %s", peekStr)

	switch {
	case len(peekStr) > 3 && peekStr[:4] == "null":
		null, err := p.parseNull()
		return &null, false, err
	case len(peekStr) > 4 && peekStr[:5] == "false":
		b, err := p.parseBool()
		return &b, false, err
	case len(peekStr) > 3 && peekStr[:4] == "true":
		b, err := p.parseBool()
		return &b, false, err
	}

	operand, err := p.parseOperand()
	if err != nil {
		return operand, false, err
	}
	if len(operand.String()) < 1 {
		return operand, false, ErrInvalidOperand
	}
	return operand, true, nil
}

// skipSpaces advances past any run of whitespace, returning how many bytes it skipped.
func (p *ContentStreamParser) skipSpaces() (int, error) {
	cnt := 0
	for {
		bb, err := p.reader.Peek(1)
		if err != nil {
			return 0, err
		}
		if !core.IsWhiteSpace(bb[0]) {
			break
		}
		p.reader.ReadByte()
		cnt++
	}
	return cnt, nil
}

// skipComments advances past a run of whitespace and %-comments, recursing to absorb a sequence
// of several comment lines in a row.
func (p *ContentStreamParser) skipComments() error {
	if _, err := p.skipSpaces(); err != nil {
		return err
	}

	isFirst := true
	for {
		bb, err := p.reader.Peek(1)
		if err != nil {
			common.Log.Debug("Error %s", err.Error())
			return err
		}
		if isFirst && bb[0] != '%' {
			return nil
		}
		isFirst = false

		if bb[0] == '\r' || bb[0] == '\n' {
			break
		}
		p.reader.ReadByte()
	}

	return p.skipComments()
}
