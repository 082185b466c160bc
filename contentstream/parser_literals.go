/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package contentstream

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/lazypdf/lazypdf/common"
	"github.com/lazypdf/lazypdf/core"
)

// parseName parses a name starting with '/'.
func (p *ContentStreamParser) parseName() (core.PdfObjectName, error) {
	name := ""
	nameStarted := false
	for {
		bb, err := p.reader.Peek(1)
		if err == io.EOF {
			break // Can happen when loading from object stream.
		}
		if err != nil {
			return core.PdfObjectName(name), err
		}

		if !nameStarted {
			// Should always start with '/', otherwise not valid.
			if bb[0] != '/' {
				common.Log.Error("Name starting with %s (% x)", bb, bb)
				return core.PdfObjectName(name), fmt.Errorf("invalid name: (%c)", bb[0])
			}
			nameStarted = true
			p.reader.ReadByte()
			continue
		}

		switch {
		case core.IsWhiteSpace(bb[0]):
			return core.PdfObjectName(name), nil
		case bb[0] == '/' || bb[0] == '[' || bb[0] == '(' || bb[0] == ']' || bb[0] == '<' || bb[0] == '>':
			// Looks like start of next statement.
			return core.PdfObjectName(name), nil
		case bb[0] == '#':
			hexcode, err := p.reader.Peek(3)
			if err != nil {
				return core.PdfObjectName(name), err
			}
			p.reader.Discard(3)

			code, err := hex.DecodeString(string(hexcode[1:3]))
			if err != nil {
				return core.PdfObjectName(name), err
			}
			name += string(code)
		default:
			b, _ := p.reader.ReadByte()
			name += string(b)
		}
	}
	return core.PdfObjectName(name), nil
}

// parseNumber parses an integer or real number (PDF 7.3.3). Conforming writers should not emit
// exponential notation (6.02E23) but some do, so it is accepted on read without ambiguity with any
// other object kind.
func (p *ContentStreamParser) parseNumber() (core.PdfObject, error) {
	return core.ParseNumber(p.reader)
}

// parseString parses a literal string starting with '(' and ending with the matching ')'.
func (p *ContentStreamParser) parseString() (*core.PdfObjectString, error) {
	p.reader.ReadByte()

	var out []byte
	depth := 1
	for {
		bb, err := p.reader.Peek(1)
		if err != nil {
			return core.MakeString(string(out)), err
		}

		if bb[0] == '\\' {
			p.reader.ReadByte() // Skip the escape \ byte.
			b, err := p.reader.ReadByte()
			if err != nil {
				return core.MakeString(string(out)), err
			}

			if core.IsOctalDigit(b) {
				escaped, err := p.readOctalEscape(b)
				if err != nil {
					return core.MakeString(string(out)), err
				}
				out = append(out, escaped)
				continue
			}

			switch b {
			case 'n':
				out = append(out, '\n')
			case 'r':
				out = append(out, '\r')
			case 't':
				out = append(out, '\t')
			case 'b':
				out = append(out, '\b')
			case 'f':
				out = append(out, '\f')
			case '(', ')', '\\':
				out = append(out, b)
			}
			continue
		} else if bb[0] == '(' {
			depth++
		} else if bb[0] == ')' {
			depth--
			if depth == 0 {
				p.reader.ReadByte()
				break
			}
		}

		b, _ := p.reader.ReadByte()
		out = append(out, b)
	}

	return core.MakeString(string(out)), nil
}

// readOctalEscape decodes a '\ddd' octal escape (base 8) whose first digit is first; up to two
// more octal digits are consumed from the stream if present.
func (p *ContentStreamParser) readOctalEscape(first byte) (byte, error) {
	bb, err := p.reader.Peek(2)
	if err != nil {
		return 0, err
	}

	digits := []byte{first}
	for _, d := range bb {
		if !core.IsOctalDigit(d) {
			break
		}
		digits = append(digits, d)
	}
	p.reader.Discard(len(digits) - 1)

	common.Log.Trace("Numeric string \"%s\"", digits)
	code, err := strconv.ParseUint(string(digits), 8, 32)
	if err != nil {
		return 0, err
	}
	return byte(code), nil
}

// parseHexString parses a hex string starting with '<' and ending with '>'.
func (p *ContentStreamParser) parseHexString() (*core.PdfObjectString, error) {
	p.reader.ReadByte()

	hextable := []byte("0123456789abcdefABCDEF")

	var digits []byte
	for {
		p.skipSpaces()

		bb, err := p.reader.Peek(1)
		if err != nil {
			return core.MakeString(""), err
		}

		if bb[0] == '>' {
			p.reader.ReadByte()
			break
		}

		b, _ := p.reader.ReadByte()
		if bytes.IndexByte(hextable, b) >= 0 {
			digits = append(digits, b)
		}
	}

	if len(digits)%2 == 1 {
		digits = append(digits, '0')
	}

	buf, _ := hex.DecodeString(string(digits))
	return core.MakeHexString(string(buf)), nil
}

// parseArray parses an array starting with '[' and ending with ']'; elements may be any direct
// object kind.
func (p *ContentStreamParser) parseArray() (*core.PdfObjectArray, error) {
	arr := core.MakeArray()

	p.reader.ReadByte()

	for {
		p.skipSpaces()

		bb, err := p.reader.Peek(1)
		if err != nil {
			return arr, err
		}

		if bb[0] == ']' {
			p.reader.ReadByte()
			break
		}

		obj, _, err := p.parseObject()
		if err != nil {
			return arr, err
		}
		arr.Append(obj)
	}

	return arr, nil
}

// parseBool parses the literal keyword "true" or "false".
func (p *ContentStreamParser) parseBool() (core.PdfObjectBool, error) {
	bb, err := p.reader.Peek(4)
	if err != nil {
		return core.PdfObjectBool(false), err
	}
	if len(bb) >= 4 && string(bb[:4]) == "true" {
		p.reader.Discard(4)
		return core.PdfObjectBool(true), nil
	}

	bb, err = p.reader.Peek(5)
	if err != nil {
		return core.PdfObjectBool(false), err
	}
	if len(bb) >= 5 && string(bb[:5]) == "false" {
		p.reader.Discard(5)
		return core.PdfObjectBool(false), nil
	}

	return core.PdfObjectBool(false), errors.New("unexpected boolean string")
}

// parseNull parses the literal keyword "null".
func (p *ContentStreamParser) parseNull() (core.PdfObjectNull, error) {
	_, err := p.reader.Discard(4)
	return core.PdfObjectNull{}, err
}

// parseDict parses a dictionary starting with '<<' and ending with '>>'.
func (p *ContentStreamParser) parseDict() (*core.PdfObjectDictionary, error) {
	common.Log.Trace("Reading content stream dict!")

	dict := core.MakeDict()

	c, _ := p.reader.ReadByte()
	if c != '<' {
		return nil, errors.New("invalid dict")
	}
	c, _ = p.reader.ReadByte()
	if c != '<' {
		return nil, errors.New("invalid dict")
	}

	for {
		p.skipSpaces()

		bb, err := p.reader.Peek(2)
		if err != nil {
			return nil, err
		}

		common.Log.Trace("Dict peek: %s (% x)!", string(bb), string(bb))
		if bb[0] == '>' && bb[1] == '>' {
			common.Log.Trace("EOF dictionary")
			p.reader.ReadByte()
			p.reader.ReadByte()
			break
		}
		common.Log.Trace("Parse the name!")

		keyName, err := p.parseName()
		common.Log.Trace("Key: %s", keyName)
		if err != nil {
			common.Log.Debug("ERROR Returning name err %s", err)
			return nil, err
		}

		if len(keyName) > 4 && keyName[len(keyName)-4:] == "null" {
			// Some writers have a bug where the null is appended without space, e.g.
			// "\Boundsnull".
			newKey := keyName[0 : len(keyName)-4]
			common.Log.Trace("Taking care of null bug (%s)", keyName)
			common.Log.Trace("New key \"%s\" = null", newKey)
			p.skipSpaces()
			bb, _ := p.reader.Peek(1)
			if bb[0] == '/' {
				dict.Set(newKey, core.MakeNull())
				continue
			}
		}

		p.skipSpaces()

		val, _, err := p.parseObject()
		if err != nil {
			return nil, err
		}
		dict.Set(keyName, val)

		common.Log.Trace("dict[%s] = %s", keyName, val.String())
	}

	return dict, nil
}

// parseOperand parses a bare word: a text command represented by a run of non-delimiter,
// non-whitespace bytes.
func (p *ContentStreamParser) parseOperand() (*core.PdfObjectString, error) {
	var out []byte
	for {
		bb, err := p.reader.Peek(1)
		if err != nil {
			return core.MakeString(string(out)), err
		}
		if core.IsDelimiter(bb[0]) || core.IsWhiteSpace(bb[0]) {
			break
		}

		b, _ := p.reader.ReadByte()
		out = append(out, b)
	}

	return core.MakeString(string(out)), nil
}
