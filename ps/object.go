/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package ps

import (
	"fmt"
)

// PSObject represents a postscript object.
type PSObject interface {
	// Duplicate makes a fresh copy of the PSObject.
	Duplicate() PSObject

	// DebugString returns a descriptive representation of the PSObject with more information than String()
	// for debugging purposes.
	DebugString() string

	// String returns a string representation of the PSObject.
	String() string
}

// PSInteger represents an integer.
type PSInteger struct {
	Val int
}

// Duplicate returns a fresh copy of `num`.
func (num *PSInteger) Duplicate() PSObject {
	obj := PSInteger{}
	obj.Val = num.Val
	return &obj
}

// DebugString returns a descriptive representation of `num`.
func (num *PSInteger) DebugString() string {
	return fmt.Sprintf("int:%d", num.Val)
}

// String returns a string representation of `num`.
func (num *PSInteger) String() string {
	return fmt.Sprintf("%d", num.Val)
}

// PSReal represents a real number.
type PSReal struct {
	Val float64
}

// DebugString returns a descriptive representation of `real`.
func (real *PSReal) DebugString() string {
	return fmt.Sprintf("real:%.5f", real.Val)
}

// String returns a string representation of `real`.
func (real *PSReal) String() string {
	return fmt.Sprintf("%.5f", real.Val)
}

// Duplicate returns a fresh copy of `real`.
func (real *PSReal) Duplicate() PSObject {
	obj := PSReal{}
	obj.Val = real.Val
	return &obj
}

// PSBoolean represents a boolean value.
type PSBoolean struct {
	Val bool
}

// DebugString returns a descriptive representation of `b`.
func (b *PSBoolean) DebugString() string {
	return fmt.Sprintf("bool:%v", b.Val)
}

// String returns a string representation of `b`.
func (b *PSBoolean) String() string {
	return fmt.Sprintf("%v", b.Val)
}

// Duplicate returns a fresh copy of `b`.
func (b *PSBoolean) Duplicate() PSObject {
	obj := PSBoolean{}
	obj.Val = b.Val
	return &obj
}

// PSProgram defines a postscript program: a series of PS objects (arguments, commands, programs etc).
type PSProgram []PSObject

// NewPSProgram returns an empty, initialized PSProgram.
func NewPSProgram() *PSProgram {
	return &PSProgram{}
}

// Append appends `obj` to the program `prog`.
func (prog *PSProgram) Append(obj PSObject) {
	*prog = append(*prog, obj)
}

// DebugString returns a descriptive representation of `prog`.
func (prog *PSProgram) DebugString() string {
	s := "{ "
	for _, obj := range *prog {
		s += obj.DebugString()
		s += " "
	}
	s += "}"

	return s
}

// String returns a string representation of `prog`.
func (prog *PSProgram) String() string {
	s := "{ "
	for _, obj := range *prog {
		s += obj.String()
		s += " "
	}
	s += "}"

	return s
}

// Duplicate returns a fresh copy of `prog`.
func (prog *PSProgram) Duplicate() PSObject {
	p := &PSProgram{}
	for _, obj := range *prog {
		p.Append(obj.Duplicate())
	}
	return p
}

// Exec executes the program, typically leaving output values on the stack.
func (prog *PSProgram) Exec(stack *PSStack) error {
	for _, obj := range *prog {
		var err error
		switch t := obj.(type) {
		case *PSInteger, *PSReal, *PSBoolean, *PSProgram:
			err = stack.Push(obj)
		case *PSOperand:
			err = t.Exec(stack)
		default:
			return ErrTypeCheck
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// PSOperand represents a postscript operand (command).
type PSOperand string

// DebugString returns a descriptive representation of `op`.
func (op *PSOperand) DebugString() string {
	return fmt.Sprintf("op:'%s'", *op)
}

// String returns a string representation of `op`.
func (op *PSOperand) String() string {
	return string(*op)
}

// Duplicate returns a fresh copy of `op`.
func (op *PSOperand) Duplicate() PSObject {
	s := *op
	return &s
}

// Exec executes the operand `op` against the stack contents.
func (op *PSOperand) Exec(stack *PSStack) error {
	err := ErrUnsupportedOperand
	switch *op {
	case "abs":
		err = op.abs(stack)
	case "add":
		err = op.add(stack)
	case "and":
		err = op.and(stack)
	case "atan":
		err = op.atan(stack)
	case "bitshift":
		err = op.bitshift(stack)
	case "ceiling":
		err = op.ceiling(stack)
	case "copy":
		err = op.copy(stack)
	case "cos":
		err = op.cos(stack)
	case "cvi":
		err = op.cvi(stack)
	case "cvr":
		err = op.cvr(stack)
	case "div":
		err = op.div(stack)
	case "dup":
		err = op.dup(stack)
	case "eq":
		err = op.eq(stack)
	case "exch":
		err = op.exch(stack)
	case "exp":
		err = op.exp(stack)
	case "floor":
		err = op.floor(stack)
	case "ge":
		err = op.ge(stack)
	case "gt":
		err = op.gt(stack)
	case "idiv":
		err = op.idiv(stack)
	case "if":
		err = op.ifCondition(stack)
	case "ifelse":
		err = op.ifelse(stack)
	case "index":
		err = op.index(stack)
	case "le":
		err = op.le(stack)
	case "log":
		err = op.log(stack)
	case "ln":
		err = op.ln(stack)
	case "lt":
		err = op.lt(stack)
	case "mod":
		err = op.mod(stack)
	case "mul":
		err = op.mul(stack)
	case "ne":
		err = op.ne(stack)
	case "neg":
		err = op.neg(stack)
	case "not":
		err = op.not(stack)
	case "or":
		err = op.or(stack)
	case "pop":
		err = op.pop(stack)
	case "round":
		err = op.round(stack)
	case "roll":
		err = op.roll(stack)
	case "sin":
		err = op.sin(stack)
	case "sqrt":
		err = op.sqrt(stack)
	case "sub":
		err = op.sub(stack)
	case "truncate":
		err = op.truncate(stack)
	case "xor":
		err = op.xor(stack)
	}

	return err
}
