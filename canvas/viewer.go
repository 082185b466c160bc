/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package canvas

import (
	"fmt"
	"io"
)

// Viewer walks a Document one page at a time, rendering each page's content stream into a Canvas.
// A Viewer holds at most one page's worth of interpreter state; navigating to another page
// discards it, so results from one page never leak into the next.
type Viewer struct {
	doc  *Document
	page int

	current *Page
	canvas  *Canvas
}

// NewViewer opens rs as a Document and returns a Viewer positioned before the first page: call
// Navigate or Next before Render.
func NewViewer(rs io.ReadSeeker) (*Viewer, error) {
	doc, err := Open(rs)
	if err != nil {
		return nil, err
	}
	return &Viewer{doc: doc}, nil
}

// Document returns the Viewer's underlying Document.
func (v *Viewer) Document() *Document {
	return v.doc
}

// Navigate moves the Viewer to the 1-based page number and clears any previously rendered Canvas.
// It returns v together with any error from looking up the page; on error the Viewer is unchanged.
func (v *Viewer) Navigate(number int) (*Viewer, error) {
	page, err := v.doc.Page(number)
	if err != nil {
		return v, err
	}
	v.page = number
	v.current = page
	v.canvas = nil
	return v, nil
}

// Next advances to the following page, equivalent to Navigate(current+1).
func (v *Viewer) Next() (*Viewer, error) {
	return v.Navigate(v.page + 1)
}

// Prev moves to the preceding page, equivalent to Navigate(current-1).
func (v *Viewer) Prev() (*Viewer, error) {
	return v.Navigate(v.page - 1)
}

// Page returns the page the Viewer is currently positioned on, or nil before the first Navigate.
func (v *Viewer) Page() *Page {
	return v.current
}

// Canvas returns the Canvas produced by the most recent Render call, or nil if Render has not
// been called since the last Navigate.
func (v *Viewer) Canvas() *Canvas {
	return v.canvas
}

// Render interprets the current page's content streams, concatenated in document order with a
// single space separator, against the page's merged resources, and returns the resulting Canvas.
// The Canvas is cached until the next Navigate/Next/Prev call.
func (v *Viewer) Render() (*Canvas, error) {
	if v.current == nil {
		return nil, fmt.Errorf("canvas: Render called before Navigate")
	}
	if v.canvas != nil {
		return v.canvas, nil
	}

	content, err := v.current.page.GetAllContentStreams()
	if err != nil {
		return nil, err
	}

	c := newCanvas()
	ip := newInterpreter(v.doc, c)
	if err := ip.run(content, v.current.Resources()); err != nil {
		return nil, err
	}
	c.TextContent = ip.text.String()

	v.canvas = c
	return c, nil
}
