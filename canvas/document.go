/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package canvas provides a typed, read-only view over a PDF document and a
// content-stream interpreter that renders a page into a Canvas: the strings,
// images, inline images and form XObjects encountered while walking the
// page's operator list. It does not rasterize glyphs or reflow text; it
// reproduces the decoded show-text operands a page emits, in the order the
// content stream emits them.
package canvas

import (
	"errors"
	"io"

	"golang.org/x/xerrors"

	"github.com/lazypdf/lazypdf/core"
	"github.com/lazypdf/lazypdf/model"

	// Registers the PDF/A-ID XMP schema with the go-xmp model registry so
	// that a /Metadata stream's pdfaid:part/pdfaid:conformance fields are
	// recognized if a caller parses it with go-xmp directly.
	_ "github.com/lazypdf/lazypdf/model/xmputil/pdfaid"
)

// Header mirrors the document's file header, %PDF-x.y.
type Header struct {
	// Version is the literal header version string, e.g. "1.6".
	Version string
}

// Document is a lazily-loaded, read-only view over a parsed PDF file. It
// wraps a model.PdfReader and exposes the Catalog, page tree and page
// accessors described for external callers, resolving indirect references
// on demand rather than walking the whole object graph up front.
type Document struct {
	reader *model.PdfReader
	header Header

	catalog *Catalog
}

// Open parses the PDF structure (header, xref, trailer, object streams) from rs and returns a
// Document. It does not walk the page tree or interpret any content streams; those happen lazily
// as Pages, Viewer and Canvas are used.
func Open(rs io.ReadSeeker) (*Document, error) {
	reader, err := model.NewPdfReaderLazy(rs)
	if err != nil {
		return nil, err
	}

	version := reader.PdfVersion()
	doc := &Document{
		reader: reader,
		header: Header{Version: version.String()},
	}
	return doc, nil
}

// IsUnsupportedFeature reports whether err (typically returned from Open) indicates a
// document feature this reader refuses rather than reads - currently, an encrypted
// document. err may be any wrapped error in the chain Open returns; the
// core.ErrNotSupported sentinel is matched anywhere along it.
func IsUnsupportedFeature(err error) bool {
	return xerrors.Is(err, core.ErrNotSupported)
}

// Header returns the document's file header.
func (doc *Document) Header() Header {
	return doc.header
}

// Root returns the document's Catalog (the trailer's /Root entry).
func (doc *Document) Root() (*Catalog, error) {
	if doc.catalog != nil {
		return doc.catalog, nil
	}

	dict := doc.reader.GetCatalog()
	if dict == nil {
		return nil, errors.New("canvas: document has no catalog")
	}

	doc.catalog = &Catalog{Dict: *newDict(doc, dict)}
	return doc.catalog, nil
}

// NumPages returns the number of pages in the document's page tree.
func (doc *Document) NumPages() (int, error) {
	return doc.reader.GetNumPages()
}

// Page returns the page at the given 1-based page number.
func (doc *Document) Page(number int) (*Page, error) {
	modelPage, err := doc.reader.GetPage(number)
	if err != nil {
		return nil, err
	}
	return newPage(doc, modelPage, number), nil
}

// Pages returns a lazily-constructed Page for every page in document order (the page tree's
// preorder leaf traversal, already flattened by the reader into a single list).
func (doc *Document) Pages() ([]*Page, error) {
	n, err := doc.NumPages()
	if err != nil {
		return nil, err
	}

	pages := make([]*Page, 0, n)
	for i := 1; i <= n; i++ {
		page, err := doc.Page(i)
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}
	return pages, nil
}

// Catalog is a typed view over the document's root dictionary (PDF 7.7.2, Table 28).
type Catalog struct {
	Dict
}

// Metadata returns the Catalog's /Metadata stream as a Dict, or nil if absent.
func (c *Catalog) Metadata() *Dict {
	return c.Dict.Dict("Metadata")
}

// Outlines returns the Catalog's /Outlines dictionary, or nil if absent. Use OutlineTree to walk
// the bookmark tree through the typed model.Outline API instead of this dictionary's raw keys.
func (c *Catalog) Outlines() *Dict {
	return c.Dict.Dict("Outlines")
}

// OutlineTree returns the document's bookmark tree as a model.Outline, or an error if the document
// has no /Outlines entry. It walks the tree the reader already built from Open (PdfReader.GetOutlines,
// PDF 7.7.3.2 Table 152-153) rather than re-deriving it from the Catalog's raw dictionary.
func (c *Catalog) OutlineTree() (*model.Outline, error) {
	return c.Dict.doc.reader.GetOutlines()
}

// Pages returns the Catalog's /Pages dictionary, the root of the page tree.
func (c *Catalog) Pages() *Dict {
	return c.Dict.Dict("Pages")
}

// resolveObject resolves obj through the document's reader, unwrapping indirect references and
// chained indirect objects. It is the document-bound counterpart of core.TraceToDirectObject for
// objects that may have been produced lazily from an object stream.
func (doc *Document) resolveObject(obj core.PdfObject) (core.PdfObject, error) {
	if obj == nil {
		return nil, nil
	}
	return doc.reader.Resolve(obj)
}
