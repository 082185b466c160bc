/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package lazypdf is a lazy reader and interpreter for PDF documents.
//
// It parses a PDF's object graph on demand from a seekable byte source,
// decodes the standard stream filters, and interprets page content
// streams into a Canvas of extracted text, inline images, and XObject
// images. It does not rasterize pages, lay out text geometrically,
// write or edit PDFs, or fill forms.
//
// See package canvas for the primary entry points (Document, Viewer),
// package model for the typed document object model, and package core
// for the underlying PDF object/xref/filter layer.
package lazypdf
