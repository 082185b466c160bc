/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package canvas

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lazypdf/lazypdf/core"
)

func openSample(t *testing.T) *Document {
	t.Helper()
	f, err := os.Open("./testdata/sample.pdf")
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })

	doc, err := Open(f)
	require.NoError(t, err)
	return doc
}

func TestOpenHeader(t *testing.T) {
	doc := openSample(t)
	require.Equal(t, "1.4", doc.Header().Version)
}

func TestDocumentRoot(t *testing.T) {
	doc := openSample(t)

	root, err := doc.Root()
	require.NoError(t, err)
	require.Equal(t, "Catalog", root.Type())

	pages := root.Pages()
	require.NotNil(t, pages)
	require.Equal(t, "Pages", pages.Type())

	require.Nil(t, root.Outlines())
	require.Nil(t, root.Metadata())
}

func TestDocumentPages(t *testing.T) {
	doc := openSample(t)

	n, err := doc.NumPages()
	require.NoError(t, err)
	require.Equal(t, 1, n)

	pages, err := doc.Pages()
	require.NoError(t, err)
	require.Len(t, pages, 1)
	require.Equal(t, 1, pages[0].Number)

	page, err := doc.Page(1)
	require.NoError(t, err)
	require.Equal(t, 1, page.Number)
}

func TestDocumentPageOutOfRange(t *testing.T) {
	doc := openSample(t)

	_, err := doc.Page(2)
	require.Error(t, err)
}

func TestCatalogOutlineTree(t *testing.T) {
	doc := openSample(t)
	root, err := doc.Root()
	require.NoError(t, err)

	require.Nil(t, root.Outlines())

	_, err = root.OutlineTree()
	require.Error(t, err)
}

func TestIsUnsupportedFeature(t *testing.T) {
	wrapped := fmt.Errorf("document is encrypted: %w", core.ErrNotSupported)
	require.True(t, IsUnsupportedFeature(wrapped))
	require.False(t, IsUnsupportedFeature(fmt.Errorf("some other failure")))
}
