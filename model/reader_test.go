/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lazypdf/lazypdf/core"
)

func catalogTypeName(t *testing.T, catalog *core.PdfObjectDictionary) string {
	t.Helper()
	name, ok := core.GetNameVal(catalog.Get(core.PdfObjectName("Type")))
	require.True(t, ok)
	return name
}

func TestReaderLazy(t *testing.T) {
	f, err := os.Open(`./testdata/minimal.pdf`)
	require.NoError(t, err)
	defer f.Close()

	reader, err := NewPdfReaderLazy(f)
	require.NoError(t, err)

	require.Equal(t, 1, len(reader.PageList))

	page, err := reader.GetPage(1)
	require.NoError(t, err)

	ref, isRef := page.Contents.(*core.PdfObjectReference)
	require.True(t, isRef)

	obj := ref.Resolve()
	_, isStream := obj.(*core.PdfObjectStream)
	require.True(t, isStream)

	str, err := page.GetAllContentStreams()
	require.NoError(t, err)
	require.Equal(t, 42, len(str))
}

func TestReaderLazyResolveIsStable(t *testing.T) {
	f, err := os.Open(`./testdata/minimal.pdf`)
	require.NoError(t, err)
	defer f.Close()

	reader, err := NewPdfReaderLazy(f)
	require.NoError(t, err)

	catalog := reader.GetCatalog()
	require.NotNil(t, catalog)
	require.Equal(t, "Catalog", catalogTypeName(t, catalog))
}
