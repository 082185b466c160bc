/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package canvas

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lazypdf/lazypdf/core"
)

func TestPageMediaBox(t *testing.T) {
	doc := openSample(t)

	page, err := doc.Page(1)
	require.NoError(t, err)

	box, err := page.MediaBox()
	require.NoError(t, err)
	require.Equal(t, 0.0, box.Llx)
	require.Equal(t, 0.0, box.Lly)
	require.Equal(t, 612.0, box.Urx)
	require.Equal(t, 792.0, box.Ury)
}

func TestPageRotateDefault(t *testing.T) {
	doc := openSample(t)

	page, err := doc.Page(1)
	require.NoError(t, err)

	rotate, err := page.Rotate()
	require.NoError(t, err)
	require.Equal(t, int64(0), rotate)
}

func TestPageAnnotsAbsent(t *testing.T) {
	doc := openSample(t)

	page, err := doc.Page(1)
	require.NoError(t, err)
	require.Nil(t, page.Annots())
}

func TestPageAnnotsSubj(t *testing.T) {
	doc := openSample(t)

	page, err := doc.Page(1)
	require.NoError(t, err)

	annot := core.MakeDict()
	annot.Set("Subj", core.MakeString("Text Box"))
	arr := core.MakeArray(annot)
	page.page.Annots = arr

	annots := page.Annots()
	require.Len(t, annots, 1)
	require.Equal(t, "Text Box", annots[0].Str("Subj"))
}

func TestPageResourcesHasFont(t *testing.T) {
	doc := openSample(t)

	page, err := doc.Page(1)
	require.NoError(t, err)

	resources := page.Resources()
	require.NotNil(t, resources)

	font, ok := resources.GetFontByName("F1")
	require.True(t, ok)
	require.NotNil(t, font)
}

func TestPageParentIsPagesRoot(t *testing.T) {
	doc := openSample(t)

	page, err := doc.Page(1)
	require.NoError(t, err)

	parent := page.Parent()
	require.NotNil(t, parent)
	require.Equal(t, "Pages", parent.Type())
}
