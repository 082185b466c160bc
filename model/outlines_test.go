/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestOutlineToTree exercises the in-memory outline builder (Outline/OutlineItem) against the
// linked PdfOutlineTreeNode representation it produces, the shape Document.root.Outlines exposes
// for reading (PDF 7.7.3.2, Table 152-153). Reading is the only direction this engine supports;
// there is no writer to round-trip through.
func TestOutlineToTree(t *testing.T) {
	srcOutline := NewOutline()
	for i := 0; i < 3; i++ {
		item := NewOutlineItem(fmt.Sprintf("Outline %d", i+1),
			NewOutlineDest(int64(i), float64(i), float64(i)))
		srcOutline.Add(item)

		for j := 0; j < i; j++ {
			childItem := NewOutlineItem(fmt.Sprintf("%s.%d", item.Title, j+1),
				NewOutlineDest(int64(i), float64(i*j), float64(i*j)))
			item.Add(childItem)
			item = childItem
		}
	}

	tree := srcOutline.ToPdfOutline()
	require.NotNil(t, tree.First)
	require.NotNil(t, tree.Last)
	require.NotNil(t, tree.Count)

	// 3 top-level items plus their descendants: item 2 has 1 child, item 3 has 2 (nested).
	require.EqualValues(t, 3+1+2, *tree.Count)

	first, ok := tree.First.GetContext().(*PdfOutlineItem)
	require.True(t, ok)
	require.Equal(t, "Outline 1", first.Title.Decoded())
	require.Nil(t, first.First)

	third, ok := tree.Last.GetContext().(*PdfOutlineItem)
	require.True(t, ok)
	require.Equal(t, "Outline 3", third.Title.Decoded())
	require.NotNil(t, third.First)
}
