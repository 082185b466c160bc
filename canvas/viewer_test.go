/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package canvas

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func openViewer(t *testing.T) *Viewer {
	t.Helper()
	f, err := os.Open("./testdata/sample.pdf")
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })

	v, err := NewViewer(f)
	require.NoError(t, err)
	return v
}

func TestViewerRenderBeforeNavigate(t *testing.T) {
	v := openViewer(t)
	_, err := v.Render()
	require.Error(t, err)
}

func TestViewerNavigateAndRender(t *testing.T) {
	v := openViewer(t)

	_, err := v.Navigate(1)
	require.NoError(t, err)
	require.NotNil(t, v.Page())
	require.Equal(t, 1, v.Page().Number)

	c, err := v.Render()
	require.NoError(t, err)
	require.Same(t, c, v.Canvas())

	require.Contains(t, c.Strings, "Hello World")
	require.True(t, strings.Contains(c.TextContent, "Hello World"))
	require.Empty(t, c.Images)
	require.Empty(t, c.Forms)
	require.Empty(t, c.InlineImages)
}

func TestViewerRenderIsCached(t *testing.T) {
	v := openViewer(t)

	_, err := v.Navigate(1)
	require.NoError(t, err)

	c1, err := v.Render()
	require.NoError(t, err)

	c2, err := v.Render()
	require.NoError(t, err)
	require.Same(t, c1, c2)
}

func TestViewerNextPastEndErrors(t *testing.T) {
	v := openViewer(t)

	_, err := v.Navigate(1)
	require.NoError(t, err)

	_, err = v.Next()
	require.Error(t, err)
}

func TestViewerNavigateClearsCanvas(t *testing.T) {
	v := openViewer(t)

	_, err := v.Navigate(1)
	require.NoError(t, err)
	_, err = v.Render()
	require.NoError(t, err)
	require.NotNil(t, v.Canvas())

	_, err = v.Navigate(1)
	require.NoError(t, err)
	require.Nil(t, v.Canvas())
}
