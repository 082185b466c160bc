/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package cmap

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lazypdf/lazypdf/internal/cmap/bcmaps"
)

func TestIsPredefinedCMap(t *testing.T) {
	names := bcmaps.AssetNames()
	require.NotEmpty(t, names)
	for _, name := range names {
		require.True(t, IsPredefinedCMap(name))
	}
	require.False(t, IsPredefinedCMap("Not-A-Real-CMap"))
}

func TestLoadPredefinedCMapIdentityH(t *testing.T) {
	cmap, err := LoadPredefinedCMap("Identity-H")
	require.NoError(t, err)

	require.Equal(t, "Identity-H", cmap.name)
	require.Equal(t, 1, cmap.ctype)
	require.Equal(t, 16, cmap.nbits)
	require.Equal(t, "", cmap.usecmap)
	require.Equal(t, "Adobe-Identity-000", cmap.systemInfo.String())
	require.Equal(t, []Codespace{
		{NumBytes: 2, Low: 0x0000, High: 0xFFFF},
	}, cmap.codespaces)

	// Identity CMaps map every charcode straight through to the same CID.
	for _, code := range []CharCode{0x0000, 0x0041, 0x1234, 0xFFFF} {
		cid, ok := cmap.CharcodeToCID(code)
		require.True(t, ok)
		require.Equal(t, code, cid)
	}
}

func TestLoadPredefinedCMapIdentityV(t *testing.T) {
	cmap, err := LoadPredefinedCMap("Identity-V")
	require.NoError(t, err)

	require.Equal(t, "Identity-V", cmap.name)
	require.Equal(t, "Adobe-Identity-000", cmap.systemInfo.String())

	cid, ok := cmap.CharcodeToCID(0x0041)
	require.True(t, ok)
	require.Equal(t, CharCode(0x0041), cid)
}
