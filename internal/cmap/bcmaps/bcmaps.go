/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package bcmaps holds the predefined CMap resources that internal/cmap resolves composite-font
// byte sequences against when a font names a predefined CMap (PDF 32000-1:2008, 9.7.5.2) instead
// of embedding its own CMap stream.
//
// The Adobe predefined-CMap registry proper (Adobe-Japan1, Adobe-GB1, Adobe-Korea1, ...)
// spans dozens of vendor character-collection files and is not bundled. Only the two CMaps
// every conforming reader must recognize regardless of registry - Identity-H and Identity-V,
// the identity mapping used by most embedded-subset composite fonts - are included; other
// names return an asset-not-found error.
package bcmaps

import "fmt"

var assets = map[string]string{
	"Identity-H": identityH,
	"Identity-V": identityV,
}

// Asset returns the raw CMap program text for the predefined CMap named name.
func Asset(name string) ([]byte, error) {
	data, ok := assets[name]
	if !ok {
		return nil, fmt.Errorf("bcmaps: asset not found: %s", name)
	}
	return []byte(data), nil
}

// AssetExists reports whether a predefined CMap named name is bundled.
func AssetExists(name string) bool {
	_, ok := assets[name]
	return ok
}

// AssetNames returns the names of every bundled predefined CMap.
func AssetNames() []string {
	names := make([]string, 0, len(assets))
	for name := range assets {
		names = append(names, name)
	}
	return names
}
