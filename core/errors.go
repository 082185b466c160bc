/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package core

import "errors"

// Sentinel errors shared across the core package and its callers in model,
// contentstream and canvas. ErrNotSupported in particular is wrapped by
// higher-level packages to report unsupported features (fonts, filters,
// encryption) without requiring a distinct error type per caller.
var (
	ErrTypeError    = errors.New("type check error")
	ErrRangeError   = errors.New("range check error")
	ErrNotANumber   = errors.New("not a number")
	ErrNotSupported = errors.New("feature not currently supported")
)
