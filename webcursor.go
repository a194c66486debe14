// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package webcursor

// Set sets the cursor style property of [TheSurface] to the canonical
// CSS keyword for the given cursor, replacing any previous value.
func Set(c Cursor) {
	TheSurface.WriteCursor(c.String())
}

// SetOptional sets the cursor from an optional cursor value: a non-nil
// pointer is equivalent to [Set] with its value, and nil is equivalent
// to [Unset]. This lets callers hold a cursor override that may or may
// not be active and apply it without conditional branches.
func SetOptional(c *Cursor) {
	if c == nil {
		Unset()
		return
	}
	Set(*c)
}

// SetString sets the cursor style property of [TheSurface] to the
// given string verbatim, without validating it against the standard
// keywords. This supports arbitrary CSS cursor values, including
// fallback lists and url() image references; the browser ignores
// values it does not recognize. [Set] avoids the string handling and
// should be preferred for standard cursors in per-frame updates.
func SetString(s string) {
	TheSurface.WriteCursor(s)
}

// Unset clears the cursor style property of [TheSurface], restoring
// the default cursor behavior of the page. This is a distinct state
// from setting [Default] or [Auto], which install an explicit override
// even though the result may look the same.
func Unset() {
	TheSurface.WriteCursor("")
}

// IsSet returns whether the cursor style property of [TheSurface]
// currently holds any value, set by this package or not.
func IsSet() bool {
	return TheSurface.ReadCursor() != ""
}

// Get returns the cursor corresponding to the current value of the
// cursor style property of [TheSurface]. It returns false if the
// property is empty, and also if it holds a value that is not exactly
// a canonical cursor keyword (matching is case-sensitive, per CSS
// property conventions); use [GetString] to recover such values.
func Get() (Cursor, bool) {
	s := TheSurface.ReadCursor()
	if s == "" {
		return 0, false
	}
	var c Cursor
	if err := c.SetString(s); err != nil {
		return 0, false
	}
	return c, true
}

// GetString returns the current value of the cursor style property of
// [TheSurface] verbatim, which is "" if no cursor is set, and may be
// an arbitrary non-standard value if one was written by [SetString] or
// by other code sharing the surface.
func GetString() string {
	return TheSurface.ReadCursor()
}
