// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package webcursor

// Surface is the interface for a host rendering surface that owns a
// cursor style property. Two primitives back every operation in this
// package: a verbatim read and a verbatim write of the property, with
// the empty string meaning that no cursor is set. Anything satisfying
// this contract can serve as the surface, such as the document body
// style on the web, another element's style, or an in-memory value.
type Surface interface {

	// ReadCursor returns the current value of the cursor style
	// property, which is "" if no cursor is set.
	ReadCursor() string

	// WriteCursor sets the cursor style property to the given string,
	// replacing any previous value. Writing "" clears the property.
	WriteCursor(s string)
}

// TheSurface is the [Surface] used by the package-level operations.
// It is [BodySurface] on the web and [OffscreenSurface] on all other
// platforms. The underlying property is shared state: other code with
// access to the same surface can change it at any time, and such
// changes are visible through [Get], [GetString], and [IsSet], which
// always read the live value. Callers accessing the same surface from
// multiple goroutines must synchronize externally.
var TheSurface Surface = &OffscreenSurface{}

// OffscreenSurface is a [Surface] backed by an in-memory value, for
// offscreen testing and for platforms without a browser page.
type OffscreenSurface struct {

	// Cursor is the current value of the cursor style property.
	Cursor string
}

var _ Surface = (*OffscreenSurface)(nil)

func (sf *OffscreenSurface) ReadCursor() string   { return sf.Cursor }
func (sf *OffscreenSurface) WriteCursor(s string) { sf.Cursor = s }
