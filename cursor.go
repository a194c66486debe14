// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package webcursor provides typed access to the CSS cursor style of
// the page for Go apps running in the browser. The cursor is set and
// queried through [Cursor], an enum of the standard CSS cursor
// keywords, or through raw strings for arbitrary CSS cursor values.
//
// All operations read and write the host surface live; nothing is
// cached, so changes made by other code sharing the surface are always
// visible. The surface itself is pluggable through [TheSurface], which
// is the document body on the web and an in-memory value elsewhere.
package webcursor

//go:generate core generate

// Cursor represents a standard CSS cursor keyword. Its string
// representation is the exact keyword used in the cursor style
// property of the page.
type Cursor int32 //enums:enum -transform kebab

const (
	// Auto is determined by the browser based on the current context.
	// For example, it is equivalent to [Text] when hovering over text.
	Auto Cursor = iota

	// Default is the platform-dependent default cursor, typically an arrow.
	Default

	// None renders no cursor.
	None

	// ContextMenu indicates that a context menu is available.
	ContextMenu

	// Help indicates that help information is available,
	// typically a cursor next to a question mark.
	Help

	// Pointer indicates a link, typically an image of a hand
	// with an index finger pointing up.
	Pointer

	// Progress indicates that the app is busy in the background while
	// the user can still interact with the interface, in contrast to
	// [Wait], typically a cursor next to an hourglass.
	Progress

	// Wait indicates that the app is busy and the user can not interact
	// with the interface, in contrast to [Progress], typically an
	// hourglass or a watch.
	Wait

	// Cell indicates that a table cell or set of cells can be selected,
	// typically a plus symbol.
	Cell

	// Crosshair is a cross cursor, often used to indicate selection in
	// a bitmap.
	Crosshair

	// Text indicates that text can be selected, typically a vertical I-beam.
	Text

	// VerticalText indicates that vertical text can be selected,
	// typically a sideways I-beam.
	VerticalText

	// Alias indicates that an alias or shortcut is to be created,
	// typically a cursor next to a folder icon with a curved arrow
	// pointing up and to the right.
	Alias

	// Copy indicates that something is to be copied, typically a cursor
	// next to a smaller folder icon with a plus sign.
	Copy

	// Move indicates that something is to be moved, typically a plus
	// sign made of two thin lines with small arrows facing out.
	Move

	// NoDrop indicates that an item may not be dropped at the current
	// location, typically a cursor next to a circle with a line through it.
	NoDrop

	// NotAllowed indicates that the requested action will not be
	// carried out, typically a circle with a line through it.
	NotAllowed

	// Grab indicates that something can be grabbed (dragged to be
	// moved), typically a fully opened hand.
	Grab

	// Grabbing indicates that something is being grabbed (dragged to be
	// moved), typically a closed hand.
	Grabbing

	// AllScroll indicates that something can be scrolled (panned) in
	// any direction, typically a dot with four triangles around it.
	AllScroll

	// ColResize indicates that an item or column can be resized
	// horizontally, often rendered as arrows pointing left and right
	// with a vertical bar separating them.
	ColResize

	// RowResize indicates that an item or row can be resized
	// vertically, often rendered as arrows pointing up and down with a
	// horizontal bar separating them.
	RowResize

	// NResize indicates that the north edge of a box is to be moved,
	// typically an arrow pointing up.
	NResize

	// EResize indicates that the east edge of a box is to be moved,
	// typically an arrow pointing right.
	EResize

	// SResize indicates that the south edge of a box is to be moved,
	// typically an arrow pointing down.
	SResize

	// WResize indicates that the west edge of a box is to be moved,
	// typically an arrow pointing left.
	WResize

	// NeResize indicates that the north-east corner of a box is to be
	// moved, typically an arrow pointing to the top-right.
	NeResize

	// NwResize indicates that the north-west corner of a box is to be
	// moved, typically an arrow pointing to the top-left.
	NwResize

	// SeResize indicates that the south-east corner of a box is to be
	// moved, typically an arrow pointing to the bottom-right.
	SeResize

	// SwResize indicates that the south-west corner of a box is to be
	// moved, typically an arrow pointing to the bottom-left.
	SwResize

	// EwResize is a bidirectional horizontal resize cursor, typically
	// an arrow pointing left and right.
	EwResize

	// NsResize is a bidirectional vertical resize cursor, typically an
	// arrow pointing up and down.
	NsResize

	// NeswResize is a bidirectional diagonal resize cursor, typically
	// an arrow pointing both to the top-right and bottom-left.
	NeswResize

	// NwseResize is a bidirectional diagonal resize cursor, typically
	// an arrow pointing both to the top-left and bottom-right.
	NwseResize

	// ZoomIn indicates that something can be zoomed (magnified) in,
	// typically a magnifying glass with a plus sign.
	ZoomIn

	// ZoomOut indicates that something can be zoomed (magnified) out,
	// typically a magnifying glass with a minus sign.
	ZoomOut
)
