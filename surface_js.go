// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js

package webcursor

import "syscall/js"

func init() {
	TheSurface = &BodySurface{}
}

// BodySurface is the [Surface] for the web platform. It reads and
// writes the cursor style property of the document body, so cursor
// changes apply to the whole page. Every call goes to the live DOM
// value; nothing is cached.
type BodySurface struct{}

var _ Surface = (*BodySurface)(nil)

func (sf *BodySurface) ReadCursor() string {
	return js.Global().Get("document").Get("body").Get("style").Get("cursor").String()
}

func (sf *BodySurface) WriteCursor(s string) {
	js.Global().Get("document").Get("body").Get("style").Set("cursor", s)
}
