// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package webcursor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// offscreen installs a fresh [OffscreenSurface] as [TheSurface] for
// the duration of the test and returns it.
func offscreen(t *testing.T) *OffscreenSurface {
	t.Helper()
	sf := &OffscreenSurface{}
	old := TheSurface
	TheSurface = sf
	t.Cleanup(func() { TheSurface = old })
	return sf
}

func TestSetGet(t *testing.T) {
	sf := offscreen(t)
	for _, c := range CursorValues() {
		Set(c)
		assert.Equal(t, c.String(), sf.Cursor)
		assert.True(t, IsSet())
		got, ok := Get()
		assert.True(t, ok)
		assert.Equal(t, c, got)
		assert.Equal(t, c.String(), GetString())
	}
}

func TestUnset(t *testing.T) {
	offscreen(t)
	Set(Wait)
	assert.True(t, IsSet())

	Unset()
	assert.False(t, IsSet())
	_, ok := Get()
	assert.False(t, ok)
	assert.Equal(t, "", GetString())

	// unset again from the unset state is fine
	Unset()
	assert.False(t, IsSet())
}

func TestSetOptional(t *testing.T) {
	offscreen(t)

	c := Pointer
	SetOptional(&c)
	got, ok := Get()
	assert.True(t, ok)
	assert.Equal(t, Pointer, got)

	SetOptional(nil)
	assert.False(t, IsSet())
	assert.Equal(t, "", GetString())
}

func TestSetStringKnown(t *testing.T) {
	offscreen(t)
	SetString("progress")
	got, ok := Get()
	assert.True(t, ok)
	assert.Equal(t, Progress, got)
}

func TestSetStringArbitrary(t *testing.T) {
	offscreen(t)
	const raw = "url('x.png'), progress"
	SetString(raw)
	assert.True(t, IsSet())
	_, ok := Get()
	assert.False(t, ok)
	assert.Equal(t, raw, GetString())
}

func TestUnsetDistinctFromDefault(t *testing.T) {
	offscreen(t)

	Unset()
	unset := GetString()

	Set(Default)
	def := GetString()
	got, ok := Get()
	assert.True(t, ok)
	assert.Equal(t, Default, got)

	Set(Auto)
	auto := GetString()

	assert.NotEqual(t, unset, def)
	assert.NotEqual(t, unset, auto)
	assert.NotEqual(t, def, auto)
}

func TestExternalMutation(t *testing.T) {
	sf := offscreen(t)
	Set(Text)

	// another party writes to the shared surface between calls
	sf.Cursor = "grab"
	got, ok := Get()
	assert.True(t, ok)
	assert.Equal(t, Grab, got)
	assert.Equal(t, "grab", GetString())

	sf.Cursor = "wibble"
	_, ok = Get()
	assert.False(t, ok)
	assert.Equal(t, "wibble", GetString())
	assert.True(t, IsSet())
}

func TestGetCaseSensitive(t *testing.T) {
	sf := offscreen(t)
	sf.Cursor = "Default"
	_, ok := Get()
	assert.False(t, ok)
	assert.Equal(t, "Default", GetString())
}
