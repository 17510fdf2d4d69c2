// seehuhn.de/go/slant - skew and rotate glyph outlines
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package testfont provides a real-world font for use in tests.
package testfont

import (
	"bytes"
	"sync"

	"golang.org/x/image/font/gofont/goregular"

	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/sfnt"

	"seehuhn.de/go/slant"
	"seehuhn.de/go/slant/internal/convert"
)

// MakeGlyfFont returns the Go Regular font, which has glyf outlines.
func MakeGlyfFont() *sfnt.Font {
	r := bytes.NewReader(goregular.TTF)
	info, err := sfnt.Read(r)
	if err != nil {
		panic(err)
	}
	return info
}

var (
	goRegularOnce    sync.Once
	goRegularFont    *slant.Font
	goRegularExtents map[string]funit.Rect16
)

// GoRegular returns an editable copy of the Go Regular font.
// Every call returns a new font, so that tests may modify the result.
func GoRegular() *slant.Font {
	f, _ := load()
	return f
}

// Extents returns the glyph bounding boxes recorded in the Go Regular font
// file, indexed by glyph name.
func Extents() map[string]funit.Rect16 {
	_, ext := load()
	return ext
}

func load() (*slant.Font, map[string]funit.Rect16) {
	goRegularOnce.Do(func() {
		var err error
		goRegularFont, goRegularExtents, err = convert.FromGlyf(MakeGlyfFont())
		if err != nil {
			panic(err)
		}
	})

	res := slant.NewFont()
	res.Info = goRegularFont.Info
	res.Features = goRegularFont.Features
	for _, name := range goRegularFont.Names() {
		res.AddGlyph(goRegularFont.Glyph(name).Copy())
	}
	return res, goRegularExtents
}
