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

package slant

import (
	"errors"
	"strconv"
)

var (
	// ErrInvalidAngle is returned by [Params.Validate] for angles which are
	// not finite numbers.
	ErrInvalidAngle = errors.New("invalid angle")
)

// UnknownGlyphError indicates that a glyph name is not present in a font.
type UnknownGlyphError struct {
	Name string
}

func (err *UnknownGlyphError) Error() string {
	return "unknown glyph " + strconv.Quote(err.Name)
}

// IsUnknownGlyph returns true if err is, or wraps, an [UnknownGlyphError].
func IsUnknownGlyph(err error) bool {
	var target *UnknownGlyphError
	return errors.As(err, &target)
}
