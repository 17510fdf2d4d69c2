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
	"fmt"
	"math"
)

// Limits for interactive use.  [Transform] itself accepts any finite angle.
const (
	MaxAngle    = 30
	DefaultSkew = 7
)

// DefaultParams returns the parameters used when nothing else is
// specified.
func DefaultParams() Params {
	return Params{Skew: DefaultSkew}
}

// Validate checks that both angles are finite numbers.
func (p Params) Validate() error {
	for _, a := range []struct {
		name string
		val  float64
	}{
		{"skew", p.Skew},
		{"rotation", p.Rotation},
	} {
		if math.IsNaN(a.val) || math.IsInf(a.val, 0) {
			return fmt.Errorf("%s %g: %w", a.name, a.val, ErrInvalidAngle)
		}
	}
	return nil
}

// Clamp returns a copy of p where both angles are limited to the range
// [-limit, limit].  The second return value is true if an angle was
// changed.
func (p Params) Clamp(limit float64) (Params, bool) {
	clamp := func(x float64) float64 {
		return math.Max(-limit, math.Min(limit, x))
	}
	q := p
	q.Skew = clamp(p.Skew)
	q.Rotation = clamp(p.Rotation)
	return q, q.Skew != p.Skew || q.Rotation != p.Rotation
}

func (p Params) String() string {
	return fmt.Sprintf("skew=%g° rotation=%g°", p.Skew, p.Rotation)
}
