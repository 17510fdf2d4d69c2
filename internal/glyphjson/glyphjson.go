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

// Package glyphjson reads and writes glyph sets as JSON.
//
// This is a simple interchange format for the slanter tool, which stores
// the outlines of a [slant.Font] together with some font-wide metadata.
// Points are written as objects with the keys "x", "y", "type" and
// "smooth", where the type is one of "offcurve", "move", "line" or "curve".
// Components store the name of the base glyph and the six coefficients of
// the transformation matrix.
package glyphjson

import (
	"encoding/json"
	"fmt"
	"io"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/slant"
	"seehuhn.de/go/slant/outline"
)

// FormatError indicates a problem with the contents of a JSON glyph set.
type FormatError struct {
	Glyph string // empty for problems outside of the glyph list
	Msg   string
}

func (err *FormatError) Error() string {
	if err.Glyph == "" {
		return "glyphjson: " + err.Msg
	}
	return fmt.Sprintf("glyphjson: glyph %q: %s", err.Glyph, err.Msg)
}

type fontData struct {
	Info       infoData     `json:"info"`
	Features   string       `json:"features,omitempty"`
	GlyphOrder []string     `json:"glyphOrder,omitempty"`
	Glyphs     []*glyphData `json:"glyphs"`
}

type infoData struct {
	FamilyName  string  `json:"familyName,omitempty"`
	StyleName   string  `json:"styleName,omitempty"`
	UnitsPerEm  int     `json:"unitsPerEm,omitempty"`
	Ascender    float64 `json:"ascender,omitempty"`
	Descender   float64 `json:"descender,omitempty"`
	ItalicAngle float64 `json:"italicAngle,omitempty"`
}

type glyphData struct {
	Name       string           `json:"name"`
	Width      float64          `json:"width"`
	Unicodes   []rune           `json:"unicodes,omitempty"`
	Contours   [][]*pointData   `json:"contours,omitempty"`
	Components []*componentData `json:"components,omitempty"`
}

type pointData struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Type   string  `json:"type"`
	Smooth bool    `json:"smooth,omitempty"`
}

type componentData struct {
	Base           string     `json:"base"`
	Transformation [6]float64 `json:"transformation"`
}

var pointTypes = map[string]outline.PointType{
	outline.OffCurve.String(): outline.OffCurve,
	outline.Move.String():     outline.Move,
	outline.Line.String():     outline.Line,
	outline.Curve.String():    outline.Curve,
}

// Write stores the glyphs of f in w, in the order given by [slant.Font.Names].
func Write(w io.Writer, f *slant.Font) error {
	data := &fontData{
		Info:       infoData(f.Info),
		Features:   f.Features,
		GlyphOrder: f.GlyphOrder,
	}
	for _, name := range f.Names() {
		data.Glyphs = append(data.Glyphs, encodeGlyph(f.Glyph(name)))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func encodeGlyph(g *outline.Glyph) *glyphData {
	res := &glyphData{
		Name:     g.Name,
		Width:    g.Width,
		Unicodes: g.Unicodes,
	}
	for _, c := range g.Contours {
		pp := make([]*pointData, len(c.Points))
		for i, p := range c.Points {
			pp[i] = &pointData{
				X:      p.X,
				Y:      p.Y,
				Type:   p.Type.String(),
				Smooth: p.Smooth,
			}
		}
		res.Contours = append(res.Contours, pp)
	}
	for _, c := range g.Components {
		res.Components = append(res.Components, &componentData{
			Base:           c.BaseGlyph,
			Transformation: c.Transformation,
		})
	}
	return res
}

// Read decodes a glyph set written by [Write].
func Read(r io.Reader) (*slant.Font, error) {
	data := &fontData{}
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(data); err != nil {
		return nil, fmt.Errorf("glyphjson: %w", err)
	}

	f := slant.NewFont()
	f.Info = slant.Info(data.Info)
	f.Features = data.Features
	for _, gd := range data.Glyphs {
		if gd == nil || gd.Name == "" {
			return nil, &FormatError{Msg: "glyph without name"}
		}
		if f.Glyph(gd.Name) != nil {
			return nil, &FormatError{Glyph: gd.Name, Msg: "duplicate glyph"}
		}
		g, err := decodeGlyph(gd)
		if err != nil {
			return nil, err
		}
		f.AddGlyph(g)
	}
	if data.GlyphOrder != nil {
		f.GlyphOrder = data.GlyphOrder
	}
	return f, nil
}

func decodeGlyph(gd *glyphData) (*outline.Glyph, error) {
	g := outline.New(gd.Name)
	g.Width = gd.Width
	g.Unicodes = gd.Unicodes
	for _, pp := range gd.Contours {
		c := &outline.Contour{Points: make([]*outline.Point, len(pp))}
		for i, pd := range pp {
			if pd == nil {
				return nil, &FormatError{Glyph: gd.Name, Msg: "missing point"}
			}
			tp, ok := pointTypes[pd.Type]
			if !ok {
				return nil, &FormatError{Glyph: gd.Name, Msg: fmt.Sprintf("invalid point type %q", pd.Type)}
			}
			if tp == outline.Move && i > 0 {
				return nil, &FormatError{Glyph: gd.Name, Msg: "move point inside contour"}
			}
			c.Points[i] = &outline.Point{X: pd.X, Y: pd.Y, Type: tp, Smooth: pd.Smooth}
		}
		g.Contours = append(g.Contours, c)
	}
	for _, cd := range gd.Components {
		if cd == nil || cd.Base == "" {
			return nil, &FormatError{Glyph: gd.Name, Msg: "component without base glyph"}
		}
		g.Components = append(g.Components, &outline.Component{
			BaseGlyph:      cd.Base,
			Transformation: matrix.Matrix(cd.Transformation),
		})
	}
	return g, nil
}
