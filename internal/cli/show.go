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

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/text/unicode/runenames"

	"seehuhn.de/go/slant"
	"seehuhn.de/go/slant/outline"
)

func (a *app) newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [glyph...]",
		Short: "Print glyph outlines",
		Long:  "Print the outlines of the named glyphs, or of all glyphs if no names are given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.loadFont(cmd)
			if err != nil {
				return err
			}
			names := args
			if len(names) == 0 {
				names = f.Names()
			}
			return a.withOutput(cmd, func(w io.Writer) error {
				for _, name := range names {
					g := f.Glyph(name)
					if g == nil {
						return &slant.UnknownGlyphError{Name: name}
					}
					if err := writeGlyph(w, f, g); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}

// writeGlyph prints a human readable description of g.
func writeGlyph(w io.Writer, layer outline.Layer, g *outline.Glyph) error {
	fmt.Fprintln(w, styleTitle.Render(g.Name))
	for _, r := range g.Unicodes {
		fmt.Fprintln(w, styleDim.Render(fmt.Sprintf("U+%04X %s", r, runenames.Name(r))))
	}
	if b, ok := g.Bounds(layer); ok {
		fmt.Fprintln(w, styleDim.Render(fmt.Sprintf("bounds [%g %g %g %g]", b.LLx, b.LLy, b.URx, b.URy)))
	}
	_, err := io.WriteString(w, g.String())
	return err
}
