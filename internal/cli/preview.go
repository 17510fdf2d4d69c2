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
	"io"

	"github.com/spf13/cobra"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/slant"
	"seehuhn.de/go/slant/outline"
)

func (a *app) newPreviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview <glyph>",
		Short: "Show the transformed outline of a glyph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			f, err := a.loadFont(cmd)
			if err != nil {
				return err
			}
			p, err := a.params(cmd)
			if err != nil {
				return err
			}
			g := f.Glyph(args[0])
			if g == nil {
				return &slant.UnknownGlyphError{Name: args[0]}
			}

			var result *outline.Glyph
			pv := slant.NewPreview(p, func(out *outline.Glyph, points []vec.Vec2) {
				result = out
				logger.Debug("preview updated", "glyph", out.Name, "points", len(points))
			})
			pv.SetGlyph(f, g)

			return a.withOutput(cmd, func(w io.Writer) error {
				return writeGlyph(w, f, result)
			})
		},
	}
	a.addParamFlags(cmd, true)
	return cmd
}
