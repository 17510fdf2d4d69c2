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

	"seehuhn.de/go/slant"
	"seehuhn.de/go/slant/internal/glyphjson"
)

func (a *app) newApplyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply [glyph...]",
		Short: "Transform glyphs in place",
		Long: `Replace the named glyphs, or all glyphs if no names are given, by their
transformed versions and write the modified glyph set.  Components are
decomposed.`,
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
			names := args
			if len(names) == 0 {
				names = f.Names()
			}

			prog := newProgress(logger)
			h := &slant.History{}
			if err := slant.Apply(f, names, p, h); err != nil {
				return err
			}
			prog.done("transformed " + plural(h.Len(), "glyph"))

			return a.withOutput(cmd, func(w io.Writer) error {
				return glyphjson.Write(w, f)
			})
		},
	}
	a.addParamFlags(cmd, false)
	return cmd
}
