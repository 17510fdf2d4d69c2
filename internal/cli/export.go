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

	"seehuhn.de/go/slant"
	"seehuhn.de/go/slant/internal/glyphjson"
)

func (a *app) newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a new glyph set with all glyphs transformed",
		Long: `Transform every glyph of the input and write the result as a new glyph
set.  Components are kept, and their offsets are adjusted to fit the
transformed base glyphs.`,
		Args: cobra.NoArgs,
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
			workers := a.cfg.Workers
			if cmd.Flags().Changed("workers") {
				workers = a.workers
			}
			if workers < 0 {
				return fmt.Errorf("invalid number of workers %d", workers)
			}

			prog := newProgress(logger)
			res, err := slant.Export(cmd.Context(), f, p.Skew, p.Rotation, &slant.ExportOptions{
				Workers: workers,
				Logger:  logger,
			})
			if err != nil {
				return err
			}
			prog.done("exported " + plural(res.Len(), "glyph"))

			return a.withOutput(cmd, func(w io.Writer) error {
				return glyphjson.Write(w, res)
			})
		},
	}
	a.addParamFlags(cmd, false)
	cmd.Flags().IntVarP(&a.workers, "workers", "j", 0, "number of glyphs to transform in parallel (0 for all CPUs)")
	return cmd
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
