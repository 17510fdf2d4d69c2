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
	"context"
	"io"
	"runtime"
	"slices"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"seehuhn.de/go/slant/outline"
)

// UndoTitle is the title used for undo steps recorded by [Apply].
const UndoTitle = "Slanter"

// UndoRecorder receives notifications before and after a glyph is changed.
type UndoRecorder interface {
	PrepareUndo(g *outline.Glyph, title string)
	PerformUndo(g *outline.Glyph)
}

// Apply replaces the outlines of the named glyphs by their transformed
// versions.  Components are always decomposed.  If undo is not nil, every
// changed glyph is reported to it.
//
// All new outlines are computed from the font as it was before the call,
// so a composite is transformed exactly once even if its base glyph is
// in the same list.  If a name is not present in the font, an
// [UnknownGlyphError] is returned and no glyph is changed.
func Apply(f *Font, names []string, p Params, undo UndoRecorder) error {
	p.KeepComponents = false

	targets := make([]*outline.Glyph, len(names))
	for i, name := range names {
		g := f.Glyph(name)
		if g == nil {
			return &UnknownGlyphError{Name: name}
		}
		targets[i] = g
	}

	outs := make([]*outline.Glyph, len(targets))
	for i, g := range targets {
		outs[i] = Transform(f, g, p)
	}

	for i, g := range targets {
		if undo != nil {
			undo.PrepareUndo(g, UndoTitle)
		}
		g.Clear()
		g.AppendGlyph(outs[i])
		if undo != nil {
			undo.PerformUndo(g)
		}
	}
	return nil
}

// ExportOptions controls [Export].
type ExportOptions struct {
	// Workers is the maximum number of glyphs transformed concurrently.
	// If zero, runtime.GOMAXPROCS(0) is used.
	Workers int

	// Logger, if not nil, receives progress messages.
	Logger *log.Logger
}

// Export returns a new font in which every glyph of f is skewed and rotated.
//
// Font info, feature code, glyph order, advance widths and unicode values are
// copied from f.  Components are kept as references and their offsets are
// moved relative to the centres of their base glyphs, so that the exported
// composites refer to the exported base glyphs.  The font f is not
// modified.
func Export(ctx context.Context, f *Font, skew, rotation float64, opt *ExportOptions) (*Font, error) {
	if opt == nil {
		opt = &ExportOptions{}
	}
	logger := opt.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	workers := opt.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := Params{
		Skew:                skew,
		Rotation:            rotation,
		KeepComponents:      true,
		ReprojectComponents: true,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	names := f.Names()
	logger.Info("exporting font", "family", f.Info.FamilyName, "glyphs", len(names), "params", p)

	results := make([]*outline.Glyph, len(names))
	grp, ctx := errgroup.WithContext(ctx)
	grp.SetLimit(workers)
	for i, name := range names {
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			src := f.Glyph(name)
			dst := outline.New(name)
			dst.Width = src.Width
			dst.Unicodes = slices.Clone(src.Unicodes)
			dst.AppendGlyph(Transform(f, src, p))
			results[i] = dst
			logger.Debug("transformed glyph", "name", name)
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	res := NewFont()
	res.Info = f.Info
	res.Features = f.Features
	for _, g := range results {
		res.AddGlyph(g)
	}
	res.GlyphOrder = slices.Clone(f.GlyphOrder)

	logger.Info("export complete", "glyphs", res.Len())
	return res, nil
}
