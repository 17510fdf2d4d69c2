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

import "seehuhn.de/go/slant/outline"

// History is an [UndoRecorder] which keeps snapshots of changed glyphs in
// memory.
type History struct {
	pending map[*outline.Glyph]*undoStep
	steps   []*undoStep
}

type undoStep struct {
	title  string
	glyph  *outline.Glyph
	before *outline.Glyph
}

// PrepareUndo records the current state of g.
func (h *History) PrepareUndo(g *outline.Glyph, title string) {
	if h.pending == nil {
		h.pending = make(map[*outline.Glyph]*undoStep)
	}
	h.pending[g] = &undoStep{title: title, glyph: g, before: g.Copy()}
}

// PerformUndo completes the undo step started by PrepareUndo.
// Calls without a matching PrepareUndo are ignored.
func (h *History) PerformUndo(g *outline.Glyph) {
	step, ok := h.pending[g]
	if !ok {
		return
	}
	delete(h.pending, g)
	h.steps = append(h.steps, step)
}

// Len returns the number of recorded undo steps.
func (h *History) Len() int {
	return len(h.steps)
}

// Undo restores the glyph changed by the most recent step and returns the
// title of that step.  The second return value is false if there is
// nothing to undo.
func (h *History) Undo() (string, bool) {
	if len(h.steps) == 0 {
		return "", false
	}
	step := h.steps[len(h.steps)-1]
	h.steps = h.steps[:len(h.steps)-1]

	step.glyph.Clear()
	step.glyph.AppendGlyph(step.before)
	return step.title, true
}
