// Copyright (C) 2026  The gofunge authors

// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public License for
// more details.

// You should have received a copy of the GNU General Public License along
// with this program.  If not, see <http://www.gnu.org/licenses/>.

package interp

import (
	"strings"
)

// Minimum playfield dimensions, the standard Befunge-93 torus size.
// Smaller programs are padded with spaces up to these.
const (
	MinWidth  = 80
	MinHeight = 25
)

// Playfield is the rectangular program grid. Every row has identical
// length and padding cells hold the space character. The pre-padding
// dimensions are retained for callers that care about the original
// program bounds; they never change, even when writes land past them.
type Playfield struct {
	cells [][]byte

	width  int
	height int

	origWidth  int
	origHeight int
}

// NewPlayfield builds a playfield from newline-delimited source text.
// Malformed or empty source is accepted and normalized, never rejected.
func NewPlayfield(src string) *Playfield {
	return newPlayfield(splitLines(src))
}

// NewPlayfieldFromRows builds a playfield from an already-split grid.
// The rows are copied; the caller keeps ownership of its slice.
func NewPlayfieldFromRows(rows [][]byte) *Playfield {
	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = string(row)
	}

	return newPlayfield(lines)
}

func newPlayfield(lines []string) *Playfield {
	f := &Playfield{origHeight: len(lines)}

	for _, line := range lines {
		if len(line) > f.origWidth {
			f.origWidth = len(line)
		}
	}

	f.width = max(MinWidth, f.origWidth)
	f.height = max(MinHeight, f.origHeight)

	f.cells = make([][]byte, f.height)
	for y := range f.cells {
		row := make([]byte, f.width)
		var n int
		if y < len(lines) {
			n = copy(row, lines[y])
		}
		for x := n; x < f.width; x++ {
			row[x] = ' '
		}
		f.cells[y] = row
	}

	return f
}

// splitLines matches the usual text-editor notion of lines: CRLF and LF
// both delimit, and a trailing newline does not produce an empty row.
func splitLines(src string) []string {
	if src == "" {
		return nil
	}

	src = strings.ReplaceAll(src, "\r\n", "\n")
	lines := strings.Split(src, "\n")

	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}

func (f *Playfield) Width() int {
	return f.width
}

func (f *Playfield) Height() int {
	return f.height
}

// OrigWidth returns the widest row length of the source before padding.
func (f *Playfield) OrigWidth() int {
	return f.origWidth
}

// OrigHeight returns the source row count before padding.
func (f *Playfield) OrigHeight() int {
	return f.origHeight
}

// At returns the character at (x, y). Coordinates must be in bounds;
// callers wrap with Wrap first.
func (f *Playfield) At(x, y int) byte {
	return f.cells[y][x]
}

// Set writes a character at (x, y). Only the put opcode and external
// debugger pokes mutate the grid this way.
func (f *Playfield) Set(x, y int, ch byte) {
	f.cells[y][x] = ch
}

// Wrap reduces arbitrary integer coordinates onto the torus.
func (f *Playfield) Wrap(x, y int) (int, int) {
	return floorMod(x, f.width), floorMod(y, f.height)
}

// Rows returns a deep copy of the grid for external rendering.
func (f *Playfield) Rows() [][]byte {
	out := make([][]byte, f.height)
	for y, row := range f.cells {
		out[y] = make([]byte, f.width)
		copy(out[y], row)
	}

	return out
}

// floorMod wraps a into [0, n); unlike the % operator the result is
// never negative.
func floorMod(a, n int) int {
	a %= n
	if a < 0 {
		a += n
	}

	return a
}
