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

// WaitKind is the kind of input an input opcode suspended for.
type WaitKind uint8

const (
	WaitNone WaitKind = iota
	WaitInt
	WaitChar
)

func (k WaitKind) String() string {
	switch k {
	case WaitInt:
		return "integer"
	case WaitChar:
		return "character"
	}

	return "none"
}

// Pointer is the instruction pointer: position, direction, and the
// execution-mode flags. Position always satisfies 0 <= x < width and
// 0 <= y < height, maintained by modular arithmetic in Move.
type Pointer struct {
	field *Playfield

	x, y int
	dir  Direction

	skip          bool
	stringMode    bool
	lastWasRandom bool

	waitingFor   WaitKind
	pendingInput int
	hasPending   bool
}

func NewPointer(field *Playfield) *Pointer {
	return &Pointer{field: field, dir: Right}
}

func (p *Pointer) Position() (x, y int) {
	return p.x, p.y
}

func (p *Pointer) Direction() Direction {
	return p.dir
}

func (p *Pointer) Field() *Playfield {
	return p.field
}

// Skip reports whether a bridge is pending for the next Move.
func (p *Pointer) Skip() bool {
	return p.skip
}

// InString reports whether the pointer is in string mode.
func (p *Pointer) InString() bool {
	return p.stringMode
}

// LastWasRandom reports whether the most recent direction change came
// from the '?' opcode. Diagnostic only.
func (p *Pointer) LastWasRandom() bool {
	return p.lastWasRandom
}

func (p *Pointer) WaitingFor() WaitKind {
	return p.waitingFor
}

// ChangeDirection sets the travel direction. fromRandom marks whether
// the change came from the '?' opcode.
func (p *Pointer) ChangeDirection(d Direction, fromRandom bool) {
	p.dir = d
	p.lastWasRandom = fromRandom
}

// Move advances the pointer one cell in its direction, wrapping at the
// playfield edges. A pending bridge makes this call advance two cells
// instead and is consumed immediately, no matter how much happened
// between the bridge opcode and the move.
func (p *Pointer) Move() (x, y int) {
	dx, dy := p.dir.Delta()

	if p.skip {
		p.x, p.y = p.field.Wrap(p.x+dx, p.y+dy)
		p.skip = false
	}

	p.x, p.y = p.field.Wrap(p.x+dx, p.y+dy)
	return p.x, p.y
}
