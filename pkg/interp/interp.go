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

// Package interp executes Befunge-93 programs: a grid of single-character
// opcodes traversed by an instruction pointer that changes direction,
// wraps at the edges, rewrites its own source, and suspends for input.
//
// The engine is cooperative and single-owner. Nothing blocks: the only
// entry point that advances state is Step, and suspension for input is
// expressed purely through the Awaiting status. Pacing, rendering, and
// file handling belong to the driver. Concurrent use of one Interpreter
// requires external synchronization.
package interp

import (
	"math/rand"
	"strings"

	"github.com/mlaszlo/gofunge/pkg/numeric"
)

// Interpreter owns all mutable execution state: the stack, the pointer
// (and through it the playfield), the extended-storage overlay, and the
// output buffer.
type Interpreter struct {
	stack   *Stack
	ip      *Pointer
	storage map[Cell]int

	output strings.Builder
	halted bool

	// gridRev increments whenever grid contents change (load, reset, or
	// a put write). A cheap staleness signal for renderers.
	gridRev uint64

	rng Rand

	// Hook, when non-nil, observes steps and grid access.
	Hook Hook
}

// New creates an interpreter and loads newline-delimited source.
func New(src string) *Interpreter {
	in := &Interpreter{rng: globalRand{}}
	in.Load(src)
	return in
}

// NewFromRows creates an interpreter from an already-split grid.
func NewFromRows(rows [][]byte) *Interpreter {
	in := &Interpreter{rng: globalRand{}}
	in.loadField(NewPlayfieldFromRows(rows))
	return in
}

// SetRand replaces the randomness source behind '?'. Pass a seeded
// *math/rand.Rand for reproducible runs.
func (in *Interpreter) SetRand(r Rand) {
	in.rng = r
}

// Load replaces the program and every piece of execution state, and
// bumps the grid revision.
func (in *Interpreter) Load(src string) {
	in.loadField(NewPlayfield(src))
}

// LoadRows is Load for pre-split grids.
func (in *Interpreter) LoadRows(rows [][]byte) {
	in.loadField(NewPlayfieldFromRows(rows))
}

func (in *Interpreter) loadField(field *Playfield) {
	in.stack = NewStack()
	in.ip = NewPointer(field)
	in.storage = make(map[Cell]int)
	in.output.Reset()
	in.halted = false
	in.gridRev++
}

// Reset restarts execution from the current grid contents, including
// any self-modifications made through 'p'. A program that rewrites
// itself and then resets restarts from the rewritten code; callers
// wanting the pristine source must keep their own copy.
func (in *Interpreter) Reset() {
	in.loadField(in.ip.field)
}

// Pointer exposes the live instruction pointer for drivers and
// debuggers. Treat it as read-only; use View for rendering.
func (in *Interpreter) Pointer() *Pointer {
	return in.ip
}

func (in *Interpreter) Halted() bool {
	return in.halted
}

// Output returns everything written by '.' and ',' so far.
func (in *Interpreter) Output() string {
	return in.output.String()
}

// GridRev returns the monotonic grid revision counter.
func (in *Interpreter) GridRev() uint64 {
	return in.gridRev
}

// ProvideInput satisfies a pending '&' or '~' request. The value is
// buffered and consumed by the next Step call, which pushes it and
// resumes normal execution.
func (in *Interpreter) ProvideInput(v int) {
	in.ip.pendingInput = v
	in.ip.hasPending = true
	in.ip.waitingFor = WaitNone
}

// View builds a copy-based snapshot of the current state.
func (in *Interpreter) View() ViewState {
	x, y := in.ip.Position()

	return ViewState{
		X:         x,
		Y:         y,
		Direction: in.ip.dir.Glyph(),
		Stack:     in.stack.Items(),
		Output:    in.output.String(),
		Grid:      in.ip.field.Rows(),
		Waiting:   in.ip.waitingFor,
		Halted:    in.halted,
		GridRev:   in.gridRev,
	}
}

// Step executes one cell. It reads the character under the pointer,
// applies string-mode, digit, and opcode rules, advances the pointer,
// and reports what the driver should do next.
//
// Stepping a halted interpreter is a no-op that keeps returning Halted.
func (in *Interpreter) Step() Status {
	if in.halted {
		return Halted
	}

	ip := in.ip

	// Input provided between steps is consumed before anything else.
	if ip.hasPending && ip.waitingFor == WaitNone {
		in.stack.Push(ip.pendingInput)
		ip.hasPending = false
		ip.Move()

		if in.Hook != nil {
			in.Hook.Step(in)
		}
		return Running
	}

	ch := ip.field.At(ip.x, ip.y)

	switch {
	case !ip.stringMode && ch == '@':
		in.halted = true
		return Halted

	case ch == '"':
		ip.stringMode = !ip.stringMode

	case ip.stringMode:
		in.stack.Push(int(ch))

	case ch == ' ':
		// noop

	case ch >= '0' && ch <= '9':
		in.stack.Push(int(ch - '0'))

	default:
		if op := opcodes[ch]; op != nil {
			if op(in) == Awaiting {
				return Awaiting
			}
		}
		// Unknown glyphs fall through as noops.
	}

	ip.Move()

	if in.Hook != nil {
		in.Hook.Step(in)
	}
	return Running
}

// PutCell implements the put rule at (x, y), wrapping coordinates. An
// in-range value [0,255] lands in the grid and clears any overlay entry
// for the cell. An out-of-range value goes to the overlay, with the low
// byte of its magnitude written to the grid as a display proxy only.
// Every write bumps the grid revision.
func (in *Interpreter) PutCell(x, y, v int) {
	cx, cy := in.ip.field.Wrap(x, y)

	if v >= 0 && v <= 255 {
		in.ip.field.Set(cx, cy, byte(v))
		delete(in.storage, Cell{cx, cy})
	} else {
		in.storage[Cell{cx, cy}] = v
		in.ip.field.Set(cx, cy, byte(numeric.Abs(v)%256))
	}

	in.gridRev++
}

// CellValue implements the get rule at (x, y), wrapping coordinates:
// the full overlay value if one exists, otherwise the grid character.
func (in *Interpreter) CellValue(x, y int) int {
	cx, cy := in.ip.field.Wrap(x, y)

	if v, ok := in.storage[Cell{cx, cy}]; ok {
		return v
	}

	return int(in.ip.field.At(cx, cy))
}

// globalRand adapts the process-global math/rand source; the default
// when no seeded source has been injected.
type globalRand struct{}

func (globalRand) Intn(n int) int {
	return rand.Intn(n)
}
