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

// Status is the result of one Step call.
type Status uint8

const (
	// Running means the step completed and the pointer advanced.
	Running Status = iota

	// Awaiting means an input opcode suspended execution; the driver
	// must call ProvideInput before stepping resumes progress.
	Awaiting

	// Halted means the program reached '@'. Terminal.
	Halted
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Awaiting:
		return "awaiting input"
	case Halted:
		return "halted"
	}

	return "unknown"
}

// Cell addresses one playfield coordinate.
type Cell struct {
	X, Y int
}

// Hook receives callbacks from the interpreter as it runs. A debugger
// attaches through this; a nil hook costs nothing.
//
// Step fires after each completed step, with the pointer already on the
// next cell. Read fires when 'g' reads a cell, Write when 'p' writes one.
type Hook interface {
	Step(in *Interpreter)
	Read(x, y int, in *Interpreter)
	Write(x, y int, in *Interpreter)
}

// ViewState is a read-only, copy-based snapshot of interpreter state,
// safe to hand to renderers without risking mutation of live state.
type ViewState struct {
	X, Y      int
	Direction byte

	Stack  []int
	Output string
	Grid   [][]byte

	Waiting WaitKind
	Halted  bool
	GridRev uint64
}
