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

package debugger

import (
	"github.com/mlaszlo/gofunge/pkg/interp"
)

type WatchpointType uint

const (
	AnyWatch WatchpointType = iota
	ReadWatch
	WriteWatch
)

// Breakpoint pauses execution when the instruction pointer stands on
// the cell.
type Breakpoint struct {
	X, Y int
}

// Watchpoint pauses execution when 'g' or 'p' touches the cell.
type Watchpoint struct {
	X, Y int
	Type WatchpointType
}

// Debugger observes an Interpreter through its Hook interface. The
// handlers run on the driver's goroutine, inside Step.
type Debugger struct {
	Break bool

	Breakpoints []Breakpoint
	Watchpoints []Watchpoint

	HandleBreak func(*Debugger, *interp.Interpreter)
	HandleRead  func(x, y int, dbg *Debugger, in *interp.Interpreter)
	HandleWrite func(x, y int, dbg *Debugger, in *interp.Interpreter)
}
