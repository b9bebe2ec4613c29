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
	"fmt"

	"github.com/mlaszlo/gofunge/pkg/interp"
)

func (dbg *Debugger) Step(in *interp.Interpreter) {
	if dbg.Break {
		dbg.HandleBreak(dbg, in)
		return
	}

	x, y := in.Pointer().Position()

	for _, breakpoint := range dbg.Breakpoints {
		if breakpoint.X == x && breakpoint.Y == y {
			dbg.HandleBreak(dbg, in)
			break
		}
	}
}

func (dbg *Debugger) Read(x, y int, in *interp.Interpreter) {
	for _, watchpoint := range dbg.Watchpoints {
		if watchpoint.Type == WriteWatch {
			continue
		}

		if watchpoint.X == x && watchpoint.Y == y {
			dbg.HandleRead(x, y, dbg, in)
			break
		}
	}
}

func (dbg *Debugger) Write(x, y int, in *interp.Interpreter) {
	for _, watchpoint := range dbg.Watchpoints {
		if watchpoint.Type == ReadWatch {
			continue
		}

		if watchpoint.X == x && watchpoint.Y == y {
			dbg.HandleWrite(x, y, dbg, in)
			break
		}
	}
}

// PrintField prints a window of the playfield centered on the
// instruction pointer, with the pointer's cell highlighted. The window
// is clipped to the grid, not wrapped, so the printout reads like the
// source.
func (dbg *Debugger) PrintField(in *interp.Interpreter, cols, rows int) {
	vs := in.View()

	width := len(vs.Grid[0])
	height := len(vs.Grid)

	x0 := clamp(vs.X-cols/2, 0, width-cols)
	y0 := clamp(vs.Y-rows/2, 0, height-rows)

	for y := y0; y < y0+rows && y < height; y++ {
		fmt.Printf("\033[1;30m%3d\033[0m ", y)

		for x := x0; x < x0+cols && x < width; x++ {
			if x == vs.X && y == vs.Y {
				fmt.Printf("\033[7m%c\033[0m", vs.Grid[y][x])
			} else {
				fmt.Printf("%c", vs.Grid[y][x])
			}
		}

		fmt.Println()
	}

	fmt.Printf(
		"\033[1mIP:\033[0m (%d, %d) %c  \033[1mstatus:\033[0m", vs.X, vs.Y, vs.Direction,
	)

	if vs.Halted {
		fmt.Println(" halted")
	} else if vs.Waiting != interp.WaitNone {
		fmt.Printf(" awaiting %s input\n", vs.Waiting)
	} else {
		fmt.Println(" running")
	}
}

// PrintStack prints the stack bottom to top, one value per line, with
// the printable character alongside byte-range values.
func (dbg *Debugger) PrintStack(in *interp.Interpreter) {
	values := in.View().Stack

	if len(values) == 0 {
		fmt.Println("Stack empty")
		return
	}

	for i, v := range values {
		marker := " "
		if i == len(values)-1 {
			marker = "*"
		}

		if v >= 32 && v <= 126 {
			fmt.Printf("%s %2d: %d \033[1;30m'%c'\033[0m\n", marker, i, v, byte(v))
		} else {
			fmt.Printf("%s %2d: %d\n", marker, i, v)
		}
	}
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}

	if v < lo {
		return lo
	}

	if v > hi {
		return hi
	}

	return v
}
