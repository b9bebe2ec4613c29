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

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"github.com/mlaszlo/gofunge/pkg/debugger"
	"github.com/mlaszlo/gofunge/pkg/interp"
)

var lastcmd []string

// stepsleft counts remaining steps of a multi-step 'n [count]' before
// the REPL reopens.
var stepsleft int

func parseCell(args []string) (x, y int, err error) {
	if len(args) != 2 {
		return 0, 0, fmt.Errorf("expected two coordinates")
	}

	x, err = strconv.Atoi(args[0])

	if err != nil {
		return 0, 0, err
	}

	y, err = strconv.Atoi(args[1])

	if err != nil {
		return 0, 0, err
	}

	return x, y, nil
}

func debugBreak(dbg *debugger.Debugger, args []string) {
	const usage = "break [add|list|remove|clear]"

	if len(args) == 0 {
		args = append(args, "l")
	}

	cmd := args[0]
	args = args[1:]

	switch cmd {
	case "a", "add":
		const usage = "break add [x] [y]"

		x, y, err := parseCell(args)

		if err != nil {
			fmt.Println(usage)
			return
		}

		for _, breakpoint := range dbg.Breakpoints {
			if breakpoint.X == x && breakpoint.Y == y {
				return
			}
		}

		dbg.Breakpoints = append(dbg.Breakpoints, debugger.Breakpoint{X: x, Y: y})
		fmt.Printf("Breakpoint added (%d, %d)\n", x, y)

	case "l", "ls", "list":
		for i, breakpoint := range dbg.Breakpoints {
			fmt.Printf("#%d: (%d, %d)\n", i, breakpoint.X, breakpoint.Y)
		}

	case "r", "rm", "remove":
		const usage = "break remove [#]"

		if len(args) != 1 {
			fmt.Println(usage)
			return
		}

		i, err := strconv.Atoi(args[0])

		if err != nil || i < 0 || i >= len(dbg.Breakpoints) {
			fmt.Println("Invalid breakpoint number")
			return
		}

		dbg.Breakpoints[i] = dbg.Breakpoints[len(dbg.Breakpoints)-1]
		dbg.Breakpoints = dbg.Breakpoints[:len(dbg.Breakpoints)-1]
		fmt.Printf("Breakpoint removed [%d]\n", i)

	case "clear":
		dbg.Breakpoints = nil
		fmt.Println("Breakpoints reset")

	default:
		fmt.Println(usage)
	}
}

func debugWatch(dbg *debugger.Debugger, args []string) {
	const usage = "watch [add|list|remove|clear]"

	if len(args) == 0 {
		args = append(args, "l")
	}

	cmd := args[0]
	args = args[1:]

	switch cmd {
	case "a", "add":
		const usage = "watch add [x] [y] [read|write|any]"

		kind := debugger.AnyWatch

		if len(args) == 3 {
			switch args[2] {
			case "r", "read":
				kind = debugger.ReadWatch
			case "w", "write":
				kind = debugger.WriteWatch
			case "any":
			default:
				fmt.Println(usage)
				return
			}

			args = args[:2]
		}

		x, y, err := parseCell(args)

		if err != nil {
			fmt.Println(usage)
			return
		}

		dbg.Watchpoints = append(
			dbg.Watchpoints,
			debugger.Watchpoint{X: x, Y: y, Type: kind},
		)
		fmt.Printf("Watchpoint added (%d, %d)\n", x, y)

	case "l", "ls", "list":
		for i, watchpoint := range dbg.Watchpoints {
			kind := "any"

			switch watchpoint.Type {
			case debugger.ReadWatch:
				kind = "read"
			case debugger.WriteWatch:
				kind = "write"
			}

			fmt.Printf("#%d: (%d, %d) %s\n", i, watchpoint.X, watchpoint.Y, kind)
		}

	case "r", "rm", "remove":
		const usage = "watch remove [#]"

		if len(args) != 1 {
			fmt.Println(usage)
			return
		}

		i, err := strconv.Atoi(args[0])

		if err != nil || i < 0 || i >= len(dbg.Watchpoints) {
			fmt.Println("Invalid watchpoint number")
			return
		}

		dbg.Watchpoints[i] = dbg.Watchpoints[len(dbg.Watchpoints)-1]
		dbg.Watchpoints = dbg.Watchpoints[:len(dbg.Watchpoints)-1]
		fmt.Printf("Watchpoint removed [%d]\n", i)

	case "clear":
		dbg.Watchpoints = nil
		fmt.Println("Watchpoints reset")

	default:
		fmt.Println(usage)
	}
}

func debugSet(in *interp.Interpreter, args []string) {
	const usage = "set [x] [y] [value]"

	if len(args) != 3 {
		fmt.Println(usage)
		return
	}

	v, err := strconv.Atoi(args[2])

	if err != nil {
		fmt.Println(usage)
		return
	}

	x, y, err := parseCell(args[:2])

	if err != nil {
		fmt.Println(usage)
		return
	}

	in.PutCell(x, y, v)
	fmt.Printf("(%d, %d) = %d\n", x, y, in.CellValue(x, y))
}

func debugInput(in *interp.Interpreter, args []string) {
	const usage = "input [value]"

	if len(args) != 1 {
		fmt.Println(usage)
		return
	}

	if in.Pointer().WaitingFor() == interp.WaitNone {
		fmt.Println("Interpreter is not awaiting input")
		return
	}

	v, err := strconv.Atoi(args[0])

	if err != nil {
		fmt.Println(usage)
		return
	}

	in.ProvideInput(v)
}

func debugREPL(dbg *debugger.Debugger, in *interp.Interpreter) {
	exitRawTerm()
	defer enterRawTerm()

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	for {
		input, err := line.Prompt("\033[1;30m(dbg)\033[0m ")

		if err != nil {
			// io.EOF or liner.ErrPromptAborted
			fmt.Println()
			shouldexit = true
			return
		}

		args := strings.Split(strings.TrimSpace(input), " ")

		if len(args[0]) == 0 {
			if len(lastcmd) == 0 {
				continue
			}
			args = lastcmd
		} else {
			line.AppendHistory(input)
			lastcmd = make([]string, len(args))
			copy(lastcmd, args)
		}

		cmd := args[0]
		args = args[1:]

		switch cmd {
		case "b", "bp", "break", "breakpoint":
			debugBreak(dbg, args)

		case "w", "wp", "watch", "watchpoint":
			debugWatch(dbg, args)

		case "s", "st", "stack":
			dbg.PrintStack(in)

		case "v", "view":
			dbg.PrintField(in, 64, 16)

		case "o", "out", "output":
			fmt.Println(in.Output())

		case "set":
			debugSet(in, args)

		case "i", "input":
			debugInput(in, args)

		case "c", "continue":
			stepsleft = 0
			dbg.Break = false
			return

		case "n", "next", "step":
			const usage = "step [count]"

			stepsleft = 0

			if len(args) == 1 {
				count, err := strconv.Atoi(args[0])

				if err != nil || count < 1 {
					fmt.Println(usage)
					continue
				}

				stepsleft = count - 1
			} else if len(args) > 1 {
				fmt.Println(usage)
				continue
			}

			dbg.Break = true
			return

		case "reset":
			in.Reset()
			fmt.Println("Interpreter reset (grid edits preserved)")

		case "clear":
			fmt.Print("\033[H\033[2J")

		case "q", "quit", "exit":
			shouldexit = true
			return

		default:
			fmt.Printf("error: '%s' is not a valid command\n", cmd)
		}
	}
}

func handleBreak(dbg *debugger.Debugger, in *interp.Interpreter) {
	if stepsleft > 0 {
		stepsleft--
		return
	}

	if !dbg.Break {
		fmt.Println()
		fmt.Println("Program stopped")
		dbg.PrintField(in, 64, 8)
	}
	debugREPL(dbg, in)
}

func handleRead(x, y int, dbg *debugger.Debugger, in *interp.Interpreter) {
	fmt.Println()
	fmt.Printf("Read watchpoint hit (%d, %d) = %d\n", x, y, in.CellValue(x, y))
	debugREPL(dbg, in)
}

func handleWrite(x, y int, dbg *debugger.Debugger, in *interp.Interpreter) {
	fmt.Println()
	fmt.Printf("Write watchpoint hit (%d, %d) = %d\n", x, y, in.CellValue(x, y))
	debugREPL(dbg, in)
}
