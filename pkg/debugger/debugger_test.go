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

package debugger_test

import (
	"testing"

	"github.com/mlaszlo/gofunge/pkg/debugger"
	"github.com/mlaszlo/gofunge/pkg/interp"
)

func runToHalt(t *testing.T, in *interp.Interpreter) {
	t.Helper()

	for i := 0; i < 1000; i++ {
		if in.Step() == interp.Halted {
			return
		}
	}

	t.Fatal("program did not halt")
}

func TestBreakpoint(t *testing.T) {
	hits := 0

	dbg := &debugger.Debugger{
		Breakpoints: []debugger.Breakpoint{{X: 2, Y: 0}},
		HandleBreak: func(d *debugger.Debugger, in *interp.Interpreter) {
			hits++

			if x, y := in.Pointer().Position(); x != 2 || y != 0 {
				t.Errorf("break position\nwant:(2, 0)\nhave:(%d, %d)", x, y)
			}
		},
	}

	in := interp.New("123@")
	in.Hook = dbg

	runToHalt(t, in)

	if hits != 1 {
		t.Errorf("break hits\nwant:1\nhave:%d", hits)
	}
}

func TestBreakFlagFiresEveryStep(t *testing.T) {
	hits := 0

	dbg := &debugger.Debugger{
		Break: true,
		HandleBreak: func(d *debugger.Debugger, in *interp.Interpreter) {
			hits++
		},
	}

	in := interp.New("123@")
	in.Hook = dbg

	runToHalt(t, in)

	// One per executed step; the halting step fires no hook.
	if hits != 3 {
		t.Errorf("break hits\nwant:3\nhave:%d", hits)
	}
}

func TestWatchpoints(t *testing.T) {
	tests := []struct {
		Name       string
		Type       debugger.WatchpointType
		WantReads  int
		WantWrites int
	}{
		{"any watch sees both", debugger.AnyWatch, 1, 1},
		{"read watch ignores writes", debugger.ReadWatch, 1, 0},
		{"write watch ignores reads", debugger.WriteWatch, 0, 1},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			reads, writes := 0, 0

			dbg := &debugger.Debugger{
				Watchpoints: []debugger.Watchpoint{{X: 1, Y: 1, Type: test.Type}},
				HandleRead: func(x, y int, d *debugger.Debugger, in *interp.Interpreter) {
					reads++

					if x != 1 || y != 1 {
						t.Errorf("read position\nwant:(1, 1)\nhave:(%d, %d)", x, y)
					}
				},
				HandleWrite: func(x, y int, d *debugger.Debugger, in *interp.Interpreter) {
					writes++

					if x != 1 || y != 1 {
						t.Errorf("write position\nwant:(1, 1)\nhave:(%d, %d)", x, y)
					}
				},
			}

			in := interp.New("711p11g@")
			in.Hook = dbg

			runToHalt(t, in)

			if reads != test.WantReads {
				t.Errorf("reads\nwant:%d\nhave:%d", test.WantReads, reads)
			}

			if writes != test.WantWrites {
				t.Errorf("writes\nwant:%d\nhave:%d", test.WantWrites, writes)
			}
		})
	}
}

func TestWatchpointOtherCellQuiet(t *testing.T) {
	fired := false

	dbg := &debugger.Debugger{
		Watchpoints: []debugger.Watchpoint{{X: 5, Y: 5, Type: debugger.AnyWatch}},
		HandleRead: func(x, y int, d *debugger.Debugger, in *interp.Interpreter) {
			fired = true
		},
		HandleWrite: func(x, y int, d *debugger.Debugger, in *interp.Interpreter) {
			fired = true
		},
	}

	in := interp.New("711p11g@")
	in.Hook = dbg

	runToHalt(t, in)

	if fired {
		t.Error("watchpoint on untouched cell must stay quiet")
	}
}
