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
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/mlaszlo/gofunge/pkg/debugger"
	"github.com/mlaszlo/gofunge/pkg/interp"
	"github.com/mlaszlo/gofunge/pkg/settings"
	"github.com/mlaszlo/gofunge/pkg/sniff"
)

var helpvar bool
var debugvar bool
var delayvar int
var stepsvar int
var seedvar int64
var loglevelvar string
var shouldexit bool

const usage = "gofunge [-debug] [-delay ms] [-steps n] [-seed n] filename"

func init() {
	flag.BoolVar(&helpvar, "help", false, "Displays command usage")
	flag.BoolVar(&debugvar, "debug", false, "Runs the program in a debug CLI")
	flag.IntVar(&delayvar, "delay", -1, "Milliseconds between ticks")
	flag.IntVar(&stepsvar, "steps", 0, "Steps executed per tick")
	flag.Int64Var(&seedvar, "seed", 0, "Seed for the ? opcode (0 = nondeterministic)")
	flag.StringVar(&loglevelvar, "log-level", "warn", "Log level: debug, info, warn, error")
	flag.Parse()
}

var stdin = bufio.NewReader(os.Stdin)

func gofunge() int {
	logger := newLogger(loglevelvar)
	slog.SetDefault(logger)

	if helpvar {
		fmt.Println(usage)
		return 0
	}

	args := flag.Args()

	if len(args) != 1 {
		fmt.Println(usage)
		return 1
	}

	path := args[0]
	data, err := os.ReadFile(path)

	if err != nil {
		logger.Error("read program", "err", err)
		return 1
	}

	if !sniff.IsBefungePath(path) {
		logger.Warn("unrecognized extension, expected .bf or .befunge", "path", path)
	}

	if !sniff.PossiblySource(string(data), false) {
		logger.Warn("content does not look like Befunge-93 source", "path", path)
	}

	in := interp.New(string(data))

	if seedvar != 0 {
		in.SetRand(rand.New(rand.NewSource(seedvar)))
	}

	st := settings.Default()
	st.DelayMS = 0

	if debugvar {
		loaded, err := settings.Load(path)

		if err != nil {
			logger.Warn(
				"sidecar settings unreadable, using defaults",
				"path", settings.SidecarPath(path),
				"err", err,
			)
		} else {
			st = loaded
		}
	}

	saved := st

	if delayvar >= 0 {
		st.DelayMS = delayvar
	}

	if stepsvar > 0 {
		st.StepsPerTick = stepsvar
	}

	var dbg *debugger.Debugger

	if debugvar {
		dbg = &debugger.Debugger{
			HandleBreak: handleBreak,
			HandleRead:  handleRead,
			HandleWrite: handleWrite,
		}

		for _, bp := range st.Breakpoints {
			dbg.Breakpoints = append(
				dbg.Breakpoints,
				debugger.Breakpoint{X: bp[0], Y: bp[1]},
			)
		}

		in.Hook = dbg

		c := make(chan os.Signal, 1)
		defer close(c)

		signal.Notify(c, os.Interrupt)
		go func() {
			for range c {
				fmt.Println()
				dbg.Break = true
			}
		}()
	}

	logger.Info(
		"program loaded",
		"path", path,
		"width", in.Pointer().Field().OrigWidth(),
		"height", in.Pointer().Field().OrigHeight(),
	)

	enterRawTerm()
	defer exitRawTerm()

	if debugvar {
		debugREPL(dbg, in)
	}

	printed := 0

	for !shouldexit && !in.Halted() {
		for i := 0; i < st.StepsPerTick && !shouldexit; i++ {
			status := in.Step()

			if status == interp.Halted {
				break
			}

			if status == interp.Awaiting {
				if err := satisfyInput(in); err != nil {
					logger.Error("input", "err", err)
					shouldexit = true
				}
			}
		}

		printed = flushOutput(in, printed)

		if st.DelayMS > 0 && !in.Halted() {
			time.Sleep(time.Duration(st.DelayMS) * time.Millisecond)
		}
	}

	printed = flushOutput(in, printed)

	if printed > 0 && !strings.HasSuffix(in.Output(), "\n") {
		fmt.Println()
	}

	if debugvar {
		saveSettings(dbg, st, saved, path, logger)
	}

	return 0
}

// flushOutput writes any new tail of the interpreter's output buffer
// to stdout and returns the new high-water mark.
func flushOutput(in *interp.Interpreter, printed int) int {
	out := in.Output()

	if len(out) > printed {
		os.Stdout.WriteString(out[printed:])
	}

	return len(out)
}

// satisfyInput services an Awaiting status: one raw byte for '~', a
// line-read integer for '&'. The engine never blocks; this does.
func satisfyInput(in *interp.Interpreter) error {
	switch in.Pointer().WaitingFor() {
	case interp.WaitChar:
		b, err := stdin.ReadByte()

		if err != nil {
			return err
		}

		in.ProvideInput(int(b))

	case interp.WaitInt:
		exitRawTerm()
		defer enterRawTerm()

		for {
			fmt.Print("int> ")
			line, err := stdin.ReadString('\n')

			if err != nil {
				return err
			}

			v, err := strconv.Atoi(strings.TrimSpace(line))

			if err != nil {
				fmt.Println("Not an integer")
				continue
			}

			in.ProvideInput(v)
			return nil
		}
	}

	return nil
}

func saveSettings(
	dbg *debugger.Debugger,
	st, saved settings.Settings,
	path string,
	logger *slog.Logger,
) {
	st.Breakpoints = nil
	for _, bp := range dbg.Breakpoints {
		st.Breakpoints = append(st.Breakpoints, [2]int{bp.X, bp.Y})
	}

	if settingsEqual(st, saved) {
		return
	}

	if err := st.Save(path); err != nil {
		logger.Warn("sidecar settings not saved", "err", err)
	} else {
		logger.Info("sidecar settings saved", "path", settings.SidecarPath(path))
	}
}

func settingsEqual(a, b settings.Settings) bool {
	if a.DelayMS != b.DelayMS || a.StepsPerTick != b.StepsPerTick {
		return false
	}

	if len(a.Breakpoints) != len(b.Breakpoints) {
		return false
	}

	for i := range a.Breakpoints {
		if a.Breakpoints[i] != b.Breakpoints[i] {
			return false
		}
	}

	return true
}

func main() {
	os.Exit(gofunge())
}
