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

package settings_test

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/mlaszlo/gofunge/pkg/settings"
)

func TestSidecarPath(t *testing.T) {
	tests := []struct {
		Program, Want string
	}{
		{"maze.bf", "maze.bfdb"},
		{"maze.befunge", "maze.bfdb"},
		{"dir/maze.bf", "dir/maze.bfdb"},
		{"maze", "maze.bfdb"},
	}

	for _, test := range tests {
		if have := settings.SidecarPath(test.Program); have != test.Want {
			t.Errorf(
				"SidecarPath(%q)\nwant:%q\nhave:%q",
				test.Program, test.Want, have,
			)
		}
	}
}

func TestLoadMissingSidecar(t *testing.T) {
	program := filepath.Join(t.TempDir(), "nothing.bf")

	s, err := settings.Load(program)
	if err != nil {
		t.Fatalf("missing sidecar must not error: %v", err)
	}

	if !reflect.DeepEqual(s, settings.Default()) {
		t.Errorf("settings\nwant:%+v\nhave:%+v", settings.Default(), s)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	program := filepath.Join(t.TempDir(), "maze.bf")

	want := settings.Settings{
		DelayMS:      10,
		StepsPerTick: 8,
		Breakpoints:  [][2]int{{2, 0}, {5, 3}},
	}

	if err := want.Save(program); err != nil {
		t.Fatalf("Save: %v", err)
	}

	have, err := settings.Load(program)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if !reflect.DeepEqual(have, want) {
		t.Errorf("settings\nwant:%+v\nhave:%+v", want, have)
	}
}

func TestLoadClampsValues(t *testing.T) {
	program := filepath.Join(t.TempDir(), "maze.bf")

	broken := settings.Settings{DelayMS: -5, StepsPerTick: 0}
	if err := broken.Save(program); err != nil {
		t.Fatalf("Save: %v", err)
	}

	s, err := settings.Load(program)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if s.DelayMS != 0 {
		t.Errorf("DelayMS\nwant:0\nhave:%d", s.DelayMS)
	}

	if s.StepsPerTick != 1 {
		t.Errorf("StepsPerTick\nwant:1\nhave:%d", s.StepsPerTick)
	}
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	program := filepath.Join(t.TempDir(), "maze.bf")
	sidecar := settings.SidecarPath(program)

	data := []byte("delay_ms: 10\nturbo: yes\n")
	if err := os.WriteFile(sidecar, data, 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	s, err := settings.Load(program)
	if err == nil {
		t.Fatal("unknown field must error")
	}

	if !reflect.DeepEqual(s, settings.Default()) {
		t.Errorf("settings on error\nwant:%+v\nhave:%+v", settings.Default(), s)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	program := filepath.Join(t.TempDir(), "maze.bf")
	sidecar := settings.SidecarPath(program)

	if err := os.WriteFile(sidecar, []byte("delay_ms: [oops\n"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := settings.Load(program); err == nil {
		t.Fatal("malformed sidecar must error")
	}
}
