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

// Package settings persists per-program run settings in a YAML sidecar
// file next to the program source. The engine knows nothing about
// these; they belong to the driver.
package settings

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const sidecarExt = ".bfdb"

// Settings carries the driver knobs worth keeping between runs.
type Settings struct {
	DelayMS      int      `yaml:"delay_ms"`
	StepsPerTick int      `yaml:"steps_per_tick"`
	Breakpoints  [][2]int `yaml:"breakpoints,omitempty"`
}

// Default returns the settings applied to programs without a sidecar.
func Default() Settings {
	return Settings{
		DelayMS:      50,
		StepsPerTick: 1,
	}
}

// SidecarPath returns the sidecar filename for a program path, its
// extension replaced with ".bfdb".
func SidecarPath(program string) string {
	ext := filepath.Ext(program)
	return strings.TrimSuffix(program, ext) + sidecarExt
}

// Load reads the sidecar for a program. A missing sidecar is not an
// error; the defaults come back with err == nil. Unknown fields are
// rejected so a mangled sidecar surfaces instead of half-applying.
func Load(program string) (Settings, error) {
	s := Default()

	data, err := os.ReadFile(SidecarPath(program))
	if os.IsNotExist(err) {
		return s, nil
	} else if err != nil {
		return s, err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&s); err != nil {
		return Default(), err
	}

	if s.StepsPerTick < 1 {
		s.StepsPerTick = 1
	}

	if s.DelayMS < 0 {
		s.DelayMS = 0
	}

	return s, nil
}

// Save writes the sidecar for a program.
func (s Settings) Save(program string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}

	return os.WriteFile(SidecarPath(program), data, 0644)
}
