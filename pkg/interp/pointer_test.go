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

import (
	"testing"
)

func TestPointerToroidalMovement(t *testing.T) {
	f := NewPlayfield("")
	p := NewPointer(f)

	// Width moves in one direction return the pointer to its start.
	for i := 0; i < f.Width(); i++ {
		p.Move()
	}

	if x, y := p.Position(); x != 0 || y != 0 {
		t.Errorf(
			"position after %d horizontal moves\nwant:(0, 0)\nhave:(%d, %d)",
			f.Width(), x, y,
		)
	}

	p.ChangeDirection(Down, false)

	for i := 0; i < f.Height(); i++ {
		p.Move()
	}

	if x, y := p.Position(); x != 0 || y != 0 {
		t.Errorf(
			"position after %d vertical moves\nwant:(0, 0)\nhave:(%d, %d)",
			f.Height(), x, y,
		)
	}
}

func TestPointerWrapsBackward(t *testing.T) {
	f := NewPlayfield("")
	p := NewPointer(f)

	p.ChangeDirection(Left, false)
	p.Move()

	if x, y := p.Position(); x != f.Width()-1 || y != 0 {
		t.Errorf(
			"position after leftward wrap\nwant:(%d, 0)\nhave:(%d, %d)",
			f.Width()-1, x, y,
		)
	}

	p = NewPointer(f)
	p.ChangeDirection(Up, false)
	p.Move()

	if x, y := p.Position(); x != 0 || y != f.Height()-1 {
		t.Errorf(
			"position after upward wrap\nwant:(0, %d)\nhave:(%d, %d)",
			f.Height()-1, x, y,
		)
	}
}

func TestPointerBridge(t *testing.T) {
	f := NewPlayfield("")
	p := NewPointer(f)

	p.skip = true
	p.Move()

	if x, _ := p.Position(); x != 2 {
		t.Errorf("bridge move\nwant:x=2\nhave:x=%d", x)
	}

	if p.Skip() {
		t.Error("skip flag not consumed by Move")
	}

	// The following move advances a single cell again.
	p.Move()

	if x, _ := p.Position(); x != 3 {
		t.Errorf("move after bridge\nwant:x=3\nhave:x=%d", x)
	}
}

func TestPointerBridgeSurvivesDirectionChange(t *testing.T) {
	f := NewPlayfield("")
	p := NewPointer(f)

	// Skip set during a step is consumed by the first Move afterwards,
	// regardless of what else happened in between.
	p.skip = true
	p.ChangeDirection(Down, false)
	p.Move()

	if x, y := p.Position(); x != 0 || y != 2 {
		t.Errorf("bridge after turn\nwant:(0, 2)\nhave:(%d, %d)", x, y)
	}
}

func TestPointerChangeDirection(t *testing.T) {
	f := NewPlayfield("")
	p := NewPointer(f)

	p.ChangeDirection(Up, true)

	if p.Direction() != Up {
		t.Errorf("direction\nwant:%v\nhave:%v", Up, p.Direction())
	}

	if !p.LastWasRandom() {
		t.Error("LastWasRandom\nwant:true\nhave:false")
	}

	p.ChangeDirection(Right, false)

	if p.LastWasRandom() {
		t.Error("LastWasRandom\nwant:false\nhave:true")
	}
}
