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

package numeric_test

import (
	"testing"

	"github.com/mlaszlo/gofunge/pkg/numeric"
)

func TestTruncDiv(t *testing.T) {
	tests := []struct {
		A, B, Want int
	}{
		{7, 3, 2},
		{-7, 3, -2},
		{7, -3, -2},
		{-7, -3, 2},
		{6, 3, 2},
		{0, 5, 0},
		{5, 0, 0},
		{0, 0, 0},
	}

	for _, test := range tests {
		if have := numeric.TruncDiv(test.A, test.B); have != test.Want {
			t.Errorf(
				"TruncDiv(%d, %d)\nwant:%d\nhave:%d",
				test.A, test.B, test.Want, have,
			)
		}
	}
}

func TestCMod(t *testing.T) {
	tests := []struct {
		A, B, Want int
	}{
		{7, 3, 1},
		{-7, 3, -1},
		{7, -3, 1},
		{-7, -3, -1},
		{6, 3, 0},
		{5, 0, 0},
		{0, 0, 0},
	}

	for _, test := range tests {
		if have := numeric.CMod(test.A, test.B); have != test.Want {
			t.Errorf(
				"CMod(%d, %d)\nwant:%d\nhave:%d",
				test.A, test.B, test.Want, have,
			)
		}
	}
}

// Division and remainder must satisfy a/b*b + a%b == a for every
// nonzero divisor.
func TestDivModIdentity(t *testing.T) {
	for a := -20; a <= 20; a++ {
		for b := -5; b <= 5; b++ {
			if b == 0 {
				continue
			}

			q := numeric.TruncDiv(a, b)
			r := numeric.CMod(a, b)

			if q*b+r != a {
				t.Errorf("identity broken for a=%d b=%d: q=%d r=%d", a, b, q, r)
			}
		}
	}
}

func TestAbs(t *testing.T) {
	tests := []struct {
		V, Want int
	}{
		{0, 0},
		{5, 5},
		{-5, 5},
		{-1000, 1000},
	}

	for _, test := range tests {
		if have := numeric.Abs(test.V); have != test.Want {
			t.Errorf("Abs(%d)\nwant:%d\nhave:%d", test.V, test.Want, have)
		}
	}
}
