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

// Package numeric holds the arithmetic rules Befunge-93 shares with C:
// division truncates toward zero, the remainder takes the sign of the
// dividend, and a zero divisor yields zero instead of faulting.
package numeric

// TruncDiv divides truncating toward zero. TruncDiv(-7, 3) == -2.
// Division by zero yields 0.
func TruncDiv(a, b int) int {
	if b == 0 {
		return 0
	}

	return a / b
}

// CMod is the remainder under truncating division; it carries the sign
// of the dividend, so TruncDiv(a,b)*b + CMod(a,b) == a for b != 0.
// Modulo by zero yields 0.
func CMod(a, b int) int {
	if b == 0 {
		return 0
	}

	return a % b
}

// Abs returns the absolute value of a.
func Abs(a int) int {
	if a < 0 {
		return -a
	}

	return a
}
