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

// Package sniff holds lightweight Befunge file and source heuristics.
// They are intentionally permissive: the engine accepts anything, so
// these exist only to warn a user who opened the wrong file.
package sniff

import (
	"path/filepath"
	"strings"
)

// Recognized filename extensions for Befunge-93 programs.
var allowedExtensions = map[string]bool{
	".bf":      true,
	".befunge": true,
}

// Glyphs that strongly suggest Befunge-93 source.
const hintGlyphs = "><^v@\"&~_|\\$.,+-*/%`!pg0123456789:#?"

// IsBefungePath reports whether the path has a known Befunge extension.
func IsBefungePath(path string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(path))]
}

// PossiblySource reports whether src could plausibly be Befunge-93.
// Empty strings pass. NUL bytes fail (likely a binary file). With
// requireHalt set, an '@' opcode must appear; otherwise any hint glyph
// is enough.
func PossiblySource(src string, requireHalt bool) bool {
	if src == "" {
		return true
	}

	if strings.ContainsRune(src, 0) {
		return false
	}

	if requireHalt {
		return strings.ContainsRune(src, '@')
	}

	return strings.ContainsAny(src, hintGlyphs)
}
