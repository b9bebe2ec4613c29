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

// Direction is one of the four cardinal directions the instruction pointer
// can travel in. X grows east, Y grows south, origin at the top-left.
type Direction uint8

const (
	Right Direction = iota
	Left
	Up
	Down
)

var directionDeltas = [4][2]int{
	Right: {1, 0},
	Left:  {-1, 0},
	Up:    {0, -1},
	Down:  {0, 1},
}

var directionGlyphs = [4]byte{
	Right: '>',
	Left:  '<',
	Up:    '^',
	Down:  'v',
}

var directionNames = [4]string{
	Right: "right",
	Left:  "left",
	Up:    "up",
	Down:  "down",
}

// Delta returns the per-move coordinate deltas for the direction.
func (d Direction) Delta() (dx, dy int) {
	return directionDeltas[d][0], directionDeltas[d][1]
}

// Glyph returns the opcode character that selects the direction.
func (d Direction) Glyph() byte {
	return directionGlyphs[d]
}

func (d Direction) String() string {
	return directionNames[d]
}

// DirectionForGlyph maps the four cardinal opcode glyphs to their direction.
// '?' and '#' are not directions and are handled by the opcode layer.
func DirectionForGlyph(ch byte) (Direction, bool) {
	switch ch {
	case '>':
		return Right, true
	case '<':
		return Left, true
	case '^':
		return Up, true
	case 'v':
		return Down, true
	}

	return Right, false
}

// Rand is the randomness capability behind the '?' opcode. *math/rand.Rand
// satisfies it, as does any test double with a canned sequence.
type Rand interface {
	Intn(n int) int
}

// RandomDirection picks one of the four directions with uniform probability.
func RandomDirection(r Rand) Direction {
	return Direction(r.Intn(4))
}
