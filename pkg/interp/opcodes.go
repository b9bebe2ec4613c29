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
	"strconv"

	"github.com/mlaszlo/gofunge/pkg/numeric"
)

// opFunc performs one opcode against the interpreter. Most return
// Running; the input opcodes return Awaiting.
type opFunc func(in *Interpreter) Status

// opcodes is the dispatch table, indexed by glyph byte. Digits, space,
// '"', and '@' are handled in the Step loop, not here; entries left nil
// execute as noops.
var opcodes [256]opFunc

func init() {
	// Arithmetic. Pop b then a, push a OP b.
	opcodes['+'] = (*Interpreter).opAdd
	opcodes['-'] = (*Interpreter).opSub
	opcodes['*'] = (*Interpreter).opMul
	opcodes['/'] = (*Interpreter).opDiv
	opcodes['%'] = (*Interpreter).opMod

	// Comparison / logic.
	opcodes['`'] = (*Interpreter).opGreater
	opcodes['!'] = (*Interpreter).opNot

	// Self-modifying code.
	opcodes['p'] = (*Interpreter).opPut
	opcodes['g'] = (*Interpreter).opGet

	// Input.
	opcodes['&'] = (*Interpreter).opAwaitInt
	opcodes['~'] = (*Interpreter).opAwaitChar

	// Flow conditionals.
	opcodes['_'] = (*Interpreter).opIfHorizontal
	opcodes['|'] = (*Interpreter).opIfVertical

	// Stack manipulation.
	opcodes[':'] = (*Interpreter).opDup
	opcodes['\\'] = (*Interpreter).opSwap
	opcodes['$'] = (*Interpreter).opDiscard

	// Output.
	opcodes['.'] = (*Interpreter).opOutInt
	opcodes[','] = (*Interpreter).opOutChar

	// Direction changes.
	opcodes['>'] = (*Interpreter).opRight
	opcodes['<'] = (*Interpreter).opLeft
	opcodes['^'] = (*Interpreter).opUp
	opcodes['v'] = (*Interpreter).opDown
	opcodes['?'] = (*Interpreter).opRandom

	// Bridge.
	opcodes['#'] = (*Interpreter).opBridge
}

// binaryOp pops b then a, so a is the operand pushed earlier, and
// pushes fn(a, b).
func (in *Interpreter) binaryOp(fn func(a, b int) int) Status {
	b, a := in.stack.PopTwo()
	in.stack.Push(fn(a, b))
	return Running
}

func (in *Interpreter) opAdd() Status {
	return in.binaryOp(func(a, b int) int { return a + b })
}

func (in *Interpreter) opSub() Status {
	return in.binaryOp(func(a, b int) int { return a - b })
}

func (in *Interpreter) opMul() Status {
	return in.binaryOp(func(a, b int) int { return a * b })
}

func (in *Interpreter) opDiv() Status {
	return in.binaryOp(numeric.TruncDiv)
}

func (in *Interpreter) opMod() Status {
	return in.binaryOp(numeric.CMod)
}

func (in *Interpreter) opGreater() Status {
	return in.binaryOp(func(a, b int) int {
		if a > b {
			return 1
		}
		return 0
	})
}

func (in *Interpreter) opNot() Status {
	if in.stack.Pop() == 0 {
		in.stack.Push(1)
	} else {
		in.stack.Push(0)
	}
	return Running
}

func (in *Interpreter) opPut() Status {
	y := in.stack.Pop()
	x := in.stack.Pop()
	v := in.stack.Pop()

	in.PutCell(x, y, v)

	if in.Hook != nil {
		cx, cy := in.ip.field.Wrap(x, y)
		in.Hook.Write(cx, cy, in)
	}
	return Running
}

func (in *Interpreter) opGet() Status {
	y := in.stack.Pop()
	x := in.stack.Pop()

	in.stack.Push(in.CellValue(x, y))

	if in.Hook != nil {
		cx, cy := in.ip.field.Wrap(x, y)
		in.Hook.Read(cx, cy, in)
	}
	return Running
}

func (in *Interpreter) opAwaitInt() Status {
	in.ip.waitingFor = WaitInt
	return Awaiting
}

func (in *Interpreter) opAwaitChar() Status {
	in.ip.waitingFor = WaitChar
	return Awaiting
}

func (in *Interpreter) opIfHorizontal() Status {
	if in.stack.Pop() == 0 {
		in.ip.ChangeDirection(Right, false)
	} else {
		in.ip.ChangeDirection(Left, false)
	}
	return Running
}

func (in *Interpreter) opIfVertical() Status {
	if in.stack.Pop() == 0 {
		in.ip.ChangeDirection(Down, false)
	} else {
		in.ip.ChangeDirection(Up, false)
	}
	return Running
}

// opDup pushes what a pop would have yielded, 0 on an empty stack.
func (in *Interpreter) opDup() Status {
	in.stack.Push(in.stack.Peek())
	return Running
}

func (in *Interpreter) opSwap() Status {
	in.stack.Swap()
	return Running
}

func (in *Interpreter) opDiscard() Status {
	if in.stack.Size() > 0 {
		in.stack.Pop()
	}
	return Running
}

func (in *Interpreter) opOutInt() Status {
	in.output.WriteString(strconv.Itoa(in.stack.Pop()))
	return Running
}

func (in *Interpreter) opOutChar() Status {
	in.output.WriteByte(byte(floorMod(in.stack.Pop(), 256)))
	return Running
}

func (in *Interpreter) opRight() Status {
	in.ip.ChangeDirection(Right, false)
	return Running
}

func (in *Interpreter) opLeft() Status {
	in.ip.ChangeDirection(Left, false)
	return Running
}

func (in *Interpreter) opUp() Status {
	in.ip.ChangeDirection(Up, false)
	return Running
}

func (in *Interpreter) opDown() Status {
	in.ip.ChangeDirection(Down, false)
	return Running
}

func (in *Interpreter) opRandom() Status {
	in.ip.ChangeDirection(RandomDirection(in.rng), true)
	return Running
}

func (in *Interpreter) opBridge() Status {
	in.ip.skip = true
	return Running
}
