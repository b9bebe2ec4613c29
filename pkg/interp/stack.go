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

// Stack is the Befunge operand stack. Popping or peeking an empty stack
// yields 0 rather than failing.
type Stack struct {
	items []int
}

func NewStack() *Stack {
	return &Stack{}
}

func (s *Stack) Push(v int) {
	s.items = append(s.items, v)
}

// Pop removes and returns the top element, or 0 if the stack is empty.
func (s *Stack) Pop() int {
	if len(s.items) == 0 {
		return 0
	}

	v := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return v
}

// Peek returns the top element without removing it, or 0 if empty.
func (s *Stack) Peek() int {
	if len(s.items) == 0 {
		return 0
	}

	return s.items[len(s.items)-1]
}

func (s *Stack) Size() int {
	return len(s.items)
}

// PopTwo pops two elements, returning (top, next). With one element it
// returns (that value, 0) and leaves the stack empty; the single real
// element is consumed, not peeked past. With none it returns (0, 0).
func (s *Stack) PopTwo() (top, next int) {
	switch len(s.items) {
	case 0:
		return 0, 0
	case 1:
		return s.Pop(), 0
	}

	return s.Pop(), s.Pop()
}

// Swap exchanges the top two elements, filling short stacks per PopTwo:
// one element becomes [value, 0] and an empty stack becomes [0, 0].
func (s *Stack) Swap() {
	top, next := s.PopTwo()
	s.Push(top)
	s.Push(next)
}

// Items returns a copy of the stack contents, bottom to top.
func (s *Stack) Items() []int {
	out := make([]int, len(s.items))
	copy(out, s.items)
	return out
}
