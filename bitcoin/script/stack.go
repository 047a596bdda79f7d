package script

//----------------------------------------------------------------------
// This file is part of Gospel.
// Copyright (C) 2011-present Bernd Fix
//
// Gospel is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gospel is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gospel.  If not, see <http://www.gnu.org/licenses/>.
//----------------------------------------------------------------------

import "github.com/bfix/cryptos/errs"

// Stack is the data stack a script evaluation runs over. Elements are raw
// byte strings (signatures, public keys, hashes); there is no integer
// stack type here, since nothing in the P2PKH template needs numeric
// stack arithmetic.
type Stack struct {
	d [][]byte
}

// NewStack creates a new empty stack.
func NewStack() *Stack {
	return &Stack{}
}

// Len returns the number of elements on the stack.
func (s *Stack) Len() int {
	return len(s.d)
}

// Push pushes v onto the top of the stack.
func (s *Stack) Push(v []byte) {
	s.d = append(s.d, v)
}

// Peek returns the top-of-stack element without removing it.
func (s *Stack) Peek() ([]byte, error) {
	if len(s.d) == 0 {
		return nil, errs.New(errs.ErrOutOfRange, "stack: peek on empty stack")
	}
	return s.d[len(s.d)-1], nil
}

// Pop removes and returns the top-of-stack element.
func (s *Stack) Pop() ([]byte, error) {
	v, err := s.Peek()
	if err != nil {
		return nil, err
	}
	s.d = s.d[:len(s.d)-1]
	return v, nil
}
