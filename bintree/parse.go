// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bintree

import (
	"errors"
	"strconv"
)

// Validate checks that brackets in s pair up: the running depth never drops
// below zero and ends at zero. It says nothing about the rest of the syntax.
func Validate(s string) error {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		}
		if depth < 0 {
			return &SyntaxError{Offset: i, Err: ErrUnbalanced}
		}
	}
	if depth != 0 {
		return &SyntaxError{Offset: len(s), Err: ErrUnbalanced}
	}
	return nil
}

// Parse reads one tree in bracket notation:
//
//	tree  = "(" key [child [child]] ")"
//	child = tree | "()"
//	key   = ["-"] digit {digit}
//
// "()" stands for an absent child, so a node with only a right child is
// written "(5 () (7))". Spaces and tabs may appear between tokens.
func Parse(s string) (*Node, error) {
	if err := Validate(s); err != nil {
		return nil, err
	}

	p := &parser{s: s}
	p.skipSpace()
	if p.done() {
		return nil, &SyntaxError{Offset: p.pos, Err: ErrEmpty}
	}

	start := p.pos
	root, err := p.tree()
	if err != nil {
		return nil, err
	}
	if root == nil {
		return nil, &SyntaxError{Offset: start, Err: ErrEmpty}
	}

	p.skipSpace()
	if !p.done() {
		return nil, &SyntaxError{Offset: p.pos, Err: ErrTrailing}
	}
	return root, nil
}

type parser struct {
	s   string
	pos int
}

func (p *parser) done() bool {
	return p.pos >= len(p.s)
}

func (p *parser) peek() byte {
	if p.done() {
		return 0
	}
	return p.s[p.pos]
}

func (p *parser) skipSpace() {
	for !p.done() && (p.s[p.pos] == ' ' || p.s[p.pos] == '\t') {
		p.pos++
	}
}

func (p *parser) fail(err error) error {
	return &SyntaxError{Offset: p.pos, Err: err}
}

// tree parses a bracketed node starting at the current position. It returns
// nil without error for the empty child "()".
func (p *parser) tree() (*Node, error) {
	if p.peek() != '(' {
		return nil, p.fail(ErrUnexpected)
	}
	p.pos++
	p.skipSpace()

	if p.peek() == ')' {
		p.pos++
		return nil, nil
	}

	key, err := p.key()
	if err != nil {
		return nil, err
	}
	node := &Node{Key: key}

	for _, child := range []**Node{&node.Left, &node.Right} {
		p.skipSpace()
		if p.peek() != '(' {
			break
		}
		if *child, err = p.tree(); err != nil {
			return nil, err
		}
	}

	p.skipSpace()
	if p.peek() != ')' {
		return nil, p.fail(ErrUnexpected)
	}
	p.pos++
	return node, nil
}

func (p *parser) key() (int, error) {
	start := p.pos
	if p.peek() == '-' {
		p.pos++
	}
	digits := p.pos
	for !p.done() && p.s[p.pos] >= '0' && p.s[p.pos] <= '9' {
		p.pos++
	}
	if p.pos == digits {
		p.pos = start
		return 0, p.fail(ErrMissingKey)
	}

	key, err := strconv.Atoi(p.s[start:p.pos])
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, &SyntaxError{Offset: start, Err: ErrKeyRange}
		}
		return 0, &SyntaxError{Offset: start, Err: err}
	}
	return key, nil
}
