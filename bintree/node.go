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

// Package bintree holds plain, unbalanced binary trees read from bracket
// notation such as "(8 (3 (1) (6)) (10 () (14)))" and converts them into AVL
// trees.
package bintree

import (
	"errors"
	"fmt"
)

// Node is an element of a plain binary tree. No ordering is implied.
type Node struct {
	Key   int
	Left  *Node
	Right *Node
}

// Bracket notation errors
var (
	// ErrUnbalanced indicates that opening and closing brackets do not pair up.
	ErrUnbalanced = errors.New("incorrect bracket format")

	// ErrEmpty indicates that the input holds no tree at all.
	ErrEmpty = errors.New("no tree in input")

	// ErrMissingKey indicates an opening bracket not followed by an integer key.
	ErrMissingKey = errors.New("node has no key")

	// ErrKeyRange indicates a key that does not fit in an int.
	ErrKeyRange = errors.New("key out of range")

	// ErrUnexpected indicates a character that cannot appear at its position.
	ErrUnexpected = errors.New("unexpected character")

	// ErrTrailing indicates input left over after the root's closing bracket.
	ErrTrailing = errors.New("trailing input after tree")
)

// SyntaxError records where in the input a parse failed.
type SyntaxError struct {
	Offset int
	Err    error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("offset %d: %v", e.Offset, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}
