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

package avl

import "io"

// Tree holds the current root so callers that prefer methods do not have to
// thread it by hand. The zero value is an empty tree.
type Tree struct {
	Root *Node
}

func NewTree() *Tree {
	return &Tree{Root: nil}
}

// Insert adds key and reports whether a new node was created.
func (tree *Tree) Insert(key int) bool {
	if Search(tree.Root, key) {
		return false
	}
	tree.Root = Insert(tree.Root, key)
	return true
}

// Delete removes key and reports whether it was present.
func (tree *Tree) Delete(key int) bool {
	if !Search(tree.Root, key) {
		return false
	}
	tree.Root = Delete(tree.Root, key)
	return true
}

func (tree *Tree) Search(key int) bool {
	return Search(tree.Root, key)
}

func (tree *Tree) Len() int {
	return Len(tree.Root)
}

func (tree *Tree) Height() int {
	return Height(tree.Root)
}

func (tree *Tree) IsEmpty() bool {
	return tree.Root == nil
}

func (tree *Tree) PreOrder() []int     { return PreOrder(tree.Root) }
func (tree *Tree) InOrder() []int      { return InOrder(tree.Root) }
func (tree *Tree) PostOrder() []int    { return PostOrder(tree.Root) }
func (tree *Tree) BreadthFirst() []int { return BreadthFirst(tree.Root) }

func (tree *Tree) Validate() error {
	return Validate(tree.Root)
}

func (tree *Tree) Print(w io.Writer, indent int, heights bool) {
	Print(w, tree.Root, indent, heights)
}

// Destroy releases every node and leaves the tree empty. It returns the number
// of nodes released.
func (tree *Tree) Destroy() int {
	n := Destroy(tree.Root)
	tree.Root = nil
	return n
}
