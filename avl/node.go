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

// Package avl implements a height-balanced binary search tree over integer keys.
//
// Every mutating function takes the current root and returns the new one, since a
// rotation can change which node sits at the top. Callers must keep the returned
// root. A nil *Node is the empty tree.
//
// A tree is not safe for concurrent use.
package avl

// Node is a single tree element. Height caches 1 + max(height(Left), height(Right)).
type Node struct {
	Key    int
	Height int
	Left   *Node
	Right  *Node
}

func newNode(key int) *Node {
	return &Node{Key: key, Height: 1}
}

// Height returns the cached height of n, or 0 for an absent node.
func Height(n *Node) int {
	if n == nil {
		return 0
	}
	return n.Height
}

// BalanceFactor returns height(left) - height(right), or 0 for an absent node.
func BalanceFactor(n *Node) int {
	if n == nil {
		return 0
	}
	return Height(n.Left) - Height(n.Right)
}

func updateHeight(n *Node) {
	n.Height = max(Height(n.Left), Height(n.Right)) + 1
}
