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

import "github.com/cybrota/arbor/avl"

// ToAVL builds an AVL tree by inserting the keys of root in breadth-first
// order. Keys repeated in the plain tree are kept once.
func ToAVL(root *Node) *avl.Node {
	return avl.FromKeys(BreadthFirst(root))
}

// FromAVL copies the shape of an AVL tree into a plain tree, dropping heights.
func FromAVL(root *avl.Node) *Node {
	if root == nil {
		return nil
	}
	return &Node{Key: root.Key, Left: FromAVL(root.Left), Right: FromAVL(root.Right)}
}
