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

// Insert adds key below root and returns the new root. Inserting a key that is
// already present leaves the tree unchanged.
func Insert(root *Node, key int) *Node {
	if root == nil {
		return newNode(key)
	}

	if key < root.Key {
		root.Left = Insert(root.Left, key)
	} else if key > root.Key {
		root.Right = Insert(root.Right, key)
	} else {
		return root
	}

	updateHeight(root)

	// The freshly inserted key tells which grandchild grew.
	balance := BalanceFactor(root)
	if balance > 1 && key < root.Left.Key {
		return rotateRight(root)
	}
	if balance < -1 && key > root.Right.Key {
		return rotateLeft(root)
	}
	if balance > 1 && key > root.Left.Key {
		// Left-Right case
		root.Left = rotateLeft(root.Left)
		return rotateRight(root)
	}
	if balance < -1 && key < root.Right.Key {
		// Right-Left case
		root.Right = rotateRight(root.Right)
		return rotateLeft(root)
	}

	return root
}

// FromKeys builds a tree by inserting keys one at a time, in order.
func FromKeys(keys []int) *Node {
	var root *Node
	for _, key := range keys {
		root = Insert(root, key)
	}
	return root
}
