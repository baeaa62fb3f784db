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

// Search reports whether key is present in the tree rooted at root.
func Search(root *Node, key int) bool {
	for root != nil {
		if key < root.Key {
			root = root.Left
		} else if key > root.Key {
			root = root.Right
		} else {
			return true
		}
	}
	return false
}

// Min returns the node holding the smallest key, or nil for an empty tree.
func Min(root *Node) *Node {
	if root == nil {
		return nil
	}
	for root.Left != nil {
		root = root.Left
	}
	return root
}

// Max returns the node holding the largest key, or nil for an empty tree.
func Max(root *Node) *Node {
	if root == nil {
		return nil
	}
	for root.Right != nil {
		root = root.Right
	}
	return root
}

// Len counts the nodes of the tree.
func Len(root *Node) int {
	if root == nil {
		return 0
	}
	return 1 + Len(root.Left) + Len(root.Right)
}
