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

// PreOrder returns the keys in node, left, right order.
func PreOrder(root *Node) []int {
	keys := []int{}
	preOrder(root, &keys)
	return keys
}

func preOrder(n *Node, keys *[]int) {
	if n == nil {
		return
	}
	*keys = append(*keys, n.Key)
	preOrder(n.Left, keys)
	preOrder(n.Right, keys)
}

// InOrder returns the keys in left, node, right order. For a plain tree this
// is not necessarily sorted.
func InOrder(root *Node) []int {
	keys := []int{}
	inOrder(root, &keys)
	return keys
}

func inOrder(n *Node, keys *[]int) {
	if n == nil {
		return
	}
	inOrder(n.Left, keys)
	*keys = append(*keys, n.Key)
	inOrder(n.Right, keys)
}

// PostOrder returns the keys in left, right, node order.
func PostOrder(root *Node) []int {
	keys := []int{}
	postOrder(root, &keys)
	return keys
}

func postOrder(n *Node, keys *[]int) {
	if n == nil {
		return
	}
	postOrder(n.Left, keys)
	postOrder(n.Right, keys)
	*keys = append(*keys, n.Key)
}

// BreadthFirst returns the keys level by level, left to right.
func BreadthFirst(root *Node) []int {
	keys := []int{}
	if root == nil {
		return keys
	}
	queue := []*Node{root}
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		keys = append(keys, curr.Key)
		if curr.Left != nil {
			queue = append(queue, curr.Left)
		}
		if curr.Right != nil {
			queue = append(queue, curr.Right)
		}
	}
	return keys
}

// Len counts the nodes of the tree.
func Len(root *Node) int {
	if root == nil {
		return 0
	}
	return 1 + Len(root.Left) + Len(root.Right)
}

// Destroy unlinks every node, children first, and returns how many were released.
func Destroy(root *Node) int {
	if root == nil {
		return 0
	}
	n := Destroy(root.Left) + Destroy(root.Right)
	root.Left, root.Right = nil, nil
	return n + 1
}
