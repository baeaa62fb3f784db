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

// The walks below are iterative and keep their pending nodes in growable
// slices, so tree size is bounded only by memory.

// BreadthFirst returns the keys level by level, left to right within a level.
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

// PreOrder returns the keys in node, left, right order.
func PreOrder(root *Node) []int {
	keys := []int{}
	if root == nil {
		return keys
	}

	stack := []*Node{root}
	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		keys = append(keys, curr.Key)
		// right goes in first so left comes out first
		if curr.Right != nil {
			stack = append(stack, curr.Right)
		}
		if curr.Left != nil {
			stack = append(stack, curr.Left)
		}
	}
	return keys
}

// InOrder returns the keys in ascending order.
func InOrder(root *Node) []int {
	keys := []int{}
	var stack []*Node

	curr := root
	for curr != nil || len(stack) > 0 {
		for curr != nil {
			stack = append(stack, curr)
			curr = curr.Left
		}
		curr = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		keys = append(keys, curr.Key)
		curr = curr.Right
	}
	return keys
}

// PostOrder returns the keys in left, right, node order.
func PostOrder(root *Node) []int {
	keys := []int{}
	if root == nil {
		return keys
	}

	// Two stacks: the second receives nodes in reverse post-order.
	pending := []*Node{root}
	var visited []*Node
	for len(pending) > 0 {
		curr := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		visited = append(visited, curr)
		if curr.Left != nil {
			pending = append(pending, curr.Left)
		}
		if curr.Right != nil {
			pending = append(pending, curr.Right)
		}
	}
	for i := len(visited) - 1; i >= 0; i-- {
		keys = append(keys, visited[i].Key)
	}
	return keys
}

// Destroy unlinks every node of the tree, children before parents, and returns
// how many nodes were released. Destroying an empty tree does nothing.
func Destroy(root *Node) int {
	if root == nil {
		return 0
	}
	released := Destroy(root.Left) + Destroy(root.Right)
	root.Left = nil
	root.Right = nil
	root.Height = 0
	return released + 1
}
