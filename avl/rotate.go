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

// rotateRight lifts y.Left into y's place. y must have a left child.
func rotateRight(y *Node) *Node {
	if y == nil || y.Left == nil {
		panic("avl: rotateRight without left child")
	}

	x := y.Left

	y.Left = x.Right
	x.Right = y

	// child first, then the new local root
	updateHeight(y)
	updateHeight(x)

	return x
}

// rotateLeft lifts x.Right into x's place. x must have a right child.
func rotateLeft(x *Node) *Node {
	if x == nil || x.Right == nil {
		panic("avl: rotateLeft without right child")
	}

	y := x.Right

	x.Right = y.Left
	y.Left = x

	updateHeight(x)
	updateHeight(y)

	return y
}
