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

// Delete removes key from the tree rooted at root and returns the new root.
// Deleting a key that is not present is a no-op.
func Delete(root *Node, key int) *Node {
	if root == nil {
		return nil
	}

	if key < root.Key {
		root.Left = Delete(root.Left, key)
	} else if key > root.Key {
		root.Right = Delete(root.Right, key)
	} else {
		if root.Left == nil || root.Right == nil {
			child := root.Left
			if child == nil {
				child = root.Right
			}
			// release the spliced node's links
			root.Left, root.Right = nil, nil
			return child
		}

		// Two children: take over the in-order successor's key, then remove the
		// successor, which has no left child.
		successor := Min(root.Right)
		root.Key = successor.Key
		root.Right = Delete(root.Right, successor.Key)
	}

	updateHeight(root)
	return rebalance(root)
}

// rebalance restores the balance property at node after one of its subtrees
// shrank. The child's own balance decides between single and double rotation.
func rebalance(node *Node) *Node {
	balance := BalanceFactor(node)

	// Left-heavy
	if balance > 1 {
		if BalanceFactor(node.Left) >= 0 {
			return rotateRight(node)
		}
		node.Left = rotateLeft(node.Left)
		return rotateRight(node)
	}

	// Right-heavy
	if balance < -1 {
		if BalanceFactor(node.Right) <= 0 {
			return rotateLeft(node)
		}
		node.Right = rotateRight(node.Right)
		return rotateLeft(node)
	}

	return node
}
