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

import (
	"errors"
	"fmt"
)

// Invariant violations reported by Validate.
var (
	// ErrUnordered indicates a key on the wrong side of an ancestor, or a duplicate.
	ErrUnordered = errors.New("search order violated")

	// ErrUnbalanced indicates a node whose subtree heights differ by more than one.
	ErrUnbalanced = errors.New("balance violated")

	// ErrBadHeight indicates a cached height that disagrees with the children.
	ErrBadHeight = errors.New("cached height incorrect")
)

// Validate checks ordering, balance and cached heights of every node and returns
// an error describing the first violation found. An empty tree is valid.
func Validate(root *Node) error {
	_, err := check(root, nil, nil)
	return err
}

// check returns the real height of the subtree; lo and hi are exclusive bounds
// inherited from the ancestors.
func check(n *Node, lo, hi *int) (int, error) {
	if n == nil {
		return 0, nil
	}
	if lo != nil && n.Key <= *lo {
		return 0, fmt.Errorf("node %d not greater than ancestor %d: %w", n.Key, *lo, ErrUnordered)
	}
	if hi != nil && n.Key >= *hi {
		return 0, fmt.Errorf("node %d not less than ancestor %d: %w", n.Key, *hi, ErrUnordered)
	}

	lh, err := check(n.Left, lo, &n.Key)
	if err != nil {
		return 0, err
	}
	rh, err := check(n.Right, &n.Key, hi)
	if err != nil {
		return 0, err
	}

	h := max(lh, rh) + 1
	if n.Height != h {
		return 0, fmt.Errorf("node %d has height %d, expected %d: %w", n.Key, n.Height, h, ErrBadHeight)
	}
	if bf := lh - rh; bf > 1 || bf < -1 {
		return 0, fmt.Errorf("node %d has balance factor %+d: %w", n.Key, bf, ErrUnbalanced)
	}
	return h, nil
}
