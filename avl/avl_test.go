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
	"bytes"
	"errors"
	"math/rand"
	"sort"
	"testing"
)

type AVLTestCase struct {
	Name          string
	InitialKeys   []int
	KeysToInsert  []int
	KeysToDelete  []int
	ExpectedOrder []int // In-order traversal expectation after operations
	ExpectedLevel []int // Breadth-first expectation, nil to skip
}

func TestAVLTreeOperations(t *testing.T) {
	testCases := []AVLTestCase{
		{
			Name:          "Simple Insertion",
			KeysToInsert:  []int{20, 10, 30},
			ExpectedOrder: []int{10, 20, 30},
			ExpectedLevel: []int{20, 10, 30},
		},
		{
			Name:          "Left-Left Rotation",
			KeysToInsert:  []int{30, 20, 10},
			ExpectedOrder: []int{10, 20, 30},
			ExpectedLevel: []int{20, 10, 30},
		},
		{
			Name:          "Left-Right Rotation",
			KeysToInsert:  []int{30, 10, 20},
			ExpectedOrder: []int{10, 20, 30},
			ExpectedLevel: []int{20, 10, 30},
		},
		{
			Name:          "Right-Left Rotation",
			KeysToInsert:  []int{10, 30, 20},
			ExpectedOrder: []int{10, 20, 30},
			ExpectedLevel: []int{20, 10, 30},
		},
		{
			Name:          "Duplicate Insertion",
			InitialKeys:   []int{5, 3, 8},
			KeysToInsert:  []int{3, 5, 8, 8},
			ExpectedOrder: []int{3, 5, 8},
			ExpectedLevel: []int{5, 3, 8},
		},
		{
			Name:          "Deletion with Balancing (Left Child Even)",
			InitialKeys:   []int{50, 30, 70, 20, 40},
			KeysToDelete:  []int{70},
			ExpectedOrder: []int{20, 30, 40, 50},
			ExpectedLevel: []int{30, 20, 50, 40},
		},
		{
			Name:          "Deletion with Double Rotation (Left-Right)",
			InitialKeys:   []int{50, 30, 70, 40},
			KeysToDelete:  []int{70},
			ExpectedOrder: []int{30, 40, 50},
			ExpectedLevel: []int{40, 30, 50},
		},
		{
			Name:          "Deletion with Double Rotation (Right-Left)",
			InitialKeys:   []int{50, 30, 70, 60},
			KeysToDelete:  []int{30},
			ExpectedOrder: []int{50, 60, 70},
			ExpectedLevel: []int{60, 50, 70},
		},
		{
			Name:          "Deletion of Two-Child Root",
			InitialKeys:   []int{4, 2, 6, 1, 3, 5, 7},
			KeysToDelete:  []int{4},
			ExpectedOrder: []int{1, 2, 3, 5, 6, 7},
			ExpectedLevel: []int{5, 2, 6, 1, 3, 7},
		},
		{
			Name:          "Deletion of Missing Key",
			InitialKeys:   []int{2, 1, 3},
			KeysToDelete:  []int{42, -7},
			ExpectedOrder: []int{1, 2, 3},
			ExpectedLevel: []int{2, 1, 3},
		},
		{
			Name:          "Delete Everything",
			InitialKeys:   []int{2, 1, 3},
			KeysToDelete:  []int{1, 2, 3},
			ExpectedOrder: []int{},
			ExpectedLevel: []int{},
		},
		{
			Name:          "Mixed Operations",
			InitialKeys:   []int{40, 20},
			KeysToInsert:  []int{60, 10},
			KeysToDelete:  []int{20},
			ExpectedOrder: []int{10, 40, 60},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			var root *Node
			for _, key := range tc.InitialKeys {
				root = Insert(root, key)
			}
			for _, key := range tc.KeysToInsert {
				root = Insert(root, key)
			}
			for _, key := range tc.KeysToDelete {
				root = Delete(root, key)
			}
			if err := Validate(root); err != nil {
				t.Fatalf("invalid tree: %v", err)
			}
			if got := InOrder(root); !equalSlices(got, tc.ExpectedOrder) {
				t.Errorf("InOrder = %v; want %v", got, tc.ExpectedOrder)
			}
			if tc.ExpectedLevel != nil {
				if got := BreadthFirst(root); !equalSlices(got, tc.ExpectedLevel) {
					t.Errorf("BreadthFirst = %v; want %v", got, tc.ExpectedLevel)
				}
			}
		})
	}
}

func TestSingleLeftRotationOnAscendingInsert(t *testing.T) {
	root := FromKeys([]int{10, 20, 30})

	if root.Key != 20 {
		t.Fatalf("root = %d; want 20", root.Key)
	}
	if root.Left == nil || root.Left.Key != 10 {
		t.Fatalf("left child = %v; want 10", root.Left)
	}
	if root.Right == nil || root.Right.Key != 30 {
		t.Fatalf("right child = %v; want 30", root.Right)
	}
	heights := map[int]int{20: root.Height, 10: root.Left.Height, 30: root.Right.Height}
	want := map[int]int{20: 2, 10: 1, 30: 1}
	for k, h := range want {
		if heights[k] != h {
			t.Errorf("height of %d = %d; want %d", k, heights[k], h)
		}
	}
}

func TestDeletionRebalance(t *testing.T) {
	root := FromKeys([]int{30, 20, 40, 10})
	if root.Key != 30 {
		t.Fatalf("root = %d; want 30", root.Key)
	}

	root = Delete(root, 40)
	if err := Validate(root); err != nil {
		t.Fatalf("after deleting 40: %v", err)
	}
	root = Delete(root, 20)
	if err := Validate(root); err != nil {
		t.Fatalf("after deleting 20: %v", err)
	}

	if got := InOrder(root); !equalSlices(got, []int{10, 30}) {
		t.Fatalf("InOrder = %v; want [10 30]", got)
	}
}

func TestRotationsRecomputeHeights(t *testing.T) {
	// 3 <- 2 <- 1 chain leaning left
	y := &Node{Key: 3, Height: 3, Left: &Node{Key: 2, Height: 2, Left: &Node{Key: 1, Height: 1}}}
	x := rotateRight(y)
	if x.Key != 2 || x.Height != 2 || x.Right.Key != 3 || x.Right.Height != 1 {
		t.Fatalf("rotateRight produced %d(h:%d) with right %d(h:%d)", x.Key, x.Height, x.Right.Key, x.Right.Height)
	}

	// 1 -> 2 -> 3 chain leaning right
	a := &Node{Key: 1, Height: 3, Right: &Node{Key: 2, Height: 2, Right: &Node{Key: 3, Height: 1}}}
	b := rotateLeft(a)
	if b.Key != 2 || b.Height != 2 || b.Left.Key != 1 || b.Left.Height != 1 {
		t.Fatalf("rotateLeft produced %d(h:%d) with left %d(h:%d)", b.Key, b.Height, b.Left.Key, b.Left.Height)
	}
}

func TestRotationWithoutChildPanics(t *testing.T) {
	tests := []struct {
		name   string
		rotate func(*Node) *Node
	}{
		{"rotateRight", rotateRight},
		{"rotateLeft", rotateLeft},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("%s on a leaf did not panic", tc.name)
				}
			}()
			tc.rotate(newNode(1))
		})
	}
}

func TestBalanceOracle(t *testing.T) {
	if Height(nil) != 0 || BalanceFactor(nil) != 0 {
		t.Fatalf("absent node must have height 0 and balance 0")
	}
	n := &Node{Key: 5, Height: 3, Left: &Node{Key: 3, Height: 2}, Right: nil}
	if got := BalanceFactor(n); got != 2 {
		t.Errorf("BalanceFactor = %d; want 2", got)
	}
	// the cache is trusted, not recomputed
	if got := Height(n); got != 3 {
		t.Errorf("Height = %d; want 3", got)
	}
}

func TestTraversalOrders(t *testing.T) {
	root := FromKeys([]int{1, 2, 3, 4, 5, 6, 7})

	tests := []struct {
		name string
		walk func(*Node) []int
		want []int
	}{
		{"pre-order", PreOrder, []int{4, 2, 1, 3, 6, 5, 7}},
		{"in-order", InOrder, []int{1, 2, 3, 4, 5, 6, 7}},
		{"post-order", PostOrder, []int{1, 3, 2, 5, 7, 6, 4}},
		{"breadth-first", BreadthFirst, []int{4, 2, 6, 1, 3, 5, 7}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.walk(root); !equalSlices(got, tc.want) {
				t.Errorf("got %v; want %v", got, tc.want)
			}
			// read-only and deterministic
			if got := tc.walk(root); !equalSlices(got, tc.want) {
				t.Errorf("second walk got %v; want %v", got, tc.want)
			}
			if got := tc.walk(nil); got == nil || len(got) != 0 {
				t.Errorf("walk of empty tree = %#v; want empty slice", got)
			}
		})
	}
}

func TestTraversalsVisitEveryNodeOfLargeTree(t *testing.T) {
	// well past the fixed 100-slot containers some implementations use
	const n = 5000
	keys := make([]int, n)
	for i := range keys {
		keys[i] = i
	}
	root := FromKeys(keys)

	for name, walk := range map[string]func(*Node) []int{
		"pre": PreOrder, "in": InOrder, "post": PostOrder, "bfs": BreadthFirst,
	} {
		got := walk(root)
		if len(got) != n {
			t.Errorf("%s visited %d nodes; want %d", name, len(got), n)
			continue
		}
		sorted := append([]int(nil), got...)
		sort.Ints(sorted)
		for i := range sorted {
			if sorted[i] != i {
				t.Errorf("%s missed or repeated key %d", name, i)
				break
			}
		}
	}
}

func TestRandomOperationsPreserveInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	present := make(map[int]bool)
	var root *Node

	for i := 0; i < 4000; i++ {
		key := rng.Intn(300)
		if rng.Intn(3) == 0 {
			root = Delete(root, key)
			delete(present, key)
		} else {
			root = Insert(root, key)
			present[key] = true
		}

		if err := Validate(root); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if Search(root, key) != present[key] {
			t.Fatalf("step %d: Search(%d) = %v; want %v", i, key, !present[key], present[key])
		}
	}

	got := InOrder(root)
	if len(got) != len(present) {
		t.Fatalf("tree holds %d keys; want %d", len(got), len(present))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1] >= got[i] {
			t.Fatalf("in-order not strictly ascending at %d: %v", i, got[i-1:i+1])
		}
	}
}

func TestSizeAndRoundTrip(t *testing.T) {
	keys := []int{15, -3, 8, 42, 0, 23, 4, 16}
	root := FromKeys(keys)
	if got := Len(root); got != len(keys) {
		t.Fatalf("Len = %d; want %d", got, len(keys))
	}
	root = Insert(root, 42)
	if got := len(InOrder(root)); got != len(keys) {
		t.Fatalf("duplicate insert changed size to %d", got)
	}

	for _, k := range keys {
		if !Search(root, k) {
			t.Errorf("Search(%d) = false after insert", k)
		}
	}
	root = Delete(root, 8)
	if Search(root, 8) {
		t.Errorf("Search(8) = true after delete")
	}
	if Search(nil, 8) {
		t.Errorf("Search on empty tree = true")
	}
}

func TestMinMax(t *testing.T) {
	if Min(nil) != nil || Max(nil) != nil {
		t.Fatalf("Min/Max of empty tree must be nil")
	}
	root := FromKeys([]int{9, 4, 17, 1, 6, 25})
	if got := Min(root).Key; got != 1 {
		t.Errorf("Min = %d; want 1", got)
	}
	if got := Max(root).Key; got != 25 {
		t.Errorf("Max = %d; want 25", got)
	}
}

func TestDestroy(t *testing.T) {
	if got := Destroy(nil); got != 0 {
		t.Fatalf("Destroy(nil) = %d; want 0", got)
	}

	root := FromKeys([]int{1, 2, 3, 4, 5, 6, 7})
	left, right := root.Left, root.Right
	if got := Destroy(root); got != 7 {
		t.Fatalf("Destroy released %d nodes; want 7", got)
	}
	if root.Left != nil || root.Right != nil || left.Left != nil || right.Right != nil {
		t.Errorf("Destroy left links behind")
	}

	tree := NewTree()
	tree.Insert(1)
	tree.Destroy()
	if got := tree.Destroy(); got != 0 {
		t.Errorf("second Destroy released %d nodes; want 0", got)
	}
}

func TestValidateDetectsViolations(t *testing.T) {
	tests := []struct {
		name string
		root *Node
		want error
	}{
		{
			name: "unordered",
			root: &Node{Key: 5, Height: 2, Left: &Node{Key: 7, Height: 1}},
			want: ErrUnordered,
		},
		{
			name: "unordered deep",
			root: &Node{Key: 5, Height: 3,
				Left:  &Node{Key: 2, Height: 2, Right: &Node{Key: 6, Height: 1}},
				Right: &Node{Key: 8, Height: 1}},
			want: ErrUnordered,
		},
		{
			name: "duplicate",
			root: &Node{Key: 5, Height: 2, Right: &Node{Key: 5, Height: 1}},
			want: ErrUnordered,
		},
		{
			name: "stale height",
			root: &Node{Key: 5, Height: 1, Left: &Node{Key: 3, Height: 1}},
			want: ErrBadHeight,
		},
		{
			name: "unbalanced",
			root: &Node{Key: 3, Height: 3, Left: &Node{Key: 2, Height: 2, Left: &Node{Key: 1, Height: 1}}},
			want: ErrUnbalanced,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := Validate(tc.root); !errors.Is(err, tc.want) {
				t.Errorf("Validate = %v; want %v", err, tc.want)
			}
		})
	}
	if err := Validate(nil); err != nil {
		t.Errorf("Validate(nil) = %v; want nil", err)
	}
}

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	Print(&buf, FromKeys([]int{10, 20, 30}), 4, true)
	want := "    30 (h:1)\n20 (h:2)\n    10 (h:1)\n"
	if buf.String() != want {
		t.Errorf("Print =\n%s\nwant\n%s", buf.String(), want)
	}

	buf.Reset()
	Print(&buf, FromKeys([]int{2, 1}), 2, false)
	if want := "2\n  1\n"; buf.String() != want {
		t.Errorf("Print without heights = %q; want %q", buf.String(), want)
	}
}

func TestTreeWrapper(t *testing.T) {
	tree := NewTree()
	if !tree.IsEmpty() {
		t.Fatalf("new tree not empty")
	}
	for _, k := range []int{10, 20, 30} {
		if !tree.Insert(k) {
			t.Errorf("Insert(%d) = false on new key", k)
		}
	}
	if tree.Insert(20) {
		t.Errorf("Insert(20) = true on duplicate")
	}
	if tree.Root.Key != 20 || tree.Height() != 2 || tree.Len() != 3 {
		t.Errorf("tree root %d height %d len %d; want 20, 2, 3", tree.Root.Key, tree.Height(), tree.Len())
	}
	if !tree.Delete(10) || tree.Delete(10) {
		t.Errorf("Delete should report presence exactly once")
	}
	if err := tree.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
	if got := tree.InOrder(); !equalSlices(got, []int{20, 30}) {
		t.Errorf("InOrder = %v; want [20 30]", got)
	}
}

func equalSlices(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
