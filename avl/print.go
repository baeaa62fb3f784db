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
	"fmt"
	"io"
	"strings"
)

// Print draws the tree on its side: the right subtree above, the left below,
// each level indented by indent spaces. With heights set every key is followed
// by its cached height as "(h:N)".
func Print(w io.Writer, root *Node, indent int, heights bool) {
	printNode(w, root, 0, indent, heights)
}

func printNode(w io.Writer, n *Node, level, indent int, heights bool) {
	if n == nil {
		return
	}
	printNode(w, n.Right, level+1, indent, heights)
	pad := strings.Repeat(" ", level*indent)
	if heights {
		fmt.Fprintf(w, "%s%d (h:%d)\n", pad, n.Key, n.Height)
	} else {
		fmt.Fprintf(w, "%s%d\n", pad, n.Key)
	}
	printNode(w, n.Left, level+1, indent, heights)
}
