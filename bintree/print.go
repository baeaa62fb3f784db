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

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Print draws the tree on its side, right subtree above, each level indented
// by indent spaces.
func Print(w io.Writer, root *Node, indent int) {
	printNode(w, root, 0, indent)
}

func printNode(w io.Writer, n *Node, level, indent int) {
	if n == nil {
		return
	}
	printNode(w, n.Right, level+1, indent)
	fmt.Fprintf(w, "%s%d\n", strings.Repeat(" ", level*indent), n.Key)
	printNode(w, n.Left, level+1, indent)
}

// String renders the tree in the bracket notation accepted by Parse, using the
// shortest form: leaves as "(k)" and "()" only for an absent left child that
// has a right sibling.
func String(root *Node) string {
	var sb strings.Builder
	writeNode(&sb, root)
	return sb.String()
}

func writeNode(sb *strings.Builder, n *Node) {
	if n == nil {
		sb.WriteString("()")
		return
	}
	sb.WriteByte('(')
	sb.WriteString(strconv.Itoa(n.Key))
	if n.Left != nil || n.Right != nil {
		sb.WriteByte(' ')
		writeNode(sb, n.Left)
	}
	if n.Right != nil {
		sb.WriteByte(' ')
		writeNode(sb, n.Right)
	}
	sb.WriteByte(')')
}
