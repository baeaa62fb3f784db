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

package main

import (
	"fmt"
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

// usageMarkdown is shared by the usage command and the TUI help overlay.
func usageMarkdown() string {
	return fmt.Sprintf(`

 **Arbor %s**

Load a binary tree written in bracket notation, convert it to a self-balancing AVL tree and
explore both trees from a menu, a line shell or the command line.

Built with Go %s

# 1. Tree file format
A tree file holds one line in bracket notation: (key left right). Missing children are written as ().
* (8 (3 (1) (6)) (10 () (14)))
* Keys are integers and may be negative
* Only the first line of the file is read

# 2. Menu
* 1 Load the tree from file
* 2 Show the tree
* 3 Traverse the tree (pre-order, in-order, post-order)
* 4 Create AVL tree
* 5 Show AVL tree
* 6 Traverse AVL tree (breadth-first, pre-order, in-order, post-order)
* 7 Insert element into AVL tree
* 8 Delete element from AVL tree
* 9 Search element in AVL tree
* 0 Exit

# 3. Commands
* arbor tui: interactive menu (default)
* arbor shell: line-oriented shell with the same menu
* arbor load <file> [--avl]: print a tree file and its traversals
* arbor build <key>... [--delete key]: build an AVL tree from keys
* arbor stress: randomised insert/delete run checking AVL invariants
* arbor settings: show the active configuration

# Please be aware
* Copy to clipboard feature on Linux or Unix requires 'xclip' or 'xsel' command to be installed

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version())
}

func getHelpMessage() string {
	result := markdown.Render(usageMarkdown(), 80, 3)
	return string(result)
}
