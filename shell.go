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
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-shellwords"
)

// menuAliases maps the numbered menu entries to shell commands.
var menuAliases = map[string]string{
	"1": "load",
	"2": "show",
	"3": "traverse",
	"4": "build",
	"5": "avl",
	"6": "avltraverse",
	"7": "insert",
	"8": "delete",
	"9": "search",
	"0": "quit",
}

// Shell is a line-oriented front end to a Session.
type Shell struct {
	session *Session
	reader  *bufio.Reader
	out     io.Writer
	prompt  string
}

func NewShell(session *Session, in io.Reader, out io.Writer, prompt string) *Shell {
	return &Shell{
		session: session,
		reader:  bufio.NewReader(in),
		out:     out,
		prompt:  prompt,
	}
}

// Run reads commands until quit or end of input.
func (sh *Shell) Run() {
	fmt.Fprintln(sh.out, "Arbor shell - AVL tree playground")
	fmt.Fprintln(sh.out, "Type 'help' for available commands, 'quit' to exit")
	fmt.Fprintln(sh.out)

	for {
		fmt.Fprint(sh.out, sh.prompt)
		input, err := sh.reader.ReadString('\n')
		if err != nil && input == "" {
			fmt.Fprintln(sh.out, "\nExit!")
			break
		}

		if !sh.handleLine(input) {
			break
		}
		if err != nil {
			break
		}
	}
	sh.session.Close()
}

// handleLine executes one command line and reports whether the shell should
// keep going.
func (sh *Shell) handleLine(line string) bool {
	args, err := shellwords.Parse(strings.TrimSpace(line))
	if err != nil {
		sh.fail("failed to parse %q: %v", line, err)
		return true
	}
	if len(args) == 0 {
		return true
	}

	cmd := strings.ToLower(args[0])
	if alias, ok := menuAliases[cmd]; ok {
		cmd = alias
	}
	args = args[1:]

	switch cmd {
	case "help", "?":
		sh.printHelp()

	case "quit", "exit":
		fmt.Fprintln(sh.out, "Exit!")
		return false

	case "load":
		if len(args) != 1 {
			sh.fail("usage: load <file>")
			return true
		}
		cached, err := sh.session.Load(args[0])
		if err != nil {
			sh.fail("%s", describeError(err))
			return true
		}
		if cached {
			sh.ok("The tree has been uploaded successfully! (cached)")
		} else {
			sh.ok("The tree has been uploaded successfully!")
		}

	case "show":
		sh.report(sh.session.ShowBinary(sh.out))

	case "traverse":
		sh.report(sh.session.BinaryTraversals(sh.out))

	case "build":
		if err := sh.session.BuildAVL(); err != nil {
			sh.fail("%s", describeError(err))
			return true
		}
		sh.ok("AVL tree created!")

	case "avl":
		sh.report(sh.session.ShowAVL(sh.out))

	case "avltraverse":
		sh.report(sh.session.AVLTraversals(sh.out))

	case "insert", "delete", "search":
		if len(args) == 0 {
			sh.fail("usage: %s <key>...", cmd)
			return true
		}
		keys, err := parseKeys(args)
		if err != nil {
			sh.fail("%v", err)
			return true
		}
		for _, key := range keys {
			sh.keyCommand(cmd, key)
		}

	default:
		sh.fail("Invalid choice! Type 'help' for available commands")
	}

	return true
}

func (sh *Shell) keyCommand(cmd string, key int) {
	switch cmd {
	case "insert":
		if sh.session.Insert(key) {
			sh.ok("Inserted %d!", key)
		} else {
			sh.info("%d already present", key)
		}
	case "delete":
		found, err := sh.session.Delete(key)
		if err != nil {
			sh.fail("%s", describeError(err))
			return
		}
		if found {
			sh.ok("Deleted %d!", key)
		} else {
			sh.info("%d not present", key)
		}
	case "search":
		found, err := sh.session.Search(key)
		if err != nil {
			sh.fail("%s", describeError(err))
			return
		}
		if found {
			sh.ok("%d Found!", key)
		} else {
			sh.info("%d Not found!", key)
		}
	}
}

// parseKeys converts key arguments to integers.
func parseKeys(args []string) ([]int, error) {
	keys := make([]int, 0, len(args))
	for _, arg := range args {
		key, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid key %q", arg)
		}
		keys = append(keys, key)
	}
	return keys, nil
}

func (sh *Shell) report(err error) {
	if err != nil {
		sh.fail("%s", describeError(err))
	}
}

func (sh *Shell) ok(format string, args ...interface{}) {
	fmt.Fprintf(sh.out, "%s%s%s\n", Green, fmt.Sprintf(format, args...), Reset)
}

func (sh *Shell) info(format string, args ...interface{}) {
	fmt.Fprintf(sh.out, "%s%s%s\n", Info, fmt.Sprintf(format, args...), Reset)
}

func (sh *Shell) fail(format string, args ...interface{}) {
	fmt.Fprintf(sh.out, "%s%s%s\n", Error, fmt.Sprintf(format, args...), Reset)
}

func (sh *Shell) printHelp() {
	fmt.Fprint(sh.out, `Commands (menu number in brackets):
  load <file>      [1] load a plain binary tree in bracket notation
  show             [2] draw the plain tree
  traverse         [3] plain tree traversals (pre, in, post)
  build            [4] create the AVL tree from the plain tree
  avl              [5] draw the AVL tree with heights
  avltraverse      [6] AVL traversals (breadth-first, pre, in, post)
  insert <key>...  [7] insert keys into the AVL tree
  delete <key>...  [8] delete keys from the AVL tree
  search <key>...  [9] search the AVL tree
  help                 show this message
  quit             [0] exit
`)
}
