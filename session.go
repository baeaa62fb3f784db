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
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"strconv"
	"strings"

	"github.com/patrickmn/go-cache"

	"github.com/cybrota/arbor/avl"
	"github.com/cybrota/arbor/bintree"
)

// Session errors
var (
	// ErrNoBinaryTree indicates an operation that needs a loaded plain tree.
	ErrNoBinaryTree = errors.New("tree not loaded")

	// ErrNoAVLTree indicates an operation that needs a non-empty AVL tree.
	ErrNoAVLTree = errors.New("AVL tree not created")
)

// Session is the state behind the shell and the TUI: the plain tree loaded
// from a file and the AVL tree built from it. It threads the root returned by
// every avl call; nothing else holds on to either tree.
//
// Plain trees are never modified after parsing, so the same *bintree.Node may
// be shared with the parsed-file cache.
type Session struct {
	config *Config
	binary *bintree.Node
	source string
	tree   *avl.Node
	filter *searchFilter
	files  *cache.Cache
}

func NewSession(config *Config) *Session {
	if config == nil {
		config = DefaultConfig()
	}
	return &Session{
		config: config,
		filter: newSearchFilter(config.Filter.BloomBits, config.Filter.BloomHashes),
		files:  NewTreeCache(config.Cache.Expiration, config.Cache.Cleanup),
	}
}

func (s *Session) HasBinary() bool { return s.binary != nil }
func (s *Session) HasAVL() bool    { return s.tree != nil }

// Source is the path of the loaded plain tree, empty when none is loaded.
func (s *Session) Source() string { return s.source }

// Root exposes the current AVL root for read-only use.
func (s *Session) Root() *avl.Node { return s.tree }

// Load replaces the plain tree with the one in the file at path. On error the
// previous tree is kept. It reports whether the parse came from the cache.
func (s *Session) Load(path string) (bool, error) {
	key, err := treeCacheKey(path)
	if err == nil {
		if root := GetCachedTree(s.files, key); root != nil {
			s.binary, s.source = root, path
			return true, nil
		}
	}

	root, err := bintree.LoadFile(path)
	if err != nil {
		return false, err
	}
	if key != "" {
		CacheTree(s.files, key, root)
	}
	s.binary, s.source = root, path
	return false, nil
}

func (s *Session) ShowBinary(w io.Writer) error {
	if s.binary == nil {
		return ErrNoBinaryTree
	}
	bintree.Print(w, s.binary, s.config.Display.Indent)
	return nil
}

func (s *Session) BinaryTraversals(w io.Writer) error {
	if s.binary == nil {
		return ErrNoBinaryTree
	}
	fmt.Fprintf(w, "Pre-order: %s\n", formatKeys(bintree.PreOrder(s.binary)))
	fmt.Fprintf(w, "In-order: %s\n", formatKeys(bintree.InOrder(s.binary)))
	fmt.Fprintf(w, "Post-order: %s\n", formatKeys(bintree.PostOrder(s.binary)))
	return nil
}

// BuildAVL discards the current AVL tree and converts the plain tree into a
// new one.
func (s *Session) BuildAVL() error {
	if s.binary == nil {
		return ErrNoBinaryTree
	}
	avl.Destroy(s.tree)
	s.tree = bintree.ToAVL(s.binary)

	s.filter.Reset()
	for _, key := range avl.BreadthFirst(s.tree) {
		s.filter.Add(key)
	}
	s.checkInvariants("build", 0)
	return nil
}

func (s *Session) ShowAVL(w io.Writer) error {
	if s.tree == nil {
		return ErrNoAVLTree
	}
	avl.Print(w, s.tree, s.config.Display.Indent, s.config.Display.ShowHeights)
	return nil
}

func (s *Session) AVLTraversals(w io.Writer) error {
	if s.tree == nil {
		return ErrNoAVLTree
	}
	fmt.Fprintf(w, "Breadth-first: %s\n", formatKeys(avl.BreadthFirst(s.tree)))
	fmt.Fprintf(w, "Pre-order: %s\n", formatKeys(avl.PreOrder(s.tree)))
	fmt.Fprintf(w, "In-order: %s\n", formatKeys(avl.InOrder(s.tree)))
	fmt.Fprintf(w, "Post-order: %s\n", formatKeys(avl.PostOrder(s.tree)))
	return nil
}

// Insert adds key to the AVL tree, starting a new tree when there is none.
// It reports whether the key was new.
func (s *Session) Insert(key int) bool {
	if avl.Search(s.tree, key) {
		return false
	}
	s.tree = avl.Insert(s.tree, key)
	s.filter.Add(key)
	s.checkInvariants("insert", key)
	return true
}

// Delete removes key from the AVL tree and reports whether it was present.
func (s *Session) Delete(key int) (bool, error) {
	if s.tree == nil {
		return false, ErrNoAVLTree
	}
	found := avl.Search(s.tree, key)
	s.tree = avl.Delete(s.tree, key)
	s.checkInvariants("delete", key)
	return found, nil
}

// Search looks key up, skipping the tree walk when the filter rules it out.
func (s *Session) Search(key int) (bool, error) {
	if s.tree == nil {
		return false, ErrNoAVLTree
	}
	if !s.filter.MayContain(key) {
		return false, nil
	}
	return avl.Search(s.tree, key), nil
}

// Close releases both trees.
func (s *Session) Close() {
	avl.Destroy(s.tree)
	s.tree = nil
	s.binary, s.source = nil, ""
	s.filter.Reset()
	s.files.Flush()
}

func (s *Session) checkInvariants(op string, key int) {
	if !s.config.Debug.Validate {
		return
	}
	if err := avl.Validate(s.tree); err != nil {
		log.Printf("AVL invariant violated after %s %d: %v", op, key, err)
	}
}

func formatKeys(keys []int) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = strconv.Itoa(k)
	}
	return strings.Join(parts, " ")
}

// describeError turns session and load errors into the short messages shown
// to the user.
func describeError(err error) string {
	switch {
	case errors.Is(err, ErrNoBinaryTree):
		return "Tree not loaded! Load a tree file first."
	case errors.Is(err, ErrNoAVLTree):
		return "AVL tree not created!"
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Sprintf("File opening error! %v", err)
	case errors.Is(err, bintree.ErrUnbalanced):
		return "Incorrect bracket format!"
	default:
		var syntaxErr *bintree.SyntaxError
		if errors.As(err, &syntaxErr) {
			return fmt.Sprintf("Parsing error! %v", syntaxErr)
		}
		return err.Error()
	}
}
