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
	"math/rand"

	"github.com/cybrota/arbor/avl"
	"github.com/schollz/progressbar/v3"
)

// ErrStressMismatch is returned when the tree disagrees with the reference set.
var ErrStressMismatch = errors.New("tree disagrees with reference set")

// StressOptions configures a randomized insert/delete run.
type StressOptions struct {
	Ops      int
	MaxKey   int
	Seed     int64
	Progress bool
}

// StressReport summarizes a finished run.
type StressReport struct {
	Inserts   int
	Deletes   int
	Misses    int // deletes of absent keys and inserts of present ones
	FinalSize int
	MaxHeight int
}

func (r StressReport) String() string {
	return fmt.Sprintf("inserts: %d, deletes: %d, no-ops: %d, final size: %d, max height: %d",
		r.Inserts, r.Deletes, r.Misses, r.FinalSize, r.MaxHeight)
}

// runStress applies opts.Ops random inserts and deletes to one AVL tree, checking
// the tree against a reference set and the AVL invariants after every step.
// The progress bar, when enabled, is drawn on progress.
func runStress(opts StressOptions, progress io.Writer) (StressReport, error) {
	var report StressReport
	if opts.Ops <= 0 {
		return report, fmt.Errorf("ops must be positive, got %d", opts.Ops)
	}
	if opts.MaxKey <= 0 {
		return report, fmt.Errorf("max key must be positive, got %d", opts.MaxKey)
	}

	var bar *progressbar.ProgressBar
	if opts.Progress {
		bar = progressbar.NewOptions(opts.Ops,
			progressbar.OptionSetWriter(progress),
			progressbar.OptionSetDescription("🌳 Balancing..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionThrottle(0),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
		)
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	reference := make(map[int]bool)
	var root *avl.Node
	defer func() { avl.Destroy(root) }()

	for step := 1; step <= opts.Ops; step++ {
		key := rng.Intn(opts.MaxKey)
		op := "insert"
		if rng.Intn(10) < 4 {
			op = "delete"
		}

		switch op {
		case "insert":
			if reference[key] {
				report.Misses++
			} else {
				report.Inserts++
			}
			root = avl.Insert(root, key)
			reference[key] = true
		case "delete":
			if reference[key] {
				report.Deletes++
			} else {
				report.Misses++
			}
			root = avl.Delete(root, key)
			delete(reference, key)
		}

		if err := avl.Validate(root); err != nil {
			return report, fmt.Errorf("step %d (%s %d): %w", step, op, key, err)
		}
		if got := avl.Len(root); got != len(reference) {
			return report, fmt.Errorf("step %d (%s %d): size %d, want %d: %w",
				step, op, key, got, len(reference), ErrStressMismatch)
		}
		if avl.Search(root, key) != reference[key] {
			return report, fmt.Errorf("step %d (%s %d): search disagrees: %w",
				step, op, key, ErrStressMismatch)
		}
		report.MaxHeight = max(report.MaxHeight, avl.Height(root))

		if bar != nil {
			bar.Add(1)
		}
	}

	if bar != nil {
		bar.Finish()
		fmt.Fprintln(progress)
	}

	keys := avl.InOrder(root)
	for i := 1; i < len(keys); i++ {
		if keys[i-1] >= keys[i] {
			return report, fmt.Errorf("final in-order not increasing at %d: %w", i, ErrStressMismatch)
		}
	}
	report.FinalSize = len(keys)
	return report, nil
}
