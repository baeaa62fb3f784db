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
	"encoding/binary"

	"github.com/willf/bloom"
)

// searchFilter remembers every key ever added to the current AVL tree. Bloom
// filters cannot forget, so deleted keys still test positive and fall through
// to the real search; a negative test is always exact.
type searchFilter struct {
	bits   *bloom.BloomFilter
	skips  int
	probes int
}

func newSearchFilter(m, k uint) *searchFilter {
	return &searchFilter{bits: bloom.New(m, k)}
}

func keyBytes(key int) []byte {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(key))
	return buf[:]
}

func (f *searchFilter) Add(key int) {
	f.bits.Add(keyBytes(key))
}

// MayContain reports false only for keys that were never added.
func (f *searchFilter) MayContain(key int) bool {
	f.probes++
	if f.bits.Test(keyBytes(key)) {
		return true
	}
	f.skips++
	return false
}

func (f *searchFilter) Reset() {
	f.bits.ClearAll()
	f.skips = 0
	f.probes = 0
}
