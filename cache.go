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
	"os"
	"path/filepath"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/cybrota/arbor/bintree"
)

const (
	// Parsed trees stay cached for 30 minutes unless configured otherwise
	treeCacheExpiration = 30 * time.Minute
	// Clean up expired entries every 5 minutes
	treeCacheCleanup = 5 * time.Minute
)

// NewTreeCache creates a cache for parsed bracket files. Zero durations fall
// back to the package defaults.
func NewTreeCache(expiration, cleanup time.Duration) *cache.Cache {
	if expiration <= 0 {
		expiration = treeCacheExpiration
	}
	if cleanup <= 0 {
		cleanup = treeCacheCleanup
	}
	return cache.New(expiration, cleanup)
}

// treeCacheKey identifies a file's current content by absolute path, size and
// modification time, so an edited file misses the cache.
func treeCacheKey(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s|%d|%d", abs, info.Size(), info.ModTime().UnixNano()), nil
}

func CacheTree(c *cache.Cache, key string, root *bintree.Node) {
	c.Set(key, root, cache.DefaultExpiration)
}

func GetCachedTree(c *cache.Cache, key string) *bintree.Node {
	val, ok := c.Get(key)
	if !ok {
		return nil
	}
	root, _ := val.(*bintree.Node)
	return root
}
