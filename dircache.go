// Copyright 2024 The vpathq Authors. All rights reserved
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vpath

import (
	"os"
	"sync"
	"time"

	"github.com/golang/glog"
)

// DirCache is the directory-contents cache consulted during search.
type DirCache interface {
	// AddDir makes dir known to the cache. Every directory of a search
	// list is registered here before the list becomes searchable.
	AddDir(dir string)
	// FileExists reports whether name is known to exist inside dir,
	// from cached directory contents.
	FileExists(dir, name string) bool
	// Stat probes the filesystem for path, bypassing the cache, and
	// returns its modification time.
	Stat(path string) (time.Time, bool)
}

type dirCache struct {
	mu   sync.Mutex
	dirs map[string]map[string]bool
}

// NewDirCache returns a DirCache backed by lazily read directory
// listings. A directory is read once; files created afterwards are
// only visible through Stat.
func NewDirCache() DirCache {
	return &dirCache{dirs: make(map[string]map[string]bool)}
}

func (c *dirCache) AddDir(dir string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.load(dir)
}

func (c *dirCache) FileExists(dir, name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load(dir)[name]
}

func (c *dirCache) Stat(path string) (time.Time, bool) {
	st, err := os.Stat(path)
	if err != nil {
		return time.Time{}, false
	}
	return st.ModTime(), true
}

// load reads dir once. Missing or unreadable directories cache as
// empty so repeated lookups stay cheap.
func (c *dirCache) load(dir string) map[string]bool {
	if files, ok := c.dirs[dir]; ok {
		return files
	}
	files := make(map[string]bool)
	ents, err := os.ReadDir(dir)
	if err != nil {
		glog.V(2).Infof("readdir %s: %v", dir, err)
	}
	for _, e := range ents {
		files[e.Name()] = true
	}
	c.dirs[dir] = files
	return files
}
