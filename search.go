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
	"strings"

	"github.com/golang/glog"
)

// SearchResult describes where Search relocated a file.
type SearchResult struct {
	// Path is the resolved name. It is interned: identical text always
	// yields the same stored string, safe to retain indefinitely.
	Path string
	// Mtime carries a modification-time outcome when one was requested.
	Mtime Mtime
	// ListIndex is the index of the matching selective list in
	// declaration order, or 0 when the general list matched.
	ListIndex int
	// DirIndex is the index of the matching directory within the list.
	DirIndex int
	// TargetGoal reports whether the matching list places targets
	// speculatively.
	TargetGoal bool
}

// Search looks for file in every search list whose pattern matches it
// and returns the first location found. Absolute names are never
// relocated. Selective lists are scanned twice, first with their
// target-goal flag ignored so that when several lists share a pattern
// all of them are tried for files that really exist, then again
// considering only the target-goal lists; the general list comes last.
func (sp *SearchPaths) Search(file string, wantMtime bool) (SearchResult, bool) {
	if file == "" || isAbs(file) {
		return SearchResult{}, false
	}
	if len(sp.vpaths) == 0 && sp.general == nil {
		return SearchResult{}, false
	}

	for i, v := range sp.vpaths {
		if !v.matches(file) {
			continue
		}
		save := v.targetGoal
		v.targetGoal = false
		r, ok := sp.searchList(v, file, wantMtime)
		v.targetGoal = save
		if ok {
			r.ListIndex = i
			r.TargetGoal = v.targetGoal
			return r, true
		}
	}

	for i, v := range sp.vpaths {
		if !v.targetGoal || !v.matches(file) {
			continue
		}
		if r, ok := sp.searchList(v, file, wantMtime); ok {
			r.ListIndex = i
			r.TargetGoal = true
			return r, true
		}
	}

	if sp.general != nil {
		if r, ok := sp.searchList(sp.general, file, wantMtime); ok {
			return r, true
		}
	}
	return SearchResult{}, false
}

// searchList scans one list's directories in order for file.
//
// A name mentioned in the target database counts as existing for a
// plain prerequisite, but a file that is itself a declared target is
// only satisfied by a mention that is also a target. A name found only
// in the directory cache is confirmed with a real probe before it is
// trusted; a stale entry is skipped unless target semantics apply.
// When the list places target goals and no directory holds the file,
// the candidate in the first directory is returned so a not-yet-built
// target gets a home there.
func (sp *SearchPaths) searchList(v *searchPath, file string, wantMtime bool) (SearchResult, bool) {
	var isTarget bool
	if f, ok := sp.files.Lookup(file); ok {
		isTarget = f.IsTarget
	}

	// Split file into a directory prefix and the name within it.
	prefix := ""
	name := file
	if i := strings.LastIndexByte(file, '/'); i >= 0 {
		prefix = file[:i]
		name = file[i+1:]
	}

	buf := newCandidate(v.maxLen + 1 + len(prefix) + 1 + len(name) + 1)
	defer buf.release()

	var (
		mtime    Mtime
		mtimeSet bool
		fallback string
	)

	for i, dir := range v.dirs {
		buf.reset()
		buf.writeString(dir)
		if prefix != "" {
			buf.sep()
			buf.writeString(prefix)
		}
		dirEnd := buf.len()
		buf.sep()
		buf.writeString(name)
		candidate := buf.string()

		exists := false
		existsInCache := false

		if f, ok := sp.files.Lookup(candidate); ok {
			exists = !isTarget || f.IsTarget
			if exists && wantMtime && !mtimeSet && f.Mtime.State == MtimeValid {
				mtime = f.Mtime
				mtimeSet = true
			}
		}

		if !exists {
			// Not mentioned in the database; ask the directory cache.
			exists = sp.dirs.FileExists(candidate[:dirEnd], name)
			existsInCache = exists
		}

		if exists {
			if existsInCache {
				// The cache may be stale. Confirm with a real probe:
				// a vanished file confuses the higher levels, so skip
				// it unless target semantics still want the name.
				st, ok := sp.dirs.Stat(candidate)
				if !ok {
					exists = false
					if !v.targetGoal && !isTarget {
						continue
					}
				}
				if exists && wantMtime && !mtimeSet {
					mtime = Mtime{State: MtimeValid, Time: st}
					mtimeSet = true
				}
			}
			if wantMtime && !mtimeSet {
				mtime = Mtime{State: MtimeUnknown}
			}
			glog.V(1).Infof("relocating %q to %q", file, candidate)
			return SearchResult{Path: intern(candidate), Mtime: mtime, DirIndex: i}, true
		}

		if v.targetGoal && fallback == "" {
			// First directory of a target-goal list; keep scanning for
			// a real hit before settling for it.
			fallback = candidate
		}
	}

	if fallback != "" {
		if wantMtime {
			mtime = Mtime{State: MtimeUnknown}
		}
		glog.V(1).Infof("relocating %q to %q", file, fallback)
		return SearchResult{Path: intern(fallback), Mtime: mtime, DirIndex: 0}, true
	}
	return SearchResult{}, false
}

// isAbs reports whether file starts at a filesystem root, including
// backslash and drive-letter forms.
func isAbs(file string) bool {
	if file[0] == '/' || file[0] == '\\' {
		return true
	}
	return len(file) > 1 && file[1] == ':'
}
