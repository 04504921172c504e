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
	"errors"
	"strings"

	"github.com/golang/glog"
)

// ErrSealed is returned by mutators called after Finalize.
var ErrSealed = errors.New("vpath: search paths already finalized")

// pathListSeparator splits entries of a canonical directory string, in
// addition to unescaped blanks.
const pathListSeparator = ':'

// searchPath is one pattern-scoped, ordered directory search list.
type searchPath struct {
	pattern    string
	percent    int // offset of '%' in pattern, or -1
	dirs       []string
	maxLen     int
	targetGoal bool
}

// matches reports whether file matches the list's pattern. A pattern
// ending in '.' also matches a file containing no '.' at all, with the
// trailing dot removed; this accommodates files lacking the
// conventional extension the pattern was written against.
func (v *searchPath) matches(file string) bool {
	if matchPercent(v.pattern, v.percent, file) {
		return true
	}
	if strings.HasSuffix(v.pattern, ".") && !strings.Contains(file, ".") {
		pat := v.pattern[:len(v.pattern)-1]
		return matchPercent(pat, findPercent(pat), file)
	}
	return false
}

// SearchPaths holds every directory search list of one build session:
// the selective pattern-scoped lists in declaration order, the general
// list built from the aggregate search-path variable, and the
// exclusion list consulted only for membership tests. Declarations
// accumulate while the session is being configured; Finalize seals the
// collection before dependency evaluation starts searching it.
type SearchPaths struct {
	dirs  DirCache
	files TargetDB

	vpaths  []*searchPath
	general *searchPath
	gpath   *searchPath
	sealed  bool
}

// New returns an empty collection searching with the given
// collaborators. Search only borrows them; it never mutates the
// target database and only registers directories with the cache.
func New(dirs DirCache, files TargetDB) *SearchPaths {
	return &SearchPaths{dirs: dirs, files: files}
}

// Apply processes one search-path directive. An empty dirpath removes
// every list in the same target-goal category declared for pattern, or
// every list in the category when pattern is empty too. Otherwise
// dirpath is parsed as a canonical delimited directory string and the
// resulting list is added after all earlier declarations; repeating a
// directive stacks a second list rather than replacing the first.
// A dirpath that yields no usable directory is a silent no-op.
func (sp *SearchPaths) Apply(pattern, dirpath string, targetGoal bool) error {
	if sp.sealed {
		return ErrSealed
	}
	if dirpath == "" {
		sp.remove(pattern, targetGoal)
		return nil
	}
	percent := -1
	if pattern != "" {
		percent = findPercent(pattern)
	}
	if v := sp.construct(pattern, percent, dirpath, targetGoal); v != nil {
		sp.vpaths = append(sp.vpaths, v)
	}
	return nil
}

// BuildGeneral constructs the general search list from the value of
// the aggregate search-path variable. The general list matches every
// filename and is searched after all selective lists.
func (sp *SearchPaths) BuildGeneral(val string) error {
	if sp.sealed {
		return ErrSealed
	}
	sp.general = sp.buildAggregate(val)
	return nil
}

// BuildExclusion constructs the exclusion list from the value of its
// aggregate variable. The exclusion list is never searched; see GPath.
func (sp *SearchPaths) BuildExclusion(val string) error {
	if sp.sealed {
		return ErrSealed
	}
	sp.gpath = sp.buildAggregate(val)
	return nil
}

// Finalize seals the collection: Apply, BuildGeneral and
// BuildExclusion fail afterwards. Lists are kept in declaration order
// as built, so sealing involves no reordering.
func (sp *SearchPaths) Finalize() {
	sp.sealed = true
}

// buildAggregate parses val through a scratch collection so the
// resulting list never enters the selective chain. A blank val yields
// no list.
func (sp *SearchPaths) buildAggregate(val string) *searchPath {
	tmp := SearchPaths{dirs: sp.dirs, files: sp.files}
	if val != "" {
		tmp.Apply("%", val, false)
	}
	if len(tmp.vpaths) == 0 {
		return nil
	}
	return tmp.vpaths[0]
}

// remove drops every list in the targetGoal category whose pattern
// equals pattern, or all of them when pattern is empty. Removing
// nothing is not an error.
func (sp *SearchPaths) remove(pattern string, targetGoal bool) {
	kept := sp.vpaths[:0]
	for _, v := range sp.vpaths {
		if v.targetGoal == targetGoal && (pattern == "" || v.pattern == pattern) {
			continue
		}
		kept = append(kept, v)
	}
	sp.vpaths = kept
}

// construct parses a canonical directory string into a search list.
// Entries are split on unescaped blanks and on the path separator,
// except a separator colon right after a leading drive letter and
// followed by a path character. Every surviving entry is registered
// with the directory cache before the list becomes searchable.
func (sp *SearchPaths) construct(pattern string, percent int, dirpath string, targetGoal bool) *searchPath {
	p := skipSeparators(dirpath, 0)
	var dirs []string
	maxLen := 0
	for p < len(dirpath) {
		start := p
		escaped := false
		for p < len(dirpath) {
			c := dirpath[p]
			if c == pathListSeparator && !isDriveColon(dirpath, start, p) {
				break
			}
			if isBlank(c) && !escaped {
				break
			}
			if c == '\\' {
				escaped = !escaped
			} else {
				escaped = false
			}
			p++
		}
		entry := trimDirSlash(unescapeBlanks(dirpath[start:p]))
		if entry != "." {
			sp.dirs.AddDir(entry)
			dirs = append(dirs, intern(entry))
			if len(entry) > maxLen {
				maxLen = len(entry)
			}
		}
		p = skipSeparators(dirpath, p)
	}
	if len(dirs) == 0 {
		return nil
	}
	glog.V(1).Infof("vpath %s %s (target goal: %t)", pattern, strings.Join(dirs, " "), targetGoal)
	return &searchPath{
		pattern:    intern(pattern),
		percent:    percent,
		dirs:       dirs,
		maxLen:     maxLen,
		targetGoal: targetGoal,
	}
}

func skipSeparators(s string, p int) int {
	for p < len(s) && (isBlank(s[p]) || s[p] == pathListSeparator) {
		p++
	}
	return p
}

// isDriveColon reports whether the separator at s[p] is really the
// colon of a drive prefix like "D:/foo": second character of the
// entry, followed by a path character.
func isDriveColon(s string, start, p int) bool {
	return p == start+1 && p+1 < len(s) && (s[p+1] == '/' || s[p+1] == '\\')
}

// trimDirSlash strips one trailing slash, leaving the filesystem root
// and bare drive roots like "C:/" intact.
func trimDirSlash(dir string) string {
	n := len(dir)
	if n <= 1 || (dir[n-1] != '/' && dir[n-1] != '\\') {
		return dir
	}
	if n == 3 && dir[1] == ':' {
		return dir
	}
	return dir[:n-1]
}
