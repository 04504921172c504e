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
	"bytes"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
)

func TestDump(t *testing.T) {
	sp := New(newFakeDirCache(), TargetMap{})
	sp.Apply("%.c", "src lib", false)
	sp.Apply("%.o", "obj", true)
	sp.BuildGeneral(`tmp my\ docs`)
	sp.Finalize()

	var b bytes.Buffer
	sp.Dump(&b)
	want := `
# VPATH Search Paths
vpath %.c src:lib
.path %.o obj

# 2 'vpath' search paths.

# General ('VPATH' variable) search path:
# tmp:my\ docs
`
	diffDump(t, want, b.String())
}

func TestDumpEmpty(t *testing.T) {
	sp := New(newFakeDirCache(), TargetMap{})
	sp.Finalize()

	var b bytes.Buffer
	sp.Dump(&b)
	want := `
# VPATH Search Paths
# No 'vpath' search paths.

# No general ('VPATH' variable) search path.
`
	diffDump(t, want, b.String())
}

func diffDump(t *testing.T, want, got string) {
	t.Helper()
	if got == want {
		return
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(want, got, false)
	t.Errorf("dump mismatch (want → got):\n%s", dmp.DiffPrettyText(diffs))
}
