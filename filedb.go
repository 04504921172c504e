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

import "time"

// MtimeState tells how much is known about a modification time.
type MtimeState int

const (
	// MtimeNotStatted means the name has never been statted.
	MtimeNotStatted MtimeState = iota
	// MtimeUnknown means the name was resolved without a stat, so no
	// timestamp is available.
	MtimeUnknown
	// MtimeValid means Time holds a real modification time.
	MtimeValid
)

// Mtime is a modification-time outcome.
type Mtime struct {
	State MtimeState
	Time  time.Time
}

// Target is what the build database records about one name.
type Target struct {
	// IsTarget is set when the name is a declared build target, not
	// merely a mentioned prerequisite.
	IsTarget bool
	Mtime    Mtime
}

// TargetDB exposes the build-target database to the search, which
// only ever reads it.
type TargetDB interface {
	Lookup(name string) (Target, bool)
}

// TargetMap is a map-backed TargetDB.
type TargetMap map[string]Target

// Lookup implements TargetDB.
func (m TargetMap) Lookup(name string) (Target, bool) {
	t, ok := m[name]
	return t, ok
}
