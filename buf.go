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

import "sync"

var cbufFree = sync.Pool{
	New: func() interface{} { return new(candidate) },
}

// candidate assembles one directory/prefix/name pathname at a time,
// reusing its backing array across every directory of a list scan.
type candidate struct {
	buf       []byte
	bootstrap [64]byte // memory to hold short candidates
}

// newCandidate returns a buffer with room for n bytes.
func newCandidate(n int) *candidate {
	b := cbufFree.Get().(*candidate)
	if b.buf == nil {
		b.buf = b.bootstrap[:0]
	}
	if cap(b.buf) < n {
		b.buf = make([]byte, 0, n)
	}
	return b
}

func (b *candidate) release() {
	b.buf = b.buf[:0]
	cbufFree.Put(b)
}

func (b *candidate) reset() {
	b.buf = b.buf[:0]
}

func (b *candidate) writeString(s string) {
	b.buf = append(b.buf, s...)
}

// sep appends a path separator unless the last byte already is one, so
// runs of separators collapse to exactly one.
func (b *candidate) sep() {
	if n := len(b.buf); n > 0 && b.buf[n-1] == '/' {
		return
	}
	b.buf = append(b.buf, '/')
}

func (b *candidate) len() int {
	return len(b.buf)
}

func (b *candidate) string() string {
	return string(b.buf)
}
