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
	"reflect"
	"testing"
)

func TestCanonicalPathList(t *testing.T) {
	for _, tc := range []struct {
		native string
		delim  byte
		want   string
	}{
		{"src:lib", ':', "src lib"},
		{`"foo bar";baz`, ';', `foo\ bar baz`},
		{"a b;c", ';', `a\ b c`},
		{"src lib", ':', "src lib"},           // already canonical
		{`foo\ bar baz`, ';', `foo\ bar baz`}, // canonical with escapes
		{"", ';', ""},
		{"   ", ';', ""},
		{"src;", ';', "src"},
		{" src ;  lib ", ';', "src lib"},
		{`C:\one;C:\two`, ';', `C:\one C:\two`},
	} {
		if got := CanonicalPathList(tc.native, tc.delim); got != tc.want {
			t.Errorf("CanonicalPathList(%q, %q)=%q, want %q", tc.native, tc.delim, got, tc.want)
		}
	}
}

func TestHostPathList(t *testing.T) {
	for _, tc := range []struct {
		canonical string
		delim     byte
		want      string
	}{
		{"src lib", ':', "src:lib"},
		{`foo\ bar baz`, ';', `"foo bar";baz`},
		{"", ':', ""},
		{"  ", ':', ""},
	} {
		if got := HostPathList(tc.canonical, tc.delim); got != tc.want {
			t.Errorf("HostPathList(%q, %q)=%q, want %q", tc.canonical, tc.delim, got, tc.want)
		}
	}
}

func TestPathListRoundTrip(t *testing.T) {
	// Converting host syntax to canonical form and back preserves the
	// directory strings, order included.
	host := `"foo bar":baz:/x y`
	canonical := CanonicalPathList(host, ':')
	if want := `foo\ bar baz /x\ y`; canonical != want {
		t.Fatalf("canonical=%q, want %q", canonical, want)
	}
	back := HostPathList(canonical, ':')
	if want := `"foo bar":baz:"/x y"`; back != want {
		t.Fatalf("host=%q, want %q", back, want)
	}
	if got := CanonicalPathList(back, ':'); got != canonical {
		t.Errorf("second conversion=%q, want %q", got, canonical)
	}
	dirs := splitCanonical(canonical)
	if want := []string{"foo bar", "baz", "/x y"}; !reflect.DeepEqual(dirs, want) {
		t.Errorf("entries=%q, want %q", dirs, want)
	}
}
