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

import "strings"

// CanonicalPathList converts a host-native delimited directory list to
// the canonical form the directive parser expects: entries separated
// by blanks, blanks inside an entry escaped with a backslash. It
// accepts input already in canonical form (returned unchanged),
// double-quoted entries (quotes removed, blanks escaped), and unquoted
// entries containing blanks as long as the list is delimiter
// separated. A list holding nothing but blanks converts to "".
func CanonicalPathList(native string, delim byte) string {
	native = strings.TrimLeft(native, " \t")
	if native == "" {
		return ""
	}

	// Blanks only separate entries when a delimiter appears outside
	// quotes somewhere in the list.
	delimFound := false
	instring := false
	for i := 0; i < len(native); i++ {
		if native[i] == '"' {
			instring = !instring
		} else if native[i] == delim && !instring {
			delimFound = true
		}
	}

	var out []byte
	instring = false
	escaped := false
	for i := 0; i < len(native); i++ {
		c := native[i]
		switch {
		case c == '"':
			// Inside quotes blanks belong to the entry.
			instring = !instring
		case isBlank(c) && !escaped && (instring || delimFound):
			out = append(out, '\\', ' ')
		case c == delim && !instring:
			out = trimPadding(out)
			out = append(out, ' ')
			for i+1 < len(native) && isBlank(native[i+1]) {
				i++
			}
		default:
			out = append(out, c)
		}
		if !instring && c == '\\' {
			escaped = !escaped
		} else {
			escaped = false
		}
	}
	return string(trimPadding(out))
}

// HostPathList converts a canonical directory list back to host-native
// form: entries joined by delim, entries containing blanks enclosed in
// double quotes.
func HostPathList(canonical string, delim byte) string {
	entries := splitCanonical(canonical)
	if len(entries) == 0 {
		return ""
	}
	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteByte(delim)
		}
		if strings.ContainsAny(e, " \t") {
			b.WriteByte('"')
			b.WriteString(e)
			b.WriteByte('"')
		} else {
			b.WriteString(e)
		}
	}
	return b.String()
}

// trimPadding removes blanks that were padding around a delimiter,
// including ones already escaped during this conversion.
func trimPadding(out []byte) []byte {
	for len(out) > 0 && isBlank(out[len(out)-1]) {
		out = out[:len(out)-1]
		if len(out) > 0 && out[len(out)-1] == '\\' {
			out = out[:len(out)-1]
		}
	}
	return out
}

// splitCanonical splits a canonical list on unescaped blanks and
// removes the escapes from each entry.
func splitCanonical(canonical string) []string {
	var entries []string
	i := 0
	for i < len(canonical) {
		for i < len(canonical) && isBlank(canonical[i]) {
			i++
		}
		if i == len(canonical) {
			break
		}
		start := i
		escaped := false
		for i < len(canonical) && (escaped || !isBlank(canonical[i])) {
			if canonical[i] == '\\' {
				escaped = !escaped
			} else {
				escaped = false
			}
			i++
		}
		entries = append(entries, unescapeBlanks(canonical[start:i]))
	}
	return entries
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t'
}

// unescapeBlanks removes the backslash in front of every blank and
// collapses doubled backslashes; other backslashes stay literal.
func unescapeBlanks(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) && (isBlank(s[i+1]) || s[i+1] == '\\') {
			i++
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// escapeBlanks makes a directory entry safe to embed in a canonical
// list.
func escapeBlanks(s string) string {
	if !strings.ContainsAny(s, " \t") {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if isBlank(s[i]) {
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
