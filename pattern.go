package vpath

import "strings"

// findPercent returns the byte offset of the first unescaped '%' in
// pat, or -1 if the pattern has no wildcard. A '%' preceded by an odd
// number of backslashes is literal.
func findPercent(pat string) int {
	for i := 0; i < len(pat); i++ {
		if pat[i] != '%' {
			continue
		}
		nbs := 0
		for j := i - 1; j >= 0 && pat[j] == '\\'; j-- {
			nbs++
		}
		if nbs%2 == 0 {
			return i
		}
	}
	return -1
}

// matchPercent reports whether name matches pat, whose wildcard (if
// any) sits at byte offset percent. A pattern without a wildcard only
// matches name exactly. The wildcard stem must be allowed to be empty,
// but prefix and suffix may not overlap in name.
func matchPercent(pat string, percent int, name string) bool {
	if percent < 0 {
		return pat == name
	}
	prefix := pat[:percent]
	suffix := pat[percent+1:]
	if len(name) < len(prefix)+len(suffix) {
		return false
	}
	return strings.HasPrefix(name, prefix) && strings.HasSuffix(name, suffix)
}
