package vpath

// GPath reports whether name is exactly one of the exclusion-list
// entries (case-sensitive, no wildcards). Callers use it to avoid
// re-resolving a name to a location it was already found to occupy;
// Search itself never consults the exclusion list.
func (sp *SearchPaths) GPath(name string) bool {
	if sp.gpath == nil || len(name) > sp.gpath.maxLen {
		return false
	}
	for _, dir := range sp.gpath.dirs {
		if dir == name {
			return true
		}
	}
	return false
}
