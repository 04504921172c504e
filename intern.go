package vpath

import "sync"

// The intern table gives every resolved path one canonical stored
// string, so results can be retained and compared cheaply for the
// life of the process.
var (
	internMu  sync.Mutex
	internTab = make(map[string]string)
)

func intern(s string) string {
	internMu.Lock()
	defer internMu.Unlock()
	if v, ok := internTab[s]; ok {
		return v
	}
	internTab[s] = s
	return s
}
