package vpath

import "testing"

func TestGPath(t *testing.T) {
	sp := New(newFakeDirCache(), TargetMap{})
	if sp.GPath("/src/foo.c") {
		t.Error("membership reported with no exclusion list")
	}
	if err := sp.BuildExclusion("/src/foo.c /src/barrr.c"); err != nil {
		t.Fatal(err)
	}
	sp.Finalize()

	full := "/src/foo.cxx"
	for _, tc := range []struct {
		name string
		want bool
	}{
		{full[:10], true}, // exactly "/src/foo.c"
		{full[:9], false}, // a shorter prefix of a stored entry
		{full, false},     // a longer string sharing the prefix
		{"/src/barrr.c", true},
		{"/src/bar", false},
		{"/SRC/foo.c", false}, // case-sensitive
	} {
		if got := sp.GPath(tc.name); got != tc.want {
			t.Errorf("GPath(%q)=%t, want %t", tc.name, got, tc.want)
		}
	}
}
