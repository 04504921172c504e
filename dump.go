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
	"fmt"
	"io"
	"strings"
)

// Dump writes every search path to w in directive form: the selective
// lists in declaration order, then the general list. It is purely
// observational.
func (sp *SearchPaths) Dump(w io.Writer) {
	fmt.Fprintf(w, "\n# VPATH Search Paths\n")

	for _, v := range sp.vpaths {
		directive := "vpath"
		if v.targetGoal {
			directive = ".path"
		}
		fmt.Fprintf(w, "%s %s %s\n", directive, v.pattern, joinDirs(v.dirs))
	}

	if len(sp.vpaths) == 0 {
		fmt.Fprintf(w, "# No 'vpath' search paths.\n")
	} else {
		fmt.Fprintf(w, "\n# %d 'vpath' search paths.\n", len(sp.vpaths))
	}

	if sp.general == nil {
		fmt.Fprintf(w, "\n# No general ('VPATH' variable) search path.\n")
	} else {
		fmt.Fprintf(w, "\n# General ('VPATH' variable) search path:\n# %s\n", joinDirs(sp.general.dirs))
	}
}

func joinDirs(dirs []string) string {
	escaped := make([]string, len(dirs))
	for i, d := range dirs {
		escaped[i] = escapeBlanks(d)
	}
	return strings.Join(escaped, string(pathListSeparator))
}
