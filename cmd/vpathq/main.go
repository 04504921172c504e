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

// vpathq builds a set of search paths from directive lines and reports
// where each filename argument resolves.
//
// Directive lines, one per line, # comments allowed:
//
//	vpath PATTERN DIRS    declare a selective search path
//	vpath PATTERN         clear the search paths for PATTERN
//	vpath                 clear all selective search paths
//	.path PATTERN DIRS    declare a target-goal search path
//	VPATH = DIRS          the general search path
//	GPATH = DIRS          the exclusion list
//	target NAME           declare NAME a build target
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/golang/glog"
	"github.com/spf13/pflag"

	"github.com/kashika/vpath"
)

var (
	fileFlag  string
	delimFlag string
	mtimeFlag bool
	dumpFlag  bool
)

func init() {
	pflag.StringVarP(&fileFlag, "file", "f", "", "read directives from `path` (default stdin)")
	pflag.StringVar(&delimFlag, "path-delimiter", "", "treat DIRS as host path lists with this delimiter")
	pflag.BoolVar(&mtimeFlag, "mtime", false, "report modification times")
	pflag.BoolVar(&dumpFlag, "dump", false, "print the search-path database")
}

func main() {
	pflag.CommandLine.AddGoFlagSet(flag.CommandLine) // adopt glog's flags
	pflag.Parse()
	st := run()
	glog.Flush()
	os.Exit(st)
}

func run() int {
	var in io.Reader = os.Stdin
	if fileFlag != "" {
		f, err := os.Open(fileFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "vpathq: %v\n", err)
			return 2
		}
		defer f.Close()
		in = f
	}

	targets := vpath.TargetMap{}
	sp := vpath.New(vpath.NewDirCache(), targets)

	scanner := bufio.NewScanner(in)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := applyLine(sp, targets, line); err != nil {
			fmt.Fprintf(os.Stderr, "vpathq:%d: %v\n", lineno, err)
			return 2
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "vpathq: %v\n", err)
		return 2
	}
	sp.Finalize()

	if dumpFlag {
		sp.Dump(os.Stdout)
	}

	status := 0
	for _, name := range pflag.Args() {
		r, ok := sp.Search(name, mtimeFlag)
		if !ok {
			fmt.Printf("%s: not found\n", name)
			status = 1
			continue
		}
		if mtimeFlag && r.Mtime.State == vpath.MtimeValid {
			fmt.Printf("%s: %s (%s)\n", name, r.Path, r.Mtime.Time.Format(time.RFC3339))
		} else {
			fmt.Printf("%s: %s\n", name, r.Path)
		}
	}
	return status
}

func applyLine(sp *vpath.SearchPaths, targets vpath.TargetMap, line string) error {
	if val, ok := variableValue(line, "VPATH"); ok {
		return sp.BuildGeneral(hostDirs(val))
	}
	if val, ok := variableValue(line, "GPATH"); ok {
		return sp.BuildExclusion(hostDirs(val))
	}

	kw, rest := split2(line)
	switch kw {
	case "vpath", ".path":
		pattern, dirs := split2(rest)
		return sp.Apply(pattern, hostDirs(dirs), kw == ".path")
	case "target":
		name, _ := split2(rest)
		if name == "" {
			return fmt.Errorf("target: missing name")
		}
		targets[name] = vpath.Target{IsTarget: true}
		return nil
	}
	return fmt.Errorf("unknown directive %q", kw)
}

// variableValue matches "NAME = value" assignment lines.
func variableValue(line, name string) (string, bool) {
	if !strings.HasPrefix(line, name) {
		return "", false
	}
	rest := strings.TrimLeft(line[len(name):], " \t")
	if !strings.HasPrefix(rest, "=") {
		return "", false
	}
	return strings.TrimSpace(rest[1:]), true
}

// hostDirs converts a directory list from host syntax when a delimiter
// was given on the command line.
func hostDirs(dirs string) string {
	if delimFlag == "" || dirs == "" {
		return dirs
	}
	return vpath.CanonicalPathList(dirs, delimFlag[0])
}

// split2 breaks line into its first blank-separated word and the
// trimmed remainder.
func split2(line string) (string, string) {
	line = strings.TrimSpace(line)
	i := strings.IndexAny(line, " \t")
	if i < 0 {
		return line, ""
	}
	return line[:i], strings.TrimSpace(line[i+1:])
}
