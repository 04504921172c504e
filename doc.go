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

// Package vpath implements pattern-matching file search paths for a
// build-dependency tool. A prerequisite that cannot be found relative
// to the current directory is looked up in ordered directory lists
// scoped to wildcard patterns, with a separate general list applying
// to every name and speculative placement of not-yet-built targets.
package vpath
