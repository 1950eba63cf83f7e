// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package version

import (
	"strings"
	"testing"
)

// FuzzParse performs fuzz testing on Parse to find edge cases
func FuzzParse(f *testing.F) {
	// Seed corpus with valid and edge case inputs
	f.Add("3.2.8")
	f.Add("3.2.8-rc1")
	f.Add("17.05.0-ce")
	f.Add("18.0.0")
	f.Add("1")
	f.Add("1.2")
	f.Add("1.2-beta")
	f.Add("1.2.3.4")
	f.Add("1.2.3rc1")
	f.Add("v1.2.3")
	f.Add("edge")
	f.Add("latest")
	f.Add("")
	f.Add(".")
	f.Add("..")
	f.Add("1.")
	f.Add(".1")
	f.Add("1..2")
	f.Add("0.0.0")
	f.Add("999.999.999")
	f.Add("   1.2.3")
	f.Add("1. 2.3")

	f.Fuzz(func(t *testing.T, input string) {
		// Parse never fails and never panics
		v := Parse(input)

		// Components never re-introduce the delimiters that produced them
		if strings.Contains(v.Major, ".") {
			t.Errorf("Parse(%q) major contains a dot: %+v", input, v)
		}
		if strings.Contains(v.Minor, ".") {
			t.Errorf("Parse(%q) minor contains a dot: %+v", input, v)
		}
		if strings.ContainsAny(v.Patch, ".-") {
			t.Errorf("Parse(%q) patch contains a delimiter: %+v", input, v)
		}

		// A dotless input lands entirely in Major
		if !strings.Contains(input, ".") && (v.Major != input || v.Minor != "" || v.Patch != "") {
			t.Errorf("Parse(%q) dotless fallback broken: %+v", input, v)
		}

		// String is stable after one round trip
		s1 := v.String()
		s2 := Parse(s1).String()
		if s1 != s2 {
			t.Errorf("round trip not stable for %q: %q != %q", input, s1, s2)
		}

		// Numeric accessors never panic
		_, _ = v.MajorInt()
		_, _ = v.MinorInt()
	})
}
