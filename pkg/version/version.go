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
	"strconv"
	"strings"
)

// Version holds the positional components of a dot-delimited version string.
// Components are kept as strings: version text is carried between image tags,
// Dockerfile templates, and engine output verbatim, and no numeric validation
// is performed at parse time. Use MajorInt and MinorInt where a numeric
// reading is required.
type Version struct {
	Major string `json:"major,omitempty" yaml:"major,omitempty"`
	Minor string `json:"minor,omitempty" yaml:"minor,omitempty"`
	Patch string `json:"patch,omitempty" yaml:"patch,omitempty"`
}

// Parse splits s into MAJOR.MINOR.PATCH components. It never fails; input
// that does not match the shape degrades positionally instead:
//
//   - a string with no dot is kept whole in Major, leaving Minor and Patch
//     empty (callers depend on this fallback for bare tags such as "edge")
//   - Minor is everything between the first and second dot and keeps any
//     pre-release suffix ("1.2-rc" yields Minor "2-rc")
//   - Patch is cut at the first '.' or '-' that follows it, so trailing
//     segments and pre-release markers ("3.2.8-rc1") are dropped
func Parse(s string) Version {
	major, rest, ok := strings.Cut(s, ".")
	if !ok {
		return Version{Major: s}
	}

	minor, rest, ok := strings.Cut(rest, ".")
	if !ok {
		return Version{Major: major, Minor: minor}
	}

	patch := rest
	if i := strings.IndexAny(patch, ".-"); i >= 0 {
		patch = patch[:i]
	}

	return Version{Major: major, Minor: minor, Patch: patch}
}

// String returns the components rejoined with dots. Assembly stops at the
// first empty component, so a Version parsed from "1.2" prints as "1.2" and
// one parsed from "edge" prints as "edge".
func (v Version) String() string {
	if v.Major == "" {
		return ""
	}
	var b strings.Builder
	b.WriteString(v.Major)
	if v.Minor == "" {
		return b.String()
	}
	b.WriteByte('.')
	b.WriteString(v.Minor)
	if v.Patch == "" {
		return b.String()
	}
	b.WriteByte('.')
	b.WriteString(v.Patch)
	return b.String()
}

// IsZero returns true if no component is set.
func (v Version) IsZero() bool {
	return v.Major == "" && v.Minor == "" && v.Patch == ""
}

// MajorInt returns the major component as an integer.
// Returns an error when the component is empty or non-numeric.
func (v Version) MajorInt() (int, error) {
	return strconv.Atoi(v.Major)
}

// MinorInt returns the minor component as an integer.
// Returns an error when the component is empty or non-numeric.
// Leading zeros are accepted, so "05" reads as 5.
func (v Version) MinorInt() (int, error) {
	return strconv.Atoi(v.Minor)
}
