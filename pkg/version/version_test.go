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
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Version
	}{
		{
			name:  "full release",
			input: "3.2.8",
			want:  Version{Major: "3", Minor: "2", Patch: "8"},
		},
		{
			name:  "pre-release suffix dropped from patch",
			input: "3.2.8-rc1",
			want:  Version{Major: "3", Minor: "2", Patch: "8"},
		},
		{
			name:  "engine style with edition suffix",
			input: "17.05.0-ce",
			want:  Version{Major: "17", Minor: "05", Patch: "0"},
		},
		{
			name:  "major and minor only",
			input: "1.2",
			want:  Version{Major: "1", Minor: "2"},
		},
		{
			name:  "minor keeps pre-release marker",
			input: "1.2-beta",
			want:  Version{Major: "1", Minor: "2-beta"},
		},
		{
			name:  "extra segments dropped",
			input: "1.2.3.4",
			want:  Version{Major: "1", Minor: "2", Patch: "3"},
		},
		{
			name:  "undelimited patch suffix kept",
			input: "1.2.3rc1",
			want:  Version{Major: "1", Minor: "2", Patch: "3rc1"},
		},
		{
			name:  "dotless string becomes major",
			input: "edge",
			want:  Version{Major: "edge"},
		},
		{
			name:  "v prefix is not stripped",
			input: "v1.2.3",
			want:  Version{Major: "v1", Minor: "2", Patch: "3"},
		},
		{
			name:  "empty input",
			input: "",
			want:  Version{},
		},
		{
			name:  "bare dots",
			input: "..",
			want:  Version{},
		},
		{
			name:  "leading dot",
			input: ".1",
			want:  Version{Major: "", Minor: "1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestVersionString(t *testing.T) {
	tests := []struct {
		name string
		v    Version
		want string
	}{
		{"full", Version{Major: "3", Minor: "2", Patch: "8"}, "3.2.8"},
		{"major and minor", Version{Major: "1", Minor: "2"}, "1.2"},
		{"major only", Version{Major: "17"}, "17"},
		{"empty", Version{}, ""},
		{"leading zero minor preserved", Version{Major: "17", Minor: "05", Patch: "0"}, "17.05.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestVersionIsZero(t *testing.T) {
	if !(Version{}).IsZero() {
		t.Error("empty Version should be zero")
	}
	if (Version{Major: "1"}).IsZero() {
		t.Error("Version with major set should not be zero")
	}
	if Parse("edge").IsZero() {
		t.Error("parsed dotless version should not be zero")
	}
}

func TestMajorInt(t *testing.T) {
	tests := []struct {
		name    string
		v       Version
		want    int
		wantErr bool
	}{
		{"numeric", Parse("17.05.0-ce"), 17, false},
		{"non-numeric", Parse("edge"), 0, true},
		{"empty", Version{}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.v.MajorInt()
			if (err != nil) != tt.wantErr {
				t.Fatalf("MajorInt() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("MajorInt() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMinorInt(t *testing.T) {
	tests := []struct {
		name    string
		v       Version
		want    int
		wantErr bool
	}{
		{"leading zero", Parse("17.05.0-ce"), 5, false},
		{"plain", Parse("18.0.0"), 0, false},
		{"pre-release marker", Parse("1.2-beta"), 0, true},
		{"missing", Parse("17"), 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.v.MinorInt()
			if (err != nil) != tt.wantErr {
				t.Fatalf("MinorInt() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("MinorInt() = %d, want %d", got, tt.want)
			}
		})
	}
}
