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

// Package checksum reads sha256sum-compatible manifest files that pin the
// release artifacts a build is allowed to fetch.
package checksum

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	apperrors "github.com/gorobot-library/traefik/pkg/errors"
)

// ManifestName is the standard name for checksum manifest files.
const ManifestName = "checksums.txt"

// sha256 hex digests are 32 bytes, 64 characters.
const digestHexLen = 64

// Entry is one line of a manifest: a SHA256 digest and the artifact name it
// pins, in the two-column format sha256sum emits and verifies.
type Entry struct {
	Checksum string
	Artifact string
}

// ParseManifest reads manifest entries from r. Blank lines and lines starting
// with '#' are ignored. A line that does not hold a hex digest followed by an
// artifact name is an error; a manifest with a corrupted line must not
// silently pin fewer artifacts than its author wrote.
func ParseManifest(r io.Reader) ([]Entry, error) {
	var entries []Entry

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		digest, artifact, ok := strings.Cut(text, " ")
		artifact = strings.TrimSpace(artifact)
		if !ok || artifact == "" {
			return nil, apperrors.New(apperrors.ErrCodeTemplate,
				fmt.Sprintf("malformed checksum manifest line %d: %q", line, text))
		}
		if !isHexDigest(digest) {
			return nil, apperrors.New(apperrors.ErrCodeTemplate,
				fmt.Sprintf("malformed checksum on manifest line %d: %q", line, digest))
		}

		entries = append(entries, Entry{Checksum: digest, Artifact: artifact})
	}
	if err := scanner.Err(); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeTemplate, "failed to read checksum manifest", err)
	}

	return entries, nil
}

// ReadManifest parses the manifest file at path.
func ReadManifest(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeTemplate,
			fmt.Sprintf("failed to open checksum manifest %s", path), err)
	}
	defer f.Close()

	return ParseManifest(f)
}

// Find returns the first entry whose artifact name contains version.
// First match wins; manifests list one artifact per release.
func Find(entries []Entry, version string) (Entry, bool) {
	for _, e := range entries {
		if strings.Contains(e.Artifact, version) {
			return e, true
		}
	}
	return Entry{}, false
}

// Lookup resolves the checksum pinned for version in the manifest at path.
// A version with no manifest entry fails the build before the engine is
// ever invoked.
func Lookup(path, version string) (string, error) {
	entries, err := ReadManifest(path)
	if err != nil {
		return "", err
	}

	entry, ok := Find(entries, version)
	if !ok {
		return "", apperrors.NewWithContext(apperrors.ErrCodeTemplate,
			fmt.Sprintf("no checksum entry for version %s, add the release line to %s", version, path),
			map[string]any{"version": version, "manifest": path})
	}

	slog.Debug("checksum resolved",
		"version", version,
		"artifact", entry.Artifact,
	)

	return entry.Checksum, nil
}

func isHexDigest(s string) bool {
	if len(s) != digestHexLen {
		return false
	}
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
