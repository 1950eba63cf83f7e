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

package oci

import (
	"fmt"
	"strings"

	"github.com/distribution/reference"

	apperrors "github.com/gorobot-library/traefik/pkg/errors"
)

// Tags the tool manages itself. Supplying either through --tag is rejected;
// they are only ever applied as secondary tags after a versioned build.
const (
	// TagLatest marks the most recent stable release.
	TagLatest = "latest"
	// TagEdge marks the most recent build regardless of stability.
	TagEdge = "edge"
)

// Reference represents a parsed image reference of the form
// [REPOSITORY/]IMAGE[:TAG]. Parsing is positional: Repository is the text
// before the first '/', Image the remainder before the first ':', and Tag
// everything after it. Nested repository paths stay inside Image
// ("ghcr.io/org/traefik" keeps Image "org/traefik"), which reassembles
// losslessly through Base and Name.
type Reference struct {
	// Repository is the text before the first '/'. Empty for bare image
	// names such as "traefik:3.2.8".
	Repository string `json:"repository,omitempty" yaml:"repository,omitempty"`
	// Image is the image name, without repository or tag.
	Image string `json:"image" yaml:"image"`
	// Tag is the text after the first ':' of the name part.
	// Empty string means no tag was specified.
	Tag string `json:"tag,omitempty" yaml:"tag,omitempty"`
}

// ParseReference splits s into repository, image, and tag components.
// It never fails; malformed input degrades positionally (an empty string
// yields an empty Reference). Use Validate to reject references the engine
// would not accept.
func ParseReference(s string) Reference {
	var r Reference
	rest := s
	if repo, remainder, ok := strings.Cut(rest, "/"); ok {
		r.Repository = repo
		rest = remainder
	}
	r.Image, r.Tag, _ = strings.Cut(rest, ":")
	return r
}

// Base returns the reference without its tag: "repository/image", or just
// "image" when no repository was given.
func (r Reference) Base() string {
	if r.Repository == "" {
		return r.Image
	}
	return r.Repository + "/" + r.Image
}

// Name returns the full reference, "repository/image:tag", omitting the
// parts that are empty.
func (r Reference) Name() string {
	if r.Tag == "" {
		return r.Base()
	}
	return r.Base() + ":" + r.Tag
}

// String returns the full reference string.
func (r Reference) String() string {
	return r.Name()
}

// WithTag returns a copy of the reference with the specified tag.
func (r Reference) WithTag(tag string) Reference {
	r.Tag = tag
	return r
}

// ValidateTag checks the tag part of the reference. It must be present,
// since the tag selects the release version to build, and must not be one of
// the tags the tool reserves for itself. Requesting "latest" or "edge"
// directly would bypass the versioned build, so the caller is pointed at the
// flag that applies them instead.
func (r Reference) ValidateTag() error {
	switch r.Tag {
	case "":
		return apperrors.NewWithContext(apperrors.ErrCodeInvalidReference,
			"reference has no tag, the tag selects the release version to build",
			map[string]any{"reference": r.Name()})
	case TagLatest:
		return apperrors.NewWithContext(apperrors.ErrCodeInvalidReference,
			`tag "latest" is reserved, build a versioned tag and add --latest instead`,
			map[string]any{"reference": r.Name()})
	case TagEdge:
		return apperrors.NewWithContext(apperrors.ErrCodeInvalidReference,
			`tag "edge" is reserved, build a versioned tag and add --edge instead`,
			map[string]any{"reference": r.Name()})
	}
	return nil
}

// Validate confirms the assembled reference is one the engine will accept,
// using the same normalization rules as the Docker distribution tooling.
func (r Reference) Validate() error {
	if r.Image == "" {
		return apperrors.New(apperrors.ErrCodeInvalidReference, "image name is empty")
	}
	if _, err := reference.ParseNormalizedNamed(r.Name()); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInvalidReference,
			fmt.Sprintf("invalid image reference %q", r.Name()), err)
	}
	return nil
}
