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

package builder

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	ociv1 "github.com/opencontainers/image-spec/specs-go/v1"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gorobot-library/traefik/pkg/defaults"
	"github.com/gorobot-library/traefik/pkg/engine"
	"github.com/gorobot-library/traefik/pkg/oci"
	"github.com/gorobot-library/traefik/pkg/version"
)

// Phase is the builder's position in the build lifecycle. Transitions are
// strictly forward; every failure is terminal for the invocation.
type Phase string

const (
	// PhaseIdle is the state before Build is called.
	PhaseIdle Phase = "idle"
	// PhaseValidating covers reference validation and build context staging.
	PhaseValidating Phase = "validating"
	// PhaseBuilding covers the engine build subprocess.
	PhaseBuilding Phase = "building"
	// PhaseTagging covers the optional secondary tags.
	PhaseTagging Phase = "tagging"
	// PhaseDone is the terminal success state.
	PhaseDone Phase = "done"
	// PhaseFailed is the terminal failure state.
	PhaseFailed Phase = "failed"
)

// Engine is the subset of the engine client the builder needs.
type Engine interface {
	Build(ctx context.Context, opts engine.BuildOptions) error
	Tag(ctx context.Context, source, target string) error
}

// Request describes one build invocation.
type Request struct {
	// Ref is the target reference. Its tag doubles as the version that
	// selects the release checksum and fills the Dockerfile template.
	Ref oci.Reference
	// Latest applies the additional "latest" tag after a successful build.
	Latest bool
	// Edge applies the additional "edge" tag after a successful build.
	Edge bool
	// NoCache disables the engine layer cache for this build.
	NoCache bool
}

// Result summarizes a completed build.
type Result struct {
	// Name is the full reference the image was built under.
	Name string `json:"name" yaml:"name"`
	// Display is the title-cased image name, for human-facing output.
	Display string `json:"display,omitempty" yaml:"display,omitempty"`
	// Repository is the repository part of the reference, if any.
	Repository string `json:"repository,omitempty" yaml:"repository,omitempty"`
	// Image is the image name without repository or tag.
	Image string `json:"image" yaml:"image"`
	// Version is the requested tag, which doubles as the release version.
	Version string `json:"version" yaml:"version"`
	// Checksum is the release artifact digest baked into the build.
	Checksum string `json:"checksum" yaml:"checksum"`
	// BaseImage is the image the final build stage started from.
	BaseImage string `json:"base_image" yaml:"base_image"`
	// Tags lists every reference applied to the built image, build name
	// first.
	Tags []string `json:"tags" yaml:"tags"`
	// BuildID is the unique id of this invocation.
	BuildID string `json:"build_id" yaml:"build_id"`
	// ContextDir is the staged build context directory. It is left behind
	// for inspection; the OS temp lifecycle reclaims it.
	ContextDir string `json:"context_dir" yaml:"context_dir"`
	// Duration is the elapsed wall-clock time of the build.
	Duration string `json:"duration" yaml:"duration"`
}

// Builder materializes a build context and drives the engine through build
// and tagging. One Builder serves one invocation.
type Builder struct {
	engine    Engine
	assets    Assets
	baseImage string
	phase     Phase
}

// Option configures a Builder.
type Option func(*Builder)

// WithAssetsDir overrides the directory the build inputs are read from.
func WithAssetsDir(dir string) Option {
	return func(b *Builder) {
		if dir != "" {
			b.assets = Assets{Dir: dir}
		}
	}
}

// WithBaseImage overrides the base image recorded in the image labels.
func WithBaseImage(ref string) Option {
	return func(b *Builder) {
		if ref != "" {
			b.baseImage = ref
		}
	}
}

// NewBuilder returns a Builder in the idle phase.
func NewBuilder(eng Engine, opts ...Option) *Builder {
	b := &Builder{
		engine:    eng,
		assets:    Assets{Dir: DefaultAssetsDir()},
		baseImage: defaults.BaseImage,
		phase:     PhaseIdle,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Phase returns the builder's current lifecycle phase.
func (b *Builder) Phase() Phase {
	return b.phase
}

// Build validates the request, stages the build context, runs the engine
// build, and applies the requested secondary tags. The first error is
// terminal; nothing is retried and the staged context is left in place.
func (b *Builder) Build(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()

	b.setPhase(PhaseValidating)
	// The CLI rejects reserved tags before the prerequisite checks run;
	// re-checking here keeps the builder safe for other callers.
	if err := req.Ref.ValidateTag(); err != nil {
		return nil, b.fail(err)
	}
	if err := req.Ref.Validate(); err != nil {
		return nil, b.fail(err)
	}

	ver := version.Parse(req.Ref.Tag)
	slog.Debug("release version",
		"major", ver.Major,
		"minor", ver.Minor,
		"patch", ver.Patch)

	st, err := b.stage(req.Ref.Tag)
	if err != nil {
		return nil, b.fail(err)
	}

	id := uuid.New().String()
	name := req.Ref.Name()

	b.setPhase(PhaseBuilding)
	err = b.engine.Build(ctx, engine.BuildOptions{
		ContextDir: st.dir,
		Dockerfile: st.dockerfile,
		Tags:       []string{name},
		Labels:     b.labels(req.Ref),
		NoCache:    req.NoCache,
	})
	if err != nil {
		return nil, b.fail(err)
	}

	tags := []string{name}
	secondary := make([]string, 0, 2)
	if req.Latest {
		secondary = append(secondary, oci.TagLatest)
	}
	if req.Edge {
		secondary = append(secondary, oci.TagEdge)
	}
	if len(secondary) > 0 {
		b.setPhase(PhaseTagging)
		for _, tag := range secondary {
			target := req.Ref.WithTag(tag).Name()
			if err := b.engine.Tag(ctx, name, target); err != nil {
				return nil, b.fail(err)
			}
			tags = append(tags, target)
		}
	}

	b.setPhase(PhaseDone)

	titleCaser := cases.Title(language.English)
	return &Result{
		Name:       name,
		Display:    titleCaser.String(req.Ref.Image),
		Repository: req.Ref.Repository,
		Image:      req.Ref.Image,
		Version:    req.Ref.Tag,
		Checksum:   st.checksum,
		BaseImage:  b.baseImage,
		Tags:       tags,
		BuildID:    id,
		ContextDir: st.dir,
		Duration:   time.Since(start).Round(time.Millisecond).String(),
	}, nil
}

// labels returns the OCI annotation labels attached to the built image.
func (b *Builder) labels(ref oci.Reference) map[string]string {
	return map[string]string{
		ociv1.AnnotationCreated:       time.Now().UTC().Format(time.RFC3339),
		ociv1.AnnotationVersion:       ref.Tag,
		ociv1.AnnotationRefName:       ref.Name(),
		ociv1.AnnotationBaseImageName: b.baseImage,
	}
}

func (b *Builder) setPhase(p Phase) {
	slog.Debug("build phase", "from", string(b.phase), "to", string(p))
	b.phase = p
}

// fail marks the terminal failure phase and passes the error through.
func (b *Builder) fail(err error) error {
	b.setPhase(PhaseFailed)
	return err
}
