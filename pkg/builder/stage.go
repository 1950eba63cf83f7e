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
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"text/template"

	"github.com/gorobot-library/traefik/pkg/checksum"
	"github.com/gorobot-library/traefik/pkg/defaults"
	apperrors "github.com/gorobot-library/traefik/pkg/errors"
)

// Asset file names inside the assets directory.
const (
	// TemplateName is the Dockerfile template.
	TemplateName = "Dockerfile.tmpl"
	// EntrypointName is the entrypoint script copied into the context.
	EntrypointName = "docker-entrypoint.sh"
	// DockerfileName is the rendered Dockerfile inside the build context.
	DockerfileName = "Dockerfile"
)

// workdirPattern prefixes the per-invocation build context directory.
const workdirPattern = "mkimage-"

// Assets locates the build inputs shipped alongside the tool.
type Assets struct {
	// Dir is the assets directory.
	Dir string
}

// Template returns the Dockerfile template path.
func (a Assets) Template() string { return filepath.Join(a.Dir, TemplateName) }

// Manifest returns the checksum manifest path.
func (a Assets) Manifest() string { return filepath.Join(a.Dir, checksum.ManifestName) }

// Entrypoint returns the entrypoint script path.
func (a Assets) Entrypoint() string { return filepath.Join(a.Dir, EntrypointName) }

// DefaultAssetsDir resolves the default assets location: the assets
// directory next to the executable when present, otherwise one relative to
// the working directory.
func DefaultAssetsDir() string {
	if exe, err := os.Executable(); err == nil {
		dir := filepath.Join(filepath.Dir(exe), defaults.AssetsDir)
		if info, statErr := os.Stat(dir); statErr == nil && info.IsDir() {
			return dir
		}
	}
	return defaults.AssetsDir
}

// staging is a materialized build context.
type staging struct {
	dir        string
	dockerfile string
	checksum   string
}

// templateData is the substitution payload for the Dockerfile template.
type templateData struct {
	Version  string
	Checksum string
}

// stage creates a fresh working directory holding the rendered Dockerfile
// and the entrypoint script. The tool never removes the directory; the OS
// temp lifecycle reclaims it, and a failed staging stays behind for
// inspection.
func (b *Builder) stage(version string) (*staging, error) {
	digest, err := checksum.Lookup(b.assets.Manifest(), version)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.ParseFiles(b.assets.Template())
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeTemplate,
			fmt.Sprintf("parsing build template %s", b.assets.Template()), err)
	}
	tmpl = tmpl.Option("missingkey=error")

	dir, err := os.MkdirTemp("", workdirPattern)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal,
			"creating build context directory", err)
	}

	dockerfile := filepath.Join(dir, DockerfileName)
	f, err := os.Create(dockerfile)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal,
			"creating build descriptor", err)
	}
	if err := tmpl.Execute(f, templateData{Version: version, Checksum: digest}); err != nil {
		f.Close()
		return nil, apperrors.Wrap(apperrors.ErrCodeTemplate,
			fmt.Sprintf("rendering build template for version %s", version), err)
	}
	if err := f.Close(); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal,
			"writing build descriptor", err)
	}

	if err := copyExecutable(b.assets.Entrypoint(), filepath.Join(dir, EntrypointName)); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeTemplate,
			fmt.Sprintf("copying entrypoint script %s", b.assets.Entrypoint()), err)
	}

	slog.Debug("build context staged",
		"dir", dir, "version", version, "checksum", digest)

	return &staging{dir: dir, dockerfile: dockerfile, checksum: digest}, nil
}

// copyExecutable copies src to dst with the executable bit set, so the
// entrypoint works inside the image without a chmod layer.
func copyExecutable(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0o755)
}
