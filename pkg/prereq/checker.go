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

package prereq

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gorobot-library/traefik/pkg/defaults"
	"github.com/gorobot-library/traefik/pkg/engine"
	apperrors "github.com/gorobot-library/traefik/pkg/errors"
	"github.com/gorobot-library/traefik/pkg/version"
)

// Engine is the probe surface of the container engine client the checker
// needs.
type Engine interface {
	Version(ctx context.Context) (version.Version, error)
	ImageExists(ctx context.Context, ref string) (bool, error)
}

// Checker verifies the build environment before any build work starts.
type Checker struct {
	// Engine answers the version and image probes.
	Engine Engine
	// BaseImage is the image reference the final build stage starts from.
	// It must already be present in the local image store.
	BaseImage string
}

// Check runs the prerequisite pass: the engine must support multi-stage
// builds and the base image must be present locally. Checks run in that
// order and the first failure aborts the pass. The whole pass is bounded by
// defaults.PrereqCheckTimeout.
func (c *Checker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, defaults.PrereqCheckTimeout)
	defer cancel()

	v, err := c.Engine.Version(ctx)
	if err != nil {
		return err
	}
	if !engine.SupportsMultiStage(v) {
		return apperrors.NewWithContext(apperrors.ErrCodeEngineUnsupported,
			fmt.Sprintf("engine version %s lacks multi-stage build support, upgrade Docker to 17.05 or later", v),
			map[string]any{"version": v.String()})
	}
	slog.Debug("engine supports multi-stage builds", "version", v.String())

	exists, err := c.Engine.ImageExists(ctx, c.BaseImage)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NewWithContext(apperrors.ErrCodeImageNotFound,
			fmt.Sprintf("base image %s not found locally, docker pull it before building", c.BaseImage),
			map[string]any{"image": c.BaseImage})
	}
	slog.Debug("base image present", "image", c.BaseImage)

	return nil
}
