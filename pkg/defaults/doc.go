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

// Package defaults provides centralized configuration constants for the build tool.
//
// This package defines timeout values and workflow defaults used across the
// codebase. Centralizing these values ensures consistency and makes tuning
// easier.
//
// # Timeout Categories
//
// Timeouts are organized by component:
//
//   - Engine timeouts: For container engine subprocess calls
//   - Prerequisite timeouts: For the pre-build environment checks
//
// The build subprocess itself deliberately carries no deadline.
//
// # Workflow Defaults
//
// BaseImage names the prerequisite image the final build stage starts from,
// and AssetsDir the directory holding the Dockerfile template, checksum
// manifest, and entrypoint script. Both are flag defaults, overridable per
// invocation.
//
// # Usage
//
// Import and use constants directly:
//
//	import "github.com/gorobot-library/traefik/pkg/defaults"
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.EngineProbeTimeout)
//	defer cancel()
package defaults
