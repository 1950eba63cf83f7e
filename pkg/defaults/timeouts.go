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

package defaults

import "time"

// Engine timeouts for container engine subprocess calls.
// The build itself runs without a deadline; network fetches inside a build
// can legitimately take minutes, and cancellation arrives through signals.
const (
	// EngineProbeTimeout is the timeout for short engine queries such as
	// the version probe and image inspection.
	EngineProbeTimeout = 10 * time.Second

	// EngineTagTimeout is the timeout for applying a secondary tag to a
	// built image.
	EngineTagTimeout = 30 * time.Second
)

// Prerequisite timeouts for the pre-build environment checks.
const (
	// PrereqCheckTimeout bounds the whole prerequisite pass: the engine
	// version probe plus the base image inspection. Must leave room for
	// two EngineProbeTimeout calls.
	PrereqCheckTimeout = 30 * time.Second
)
