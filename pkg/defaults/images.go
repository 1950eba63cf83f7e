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

// Image and asset defaults for the build workflow.
const (
	// BaseImage is the image the final build stage starts from. It must be
	// present in the local image store before a build runs. Overridden by
	// the BASE_IMAGE environment variable or the --base-image flag.
	BaseImage = "gorobot/alpine:3.6"

	// AssetsDir is the name of the build assets directory holding the
	// Dockerfile template, the checksum manifest, and the entrypoint
	// script. Resolved next to the executable first, then relative to the
	// working directory.
	AssetsDir = "assets"
)
