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

package engine

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/gorobot-library/traefik/pkg/defaults"
	apperrors "github.com/gorobot-library/traefik/pkg/errors"
	"github.com/gorobot-library/traefik/pkg/version"
)

// DefaultBinary is the engine binary resolved through PATH when no explicit
// path is configured.
const DefaultBinary = "docker"

// Multi-stage Dockerfiles require Docker 17.05 or later.
const (
	minEngineMajor = 17
	minEngineMinor = 5
)

// ExecCommandFunc creates the subprocess for an engine invocation. It exists
// as an injection seam so tests can substitute a recording process factory.
type ExecCommandFunc func(ctx context.Context, name string, arg ...string) *exec.Cmd

// Client runs engine operations by shelling out to the docker binary.
// It holds no per-build state and can be reused across operations.
type Client struct {
	binary      string
	execCommand ExecCommandFunc
	stdout      io.Writer
	stderr      io.Writer
	dryRun      bool
}

// Option configures a Client.
type Option func(*Client)

// WithBinaryPath sets an explicit engine binary path, skipping PATH lookup.
func WithBinaryPath(path string) Option {
	return func(c *Client) {
		c.binary = path
	}
}

// WithExecCommand overrides the subprocess factory.
func WithExecCommand(f ExecCommandFunc) Option {
	return func(c *Client) {
		c.execCommand = f
	}
}

// WithDryRun makes the state-changing operations, Build and Tag, print the
// command they would run instead of executing it. Read-only probes still
// execute so prerequisite checks stay meaningful in dry-run mode.
func WithDryRun(dryRun bool) Option {
	return func(c *Client) {
		c.dryRun = dryRun
	}
}

// WithOutput redirects the engine's streamed output and the dry-run command
// echo. Defaults to the process stdout and stderr.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(c *Client) {
		c.stdout = stdout
		c.stderr = stderr
	}
}

// NewClient resolves the engine binary and returns a ready client.
// Returns ErrCodeEngineNotFound when the binary is not on PATH.
func NewClient(opts ...Option) (*Client, error) {
	c := &Client{
		execCommand: exec.CommandContext,
		stdout:      os.Stdout,
		stderr:      os.Stderr,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.binary == "" {
		path, err := exec.LookPath(DefaultBinary)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeEngineNotFound,
				fmt.Sprintf("%s binary not found, install Docker or add it to PATH", DefaultBinary), err)
		}
		c.binary = path
	}

	return c, nil
}

// Binary returns the resolved engine binary path.
func (c *Client) Binary() string {
	return c.binary
}

// Version reports the engine server version. The probe asks the daemon
// rather than the client binary, so a daemon that is not running surfaces
// here instead of failing later in the build.
func (c *Client) Version(ctx context.Context) (version.Version, error) {
	ctx, cancel := context.WithTimeout(ctx, defaults.EngineProbeTimeout)
	defer cancel()

	out, err := c.output(ctx, "version", "--format", "{{.Server.Version}}")
	if err != nil {
		return version.Version{}, apperrors.Wrap(apperrors.ErrCodeEngineNotFound,
			"engine version probe failed, is the Docker daemon running", err)
	}

	raw := strings.TrimSpace(string(out))
	slog.Debug("engine version probed", "version", raw)
	return version.Parse(raw), nil
}

// ImageExists reports whether ref is present in the local image store. The
// probe shells out to image inspect and reads only the exit status, which is
// how the engine itself distinguishes present from absent.
func (c *Client) ImageExists(ctx context.Context, ref string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaults.EngineProbeTimeout)
	defer cancel()

	err := c.run(ctx, "image", "inspect", ref)
	return err == nil, nil
}

// SupportsMultiStage reports whether the engine version can run a
// multi-stage Dockerfile. Versions whose major or minor component does not
// read as an integer are treated as unsupported.
func SupportsMultiStage(v version.Version) bool {
	major, err := v.MajorInt()
	if err != nil {
		return false
	}
	if major != minEngineMajor {
		return major > minEngineMajor
	}
	minor, err := v.MinorInt()
	if err != nil {
		return false
	}
	return minor >= minEngineMinor
}

// run executes an engine subcommand, discarding output. Only the exit
// status is reported.
func (c *Client) run(ctx context.Context, args ...string) error {
	return c.execCommand(ctx, c.binary, args...).Run()
}

// output executes an engine subcommand and captures its stdout. Stderr is
// collected into the returned *exec.ExitError on failure.
func (c *Client) output(ctx context.Context, args ...string) ([]byte, error) {
	return c.execCommand(ctx, c.binary, args...).Output()
}
