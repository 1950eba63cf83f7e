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
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"sort"
	"strings"

	"github.com/gorobot-library/traefik/pkg/defaults"
	apperrors "github.com/gorobot-library/traefik/pkg/errors"
)

// BuildOptions describes a single engine build invocation.
type BuildOptions struct {
	// ContextDir is the build context directory.
	ContextDir string
	// Dockerfile is the Dockerfile path. Empty means the engine default,
	// a file named Dockerfile inside the context.
	Dockerfile string
	// Tags name the resulting image, applied in order. At least one is
	// required.
	Tags []string
	// Labels are attached as image labels, emitted in sorted key order so
	// the assembled command line is deterministic.
	Labels map[string]string
	// NoCache disables the engine layer cache.
	NoCache bool
}

// Build runs the engine build without a deadline, streaming engine output to
// the client writers. Fetches inside a build can legitimately take minutes,
// so cancellation is left to the caller's context. In dry-run mode the
// assembled command line is printed instead.
func (c *Client) Build(ctx context.Context, opts BuildOptions) error {
	if len(opts.Tags) == 0 {
		return apperrors.New(apperrors.ErrCodeInternal, "build requires at least one tag")
	}

	args := buildArgs(opts)
	if c.dryRun {
		c.echoDryRun(args)
		return nil
	}

	slog.Info("building image", "tag", opts.Tags[0], "context", opts.ContextDir)

	cmd := c.execCommand(ctx, c.binary, args...)
	cmd.Stdout = c.stdout
	cmd.Stderr = c.stderr
	if err := cmd.Run(); err != nil {
		return commandError(ctx, "build", opts.Tags[0], err)
	}
	return nil
}

// Tag applies target as an additional name for source.
func (c *Client) Tag(ctx context.Context, source, target string) error {
	args := []string{"tag", source, target}
	if c.dryRun {
		c.echoDryRun(args)
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaults.EngineTagTimeout)
	defer cancel()

	slog.Info("tagging image", "source", source, "target", target)

	if err := c.run(ctx, args...); err != nil {
		return commandError(ctx, "tag", target, err)
	}
	return nil
}

// buildArgs assembles the argument vector for docker build.
func buildArgs(opts BuildOptions) []string {
	args := []string{"build"}
	if opts.Dockerfile != "" {
		args = append(args, "-f", opts.Dockerfile)
	}
	for _, tag := range opts.Tags {
		args = append(args, "-t", tag)
	}
	if opts.NoCache {
		args = append(args, "--no-cache")
	}
	keys := make([]string, 0, len(opts.Labels))
	for k := range opts.Labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		args = append(args, "--label", fmt.Sprintf("%s=%s", k, opts.Labels[k]))
	}
	return append(args, opts.ContextDir)
}

// commandError surfaces the subprocess exit status when one is available. A
// command killed because its deadline expired is reported as a timeout; the
// subprocess error alone cannot tell that apart from a crash.
func commandError(ctx context.Context, op, ref string, err error) error {
	msg := fmt.Sprintf("engine %s failed for %s", op, ref)
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return apperrors.Wrap(apperrors.ErrCodeTimeout, msg+", the operation timed out", err)
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return apperrors.WrapWithContext(apperrors.ErrCodeBuildFailed, msg, err,
			map[string]any{"exit_code": exitErr.ExitCode()})
	}
	return apperrors.Wrap(apperrors.ErrCodeBuildFailed, msg, err)
}

// echoDryRun writes the command line that would have run, quoted so the
// printed line can be pasted back into a shell.
func (c *Client) echoDryRun(args []string) {
	fmt.Fprintf(c.stdout, "[DRY RUN] %s %s\n", c.binary, shellQuoteArgs(args))
}

// shellQuoteArgs returns a printable, shell-safe representation of args.
func shellQuoteArgs(args []string) string {
	quoted := make([]string, len(args))
	for i, a := range args {
		if a == "" || strings.ContainsAny(a, " \t\n\"'`$\\*?[]{}()<>|&;") {
			a = "'" + strings.ReplaceAll(a, "'", `'\''`) + "'"
		}
		quoted[i] = a
	}
	return strings.Join(quoted, " ")
}
