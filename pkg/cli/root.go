/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/gorobot-library/traefik/pkg/defaults"
	"github.com/gorobot-library/traefik/pkg/logging"
	"github.com/gorobot-library/traefik/pkg/serializer"
)

const (
	name           = "mkimage"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// errHelpShown marks an invocation that only asked for usage. The usage text
// has already been printed, so Execute exits non-zero without an extra
// message.
var errHelpShown = errors.New("help shown")

// Execute runs the root command. This is called by main.main().
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM so an in-flight engine subprocess is
	// terminated together with the tool.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down gracefully...")
		cancel()
	}()

	if err := rootCmd().Run(ctx, os.Args); err != nil {
		if !errors.Is(err, errHelpShown) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// rootCmd assembles the single root command. Flags are constructed fresh on
// every call so repeated runs do not share parse state.
func rootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		EnableShellCompletion: true,
		Usage:                 "Build and tag the traefik base image",
		Description: fmt.Sprintf(`%s - traefik base image build tool

Version: %s
Commit:  %s
Built:   %s

Builds a traefik base image for the release version named by the --tag
reference: verifies the engine prerequisites (multi-stage build support and
a locally present base image), renders the Dockerfile template with the
release version and checksum, runs the engine build in a fresh context
directory, and optionally applies the latest and edge tags.

The "latest" and "edge" tags are never accepted through --tag; request them
with --latest and --edge on top of a versioned build.`, name, version, commit, date),
		// The framework help flag exits zero. A help request is a
		// non-build invocation for this tool, so it carries its own flag
		// and exits non-zero instead.
		HideHelp: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "tag",
				Aliases: []string{"t"},
				Usage:   "Image reference to build ([REPOSITORY/]IMAGE:TAG, the tag selects the traefik release)",
			},
			&cli.BoolFlag{
				Name:    "latest",
				Aliases: []string{"l"},
				Usage:   "Additionally tag the built image as latest",
			},
			&cli.BoolFlag{
				Name:    "edge",
				Aliases: []string{"e"},
				Usage:   "Additionally tag the built image as edge",
			},
			&cli.StringFlag{
				Name:    "base-image",
				Usage:   "Base image the final build stage starts from (must be present locally)",
				Sources: cli.EnvVars("BASE_IMAGE"),
				Value:   defaults.BaseImage,
			},
			&cli.StringFlag{
				Name:  "assets",
				Usage: "Directory holding the Dockerfile template, checksum manifest, and entrypoint script",
			},
			&cli.BoolFlag{
				Name:  "no-cache",
				Usage: "Disable the engine layer cache for the build",
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "Print the engine build and tag commands instead of executing them",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Write the build summary to this file instead of stdout",
			},
			&cli.StringFlag{
				Name: "format",
				Usage: fmt.Sprintf("Build summary format (supported values: %v)",
					serializer.SupportedFormats()),
				Value: string(serializer.FormatTable),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Sources: cli.EnvVars(logging.LevelEnvVar),
				Value:   "info",
			},
			&cli.BoolFlag{
				Name:    "help",
				Aliases: []string{"h"},
				Usage:   "Show usage and exit non-zero",
			},
		},
		Action: runBuild,
	}
}
