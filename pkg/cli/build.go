/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/gorobot-library/traefik/pkg/builder"
	"github.com/gorobot-library/traefik/pkg/engine"
	"github.com/gorobot-library/traefik/pkg/logging"
	"github.com/gorobot-library/traefik/pkg/oci"
	"github.com/gorobot-library/traefik/pkg/prereq"
	"github.com/gorobot-library/traefik/pkg/serializer"
)

// buildCmdOptions holds parsed options for the build invocation.
type buildCmdOptions struct {
	ref       oci.Reference
	latest    bool
	edge      bool
	baseImage string
	assetsDir string
	noCache   bool
	dryRun    bool
	output    string
	format    serializer.Format
}

// engineClient is the engine surface the command needs, satisfied by
// *engine.Client and by test fakes.
type engineClient interface {
	prereq.Engine
	builder.Engine
}

// newEngineClient builds the engine client for the invocation. Tests replace
// it to run against a recorded engine.
var newEngineClient = func(opts *buildCmdOptions) (engineClient, error) {
	return engine.NewClient(engine.WithDryRun(opts.dryRun))
}

// parseBuildCmdOptions parses and validates the invocation flags.
func parseBuildCmdOptions(cmd *cli.Command) (*buildCmdOptions, error) {
	opts := &buildCmdOptions{
		latest:    cmd.Bool("latest"),
		edge:      cmd.Bool("edge"),
		baseImage: cmd.String("base-image"),
		assetsDir: cmd.String("assets"),
		noCache:   cmd.Bool("no-cache"),
		dryRun:    cmd.Bool("dry-run"),
		output:    cmd.String("output"),
	}

	tag := cmd.String("tag")
	if tag == "" {
		return nil, fmt.Errorf("required flag --tag is missing, specify the image to build as [REPOSITORY/]IMAGE:TAG")
	}

	opts.ref = oci.ParseReference(tag)
	if err := opts.ref.ValidateTag(); err != nil {
		return nil, err
	}
	if err := opts.ref.Validate(); err != nil {
		return nil, err
	}

	var err error
	opts.format, err = parseOutputFormat(cmd)
	if err != nil {
		return nil, err
	}

	return opts, nil
}

// parseOutputFormat resolves the summary format: --format when set
// explicitly, otherwise derived from the --output file extension.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	if !cmd.IsSet("format") {
		if out := cmd.String("output"); out != "" {
			return serializer.FormatFromPath(out), nil
		}
	}

	outFormat := serializer.Format(cmd.String("format"))
	if outFormat.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q (supported values: %v)",
			outFormat, serializer.SupportedFormats())
	}
	return outFormat, nil
}

// runBuild is the root action: it validates the reference, wires the
// engine, runs the prerequisite checks, executes the build, and writes the
// summary.
func runBuild(ctx context.Context, cmd *cli.Command) error {
	if cmd.Bool("help") {
		if err := cli.ShowAppHelp(cmd); err != nil {
			return err
		}
		return errHelpShown
	}

	logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date)

	// Reference validation runs before the engine is even resolved, so a
	// reserved or malformed tag aborts without touching the engine.
	opts, err := parseBuildCmdOptions(cmd)
	if err != nil {
		return err
	}

	client, err := newEngineClient(opts)
	if err != nil {
		return err
	}

	checker := &prereq.Checker{Engine: client, BaseImage: opts.baseImage}
	if err := checker.Check(ctx); err != nil {
		return err
	}

	b := builder.NewBuilder(client,
		builder.WithAssetsDir(opts.assetsDir),
		builder.WithBaseImage(opts.baseImage))

	res, err := b.Build(ctx, builder.Request{
		Ref:     opts.ref,
		Latest:  opts.latest,
		Edge:    opts.edge,
		NoCache: opts.noCache,
	})
	if err != nil {
		return err
	}

	slog.Info("build complete",
		"name", res.Name,
		"tags", res.Tags,
		"duration", res.Duration)

	ser := serializer.NewFileWriterOrStdout(opts.format, opts.output)
	defer func() {
		if closer, ok := ser.(interface{ Close() error }); ok {
			if err := closer.Close(); err != nil {
				slog.Warn("failed to close serializer", "error", err)
			}
		}
	}()

	return ser.Serialize(ctx, res)
}
