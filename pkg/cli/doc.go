// Package cli implements the command-line interface for the mkimage tool.
//
// # Overview
//
// mkimage builds and tags a traefik base image for a given release version.
// It verifies that the local container engine supports multi-stage builds
// and that the required base image is present, renders the Dockerfile
// template with the release version and its checksum, runs the engine build
// in a fresh context directory, and optionally applies the "latest" and
// "edge" tags to the result.
//
// # Usage
//
//	mkimage --tag REPOSITORY/IMAGE:TAG [--latest] [--edge]
//
// The tag part of the reference selects the traefik release to build; it
// must match a line in the checksum manifest. The literal tags "latest" and
// "edge" are reserved and rejected on --tag; request them through their
// dedicated flags instead.
//
// # Flags
//
//	--tag, -t      Image reference to build ([REPOSITORY/]IMAGE:TAG)
//	--latest, -l   Additionally tag the built image as latest
//	--edge, -e     Additionally tag the built image as edge
//	--base-image   Base image for the final build stage (env: BASE_IMAGE)
//	--assets       Directory with the build assets (template, manifest, entrypoint)
//	--no-cache     Disable the engine layer cache
//	--dry-run      Print the engine commands instead of executing them
//	--output, -o   Write the build summary to this file (default: stdout)
//	--format       Build summary format: json, yaml, table (default: table)
//	--log-level    Log level (env: LOG_LEVEL)
//	--help, -h     Show usage and exit non-zero
//
// # Usage Examples
//
// Build a release and mark it latest:
//
//	mkimage --tag gorobot/traefik:3.2.8 --latest
//
// Inspect the engine commands a build would run:
//
//	mkimage --tag gorobot/traefik:3.2.8 --latest --edge --dry-run
//
// Write the summary as JSON for another tool:
//
//	mkimage --tag gorobot/traefik:3.2.8 --output summary.json
//
// # Environment Variables
//
//	BASE_IMAGE  Override the required base image reference
//	LOG_LEVEL   Set logging verbosity (debug, info, warn, error)
//
// # Exit Codes
//
//	0  Success
//	1  Any failure: invalid reference, missing prerequisite, template or
//	   checksum mismatch, engine build failure. Help also exits 1, since a
//	   help invocation builds nothing.
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized
// packages:
//   - pkg/oci - Reference parsing and validation
//   - pkg/prereq - Engine and base image prerequisite checks
//   - pkg/builder - Context staging, build, and tagging
//   - pkg/engine - Container engine subprocess client
//   - pkg/serializer - Summary formatting
//   - pkg/logging - Structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/gorobot-library/traefik/pkg/cli.version=1.0.0'"
package cli
