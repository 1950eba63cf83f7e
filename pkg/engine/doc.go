// Package engine is the client for the local container engine.
//
// # Overview
//
// The package wraps the docker binary behind a small Client: version and
// image probes for prerequisite checks, Build for the multi-stage image
// build, and Tag for the secondary release tags. All operations shell out
// through an injectable ExecCommandFunc, so tests run against a recording
// process factory instead of a real engine.
//
// Probes run with short deadlines from pkg/defaults; the build itself runs
// without one, since a build that fetches release artifacts can take
// minutes. In dry-run mode Build and Tag print the exact command line they
// would execute while the read-only probes still run, keeping prerequisite
// checks meaningful.
//
// # Usage
//
//	client, err := engine.NewClient()
//	if err != nil {
//	    return err // docker binary not found
//	}
//
//	v, err := client.Version(ctx)
//	if err != nil {
//	    return err
//	}
//	if !engine.SupportsMultiStage(v) {
//	    return fmt.Errorf("engine %s too old", v)
//	}
//
//	err = client.Build(ctx, engine.BuildOptions{
//	    ContextDir: workdir,
//	    Tags:       []string{"gorobot/traefik:3.2.8"},
//	})
package engine
