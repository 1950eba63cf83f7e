// Package builder materializes build contexts and drives the engine.
//
// # Overview
//
// The Builder turns a validated image reference into tagged images. It
// resolves the release checksum from the manifest, renders the Dockerfile
// template into a fresh working directory together with the entrypoint
// script, hands that directory to the engine as the build context, and
// applies the requested secondary tags to the result.
//
// The lifecycle is strictly forward: idle, validating, building, then
// tagging when secondary tags were requested, ending in done or failed.
// Failures are terminal; nothing is retried, and a staged context is left
// on disk for inspection.
//
// # Usage
//
//	b := builder.NewBuilder(client,
//	    builder.WithAssetsDir("assets"),
//	    builder.WithBaseImage(defaults.BaseImage),
//	)
//
//	res, err := b.Build(ctx, builder.Request{
//	    Ref:    oci.ParseReference("gorobot/traefik:3.2.8"),
//	    Latest: true,
//	})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Tags) // [gorobot/traefik:3.2.8 gorobot/traefik:latest]
package builder
