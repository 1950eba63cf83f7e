// Package oci provides image reference handling for the build workflow.
//
// # Overview
//
// The package parses user-supplied image references of the form
// [REPOSITORY/]IMAGE[:TAG] into their components, reassembles canonical
// names for the engine, and guards the tags the tool manages itself
// ("latest" and "edge").
//
// Parsing is deliberately positional and never fails; the split components
// feed the version parser and the build summary as-is. Validation is a
// separate step backed by github.com/distribution/reference, so a reference
// the engine would reject is caught before any build is attempted.
//
// # Usage
//
//	ref := oci.ParseReference("gorobot/traefik:3.2.8")
//	if err := ref.ValidateTag(); err != nil {
//	    return err // "latest"/"edge" must come from the flags
//	}
//	if err := ref.Validate(); err != nil {
//	    return err
//	}
//	latest := ref.WithTag(oci.TagLatest)
package oci
