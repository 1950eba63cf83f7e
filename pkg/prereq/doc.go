// Package prereq verifies build prerequisites against the local engine.
//
// # Overview
//
// Two conditions must hold before a build is attempted: the engine must be
// recent enough to run multi-stage Dockerfiles (Docker 17.05 or later), and
// the base image the final stage starts from must already be in the local
// image store. The Checker probes both through the engine client and fails
// fast with an actionable error, so a missing prerequisite never surfaces as
// a confusing mid-build failure.
//
// # Usage
//
//	checker := &prereq.Checker{
//	    Engine:    client,
//	    BaseImage: defaults.BaseImage,
//	}
//	if err := checker.Check(ctx); err != nil {
//	    return err
//	}
package prereq
