// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeBuildFailed,
//	    "docker build exited with an error",
//	    cause,
//	    map[string]interface{}{
//	        "image":   buildName,
//	        "context": workDir,
//	    },
//	)
package errors
