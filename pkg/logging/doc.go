// Package logging provides structured logging utilities for the build tool.
//
// # Overview
//
// This package wraps the standard library slog package with tool-wide
// defaults and conventions. It supports environment-based log level
// configuration, module/version context injection, and automatic source
// location tracking for debug logs.
//
// # Features
//
//   - Structured JSON logging to stderr
//   - Environment-based log level configuration (LOG_LEVEL)
//   - Automatic module and version context
//   - Source location tracking for debug logs
//   - Flexible log level parsing
//   - Integration with standard library log package
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("mkimage", version)
//
//	    // Use slog as normal
//	    slog.Info("building image", "tag", "gorobot/traefik:3.2.8")
//	    slog.Debug("staging context", "dir", workDir)
//	    slog.Error("build failed", "error", err)
//	}
//
// Creating a custom logger:
//
//	logger := logging.NewStructuredLogger("mkimage", "v1.0.0", "debug")
//	logger.Info("engine detected", "version", "28.0.4")
//
// Setting explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("mkimage", "v1.0.0", "warn")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug mkimage --tag gorobot/traefik:3.2.8
//
// If LOG_LEVEL is not set, defaults to INFO level.
//
// # Output Format
//
// All logs are written to stderr in JSON format so that stdout stays free
// for the build summary and the engine's own output:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "build complete",
//	    "module": "mkimage",
//	    "version": "v1.0.0",
//	    "image": "gorobot/traefik:3.2.8"
//	}
//
// Debug logs additionally include the source location of the call site.
package logging
