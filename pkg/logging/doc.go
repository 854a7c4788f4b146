// Package logging provides structured logging utilities for the graphle recipe tooling.
//
// # Overview
//
// This package wraps the standard library slog package with project defaults
// and conventions for consistent logging across all components. It supports
// environment-based log level configuration, module/version context injection,
// and automatic source location tracking for debug logs.
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
//	    logging.SetDefaultStructuredLogger("graphle-recipe", "v1.0.0")
//	    // Use slog as normal
//	    slog.Info("lifecycle started", "run_id", runID)
//	    slog.Debug("copy", "src", src, "dst", dst)
//	    slog.Error("operation failed", "error", err)
//	}
//
// Creating a custom logger:
//
//	logger := logging.NewStructuredLogger("graphle-recipe", "v1.0.0", "debug")
//	logger.Info("configuring native build", "build_type", "Release")
//
// Setting explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("graphle-recipe", "v1.0.0", "warn")
//
// Converting standard library logger:
//
//	stdLogger := logging.NewLogLogger(slog.LevelInfo, false)
//	stdLogger.Println("legacy log message")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug graphle-recipe create -o build_tests=True
//	LOG_LEVEL=error graphle-recipe package-id
//
// If LOG_LEVEL is not set, defaults to INFO level.
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "package created",
//	    "module": "graphle-recipe",
//	    "version": "v1.0.0",
//	    "files": 31
//	}
//
// Debug logs include source location:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "DEBUG",
//	    "source": {
//	        "function": "lifecycle.(*Runner).Run",
//	        "file": "runner.go",
//	        "line": 97
//	    },
//	    "msg": "state transition",
//	    "module": "graphle-recipe",
//	    "version": "v1.0.0"
//	}
//
// # Best Practices
//
// 1. Set default logger early in main():
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("graphle-recipe", version)
//	    // ...
//	}
//
// 2. Include context in log messages:
//
//	slog.Info("phase completed",
//	    "phase", "package",
//	    "run_id", runID,
//	    "duration_ms", 125,
//	)
//
// 3. Use appropriate log levels:
//
//	slog.Debug("copy", "src", src)       // Development/troubleshooting
//	slog.Info("package created")         // Normal operations
//	slog.Warn("no files matched")        // Potential issues
//	slog.Error("native build failed")    // Errors requiring action
//
// 4. Log errors with context:
//
//	slog.Error("lifecycle failed",
//	    "error", err,
//	    "run_id", runID,
//	    "state", state,
//	)
//
// # Integration
//
// This package is used by:
//   - pkg/cli - CLI command logging
//   - pkg/lifecycle - Phase and state transition logging
//   - pkg/native - Native build command logging
//   - pkg/artifact - File copy logging
//
// All components share consistent logging format and configuration.
package logging
