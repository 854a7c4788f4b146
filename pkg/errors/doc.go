// Package errors provides structured error types for local failures of the
// recipe tooling: bad option overrides, unreadable profiles, packaging I/O.
//
// Failures raised by the native build system are never converted into a
// StructuredError; they travel back to the caller as the original value.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeInternal,
//	    "failed to copy packaged file",
//	    cause,
//	    map[string]any{
//	        "src": src,
//	        "dst": dst,
//	    },
//	)
package errors
