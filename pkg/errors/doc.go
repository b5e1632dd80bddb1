// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeExternalCommand,
//	    "failed to list installed packages",
//	    cmdErr,
//	    map[string]interface{}{
//	        "command": "dpkg-query",
//	        "manager": "apt",
//	    },
//	)
package errors
