// Package cli implements the command-line interface for the pkgsnap tool.
//
// # Overview
//
// The pkgsnap CLI captures what is installed on a Linux host through its
// native package manager and persists the inventory as a reproducible
// snapshot artifact. It is designed for host auditing, drift comparison, and
// pre/post-change recordkeeping.
//
// # Commands
//
// snapshot - Capture a package inventory snapshot:
//
//	pkgsnap snapshot [--json] [--compress] [--detailed] [--test] [output-file]
//
// Detects the host package manager (apt, yum, or pacman), enumerates every
// installed package with its version, optionally fetches per-package
// descriptions and dependencies, and writes the result atomically. The
// default filename stamps the snapshot timestamp:
// packages_<YYYY-MM-DD_HH-MM-SS>.<ext>.
//
// validate - Verify a snapshot artifact:
//
//	pkgsnap validate [--json] [--compress] <path>
//
// Re-opens an artifact through its declared pipeline and reports whether it
// is complete and readable. The format and compression are inferred from the
// file extension unless overridden.
//
// # Global Flags
//
//	--log-level    Set logging verbosity (debug, info, warn, error)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Output Formats
//
// Text (default):
//   - Human-readable report: host metadata, timestamp, one block per package
//   - Write-only; cannot be read back programmatically
//
// JSON:
//   - Machine-parseable, round-trippable
//   - Suitable for diffing and programmatic consumption
//
// Either format may be gzip-compressed with --compress.
//
// # Usage Examples
//
// Capture the default text report:
//
//	pkgsnap snapshot
//
// Compressed JSON with per-package details:
//
//	pkgsnap snapshot --json --compress --detailed
//
// Dry run without writing anything:
//
//	pkgsnap snapshot --test
//
// Verify an artifact:
//
//	pkgsnap validate packages_2026-08-26_14-03-22.json.gz
//
// # Environment Variables
//
//	LOG_LEVEL        Set logging verbosity (debug, info, warn, error)
//	PKGSNAP_CONFIG   Path to the YAML config file
//	PKGSNAP_MANAGER  Force a package manager backend
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, execution failure, invalid artifact)
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized packages:
//   - pkg/manager - Package manager detection, listing, detail fetches
//   - pkg/sysinfo - Host metadata collection
//   - pkg/snapshot - Snapshot assembly
//   - pkg/serializer - Rendering and atomic persistence
//   - pkg/validator - Artifact verification
//   - pkg/logging - Structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/pkgsnap/pkgsnap/pkg/cli.version=1.0.0'"
package cli
