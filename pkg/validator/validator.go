/*
Copyright © 2026 pkgsnap authors
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"io"
	"log/slog"

	"github.com/pkgsnap/pkgsnap/pkg/serializer"
)

// Validate reports whether the artifact at path is a complete, readable
// snapshot under the declared format and compression. JSON artifacts must
// decode end to end; text artifacts must read (and decompress, when
// compressed) end to end. Every failure mode collapses to false, with the
// reason logged at debug level. Validate never returns an error and never
// panics.
func Validate(path string, format serializer.Format, compressed bool) bool {
	if format.IsUnknown() {
		slog.Debug("validation failed",
			slog.String("path", path),
			slog.String("reason", "unknown format "+string(format)),
		)
		return false
	}

	if format == serializer.FormatJSON {
		snap, err := serializer.Read(path, format, compressed)
		if err != nil {
			slog.Debug("validation failed",
				slog.String("path", path),
				slog.String("reason", err.Error()),
			)
			return false
		}
		slog.Debug("validated snapshot",
			slog.String("path", path),
			slog.String("id", snap.ID),
			slog.Int("packages", len(snap.Packages)),
		)
		return true
	}

	in, err := serializer.Open(path, compressed)
	if err != nil {
		slog.Debug("validation failed",
			slog.String("path", path),
			slog.String("reason", err.Error()),
		)
		return false
	}
	defer in.Close()

	if _, err := io.Copy(io.Discard, in); err != nil {
		slog.Debug("validation failed",
			slog.String("path", path),
			slog.String("reason", err.Error()),
		)
		return false
	}

	slog.Debug("validated snapshot", slog.String("path", path))
	return true
}
