// Copyright (c) 2026, pkgsnap authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package serializer

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pkgsnap/pkgsnap/pkg/errors"
	"github.com/pkgsnap/pkgsnap/pkg/snapshot"
)

// Write persists the snapshot to path in the given format, gzip-compressed
// when requested. The rendering goes to path+".tmp" first and is renamed into
// place only after the full write and close succeed, so the destination never
// observes a partial file. On any failure the temporary artifact is removed
// and a WRITE_FAILED error returned; the temporary path never survives Write
// returning.
func Write(path string, snap *snapshot.Snapshot, format Format, compressed bool) error {
	if snap == nil {
		return errors.New(errors.ErrCodeWriteFailed, "cannot write a nil snapshot")
	}
	if format.IsUnknown() {
		return errors.New(
			errors.ErrCodeWriteFailed,
			fmt.Sprintf("unsupported format: %s", format),
		)
	}

	tmp := path + ".tmp"
	if err := writeFile(tmp, snap, format, compressed); err != nil {
		removeTemp(tmp)
		return errors.WrapWithContext(
			errors.ErrCodeWriteFailed,
			fmt.Sprintf("failed to write snapshot to %s", path),
			err,
			map[string]any{"path": path, "format": string(format)},
		)
	}

	if err := os.Rename(tmp, path); err != nil {
		removeTemp(tmp)
		return errors.WrapWithContext(
			errors.ErrCodeWriteFailed,
			fmt.Sprintf("failed to move snapshot into place at %s", path),
			err,
			map[string]any{"path": path},
		)
	}

	slog.Info("wrote snapshot",
		slog.String("path", path),
		slog.String("format", string(format)),
		slog.Bool("compressed", compressed),
		slog.Int("packages", len(snap.Packages)),
	)
	return nil
}

// Preview renders the snapshot to memory exactly as Write would render it
// (before compression), mutating nothing on the filesystem.
func Preview(snap *snapshot.Snapshot, format Format, detailed bool) (string, error) {
	if format.IsUnknown() {
		return "", fmt.Errorf("unsupported format: %s", format)
	}

	var buf bytes.Buffer
	if err := render(&buf, snap, format, detailed); err != nil {
		return "", fmt.Errorf("failed to render preview: %w", err)
	}
	return buf.String(), nil
}

func writeFile(path string, snap *snapshot.Snapshot, format Format, compressed bool) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	var out io.Writer = file
	var gz *gzip.Writer
	if compressed {
		gz = gzip.NewWriter(file)
		out = gz
	}

	err = render(out, snap, format, true)
	if gz != nil {
		if closeErr := gz.Close(); err == nil {
			err = closeErr
		}
	}
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	return err
}

// render writes one uncompressed rendering of the snapshot. The detailed
// switch matters only for text: JSON carries detail fields through omitempty.
func render(out io.Writer, snap *snapshot.Snapshot, format Format, detailed bool) error {
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(snap); err != nil {
			return fmt.Errorf("failed to serialize to JSON: %w", err)
		}
		return nil
	case FormatText:
		if _, err := io.WriteString(out, renderText(snap, detailed)); err != nil {
			return fmt.Errorf("failed to write text rendering: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func removeTemp(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to remove temporary file",
			slog.String("path", path),
			slog.String("error", err.Error()),
		)
	}
}
