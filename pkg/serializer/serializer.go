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
	"fmt"
	"log/slog"
	"strings"
)

// Format represents the output format type
type Format string

const (
	// FormatText outputs the snapshot as a human-readable report
	FormatText Format = "text"
	// FormatJSON outputs the snapshot as one structured JSON object
	FormatJSON Format = "json"
)

func (f Format) IsUnknown() bool {
	switch f {
	case FormatText, FormatJSON:
		return false
	default:
		return true
	}
}

// Extension returns the file extension the format writes under.
func (f Format) Extension() string {
	if f == FormatJSON {
		return ".json"
	}
	return ".txt"
}

// SupportedFormats returns a list of all supported output formats
// for serialization.
func SupportedFormats() []string {
	return []string{
		string(FormatText),
		string(FormatJSON),
	}
}

// FormatFromPath determines the serialization format based on file extension.
// A trailing .gz is stripped before matching, so compressed artifacts resolve
// to the format of the payload underneath. Supported extensions:
//   - .json → FormatJSON
//   - .txt, .text → FormatText
//
// Returns FormatText as default for unknown extensions.
// Extension matching is case-insensitive.
func FormatFromPath(filePath string) Format {
	lowerPath := strings.TrimSuffix(strings.ToLower(filePath), ".gz")
	switch {
	case strings.HasSuffix(lowerPath, ".json"):
		return FormatJSON
	case strings.HasSuffix(lowerPath, ".txt"), strings.HasSuffix(lowerPath, ".text"):
		return FormatText
	default:
		slog.Warn("unknown file extension, defaulting to text", "filePath", filePath)
		return FormatText
	}
}

// CompressedFromPath reports whether the path names a gzip artifact.
func CompressedFromPath(filePath string) bool {
	return strings.HasSuffix(strings.ToLower(filePath), ".gz")
}

// DefaultFilename builds the output filename used when the caller supplies
// none: packages_<timestamp> plus the format extension, plus .gz when
// compressed.
func DefaultFilename(timestamp string, format Format, compressed bool) string {
	name := fmt.Sprintf("packages_%s%s", timestamp, format.Extension())
	if compressed {
		name += ".gz"
	}
	return name
}
