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

// Package serializer renders snapshots to disk and reads them back.
//
// # Overview
//
// The serializer package handles conversion between the snapshot data
// structure and its persisted artifacts. It supports two renderings, an
// orthogonal gzip layer, automatic format detection from file extensions,
// and an atomic write discipline.
//
// # Supported Formats
//
// JSON:
//   - Machine-parseable, round-trippable representation
//   - One nested object: id, timestamp, package_manager, metadata, packages
//   - Standard encoding/json package, two-space indent
//
// Text:
//   - Human-readable report: host metadata block, timestamp and manager
//     lines, then one block per package in name order
//   - Write-only (no deserialization support)
//
// Either rendering may be gzip-compressed; format and compression are fully
// independent, so .txt, .txt.gz, .json, and .json.gz are all valid artifacts.
//
// # Write Discipline
//
// Write renders to <path>.tmp and renames it into place only after the full
// render and close succeed. A reader polling the destination never observes
// a partial file, and the temporary path never outlives the call:
//
//	err := serializer.Write("packages_2026-08-26_14-03-22.json", snap,
//		serializer.FormatJSON, false)
//
// Preview produces the same bytes in memory without touching the filesystem:
//
//	report, err := serializer.Preview(snap, serializer.FormatText, true)
//
// # Reading
//
// Read re-opens an artifact through the declared pipeline and decodes the
// JSON payload:
//
//	snap, err := serializer.Read("packages.json.gz", serializer.FormatJSON, true)
package serializer
