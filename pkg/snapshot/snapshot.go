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

package snapshot

import (
	"sort"
	"strings"

	"github.com/pkgsnap/pkgsnap/pkg/manager"
	"github.com/pkgsnap/pkgsnap/pkg/sysinfo"
)

// TimestampLayout is the fixed snapshot timestamp format. The same string
// stamps default output filenames; text rendering swaps the underscore for a
// space.
const TimestampLayout = "2006-01-02_15-04-05"

// PackageRecord is one installed package. The listing pass sets name and
// version; description and dependencies appear only after detail enrichment.
type PackageRecord struct {
	Name         string   `json:"name"`
	Version      string   `json:"version"`
	Description  string   `json:"description,omitempty"`
	Dependencies []string `json:"dependencies,omitempty"`
}

// Snapshot is the complete, immutable inventory record produced by one run.
// Package names are unique by construction (name-keyed map); persisted
// renderings sort by name regardless of map iteration order.
type Snapshot struct {
	ID        string                    `json:"id"`
	Timestamp string                    `json:"timestamp"`
	Manager   manager.Kind              `json:"package_manager"`
	Metadata  sysinfo.SystemMetadata    `json:"metadata"`
	Packages  map[string]*PackageRecord `json:"packages"`
}

// SortedNames returns the package names in lexicographic order.
func (s *Snapshot) SortedNames() []string {
	names := make([]string, 0, len(s.Packages))
	for name := range s.Packages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DisplayTimestamp returns the human-readable timestamp used in text output.
func (s *Snapshot) DisplayTimestamp() string {
	return strings.ReplaceAll(s.Timestamp, "_", " ")
}
