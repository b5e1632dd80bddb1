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
	"strings"

	"github.com/pkgsnap/pkgsnap/pkg/snapshot"
	"github.com/pkgsnap/pkgsnap/pkg/sysinfo"
)

const detailIndent = "    "

// renderText produces the human-readable report: a metadata block, the
// timestamp and manager lines, then one block per package in lexicographic
// name order. Detail lines render only when detailed is set and the record
// carries them.
func renderText(snap *snapshot.Snapshot, detailed bool) string {
	var b strings.Builder

	writeMetadata(&b, snap.Metadata)
	b.WriteString("\n")
	fmt.Fprintf(&b, "Snapshot taken at: %s\n", snap.DisplayTimestamp())
	fmt.Fprintf(&b, "Package manager: %s\n", snap.Manager)
	b.WriteString("\n")

	for _, name := range snap.SortedNames() {
		rec := snap.Packages[name]
		fmt.Fprintf(&b, "%s (%s)\n", rec.Name, rec.Version)
		if !detailed {
			continue
		}
		if rec.Description != "" {
			fmt.Fprintf(&b, "%sDescription: %s\n", detailIndent, rec.Description)
		}
		if len(rec.Dependencies) > 0 {
			fmt.Fprintf(&b, "%sDepends: %s\n", detailIndent, strings.Join(rec.Dependencies, ", "))
		}
	}

	return b.String()
}

// writeMetadata renders the fixed-label host block. Unavailable facts carry
// the collector's placeholder and print as-is; only the distribution
// codename is elided when unknown.
func writeMetadata(b *strings.Builder, meta sysinfo.SystemMetadata) {
	fmt.Fprintf(b, "Hostname: %s\n", meta.Hostname)
	fmt.Fprintf(b, "OS: %s %s %s\n", meta.OS.Name, meta.OS.Release, meta.OS.Machine)
	fmt.Fprintf(b, "Kernel: %s\n", meta.OS.KernelVersion)

	if meta.Distro.Codename == "" || meta.Distro.Codename == sysinfo.Placeholder {
		fmt.Fprintf(b, "Distribution: %s %s\n", meta.Distro.Name, meta.Distro.Version)
	} else {
		fmt.Fprintf(b, "Distribution: %s %s (%s)\n", meta.Distro.Name, meta.Distro.Version, meta.Distro.Codename)
	}

	fmt.Fprintf(b, "Runtime: %s (%s)\n", meta.Runtime.Version, meta.Runtime.Implementation)
	fmt.Fprintf(b, "CPUs: %d (%s)\n", meta.CPU.Count, meta.CPU.Architecture)
}
