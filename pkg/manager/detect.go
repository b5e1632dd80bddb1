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

package manager

import (
	"log/slog"
	"os"
	"strings"

	"github.com/pkgsnap/pkgsnap/pkg/hostfile"
)

var (
	releasePathPrimary  = "/etc/os-release"
	releasePathFallback = "/usr/lib/os-release"
)

// detectRules maps distribution identity substrings to package manager
// kinds, most specific first.
var detectRules = []struct {
	substr string
	kind   Kind
}{
	{"ubuntu", Apt},
	{"debian", Apt},
	{"centos", Yum},
	{"rhel", Yum},
	{"redhat", Yum},
	{"fedora", Yum},
	{"arch", Pacman},
	{"opensuse", Zypper},
	{"suse", Zypper},
}

// DetectFrom maps a distribution id string (the os-release ID field, e.g.
// "ubuntu", "centos", "arch") to a package manager kind. Pure function of the
// id: no rule match yields Unknown.
func DetectFrom(id string) Kind {
	id = strings.ToLower(strings.TrimSpace(id))
	if id == "" {
		return Unknown
	}

	for _, rule := range detectRules {
		if strings.Contains(id, rule.substr) {
			return rule.kind
		}
	}
	return Unknown
}

// Detect reads the host distribution identity and selects exactly one
// package manager kind. Hosts without a readable os-release, or without an
// ID field, detect as Unknown; classification of Unknown (and of detected
// kinds without a backend, such as Zypper) into errors happens at Resolve.
func Detect() Kind {
	return detectHost(releasePathPrimary, releasePathFallback)
}

func detectHost(primary, fallback string) Kind {
	// Per freedesktop.org spec, fall back when the primary file is absent.
	root := primary
	if _, err := os.Stat(root); os.IsNotExist(err) {
		root = fallback
	}

	parser := hostfile.NewParser(
		// Remove surrounding quotes if any per freedesktop.org spec
		hostfile.WithVTrimChars(`"'`),
		hostfile.WithSkipEmptyValues(true),
	)

	release, err := parser.GetMap(root)
	if err != nil {
		slog.Debug("failed to read os release",
			slog.String("path", root),
			slog.String("error", err.Error()),
		)
		return Unknown
	}

	kind := DetectFrom(release["ID"])
	slog.Debug("detected package manager",
		slog.String("distro", release["ID"]),
		slog.String("manager", kind.String()),
	)
	return kind
}
