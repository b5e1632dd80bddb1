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
	"context"
	"strings"
)

const (
	aptListTool   = "dpkg-query"
	aptDetailTool = "apt-cache"
)

// aptBackend queries the Debian/Ubuntu package database through dpkg-query
// and enriches records through apt-cache.
type aptBackend struct {
	run *runner
}

func (b *aptBackend) Kind() Kind {
	return Apt
}

func (b *aptBackend) Tool() string {
	return aptListTool
}

// List enumerates installed packages as one tab-separated line per package.
func (b *aptBackend) List(ctx context.Context) (map[string]string, error) {
	out, err := b.run.run(ctx, aptListTool, "-W", "-f=${Package}\t${Version}\n")
	if err != nil {
		return nil, err
	}
	return parsePackageLines(aptListTool, out, splitTab)
}

// Fetch extracts the Description and Depends fields from apt-cache show.
func (b *aptBackend) Fetch(ctx context.Context, name string) (Detail, error) {
	out, err := b.run.run(ctx, aptDetailTool, "show", name)
	if err != nil {
		return Detail{}, err
	}
	return parseAptDetail(out), nil
}

// parseAptDetail greps the first matching labeled field of each kind.
// apt-cache prints either "Description:" or the localized "Description-en:";
// continuation lines of the long description are ignored.
func parseAptDetail(out string) Detail {
	var d Detail
	for _, line := range strings.Split(out, "\n") {
		label, value, ok := labeledValue(line)
		if !ok {
			continue
		}
		switch {
		case d.Description == "" && (label == "Description" || label == "Description-en"):
			d.Description = value
		case d.Dependencies == nil && label == "Depends":
			d.Dependencies = splitCommaList(value)
		}
	}
	return d
}
