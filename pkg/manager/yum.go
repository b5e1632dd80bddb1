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

const yumTool = "rpm"

// yumBackend queries the RPM package database directly; the same query
// surface serves yum- and dnf-managed hosts.
type yumBackend struct {
	run *runner
}

func (b *yumBackend) Kind() Kind {
	return Yum
}

func (b *yumBackend) Tool() string {
	return yumTool
}

// List enumerates installed packages as one tab-separated line per package.
func (b *yumBackend) List(ctx context.Context) (map[string]string, error) {
	out, err := b.run.run(ctx, yumTool, "-qa", "--queryformat", "%{NAME}\t%{VERSION}\n")
	if err != nil {
		return nil, err
	}
	return parsePackageLines(yumTool, out, splitTab)
}

// Fetch extracts the Summary and Requires fields from rpm -qi.
func (b *yumBackend) Fetch(ctx context.Context, name string) (Detail, error) {
	out, err := b.run.run(ctx, yumTool, "-qi", name)
	if err != nil {
		return Detail{}, err
	}
	return parseRpmDetail(out), nil
}

// parseRpmDetail greps the first Summary and Requires lines from rpm -qi
// output ("Label      : value" shape). Requires rarely appears there; an
// absent field simply stays empty.
func parseRpmDetail(out string) Detail {
	var d Detail
	for _, line := range strings.Split(out, "\n") {
		label, value, ok := labeledValue(line)
		if !ok {
			continue
		}
		switch {
		case d.Description == "" && label == "Summary":
			d.Description = value
		case d.Dependencies == nil && label == "Requires":
			d.Dependencies = splitSpaceList(value)
		}
	}
	return d
}
