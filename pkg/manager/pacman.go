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

const pacmanTool = "pacman"

// pacmanBackend queries the Arch Linux package database.
type pacmanBackend struct {
	run *runner
}

func (b *pacmanBackend) Kind() Kind {
	return Pacman
}

func (b *pacmanBackend) Tool() string {
	return pacmanTool
}

// List enumerates installed packages as one "name version" line per package.
func (b *pacmanBackend) List(ctx context.Context) (map[string]string, error) {
	out, err := b.run.run(ctx, pacmanTool, "-Q")
	if err != nil {
		return nil, err
	}
	return parsePackageLines(pacmanTool, out, splitWhitespace)
}

// Fetch extracts the Description and "Depends On" fields from pacman -Qi.
func (b *pacmanBackend) Fetch(ctx context.Context, name string) (Detail, error) {
	out, err := b.run.run(ctx, pacmanTool, "-Qi", name)
	if err != nil {
		return Detail{}, err
	}
	return parsePacmanDetail(out), nil
}

// parsePacmanDetail greps the first Description and "Depends On" lines from
// pacman -Qi output. pacman prints the literal "None" for empty dependency
// lists; that collapses to no dependencies.
func parsePacmanDetail(out string) Detail {
	var d Detail
	for _, line := range strings.Split(out, "\n") {
		label, value, ok := labeledValue(line)
		if !ok {
			continue
		}
		switch {
		case d.Description == "" && label == "Description":
			d.Description = value
		case d.Dependencies == nil && label == "Depends On":
			d.Dependencies = splitSpaceList(value)
		}
	}
	return d
}
