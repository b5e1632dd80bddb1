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

// Package defaults provides centralized timeout constants for pkgsnap.
//
// Every external command the tool runs is bounded by an explicit timeout;
// this package is the single place those bounds are defined so the CLI flag
// default, the config file default, and the subprocess runner fallback all
// agree.
//
// # Usage
//
// Import and use constants directly:
//
//	import "github.com/pkgsnap/pkgsnap/pkg/defaults"
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.CommandTimeout)
//	defer cancel()
//
// # Timeout Guidelines
//
//   - Package manager queries: 30s; a full dpkg-query listing on a large
//     host finishes in well under a second, so expiry signals a wedged tool.
//   - uname fallback: 5s; a local one-shot exec whose failure degrades a
//     single metadata field to the placeholder.
package defaults
