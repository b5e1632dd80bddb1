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

package defaults

import "time"

// Subprocess timeouts for package manager queries.
const (
	// CommandTimeout bounds a single package manager query invocation
	// (listing or per-package detail fetch). Overridable per run with
	// --timeout or the config file's timeout key.
	CommandTimeout = 30 * time.Second
)

// Metadata collection timeouts.
const (
	// UnameTimeout bounds the uname -m fallback subprocess in metadata
	// collection. Kept well under CommandTimeout: failure only costs one
	// placeholder field.
	UnameTimeout = 5 * time.Second
)
