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

// Package validator confirms that persisted snapshot artifacts are complete
// and readable.
//
// # Overview
//
// After a snapshot is written (or at any later point), Validate re-opens the
// artifact through the same pipeline that produced it (the gzip layer when
// compressed, the JSON decoder for structured files) and reports a single
// boolean verdict. It is the integrity check behind the CLI validate command
// and the post-write verification step.
//
// # Verdict Semantics
//
// JSON artifacts are valid when the payload decodes end to end into a
// snapshot. Text artifacts are valid when every byte can be read (and
// decompressed, when compressed). Missing files, truncated payloads, corrupt
// gzip streams, and mismatched compression flags all collapse to false;
// Validate never returns an error and never panics. The failure reason is
// logged at debug level for operators who need more than the boolean.
//
// # Usage
//
//	ok := validator.Validate("packages_2026-08-26_14-03-22.json.gz",
//		serializer.FormatJSON, true)
//	if !ok {
//	    // artifact is unusable; re-run the snapshot
//	}
package validator
