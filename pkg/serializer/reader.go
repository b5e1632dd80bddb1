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
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/pkgsnap/pkgsnap/pkg/snapshot"
)

// Open opens path through the declared input pipeline, layering a gzip
// reader on top of the file when compressed. Close on the returned
// ReadCloser releases every layer; it is safe to call once regardless of how
// far the read got.
func Open(path string, compressed bool) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	if !compressed {
		return file, nil
	}

	gz, err := gzip.NewReader(file)
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to open gzip stream: %w", err)
	}

	return &layeredReadCloser{
		Reader:  gz,
		closers: []io.Closer{gz, file},
	}, nil
}

// layeredReadCloser reads from the top of a reader stack and closes the
// layers top-down.
type layeredReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (l *layeredReadCloser) Close() error {
	var first error
	for _, c := range l.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Read loads a structured snapshot back from disk. Only JSON artifacts are
// round-trippable; the text report is write-only.
func Read(path string, format Format, compressed bool) (*snapshot.Snapshot, error) {
	if format != FormatJSON {
		return nil, fmt.Errorf("format %q does not support deserialization", format)
	}

	in, err := Open(path, compressed)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	var snap snapshot.Snapshot
	if err := json.NewDecoder(in).Decode(&snap); err != nil {
		return nil, fmt.Errorf("failed to decode JSON: %w", err)
	}
	return &snap, nil
}
