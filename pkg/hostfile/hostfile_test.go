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

package hostfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func TestNewParser(t *testing.T) {
	tests := []struct {
		name                    string
		opts                    []Option
		expectedMaxSize         int
		expectedSkipComments    bool
		expectedKVDelimiter     string
		expectedVTrimChars      string
		expectedSkipEmptyValues bool
	}{
		{
			name:                    "default options",
			opts:                    nil,
			expectedMaxSize:         1 << 20, // 1MB
			expectedSkipComments:    true,
			expectedKVDelimiter:     "=",
			expectedVTrimChars:      "",
			expectedSkipEmptyValues: false,
		},
		{
			name: "all options",
			opts: []Option{
				WithMaxSize(2048),
				WithSkipComments(false),
				WithKVDelimiter(":"),
				WithVTrimChars(`"'`),
				WithSkipEmptyValues(true),
			},
			expectedMaxSize:         2048,
			expectedSkipComments:    false,
			expectedKVDelimiter:     ":",
			expectedVTrimChars:      `"'`,
			expectedSkipEmptyValues: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewParser(tt.opts...)
			if p.maxSize != tt.expectedMaxSize {
				t.Errorf("maxSize = %d, want %d", p.maxSize, tt.expectedMaxSize)
			}
			if p.skipComments != tt.expectedSkipComments {
				t.Errorf("skipComments = %v, want %v", p.skipComments, tt.expectedSkipComments)
			}
			if p.kvDelimiter != tt.expectedKVDelimiter {
				t.Errorf("kvDelimiter = %q, want %q", p.kvDelimiter, tt.expectedKVDelimiter)
			}
			if p.vTrimChars != tt.expectedVTrimChars {
				t.Errorf("vTrimChars = %q, want %q", p.vTrimChars, tt.expectedVTrimChars)
			}
			if p.skipEmptyValues != tt.expectedSkipEmptyValues {
				t.Errorf("skipEmptyValues = %v, want %v", p.skipEmptyValues, tt.expectedSkipEmptyValues)
			}
		})
	}
}

func TestGetMap(t *testing.T) {
	tests := []struct {
		name    string
		content string
		opts    []Option
		want    map[string]string
	}{
		{
			name: "os-release shape",
			content: `NAME="Ubuntu"
ID=ubuntu
VERSION_ID="24.04"
VERSION_CODENAME=noble
PRETTY_NAME="Ubuntu 24.04.1 LTS"
`,
			opts: []Option{WithVTrimChars(`"'`), WithSkipEmptyValues(true)},
			want: map[string]string{
				"NAME":             "Ubuntu",
				"ID":               "ubuntu",
				"VERSION_ID":       "24.04",
				"VERSION_CODENAME": "noble",
				"PRETTY_NAME":      "Ubuntu 24.04.1 LTS",
			},
		},
		{
			name: "comments and blanks skipped",
			content: `# this is a comment
ID=arch

BUILD_ID=rolling
`,
			want: map[string]string{
				"ID":       "arch",
				"BUILD_ID": "rolling",
			},
		},
		{
			name:    "line without delimiter keeps empty value",
			content: "loneword\nID=debian\n",
			want: map[string]string{
				"loneword": "",
				"ID":       "debian",
			},
		},
		{
			name:    "line without delimiter dropped when skipping empties",
			content: "loneword\nID=debian\n",
			opts:    []Option{WithSkipEmptyValues(true)},
			want: map[string]string{
				"ID": "debian",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFixture(t, "os-release", tt.content)
			got, err := NewParser(tt.opts...).GetMap(path)
			if err != nil {
				t.Fatalf("GetMap returned error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("GetMap returned %d entries, want %d: %v", len(got), len(tt.want), got)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("key %q = %q, want %q", k, got[k], v)
				}
			}
		})
	}
}

func TestGetLines(t *testing.T) {
	path := writeFixture(t, "modules", "  first  \n\n# comment\nsecond\n")

	lines, err := NewParser().GetLines(path)
	if err != nil {
		t.Fatalf("GetLines returned error: %v", err)
	}
	if len(lines) != 2 || lines[0] != "first" || lines[1] != "second" {
		t.Errorf("unexpected lines: %v", lines)
	}
}

func TestGetLinesErrors(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		if _, err := NewParser().GetLines(""); err == nil {
			t.Error("expected error for empty path")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := NewParser().GetLines(filepath.Join(t.TempDir(), "absent")); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("exceeds max size", func(t *testing.T) {
		path := writeFixture(t, "big", strings.Repeat("x", 64)+"\n")
		if _, err := NewParser(WithMaxSize(16)).GetLines(path); err == nil {
			t.Error("expected error for oversized file")
		}
	})

	t.Run("invalid utf-8", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "binary")
		if err := os.WriteFile(path, []byte{0xff, 0xfe, 0xfd}, 0o600); err != nil {
			t.Fatalf("failed to write fixture: %v", err)
		}
		if _, err := NewParser().GetLines(path); err == nil {
			t.Error("expected error for invalid UTF-8 content")
		}
	})
}

func TestGetValue(t *testing.T) {
	t.Run("single value file", func(t *testing.T) {
		path := writeFixture(t, "osrelease", "6.8.0-31-generic\n")
		got, err := NewParser().GetValue(path)
		if err != nil {
			t.Fatalf("GetValue returned error: %v", err)
		}
		if got != "6.8.0-31-generic" {
			t.Errorf("GetValue = %q, want %q", got, "6.8.0-31-generic")
		}
	})

	t.Run("empty file", func(t *testing.T) {
		path := writeFixture(t, "empty", "\n")
		if _, err := NewParser().GetValue(path); err == nil {
			t.Error("expected error for empty file")
		}
	})
}
