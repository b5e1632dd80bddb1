/*
Copyright © 2026 pkgsnap authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkgsnap/pkgsnap/pkg/manager"
	"github.com/pkgsnap/pkgsnap/pkg/serializer"
	"github.com/pkgsnap/pkgsnap/pkg/snapshot"
	"github.com/pkgsnap/pkgsnap/pkg/sysinfo"
)

// writeArtifact persists a minimal snapshot under the given file name and
// returns its path.
func writeArtifact(t *testing.T, name string, format serializer.Format, compressed bool) string {
	t.Helper()

	snap := &snapshot.Snapshot{
		ID:        "0a1b2c3d-4e5f-6071-8293-a4b5c6d7e8f9",
		Timestamp: "2026-08-26_14-03-22",
		Manager:   manager.Apt,
		Metadata:  sysinfo.SystemMetadata{Hostname: "web-01"},
		Packages: map[string]*snapshot.PackageRecord{
			"bash": {Name: "bash", Version: "5.1-2"},
		},
	}

	path := filepath.Join(t.TempDir(), name)
	if err := serializer.Write(path, snap, format, compressed); err != nil {
		t.Fatalf("writing artifact: %v", err)
	}
	return path
}

func TestValidateCommand(t *testing.T) {
	tests := []struct {
		name       string
		artifact   string
		format     serializer.Format
		compressed bool
		extraArgs  []string
	}{
		{
			name:     "json by extension",
			artifact: "packages.json",
			format:   serializer.FormatJSON,
		},
		{
			name:     "text by extension",
			artifact: "packages.txt",
			format:   serializer.FormatText,
		},
		{
			name:       "compressed json by extension",
			artifact:   "packages.json.gz",
			format:     serializer.FormatJSON,
			compressed: true,
		},
		{
			name:       "renamed artifact with explicit overrides",
			artifact:   "backup.bin",
			format:     serializer.FormatJSON,
			compressed: true,
			extraArgs:  []string{"--json", "--compress"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeArtifact(t, tt.artifact, tt.format, tt.compressed)

			var out bytes.Buffer
			cmd := validateCmd()
			cmd.Writer = &out

			args := append([]string{"validate"}, tt.extraArgs...)
			args = append(args, path)
			if err := cmd.Run(context.Background(), args); err != nil {
				t.Fatalf("validate failed: %v", err)
			}
			if want := path + ": valid\n"; out.String() != want {
				t.Errorf("output = %q, want %q", out.String(), want)
			}
		})
	}
}

func TestValidateCommand_InvalidArtifact(t *testing.T) {
	path := filepath.Join(t.TempDir(), "packages.json")
	if err := os.WriteFile(path, []byte(`{"id": "truncated`), 0o600); err != nil {
		t.Fatalf("writing corrupt artifact: %v", err)
	}

	var out bytes.Buffer
	cmd := validateCmd()
	cmd.Writer = &out

	err := cmd.Run(context.Background(), []string{"validate", path})
	if err == nil {
		t.Fatal("expected error for corrupt artifact")
	}
	if !strings.Contains(err.Error(), "invalid") {
		t.Errorf("error = %v, want mention of an invalid artifact", err)
	}
	if want := path + ": invalid\n"; out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestValidateCommand_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "never-written.json")

	cmd := validateCmd()
	cmd.Writer = &bytes.Buffer{}

	if err := cmd.Run(context.Background(), []string{"validate", path}); err == nil {
		t.Fatal("expected error for missing artifact")
	}
}

func TestValidateCommand_MissingPath(t *testing.T) {
	cmd := validateCmd()
	cmd.Writer = &bytes.Buffer{}

	err := cmd.Run(context.Background(), []string{"validate"})
	if err == nil {
		t.Fatal("expected error when no path is given")
	}
	if !strings.Contains(err.Error(), "required") {
		t.Errorf("error = %v, want mention of the required path", err)
	}
}
