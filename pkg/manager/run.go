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
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/pkgsnap/pkgsnap/pkg/defaults"
	"github.com/pkgsnap/pkgsnap/pkg/errors"
)

// runner executes package manager query commands with a bounded lifetime and
// separate stdout/stderr capture.
type runner struct {
	timeout time.Duration
}

func newRunner(timeout time.Duration) *runner {
	if timeout <= 0 {
		timeout = defaults.CommandTimeout
	}
	return &runner{timeout: timeout}
}

// run executes tool with args and returns its stdout. Non-zero exits, start
// failures, and timeout expiry all classify as external command errors; the
// trimmed stderr (when present) becomes the message.
func (r *runner) run(ctx context.Context, tool string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, tool, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	commandDuration.WithLabelValues(tool).Observe(time.Since(start).Seconds())

	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", errors.WrapWithContext(
				errors.ErrCodeExternalCommand,
				fmt.Sprintf("%s timed out after %s", tool, r.timeout),
				ctx.Err(),
				map[string]any{"command": tool},
			)
		}

		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return "", errors.WrapWithContext(
			errors.ErrCodeExternalCommand,
			fmt.Sprintf("%s failed: %s", tool, msg),
			err,
			map[string]any{"command": tool, "args": strings.Join(args, " ")},
		)
	}

	return stdout.String(), nil
}

// parsePackageLines parses listing output where every non-empty line holds a
// package name and version, tokenized by split. A line that does not yield
// exactly two non-empty fields, or a name that repeats, aborts the whole
// pass: malformed output means the tool's contract changed and must not be
// silently ignored.
func parsePackageLines(tool, output string, split func(string) []string) (map[string]string, error) {
	packages := make(map[string]string)

	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := split(line)
		if len(fields) != 2 {
			return nil, malformedLine(tool, line)
		}

		name := strings.TrimSpace(fields[0])
		version := strings.TrimSpace(fields[1])
		if name == "" || version == "" {
			return nil, malformedLine(tool, line)
		}

		if _, exists := packages[name]; exists {
			return nil, errors.NewWithContext(
				errors.ErrCodeExternalCommand,
				fmt.Sprintf("%s listed package %q more than once", tool, name),
				map[string]any{"command": tool, "package": name},
			)
		}
		packages[name] = version
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(
			errors.ErrCodeExternalCommand,
			fmt.Sprintf("failed to scan %s output", tool),
			err,
		)
	}

	return packages, nil
}

func malformedLine(tool, line string) error {
	return errors.NewWithContext(
		errors.ErrCodeExternalCommand,
		fmt.Sprintf("%s produced a malformed line", tool),
		map[string]any{"command": tool, "line": line},
	)
}

// splitTab tokenizes a tab-separated name/version line (dpkg-query, rpm).
// The split is unbounded so a line with extra tab fields fails the
// exactly-two check instead of hiding the surplus inside the version.
func splitTab(line string) []string {
	return strings.Split(line, "\t")
}

// splitWhitespace tokenizes a whitespace-separated line (pacman -Q).
func splitWhitespace(line string) []string {
	return strings.Fields(line)
}

// labeledValue splits an info line of the "Label : value" shape used by the
// per-package query tools. Reports false for lines without a colon.
func labeledValue(line string) (label, value string, ok bool) {
	parts := strings.SplitN(line, ":", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), true
}

// splitCommaList splits a dependency list on commas, trimming each entry and
// dropping empties.
func splitCommaList(s string) []string {
	parts := strings.Split(s, ",")
	deps := make([]string, 0, len(parts))
	for _, part := range parts {
		if dep := strings.TrimSpace(part); dep != "" {
			deps = append(deps, dep)
		}
	}
	if len(deps) == 0 {
		return nil
	}
	return deps
}

// splitSpaceList splits a dependency list on whitespace, dropping the
// literal "None" marker pacman prints for empty lists.
func splitSpaceList(s string) []string {
	if strings.EqualFold(strings.TrimSpace(s), "None") {
		return nil
	}
	deps := strings.Fields(s)
	if len(deps) == 0 {
		return nil
	}
	return deps
}
