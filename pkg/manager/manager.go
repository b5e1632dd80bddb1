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
	"fmt"
	"log/slog"
	"os/exec"
	"time"

	"github.com/pkgsnap/pkgsnap/pkg/defaults"
	"github.com/pkgsnap/pkgsnap/pkg/errors"
)

// Kind identifies a native package manager.
type Kind string

const (
	// Apt is the Debian/Ubuntu package manager (queried through dpkg).
	Apt Kind = "apt"
	// Yum is the RHEL/CentOS/Fedora package manager (queried through rpm).
	Yum Kind = "yum"
	// Pacman is the Arch Linux package manager.
	Pacman Kind = "pacman"
	// Zypper is the SUSE package manager. Detected but unsupported: no
	// backend is registered for it.
	Zypper Kind = "zypper"
	// Unknown marks a host whose distribution matched no detection rule.
	Unknown Kind = "unknown"
)

// String returns the kind identifier.
func (k Kind) String() string {
	return string(k)
}

// IsUnknown reports whether the kind falls outside the closed set of
// detectable package managers.
func (k Kind) IsUnknown() bool {
	switch k {
	case Apt, Yum, Pacman, Zypper:
		return false
	}
	return true
}

// Detail carries the optional per-package fields produced by a detail fetch.
type Detail struct {
	Description  string
	Dependencies []string
}

// Empty reports whether the detail carries no information.
func (d Detail) Empty() bool {
	return d.Description == "" && len(d.Dependencies) == 0
}

// Backend is the set of operations specific to one package manager: a full
// listing pass and a best-effort per-package detail fetch.
type Backend interface {
	// Kind returns the package manager this backend serves.
	Kind() Kind
	// Tool returns the query executable the backend requires on PATH.
	Tool() string
	// List enumerates installed packages as a name to version mapping.
	List(ctx context.Context) (map[string]string, error)
	// Fetch returns description and dependency fields for one package.
	Fetch(ctx context.Context, name string) (Detail, error)
}

// backends is the registry of supported kinds. Zypper is intentionally
// absent: the detector reports it, but no listing syntax is defined for it.
var backends = map[Kind]func(*runner) Backend{
	Apt:    func(r *runner) Backend { return &aptBackend{run: r} },
	Yum:    func(r *runner) Backend { return &yumBackend{run: r} },
	Pacman: func(r *runner) Backend { return &pacmanBackend{run: r} },
}

// Option configures backend resolution.
type Option func(*options)

type options struct {
	timeout time.Duration
}

// WithTimeout bounds every subprocess invocation made by the backend.
// Default is defaults.CommandTimeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.timeout = timeout
	}
}

// Resolve returns the backend registered for the given kind. Unknown kinds,
// Zypper, and anything else without a registered backend resolve to an
// unsupported-backend error before any subprocess runs.
func Resolve(kind Kind, opts ...Option) (Backend, error) {
	o := &options{timeout: defaults.CommandTimeout}
	for _, opt := range opts {
		opt(o)
	}

	newBackend, ok := backends[kind]
	if !ok {
		return nil, errors.NewWithContext(
			errors.ErrCodeUnsupportedBackend,
			fmt.Sprintf("no supported package manager backend for %q", kind),
			map[string]any{"manager": kind.String()},
		)
	}

	return newBackend(newRunner(o.timeout)), nil
}

// CheckTool verifies that the backend's query executable is present on PATH.
// Called once before any listing begins; absence is fatal for the run.
func CheckTool(b Backend) error {
	path, err := exec.LookPath(b.Tool())
	if err != nil {
		return errors.WrapWithContext(
			errors.ErrCodeMissingTool,
			fmt.Sprintf("required tool %q not found on PATH", b.Tool()),
			err,
			map[string]any{"manager": b.Kind().String(), "tool": b.Tool()},
		)
	}

	slog.Debug("found package manager tool",
		slog.String("tool", b.Tool()),
		slog.String("path", path),
	)
	return nil
}
