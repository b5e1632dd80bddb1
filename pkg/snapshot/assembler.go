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

package snapshot

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/pkgsnap/pkgsnap/pkg/errors"
	"github.com/pkgsnap/pkgsnap/pkg/manager"
	"github.com/pkgsnap/pkgsnap/pkg/sysinfo"
)

// ProgressFunc receives a monotonic progress signal after each detail fetch:
// processed rises from 1 to total. It is a side channel for operator
// feedback; how (or whether) it renders is the caller's choice.
type ProgressFunc func(processed, total int, name string)

// Assembler combines a package listing, optional per-package details, host
// metadata, and a timestamp into one immutable Snapshot.
type Assembler struct {
	kind     manager.Kind
	details  manager.Backend
	progress ProgressFunc
	clock    func() time.Time
	newID    func() string
}

// Option configures the Assembler.
type Option func(*Assembler)

// WithDetails enables detail enrichment: one best-effort fetch per package
// through the given backend.
func WithDetails(b manager.Backend) Option {
	return func(a *Assembler) {
		a.details = b
	}
}

// WithProgress registers a callback invoked after each detail fetch.
func WithProgress(fn ProgressFunc) Option {
	return func(a *Assembler) {
		a.progress = fn
	}
}

// WithClock overrides the timestamp source.
func WithClock(clock func() time.Time) Option {
	return func(a *Assembler) {
		a.clock = clock
	}
}

// WithID pins the snapshot identifier.
func WithID(id string) Option {
	return func(a *Assembler) {
		a.newID = func() string { return id }
	}
}

// New creates an Assembler for the given package manager kind.
func New(kind manager.Kind, opts ...Option) *Assembler {
	a := &Assembler{
		kind:  kind,
		clock: time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Assemble builds the snapshot. It rejects empty inventories and unknown
// manager kinds: either would produce a snapshot that must not be persisted.
// Packages are processed in lexicographic name order; detail fetch failures
// are absorbed into bare records and never abort the run.
func (a *Assembler) Assemble(ctx context.Context, packages map[string]string, meta sysinfo.SystemMetadata) (*Snapshot, error) {
	start := time.Now()
	defer func() {
		assemblyDuration.Observe(time.Since(start).Seconds())
	}()

	if len(packages) == 0 {
		return nil, errors.New(
			errors.ErrCodeEmptyInventory,
			"no packages enumerated, refusing to assemble an empty snapshot",
		)
	}
	if a.kind.IsUnknown() {
		return nil, errors.New(
			errors.ErrCodeUnsupportedBackend,
			fmt.Sprintf("cannot assemble a snapshot for package manager %q", a.kind),
		)
	}

	snap := &Snapshot{
		ID:        a.newID(),
		Timestamp: a.clock().Format(TimestampLayout),
		Manager:   a.kind,
		Metadata:  meta,
		Packages:  make(map[string]*PackageRecord, len(packages)),
	}

	names := make([]string, 0, len(packages))
	for name := range packages {
		names = append(names, name)
	}
	sort.Strings(names)

	total := len(names)
	for i, name := range names {
		version := packages[name]
		if version == "" {
			return nil, errors.NewWithContext(
				errors.ErrCodeExternalCommand,
				fmt.Sprintf("package %q has an empty version", name),
				map[string]any{"package": name},
			)
		}

		rec := &PackageRecord{Name: name, Version: version}
		if a.details != nil {
			detail, err := a.details.Fetch(ctx, name)
			if err != nil {
				// Enrichment is best-effort: keep the bare record.
				detailFetchFailures.WithLabelValues(a.kind.String()).Inc()
				slog.Debug("detail fetch failed",
					slog.String("package", name),
					slog.String("error", err.Error()),
				)
			} else {
				rec.Description = detail.Description
				rec.Dependencies = detail.Dependencies
			}

			if a.progress != nil {
				a.progress(i+1, total, name)
			}
		}
		snap.Packages[name] = rec
	}

	snapshotPackages.Set(float64(total))
	slog.Info("assembled snapshot",
		slog.String("id", snap.ID),
		slog.String("manager", snap.Manager.String()),
		slog.Int("packages", total),
	)

	return snap, nil
}
