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

package sysinfo

import (
	"context"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pkgsnap/pkgsnap/pkg/defaults"
	"github.com/pkgsnap/pkgsnap/pkg/hostfile"
)

// Placeholder substitutes any host fact that cannot be read. Collection
// itself never fails.
const Placeholder = "unknown"

// OSInfo identifies the running kernel.
type OSInfo struct {
	Name          string `json:"name"`
	Release       string `json:"release"`
	KernelVersion string `json:"kernel_version"`
	Machine       string `json:"machine"`
}

// DistroInfo identifies the distribution per os-release.
type DistroInfo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Version  string `json:"version"`
	Codename string `json:"codename"`
}

// RuntimeInfo identifies the Go runtime the snapshot was taken with.
type RuntimeInfo struct {
	Version        string `json:"version"`
	Implementation string `json:"implementation"`
}

// CPUInfo carries processor facts.
type CPUInfo struct {
	Count        int    `json:"count"`
	Architecture string `json:"architecture"`
}

// SystemMetadata is the immutable set of host facts captured once per
// snapshot.
type SystemMetadata struct {
	Hostname string      `json:"hostname"`
	OS       OSInfo      `json:"os"`
	Distro   DistroInfo  `json:"distro"`
	Runtime  RuntimeInfo `json:"runtime"`
	CPU      CPUInfo     `json:"cpu"`
}

// Option configures the Collector.
type Option func(*Collector)

// WithKernelDir overrides the /proc/sys/kernel location.
func WithKernelDir(dir string) Option {
	return func(c *Collector) {
		c.kernelDir = dir
	}
}

// WithReleasePaths overrides the os-release locations.
func WithReleasePaths(primary, fallback string) Option {
	return func(c *Collector) {
		c.releasePrimary = primary
		c.releaseFallback = fallback
	}
}

// Collector gathers host metadata from /proc, os-release, and the Go
// runtime. Every fact is independent: an unreadable source substitutes
// Placeholder instead of failing the collection.
type Collector struct {
	kernelDir       string
	releasePrimary  string
	releaseFallback string
}

// NewCollector creates a metadata collector with the provided options.
func NewCollector(opts ...Option) *Collector {
	c := &Collector{
		kernelDir:       "/proc/sys/kernel",
		releasePrimary:  "/etc/os-release",
		releaseFallback: "/usr/lib/os-release",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Collect gathers all host facts. It performs pure reads (plus one optional
// uname fallback subprocess) and never fails.
func (c *Collector) Collect(ctx context.Context) SystemMetadata {
	slog.Debug("collecting host metadata")

	return SystemMetadata{
		Hostname: c.collectHostname(),
		OS:       c.collectOS(ctx),
		Distro:   c.collectDistro(),
		Runtime: RuntimeInfo{
			Version:        runtime.Version(),
			Implementation: runtime.Compiler,
		},
		CPU: CPUInfo{
			Count:        runtime.NumCPU(),
			Architecture: runtime.GOARCH,
		},
	}
}

func (c *Collector) collectHostname() string {
	hostname, err := os.Hostname()
	if err != nil || hostname == "" {
		slog.Debug("hostname unavailable", slog.Any("error", err))
		return Placeholder
	}
	return hostname
}

// collectOS reads the kernel identity from single-value /proc/sys/kernel
// entries: ostype ("Linux"), osrelease ("6.8.0-31-generic"), version
// ("#1 SMP ..."). The machine architecture has no stable /proc entry on
// older kernels, so a missing arch file falls back to uname -m.
func (c *Collector) collectOS(ctx context.Context) OSInfo {
	parser := hostfile.NewParser(hostfile.WithSkipComments(false))

	value := func(name string) string {
		v, err := parser.GetValue(filepath.Join(c.kernelDir, name))
		if err != nil {
			slog.Debug("kernel fact unavailable",
				slog.String("fact", name),
				slog.String("error", err.Error()),
			)
			return Placeholder
		}
		return v
	}

	machine := value("arch")
	if machine == Placeholder {
		machine = c.unameMachine(ctx)
	}

	return OSInfo{
		Name:          value("ostype"),
		Release:       value("osrelease"),
		KernelVersion: value("version"),
		Machine:       machine,
	}
}

func (c *Collector) unameMachine(ctx context.Context) string {
	ctx, cancel := context.WithTimeout(ctx, defaults.UnameTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, "uname", "-m").Output()
	if err != nil {
		slog.Debug("uname fallback unavailable", slog.String("error", err.Error()))
		return Placeholder
	}

	machine := strings.TrimSpace(string(out))
	if machine == "" {
		return Placeholder
	}
	return machine
}

func (c *Collector) collectDistro() DistroInfo {
	// Per freedesktop.org spec, fall back when the primary file is absent.
	root := c.releasePrimary
	if _, err := os.Stat(root); os.IsNotExist(err) {
		root = c.releaseFallback
	}

	parser := hostfile.NewParser(
		hostfile.WithVTrimChars(`"'`),
		hostfile.WithSkipEmptyValues(true),
	)

	release, err := parser.GetMap(root)
	if err != nil {
		slog.Debug("os release unavailable",
			slog.String("path", root),
			slog.String("error", err.Error()),
		)
		release = map[string]string{}
	}

	field := func(key string) string {
		if v := release[key]; v != "" {
			return v
		}
		return Placeholder
	}

	return DistroInfo{
		ID:       field("ID"),
		Name:     field("NAME"),
		Version:  field("VERSION_ID"),
		Codename: field("VERSION_CODENAME"),
	}
}
