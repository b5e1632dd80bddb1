/*
Copyright © 2026 pkgsnap authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/pkgsnap/pkgsnap/pkg/config"
	"github.com/pkgsnap/pkgsnap/pkg/defaults"
	"github.com/pkgsnap/pkgsnap/pkg/errors"
	"github.com/pkgsnap/pkgsnap/pkg/manager"
	"github.com/pkgsnap/pkgsnap/pkg/serializer"
	"github.com/pkgsnap/pkgsnap/pkg/snapshot"
	"github.com/pkgsnap/pkgsnap/pkg/sysinfo"
	"github.com/pkgsnap/pkgsnap/pkg/validator"
)

func snapshotCmd() *cli.Command {
	return &cli.Command{
		Name:                  "snapshot",
		EnableShellCompletion: true,
		Usage:                 "Capture a package inventory snapshot of this host",
		ArgsUsage:             "[output-file]",
		Description: `Capture a snapshot of every package installed on this host through the
native package manager.

The pipeline detects the package manager from /etc/os-release (dpkg/apt on
Debian and Ubuntu, rpm/yum on RHEL-family systems, pacman on Arch), enumerates
installed name/version pairs, optionally enriches each package with its
description and dependencies, stamps the snapshot with host metadata, and
writes it atomically as text or JSON, optionally gzip-compressed. The written
artifact is verified before the command reports success.

# Examples

Write the default text report to the working directory:
  pkgsnap snapshot

Structured JSON, gzip-compressed, with per-package details:
  pkgsnap snapshot --json --compress --detailed packages.json.gz

Dry run - print the report without writing anything:
  pkgsnap snapshot --test --detailed

Force a backend instead of detecting (useful in containers):
  pkgsnap snapshot --manager apt`,
		Flags: []cli.Flag{
			jsonFlag,
			compressFlag,
			&cli.BoolFlag{
				Name:    "detailed",
				Aliases: []string{"d"},
				Usage:   "fetch per-package descriptions and dependencies",
			},
			&cli.BoolFlag{
				Name:    "test",
				Aliases: []string{"t"},
				Usage:   "dry run: print the report to stdout instead of writing a file",
			},
			&cli.StringFlag{
				Name:    "manager",
				Usage:   "force a package manager backend (apt, yum, pacman) instead of detecting",
				Sources: cli.EnvVars("PKGSNAP_MANAGER"),
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "per-invocation timeout for package manager commands",
				Value: defaults.CommandTimeout,
			},
			configFlag,
		},
		Action: runSnapshot,
	}
}

func runSnapshot(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return err
	}
	applyConfigLogLevel(cfg, cmd.Root().String("log-level") != "")

	// Flags override config file values.
	format, err := resolveFormat(cfg.Format, cmd.Bool("json"))
	if err != nil {
		return err
	}
	compressed := cfg.Compress
	if cmd.IsSet("compress") {
		compressed = cmd.Bool("compress")
	}
	detailed := cfg.Detailed
	if cmd.IsSet("detailed") {
		detailed = cmd.Bool("detailed")
	}
	timeout := cfg.TimeoutDuration()
	if cmd.IsSet("timeout") {
		timeout = cmd.Duration("timeout")
	}
	testMode := cmd.Bool("test")

	kind := manager.Detect()
	if forced := cmd.String("manager"); forced != "" {
		kind = manager.Kind(strings.ToLower(strings.TrimSpace(forced)))
	}

	backend, err := manager.Resolve(kind, manager.WithTimeout(timeout))
	if err != nil {
		return err
	}
	if err := manager.CheckTool(backend); err != nil {
		return err
	}

	slog.Info("listing installed packages",
		slog.String("manager", kind.String()),
		slog.Bool("detailed", detailed),
	)
	packages, err := backend.List(ctx)
	if err != nil {
		return err
	}

	meta := sysinfo.NewCollector().Collect(ctx)

	opts := []snapshot.Option{}
	if detailed {
		opts = append(opts, snapshot.WithDetails(backend))
		if !testMode {
			renderer := newProgressRenderer(cmd.Root().ErrWriter)
			opts = append(opts, snapshot.WithProgress(renderer.update))
		}
	}

	snap, err := snapshot.New(kind, opts...).Assemble(ctx, packages, meta)
	if err != nil {
		return err
	}

	if testMode {
		return printTestReport(cmd.Root().Writer, snap, format, detailed)
	}

	path := cmd.Args().First()
	if path == "" {
		path = serializer.DefaultFilename(snap.Timestamp, format, compressed)
		if cfg.OutputDir != "" {
			path = filepath.Join(cfg.OutputDir, path)
		}
	}

	if err := serializer.Write(path, snap, format, compressed); err != nil {
		return err
	}

	if !validator.Validate(path, format, compressed) {
		return errors.NewWithContext(
			errors.ErrCodeWriteFailed,
			fmt.Sprintf("written snapshot at %s failed verification", path),
			map[string]any{"path": path, "format": string(format)},
		)
	}

	slog.Info("snapshot complete",
		slog.String("id", snap.ID),
		slog.String("path", path),
		slog.Int("packages", len(snap.Packages)),
	)
	fmt.Fprintf(cmd.Root().Writer, "Snapshot written to %s (%d packages)\n", path, len(snap.Packages))
	return nil
}
