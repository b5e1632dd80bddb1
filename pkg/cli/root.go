/*
Copyright © 2026 pkgsnap authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/pkgsnap/pkgsnap/pkg/config"
	"github.com/pkgsnap/pkgsnap/pkg/logging"
)

// Root builds the base command with all subcommands attached.
func Root() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Usage:                 "Host package inventory snapshots",
		Version:               version,
		EnableShellCompletion: true,
		Description: fmt.Sprintf(`pkgsnap - host package inventory snapshots

Version: %s
Commit:  %s
Built:   %s

Captures what is installed on a Linux host through its native package manager
(apt, yum, or pacman), stamps the listing with host metadata, and persists it
as a text report or structured JSON, optionally gzip-compressed. Artifacts
are written atomically and can be re-verified at any time with the validate
command.`, version, commit, date),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level (debug, info, warn, error)",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if level := cmd.String("log-level"); level != "" {
				logging.SetDefaultStructuredLoggerWithLevel(name, version, level)
			} else {
				logging.SetDefaultStructuredLogger(name, version)
			}
			slog.Debug("starting",
				"name", name,
				"version", version,
				"commit", commit,
				"date", date)
			return ctx, nil
		},
		Commands: []*cli.Command{
			snapshotCmd(),
			validateCmd(),
		},
	}
}

// applyConfigLogLevel re-levels the default logger from the config file.
// pinned means --log-level was given explicitly, which always wins.
func applyConfigLogLevel(cfg config.Config, pinned bool) {
	if pinned || cfg.LogLevel == "" {
		return
	}
	logging.SetDefaultStructuredLoggerWithLevel(name, version, cfg.LogLevel)
}

// Run executes the root command. It installs SIGINT/SIGTERM handling so an
// interrupted run cancels in-flight package manager commands before the
// process exits.
func Run(ctx context.Context, args []string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	go func() {
		select {
		case <-sigCh:
			fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down gracefully...")
			cancel()
		case <-ctx.Done():
		}
	}()

	return Root().Run(ctx, args)
}
