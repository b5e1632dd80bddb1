/*
Copyright © 2026 pkgsnap authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v3"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/time/rate"

	"github.com/pkgsnap/pkgsnap/pkg/serializer"
	"github.com/pkgsnap/pkgsnap/pkg/snapshot"
)

// Flags shared between commands.
var (
	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "write the structured JSON rendering instead of the text report",
	}
	compressFlag = &cli.BoolFlag{
		Name:    "compress",
		Aliases: []string{"z"},
		Usage:   "gzip-compress the artifact",
	}
	configFlag = &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "path to a YAML config file",
		Sources: cli.EnvVars("PKGSNAP_CONFIG"),
	}
)

// resolveFormat maps the configured format name and the --json override to
// the serializer format.
func resolveFormat(configured string, jsonOverride bool) (serializer.Format, error) {
	if jsonOverride {
		return serializer.FormatJSON, nil
	}
	format := serializer.Format(configured)
	if format.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q (supported: %s)",
			configured, strings.Join(serializer.SupportedFormats(), ", "))
	}
	return format, nil
}

// writerIsTTY returns true if the given writer exposes an Fd() method
// (e.g. *os.File) and that fd is a terminal. Falls back to false for
// plain io.Writer values such as *bytes.Buffer.
func writerIsTTY(w io.Writer) bool {
	type fder interface {
		Fd() uintptr
	}
	if f, ok := w.(fder); ok {
		return isatty.IsTerminal(f.Fd())
	}
	return false
}

// progressRenderer turns assembler progress callbacks into operator
// feedback: a carriage-return bar on a terminal, sparse plain lines
// otherwise.
type progressRenderer struct {
	out      io.Writer
	tty      bool
	width    int
	throttle rate.Sometimes
}

func newProgressRenderer(out io.Writer) *progressRenderer {
	return &progressRenderer{
		out:      out,
		tty:      writerIsTTY(out),
		width:    30,
		throttle: rate.Sometimes{First: 1, Interval: 2 * time.Second},
	}
}

// update renders one progress step. processed rises from 1 to total.
func (p *progressRenderer) update(processed, total int, pkgName string) {
	if total <= 0 {
		return
	}

	if p.tty {
		filled := processed * p.width / total
		bar := strings.Repeat("=", filled) + strings.Repeat(" ", p.width-filled)
		fmt.Fprintf(p.out, "\r[%s] %d/%d %-30.30s", bar, processed, total, pkgName)
		if processed == total {
			fmt.Fprintln(p.out)
		}
		return
	}

	// Non-TTY output stays log-friendly: first step, then at most one line
	// every couple of seconds, then the completion line.
	if processed == total {
		fmt.Fprintf(p.out, "fetched %d/%d package details\n", processed, total)
		return
	}
	p.throttle.Do(func() {
		fmt.Fprintf(p.out, "fetched %d/%d package details\n", processed, total)
	})
}

// printTestReport writes the dry-run console report: a short header plus the
// rendered preview, nothing on disk.
func printTestReport(w io.Writer, snap *snapshot.Snapshot, format serializer.Format, detailed bool) error {
	preview, err := serializer.Preview(snap, format, detailed)
	if err != nil {
		return err
	}

	title := cases.Title(language.English)
	fmt.Fprintf(w, "Test mode: nothing will be written\n")
	fmt.Fprintf(w, "%s reported %d installed packages\n", title.String(snap.Manager.String()), len(snap.Packages))
	fmt.Fprintf(w, "\n%s", preview)
	return nil
}
