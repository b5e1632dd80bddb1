/*
Copyright © 2026 pkgsnap authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/pkgsnap/pkgsnap/pkg/serializer"
	"github.com/pkgsnap/pkgsnap/pkg/validator"
)

func validateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "validate",
		EnableShellCompletion: true,
		Usage:                 "Check that a snapshot artifact is complete and readable",
		ArgsUsage:             "<path>",
		Description: `Re-open a previously written snapshot artifact and confirm it is complete
and readable: JSON artifacts must decode end to end, text artifacts must read
(and decompress) end to end.

The format and compression are inferred from the file extension (.json, .txt,
plus a trailing .gz); use --json and --compress to override the inference for
unconventionally named files.

# Examples

Validate by extension:
  pkgsnap validate packages_2026-08-26_14-03-22.json.gz

Validate a renamed artifact, declaring its pipeline explicitly:
  pkgsnap validate --json --compress backup.bin`,
		Flags: []cli.Flag{
			jsonFlag,
			compressFlag,
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			path := cmd.Args().First()
			if path == "" {
				return fmt.Errorf("path to a snapshot artifact is required")
			}

			format := serializer.FormatFromPath(path)
			if cmd.Bool("json") {
				format = serializer.FormatJSON
			}
			compressed := serializer.CompressedFromPath(path)
			if cmd.IsSet("compress") {
				compressed = cmd.Bool("compress")
			}

			slog.Debug("validating artifact",
				slog.String("path", path),
				slog.String("format", string(format)),
				slog.Bool("compressed", compressed),
			)

			if !validator.Validate(path, format, compressed) {
				fmt.Fprintf(cmd.Root().Writer, "%s: invalid\n", path)
				return fmt.Errorf("snapshot artifact %s is invalid", path)
			}

			fmt.Fprintf(cmd.Root().Writer, "%s: valid\n", path)
			return nil
		},
	}
}
