// Copyright 2026 The Propview Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anonkit/propview/internal/model"
)

// validateCmd checks snapshot files without rendering them.
var validateCmd = &cobra.Command{
	Use:   "validate <snapshot>...",
	Short: "Validate anonymization snapshots",
	Long: `Validate one or more snapshot files and report every problem found:
attribute roles, privacy criteria kinds and parameters, duplicate criteria,
hierarchy levels, the result and the selected transformation.

Exits with status 2 if any snapshot is invalid.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	failed := 0
	for _, path := range args {
		if _, err := model.Load(path); err != nil {
			failed++
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%v\n", err)
			continue
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "valid: %s\n", path)
	}
	if failed > 0 {
		return exitError(ExitInvalidSnapshot, "propview: %d of %d snapshot(s) invalid", failed, len(args))
	}
	return nil
}
