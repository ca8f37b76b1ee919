// Copyright 2026 The Propview Authors
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const inputSnapshot = `
rows: 5
allowed_outliers: 0.05
attributes:
  - name: Name
    role: identifying
    type: String
  - name: Age
    role: quasi-identifying
    type: Integer
    hierarchy:
      height: 3
      min_level: 0
      max_level: 2
  - name: Disease
    role: sensitive
    type: String
criteria:
  - kind: k-anonymity
    k: 5
`

const outputSnapshot = inputSnapshot + `
result:
  bottom_min_loss: 0
  top_max_loss: 400
  groups: 4
  outlying_groups: 1
selected_node:
  min_loss: 120
  max_loss: 120
  anonymity: anonymous
  successors: [[2], [3]]
  predecessors: [[0]]
  transformation: [1]
`

// newTestCmd redirects the global rootCmd's I/O into buffers.
func newTestCmd() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return rootCmd, stdout, stderr
}

// resetFlags resets every package-level flag to its default value.
func resetFlags() {
	resetCmdFlags(rootCmd.PersistentFlags())
	for _, cmd := range []*cobra.Command{inspectCmd, replayCmd, validateCmd, configGetCmd, configSetCmd, configListCmd} {
		resetCmdFlags(cmd.Flags())
	}
}

func resetCmdFlags(fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		f.Changed = false
		_ = f.Value.Set(f.DefValue)
	})
}

// sandbox runs the test in a fresh working directory with an empty global
// config and the snapshot fixtures written to it.
func sandbox(t *testing.T) string {
	t.Helper()
	resetFlags()

	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Chdir(dir)

	writeTestFile(t, dir, "input.yaml", inputSnapshot)
	writeTestFile(t, dir, "output.yaml", outputSnapshot)
	return dir
}

// writeTestFile creates a file (and any necessary parent directories) under dir.
func writeTestFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

// requireExitCode asserts that err carries the given exit code.
func requireExitCode(t *testing.T, err error, code int) *exitCodeError {
	t.Helper()
	require.Error(t, err)
	var ece *exitCodeError
	require.True(t, errors.As(err, &ece), "want exitCodeError, got %T: %v", err, err)
	assert.Equal(t, code, ece.ExitCode(), ece.Error())
	return ece
}
