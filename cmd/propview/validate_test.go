package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_AllValid(t *testing.T) {
	sandbox(t)
	cmd, stdout, stderr := newTestCmd()
	cmd.SetArgs([]string{"validate", "input.yaml", "output.yaml"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "valid: input.yaml\nvalid: output.yaml\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestValidate_ReportsEveryInvalidSnapshot(t *testing.T) {
	dir := sandbox(t)
	writeTestFile(t, dir, "dup.yaml", inputSnapshot+"  - kind: k-anonymity\n    k: 3\n")
	writeTestFile(t, dir, "future.yaml", "format_version: v2.0.0\nrows: 1\n")

	cmd, stdout, stderr := newTestCmd()
	cmd.SetArgs([]string{"validate", "dup.yaml", "input.yaml", "future.yaml"})
	ece := requireExitCode(t, cmd.Execute(), ExitInvalidSnapshot)

	assert.Equal(t, "propview: 2 of 3 snapshot(s) invalid", ece.Error())
	assert.Equal(t, "valid: input.yaml\n", stdout.String())
	assert.Contains(t, stderr.String(), "k-anonymity configured more than once")
	assert.Contains(t, stderr.String(), "unsupported snapshot format")
}
