package testable

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockFileSystem_InjectedFailures(t *testing.T) {
	m := &MockFileSystem{
		ReadFileFn:  func(string) ([]byte, error) { return nil, os.ErrPermission },
		WriteFileFn: func(string, []byte, os.FileMode) error { return os.ErrClosed },
	}
	_, err := m.ReadFile("any")
	assert.ErrorIs(t, err, os.ErrPermission)
	assert.ErrorIs(t, m.WriteFile("any", nil, 0o600), os.ErrClosed)
}

func TestMockFileSystem_FallsThroughToOS(t *testing.T) {
	var fs FileSystem = &MockFileSystem{}
	path := filepath.Join(t.TempDir(), "snapshot.yaml")

	require.NoError(t, fs.WriteFile(path, []byte("rows: 1\n"), 0o600))
	data, err := fs.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "rows: 1\n", string(data))

	info, err := fs.Stat(path)
	require.NoError(t, err)
	assert.False(t, info.IsDir())

	abs, err := fs.Abs(".")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(abs))
}
