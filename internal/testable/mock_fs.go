package testable

import "os"

// MockFileSystem is a test double for FileSystem. Each method has a
// corresponding function field. When the field is non-nil, the mock calls it;
// otherwise, it falls through to OsFileSystem.
type MockFileSystem struct {
	AbsFn       func(path string) (string, error)
	StatFn      func(name string) (os.FileInfo, error)
	ReadFileFn  func(name string) ([]byte, error)
	WriteFileFn func(name string, data []byte, perm os.FileMode) error
}

var real OsFileSystem

// Abs calls AbsFn if set, otherwise delegates to OsFileSystem.
func (m *MockFileSystem) Abs(path string) (string, error) {
	if m.AbsFn != nil {
		return m.AbsFn(path)
	}
	return real.Abs(path)
}

// Stat calls StatFn if set, otherwise delegates to OsFileSystem.
func (m *MockFileSystem) Stat(name string) (os.FileInfo, error) {
	if m.StatFn != nil {
		return m.StatFn(name)
	}
	return real.Stat(name)
}

// ReadFile calls ReadFileFn if set, otherwise delegates to OsFileSystem.
func (m *MockFileSystem) ReadFile(name string) ([]byte, error) {
	if m.ReadFileFn != nil {
		return m.ReadFileFn(name)
	}
	return real.ReadFile(name)
}

// WriteFile calls WriteFileFn if set, otherwise delegates to OsFileSystem.
func (m *MockFileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	if m.WriteFileFn != nil {
		return m.WriteFileFn(name, data, perm)
	}
	return real.WriteFile(name, data, perm)
}
