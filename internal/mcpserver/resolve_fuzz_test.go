package mcpserver

import "testing"

func FuzzResolveSnapshot(f *testing.F) {
	f.Add(".")
	f.Add("")
	f.Add("/")
	f.Add("../../etc/passwd")
	f.Add(string(make([]byte, 4096)))
	f.Add("path/with\x00null")

	f.Fuzz(func(t *testing.T, input string) {
		// ResolveSnapshot should never panic on any input.
		ResolveSnapshot(input) //nolint:errcheck // fuzz: testing crash-freedom
	})
}
