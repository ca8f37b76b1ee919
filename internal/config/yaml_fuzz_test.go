package config

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func FuzzConfigParse(f *testing.F) {
	f.Add([]byte("format: json\nmode: output\n"))
	f.Add([]byte(""))
	f.Add([]byte("---"))
	f.Add([]byte("no_color: true\nzero_range: omit\n"))
	f.Add([]byte("{invalid"))

	f.Fuzz(func(t *testing.T, data []byte) {
		var cfg Config
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return
		}
		// Validation must not panic on anything that decodes.
		_ = Validate(&cfg)
		yaml.Marshal(&cfg) //nolint:errcheck,gosec // fuzz: testing crash-freedom
	})
}
