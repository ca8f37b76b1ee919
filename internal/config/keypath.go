package config

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// GetValue retrieves a value from a Config by key.
func GetValue(cfg *Config, key string) (any, error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}
	m, err := ToMap(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	val, ok := m[key]
	if !ok {
		return nil, fmt.Errorf("key %q not set", key)
	}
	return val, nil
}

// SetValue sets a value in a raw YAML map. The raw value is coerced to a
// bool or kept as a string.
func SetValue(data map[string]any, key string, rawValue string) error {
	if err := ValidateKey(key); err != nil {
		return err
	}
	data[key] = coerceValue(rawValue)
	return nil
}

// UnsetValue removes a key from a raw YAML map.
func UnsetValue(data map[string]any, key string) error {
	if err := ValidateKey(key); err != nil {
		return err
	}
	delete(data, key)
	return nil
}

// ValidateKey checks that key corresponds to a Config field. It uses yaml
// struct tags to build the valid key set.
func ValidateKey(key string) error {
	if key == "" {
		return fmt.Errorf("empty key")
	}
	keys := Keys()
	for _, k := range keys {
		if k == key {
			return nil
		}
	}
	if strings.Contains(key, ".") {
		return fmt.Errorf("key %q: config keys have no sub-keys", key)
	}
	return fmt.Errorf("unknown key %q; valid keys: %s", key, strings.Join(keys, ", "))
}

// Keys returns the sorted config keys.
func Keys() []string {
	t := reflect.TypeOf(Config{})
	keys := make([]string, 0, t.NumField())
	for i := range t.NumField() {
		tag := t.Field(i).Tag.Get("yaml")
		if tag == "" || tag == "-" {
			continue
		}
		if name := strings.Split(tag, ",")[0]; name != "" {
			keys = append(keys, name)
		}
	}
	sort.Strings(keys)
	return keys
}

// ToMap converts a Config to a map via YAML round-trip, omitting zero values.
func ToMap(cfg *Config) (map[string]any, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	if m == nil {
		m = make(map[string]any)
	}
	return m, nil
}

// FromMap decodes a raw map into a Config via YAML round-trip.
func FromMap(data map[string]any) (*Config, error) {
	out, err := yaml.Marshal(data)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(out, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// coerceValue parses "true" and "false" into bools and keeps everything else as a string.
func coerceValue(s string) any {
	if b, err := strconv.ParseBool(s); err == nil && (s == "true" || s == "false") {
		return b
	}
	return s
}
