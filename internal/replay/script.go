package replay

import (
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/anonkit/propview/internal/event"
	"github.com/anonkit/propview/internal/model"
	"github.com/anonkit/propview/internal/properties"
	"github.com/anonkit/propview/internal/testable"
)

// FS is the file system implementation used by this package.
var FS testable.FileSystem = testable.DefaultFS

// Script is a recorded sequence of model change notifications.
type Script struct {
	// Mode is the view the script drives. Empty means the caller decides.
	Mode string `yaml:"mode,omitempty"`
	// Target and Reset override the observer's default topics.
	Target string `yaml:"target,omitempty"`
	Reset  string `yaml:"reset,omitempty"`
	Steps  []Step `yaml:"steps"`

	// dir resolves relative snapshot paths.
	dir string
}

// Step publishes one notification.
type Step struct {
	Topic string `yaml:"topic"`
	// Snapshot is loaded and attached to model notifications. Relative
	// paths are resolved against the script's directory.
	Snapshot string `yaml:"snapshot,omitempty"`
	// Expect, when set, fails the replay unless the view is enabled
	// (true) or reset (false) after the step.
	Expect *bool `yaml:"expect_enabled,omitempty"`
}

// Load reads and validates the script at path.
func Load(path string) (*Script, error) {
	data, err := FS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.dir = filepath.Dir(path)
	return s, nil
}

// Parse decodes and validates a YAML script. Relative snapshot paths are
// resolved against the working directory.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode script: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the script and returns all problems at once.
func (s *Script) Validate() error {
	var errs []string
	if s.Mode != "" {
		if _, err := properties.ParseMode(s.Mode); err != nil {
			errs = append(errs, fmt.Sprintf("mode: %v", err))
		}
	}
	if s.Target != "" {
		if _, err := event.ParseTopic(s.Target); err != nil {
			errs = append(errs, fmt.Sprintf("target: %v", err))
		}
	}
	if s.Reset != "" && s.Reset != "none" {
		if _, err := event.ParseTopic(s.Reset); err != nil {
			errs = append(errs, fmt.Sprintf("reset: %v", err))
		}
	}
	if len(s.Steps) == 0 {
		errs = append(errs, "steps: must not be empty")
	}
	for i, st := range s.Steps {
		field := fmt.Sprintf("steps[%d]", i)
		topic, err := event.ParseTopic(st.Topic)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s.topic: %v", field, err))
			continue
		}
		if st.Snapshot != "" && topic != event.TopicModel {
			errs = append(errs, fmt.Sprintf("%s.snapshot: only allowed on %s steps", field, event.TopicModel))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("script validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// snapshotPath resolves a step's snapshot path.
func (s *Script) snapshotPath(p string) string {
	if filepath.IsAbs(p) || s.dir == "" {
		return p
	}
	return filepath.Join(s.dir, p)
}

// loadSnapshots loads every snapshot the script references, once per path.
func (s *Script) loadSnapshots() (map[string]*model.Model, error) {
	models := make(map[string]*model.Model)
	for _, st := range s.Steps {
		if st.Snapshot == "" {
			continue
		}
		p := s.snapshotPath(st.Snapshot)
		if _, ok := models[p]; ok {
			continue
		}
		m, err := model.Load(p)
		if err != nil {
			return nil, err
		}
		models[p] = m
	}
	return models, nil
}
