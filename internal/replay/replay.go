// Copyright 2026 The Propview Authors
// SPDX-License-Identifier: MIT

// Package replay drives a property view from a recorded script of model
// change notifications and renders the view after every step.
package replay

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/anonkit/propview/internal/event"
	"github.com/anonkit/propview/internal/observer"
	"github.com/anonkit/propview/internal/properties"
	"github.com/anonkit/propview/internal/render"
)

// ErrExpectation is returned when a step's expect_enabled does not hold.
var ErrExpectation = errors.New("unexpected view state")

// Options configure a replay run.
type Options struct {
	// Mode is used when the script does not name one.
	Mode properties.Mode
	// Build is passed to the tree builder. Its catalog also labels the
	// rendered column headers.
	Build properties.Options
	// Renderer and Out are optional; without them nothing is written.
	Renderer render.Renderer
	Out      io.Writer
	Logger   *slog.Logger
}

// Summary describes a finished replay.
type Summary struct {
	SessionID uuid.UUID
	Steps     int
	// Refreshes counts tree swaps, including resets.
	Refreshes int
	// Enabled is the view state after the last step.
	Enabled bool
}

// Run publishes the script's notifications on a fresh bus observed by a
// single view. It stops at the first failing step or when ctx is done.
func Run(ctx context.Context, s *Script, opts Options) (*Summary, error) {
	mode := opts.Mode
	if s.Mode != "" {
		m, err := properties.ParseMode(s.Mode)
		if err != nil {
			return nil, err
		}
		mode = m
	}
	models, err := s.loadSnapshots()
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	sum := &Summary{SessionID: uuid.New()}
	logger = logger.With("session", sum.SessionID.String())

	reset := event.Topic(s.Reset)
	if s.Reset == "none" {
		reset = observer.NoReset
	}
	bus := event.NewBus()
	view := observer.New(bus, observer.Options{
		Mode:   mode,
		Target: event.Topic(s.Target),
		Reset:  reset,
		Build:  opts.Build,
		Logger: logger,
		Renderer: observer.RendererFunc(func(*properties.Tree, bool) {
			sum.Refreshes++
		}),
	})
	defer view.Close()

	for i, st := range s.Steps {
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		ev := event.Event{Topic: event.Topic(st.Topic), Source: sum.SessionID}
		if st.Snapshot != "" {
			ev.Data = models[s.snapshotPath(st.Snapshot)]
		}
		bus.Publish(ev)
		sum.Steps++
		logger.Debug("replayed notification", "step", i+1, "topic", st.Topic, "enabled", view.Enabled())

		if opts.Renderer != nil && opts.Out != nil {
			if err := writeStep(opts, mode, view, i, st); err != nil {
				return sum, err
			}
		}
		if st.Expect != nil && *st.Expect != view.Enabled() {
			return sum, fmt.Errorf("%w: step %d (%s): enabled is %t, want %t",
				ErrExpectation, i+1, st.Topic, view.Enabled(), *st.Expect)
		}
	}
	sum.Enabled = view.Enabled()
	logger.Info("replay finished", "steps", sum.Steps, "refreshes", sum.Refreshes, "enabled", sum.Enabled)
	return sum, nil
}

func writeStep(opts Options, mode properties.Mode, view *observer.Observer, i int, st Step) error {
	if i > 0 {
		if sep := render.Separator(opts.Renderer.Name()); sep != "" {
			if _, err := io.WriteString(opts.Out, sep); err != nil {
				return fmt.Errorf("write step %d: %w", i+1, err)
			}
		}
	}
	doc := render.Document{
		Mode:     mode,
		Source:   fmt.Sprintf("step %d: %s", i+1, st.Topic),
		Tree:     view.Tree(),
		Enabled:  view.Enabled(),
		Messages: opts.Build.Messages,
	}
	if err := opts.Renderer.Render(doc, opts.Out); err != nil {
		return fmt.Errorf("step %d: %w", i+1, err)
	}
	return nil
}
