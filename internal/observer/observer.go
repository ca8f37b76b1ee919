// Copyright 2026 The Propview Authors
// SPDX-License-Identifier: MIT

// Package observer keeps a property tree in sync with a model that changes
// through notifications on an event bus.
//
// On every relevant notification the observer either resets (disabled, empty
// tree) or builds a complete new tree from the current model and swaps it in
// with a single atomic store. Readers therefore only ever see a finished tree.
package observer

import (
	"errors"
	"log/slog"
	"sync/atomic"

	"github.com/anonkit/propview/internal/event"
	"github.com/anonkit/propview/internal/model"
	"github.com/anonkit/propview/internal/properties"
)

// ErrNothingToDisplay is returned by Snapshot when the model lacks the data
// needed for the observer's mode.
var ErrNothingToDisplay = errors.New("nothing to display")

// Renderer is notified after every tree swap. Implementations are expected
// to redraw the tree with all nodes expanded.
type Renderer interface {
	Refresh(tree *properties.Tree, enabled bool)
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(tree *properties.Tree, enabled bool)

// Refresh calls f.
func (f RendererFunc) Refresh(tree *properties.Tree, enabled bool) { f(tree, enabled) }

// rebuildTopics trigger a rebuild in every mode.
var rebuildTopics = []event.Topic{
	event.TopicSelectedAttribute,
	event.TopicAttributeType,
	event.TopicMetric,
	event.TopicMaxOutliers,
	event.TopicDataType,
}

// DefaultTopics returns the target and reset topics of a mode. An input view
// rebuilds when the input changes; an output view rebuilds when the output
// changes and resets when a new input is loaded.
func DefaultTopics(mode properties.Mode) (target, reset event.Topic) {
	if mode == properties.ModeOutput {
		return event.TopicOutput, event.TopicInput
	}
	return event.TopicInput, ""
}

// Options configure an Observer.
type Options struct {
	Mode properties.Mode
	// Target triggers a rebuild. Defaults to DefaultTopics(Mode).
	Target event.Topic
	// Reset clears the tree. Defaults to DefaultTopics(Mode); use NoReset to disable.
	Reset event.Topic
	// Build is passed to the tree builder.
	Build properties.Options
	// Renderer is optional.
	Renderer Renderer
	Logger   *slog.Logger
}

// NoReset disables the reset topic when set as Options.Reset.
const NoReset event.Topic = "-"

// Observer owns the tree shown for one mode.
type Observer struct {
	bus     *event.Bus
	opts    Options
	subs    []event.Subscription
	model   *model.Model
	enabled atomic.Bool
	tree    atomic.Pointer[properties.Tree]
}

// New creates an observer subscribed to bus. It starts in the reset state
// and has no model until a TopicModel notification arrives.
func New(bus *event.Bus, opts Options) *Observer {
	target, reset := DefaultTopics(opts.Mode)
	if opts.Target == "" {
		opts.Target = target
	}
	switch opts.Reset {
	case "":
		opts.Reset = reset
	case NoReset:
		opts.Reset = ""
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Build.Logger == nil {
		opts.Build.Logger = opts.Logger
	}

	o := &Observer{bus: bus, opts: opts}
	o.tree.Store(properties.Empty())

	topics := append([]event.Topic{event.TopicModel, opts.Target}, rebuildTopics...)
	if opts.Reset != "" {
		topics = append(topics, opts.Reset)
	}
	seen := make(map[event.Topic]bool, len(topics))
	for _, t := range topics {
		if seen[t] {
			continue
		}
		seen[t] = true
		o.subs = append(o.subs, bus.Subscribe(t, o.Update))
	}
	o.Reset()
	return o
}

// Close unsubscribes the observer from the bus.
func (o *Observer) Close() {
	for _, s := range o.subs {
		o.bus.Unsubscribe(s)
	}
	o.subs = nil
}

// Mode returns the mode the observer builds trees for.
func (o *Observer) Mode() properties.Mode { return o.opts.Mode }

// Enabled reports whether the observer currently displays data.
func (o *Observer) Enabled() bool { return o.enabled.Load() }

// Tree returns the current tree. It is never nil.
func (o *Observer) Tree() *properties.Tree { return o.tree.Load() }

// Model returns the model the observer reads from, or nil.
func (o *Observer) Model() *model.Model { return o.model }

// Update handles a notification.
func (o *Observer) Update(ev event.Event) {
	switch {
	case o.opts.Reset != "" && ev.Topic == o.opts.Reset:
		o.opts.Logger.Debug("resetting properties", "mode", o.opts.Mode, "topic", ev.Topic)
		o.Reset()
	case ev.Topic == event.TopicModel:
		m, _ := ev.Data.(*model.Model)
		o.model = m
		o.Reset()
	case ev.Topic == o.opts.Target || isRebuildTopic(ev.Topic):
		o.rebuild(ev.Topic)
	}
}

// Reset disables the observer and clears its tree.
func (o *Observer) Reset() {
	o.swap(properties.Empty(), false)
}

func (o *Observer) rebuild(topic event.Topic) {
	tree, err := Build(o.model, o.opts.Mode, o.opts.Build)
	if err != nil {
		o.opts.Logger.Debug("no properties to display", "mode", o.opts.Mode, "topic", topic, "reason", err)
		o.Reset()
		return
	}
	o.swap(tree, true)
}

func (o *Observer) swap(tree *properties.Tree, enabled bool) {
	o.tree.Store(tree)
	o.enabled.Store(enabled)
	if o.opts.Renderer != nil {
		o.opts.Renderer.Refresh(tree, enabled)
	}
}

func isRebuildTopic(t event.Topic) bool {
	for _, r := range rebuildTopics {
		if r == t {
			return true
		}
	}
	return false
}
