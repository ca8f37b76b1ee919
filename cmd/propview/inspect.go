// Copyright 2026 The Propview Authors
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/anonkit/propview/internal/model"
	"github.com/anonkit/propview/internal/observer"
	"github.com/anonkit/propview/internal/properties"
	"github.com/anonkit/propview/internal/render"
)

// Inspect-specific flag values.
var (
	inspectView     viewFlags
	inspectOutput   string
	inspectCriteria bool
	inspectJobs     int
)

// inspectCmd renders the property view of one or more snapshots.
var inspectCmd = &cobra.Command{
	Use:   "inspect <snapshot>...",
	Short: "Show the property tree of anonymization snapshots",
	Long: `Show the property tree of one or more anonymization snapshots.

The input view lists the dataset: rows, allowed outliers and the attributes
grouped by role. The output view describes the selected transformation of a
result: outlying groups, information loss relative to the solution space,
neighbours, the transformation itself and the privacy criteria it satisfies.

A view whose snapshot lacks the data it needs (for example an output view of
a snapshot without a result) is shown as disabled.

Examples:
  propview inspect session.yaml
  propview inspect --mode output --format json run1.yaml run2.yaml
  propview inspect --criteria session.yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInspect,
}

func init() {
	inspectView.register(inspectCmd.Flags())
	inspectCmd.Flags().StringVarP(&inspectOutput, "output", "o", "", "write to this file instead of stdout")
	inspectCmd.Flags().BoolVar(&inspectCriteria, "criteria", false, "describe only the privacy criteria")
	inspectCmd.Flags().IntVarP(&inspectJobs, "jobs", "j", 4, "snapshots loaded in parallel")
}

func runInspect(cmd *cobra.Command, args []string) error {
	if inspectJobs < 1 {
		return exitError(ExitInvalidArgs, "propview: --jobs must be at least 1, got %d", inspectJobs)
	}
	setup, err := resolveView(inspectView)
	if err != nil {
		return err
	}

	models, err := loadSnapshots(cmd, args)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	for i, m := range models {
		if i > 0 {
			buf.WriteString(render.Separator(setup.Renderer.Name()))
		}
		doc, err := buildDocument(setup, args[i], m)
		if err != nil {
			return exitError(ExitRenderFailure, "propview: %s: %v", args[i], err)
		}
		if err := setup.Renderer.Render(doc, &buf); err != nil {
			return exitError(ExitRenderFailure, "propview: %v", err)
		}
	}

	if inspectOutput != "" {
		if err := cmdFS.WriteFile(inspectOutput, buf.Bytes(), 0o644); err != nil { //nolint:gosec // output is meant to be readable
			return exitError(ExitRenderFailure, "propview: cannot write %q (%v)", inspectOutput, err)
		}
		slog.Info("wrote properties", "path", inspectOutput, "snapshots", len(models))
		return nil
	}
	if _, err := io.Copy(cmd.OutOrStdout(), &buf); err != nil {
		return exitError(ExitRenderFailure, "propview: %v", err)
	}
	return nil
}

// loadSnapshots loads every path concurrently and returns the models in
// argument order. The first failure cancels the remaining loads.
func loadSnapshots(cmd *cobra.Command, paths []string) ([]*model.Model, error) {
	models := make([]*model.Model, len(paths))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(inspectJobs)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			m, err := model.Load(path)
			if err != nil {
				return err
			}
			models[i] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, exitError(ExitInvalidSnapshot, "propview: %v", err)
	}
	return models, nil
}

// buildDocument builds the view of m. A model that cannot fill the view
// yields a disabled document.
func buildDocument(setup *viewSetup, source string, m *model.Model) (render.Document, error) {
	doc := render.Document{
		Mode:     setup.Mode,
		Source:   source,
		Messages: setup.Build.Messages,
	}
	if inspectCriteria {
		doc.Mode = properties.ModeOutput
		doc.Tree = properties.DescribeCriteria(m.Config(), setup.Build)
		doc.Enabled = !doc.Tree.IsEmpty()
		return doc, nil
	}

	tree, err := observer.Build(m, setup.Mode, setup.Build)
	switch {
	case errors.Is(err, observer.ErrNothingToDisplay):
		slog.Debug("view disabled", "snapshot", source, "mode", setup.Mode)
		doc.Tree = properties.Empty()
	case err != nil:
		return doc, fmt.Errorf("build %s view: %w", setup.Mode, err)
	default:
		doc.Tree = tree
		doc.Enabled = true
	}
	return doc, nil
}
