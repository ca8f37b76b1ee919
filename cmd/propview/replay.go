package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anonkit/propview/internal/replay"
)

// Replay-specific flag values.
var (
	replayView    viewFlags
	replaySummary bool
)

// replayCmd drives a property view from a script of notifications.
var replayCmd = &cobra.Command{
	Use:   "replay <script>",
	Short: "Replay model change notifications against a property view",
	Long: `Replay a YAML script of model change notifications against a single
property view and render the view after every step.

A script names the view's mode and a list of steps. Each step publishes one
notification topic; "model" steps may load a snapshot that replaces the
model. Steps may assert the view state with expect_enabled.

  mode: output
  steps:
    - topic: model
      snapshot: run.yaml
    - topic: output
      expect_enabled: true
    - topic: input
      expect_enabled: false

The output view rebuilds on "output" and resets on "input"; the input view
rebuilds on "input". Both rebuild on selected-attribute, attribute-type,
metric, max-outliers and data-type. --mode overrides the script's mode.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayView.register(replayCmd.Flags())
	replayCmd.Flags().BoolVar(&replaySummary, "summary", false, "print a summary line after the last step")
}

func runReplay(cmd *cobra.Command, args []string) error {
	setup, err := resolveView(replayView)
	if err != nil {
		return err
	}

	script, err := replay.Load(args[0])
	if err != nil {
		return exitError(ExitInvalidSnapshot, "propview: %v", err)
	}
	if replayView.Mode != "" {
		script.Mode = replayView.Mode
	}

	sum, err := replay.Run(cmd.Context(), script, replay.Options{
		Mode:     setup.Mode,
		Build:    setup.Build,
		Renderer: setup.Renderer,
		Out:      cmd.OutOrStdout(),
	})
	switch {
	case errors.Is(err, replay.ErrExpectation):
		return exitError(ExitExpectationFailed, "propview: %v", err)
	case err != nil && sum == nil:
		return exitError(ExitInvalidSnapshot, "propview: %v", err)
	case err != nil:
		return exitError(ExitRenderFailure, "propview: %v", err)
	}

	if replaySummary {
		state := "disabled"
		if sum.Enabled {
			state = "enabled"
		}
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "replayed %d steps (%d refreshes), view %s, session %s\n",
			sum.Steps, sum.Refreshes, state, sum.SessionID)
	}
	return nil
}
