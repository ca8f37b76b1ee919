package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	propviewlog "github.com/anonkit/propview/internal/log"
)

// Global flag values.
var (
	verbose bool
	quiet   bool
	noColor bool
)

// rootCmd is the base command for propview.
var rootCmd = &cobra.Command{
	Use:   "propview",
	Short: "Inspect the properties of an anonymization session",
	Long: `Propview is a property inspector for data anonymization sessions.
It reads snapshots of an anonymization model and shows the input dataset
(rows, outlier budget, attributes by role) or the selected transformation
of a result (groups, information loss, privacy criteria) as a tree.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		propviewlog.Setup(verbose, quiet)
		if noColor {
			color.NoColor = true
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)
}
