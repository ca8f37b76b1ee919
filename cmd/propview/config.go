package main

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/anonkit/propview/internal/config"
)

// Config command flags.
var configGlobal bool

// configCmd is the parent command for config subcommands.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and modify propview configuration",
	Long: `View and modify propview configuration.

Propview reads configuration from .propview.yaml in the working directory.
A global config at ~/.config/propview/config.yaml provides defaults.
Local settings override global settings; flags override both.

Keys: format, mode, no_color, messages, zero_range.`,
}

// configGetCmd prints a configuration value.
var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Long: `Get a configuration value from the merged global and local config.

Examples:
  propview config get format
  propview config get --global mode`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigGet,
}

// configSetCmd sets a configuration value.
var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value in the config file.

By default, writes to .propview.yaml in the current directory.
Use --global to write to ~/.config/propview/config.yaml.

Note: This does a YAML round-trip and will not preserve comments.

Examples:
  propview config set format json
  propview config set zero_range omit
  propview config set --global no_color true`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

// configListCmd lists all configuration values with their source.
var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration values",
	Long: `List all configuration values, annotated with whether each comes from
the local config (.propview.yaml) or the global config.`,
	Args: cobra.NoArgs,
	RunE: runConfigList,
}

func init() {
	configGetCmd.Flags().BoolVar(&configGlobal, "global", false, "use global config (~/.config/propview/config.yaml)")
	configSetCmd.Flags().BoolVar(&configGlobal, "global", false, "write to global config (~/.config/propview/config.yaml)")

	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	var (
		cfg *config.Config
		err error
	)
	if configGlobal {
		cfg, err = config.LoadGlobal()
	} else {
		cfg, err = loadUnvalidated()
	}
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	val, err := config.GetValue(cfg, args[0])
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), val)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, rawValue := args[0], args[1]

	targetPath := filepath.Join(".", config.FileName)
	if configGlobal {
		targetPath = config.GlobalConfigPath()
	}

	data, err := config.LoadRaw(targetPath)
	if err != nil {
		return fmt.Errorf("loading config file: %w", err)
	}
	if err := config.SetValue(data, key, rawValue); err != nil {
		return err
	}

	// Round-trip validate before writing.
	validCfg, err := config.FromMap(data)
	if err != nil {
		return fmt.Errorf("invalid config after set: %w", err)
	}
	if err := config.Validate(validCfg); err != nil {
		return err
	}

	if err := config.WriteFile(targetPath, data); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, rawValue)
	return nil
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()

	globalCfg, err := config.LoadGlobal()
	if err != nil {
		return fmt.Errorf("loading global config: %w", err)
	}
	localCfg, err := config.Load(".")
	if err != nil {
		return fmt.Errorf("loading local config: %w", err)
	}
	globalMap, err := config.ToMap(globalCfg)
	if err != nil {
		return err
	}
	localMap, err := config.ToMap(localCfg)
	if err != nil {
		return err
	}

	if len(globalMap) == 0 && len(localMap) == 0 {
		_, _ = fmt.Fprintln(w, "No configuration set.")
		_, _ = fmt.Fprintln(w, "Run 'propview config set <key> <value>' to set values.")
		return nil
	}

	globalColor := color.New(color.FgCyan)
	localColor := color.New(color.FgGreen)
	for _, k := range config.Keys() {
		if v, ok := localMap[k]; ok {
			_, _ = fmt.Fprintf(w, "%s = %v %s\n", k, v, localColor.Sprint("(local)"))
			continue
		}
		if v, ok := globalMap[k]; ok {
			_, _ = fmt.Fprintf(w, "%s = %v %s\n", k, v, globalColor.Sprint("(global)"))
		}
	}
	return nil
}

// loadUnvalidated returns the merged global and local config as written.
func loadUnvalidated() (*config.Config, error) {
	global, err := config.LoadGlobal()
	if err != nil {
		return nil, err
	}
	local, err := config.Load(".")
	if err != nil {
		return nil, err
	}
	return config.Combine(global, local), nil
}
