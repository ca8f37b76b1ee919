package main

import (
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/pflag"

	"github.com/anonkit/propview/internal/config"
	"github.com/anonkit/propview/internal/messages"
	"github.com/anonkit/propview/internal/properties"
	"github.com/anonkit/propview/internal/render"
)

// viewFlags holds the flags shared by commands that render property views.
type viewFlags struct {
	Mode      string
	Format    string
	Messages  string
	ZeroRange string
}

// register adds the view flags to fs.
func (f *viewFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.Mode, "mode", "m", "", "view to build: input, output (default input)")
	fs.StringVarP(&f.Format, "format", "f", "", "output format: text, json, yaml (default text)")
	fs.StringVar(&f.Messages, "messages", "", "TOML file overriding property labels")
	fs.StringVar(&f.ZeroRange, "zero-range", "", "relative loss for a lattice without range: zero, omit (default zero)")
}

// viewSetup is everything a command needs to build and render views.
type viewSetup struct {
	Settings config.Settings
	Mode     properties.Mode
	Renderer render.Renderer
	Build    properties.Options
}

// loadFileConfig combines the global and working directory configs and
// validates the result.
func loadFileConfig() (*config.Config, error) {
	global, err := config.LoadGlobal()
	if err != nil {
		return nil, exitError(ExitInvalidArgs, "propview: loading global config: %v", err)
	}
	local, err := config.Load(".")
	if err != nil {
		return nil, exitError(ExitInvalidArgs, "propview: loading config: %v", err)
	}
	merged := config.Combine(global, local)
	if err := config.Validate(merged); err != nil {
		return nil, exitError(ExitInvalidArgs, "propview: %v", err)
	}
	return merged, nil
}

// resolveView merges config files and CLI flags. Flags win; unset flags
// fall through to the config files and then to the defaults.
func resolveView(flags viewFlags) (*viewSetup, error) {
	fileCfg, err := loadFileConfig()
	if err != nil {
		return nil, err
	}
	s := config.Merge(fileCfg, config.Settings{
		Format:    flags.Format,
		Mode:      flags.Mode,
		NoColor:   noColor,
		Messages:  flags.Messages,
		ZeroRange: flags.ZeroRange,
	})
	if s.NoColor {
		color.NoColor = true
	}

	mode, err := properties.ParseMode(s.Mode)
	if err != nil {
		return nil, exitError(ExitInvalidArgs, "propview: %v", err)
	}
	zeroRange, err := properties.ParseZeroRangePolicy(s.ZeroRange)
	if err != nil {
		return nil, exitError(ExitInvalidArgs, "propview: %v", err)
	}
	r, err := render.Get(s.Format)
	if err != nil {
		return nil, exitError(ExitInvalidArgs, "propview: %v", err)
	}
	catalog, err := messages.Load(s.Messages)
	if err != nil {
		return nil, exitError(ExitInvalidArgs, "propview: %v", err)
	}

	slog.Debug("resolved view settings",
		"mode", mode, "format", s.Format, "zero_range", zeroRange, "messages", s.Messages)
	return &viewSetup{
		Settings: s,
		Mode:     mode,
		Renderer: r,
		Build: properties.Options{
			Messages:  catalog,
			Logger:    slog.Default(),
			ZeroRange: zeroRange,
		},
	}, nil
}
