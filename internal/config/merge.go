package config

// Settings are the resolved options of a command run.
type Settings struct {
	Format    string
	Mode      string
	NoColor   bool
	Messages  string
	ZeroRange string
}

// Defaults used when neither flags nor config files set a value.
const (
	DefaultFormat    = "text"
	DefaultMode      = "input"
	DefaultZeroRange = "zero"
)

// Combine merges global and local configs. Local values take precedence;
// only non-zero local values override global values.
func Combine(global, local *Config) *Config {
	merged := *global
	if local.Format != "" {
		merged.Format = local.Format
	}
	if local.Mode != "" {
		merged.Mode = local.Mode
	}
	if local.NoColor != nil {
		merged.NoColor = local.NoColor
	}
	if local.Messages != "" {
		merged.Messages = local.Messages
	}
	if local.ZeroRange != "" {
		merged.ZeroRange = local.ZeroRange
	}
	return &merged
}

// Merge combines file-based config with CLI-provided settings.
// CLI values take precedence; zero-value CLI fields fall through to file
// config and then to the defaults.
func Merge(fileCfg *Config, cli Settings) Settings {
	result := cli

	if result.Format == "" {
		result.Format = orDefault(fileCfg.Format, DefaultFormat)
	}
	if result.Mode == "" {
		result.Mode = orDefault(fileCfg.Mode, DefaultMode)
	}
	// NoColor: CLI wins if true, otherwise file config.
	if !result.NoColor && fileCfg.NoColor != nil && *fileCfg.NoColor {
		result.NoColor = true
	}
	if result.Messages == "" {
		result.Messages = fileCfg.Messages
	}
	if result.ZeroRange == "" {
		result.ZeroRange = orDefault(fileCfg.ZeroRange, DefaultZeroRange)
	}
	return result
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
