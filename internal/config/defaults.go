package config

// Default returns the built-in configuration. Path fields left empty here
// are derived from DataDir during normalization.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: "~/.local/share/phosphor",
			LogDir:  "~/.local/share/phosphor/logs",
		},
		Show: Show{
			Seed: 0,
		},
		Logging: Logging{
			Format: "console",
			Level:  "info",
		},
	}
}
