// Package config handles mdlxscript configuration loading and management.
package config

// Config holds all tool settings.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	History HistoryConfig `yaml:"history"`
	Script  ScriptConfig  `yaml:"script"`

	Path string `yaml:"-"` // file the config was loaded from
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// HistoryConfig bounds the undo/redo stacks kept by the script runner.
type HistoryConfig struct {
	MaxDepth int `yaml:"max_depth"` // 0 keeps every entry
}

// ScriptConfig holds script runner settings.
type ScriptConfig struct {
	StopOnError bool `yaml:"stop_on_error"`
	Color       bool `yaml:"color"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
		History: HistoryConfig{
			MaxDepth: 100,
		},
		Script: ScriptConfig{
			StopOnError: true,
			Color:       true,
		},
	}
}
