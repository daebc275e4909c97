package config

import "flag"

var (
	flagConfig       = flag.String("config", "", "Path to config file")
	flagDebug        = flag.Bool("debug", false, "Enable debug logging")
	flagHistoryDepth = flag.Int("history-depth", -1, "Maximum undo history depth (0 = unbounded)")
	flagNoColor      = flag.Bool("no-color", false, "Disable colored output")
	flagKeepGoing    = flag.Bool("keep-going", false, "Continue running edits after a failure")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the positional arguments left after flag parsing.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagHistoryDepth >= 0 {
		cfg.History.MaxDepth = *flagHistoryDepth
	}
	if *flagNoColor {
		cfg.Script.Color = false
	}
	if *flagKeepGoing {
		cfg.Script.StopOnError = false
	}
}
