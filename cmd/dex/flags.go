package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/ersonp/dex/internal/infrastructure/config"
)

// rootFlags override the config file and DEX_* environment when set.
type rootFlags struct {
	endpoint string
	timeout  time.Duration
	logLevel string
	logFile  string
}

func (f *rootFlags) register(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringVar(&f.endpoint, "endpoint", "", "Catalog URL (overrides catalog.endpoint)")
	pf.DurationVar(&f.timeout, "timeout", 0, "Fetch timeout, e.g. 10s (overrides catalog.timeout)")
	pf.StringVar(&f.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides log.level)")
	pf.StringVar(&f.logFile, "log-file", "", "Write logs to this file instead of stderr (overrides log.file)")
}

// apply copies every flag that was given onto cfg.
func (f rootFlags) apply(cfg *config.Config) {
	if f.endpoint != "" {
		cfg.Catalog.Endpoint = f.endpoint
	}
	if f.timeout > 0 {
		cfg.Catalog.Timeout = f.timeout
	}
	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
	}
	if f.logFile != "" {
		cfg.Log.File = f.logFile
	}
}
