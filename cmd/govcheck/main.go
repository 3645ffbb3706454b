package main

import (
	"fmt"
	"os"

	"github.com/nsd23387/campaign-governance/internal/config"
	"github.com/nsd23387/campaign-governance/internal/logger"
)

func main() {
	settings, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load settings: %v\n", err)
		os.Exit(2)
	}

	log, err := logger.New(logger.Options{
		Level:         settings.LogLevel,
		HumanReadable: true,
		NoColor:       settings.NoColor,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}

	app := &AppContext{Settings: settings, Log: log}

	if err := newRootCmd(app).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
