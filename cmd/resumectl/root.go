package main

import (
	"github.com/spf13/cobra"

	"resume-builder/internal/shared/config"
)

var rootCmd = &cobra.Command{
	Use:           "resumectl",
	Short:         "Operate the resume builder backend",
	Long:          "resumectl runs migrations, sweeps LaTeX work directories and renders catalog templates offline.",
	SilenceUsage:  true,
	SilenceErrors: false,
}

// loadConfig reads the same environment the API server uses.
func loadConfig() config.Config {
	return config.Load()
}
