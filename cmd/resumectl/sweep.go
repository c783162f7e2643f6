package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"resume-builder/internal/latex"
)

var (
	sweepDir    string
	sweepMaxAge time.Duration
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Remove stale LaTeX work directories once",
	RunE:  runSweep,
}

func init() {
	sweepCmd.Flags().StringVar(&sweepDir, "dir", "", "temp root (default: LATEX_TEMP_DIR)")
	sweepCmd.Flags().DurationVar(&sweepMaxAge, "max-age", 0, "minimum age to remove (default: LATEX_SWEEP_MAX_AGE)")
	rootCmd.AddCommand(sweepCmd)
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	dir := sweepDir
	if dir == "" {
		dir = cfg.Latex.TempDir
	}
	maxAge := sweepMaxAge
	if maxAge <= 0 {
		maxAge = cfg.Latex.SweepMaxAge
	}
	n, err := latex.Sweep(dir, maxAge, time.Now())
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "removed %d work directories from %s\n", n, dir)
	return nil
}
