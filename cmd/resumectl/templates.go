package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"resume-builder/internal/templates"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List catalog templates and their placeholders",
	RunE:  runTemplates,
}

func init() {
	rootCmd.AddCommand(templatesCmd)
}

func runTemplates(cmd *cobra.Command, args []string) error {
	catalog, err := templates.LoadCatalog()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-22s %-20s %s\n", "ID", "Name", "Placeholders")
	fmt.Fprintln(out, strings.Repeat("─", 70))
	for _, t := range catalog.List() {
		fmt.Fprintf(out, "%-22s %-20s %s\n", t.ID, t.Name, strings.Join(t.Placeholders, ", "))
	}
	return nil
}
