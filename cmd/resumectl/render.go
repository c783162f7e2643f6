package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"resume-builder/internal/latex"
	"resume-builder/internal/templates"
)

var (
	renderTemplate string
	renderFields   string
	renderOut      string
	renderPDF      bool
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Fill a catalog template from a JSON fields file",
	Long:  "Fills a catalog template with escaped field values and writes the LaTeX source, or the compiled PDF with --pdf.",
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderTemplate, "template", "t", "modern-professional", "catalog template id")
	renderCmd.Flags().StringVarP(&renderFields, "fields", "f", "", "JSON object of placeholder values")
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "output path (default: stdout)")
	renderCmd.Flags().BoolVar(&renderPDF, "pdf", false, "compile the filled template to PDF")
	_ = renderCmd.MarkFlagRequired("fields")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	if renderPDF && strings.TrimSpace(renderOut) == "" {
		return fmt.Errorf("--out is required with --pdf")
	}
	raw, err := os.ReadFile(renderFields)
	if err != nil {
		return fmt.Errorf("read fields: %w", err)
	}
	var fields map[string]string
	if err := json.Unmarshal(raw, &fields); err != nil {
		return fmt.Errorf("parse fields: %w", err)
	}

	svc := templates.NewService(templates.MustLoadCatalog(), templates.NewMemorySettingsRepo())
	source, err := svc.Render(renderTemplate, fields)
	if err != nil {
		return err
	}
	data := []byte(source)

	if renderPDF {
		cfg := loadConfig()
		compiler := latex.NewCompiler(latex.Options{
			Engine:  cfg.Latex.Engine,
			TempDir: cfg.Latex.TempDir,
			Passes:  cfg.Latex.Passes,
			Timeout: cfg.Latex.Timeout,
		})
		if data, err = compiler.Compile(cmd.Context(), source); err != nil {
			return err
		}
	}

	if strings.TrimSpace(renderOut) == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(renderOut, data, 0o644); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (%d bytes)\n", renderOut, len(data))
	return nil
}
