package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"resume-builder/internal/parse"
	"resume-builder/internal/uploads"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Extract text from a PDF, DOCX or text resume and print the structured parse",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read resume: %w", err)
	}
	text, err := uploads.ExtractText(data, uploads.DetectMimeType(data, args[0]))
	if err != nil {
		return err
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(parse.Parse(text))
}
