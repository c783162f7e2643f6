package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("resumectl %v: %v", args, err)
	}
	return out.String()
}

func TestTemplatesCommandListsCatalog(t *testing.T) {
	out := execute(t, "templates")
	for _, id := range []string{"modern-professional", "creative-designer", "academic-scholar"} {
		if !strings.Contains(out, id) {
			t.Fatalf("expected %s in output:\n%s", id, out)
		}
	}
}

func TestRenderCommandEscapesFields(t *testing.T) {
	dir := t.TempDir()
	fields := filepath.Join(dir, "fields.json")
	if err := os.WriteFile(fields, []byte(`{"NAME":"Jane & Co"}`), 0o600); err != nil {
		t.Fatalf("write fields: %v", err)
	}
	outPath := filepath.Join(dir, "resume.tex")
	execute(t, "render", "--template", "modern-professional", "--fields", fields, "--out", outPath)

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	src := string(data)
	if !strings.Contains(src, `Jane \& Co`) {
		t.Fatalf("expected escaped name in output")
	}
	if strings.Contains(src, "{{SUMMARY}}") {
		t.Fatalf("unfilled placeholders left in output")
	}
}

func TestRenderPDFRequiresOutBeforeCompiling(t *testing.T) {
	dir := t.TempDir()
	fields := filepath.Join(dir, "fields.json")
	if err := os.WriteFile(fields, []byte(`{"NAME":"Jane"}`), 0o600); err != nil {
		t.Fatalf("write fields: %v", err)
	}
	t.Setenv("LATEX_TEMP_DIR", filepath.Join(dir, "missing"))
	renderOut = ""
	t.Cleanup(func() { renderPDF = false })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"render", "--fields", fields, "--pdf"})
	err := rootCmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "--out is required") {
		t.Fatalf("expected --out error, got %v", err)
	}
}

func TestParseCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	if err := os.WriteFile(path, []byte("Jane Doe\njane@example.com\n"), 0o600); err != nil {
		t.Fatalf("write resume: %v", err)
	}
	out := execute(t, "parse", path)
	if !strings.Contains(out, `"name": "Jane Doe"`) || !strings.Contains(out, "jane@example.com") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}
