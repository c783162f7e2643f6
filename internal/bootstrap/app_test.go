package bootstrap

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"resume-builder/internal/llm"
	"resume-builder/internal/services/health"
	"resume-builder/internal/shared/config"
)

func devConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		Env:             "dev",
		ObjectStoreType: "local",
		LocalStoreDir:   t.TempDir(),
		CORSAllowOrigin: []string{"http://localhost:3000"},
		LLM:             config.LLMConfig{Provider: "groq"},
		Latex:           config.LatexConfig{Engine: "pdflatex", TempDir: t.TempDir()},
	}
}

func TestBuildDevFallsBackToMemoryAndPlaceholder(t *testing.T) {
	app, err := Build(devConfig(t))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if app.DB != nil {
		t.Fatal("expected memory repositories without DATABASE_URL")
	}
	if _, ok := app.LLM.(llm.PlaceholderClient); !ok {
		t.Fatalf("expected placeholder LLM without a key, got %T", app.LLM)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var report health.Report
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if report.Database != health.DatabaseMemory || report.LLM != "none" || report.LatexEngine != "pdflatex" {
		t.Fatalf("unexpected report %+v", report)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/templates", nil)
	resp = httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("templates: expected 200, got %d", resp.Code)
	}
}

func TestBuildRequiresSecretsOutsideDev(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{name: "database url", mutate: func(c *config.Config) { c.Env = "production" }},
		{name: "s3 bucket", mutate: func(c *config.Config) { c.ObjectStoreType = "s3" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := devConfig(t)
			tc.mutate(&cfg)
			if _, err := Build(cfg); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
