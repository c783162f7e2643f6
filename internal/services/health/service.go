// Package health reports liveness and the state of the backing services.
package health

import (
	"context"
	"time"
)

// Backend states reported for the database.
const (
	DatabaseUp     = "up"
	DatabaseDown   = "down"
	DatabaseMemory = "memory"
)

const pingTimeout = 2 * time.Second

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Report is the /health payload. A down database does not clear OK.
type Report struct {
	OK          bool   `json:"ok"`
	Database    string `json:"database"`
	LLM         string `json:"llm"`
	LatexEngine string `json:"latexEngine"`
}

// Service encapsulates health-related checks.
type Service struct {
	DB          Pinger
	LLMProvider string
	LatexEngine string
}

// NewService constructs a new health service. db may be nil for memory repos.
func NewService(db Pinger, llmProvider, latexEngine string) *Service {
	return &Service{DB: db, LLMProvider: llmProvider, LatexEngine: latexEngine}
}

// Status pings the database, if any, and reports the configured providers.
func (s *Service) Status(ctx context.Context) Report {
	r := Report{OK: true, Database: DatabaseMemory, LLM: s.LLMProvider, LatexEngine: s.LatexEngine}
	if s.DB == nil {
		return r
	}
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := s.DB.PingContext(pingCtx); err != nil {
		r.Database = DatabaseDown
		return r
	}
	r.Database = DatabaseUp
	return r
}
