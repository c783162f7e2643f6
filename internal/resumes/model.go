package resumes

import (
	"encoding/json"
	"time"

	"resume-builder/internal/llm"
)

// Resume is a generated resume tailored to one job.
type Resume struct {
	ID             string
	UserID         string
	Content        string
	JobID          string
	JobTitle       string
	CompanyName    string
	JobDescription string
	Model          string
	Usage          llm.Usage
	// Advice is the current career advice document, if any.
	Advice            json.RawMessage
	AdviceGeneratedAt *time.Time
	CreatedAt         time.Time
}

// HasAdvice reports whether current advice is stored on the resume.
func (r Resume) HasAdvice() bool {
	return len(r.Advice) > 0 && string(r.Advice) != "null"
}
