package resumes

import (
	"encoding/json"
	"time"

	"resume-builder/internal/llm"
)

type jobData struct {
	ID             string `json:"id"`
	JobTitle       string `json:"jobTitle"`
	CompanyName    string `json:"companyName"`
	JobDescription string `json:"jobDescription"`
}

type generateRequest struct {
	JobData  *jobData `json:"jobData"`
	JobID    string   `json:"jobId"`
	UserData any      `json:"userData"`
}

// ResumeResponse is the stored resume as returned to clients.
type ResumeResponse struct {
	ID                string          `json:"resumeId"`
	ResumeContent     string          `json:"resumeContent"`
	JobID             string          `json:"jobId,omitempty"`
	JobTitle          string          `json:"jobTitle"`
	CompanyName       string          `json:"companyName"`
	JobDescription    string          `json:"jobDesc"`
	GeneratedAt       time.Time       `json:"generatedAt"`
	Metadata          metadata        `json:"metadata"`
	Advice            json.RawMessage `json:"advice,omitempty"`
	AdviceGeneratedAt *time.Time      `json:"adviceGeneratedAt,omitempty"`
}

type metadata struct {
	Model string `json:"model"`
	llm.Usage
}

// SummaryResponse is the list view of a resume.
type SummaryResponse struct {
	ID          string    `json:"resumeId"`
	JobTitle    string    `json:"jobTitle"`
	CompanyName string    `json:"companyName"`
	GeneratedAt time.Time `json:"generatedAt"`
	HasAdvice   bool      `json:"hasAdvice"`
}

// ListResponse is a page of resumes.
type ListResponse struct {
	Items  []SummaryResponse `json:"items"`
	Limit  int               `json:"limit"`
	Offset int               `json:"offset"`
}

func toResumeResponse(r Resume) ResumeResponse {
	resp := ResumeResponse{
		ID:             r.ID,
		ResumeContent:  r.Content,
		JobID:          r.JobID,
		JobTitle:       r.JobTitle,
		CompanyName:    r.CompanyName,
		JobDescription: r.JobDescription,
		GeneratedAt:    r.CreatedAt,
		Metadata:       metadata{Model: r.Model, Usage: r.Usage},
	}
	if r.HasAdvice() {
		resp.Advice = r.Advice
		resp.AdviceGeneratedAt = r.AdviceGeneratedAt
	}
	return resp
}

func toSummary(r Resume) SummaryResponse {
	return SummaryResponse{
		ID:          r.ID,
		JobTitle:    r.JobTitle,
		CompanyName: r.CompanyName,
		GeneratedAt: r.CreatedAt,
		HasAdvice:   r.HasAdvice(),
	}
}
