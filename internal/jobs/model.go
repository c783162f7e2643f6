package jobs

import "time"

// JobDescription is a saved job posting a user can tailor resumes against.
type JobDescription struct {
	ID                  string
	UserID              string
	Title               string
	Company             string
	Description         string
	SourceURL           string
	ExtractedAt         time.Time
	CreatedAt           time.Time
	AppliedTo           bool
	ApplicationTime     *time.Time
	ApplicationResumeID string
}

// Extraction is what the page heuristics recover from a job URL.
type Extraction struct {
	Title       string
	Company     string
	Description string
	SourceURL   string
	ExtractedAt time.Time
}
