package advice

import (
	"encoding/json"
	"time"
)

// Advice is the structured career feedback generated for a resume.
type Advice struct {
	ResumeWordingAdvice              []string  `json:"resumeWordingAdvice"`
	ExperienceEnhancementSuggestions []string  `json:"experienceEnhancementSuggestions"`
	NextSteps                        NextSteps `json:"nextStepsToImproveCareerProspects"`
}

type NextSteps struct {
	CertificationsOrCourses []string `json:"certificationsOrCourses"`
	JobTitlesToPursue       []string `json:"jobTitlesToPursue"`
	GeneralCareerAdvice     []string `json:"generalCareerAdvice"`
}

// ArchiveEntry is a superseded advice document. Entries are append-only and
// may outlive the resume they were generated for.
type ArchiveEntry struct {
	ID          string
	UserID      string
	ResumeID    string
	Advice      json.RawMessage
	GeneratedAt time.Time
	ArchivedAt  time.Time
}

// Version is one advice document in a resume's history. Offset 0 is the
// current advice; offset n is the n-th most recently archived entry.
type Version struct {
	Offset      int        `json:"offset"`
	Current     bool       `json:"current"`
	Advice      Advice     `json:"advice"`
	GeneratedAt time.Time  `json:"generatedAt"`
	ArchivedAt  *time.Time `json:"archivedAt,omitempty"`
}
