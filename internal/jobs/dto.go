package jobs

import "time"

type extractRequest struct {
	JobURL string `json:"jobUrl"`
}

type saveRequest struct {
	JobURL         string `json:"jobUrl"`
	JobTitle       string `json:"jobTitle"`
	CompanyName    string `json:"companyName"`
	JobDescription string `json:"jobDescription"`
}

type appliedRequest struct {
	ResumeID string `json:"resumeId"`
}

// ExtractResponse mirrors the payload the frontend expects from extraction.
type ExtractResponse struct {
	JobTitle       string `json:"jobTitle"`
	CompanyName    string `json:"companyName"`
	JobDescription string `json:"jobDescription"`
	Timestamp      string `json:"timestamp"`
}

// JobResponse is the stored job description.
type JobResponse struct {
	ID                  string     `json:"id"`
	JobTitle            string     `json:"jobTitle"`
	CompanyName         string     `json:"companyName"`
	JobDescription      string     `json:"jobDescription"`
	SourceURL           string     `json:"sourceUrl,omitempty"`
	ExtractedAt         time.Time  `json:"extractedAt"`
	CreatedAt           time.Time  `json:"createdAt"`
	AppliedTo           bool       `json:"appliedTo"`
	ApplicationTime     *time.Time `json:"applicationTime,omitempty"`
	ApplicationResumeID string     `json:"applicationResumeId,omitempty"`
}

// ListResponse is a page of job descriptions.
type ListResponse struct {
	Items  []JobResponse `json:"items"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
}

func toExtractResponse(ext Extraction) ExtractResponse {
	return ExtractResponse{
		JobTitle:       ext.Title,
		CompanyName:    ext.Company,
		JobDescription: ext.Description,
		Timestamp:      ext.ExtractedAt.UTC().Format(time.RFC3339),
	}
}

func toJobResponse(job JobDescription) JobResponse {
	return JobResponse{
		ID:                  job.ID,
		JobTitle:            job.Title,
		CompanyName:         job.Company,
		JobDescription:      job.Description,
		SourceURL:           job.SourceURL,
		ExtractedAt:         job.ExtractedAt,
		CreatedAt:           job.CreatedAt,
		AppliedTo:           job.AppliedTo,
		ApplicationTime:     job.ApplicationTime,
		ApplicationResumeID: job.ApplicationResumeID,
	}
}
