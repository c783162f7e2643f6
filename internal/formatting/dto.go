package formatting

import "time"

type formatRequest struct {
	ResumeContent string `json:"resumeContent"`
	TemplateID    string `json:"templateId"`
}

type latexRequest struct {
	ResumeContent string `json:"resumeContent"`
	ResumeID      string `json:"resumeId"`
	Template      string `json:"template"`
}

type renderRequest struct {
	TemplateID string            `json:"templateId"`
	Fields     map[string]string `json:"fields"`
}

// LatexResponse is the generated LaTeX document.
type LatexResponse struct {
	LatexContent      string `json:"latexContent"`
	Template          string `json:"template"`
	FormattedResumeID string `json:"formattedResumeId,omitempty"`
}

// RenderResponse is a deterministically filled template.
type RenderResponse struct {
	TemplateID   string `json:"templateId"`
	LatexContent string `json:"latexContent"`
}

// FormattedResponse is a stored formatted resume.
type FormattedResponse struct {
	ID               string    `json:"id"`
	OriginalResumeID string    `json:"originalResumeId"`
	LatexContent     string    `json:"latexContent,omitempty"`
	Template         string    `json:"template"`
	Title            string    `json:"title"`
	CreatedAt        time.Time `json:"createdAt"`
}

// ListResponse is a page of formatted resumes.
type ListResponse struct {
	Items  []FormattedResponse `json:"items"`
	Limit  int                 `json:"limit"`
	Offset int                 `json:"offset"`
}

func toFormattedResponse(fr FormattedResume, withContent bool) FormattedResponse {
	resp := FormattedResponse{
		ID:               fr.ID,
		OriginalResumeID: fr.OriginalResumeID,
		Template:         fr.Template,
		Title:            fr.Title,
		CreatedAt:        fr.CreatedAt,
	}
	if withContent {
		resp.LatexContent = fr.LatexContent
	}
	return resp
}
