package templates

import "time"

// Template is a static resume layout with {{PLACEHOLDER}} markers.
type Template struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	ImageURL      string   `json:"imageUrl"`
	LatexTemplate string   `json:"latexTemplate"`
	Placeholders  []string `json:"placeholders"`
}

// Setting is a user's chosen styling template.
type Setting struct {
	UserID     string
	TemplateID string
	UpdatedAt  time.Time
}
