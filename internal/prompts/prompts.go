// Package prompts builds the LLM prompts for each resume feature and cleans
// what comes back.
package prompts

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

//go:embed text/*.txt
var texts embed.FS

var (
	ErrMissingInput    = errors.New("missing prompt input")
	ErrUnknownStyle    = errors.New("unknown latex style")
	ErrUnknownTemplate = errors.New("unknown template")
)

// Prompt is a system/user message pair.
type Prompt struct {
	System string
	User   string
}

// Job is the subset of a job posting the resume prompt needs.
type Job struct {
	Title       string `json:"jobTitle"`
	Company     string `json:"companyName"`
	Description string `json:"jobDescription"`
}

// LaTeX document styles accepted by LatexDocument.
const (
	StyleProfessional = "professional"
	StyleCreative     = "creative"
	StyleAcademic     = "academic"
)

// Styles lists the LaTeX document styles in display order.
func Styles() []string {
	return []string{StyleProfessional, StyleCreative, StyleAcademic}
}

func mustText(name string) string {
	data, err := texts.ReadFile("text/" + name)
	if err != nil {
		panic(fmt.Sprintf("prompts: missing %s: %v", name, err))
	}
	return strings.TrimSpace(string(data))
}

// ResumeGeneration builds the tailored-resume prompt from a job and the
// user's free-form profile data.
func ResumeGeneration(job Job, userData any) (Prompt, error) {
	if strings.TrimSpace(job.Title) == "" && strings.TrimSpace(job.Description) == "" {
		return Prompt{}, fmt.Errorf("%w: job", ErrMissingInput)
	}
	if isEmptyData(userData) {
		return Prompt{}, fmt.Errorf("%w: userData", ErrMissingInput)
	}
	pretty, err := json.MarshalIndent(userData, "", "  ")
	if err != nil {
		return Prompt{}, fmt.Errorf("encode userData: %w", err)
	}
	r := strings.NewReplacer(
		"{{JOB_TITLE}}", job.Title,
		"{{COMPANY}}", job.Company,
		"{{JOB_DESCRIPTION}}", job.Description,
		"{{USER_DATA}}", string(pretty),
	)
	return Prompt{
		System: mustText("resume_system.txt"),
		User:   r.Replace(mustText("resume_user.txt")),
	}, nil
}

func isEmptyData(v any) bool {
	switch d := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(d) == ""
	case json.RawMessage:
		s := strings.TrimSpace(string(d))
		return s == "" || s == "null" || s == "{}" || s == "[]"
	case map[string]any:
		return len(d) == 0
	}
	return false
}

// LatexDocument builds the prompt that asks for a full LaTeX resume in style.
func LatexDocument(style, resumeContent string) (Prompt, error) {
	if strings.TrimSpace(resumeContent) == "" {
		return Prompt{}, fmt.Errorf("%w: resumeContent", ErrMissingInput)
	}
	switch style {
	case StyleProfessional, StyleCreative, StyleAcademic:
	default:
		return Prompt{}, fmt.Errorf("%w: %q", ErrUnknownStyle, style)
	}
	var b strings.Builder
	b.WriteString(mustText("latex_" + style + ".txt"))
	b.WriteString("\n\nResume content:\n")
	b.WriteString(resumeContent)
	b.WriteString("\n\n")
	b.WriteString(mustText("latex_suffix.txt"))
	return Prompt{System: mustText("latex_system.txt"), User: b.String()}, nil
}

// FormatTemplateIDs lists the template ids that have formatting instructions.
func FormatTemplateIDs() []string {
	entries, _ := texts.ReadDir("text")
	var ids []string
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, "format_") && name != "format_system.txt" {
			ids = append(ids, strings.TrimSuffix(strings.TrimPrefix(name, "format_"), ".txt"))
		}
	}
	sort.Strings(ids)
	return ids
}

// TemplateFormatting builds the prompt that fills templateID's LaTeX with resume content.
func TemplateFormatting(templateID, resumeContent, latexTemplate string) (Prompt, error) {
	if strings.TrimSpace(resumeContent) == "" {
		return Prompt{}, fmt.Errorf("%w: resumeContent", ErrMissingInput)
	}
	if strings.TrimSpace(latexTemplate) == "" {
		return Prompt{}, fmt.Errorf("%w: latexTemplate", ErrMissingInput)
	}
	if strings.ContainsAny(templateID, "/\\.") {
		return Prompt{}, fmt.Errorf("%w: %q", ErrUnknownTemplate, templateID)
	}
	data, err := texts.ReadFile("text/format_" + templateID + ".txt")
	if err != nil || templateID == "system" {
		return Prompt{}, fmt.Errorf("%w: %q", ErrUnknownTemplate, templateID)
	}
	var b strings.Builder
	b.WriteString(strings.TrimSpace(string(data)))
	b.WriteString("\n\nResume content:\n")
	b.WriteString(resumeContent)
	b.WriteString("\n\nTemplate to use:\n")
	b.WriteString(strings.TrimSpace(latexTemplate))
	return Prompt{System: mustText("format_system.txt"), User: b.String()}, nil
}

// CareerAdvice builds the structured-advice prompt for a resume.
func CareerAdvice(resumeContent string) (Prompt, error) {
	if strings.TrimSpace(resumeContent) == "" {
		return Prompt{}, fmt.Errorf("%w: resumeContent", ErrMissingInput)
	}
	return Prompt{
		System: "You reply with a single JSON object.",
		User:   mustText("advice.txt") + "\n" + resumeContent,
	}, nil
}
