// Package parse pulls structured fields out of free-form resume text with
// line and regexp heuristics.
package parse

import (
	"regexp"
	"sort"
	"strings"
)

// Profile is the structured view of a resume.
type Profile struct {
	Name            string      `json:"name,omitempty"`
	Emails          []string    `json:"emails"`
	Phones          []string    `json:"phones"`
	CareerObjective string      `json:"career_objective,omitempty"`
	Skills          []string    `json:"skills"`
	JobHistory      []Job       `json:"job_history"`
	Education       []Education `json:"education"`
}

type Job struct {
	JobTitle    string   `json:"job_title"`
	CompanyName string   `json:"company_name"`
	Dates       []string `json:"dates"`
	Description string   `json:"description"`
}

type Education struct {
	SchoolName string   `json:"school_name"`
	Degree     string   `json:"degree"`
	Dates      []string `json:"dates"`
	GPA        string   `json:"gpa,omitempty"`
}

// KnownSkills is matched case-insensitively against the whole text, except
// that short alphabetic names need a leading capital.
var KnownSkills = []string{
	"Python", "JavaScript", "TypeScript", "React", "Node.js", "SQL", "Docker", "AWS",
	"Go", "Java", "C++", "C#", "Kubernetes", "PostgreSQL", "MongoDB", "GraphQL",
	"Git", "Linux", "Terraform", "GCP", "Azure", "HTML", "CSS", "Redis", "LaTeX",
}

var (
	emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phoneRe = regexp.MustCompile(`(?:\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}\b`)
	gpaRe   = regexp.MustCompile(`(?i)\bGPA[:\s]*([0-4]\.\d{1,2})`)

	month       = `(?:jan|feb|mar|apr|may|jun|jul|aug|sep|sept|oct|nov|dec)[a-z]*\.?\s+`
	dateRangeRe = regexp.MustCompile(`(?i)\b(?:` + month + `)?(?:19|20)\d{2}\s*(?:-|–|—|to)\s*(?:(?:` + month + `)?(?:19|20)\d{2}|present|current|now)\b`)
	singleDate  = regexp.MustCompile(`(?i)\b(?:` + month + `)?(?:19|20)\d{2}\b`)

	headingRe = regexp.MustCompile(`(?i)^\s*(career objective|professional summary|objective|summary|goal|profile|work experience|professional experience|work history|employment history|experience|education|technical skills|skills)\s*([:\-]?)\s*(.*)$`)
	nameRe    = regexp.MustCompile(`^[A-Za-z][A-Za-z.'\-]*(?:\s+[A-Za-z][A-Za-z.'\-]*){1,3}$`)

	shortWord = regexp.MustCompile(`^[A-Za-z]+$`)
	skillRes  = compileSkills(KnownSkills)
)

type sectionKind int

const (
	sectionNone sectionKind = iota
	sectionObjective
	sectionExperience
	sectionEducation
	sectionSkills
)

func kindOf(heading string) sectionKind {
	switch strings.ToLower(heading) {
	case "career objective", "professional summary", "objective", "summary", "goal", "profile":
		return sectionObjective
	case "work experience", "professional experience", "work history", "employment history", "experience":
		return sectionExperience
	case "education":
		return sectionEducation
	case "technical skills", "skills":
		return sectionSkills
	}
	return sectionNone
}

type section struct {
	kind  sectionKind
	lines []string
}

// Parse extracts a Profile from resume text.
func Parse(text string) Profile {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	sections := splitSections(text)

	p := Profile{
		Name:       findName(text),
		Emails:     uniq(emailRe.FindAllString(text, -1)),
		Phones:     uniq(trimAll(phoneRe.FindAllString(text, -1))),
		Skills:     findSkills(text),
		JobHistory: []Job{},
		Education:  []Education{},
	}
	for _, s := range sections {
		switch s.kind {
		case sectionObjective:
			if p.CareerObjective == "" {
				p.CareerObjective = firstParagraph(s.lines)
			}
		case sectionExperience:
			p.JobHistory = append(p.JobHistory, parseJobs(s.lines)...)
		case sectionEducation:
			p.Education = append(p.Education, parseEducation(s.lines)...)
		}
	}
	return p
}

// splitSections groups lines under the most recent recognised heading. A
// heading may carry content on the same line ("Objective: build things").
func splitSections(text string) []section {
	var (
		out []section
		cur *section
	)
	for _, line := range strings.Split(text, "\n") {
		if kind, rest, ok := heading(line); ok {
			out = append(out, section{kind: kind})
			cur = &out[len(out)-1]
			if rest != "" {
				cur.lines = append(cur.lines, rest)
			}
			continue
		}
		if cur != nil {
			cur.lines = append(cur.lines, line)
		}
	}
	return out
}

// heading reports whether line opens a section. Prose that merely starts
// with a heading word, such as "Experience with large systems", does not.
func heading(line string) (sectionKind, string, bool) {
	m := headingRe.FindStringSubmatch(line)
	if m == nil {
		return sectionNone, "", false
	}
	rest := strings.TrimSpace(m[3])
	if rest != "" && m[2] == "" {
		return sectionNone, "", false
	}
	return kindOf(m[1]), rest, true
}

func firstParagraph(lines []string) string {
	var parts []string
	for _, l := range lines {
		l = strings.TrimSpace(l)
		if l == "" {
			if len(parts) > 0 {
				break
			}
			continue
		}
		parts = append(parts, l)
	}
	return strings.Join(parts, " ")
}

func blocks(lines []string) [][]string {
	var (
		out [][]string
		cur []string
	)
	for _, l := range lines {
		l = strings.TrimSpace(l)
		if l == "" {
			if len(cur) > 0 {
				out = append(out, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, l)
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}

func parseJobs(lines []string) []Job {
	var out []Job
	for _, b := range blocks(lines) {
		if len(b) < 2 {
			continue
		}
		joined := strings.Join(b, "\n")
		out = append(out, Job{
			JobTitle:    b[0],
			CompanyName: b[1],
			Dates:       findDates(joined),
			Description: strings.Join(dropDateLines(b[2:]), "\n"),
		})
	}
	return out
}

func parseEducation(lines []string) []Education {
	var out []Education
	for _, b := range blocks(lines) {
		if len(b) < 2 {
			continue
		}
		joined := strings.Join(b, "\n")
		e := Education{SchoolName: b[0], Degree: b[1], Dates: findDates(joined)}
		if m := gpaRe.FindStringSubmatch(joined); m != nil {
			e.GPA = m[1]
		}
		out = append(out, e)
	}
	return out
}

func findDates(s string) []string {
	if ranges := dateRangeRe.FindAllString(s, -1); len(ranges) > 0 {
		return uniq(ranges)
	}
	return uniq(singleDate.FindAllString(s, -1))
}

func dropDateLines(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		rest := dateRangeRe.ReplaceAllString(l, "")
		rest = singleDate.ReplaceAllString(rest, "")
		if strings.Trim(rest, " |,-–—()") == "" {
			continue
		}
		out = append(out, l)
	}
	return out
}

func findName(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if _, _, ok := heading(line); ok {
			return ""
		}
		if nameRe.MatchString(line) {
			return line
		}
		if len(line) > 60 {
			return ""
		}
	}
	return ""
}

func compileSkills(skills []string) map[string]*regexp.Regexp {
	out := make(map[string]*regexp.Regexp, len(skills))
	for _, s := range skills {
		word := `(?i:` + regexp.QuoteMeta(s) + `)`
		if len(s) <= 3 && shortWord.MatchString(s) {
			word = regexp.QuoteMeta(strings.ToUpper(s[:1])) + `(?i:` + regexp.QuoteMeta(s[1:]) + `)`
		}
		out[s] = regexp.MustCompile(`(?:^|[^A-Za-z0-9+#])` + word + `(?:$|[^A-Za-z0-9+#])`)
	}
	return out
}

func findSkills(text string) []string {
	out := []string{}
	for _, s := range KnownSkills {
		if skillRes[s].MatchString(text) {
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}

func trimAll(in []string) []string {
	for i := range in {
		in[i] = strings.TrimSpace(in[i])
	}
	return in
}

func uniq(in []string) []string {
	out := []string{}
	seen := make(map[string]bool, len(in))
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
