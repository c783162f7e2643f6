package prompts

import (
	"regexp"
	"strings"
)

// Lead-ins models like to put before the resume itself.
var chatterPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^Here is a tailored resume.*?:`),
	regexp.MustCompile(`(?i)^Here's a professional resume.*?:`),
	regexp.MustCompile(`(?i)^I've created a resume.*?:`),
	regexp.MustCompile(`(?i)^Below is a tailored resume.*?:`),
	regexp.MustCompile(`(?i)^This resume is tailored.*?:`),
	regexp.MustCompile(`(?i)^Here's the resume.*?:`),
	regexp.MustCompile(`(?i)^I'll create a resume.*?:`),
	regexp.MustCompile(`(?i)^Let me create.*?:`),
	regexp.MustCompile(`(?i)^I've tailored this resume.*?:`),
	regexp.MustCompile(`(?i)^This professional resume.*?:`),
}

// CleanResumeContent strips conversational lead-ins and surrounding whitespace.
func CleanResumeContent(s string) string {
	out := strings.TrimSpace(s)
	for _, re := range chatterPatterns {
		out = strings.TrimSpace(re.ReplaceAllString(out, ""))
	}
	return out
}

var (
	openFence  = regexp.MustCompile("^```[a-zA-Z]*[ \t]*\r?\n?")
	closeFence = regexp.MustCompile("\r?\n?```[ \t]*$")
)

// StripCodeFences removes one surrounding markdown code fence, if present.
func StripCodeFences(s string) string {
	out := strings.TrimSpace(s)
	out = openFence.ReplaceAllString(out, "")
	out = closeFence.ReplaceAllString(out, "")
	return strings.TrimSpace(out)
}

// CleanLatexDocument strips fences and any prose around the
// \documentclass ... \end{document} span.
func CleanLatexDocument(s string) string {
	out := StripCodeFences(s)
	if i := strings.Index(out, `\documentclass`); i > 0 {
		out = out[i:]
	}
	const end = `\end{document}`
	if i := strings.LastIndex(out, end); i >= 0 {
		out = out[:i+len(end)]
	}
	return strings.TrimSpace(out)
}

// ExtractJSONObject returns the outermost {...} span of s, or "" if none.
func ExtractJSONObject(s string) string {
	out := StripCodeFences(s)
	start := strings.Index(out, "{")
	end := strings.LastIndex(out, "}")
	if start < 0 || end < start {
		return ""
	}
	return out[start : end+1]
}
