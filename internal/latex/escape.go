// Package latex turns resume text into LaTeX and LaTeX into PDF bytes.
package latex

import (
	"regexp"
	"strings"
)

// escaper runs in a single pass, so the braces it emits for a backslash are
// never escaped a second time.
var escaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`&`, `\&`,
	`%`, `\%`,
	`$`, `\$`,
	`#`, `\#`,
	`_`, `\_`,
	`{`, `\{`,
	`}`, `\}`,
	`~`, `\textasciitilde{}`,
	`^`, `\textasciicircum{}`,
)

// Escape makes arbitrary text safe to place in a LaTeX document body.
func Escape(s string) string {
	return escaper.Replace(s)
}

var blankLines = regexp.MustCompile(`\n\s*\n`)

const lineBreak = `\newline` + "\n"

// EscapeParagraphs escapes s and keeps blank-line paragraph breaks while
// forcing single newlines onto their own output line. Lines are broken with
// \newline, which never reads a following [ or * as an argument.
func EscapeParagraphs(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	paras := blankLines.Split(strings.TrimSpace(s), -1)
	out := make([]string, 0, len(paras))
	for _, p := range paras {
		lines := strings.Split(p, "\n")
		for i, line := range lines {
			lines[i] = Escape(strings.TrimRight(line, " \t"))
		}
		out = append(out, strings.Join(lines, lineBreak))
	}
	return strings.Join(out, "\n\n")
}
