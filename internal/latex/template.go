package latex

import (
	"regexp"
	"sort"
	"strings"
)

var placeholderRe = regexp.MustCompile(`\{\{([A-Z][A-Z0-9_]*)\}\}`)

// Placeholders lists the distinct {{NAME}} markers in tpl, sorted.
func Placeholders(tpl string) []string {
	seen := map[string]struct{}{}
	for _, m := range placeholderRe.FindAllStringSubmatch(tpl, -1) {
		seen[m[1]] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for k := range seen {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Fill substitutes {{KEY}} markers with values verbatim. Keys are matched
// case-insensitively; markers with no value are left in place.
func Fill(tpl string, values map[string]string) string {
	norm := make(map[string]string, len(values))
	for k, v := range values {
		norm[strings.ToUpper(strings.TrimSpace(k))] = v
	}
	return placeholderRe.ReplaceAllStringFunc(tpl, func(m string) string {
		key := m[2 : len(m)-2]
		if v, ok := norm[key]; ok {
			return v
		}
		return m
	})
}

// FillEscaped escapes every value before filling, and blanks markers that
// have no value so the output always compiles.
func FillEscaped(tpl string, values map[string]string) string {
	escaped := make(map[string]string, len(values))
	for k, v := range values {
		escaped[k] = EscapeParagraphs(v)
	}
	out := Fill(tpl, escaped)
	return placeholderRe.ReplaceAllString(out, "")
}
