package jobs

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"

	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/shared/telemetry"
)

const (
	maxDescriptionRunes = 5000
	maxCandidateLines   = 30
	maxHeadingRunes     = 80
	defaultTitle        = "Untitled Job"
	defaultCompany      = "Unknown Company"
	browserUserAgent    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"
)

var strippedTags = "nav, footer, script, style, header, form, aside"

// Extractor fetches job pages and recovers title, company and description.
type Extractor struct {
	client *resty.Client
	now    func() time.Time
}

// NewExtractor builds an Extractor whose requests time out after timeout.
func NewExtractor(timeout time.Duration) *Extractor {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	client := resty.New().
		SetTimeout(timeout).
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(5)).
		SetHeader("User-Agent", browserUserAgent).
		SetHeader("Accept", "text/html,application/xhtml+xml")
	return &Extractor{client: client, now: time.Now}
}

// Extract fetches rawURL and parses the posting.
func (e *Extractor) Extract(ctx context.Context, rawURL string) (ext Extraction, err error) {
	protected := false
	defer func() {
		metrics.IncJobExtract(protected, err)
	}()

	target, err := validateURL(rawURL)
	if err != nil {
		return Extraction{}, err
	}

	resp, err := e.client.R().SetContext(ctx).Get(target)
	if err != nil {
		telemetry.Warn("jobs.fetch_failed", map[string]any{"url": target, "error": err})
		return Extraction{}, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	html := resp.String()

	if IsBotChallenge(html) {
		protected = true
		return Extraction{}, ErrProtected
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		telemetry.Warn("jobs.fetch_status", map[string]any{"url": target, "status": resp.StatusCode()})
		return Extraction{}, fmt.Errorf("%w: status %d", ErrFetchFailed, resp.StatusCode())
	}

	ext, err = ParseHTML(html)
	if err != nil {
		return Extraction{}, err
	}
	ext.SourceURL = target
	ext.ExtractedAt = e.now().UTC()
	return ext, nil
}

func validateURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: jobUrl is required", ErrInvalidInput)
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("%w: jobUrl must be an http(s) URL", ErrInvalidInput)
	}
	return u.String(), nil
}

// IsBotChallenge reports whether html is a Cloudflare JavaScript challenge page.
func IsBotChallenge(html string) bool {
	lower := strings.ToLower(html)
	return strings.Contains(lower, "cloudflare") && strings.Contains(lower, "enable javascript and cookies")
}

// ParseHTML applies the extraction heuristics to a fetched page.
func ParseHTML(html string) (Extraction, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return Extraction{}, fmt.Errorf("%w: parse html: %v", ErrFetchFailed, err)
	}
	doc.Find(strippedTags).Remove()

	raw := strings.TrimSpace(doc.Find("main").First().Text())
	if raw == "" {
		raw = doc.Find("body").Text()
	}

	lines := candidateLines(doc)
	title := pickTitle(lines)
	return Extraction{
		Title:       title,
		Company:     pickCompany(lines, title),
		Description: truncateRunes(collapseWhitespace(raw), maxDescriptionRunes),
	}, nil
}

func candidateLines(doc *goquery.Document) []string {
	var lines []string
	doc.Find("h1, h2, h3, strong, div, span, p").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		line := strings.TrimSpace(s.Text())
		n := utf8.RuneCountInString(line)
		if n > 5 && n <= 150 && !strings.HasPrefix(line, "Skip to") {
			lines = append(lines, line)
		}
		return len(lines) < maxCandidateLines
	})
	return lines
}

func pickTitle(lines []string) string {
	for _, line := range lines {
		if utf8.RuneCountInString(line) <= maxHeadingRunes &&
			line[0] >= 'A' && line[0] <= 'Z' &&
			!strings.Contains(line, "Apply") &&
			!strings.HasSuffix(line, ".") {
			return line
		}
	}
	return defaultTitle
}

func pickCompany(lines []string, title string) string {
	for i, line := range lines {
		if i == 0 {
			continue
		}
		if utf8.RuneCountInString(line) <= maxHeadingRunes &&
			!strings.Contains(line, "Apply") &&
			!strings.HasSuffix(line, ".") &&
			!strings.Contains(line, title) {
			return line
		}
	}
	return defaultCompany
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
