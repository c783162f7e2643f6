package jobs

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"
)

const samplePosting = `<html>
<head><title>Careers</title><style>body { color: red; }</style></head>
<body>
<header>Skip to content Acme Careers Home</header>
<nav>Jobs About Contact</nav>
<main>
<h1>Senior Go Engineer</h1>
<div>Acme Robotics</div>
<p>We build warehouse robots. You will own Go services end to end.</p>
<button>Apply now</button>
</main>
<footer>Copyright Acme</footer>
<script>var tracking = true;</script>
</body>
</html>`

func TestParseHTMLExtractsTitleCompanyDescription(t *testing.T) {
	ext, err := ParseHTML(samplePosting)
	if err != nil {
		t.Fatalf("ParseHTML: %v", err)
	}
	if ext.Title != "Senior Go Engineer" {
		t.Fatalf("title = %q", ext.Title)
	}
	if ext.Company != "Acme Robotics" {
		t.Fatalf("company = %q", ext.Company)
	}
	want := "Senior Go Engineer Acme Robotics We build warehouse robots. You will own Go services end to end. Apply now"
	if ext.Description != want {
		t.Fatalf("description = %q", ext.Description)
	}
	for _, stripped := range []string{"Copyright", "tracking", "Contact", "color"} {
		if strings.Contains(ext.Description, stripped) {
			t.Fatalf("description should not contain %q: %q", stripped, ext.Description)
		}
	}
}

func TestParseHTMLDefaults(t *testing.T) {
	ext, err := ParseHTML(`<html><body><p>tiny</p></body></html>`)
	if err != nil {
		t.Fatalf("ParseHTML: %v", err)
	}
	if ext.Title != "Untitled Job" || ext.Company != "Unknown Company" {
		t.Fatalf("unexpected defaults %q / %q", ext.Title, ext.Company)
	}
	if ext.Description != "tiny" {
		t.Fatalf("body fallback description = %q", ext.Description)
	}
}

func TestParseHTMLSkipsApplyAndSentenceLines(t *testing.T) {
	html := `<html><body>
<h2>Apply for this role</h2>
<p>lowercase heading line</p>
<h1>Data Platform Lead</h1>
<span>This line ends with a period.</span>
<div>Data Platform Lead at Initech</div>
<strong>Initech Corp</strong>
</body></html>`
	ext, err := ParseHTML(html)
	if err != nil {
		t.Fatalf("ParseHTML: %v", err)
	}
	if ext.Title != "Data Platform Lead" {
		t.Fatalf("title = %q", ext.Title)
	}
	if ext.Company != "lowercase heading line" {
		t.Fatalf("company = %q", ext.Company)
	}
}

func TestParseHTMLCapsDescription(t *testing.T) {
	body := strings.Repeat("word ", 2000)
	ext, err := ParseHTML("<html><body><main>" + body + "</main></body></html>")
	if err != nil {
		t.Fatalf("ParseHTML: %v", err)
	}
	if n := utf8.RuneCountInString(ext.Description); n != maxDescriptionRunes {
		t.Fatalf("description runes = %d, want %d", n, maxDescriptionRunes)
	}
}

func TestIsBotChallenge(t *testing.T) {
	if !IsBotChallenge("<p>Cloudflare</p><p>Please Enable JavaScript and cookies to continue</p>") {
		t.Fatal("expected challenge page to be detected")
	}
	if IsBotChallenge("<p>Served by Cloudflare</p>") {
		t.Fatal("cloudflare mention alone is not a challenge")
	}
}

func TestExtractorExtract(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			if !strings.Contains(r.Header.Get("User-Agent"), "Mozilla") {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			_, _ = w.Write([]byte(samplePosting))
		case "/challenge":
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte("Just a moment... cloudflare. Enable JavaScript and cookies to continue"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	e := NewExtractor(5 * time.Second)
	e.now = func() time.Time { return fixed }

	ext, err := e.Extract(context.Background(), srv.URL+"/ok")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if ext.Title != "Senior Go Engineer" || ext.SourceURL != srv.URL+"/ok" || !ext.ExtractedAt.Equal(fixed) {
		t.Fatalf("unexpected extraction %#v", ext)
	}

	if _, err := e.Extract(context.Background(), srv.URL+"/challenge"); !errors.Is(err, ErrProtected) {
		t.Fatalf("expected ErrProtected, got %v", err)
	}
	if _, err := e.Extract(context.Background(), srv.URL+"/missing"); !errors.Is(err, ErrFetchFailed) {
		t.Fatalf("expected ErrFetchFailed, got %v", err)
	}
}

func TestExtractorRejectsBadURL(t *testing.T) {
	e := NewExtractor(time.Second)
	for _, raw := range []string{"", "   ", "ftp://example.com/job", "not a url"} {
		if _, err := e.Extract(context.Background(), raw); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("Extract(%q) = %v, want ErrInvalidInput", raw, err)
		}
	}
}
