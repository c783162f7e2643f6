package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		inbound string
		keep    bool
	}{
		{name: "generated", inbound: "", keep: false},
		{name: "gateway id kept", inbound: "c8f1a2b4-7e1d-4f0a-9b3c-2d5e6f7a8b9c", keep: true},
		{name: "newline rejected", inbound: "abc\nlevel=error", keep: false},
		{name: "overlong rejected", inbound: strings.Repeat("a", 65), keep: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			router := gin.New()
			router.Use(RequestID())
			var seen string
			router.GET("/api/v1/resumes", func(c *gin.Context) {
				seen = RequestIDFromContext(c)
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/resumes", nil)
			if tc.inbound != "" {
				req.Header[requestIDHeader] = []string{tc.inbound}
			}
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)

			header := resp.Header().Get(requestIDHeader)
			if header == "" || header != seen {
				t.Fatalf("header %q does not match context %q", header, seen)
			}
			if tc.keep {
				if header != tc.inbound {
					t.Fatalf("expected inbound id kept, got %q", header)
				}
				return
			}
			if _, err := uuid.Parse(header); err != nil {
				t.Fatalf("expected generated uuid, got %q", header)
			}
		})
	}
}

func TestRequestIDFromContextWithoutMiddleware(t *testing.T) {
	if got := RequestIDFromContext(nil); got != "" {
		t.Fatalf("expected empty id, got %q", got)
	}
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := RequestIDFromContext(c); got != "" {
		t.Fatalf("expected empty id, got %q", got)
	}
}
