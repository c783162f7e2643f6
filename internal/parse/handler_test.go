package parse

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler().RegisterRoutes(r.Group("/api/v1"))
	return r
}

func TestParseEndpoint(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{name: "ok", body: `{"text":"Jane Doe\njane@example.com"}`, want: http.StatusOK},
		{name: "blank text", body: `{"text":"   "}`, want: http.StatusBadRequest},
		{name: "missing text", body: `{}`, want: http.StatusBadRequest},
		{name: "bad json", body: `{`, want: http.StatusBadRequest},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/parse", bytes.NewBufferString(tc.body))
			req.Header.Set("Content-Type", "application/json")
			resp := httptest.NewRecorder()
			newTestRouter().ServeHTTP(resp, req)
			if resp.Code != tc.want {
				t.Fatalf("expected %d, got %d: %s", tc.want, resp.Code, resp.Body.String())
			}
			if tc.want != http.StatusOK {
				return
			}
			var p Profile
			if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if p.Name != "Jane Doe" || len(p.Emails) != 1 || p.Emails[0] != "jane@example.com" {
				t.Fatalf("unexpected profile %+v", p)
			}
		})
	}
}
