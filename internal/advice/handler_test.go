package advice

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T, client *scriptedLLM) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	svc, _, _ := newTestService(t, client)
	r := gin.New()
	// Seeded resumes belong to u1.
	r.Use(func(c *gin.Context) {
		c.Set("userId", "u1")
		c.Next()
	})
	h := NewHandler(svc)
	api := r.Group("/api/v1")
	h.RegisterRoutes(api)
	h.RegisterGenerateRoutes(api)
	return r
}

func serve(r http.Handler, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestAdviceEndpoints(t *testing.T) {
	r := newTestRouter(t, &scriptedLLM{answers: []string{adviceWithTitle("One"), adviceWithTitle("Two"), "garbage"}})

	if resp := serve(r, http.MethodGet, "/api/v1/resumes/r1/advice"); resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 before generation, got %d", resp.Code)
	}
	for i := 0; i < 2; i++ {
		if resp := serve(r, http.MethodPost, "/api/v1/resumes/r1/advice"); resp.Code != http.StatusOK {
			t.Fatalf("generate: expected 200, got %d: %s", resp.Code, resp.Body.String())
		}
	}

	resp := serve(r, http.MethodPost, "/api/v1/resumes/r1/advice")
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 on bad output, got %d", resp.Code)
	}
	var errBody struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	_ = json.Unmarshal(resp.Body.Bytes(), &errBody)
	if errBody.Error.Message != "Failed to parse AI response" {
		t.Fatalf("unexpected message %q", errBody.Error.Message)
	}

	resp = serve(r, http.MethodGet, "/api/v1/resumes/r1/advice/history")
	var history struct {
		Versions []Version `json:"versions"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &history); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(history.Versions) != 2 {
		t.Fatalf("expected 2 versions, got %d", len(history.Versions))
	}

	tests := []struct {
		path string
		want int
	}{
		{"/api/v1/resumes/r1/advice/history/0", http.StatusOK},
		{"/api/v1/resumes/r1/advice/history/1", http.StatusOK},
		{"/api/v1/resumes/r1/advice/history/2", http.StatusNotFound},
		{"/api/v1/resumes/r1/advice/history/x", http.StatusBadRequest},
		{"/api/v1/resumes/missing/advice/history/0", http.StatusNotFound},
	}
	for _, tc := range tests {
		if resp := serve(r, http.MethodGet, tc.path); resp.Code != tc.want {
			t.Fatalf("%s: expected %d, got %d", tc.path, tc.want, resp.Code)
		}
	}
}
