package paging

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestFromQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tests := []struct {
		query      string
		wantLimit  int
		wantOffset int
	}{
		{"", 20, 0},
		{"?limit=5&offset=10", 5, 10},
		{"?limit=500", 50, 0},
		{"?limit=-3&offset=-1", 1, 0},
		{"?limit=abc&offset=xyz", 20, 0},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", "/items"+tt.query, nil)
			limit, offset := FromQuery(c)
			if limit != tt.wantLimit || offset != tt.wantOffset {
				t.Fatalf("FromQuery(%q) = %d,%d want %d,%d", tt.query, limit, offset, tt.wantLimit, tt.wantOffset)
			}
		})
	}
}
