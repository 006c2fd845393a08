package recommendations

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newRecommendationRouter(svc *Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userId", "u1")
		c.Next()
	})
	NewHandler(svc).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func TestHandlerRecommendReturnsItems(t *testing.T) {
	svc := NewService(seededCourseRepo(), NewEngine(DefaultConfig()))
	r := newRecommendationRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/recommendations?limit=5", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var payload struct {
		Items []Item `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(payload.Items) == 0 {
		t.Fatalf("expected items in response")
	}
	for i, item := range payload.Items {
		if item.Position != i+1 {
			t.Fatalf("expected position %d, got %d", i+1, item.Position)
		}
		if item.CourseID == "a" || item.CourseID == "b" {
			t.Fatalf("enrolled course %s leaked into response", item.CourseID)
		}
	}
}

func TestHandlerRecommendRejectsBadLimit(t *testing.T) {
	svc := NewService(seededCourseRepo(), NewEngine(DefaultConfig()))
	r := newRecommendationRouter(svc)

	for _, raw := range []string{"abc", "-1"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/recommendations?limit="+raw, nil)
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, req)

		if resp.Code != http.StatusBadRequest {
			t.Fatalf("limit=%s: expected 400, got %d", raw, resp.Code)
		}
		if !strings.Contains(resp.Body.String(), "validation_error") {
			t.Fatalf("limit=%s: expected validation_error code, got %s", raw, resp.Body.String())
		}
	}
}

func TestHandlerRecommendPassesAlgorithmThrough(t *testing.T) {
	svc := NewService(seededCourseRepo(), NewEngine(DefaultConfig()))
	r := newRecommendationRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/recommendations?algorithm="+ModePopularity, nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var payload struct {
		Items []Item `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	for _, item := range payload.Items {
		if item.Algorithm != AlgorithmPopularity {
			t.Fatalf("expected popularity results only, got %s", item.Algorithm)
		}
	}
}

func TestHandlerRecommendExposesAlgorithmToRequestLog(t *testing.T) {
	svc := NewService(seededCourseRepo(), NewEngine(DefaultConfig()))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	var captured string
	r.Use(func(c *gin.Context) {
		c.Set("userId", "u1")
		c.Next()
		if v, ok := c.Get("algorithm"); ok {
			captured, _ = v.(string)
		}
	})
	NewHandler(svc).RegisterRoutes(r.Group("/api/v1"))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/recommendations?algorithm="+ModePopularity, nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if captured != ModePopularity {
		t.Fatalf("expected algorithm %q in request context, got %q", ModePopularity, captured)
	}
}

func TestHandlerRecommendReportsSourceFailure(t *testing.T) {
	svc := NewService(brokenSource{}, NewEngine(DefaultConfig()))
	r := newRecommendationRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/recommendations", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "internal_error") {
		t.Fatalf("expected internal_error code, got %s", resp.Body.String())
	}
}
