package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"newscred/internal/domain"
	"newscred/internal/logging"
	"newscred/internal/ports"
)

type fakeService struct {
	articles map[string]domain.Article
	lastReq  struct {
		title, content string
		submitter      int64
	}
}

func (s *fakeService) Submit(ctx context.Context, title, content string, submitterID int64) (string, error) {
	s.lastReq.title = title
	s.lastReq.content = content
	s.lastReq.submitter = submitterID
	return "abcDEF123456", nil
}

func (s *fakeService) GetArticle(ctx context.Context, hashID string) (domain.Article, error) {
	if a, ok := s.articles[hashID]; ok {
		return a, nil
	}
	return domain.Article{}, ports.ErrArticleNotFound
}

func newTestServer(service *fakeService) *Server {
	return NewServer(service, logging.NewNop())
}

func TestSubmitArticleAccepted(t *testing.T) {
	t.Parallel()

	service := &fakeService{}
	server := newTestServer(service)

	body := `{"title":"Breaking Story","content":"Something happened.","submitter_id":5}`
	req := httptest.NewRequest(http.MethodPost, "/api/articles", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want 202: %s", rec.Code, rec.Body.String())
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["hash_id"] != "abcDEF123456" {
		t.Fatalf("hash_id = %q", resp["hash_id"])
	}
	if resp["status"] != string(domain.StatusPendingAnalysis) {
		t.Fatalf("status = %q", resp["status"])
	}
	if service.lastReq.title != "Breaking Story" || service.lastReq.submitter != 5 {
		t.Fatalf("service received %+v", service.lastReq)
	}
}

func TestSubmitArticleValidation(t *testing.T) {
	t.Parallel()

	server := newTestServer(&fakeService{})

	for _, body := range []string{
		`{}`,
		`{"title":"only title"}`,
		`{"content":"only content"}`,
		`not json`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/api/articles", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		server.Handler().ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %q: status = %d, want 400", body, rec.Code)
		}
	}
}

func TestGetArticle(t *testing.T) {
	t.Parallel()

	service := &fakeService{articles: map[string]domain.Article{
		"known1234567": {
			HashID: "known1234567",
			Title:  "Scored Story",
			Status: domain.StatusPendingReview,
			Score:  67.4,
			Scored: true,
		},
	}}
	server := newTestServer(service)

	req := httptest.NewRequest(http.MethodGet, "/api/articles/known1234567", nil)
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["credibility_score"] != 67.4 {
		t.Fatalf("credibility_score = %v", resp["credibility_score"])
	}
	if resp["status"] != string(domain.StatusPendingReview) {
		t.Fatalf("status = %v", resp["status"])
	}
}

func TestGetArticleNotFound(t *testing.T) {
	t.Parallel()

	server := newTestServer(&fakeService{})
	req := httptest.NewRequest(http.MethodGet, "/api/articles/missing00000", nil)
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestHealthz(t *testing.T) {
	t.Parallel()

	server := newTestServer(&fakeService{})
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}
