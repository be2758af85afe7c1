package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"civic-feedback/internal/domain"
)

func performAuthRequest(r http.Handler, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func loginToken(t *testing.T, r http.Handler, password string) string {
	t.Helper()
	rec := performRequest(r, http.MethodPost, "/admin/login", map[string]string{"password": password})
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d, body %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int64  `json:"expires_in"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode login: %v", err)
	}
	if resp.AccessToken == "" || resp.ExpiresIn == 0 {
		t.Fatalf("incomplete grant %+v", resp)
	}
	return resp.AccessToken
}

func TestAdminLogin_InvalidPassword(t *testing.T) {
	r := setupRouter(t, &mockFeedbackRepo{}, bcryptHash(t, "secret123"))

	rec := performRequest(r, http.MethodPost, "/admin/login", map[string]string{"password": "wrong"})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestAdminLogin_NotConfigured(t *testing.T) {
	r := setupRouter(t, &mockFeedbackRepo{}, "")

	rec := performRequest(r, http.MethodPost, "/admin/login", map[string]string{"password": "anything"})
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
}

func TestAdminFeedback_RequiresToken(t *testing.T) {
	r := setupRouter(t, &mockFeedbackRepo{}, bcryptHash(t, "secret123"))

	rec := performAuthRequest(r, http.MethodGet, "/admin/feedback/district", "")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("missing token: status = %d, want 401", rec.Code)
	}

	rec = performAuthRequest(r, http.MethodGet, "/admin/feedback/district", "not-a-token")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("garbage token: status = %d, want 401", rec.Code)
	}
}

func TestAdminFeedback_ListsWithValidToken(t *testing.T) {
	score := 4.0
	repo := &mockFeedbackRepo{
		district: []domain.DistrictFeedback{{
			ID:              "session-1",
			District:        "Riverside",
			TrustScore:      &score,
			GovernanceScore: 4.0,
			OverallScore:    4.0,
		}},
		justice: []domain.JusticeFeedback{{
			ID:               "session-2",
			District:         "Riverside",
			JusticeSentiment: domain.SentimentPositive,
			OverallScore:     3.5,
		}},
	}
	r := setupRouter(t, repo, bcryptHash(t, "secret123"))
	token := loginToken(t, r, "secret123")

	rec := performAuthRequest(r, http.MethodGet, "/admin/feedback/district", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("district list status = %d, body %s", rec.Code, rec.Body.String())
	}
	var districtResp struct {
		Feedback []domain.DistrictFeedback `json:"feedback"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &districtResp); err != nil {
		t.Fatalf("decode district list: %v", err)
	}
	if len(districtResp.Feedback) != 1 || districtResp.Feedback[0].ID != "session-1" {
		t.Errorf("unexpected district list %+v", districtResp.Feedback)
	}

	rec = performAuthRequest(r, http.MethodGet, "/admin/feedback/justice", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("justice list status = %d, body %s", rec.Code, rec.Body.String())
	}
	var justiceResp struct {
		Feedback []domain.JusticeFeedback `json:"feedback"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &justiceResp); err != nil {
		t.Fatalf("decode justice list: %v", err)
	}
	if len(justiceResp.Feedback) != 1 || justiceResp.Feedback[0].ID != "session-2" {
		t.Errorf("unexpected justice list %+v", justiceResp.Feedback)
	}
}
