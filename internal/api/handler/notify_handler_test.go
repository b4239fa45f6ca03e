package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/animationlms/platform-api/internal/core/domain"
	"github.com/animationlms/platform-api/internal/core/ports"
)

type stubSignupService struct {
	records []domain.SignupRecord
	fail    error
}

func (s *stubSignupService) Ingest(_ context.Context, in ports.SignupInput) error {
	if s.fail != nil {
		return s.fail
	}
	source := in.Source
	if source == "" {
		source = "Website"
	}
	s.records = append(s.records, domain.SignupRecord{
		Email:     in.Email,
		Phone:     in.Phone,
		Timestamp: in.Timestamp,
		Source:    source,
	})
	return nil
}

func (s *stubSignupService) IngestBatch(_ context.Context, ins []ports.SignupInput) (int, error) {
	if s.fail != nil {
		return 0, s.fail
	}
	for _, in := range ins {
		_ = s.Ingest(context.Background(), in)
	}
	return len(ins), nil
}

func (s *stubSignupService) List(_ context.Context) ([]domain.SignupRecord, error) {
	if s.fail != nil {
		return nil, s.fail
	}
	out := make([]domain.SignupRecord, len(s.records))
	copy(out, s.records)
	return out, nil
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestNotifyHandler_Create_Success(t *testing.T) {
	svc := &stubSignupService{}
	h := NewNotifyHandler(svc)

	c, rec := newTestContext(t, http.MethodPost, "/notify",
		`{"email":"a@b.com","phone":"123","timestamp":"2025-01-02T03:04:05Z"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp notifyResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || resp.Message != "Successfully added to notification list" {
		t.Fatalf("unexpected response: %+v", resp)
	}

	if len(svc.records) != 1 {
		t.Fatalf("expected 1 stored record, got %d", len(svc.records))
	}
	stored := svc.records[0]
	if stored.Email != "a@b.com" || stored.Phone != "123" || stored.Timestamp != "2025-01-02T03:04:05Z" || stored.Source != "Website" {
		t.Fatalf("unexpected stored record: %+v", stored)
	}
}

func TestNotifyHandler_Create_MissingEmail(t *testing.T) {
	h := NewNotifyHandler(&stubSignupService{})

	c, rec := newTestContext(t, http.MethodPost, "/notify", `{"phone":"123"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp notifyResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Success {
		t.Fatalf("expected success=false")
	}
}

func TestNotifyHandler_Create_StoreFailure(t *testing.T) {
	h := NewNotifyHandler(&stubSignupService{fail: errors.New("connection refused")})

	c, rec := newTestContext(t, http.MethodPost, "/notify", `{"email":"a@b.com"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler must render the failure itself, got error: %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	var resp notifyResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Success || resp.Message != "connection refused" {
		t.Fatalf("expected raw store error surfaced, got %+v", resp)
	}
}

func TestNotifyHandler_List(t *testing.T) {
	svc := &stubSignupService{records: []domain.SignupRecord{
		{Email: "a@b.com", Phone: "123", Timestamp: "2025-01-02T03:04:05Z", Source: "Website"},
		{Email: "a@b.com", Phone: "123", Timestamp: "2025-01-02T03:04:06Z", Source: "Website"},
	}}
	h := NewNotifyHandler(svc)

	c, rec := newTestContext(t, http.MethodGet, "/notify", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp notifyListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || resp.Count != 2 || len(resp.Data) != 2 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	// Duplicate emails appear as distinct records.
	if resp.Data[0].Email != resp.Data[1].Email {
		t.Fatalf("expected duplicate emails preserved")
	}
}

func TestNotifyHandler_List_StoreFailure(t *testing.T) {
	h := NewNotifyHandler(&stubSignupService{fail: errors.New("no reachable servers")})

	c, rec := newTestContext(t, http.MethodGet, "/notify", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	var resp notifyResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Success || resp.Message != "no reachable servers" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}
