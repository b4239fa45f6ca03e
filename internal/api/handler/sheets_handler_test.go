package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/animationlms/platform-api/internal/core/domain"
)

func TestSheetsHandler_BulkInsert_Array(t *testing.T) {
	svc := &stubSignupService{}
	h := NewSheetsHandler(svc)

	c, rec := newTestContext(t, http.MethodPost, "/sheets-setup", `[{"email":"x"},{"email":"y"}]`)
	if err := h.BulkInsert(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp sheetsInsertResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || resp.Inserted != 2 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if len(svc.records) != 2 {
		t.Fatalf("expected 2 stored records, got %d", len(svc.records))
	}
}

func TestSheetsHandler_BulkInsert_SingleObject(t *testing.T) {
	svc := &stubSignupService{}
	h := NewSheetsHandler(svc)

	c, rec := newTestContext(t, http.MethodPost, "/sheets-setup", `{"email":"solo@b.com","source":"Import"}`)
	if err := h.BulkInsert(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp sheetsInsertResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || resp.Inserted != 1 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if svc.records[0].Source != "Import" {
		t.Fatalf("expected submitted source kept, got %q", svc.records[0].Source)
	}
}

func TestSheetsHandler_BulkInsert_InvalidJSON(t *testing.T) {
	h := NewSheetsHandler(&stubSignupService{})

	c, rec := newTestContext(t, http.MethodPost, "/sheets-setup", `{not json`)
	if err := h.BulkInsert(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestSheetsHandler_BulkInsert_StoreFailure(t *testing.T) {
	h := NewSheetsHandler(&stubSignupService{fail: errors.New("write concern error")})

	c, rec := newTestContext(t, http.MethodPost, "/sheets-setup", `[{"email":"x"}]`)
	if err := h.BulkInsert(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	var resp sheetsErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Success || resp.Error != "write concern error" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestSheetsHandler_List(t *testing.T) {
	svc := &stubSignupService{records: []domain.SignupRecord{
		{Email: "x", Source: "Website"},
		{Email: "y", Source: "Website"},
	}}
	h := NewSheetsHandler(svc)

	c, rec := newTestContext(t, http.MethodGet, "/sheets-setup", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp sheetsListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || len(resp.Notifications) != 2 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestSheetsHandler_List_StoreFailure(t *testing.T) {
	h := NewSheetsHandler(&stubSignupService{fail: errors.New("topology closed")})

	c, rec := newTestContext(t, http.MethodGet, "/sheets-setup", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	var resp sheetsErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Success || resp.Error != "topology closed" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}
