package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHealthOK(t *testing.T) {
	_, r := setupTest(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	if w.Body.String() != "OK" {
		t.Fatalf("body %q", w.Body.String())
	}
}

func TestHealthDBDown(t *testing.T) {
	db, r := setupTest(t)

	sqlDB, _ := db.DB()
	sqlDB.Close()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status %d", w.Code)
	}
}

func TestRequireDBGuard(t *testing.T) {
	db, r := setupTest(t)

	sqlDB, _ := db.DB()
	sqlDB.Close()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/users/paged", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status %d", w.Code)
	}
	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if resp.Error != "Database not connected" {
		t.Fatalf("error %q", resp.Error)
	}
}

func TestNoRouteJSON(t *testing.T) {
	_, r := setupTest(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/no/such/route", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status %d", w.Code)
	}
	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("non-JSON 404 body: %q", w.Body.String())
	}
}
