package doctor

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestHandlerListSpecialties(t *testing.T) {
	svc, _ := newTestService()
	h := NewHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/specialities", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	if err := h.ListSpecialties(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body struct {
		Specialities []string `json:"specialities"`
		Error        string   `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(body.Specialities) != 2 {
		t.Errorf("expected 2 specialties, got %v", body.Specialities)
	}
	if body.Error != "" {
		t.Errorf("unexpected error field: %s", body.Error)
	}
}

func TestHandlerListSpecialties_StoreFailureIsStillOK(t *testing.T) {
	svc, repo := newTestService()
	repo.err = errors.New("connection refused")
	h := NewHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/specialities", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	if err := h.ListSpecialties(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("store failures must report 200, got %d", rec.Code)
	}

	var body struct {
		Specialities []string `json:"specialities"`
		Error        string   `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body.Specialities == nil || len(body.Specialities) != 0 {
		t.Errorf("expected empty specialities list, got %v", body.Specialities)
	}
	if body.Error != "connection refused" {
		t.Errorf("expected error field, got %q", body.Error)
	}
}

func TestHandlerListBySpecialty(t *testing.T) {
	svc, _ := newTestService()
	h := NewHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	c.SetPath("/doctors/:speciality")
	c.SetParamNames("speciality")
	c.SetParamValues("Cardiology")

	if err := h.ListBySpecialty(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var doctors []map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &doctors); err != nil {
		t.Fatalf("expected a bare array response: %v", err)
	}
	if len(doctors) != 2 {
		t.Fatalf("expected 2 doctors, got %d", len(doctors))
	}
	if _, ok := doctors[0]["doctor_id"]; ok {
		t.Error("doctor id must not appear in the listing payload")
	}
	if doctors[0]["name"] != "Dr. Smith" {
		t.Errorf("unexpected first doctor: %v", doctors[0])
	}
}

func TestHandlerListBySpecialty_NoMatchIsEmptyArray(t *testing.T) {
	svc, _ := newTestService()
	h := NewHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	c.SetPath("/doctors/:speciality")
	c.SetParamNames("speciality")
	c.SetParamValues("Podiatry")

	if err := h.ListBySpecialty(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got := rec.Body.String(); got != "[]\n" {
		t.Errorf("expected empty JSON array, got %q", got)
	}
}

func TestHandlerListBySpecialty_StoreFailureIsStillOK(t *testing.T) {
	svc, repo := newTestService()
	repo.err = errors.New("connection refused")
	h := NewHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	c.SetPath("/doctors/:speciality")
	c.SetParamNames("speciality")
	c.SetParamValues("Cardiology")

	if err := h.ListBySpecialty(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("store failures must report 200, got %d", rec.Code)
	}

	var body struct {
		Error   string                   `json:"error"`
		Doctors []map[string]interface{} `json:"doctors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body.Error != "connection refused" || len(body.Doctors) != 0 {
		t.Errorf("unexpected failure shape: %+v", body)
	}
}
