package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	jobsvc "github.com/righttool/righttool-backend/internal/jobs"
	lookupsvc "github.com/righttool/righttool-backend/internal/lookup"
	vehiclesvc "github.com/righttool/righttool-backend/internal/vehicles"
	pkgerrors "github.com/righttool/righttool-backend/pkg/errors"
)

type stubLookupService struct {
	result *lookupsvc.LookupResult
	err    error
}

func (s stubLookupService) Lookup(ctx context.Context, vehicleID, jobID uuid.UUID) (*lookupsvc.LookupResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func lookupPayload(vehicleID, jobID string) []byte {
	return []byte(fmt.Sprintf(`{"vehicleId":%q,"jobId":%q}`, vehicleID, jobID))
}

func TestToolLookupSuccess(t *testing.T) {
	vehicleID := uuid.New()
	jobID := uuid.New()
	notes := "Lug nuts"
	result := &lookupsvc.LookupResult{
		Vehicle: vehiclesvc.VehicleDTO{ID: vehicleID, Year: 2015, Make: "Honda", Model: "Accord", Engine: "2.4L I4"},
		Job:     jobsvc.JobDTO{ID: jobID, Slug: "front-brake-pads", Title: "Front Brake Pads", Category: "Brakes"},
		Tools: []lookupsvc.RequirementDTO{
			{
				RequirementID: uuid.New(),
				Qty:           1,
				Notes:         &notes,
				Tool:          lookupsvc.ToolDTO{ID: uuid.New(), Name: "Socket"},
			},
		},
	}
	handler := ToolLookup(stubLookupService{result: result}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/tools/lookup", bytes.NewReader(lookupPayload(vehicleID.String(), jobID.String())))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rec.Code, rec.Body.String())
	}

	var envelope struct {
		Data lookupsvc.LookupResult `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Vehicle.ID != vehicleID {
		t.Fatalf("expected vehicle %s got %s", vehicleID, envelope.Data.Vehicle.ID)
	}
	if len(envelope.Data.Tools) != 1 {
		t.Fatalf("expected 1 tool got %d", len(envelope.Data.Tools))
	}
	if envelope.Data.Tools[0].Tool.Name != "Socket" {
		t.Fatalf("expected Socket got %s", envelope.Data.Tools[0].Tool.Name)
	}
}

func TestToolLookupEmptyResultKeepsMessage(t *testing.T) {
	result := &lookupsvc.LookupResult{
		Vehicle: vehiclesvc.VehicleDTO{ID: uuid.New()},
		Job:     jobsvc.JobDTO{ID: uuid.New()},
		Tools:   []lookupsvc.RequirementDTO{},
		Message: lookupsvc.EmptyResultMessage,
	}
	handler := ToolLookup(stubLookupService{result: result}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/tools/lookup", bytes.NewReader(lookupPayload(uuid.NewString(), uuid.NewString())))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}

	var envelope struct {
		Data struct {
			Tools   []json.RawMessage `json:"tools"`
			Message string            `json:"message"`
		} `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Tools == nil || len(envelope.Data.Tools) != 0 {
		t.Fatalf("expected empty tools array got %v", envelope.Data.Tools)
	}
	if envelope.Data.Message != lookupsvc.EmptyResultMessage {
		t.Fatalf("expected message %q got %q", lookupsvc.EmptyResultMessage, envelope.Data.Message)
	}
}

func TestToolLookupMissingFields(t *testing.T) {
	handler := ToolLookup(stubLookupService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/tools/lookup", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestToolLookupMalformedUUID(t *testing.T) {
	handler := ToolLookup(stubLookupService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/tools/lookup", bytes.NewReader(lookupPayload("not-a-uuid", uuid.NewString())))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestToolLookupUnknownField(t *testing.T) {
	handler := ToolLookup(stubLookupService{}, nil)

	payload := []byte(fmt.Sprintf(`{"vehicleId":%q,"jobId":%q,"extra":true}`, uuid.NewString(), uuid.NewString()))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tools/lookup", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestToolLookupVehicleNotFound(t *testing.T) {
	handler := ToolLookup(stubLookupService{err: pkgerrors.New(pkgerrors.CodeNotFound, "vehicle not found")}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/tools/lookup", bytes.NewReader(lookupPayload(uuid.NewString(), uuid.NewString())))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rec.Code)
	}

	var envelope struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Error.Message != "vehicle not found" {
		t.Fatalf("expected vehicle message got %q", envelope.Error.Message)
	}
}

func TestToolLookupServiceUnavailable(t *testing.T) {
	handler := ToolLookup(nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/tools/lookup", bytes.NewReader(lookupPayload(uuid.NewString(), uuid.NewString())))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", rec.Code)
	}
}
