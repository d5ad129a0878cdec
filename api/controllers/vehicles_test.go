package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	vehiclesvc "github.com/righttool/righttool-backend/internal/vehicles"
	pkgerrors "github.com/righttool/righttool-backend/pkg/errors"
)

type stubVehicleService struct {
	list []vehiclesvc.VehicleDTO
	err  error
}

func (s stubVehicleService) List(ctx context.Context) ([]vehiclesvc.VehicleDTO, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.list, nil
}

func TestListVehiclesSuccess(t *testing.T) {
	list := []vehiclesvc.VehicleDTO{
		{ID: uuid.New(), Year: 2019, Make: "Toyota", Model: "RAV4", Engine: "2.5L I4"},
		{ID: uuid.New(), Year: 2015, Make: "Honda", Model: "Accord", Engine: "2.4L I4"},
	}
	handler := ListVehicles(stubVehicleService{list: list}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/vehicles", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}

	var envelope struct {
		Data []vehiclesvc.VehicleDTO `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data) != 2 {
		t.Fatalf("expected 2 vehicles got %d", len(envelope.Data))
	}
	if envelope.Data[0].Model != "RAV4" {
		t.Fatalf("expected RAV4 first got %s", envelope.Data[0].Model)
	}
}

func TestListVehiclesStoreFault(t *testing.T) {
	handler := ListVehicles(stubVehicleService{err: pkgerrors.New(pkgerrors.CodeInternal, "store down")}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/vehicles", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", rec.Code)
	}
}

func TestListVehiclesServiceUnavailable(t *testing.T) {
	handler := ListVehicles(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/vehicles", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", rec.Code)
	}
}
