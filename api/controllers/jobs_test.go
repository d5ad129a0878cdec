package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	jobsvc "github.com/righttool/righttool-backend/internal/jobs"
	pkgerrors "github.com/righttool/righttool-backend/pkg/errors"
)

type stubJobService struct {
	list []jobsvc.JobDTO
	err  error
}

func (s stubJobService) List(ctx context.Context) ([]jobsvc.JobDTO, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.list, nil
}

func TestListJobsSuccess(t *testing.T) {
	list := []jobsvc.JobDTO{
		{ID: uuid.New(), Slug: "front-brake-pads", Title: "Front Brake Pads", Category: "Brakes"},
		{ID: uuid.New(), Slug: "spark-plugs", Title: "Spark Plugs", Category: "Ignition"},
	}
	handler := ListJobs(stubJobService{list: list}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}

	var envelope struct {
		Data []jobsvc.JobDTO `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data) != 2 {
		t.Fatalf("expected 2 jobs got %d", len(envelope.Data))
	}
	if envelope.Data[0].Slug != "front-brake-pads" {
		t.Fatalf("expected front-brake-pads first got %s", envelope.Data[0].Slug)
	}
}

func TestListJobsStoreFault(t *testing.T) {
	handler := ListJobs(stubJobService{err: pkgerrors.New(pkgerrors.CodeInternal, "store down")}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", rec.Code)
	}
}
