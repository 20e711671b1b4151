package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/transitline/fleet-tracking/internal/core/domain"
	"github.com/transitline/fleet-tracking/internal/core/ports"
)

func TestBusHandler_ReportLocation_Success(t *testing.T) {
	var got ports.LocationReportInput
	tracking := &stubTrackingService{
		reportFn: func(_ context.Context, in ports.LocationReportInput) (*domain.Bus, error) {
			got = in
			return &domain.Bus{
				BusID:           in.BusID,
				CurrentLocation: &domain.Location{Lat: in.Lat, Lng: in.Lng, Timestamp: in.Timestamp},
			}, nil
		},
	}
	h := NewBusHandler(newStubBusService(), tracking)

	c, rec := newTestContext(http.MethodPost, "/buses/B1/location",
		strings.NewReader(`{"lat":7.29,"lng":80.63,"timestamp":"2025-03-01T08:30:00Z"}`))
	c.SetParamNames("id")
	c.SetParamValues("B1")

	if err := h.ReportLocation(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	want := time.Date(2025, 3, 1, 8, 30, 0, 0, time.UTC)
	if got.BusID != "B1" || got.Lat != 7.29 || got.Lng != 80.63 || !got.Timestamp.Equal(want) || got.Source != "api" {
		t.Fatalf("unexpected service input: %+v", got)
	}

	var bus domain.Bus
	if err := json.Unmarshal(rec.Body.Bytes(), &bus); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if bus.CurrentLocation == nil || bus.CurrentLocation.Lat != 7.29 {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestBusHandler_ReportLocation_Rejects(t *testing.T) {
	cases := []struct {
		name string
		body string
		want int
	}{
		{"malformed", `{"lat":`, http.StatusBadRequest},
		{"missing lat", `{"lng":80.63}`, http.StatusUnprocessableEntity},
		{"lat out of range", `{"lat":91,"lng":80.63}`, http.StatusUnprocessableEntity},
		{"lng out of range", `{"lat":7.29,"lng":-180.5}`, http.StatusUnprocessableEntity},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tracking := &stubTrackingService{
				reportFn: func(context.Context, ports.LocationReportInput) (*domain.Bus, error) {
					t.Fatalf("service must not be called")
					return nil, nil
				},
			}
			h := NewBusHandler(newStubBusService(), tracking)
			c, _ := newTestContext(http.MethodPost, "/buses/B1/location", strings.NewReader(tc.body))
			c.SetParamNames("id")
			c.SetParamValues("B1")

			if got := httpStatus(h.ReportLocation(c)); got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestBusHandler_ReportLocation_ZeroCoordinatesAccepted(t *testing.T) {
	called := false
	tracking := &stubTrackingService{
		reportFn: func(_ context.Context, in ports.LocationReportInput) (*domain.Bus, error) {
			called = true
			return &domain.Bus{BusID: in.BusID}, nil
		},
	}
	h := NewBusHandler(newStubBusService(), tracking)
	c, _ := newTestContext(http.MethodPost, "/buses/B1/location", strings.NewReader(`{"lat":0,"lng":0}`))
	c.SetParamNames("id")
	c.SetParamValues("B1")

	if err := h.ReportLocation(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("null island is a valid position")
	}
}

func TestBusHandler_ReportLocation_UnknownBus(t *testing.T) {
	tracking := &stubTrackingService{
		reportFn: func(context.Context, ports.LocationReportInput) (*domain.Bus, error) {
			return nil, domain.ErrBusNotFound
		},
	}
	h := NewBusHandler(newStubBusService(), tracking)
	c, _ := newTestContext(http.MethodPost, "/buses/NOPE/location", strings.NewReader(`{"lat":1,"lng":1}`))
	c.SetParamNames("id")
	c.SetParamValues("NOPE")

	if err := h.ReportLocation(c); !errors.Is(err, domain.ErrBusNotFound) {
		t.Fatalf("expected ErrBusNotFound, got %v", err)
	}
}

func TestBusHandler_List_Filters(t *testing.T) {
	buses := newStubBusService(&domain.Bus{BusID: "B1", RouteID: "R1"})
	h := NewBusHandler(buses, &stubTrackingService{})

	c, rec := newTestContext(http.MethodGet, "/buses?routeId=R1&status=idle&operatorName=north&hasLocation=false&page=2&limit=5", nil)
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	f := buses.lastFilter
	if f.RouteID != "R1" || f.Status != domain.BusIdle || f.OperatorName != "north" || f.Page != 2 || f.Limit != 5 {
		t.Fatalf("unexpected filter: %+v", f)
	}
	if f.HasLocation == nil || *f.HasLocation {
		t.Fatalf("hasLocation=false must be forwarded, got %v", f.HasLocation)
	}

	var resp listResponse[domain.Bus]
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Items) != 1 || resp.Pagination.Total != 1 {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestBusHandler_List_BadQuery(t *testing.T) {
	h := NewBusHandler(newStubBusService(), &stubTrackingService{})
	for _, target := range []string{"/buses?hasLocation=maybe", "/buses?page=two"} {
		c, _ := newTestContext(http.MethodGet, target, nil)
		if got := httpStatus(h.List(c)); got != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", target, got)
		}
	}
}

func TestBusHandler_CreateUpdateDelete(t *testing.T) {
	buses := newStubBusService()
	h := NewBusHandler(buses, &stubTrackingService{})

	c, rec := newTestContext(http.MethodPost, "/buses",
		strings.NewReader(`{"busId":"NB-2001","routeId":"R1","operatorName":"Northern","capacity":52}`))
	if err := h.Create(c); err != nil {
		t.Fatalf("create error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	c, _ = newTestContext(http.MethodPost, "/buses", strings.NewReader(`{"busId":"NB-2002","routeId":"R1","status":"parked"}`))
	if got := httpStatus(h.Create(c)); got != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for unknown status, got %d", got)
	}

	c, rec = newTestContext(http.MethodPut, "/buses/NB-2001", strings.NewReader(`{"status":"maintenance"}`))
	c.SetParamNames("id")
	c.SetParamValues("NB-2001")
	if err := h.Update(c); err != nil {
		t.Fatalf("update error: %v", err)
	}
	if buses.lastUpdate.Status == nil || *buses.lastUpdate.Status != domain.BusMaintenance {
		t.Fatalf("status not forwarded: %+v", buses.lastUpdate)
	}
	if buses.lastUpdate.OperatorName != nil {
		t.Fatalf("absent fields must stay nil")
	}

	c, rec = newTestContext(http.MethodDelete, "/buses/NB-2001", nil)
	c.SetParamNames("id")
	c.SetParamValues("NB-2001")
	if err := h.Delete(c); err != nil {
		t.Fatalf("delete error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}
