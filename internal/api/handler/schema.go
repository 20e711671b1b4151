package handler

import (
	"time"

	"github.com/transitline/fleet-tracking/internal/core/domain"
	"github.com/transitline/fleet-tracking/internal/core/ports"
)

// errorResponse mirrors the envelope rendered by the central error handler.
type errorResponse struct {
	Error string `json:"error"`
}

type acceptedResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count,omitempty"`
}

type pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

type listResponse[T any] struct {
	Items      []T        `json:"items"`
	Pagination pagination `json:"pagination"`
}

func newListResponse[T any](r *ports.ListResult[T]) listResponse[T] {
	items := r.Items
	if items == nil {
		items = []T{}
	}
	return listResponse[T]{
		Items: items,
		Pagination: pagination{
			Page:       r.Page,
			Limit:      r.Limit,
			Total:      r.Total,
			TotalPages: r.TotalPages,
		},
	}
}

type busLocationResponse struct {
	BusID           string           `json:"busId"`
	Status          domain.BusStatus `json:"status"`
	OperatorName    string           `json:"operatorName,omitempty"`
	CurrentLocation *domain.Location `json:"currentLocation"`
	LastUpdated     time.Time        `json:"lastUpdated"`
}

func toBusLocationResponse(l ports.BusLocation) busLocationResponse {
	return busLocationResponse{
		BusID:           l.BusID,
		Status:          l.Status,
		OperatorName:    l.OperatorName,
		CurrentLocation: l.CurrentLocation,
		LastUpdated:     l.LastUpdated,
	}
}

type appliedFilters struct {
	Status       domain.BusStatus `json:"status,omitempty"`
	OperatorName string           `json:"operatorName,omitempty"`
	HasLocation  *bool            `json:"hasLocation,omitempty"`
}

type routeLocationsResponse struct {
	RouteID    string                `json:"routeId"`
	Buses      []busLocationResponse `json:"buses"`
	Pagination pagination            `json:"pagination"`
	Filters    appliedFilters        `json:"filters"`
}

type locationHistoryResponse struct {
	BusID   string                   `json:"busId"`
	Reports []*domain.LocationReport `json:"reports"`
}

type routeDetailResponse struct {
	*domain.Route
	Trips []*domain.Trip `json:"trips"`
}
