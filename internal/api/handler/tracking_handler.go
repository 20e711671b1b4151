package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/transitline/fleet-tracking/internal/core/domain"
	"github.com/transitline/fleet-tracking/internal/core/ports"
)

// TrackingHandler serves the read side of bus locations.
type TrackingHandler struct {
	tracking ports.TrackingService
}

func NewTrackingHandler(tracking ports.TrackingService) *TrackingHandler {
	return &TrackingHandler{tracking: tracking}
}

// GetBusLocation handles GET /tracking/:busId.
//
// @Summary      Current location of a bus
// @Tags         tracking
// @Produce      json
// @Security     BearerAuth
// @Param        busId  path      string  true  "Bus id"
// @Success      200    {object}  busLocationResponse
// @Failure      401    {object}  errorResponse
// @Failure      404    {object}  errorResponse
// @Router       /tracking/{busId} [get]
func (h *TrackingHandler) GetBusLocation(c echo.Context) error {
	loc, err := h.tracking.GetBusLocation(c.Request().Context(), c.Param("busId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBusLocationResponse(*loc))
}

// ListRouteLocations handles GET /tracking/route/:routeId.
//
// @Summary      Locations of the buses on a route
// @Tags         tracking
// @Produce      json
// @Security     BearerAuth
// @Param        routeId       path      string  true   "Route id"
// @Param        status        query     string  false  "idle, on-trip or maintenance"
// @Param        operatorName  query     string  false  "Case-insensitive substring"
// @Param        hasLocation   query     bool    false  "Only buses with (true) or without (false) a location"
// @Param        page          query     int     false  "Page (1-based)"
// @Param        limit         query     int     false  "Page size (max 100)"
// @Success      200           {object}  routeLocationsResponse
// @Failure      400           {object}  errorResponse
// @Failure      422           {object}  errorResponse
// @Router       /tracking/route/{routeId} [get]
func (h *TrackingHandler) ListRouteLocations(c echo.Context) error {
	page, limit, err := queryPage(c)
	if err != nil {
		return err
	}
	hasLocation, err := queryTriState(c, "hasLocation")
	if err != nil {
		return err
	}

	res, err := h.tracking.ListRouteLocations(c.Request().Context(), ports.RouteLocationsQuery{
		RouteID:      c.Param("routeId"),
		Status:       domain.BusStatus(c.QueryParam("status")),
		OperatorName: c.QueryParam("operatorName"),
		HasLocation:  hasLocation,
		Page:         page,
		Limit:        limit,
	})
	if err != nil {
		return err
	}

	buses := make([]busLocationResponse, 0, len(res.Items))
	for _, item := range res.Items {
		buses = append(buses, toBusLocationResponse(item))
	}
	return c.JSON(http.StatusOK, routeLocationsResponse{
		RouteID: res.Applied.RouteID,
		Buses:   buses,
		Pagination: pagination{
			Page:       res.Page,
			Limit:      res.Limit,
			Total:      res.Total,
			TotalPages: res.TotalPages,
		},
		Filters: appliedFilters{
			Status:       res.Applied.Status,
			OperatorName: res.Applied.OperatorName,
			HasLocation:  res.Applied.HasLocation,
		},
	})
}

// History handles GET /tracking/:busId/history.
//
// @Summary      Recent location reports of a bus
// @Tags         tracking
// @Produce      json
// @Security     BearerAuth
// @Param        busId  path      string  true   "Bus id"
// @Param        limit  query     int     false  "Max reports (default 50, max 100)"
// @Success      200    {object}  locationHistoryResponse
// @Failure      404    {object}  errorResponse
// @Router       /tracking/{busId}/history [get]
func (h *TrackingHandler) History(c echo.Context) error {
	limit, err := queryInt(c, "limit")
	if err != nil {
		return err
	}

	busID := c.Param("busId")
	reports, err := h.tracking.History(c.Request().Context(), busID, limit)
	if err != nil {
		return err
	}
	if reports == nil {
		reports = []*domain.LocationReport{}
	}
	return c.JSON(http.StatusOK, locationHistoryResponse{BusID: busID, Reports: reports})
}
