package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/transitline/fleet-tracking/internal/api/metrics"
	"github.com/transitline/fleet-tracking/internal/core/domain"
	"github.com/transitline/fleet-tracking/internal/core/ports"
)

// BusHandler serves bus records and the single location report path.
type BusHandler struct {
	buses    ports.BusService
	tracking ports.TrackingService
}

func NewBusHandler(buses ports.BusService, tracking ports.TrackingService) *BusHandler {
	return &BusHandler{buses: buses, tracking: tracking}
}

type createBusRequest struct {
	BusID          string `json:"busId"          validate:"required,max=64"`
	RegistrationNo string `json:"registrationNo"`
	OperatorName   string `json:"operatorName"`
	Capacity       int    `json:"capacity"       validate:"gte=0"`
	RouteID        string `json:"routeId"        validate:"required"`
	Status         string `json:"status"         validate:"omitempty,oneof=idle on-trip maintenance"`
}

type updateBusRequest struct {
	RegistrationNo *string `json:"registrationNo"`
	OperatorName   *string `json:"operatorName"`
	Capacity       *int    `json:"capacity" validate:"omitempty,gte=0"`
	RouteID        *string `json:"routeId"`
	Status         *string `json:"status"   validate:"omitempty,oneof=idle on-trip maintenance"`
}

type locationRequest struct {
	Lat       *float64   `json:"lat"       validate:"required,gte=-90,lte=90"`
	Lng       *float64   `json:"lng"       validate:"required,gte=-180,lte=180"`
	Timestamp *time.Time `json:"timestamp"`
}

func (r locationRequest) toInput(busID, source string) ports.LocationReportInput {
	in := ports.LocationReportInput{BusID: busID, Lat: *r.Lat, Lng: *r.Lng, Source: source}
	if r.Timestamp != nil {
		in.Timestamp = *r.Timestamp
	}
	return in
}

// Create handles POST /buses.
//
// @Summary      Create a bus
// @Tags         buses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBusRequest  true  "Bus"
// @Success      201   {object}  domain.Bus
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /buses [post]
func (h *BusHandler) Create(c echo.Context) error {
	var req createBusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	bus, err := h.buses.Create(c.Request().Context(), ports.BusInput{
		BusID:          req.BusID,
		RegistrationNo: req.RegistrationNo,
		OperatorName:   req.OperatorName,
		Capacity:       req.Capacity,
		RouteID:        req.RouteID,
		Status:         domain.BusStatus(req.Status),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, bus)
}

// List handles GET /buses.
//
// @Summary      List buses
// @Tags         buses
// @Produce      json
// @Security     BearerAuth
// @Param        routeId       query     string  false  "Route id"
// @Param        status        query     string  false  "idle, on-trip or maintenance"
// @Param        operatorName  query     string  false  "Case-insensitive substring"
// @Param        hasLocation   query     bool    false  "Only buses with (true) or without (false) a location"
// @Param        page          query     int     false  "Page (1-based)"
// @Param        limit         query     int     false  "Page size (max 100)"
// @Success      200           {object}  listResponse[domain.Bus]
// @Failure      400           {object}  errorResponse
// @Router       /buses [get]
func (h *BusHandler) List(c echo.Context) error {
	page, limit, err := queryPage(c)
	if err != nil {
		return err
	}
	hasLocation, err := queryTriState(c, "hasLocation")
	if err != nil {
		return err
	}

	res, err := h.buses.List(c.Request().Context(), ports.BusFilter{
		RouteID:      c.QueryParam("routeId"),
		Status:       domain.BusStatus(c.QueryParam("status")),
		OperatorName: c.QueryParam("operatorName"),
		HasLocation:  hasLocation,
		Page:         page,
		Limit:        limit,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newListResponse(res))
}

// Get handles GET /buses/:id.
//
// @Summary      Get a bus
// @Tags         buses
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Bus id (e.g. NB-1001)"
// @Success      200  {object}  domain.Bus
// @Failure      404  {object}  errorResponse
// @Router       /buses/{id} [get]
func (h *BusHandler) Get(c echo.Context) error {
	bus, err := h.buses.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bus)
}

// Update handles PUT /buses/:id. Absent fields are left unchanged.
//
// @Summary      Update a bus
// @Tags         buses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Bus id"
// @Param        body  body      updateBusRequest  true  "Fields to change"
// @Success      200   {object}  domain.Bus
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /buses/{id} [put]
func (h *BusHandler) Update(c echo.Context) error {
	var req updateBusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	upd := ports.BusUpdate{
		RegistrationNo: req.RegistrationNo,
		OperatorName:   req.OperatorName,
		Capacity:       req.Capacity,
		RouteID:        req.RouteID,
	}
	if req.Status != nil {
		s := domain.BusStatus(*req.Status)
		upd.Status = &s
	}

	bus, err := h.buses.Update(c.Request().Context(), c.Param("id"), upd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bus)
}

// Delete handles DELETE /buses/:id.
//
// @Summary      Delete a bus
// @Tags         buses
// @Security     BearerAuth
// @Param        id   path  string  true  "Bus id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /buses/{id} [delete]
func (h *BusHandler) Delete(c echo.Context) error {
	if err := h.buses.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ReportLocation handles POST /buses/:id/location.
//
// @Summary      Report a bus location
// @Tags         tracking
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Bus id"
// @Param        body  body      locationRequest  true  "Position"
// @Success      200   {object}  domain.Bus
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /buses/{id}/location [post]
func (h *BusHandler) ReportLocation(c echo.Context) error {
	var req locationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	bus, err := h.tracking.ReportLocation(c.Request().Context(), req.toInput(c.Param("id"), "api"))
	if err != nil {
		metrics.LocationErrorsTotal.WithLabelValues(metrics.LocationErrorReason(err)).Inc()
		return err
	}

	metrics.LocationReportsTotal.WithLabelValues("api").Inc()
	return c.JSON(http.StatusOK, bus)
}
