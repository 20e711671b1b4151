package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/transitline/fleet-tracking/internal/core/ports"
)

type TripHandler struct {
	trips ports.TripService
}

func NewTripHandler(trips ports.TripService) *TripHandler {
	return &TripHandler{trips: trips}
}

type tripRequest struct {
	TripID        string    `json:"tripId"        validate:"required,max=64"`
	RouteID       string    `json:"routeId"       validate:"required"`
	BusID         string    `json:"busId"         validate:"required"`
	DepartureTime time.Time `json:"departureTime" validate:"required"`
	ArrivalTime   time.Time `json:"arrivalTime"   validate:"required"`
	Date          string    `json:"date"          validate:"required,datetime=2006-01-02"`
}

func (r tripRequest) toInput() ports.TripInput {
	return ports.TripInput{
		TripID:        r.TripID,
		RouteID:       r.RouteID,
		BusID:         r.BusID,
		DepartureTime: r.DepartureTime,
		ArrivalTime:   r.ArrivalTime,
		Date:          r.Date,
	}
}

// Create handles POST /trips.
//
// @Summary      Schedule a trip
// @Tags         trips
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      tripRequest  true  "Trip"
// @Success      201   {object}  domain.Trip
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /trips [post]
func (h *TripHandler) Create(c echo.Context) error {
	var req tripRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	trip, err := h.trips.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, trip)
}

// List handles GET /trips.
//
// @Summary      List trips
// @Tags         trips
// @Produce      json
// @Security     BearerAuth
// @Param        routeId  query     string  false  "Route id"
// @Param        busId    query     string  false  "Bus id"
// @Param        date     query     string  false  "YYYY-MM-DD"
// @Param        page     query     int     false  "Page (1-based)"
// @Param        limit    query     int     false  "Page size (max 100)"
// @Success      200      {object}  listResponse[domain.Trip]
// @Router       /trips [get]
func (h *TripHandler) List(c echo.Context) error {
	page, limit, err := queryPage(c)
	if err != nil {
		return err
	}
	res, err := h.trips.List(c.Request().Context(), ports.TripFilter{
		RouteID: c.QueryParam("routeId"),
		BusID:   c.QueryParam("busId"),
		Date:    c.QueryParam("date"),
		Page:    page,
		Limit:   limit,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newListResponse(res))
}

// Get handles GET /trips/:id.
//
// @Summary      Get a trip
// @Tags         trips
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Trip id"
// @Success      200  {object}  domain.Trip
// @Failure      404  {object}  errorResponse
// @Router       /trips/{id} [get]
func (h *TripHandler) Get(c echo.Context) error {
	trip, err := h.trips.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, trip)
}

// Update handles PUT /trips/:id.
//
// @Summary      Replace a trip
// @Tags         trips
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "Trip id"
// @Param        body  body      tripRequest  true  "Trip"
// @Success      200   {object}  domain.Trip
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /trips/{id} [put]
func (h *TripHandler) Update(c echo.Context) error {
	var req tripRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	trip, err := h.trips.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, trip)
}

// Delete handles DELETE /trips/:id.
//
// @Summary      Delete a trip
// @Tags         trips
// @Security     BearerAuth
// @Param        id   path  string  true  "Trip id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /trips/{id} [delete]
func (h *TripHandler) Delete(c echo.Context) error {
	if err := h.trips.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
