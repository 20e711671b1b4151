package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/transitline/fleet-tracking/internal/core/domain"
	"github.com/transitline/fleet-tracking/internal/core/ports"
)

type RouteHandler struct {
	routes ports.RouteService
}

func NewRouteHandler(routes ports.RouteService) *RouteHandler {
	return &RouteHandler{routes: routes}
}

type stopRequest struct {
	Name string  `json:"name" validate:"required"`
	Lat  float64 `json:"lat"  validate:"gte=-90,lte=90"`
	Lng  float64 `json:"lng"  validate:"gte=-180,lte=180"`
}

type routeRequest struct {
	Code                 string        `json:"code"                 validate:"required,max=32"`
	Name                 string        `json:"name"                 validate:"required"`
	Origin               string        `json:"origin"`
	Destination          string        `json:"destination"`
	Stops                []stopRequest `json:"stops"                validate:"dive"`
	DistanceKm           float64       `json:"distanceKm"           validate:"gte=0"`
	EstimatedDurationMin int           `json:"estimatedDurationMin" validate:"gte=0"`
}

func (r routeRequest) toInput() ports.RouteInput {
	stops := make([]domain.Stop, 0, len(r.Stops))
	for _, s := range r.Stops {
		stops = append(stops, domain.Stop{Name: s.Name, Lat: s.Lat, Lng: s.Lng})
	}
	return ports.RouteInput{
		Code:                 r.Code,
		Name:                 r.Name,
		Origin:               r.Origin,
		Destination:          r.Destination,
		Stops:                stops,
		DistanceKm:           r.DistanceKm,
		EstimatedDurationMin: r.EstimatedDurationMin,
	}
}

// Create handles POST /routes.
//
// @Summary      Create a route
// @Tags         routes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      routeRequest  true  "Route"
// @Success      201   {object}  domain.Route
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /routes [post]
func (h *RouteHandler) Create(c echo.Context) error {
	var req routeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	route, err := h.routes.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, route)
}

// List handles GET /routes.
//
// @Summary      List routes
// @Tags         routes
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page (1-based)"
// @Param        limit  query     int  false  "Page size (max 100)"
// @Success      200    {object}  listResponse[domain.Route]
// @Router       /routes [get]
func (h *RouteHandler) List(c echo.Context) error {
	page, limit, err := queryPage(c)
	if err != nil {
		return err
	}
	res, err := h.routes.List(c.Request().Context(), ports.Page{Page: page, Limit: limit})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newListResponse(res))
}

// Get handles GET /routes/:id and includes the route's trips.
//
// @Summary      Get a route with its trips
// @Tags         routes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Route id"
// @Success      200  {object}  routeDetailResponse
// @Failure      404  {object}  errorResponse
// @Router       /routes/{id} [get]
func (h *RouteHandler) Get(c echo.Context) error {
	detail, err := h.routes.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	trips := detail.Trips
	if trips == nil {
		trips = []*domain.Trip{}
	}
	return c.JSON(http.StatusOK, routeDetailResponse{Route: detail.Route, Trips: trips})
}

// Update handles PUT /routes/:id.
//
// @Summary      Replace a route
// @Tags         routes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string        true  "Route id"
// @Param        body  body      routeRequest  true  "Route"
// @Success      200   {object}  domain.Route
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /routes/{id} [put]
func (h *RouteHandler) Update(c echo.Context) error {
	var req routeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	route, err := h.routes.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, route)
}

// Delete handles DELETE /routes/:id.
//
// @Summary      Delete a route
// @Tags         routes
// @Security     BearerAuth
// @Param        id   path  string  true  "Route id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /routes/{id} [delete]
func (h *RouteHandler) Delete(c echo.Context) error {
	if err := h.routes.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
