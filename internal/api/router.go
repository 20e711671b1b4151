package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/transitline/fleet-tracking/docs"
	"github.com/transitline/fleet-tracking/internal/api/handler"
	"github.com/transitline/fleet-tracking/internal/api/middleware"
	"github.com/transitline/fleet-tracking/internal/core/domain"
	"github.com/transitline/fleet-tracking/internal/core/ports"
)

// Deps are the services the HTTP layer is built from.
type Deps struct {
	Auth          ports.AuthService
	Authenticator ports.Authenticator
	Tracking      ports.TrackingService
	Buses         ports.BusService
	Routes        ports.RouteService
	Trips         ports.TripService
	Seeder        ports.SeedService
	Dispatcher    handler.LocationDispatcher
	Checks        []handler.DependencyCheck
	Log           zerolog.Logger

	LoginRatePerSec float64
	LoginBurst      int
}

var (
	adminOnly = domain.NewRoleSet(domain.RoleAdmin)
	reporters = domain.NewRoleSet(domain.RoleAdmin, domain.RoleBusOperator)
	anyRole   = domain.AllRoles
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(d.Log))
	e.Use(middleware.Metrics())
	e.Use(echomiddleware.Secure())
	e.Use(echomiddleware.CORS())

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(d.Auth)
	busHandler := handler.NewBusHandler(d.Buses, d.Tracking)
	locationHandler := handler.NewLocationHandler(d.Dispatcher)
	trackingHandler := handler.NewTrackingHandler(d.Tracking)
	routeHandler := handler.NewRouteHandler(d.Routes)
	tripHandler := handler.NewTripHandler(d.Trips)
	seedHandler := handler.NewSeedHandler(d.Seeder, d.Log)

	authn := middleware.Auth(d.Authenticator)
	allow := middleware.RBAC

	// --- Auth routes ---
	// Register authenticates inside the service: the first admin needs no token.
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login, middleware.LoginRateLimit(d.LoginRatePerSec, d.LoginBurst))

	// --- Buses ---
	buses := e.Group("/buses", authn)
	buses.GET("", busHandler.List, allow(anyRole))
	buses.POST("", busHandler.Create, allow(adminOnly))
	buses.POST("/locations/batch", locationHandler.ReceiveBatch, allow(reporters))
	buses.GET("/:id", busHandler.Get, allow(anyRole))
	buses.PUT("/:id", busHandler.Update, allow(adminOnly))
	buses.DELETE("/:id", busHandler.Delete, allow(adminOnly))
	buses.POST("/:id/location", busHandler.ReportLocation, allow(reporters))

	// --- Tracking ---
	tracking := e.Group("/tracking", authn, allow(anyRole))
	tracking.GET("/route/:routeId", trackingHandler.ListRouteLocations)
	tracking.GET("/:busId", trackingHandler.GetBusLocation)
	tracking.GET("/:busId/history", trackingHandler.History)

	// --- Routes ---
	routes := e.Group("/routes", authn)
	routes.GET("", routeHandler.List, allow(anyRole))
	routes.POST("", routeHandler.Create, allow(adminOnly))
	routes.GET("/:id", routeHandler.Get, allow(anyRole))
	routes.PUT("/:id", routeHandler.Update, allow(adminOnly))
	routes.DELETE("/:id", routeHandler.Delete, allow(adminOnly))

	// --- Trips ---
	trips := e.Group("/trips", authn)
	trips.GET("", tripHandler.List, allow(anyRole))
	trips.POST("", tripHandler.Create, allow(adminOnly))
	trips.GET("/:id", tripHandler.Get, allow(anyRole))
	trips.PUT("/:id", tripHandler.Update, allow(adminOnly))
	trips.DELETE("/:id", tripHandler.Delete, allow(adminOnly))

	// --- Seed (development only, enforced by the service) ---
	e.POST("/seed", seedHandler.Seed, authn, allow(adminOnly))

	// --- Health probes (no auth required) ---
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/health/ready", handler.NewReadinessHandler(d.Checks...).Readiness)

	// --- Ops ---
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
