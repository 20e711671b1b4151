package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/transitline/fleet-tracking/internal/core/ports"
)

type SeedHandler struct {
	seeder ports.SeedService
	log    zerolog.Logger
}

func NewSeedHandler(seeder ports.SeedService, log zerolog.Logger) *SeedHandler {
	return &SeedHandler{seeder: seeder, log: log}
}

type messageResponse struct {
	Message string `json:"message"`
}

// Seed handles POST /seed. Every collection is wiped and reloaded.
//
// @Summary      Reset the database with sample data (development only)
// @Tags         seed
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorResponse
// @Router       /seed [post]
func (h *SeedHandler) Seed(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	if err := h.seeder.Seed(c.Request().Context()); err != nil {
		return err
	}
	h.log.Warn().Str("user_id", p.UserID).Msg("database reseeded")
	return c.JSON(http.StatusOK, messageResponse{Message: "database seeded"})
}
