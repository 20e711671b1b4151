package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/transitline/fleet-tracking/internal/core/ports"
)

const maxBatchSize = 500

// LocationDispatcher is the interface the handler uses to enqueue reports.
type LocationDispatcher interface {
	EnqueueBatch(ctx context.Context, reports []ports.LocationReportInput) (int, error)
}

// LocationHandler handles batched location ingestion.
type LocationHandler struct {
	dispatcher LocationDispatcher
}

// NewLocationHandler creates a LocationHandler backed by the given dispatcher.
func NewLocationHandler(dispatcher LocationDispatcher) *LocationHandler {
	return &LocationHandler{dispatcher: dispatcher}
}

type batchLocationRequest struct {
	BusID string `json:"busId" validate:"required"`
	locationRequest
}

// ReceiveBatch handles POST /buses/locations/batch and enqueues every report,
// returning 202. Reports for the same bus are applied in request order.
//
// @Summary      Ingest a batch of location reports
// @Tags         tracking
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      []batchLocationRequest  true  "Array of location reports"
// @Success      202   {object}  acceptedResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      503   {object}  errorResponse
// @Router       /buses/locations/batch [post]
func (h *LocationHandler) ReceiveBatch(c echo.Context) error {
	var reqs []batchLocationRequest
	if err := c.Bind(&reqs); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if len(reqs) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "batch cannot be empty")
	}
	if len(reqs) > maxBatchSize {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, fmt.Sprintf("batch exceeds %d reports", maxBatchSize))
	}

	inputs := make([]ports.LocationReportInput, 0, len(reqs))
	for i := range reqs {
		if err := c.Validate(&reqs[i]); err != nil {
			return echo.NewHTTPError(http.StatusUnprocessableEntity,
				fmt.Sprintf("report[%d]: %s", i, err.Error()))
		}
		inputs = append(inputs, reqs[i].toInput(reqs[i].BusID, "batch"))
	}

	n, err := h.dispatcher.EnqueueBatch(c.Request().Context(), inputs)
	if err != nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable,
			fmt.Sprintf("queue unavailable after %d of %d reports", n, len(inputs)))
	}
	return c.JSON(http.StatusAccepted, acceptedResponse{
		Message: "reports accepted",
		Count:   n,
	})
}
