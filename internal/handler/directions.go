package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"location-agent/internal/journey"
	"location-agent/internal/models"

	"github.com/gin-gonic/gin"
)

// DirectionsHandler handles journey estimate requests
type DirectionsHandler struct {
	service DirectionsService
}

// Service interface for dependency injection
type DirectionsService interface {
	Directions(ctx context.Context, origin, destination string) (*models.JourneyEstimate, error)
}

// NewDirectionsHandler creates a new directions handler
func NewDirectionsHandler(svc DirectionsService) *DirectionsHandler {
	return &DirectionsHandler{service: svc}
}

// Directions handles GET /directions requests
//
//	@Summary		Estimate a journey
//	@Description	Straight-line distance, naive driving and walking times, a Google Maps link and safety tips.
//	@Tags			directions
//	@Produce		json
//	@Param			origin		query		string	true	"Starting address"
//	@Param			destination	query		string	true	"Destination address"
//	@Success		200			{object}	models.JourneyEstimate
//	@Failure		400			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Failure		422			{object}	map[string]string
//	@Failure		500			{object}	map[string]string
//	@Router			/directions [get]
func (h *DirectionsHandler) Directions(c *gin.Context) {
	origin := strings.TrimSpace(c.Query("origin"))
	destination := strings.TrimSpace(c.Query("destination"))

	if origin == "" || destination == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameters 'origin' and 'destination'"})
		return
	}

	estimate, err := h.service.Directions(c.Request.Context(), origin, destination)
	if err != nil {
		if errors.Is(err, journey.ErrInvalidCoordinate) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "resolved location has invalid coordinates"})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, estimate)
}
