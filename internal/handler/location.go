package handler

import (
	"context"
	"errors"
	"net/http"

	"location-agent/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// LocationHandler handles current-location and address lookups
type LocationHandler struct {
	service LocationService
}

// Service interface for dependency injection
type LocationService interface {
	AutoLocate(ctx context.Context, ip string) models.AutoLocation
	Locate(ctx context.Context, query string) (*models.ResolvedLocation, error)
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(svc LocationService) *LocationHandler {
	return &LocationHandler{service: svc}
}

// AutoLocate handles GET /location/auto requests
//
//	@Summary		Detect the caller's location
//	@Description	Geolocates the given IP, or the service's public IP, falling back to the configured default location.
//	@Tags			location
//	@Produce		json
//	@Param			ip	query		string	false	"IP address to locate"
//	@Success		200	{object}	models.AutoLocation
//	@Router			/location/auto [get]
func (h *LocationHandler) AutoLocate(c *gin.Context) {
	location := h.service.AutoLocate(c.Request.Context(), c.Query("ip"))
	c.JSON(http.StatusOK, location)
}

// Locate handles GET /location requests
//
//	@Summary		Resolve an address
//	@Description	Forward-geocodes q. Without q the configured default address is resolved.
//	@Tags			location
//	@Produce		json
//	@Param			q	query		string	false	"Free-text address"
//	@Success		200	{object}	models.ResolvedLocation
//	@Failure		404	{object}	map[string]string
//	@Failure		500	{object}	map[string]string
//	@Router			/location [get]
func (h *LocationHandler) Locate(c *gin.Context) {
	location, err := h.service.Locate(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, location)
}

// respondError maps service errors to status codes. Unknown errors are logged and hidden.
func respondError(c *gin.Context, err error) {
	var notFound *models.NotFoundError
	if errors.As(err, &notFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
		return
	}

	log.Error().Err(err).Str("request_id", RequestID(c)).Msg("request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
