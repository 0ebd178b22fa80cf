package handler

import (
	"context"
	"errors"
	"net/http"

	"wedding-map/internal/navigation"
	"wedding-map/internal/registry"

	"github.com/gin-gonic/gin"
)

// DirectionsHandler redirects visitors to external turn-by-turn directions
type DirectionsHandler struct {
	service DirectionsService
}

// DirectionsService interface for dependency injection
type DirectionsService interface {
	Directions(ctx context.Context, key, clientIP string) (*navigation.Result, error)
}

// NewDirectionsHandler creates a new directions handler
func NewDirectionsHandler(svc DirectionsService) *DirectionsHandler {
	return &DirectionsHandler{service: svc}
}

// Directions handles GET /api/venues/:key/directions requests
func (h *DirectionsHandler) Directions(c *gin.Context) {
	result, err := h.service.Directions(c.Request.Context(), c.Param("key"), c.ClientIP())
	if err != nil {
		if errors.Is(err, registry.ErrUnknownVenue) {
			c.JSON(http.StatusNotFound, gin.H{"error": "venue not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if c.Query("format") == "json" {
		c.JSON(http.StatusOK, gin.H{"url": result.URL, "fallback": result.Fallback})
		return
	}

	c.Header("Referrer-Policy", "no-referrer")
	c.Redirect(http.StatusFound, result.URL)
}
