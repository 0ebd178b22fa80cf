package handler

import (
	"errors"
	"net/http"
	"strings"

	"wedding-map/internal/models"
	"wedding-map/internal/registry"
	"wedding-map/internal/service"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the venue registry and route table
type CatalogHandler struct {
	service CatalogService
}

// CatalogService interface for dependency injection
type CatalogService interface {
	Venues() []models.Venue
	Venue(key string) (*models.Venue, error)
	Routes(hidden []string) ([]service.RouteView, error)
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(svc CatalogService) *CatalogHandler {
	return &CatalogHandler{service: svc}
}

// Venues handles GET /api/venues requests
func (h *CatalogHandler) Venues(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Venues())
}

// Venue handles GET /api/venues/:key requests
func (h *CatalogHandler) Venue(c *gin.Context) {
	venue, err := h.service.Venue(c.Param("key"))
	if err != nil {
		if errors.Is(err, registry.ErrUnknownVenue) {
			c.JSON(http.StatusNotFound, gin.H{"error": "venue not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, venue)
}

// Routes handles GET /api/routes requests. The optional 'hidden' query
// parameter is a comma separated list of venue keys to treat as toggled off.
func (h *CatalogHandler) Routes(c *gin.Context) {
	var hidden []string
	for _, key := range strings.Split(c.Query("hidden"), ",") {
		if key = strings.TrimSpace(key); key != "" {
			hidden = append(hidden, key)
		}
	}

	routes, err := h.service.Routes(hidden)
	if err != nil {
		if errors.Is(err, registry.ErrUnknownVenue) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown venue in 'hidden'"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, routes)
}
