package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/mnakagawa/eatmap-backend-go/internal/service"
	"github.com/mnakagawa/eatmap-backend-go/pkg/response"
)

// MapHandler handles HTTP requests for the map render payload
type MapHandler struct {
	service *service.MapService
}

// NewMapHandler creates a new map handler
func NewMapHandler(service *service.MapService) *MapHandler {
	return &MapHandler{service: service}
}

// GetMap builds and returns the render payload
// GET /api/v1/map
func (h *MapHandler) GetMap(c *gin.Context) {
	payload, err := h.service.BuildMap(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrInsufficientRows) || errors.Is(err, service.ErrCenterUnresolved) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, payload)
}

// Backfill geocodes rows missing coordinates and writes them back to
// the CSV
// POST /api/admin/backfill
func (h *MapHandler) Backfill(c *gin.Context) {
	updated, err := h.service.Backfill(c.Request.Context())
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, gin.H{"updated": updated})
}
