package delivery

import (
	"errors"
	"net/http"

	"genesis-backend/internal/status/usecase"

	"github.com/gin-gonic/gin"
)

// StatusHandler handles pipeline stage HTTP requests
type StatusHandler struct {
	statusUsecase usecase.StatusUsecase
}

// NewStatusHandler creates a new StatusHandler
func NewStatusHandler(statusUsecase usecase.StatusUsecase) *StatusHandler {
	return &StatusHandler{
		statusUsecase: statusUsecase,
	}
}

// CreateStatusRequest represents the request body for creating a stage
type CreateStatusRequest struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color"`
}

// ReorderStatusesRequest carries the full board order, leftmost first
type ReorderStatusesRequest struct {
	IDs []string `json:"ids" binding:"required"`
}

// List returns all stages in board order
// GET /api/statuses
func (h *StatusHandler) List(c *gin.Context) {
	statuses, err := h.statusUsecase.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"statuses": statuses})
}

// Create appends a new stage to the board
// POST /api/statuses
func (h *StatusHandler) Create(c *gin.Context) {
	var req CreateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status, err := h.statusUsecase.Create(req.Name, req.Color)
	if err != nil {
		respondStatusError(c, err)
		return
	}

	c.JSON(http.StatusCreated, status)
}

// Update merges partial fields into a stage
// PUT /api/statuses/:id
func (h *StatusHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var updates usecase.StatusUpdate
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status, err := h.statusUsecase.Update(id, updates)
	if err != nil {
		respondStatusError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}

// Delete removes a stage with no referencing leads
// DELETE /api/statuses/:id
func (h *StatusHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.statusUsecase.Delete(id); err != nil {
		respondStatusError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "status deleted"})
}

// Reorder renumbers the whole board atomically
// PUT /api/statuses/reorder
func (h *StatusHandler) Reorder(c *gin.Context) {
	var req ReorderStatusesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.statusUsecase.Reorder(req.IDs); err != nil {
		respondStatusError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "statuses reordered"})
}

func respondStatusError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrNameRequired), errors.Is(err, usecase.ErrBadOrdering):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrNameTaken), errors.Is(err, usecase.ErrStatusInUse):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrStatusNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
