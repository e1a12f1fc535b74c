package delivery

import (
	"errors"
	"net/http"

	"genesis-backend/internal/activity/domain"
	"genesis-backend/internal/activity/usecase"

	"github.com/gin-gonic/gin"
)

// ActivityHandler handles timeline HTTP requests
type ActivityHandler struct {
	activityUsecase usecase.ActivityUsecase
}

// NewActivityHandler creates a new ActivityHandler
func NewActivityHandler(activityUsecase usecase.ActivityUsecase) *ActivityHandler {
	return &ActivityHandler{
		activityUsecase: activityUsecase,
	}
}

// List returns the most recent activities
// GET /api/activities
func (h *ActivityHandler) List(c *gin.Context) {
	activities, err := h.activityUsecase.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"activities": activities})
}

// Create appends a new timeline entry
// POST /api/activities
func (h *ActivityHandler) Create(c *gin.Context) {
	var activity domain.Activity
	if err := c.ShouldBindJSON(&activity); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.activityUsecase.Create(&activity)
	if err != nil {
		if errors.Is(err, usecase.ErrDescriptionRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, created)
}
