package delivery

import (
	"errors"
	"net/http"

	"genesis-backend/internal/lead/dto"
	"genesis-backend/internal/lead/usecase"

	"github.com/gin-gonic/gin"
)

// LeadHandler handles lead HTTP requests
type LeadHandler struct {
	leadUsecase usecase.LeadUsecase
}

// NewLeadHandler creates a new LeadHandler
func NewLeadHandler(leadUsecase usecase.LeadUsecase) *LeadHandler {
	return &LeadHandler{
		leadUsecase: leadUsecase,
	}
}

// List returns all leads with their customer joined, newest first
// GET /api/leads
func (h *LeadHandler) List(c *gin.Context) {
	leads, err := h.leadUsecase.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"leads": leads})
}

// GetByID returns a single lead
// GET /api/leads/:id
func (h *LeadHandler) GetByID(c *gin.Context) {
	lead, err := h.leadUsecase.GetByID(c.Param("id"))
	if err != nil {
		respondLeadError(c, err)
		return
	}

	c.JSON(http.StatusOK, lead)
}

// Create validates and inserts a new lead
// POST /api/leads
func (h *LeadHandler) Create(c *gin.Context) {
	var req dto.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lead, err := h.leadUsecase.Create(&req)
	if err != nil {
		respondLeadError(c, err)
		return
	}

	c.JSON(http.StatusCreated, lead)
}

// Update applies a partial patch to a lead
// PUT /api/leads/:id
func (h *LeadHandler) Update(c *gin.Context) {
	var req dto.UpdateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lead, err := h.leadUsecase.Update(c.Param("id"), &req)
	if err != nil {
		respondLeadError(c, err)
		return
	}

	c.JSON(http.StatusOK, lead)
}

// UpdateStatus moves a lead to another pipeline stage
// PATCH /api/leads/:id/status
func (h *LeadHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateLeadStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lead, err := h.leadUsecase.ChangeStatus(c.Param("id"), req.Status)
	if err != nil {
		respondLeadError(c, err)
		return
	}

	c.JSON(http.StatusOK, lead)
}

// Delete removes a lead unconditionally
// DELETE /api/leads/:id
func (h *LeadHandler) Delete(c *gin.Context) {
	if err := h.leadUsecase.Delete(c.Param("id")); err != nil {
		respondLeadError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "lead deleted"})
}

func respondLeadError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrProductRequired),
		errors.Is(err, usecase.ErrNegativeValue),
		errors.Is(err, usecase.ErrUnknownStatus),
		errors.Is(err, usecase.ErrBadPaymentStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrNoStages):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrLeadNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
