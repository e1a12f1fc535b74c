package delivery

import (
	"errors"
	"net/http"

	"genesis-backend/internal/payment/domain"
	"genesis-backend/internal/payment/usecase"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles payment HTTP requests
type PaymentHandler struct {
	paymentUsecase usecase.PaymentUsecase
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(paymentUsecase usecase.PaymentUsecase) *PaymentHandler {
	return &PaymentHandler{
		paymentUsecase: paymentUsecase,
	}
}

// List returns all payments ordered by due date
// GET /api/payments
func (h *PaymentHandler) List(c *gin.Context) {
	payments, err := h.paymentUsecase.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"payments": payments})
}

// GetByID returns a single payment
// GET /api/payments/:id
func (h *PaymentHandler) GetByID(c *gin.Context) {
	payment, err := h.paymentUsecase.GetByID(c.Param("id"))
	if err != nil {
		respondPaymentError(c, err)
		return
	}

	c.JSON(http.StatusOK, payment)
}

// Create inserts a new payment
// POST /api/payments
func (h *PaymentHandler) Create(c *gin.Context) {
	var payment domain.Payment
	if err := c.ShouldBindJSON(&payment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.paymentUsecase.Create(&payment)
	if err != nil {
		respondPaymentError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// Update applies a partial patch to a payment
// PUT /api/payments/:id
func (h *PaymentHandler) Update(c *gin.Context) {
	var updates usecase.PaymentUpdate
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payment, err := h.paymentUsecase.Update(c.Param("id"), updates)
	if err != nil {
		respondPaymentError(c, err)
		return
	}

	c.JSON(http.StatusOK, payment)
}

// Delete removes a payment
// DELETE /api/payments/:id
func (h *PaymentHandler) Delete(c *gin.Context) {
	if err := h.paymentUsecase.Delete(c.Param("id")); err != nil {
		respondPaymentError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "payment deleted"})
}

func respondPaymentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrAmountInvalid),
		errors.Is(err, usecase.ErrTypeInvalid),
		errors.Is(err, usecase.ErrStatusInvalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrPaymentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
