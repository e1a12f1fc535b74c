package delivery

import (
	"errors"
	"net/http"

	"genesis-backend/internal/customer/domain"
	"genesis-backend/internal/customer/usecase"

	"github.com/gin-gonic/gin"
)

// CustomerHandler handles customer HTTP requests
type CustomerHandler struct {
	customerUsecase usecase.CustomerUsecase
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(customerUsecase usecase.CustomerUsecase) *CustomerHandler {
	return &CustomerHandler{
		customerUsecase: customerUsecase,
	}
}

// List returns all customers, newest first
// GET /api/customers
func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.customerUsecase.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"customers": customers})
}

// GetByID returns a single customer
// GET /api/customers/:id
func (h *CustomerHandler) GetByID(c *gin.Context) {
	customer, err := h.customerUsecase.GetByID(c.Param("id"))
	if err != nil {
		respondCustomerError(c, err)
		return
	}

	c.JSON(http.StatusOK, customer)
}

// Create inserts a new customer
// POST /api/customers
func (h *CustomerHandler) Create(c *gin.Context) {
	var customer domain.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.customerUsecase.Create(&customer)
	if err != nil {
		respondCustomerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// Update merges partial fields into a customer
// PUT /api/customers/:id
func (h *CustomerHandler) Update(c *gin.Context) {
	var updates usecase.CustomerUpdate
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customer, err := h.customerUsecase.Update(c.Param("id"), updates)
	if err != nil {
		respondCustomerError(c, err)
		return
	}

	c.JSON(http.StatusOK, customer)
}

// Delete removes a customer; its leads keep their dangling reference
// DELETE /api/customers/:id
func (h *CustomerHandler) Delete(c *gin.Context) {
	if err := h.customerUsecase.Delete(c.Param("id")); err != nil {
		respondCustomerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "customer deleted"})
}

func respondCustomerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrNameRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrCustomerNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
