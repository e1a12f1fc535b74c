package dto

import "time"

// CreateLeadRequest represents the request body for creating a lead
type CreateLeadRequest struct {
	CustomerID    *string    `json:"customer_id"`
	Product       string     `json:"product" binding:"required"`
	Value         *float64   `json:"value" binding:"required"`
	Status        string     `json:"status"`
	PaymentStatus string     `json:"payment_status"`
	DownPayment   *float64   `json:"down_payment"`
	Installments  *int       `json:"installments"`
	LastContact   *time.Time `json:"last_contact"`
	NextFollowUp  *time.Time `json:"next_follow_up"`
	AssignedTo    string     `json:"assigned_to"`
	Notes         string     `json:"notes"`
	Tags          []string   `json:"tags"`
}

// UpdateLeadRequest is a partial patch; only non-nil fields are written
type UpdateLeadRequest struct {
	CustomerID    *string    `json:"customer_id"`
	Product       *string    `json:"product"`
	Value         *float64   `json:"value"`
	Status        *string    `json:"status"`
	PaymentStatus *string    `json:"payment_status"`
	DownPayment   *float64   `json:"down_payment"`
	Installments  *int       `json:"installments"`
	LastContact   *time.Time `json:"last_contact"`
	NextFollowUp  *time.Time `json:"next_follow_up"`
	AssignedTo    *string    `json:"assigned_to"`
	Notes         *string    `json:"notes"`
	Tags          []string   `json:"tags"`
}

// UpdateLeadStatusRequest moves a lead to another pipeline stage
type UpdateLeadStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
