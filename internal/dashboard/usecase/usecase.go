package usecase

import (
	leaddomain "genesis-backend/internal/lead/domain"
	statusdomain "genesis-backend/internal/status/domain"
)

// Metrics is the aggregate snapshot shown on the dashboard
type Metrics struct {
	ActiveLeads         int     `json:"active_leads"`
	OngoingNegotiations int     `json:"ongoing_negotiations"`
	ClosedDeals         int     `json:"closed_deals"`
	PendingValue        float64 `json:"pending_value"`
	OverdueFollowUps    int     `json:"overdue_follow_ups"`
	ConversionRate      float64 `json:"conversion_rate"`
	TotalCustomers      int64   `json:"total_customers"`
	PendingTasks        int64   `json:"pending_tasks"`
	PendingPayments     int64   `json:"pending_payments"`
}

// FunnelStage is one row of the sales funnel report
type FunnelStage struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Color      string  `json:"color"`
	LeadCount  int     `json:"lead_count"`
	TotalValue float64 `json:"total_value"`
}

// FunnelReport summarizes the pipeline from first stage to close
type FunnelReport struct {
	Stages         []FunnelStage `json:"stages"`
	TotalLeads     int           `json:"total_leads"`
	ClosedLeads    int           `json:"closed_leads"`
	LostLeads      int           `json:"lost_leads"`
	ConversionRate float64       `json:"conversion_rate"`
	TotalValue     float64       `json:"total_value"`
	ClosedValue    float64       `json:"closed_value"`
}

// LeadLister provides the lead rows the reports aggregate over
type LeadLister interface {
	List() ([]*leaddomain.Lead, error)
}

// StageLister provides the registry stages in board order
type StageLister interface {
	List() ([]*statusdomain.Status, error)
}

// Counter reports a single row count
type Counter func() (int64, error)

// DashboardUsecase defines the interface for dashboard aggregates
type DashboardUsecase interface {
	// Metrics computes the dashboard snapshot from current data
	Metrics() (*Metrics, error)

	// Funnel computes the per-stage sales funnel report
	Funnel() (*FunnelReport, error)
}
