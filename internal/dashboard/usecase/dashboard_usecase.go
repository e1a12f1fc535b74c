package usecase

import (
	"math"
	"time"

	leaddomain "genesis-backend/internal/lead/domain"
)

// LostStage is the conventional identifier of the lost terminal stage.
// Leads in it are excluded from active counts alongside closed ones.
const LostStage = "lost"

// negotiationStages are the registry identifiers counted as ongoing
// negotiations on the dashboard.
var negotiationStages = map[string]bool{
	"negotiation": true,
	"proposal":    true,
}

type dashboardUsecase struct {
	leads     LeadLister
	stages    StageLister
	customers Counter
	tasks     Counter
	payments  Counter
}

// NewDashboardUsecase creates a new DashboardUsecase. The counters are
// the pending-row counts of the customer, task, and payment stores.
func NewDashboardUsecase(leads LeadLister, stages StageLister, customers, tasks, payments Counter) DashboardUsecase {
	return &dashboardUsecase{
		leads:     leads,
		stages:    stages,
		customers: customers,
		tasks:     tasks,
		payments:  payments,
	}
}

func (u *dashboardUsecase) Metrics() (*Metrics, error) {
	leads, err := u.leads.List()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	m := &Metrics{}
	closed := 0
	for _, lead := range leads {
		terminal := lead.Status == leaddomain.ClosedStage || lead.Status == LostStage
		if !terminal {
			m.ActiveLeads++
			m.PendingValue += lead.Value
		}
		if negotiationStages[lead.Status] {
			m.OngoingNegotiations++
		}
		if lead.Status == leaddomain.ClosedStage {
			closed++
		}
		if lead.NextFollowUp != nil && lead.NextFollowUp.Before(now) {
			m.OverdueFollowUps++
		}
	}
	m.ClosedDeals = closed
	m.ConversionRate = conversionRate(closed, len(leads))

	if m.TotalCustomers, err = u.customers(); err != nil {
		return nil, err
	}
	if m.PendingTasks, err = u.tasks(); err != nil {
		return nil, err
	}
	if m.PendingPayments, err = u.payments(); err != nil {
		return nil, err
	}
	return m, nil
}

func (u *dashboardUsecase) Funnel() (*FunnelReport, error) {
	stages, err := u.stages.List()
	if err != nil {
		return nil, err
	}
	leads, err := u.leads.List()
	if err != nil {
		return nil, err
	}

	report := &FunnelReport{
		Stages:     make([]FunnelStage, 0, len(stages)),
		TotalLeads: len(leads),
	}
	byStatus := make(map[string][]*leaddomain.Lead)
	for _, lead := range leads {
		byStatus[lead.Status] = append(byStatus[lead.Status], lead)
		report.TotalValue += lead.Value
		switch lead.Status {
		case leaddomain.ClosedStage:
			report.ClosedLeads++
			report.ClosedValue += lead.Value
		case LostStage:
			report.LostLeads++
		}
	}

	for _, stage := range stages {
		row := FunnelStage{
			ID:    stage.ID,
			Name:  stage.Name,
			Color: stage.Color,
		}
		for _, lead := range byStatus[stage.ID] {
			row.LeadCount++
			row.TotalValue += lead.Value
		}
		report.Stages = append(report.Stages, row)
	}

	report.ConversionRate = conversionRate(report.ClosedLeads, report.TotalLeads)
	return report, nil
}

// conversionRate returns closed/total as a percentage rounded to one
// decimal place.
func conversionRate(closed, total int) float64 {
	if total == 0 {
		return 0
	}
	rate := float64(closed) / float64(total) * 100
	return math.Round(rate*10) / 10
}
