package usecase

import (
	"testing"
	"time"

	leaddomain "genesis-backend/internal/lead/domain"
	statusdomain "genesis-backend/internal/status/domain"
)

type staticLeads []*leaddomain.Lead

func (s staticLeads) List() ([]*leaddomain.Lead, error) { return s, nil }

type staticStages []*statusdomain.Status

func (s staticStages) List() ([]*statusdomain.Status, error) { return s, nil }

func count(n int64) Counter {
	return func() (int64, error) { return n, nil }
}

func TestMetrics(t *testing.T) {
	past := time.Now().Add(-48 * time.Hour)
	future := time.Now().Add(48 * time.Hour)

	leads := staticLeads{
		{ID: "l1", Status: "new", Value: 1000, NextFollowUp: &past},
		{ID: "l2", Status: "proposal", Value: 500},
		{ID: "l3", Status: "negotiation", Value: 2000, NextFollowUp: &future},
		{ID: "l4", Status: "closed", Value: 3000},
		{ID: "l5", Status: "lost", Value: 700},
	}

	uc := NewDashboardUsecase(leads, staticStages{}, count(4), count(2), count(1))
	m, err := uc.Metrics()
	if err != nil {
		t.Fatalf("Metrics: %v", err)
	}

	if m.ActiveLeads != 3 {
		t.Errorf("ActiveLeads = %d, want 3", m.ActiveLeads)
	}
	if m.OngoingNegotiations != 2 {
		t.Errorf("OngoingNegotiations = %d, want 2", m.OngoingNegotiations)
	}
	if m.ClosedDeals != 1 {
		t.Errorf("ClosedDeals = %d, want 1", m.ClosedDeals)
	}
	if m.PendingValue != 3500 {
		t.Errorf("PendingValue = %v, want 3500", m.PendingValue)
	}
	if m.OverdueFollowUps != 1 {
		t.Errorf("OverdueFollowUps = %d, want 1", m.OverdueFollowUps)
	}
	// 1 closed of 5 leads
	if m.ConversionRate != 20.0 {
		t.Errorf("ConversionRate = %v, want 20.0", m.ConversionRate)
	}
	if m.TotalCustomers != 4 || m.PendingTasks != 2 || m.PendingPayments != 1 {
		t.Errorf("counters not passed through: %+v", m)
	}
}

func TestMetricsEmpty(t *testing.T) {
	uc := NewDashboardUsecase(staticLeads{}, staticStages{}, count(0), count(0), count(0))
	m, err := uc.Metrics()
	if err != nil {
		t.Fatalf("Metrics: %v", err)
	}
	if m.ConversionRate != 0 {
		t.Errorf("ConversionRate = %v, want 0 for an empty funnel", m.ConversionRate)
	}
}

func TestFunnel(t *testing.T) {
	stages := staticStages{
		{ID: "new", Name: "Novo", Color: "bg-info", Position: 0},
		{ID: "closed", Name: "Concluído", Color: "bg-success", Position: 1},
		{ID: "lost", Name: "Perdido", Color: "bg-destructive", Position: 2},
	}
	leads := staticLeads{
		{ID: "l1", Status: "new", Value: 800},
		{ID: "l2", Status: "new", Value: 200},
		{ID: "l3", Status: "closed", Value: 5000},
		{ID: "l4", Status: "lost", Value: 400},
	}

	uc := NewDashboardUsecase(leads, stages, count(0), count(0), count(0))
	report, err := uc.Funnel()
	if err != nil {
		t.Fatalf("Funnel: %v", err)
	}

	if len(report.Stages) != 3 {
		t.Fatalf("got %d stages, want 3", len(report.Stages))
	}
	if report.Stages[0].LeadCount != 2 || report.Stages[0].TotalValue != 1000 {
		t.Errorf("new stage row: %+v", report.Stages[0])
	}
	if report.TotalLeads != 4 || report.ClosedLeads != 1 || report.LostLeads != 1 {
		t.Errorf("totals: %+v", report)
	}
	if report.TotalValue != 6400 || report.ClosedValue != 5000 {
		t.Errorf("values: total %v closed %v", report.TotalValue, report.ClosedValue)
	}
	// 1 of 4 converted
	if report.ConversionRate != 25.0 {
		t.Errorf("ConversionRate = %v, want 25.0", report.ConversionRate)
	}
}
