package usecase

import (
	"strings"

	leaddomain "genesis-backend/internal/lead/domain"
	statusdomain "genesis-backend/internal/status/domain"
)

// Column is one pipeline stage with the leads currently sitting in it.
type Column struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	Color      string             `json:"color"`
	Position   int                `json:"position"`
	Leads      []*leaddomain.Lead `json:"leads"`
	TotalValue float64            `json:"total_value"`
}

// Filter narrows the leads rendered per column. It never affects which
// leads exist, only which are shown.
type Filter struct {
	Search        string
	PaymentStatus string
}

// Build partitions leads across stages in board order. It is a pure
// function of its inputs: the same leads, stages and filter always produce
// the same columns.
func Build(stages []*statusdomain.Status, leads []*leaddomain.Lead, filter Filter) []Column {
	columns := make([]Column, 0, len(stages))

	for _, stage := range stages {
		column := Column{
			ID:       stage.ID,
			Name:     stage.Name,
			Color:    stage.Color,
			Position: stage.Position,
			Leads:    []*leaddomain.Lead{},
		}

		for _, lead := range leads {
			if lead.Status != stage.ID || !Matches(lead, filter) {
				continue
			}
			column.Leads = append(column.Leads, lead)
			column.TotalValue += lead.Value
		}

		columns = append(columns, column)
	}

	return columns
}

// Matches reports whether a lead passes the search and payment filter.
// The search is a case-insensitive substring match against product,
// customer name and customer company.
func Matches(lead *leaddomain.Lead, filter Filter) bool {
	if filter.PaymentStatus != "" && string(lead.PaymentStatus) != filter.PaymentStatus {
		return false
	}

	query := strings.ToLower(strings.TrimSpace(filter.Search))
	if query == "" {
		return true
	}

	if strings.Contains(strings.ToLower(lead.Product), query) {
		return true
	}
	if lead.Customer != nil {
		if strings.Contains(strings.ToLower(lead.Customer.Name), query) {
			return true
		}
		if strings.Contains(strings.ToLower(lead.Customer.Company), query) {
			return true
		}
	}

	return false
}
