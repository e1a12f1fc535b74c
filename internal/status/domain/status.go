package domain

import (
	"strings"
	"time"
)

// DefaultColor is applied when a stage is created without an explicit color.
const DefaultColor = "bg-muted-foreground"

// Status represents one user-defined column of the sales pipeline.
type Status struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Color     string    `json:"color" gorm:"not null;default:bg-muted-foreground"`
	Position  int       `json:"position" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Status) TableName() string {
	return "kanban_statuses"
}

// SlugID derives a stage identifier from its display name ("Pós Venda" ->
// "pós_venda").
func SlugID(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(name))), "_")
}
