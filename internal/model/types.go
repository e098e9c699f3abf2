// Package model defines the domain records for goalweek.
package model

import (
	"time"

	"github.com/google/uuid"
)

// Goal is a named weekly target amount with a unit of measure.
// Goals are immutable after creation; deleting one cascades to its sessions.
type Goal struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Weekly    float64   `json:"weekly"`
	Unit      string    `json:"unit"`
	CreatedAt time.Time `json:"createdAt"`
}

// Session is one dated log entry of progress against a goal.
// Amount is the only field editable after creation.
type Session struct {
	ID        string    `json:"id"`
	GoalID    string    `json:"goalId"`
	Amount    float64   `json:"amount"`
	Date      string    `json:"date"` // YYYY-MM-DD, day granularity
	CreatedAt time.Time `json:"createdAt"`
}

// ViewState holds the anchor date whose week is currently displayed.
type ViewState struct {
	ViewDate string `json:"viewDate"` // YYYY-MM-DD
}

// NewID returns a fresh globally unique record ID.
func NewID() string {
	return uuid.NewString()
}
