// Package domain provides core business entities and rules for the CRM
// bounded context.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle status of a customer record.
type Status string

const (
	StatusLead     Status = "lead"
	StatusProspect Status = "prospect"
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

var knownStatuses = map[Status]struct{}{
	StatusLead:     {},
	StatusProspect: {},
	StatusActive:   {},
	StatusInactive: {},
}

// IsKnownStatus reports whether s is one of the enumerated statuses.
func IsKnownStatus(s Status) bool {
	_, ok := knownStatuses[s]
	return ok
}

// Customer is the central CRM entity. Scoring reads its classification
// attributes; the workflow trigger mutates Status. Tasks are owned by the
// customer but stored in a separate arena keyed by customer id.
type Customer struct {
	ID      uuid.UUID
	Name    string
	Email   string
	Company string
	Phone   string
	Notes   string
	Source  string

	Status Status

	CompanySize CompanySize
	Budget      Budget
	Timeline    Timeline
	Industry    Industry

	LastContactAt time.Time
	CreatedAt     time.Time

	Deals []Deal
}

// DealValueTotal returns the sum of all associated deal values.
func (c *Customer) DealValueTotal() int64 {
	var total int64
	for _, d := range c.Deals {
		total += d.Value
	}
	return total
}
