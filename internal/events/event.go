// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"time"

	"crmpulse/platform/events"

	"github.com/google/uuid"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
)

// Re-export platform functions
var NewBaseEvent = events.NewBaseEvent

// =============================================================================
// Customer Domain Events
// =============================================================================

// CustomerCreated is published when a new customer is added.
type CustomerCreated struct {
	BaseEvent
	CustomerID uuid.UUID `json:"customerId"`
	Name       string    `json:"name"`
	Company    string    `json:"company"`
	Status     string    `json:"status"`
}

func (e CustomerCreated) EventName() string { return "crm.customer.created" }

// CustomerDeleted is published when a customer is removed along with its tasks.
type CustomerDeleted struct {
	BaseEvent
	CustomerID   uuid.UUID `json:"customerId"`
	TasksDropped int       `json:"tasksDropped"`
}

func (e CustomerDeleted) EventName() string { return "crm.customer.deleted" }

// CustomerRescored is published after every rescore run, whether or not the
// workflow trigger changed anything.
type CustomerRescored struct {
	BaseEvent
	CustomerID  uuid.UUID `json:"customerId"`
	Score       int       `json:"score"`
	Temperature string    `json:"temperature"`
}

func (e CustomerRescored) EventName() string { return "crm.customer.rescored" }

// =============================================================================
// Workflow Domain Events
// =============================================================================

// LeadPromoted is published when the workflow trigger promotes a hot lead
// to prospect status.
type LeadPromoted struct {
	BaseEvent
	CustomerID uuid.UUID `json:"customerId"`
	Name       string    `json:"name"`
	Score      int       `json:"score"`
}

func (e LeadPromoted) EventName() string { return "crm.lead.promoted" }

// FollowUpScheduled is published when the workflow trigger replaces the
// automated task for a customer.
type FollowUpScheduled struct {
	BaseEvent
	CustomerID  uuid.UUID `json:"customerId"`
	TaskID      string    `json:"taskId"`
	Title       string    `json:"title"`
	Priority    string    `json:"priority"`
	DueAt       time.Time `json:"dueAt"`
	Temperature string    `json:"temperature"`
}

func (e FollowUpScheduled) EventName() string { return "crm.task.scheduled" }

// =============================================================================
// Scoring Configuration Events
// =============================================================================

// WeightConfigReplaced is published when a validated weight configuration
// replaces the active one.
type WeightConfigReplaced struct {
	BaseEvent
	CompanySize int `json:"companySize"`
	Budget      int `json:"budget"`
	Timeline    int `json:"timeline"`
	Industry    int `json:"industry"`
	Engagement  int `json:"engagement"`
}

func (e WeightConfigReplaced) EventName() string { return "crm.weights.replaced" }
