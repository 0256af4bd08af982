// Package notify consumes CRM domain events and surfaces them to the user.
// The only presentation channel is the structured log.
package notify

import (
	"context"

	"crmpulse/internal/events"
	"crmpulse/platform/logger"
)

// Notifier logs user-facing notifications derived from domain events.
type Notifier struct {
	log *logger.Logger
}

// New creates a notifier.
func New(log *logger.Logger) *Notifier {
	return &Notifier{log: log.WithComponent("notify")}
}

// RegisterHandlers subscribes the notifier to the events it presents.
func (n *Notifier) RegisterHandlers(bus events.Bus) {
	bus.Subscribe(events.CustomerCreated{}.EventName(), n)
	bus.Subscribe(events.CustomerDeleted{}.EventName(), n)
	bus.Subscribe(events.LeadPromoted{}.EventName(), n)
	bus.Subscribe(events.FollowUpScheduled{}.EventName(), n)
	bus.Subscribe(events.WeightConfigReplaced{}.EventName(), n)
}

// Handle routes events to log lines.
func (n *Notifier) Handle(ctx context.Context, event events.Event) error {
	switch e := event.(type) {
	case events.CustomerCreated:
		n.log.Info("customer added", "name", e.Name, "company", e.Company, "status", e.Status)
	case events.CustomerDeleted:
		n.log.Info("customer deleted", "customer_id", e.CustomerID, "tasks_dropped", e.TasksDropped)
	case events.LeadPromoted:
		n.log.Info("lead promoted to hot prospect", "name", e.Name, "score", e.Score)
	case events.FollowUpScheduled:
		n.log.Info("follow-up scheduled", "title", e.Title, "priority", e.Priority, "due_at", e.DueAt, "temperature", e.Temperature)
	case events.WeightConfigReplaced:
		n.log.Info("scoring weights replaced",
			"company_size", e.CompanySize, "budget", e.Budget,
			"timeline", e.Timeline, "industry", e.Industry, "engagement", e.Engagement)
	}
	return nil
}

// Compile-time check that Notifier implements events.Handler.
var _ events.Handler = (*Notifier)(nil)
