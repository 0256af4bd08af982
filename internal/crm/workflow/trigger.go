// Package workflow implements the trigger policy that reacts to a freshly
// computed score: status promotion and automated task replacement. It is
// side-effect free with respect to I/O; callers persist the returned state.
package workflow

import (
	"fmt"
	"time"

	"crmpulse/internal/crm/domain"
	"crmpulse/internal/crm/scoring"

	"github.com/oklog/ulid/v2"
)

// Follow-up horizons for automated tasks.
const (
	warmFollowUpAfter = 48 * time.Hour
	coldNurtureAfter  = 7 * 24 * time.Hour
)

// Result is the outcome of one trigger evaluation. Status and Tasks replace
// the customer's current values; Notifications are user-facing messages the
// host surfaces however it likes (log lines, toasts).
type Result struct {
	Status        domain.Status
	Tasks         []domain.Task
	Notifications []string

	// Promoted is true when the hot branch promoted a lead to prospect.
	Promoted bool
	// ScheduledTask points into Tasks at the automated task created by this
	// evaluation, nil when the trigger was a no-op.
	ScheduledTask *domain.Task
}

// Apply evaluates the trigger policy for one customer against its freshly
// computed score.
//
// Policy, by temperature:
//   - hot with status lead: promote to prospect and schedule an urgent
//     follow-up due immediately. Hot with any other status changes nothing;
//     it does not fall through to the warm or cold branches.
//   - warm: replace the automated task with a follow-up two days out.
//   - cold: replace the automated task with a nurture action a week out.
//   - lukewarm: no change. The gap is intentional; the trigger only ever
//     acts on hot, warm and cold.
//
// User-created tasks are never touched. Replacement removes every automated
// task before inserting the new one, so repeated triggers never accumulate
// stale automated tasks.
func Apply(c *domain.Customer, tasks []domain.Task, score int, now time.Time) Result {
	res := Result{
		Status: c.Status,
		Tasks:  tasks,
	}

	switch scoring.Classify(score) {
	case scoring.TemperatureHot:
		if c.Status != domain.StatusLead {
			return res
		}
		res.Status = domain.StatusProspect
		res.Promoted = true
		res.schedule(c, domain.Task{
			Title:    fmt.Sprintf("Follow up with %s immediately", c.Name),
			DueAt:    now,
			Priority: domain.PriorityHigh,
		}, now)
		res.Notifications = append(res.Notifications,
			fmt.Sprintf("%s promoted to hot prospect", c.Name))

	case scoring.TemperatureWarm:
		res.schedule(c, domain.Task{
			Title:    fmt.Sprintf("Schedule follow-up call with %s", c.Name),
			DueAt:    now.Add(warmFollowUpAfter),
			Priority: domain.PriorityMedium,
		}, now)
		res.Notifications = append(res.Notifications,
			fmt.Sprintf("%s is a warm lead, follow-up scheduled", c.Name))

	case scoring.TemperatureCold:
		res.schedule(c, domain.Task{
			Title:    fmt.Sprintf("Add %s to nurture campaign", c.Name),
			DueAt:    now.Add(coldNurtureAfter),
			Priority: domain.PriorityLow,
		}, now)
		res.Notifications = append(res.Notifications,
			fmt.Sprintf("%s moved to cold lead nurturing", c.Name))

	case scoring.TemperatureLukewarm:
		// Intentional gap, see above.
	}

	return res
}

// schedule replaces all automated tasks with the given one.
func (r *Result) schedule(c *domain.Customer, t domain.Task, now time.Time) {
	t.ID = ulid.Make().String()
	t.CustomerID = c.ID
	t.Automated = true
	t.CreatedAt = now

	r.Tasks = RemoveAutomated(r.Tasks)
	r.Tasks = append(r.Tasks, t)
	r.ScheduledTask = &r.Tasks[len(r.Tasks)-1]
}

// RemoveAutomated returns the task list without any automated tasks,
// preserving the order of the user-created ones.
func RemoveAutomated(tasks []domain.Task) []domain.Task {
	kept := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if !t.Automated {
			kept = append(kept, t)
		}
	}
	return kept
}
