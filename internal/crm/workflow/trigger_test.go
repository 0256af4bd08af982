package workflow

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"crmpulse/internal/crm/domain"
)

var triggerAt = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func testCustomer(status domain.Status) domain.Customer {
	return domain.Customer{
		ID:     uuid.New(),
		Name:   "Sarah Chen",
		Status: status,
	}
}

func automatedTasks(tasks []domain.Task) []domain.Task {
	var out []domain.Task
	for _, t := range tasks {
		if t.Automated {
			out = append(out, t)
		}
	}
	return out
}

func TestApplyHotLeadPromotes(t *testing.T) {
	c := testCustomer(domain.StatusLead)
	res := Apply(&c, nil, 85, triggerAt)

	if res.Status != domain.StatusProspect {
		t.Fatalf("expected promotion to prospect, got %s", res.Status)
	}
	if !res.Promoted {
		t.Fatal("expected Promoted to be set")
	}
	if res.ScheduledTask == nil {
		t.Fatal("expected an urgent follow-up task")
	}
	task := *res.ScheduledTask
	if task.Priority != domain.PriorityHigh {
		t.Fatalf("expected high priority, got %s", task.Priority)
	}
	if !task.DueAt.Equal(triggerAt) {
		t.Fatalf("expected task due immediately, got %s", task.DueAt)
	}
	if !task.Automated {
		t.Fatal("scheduled task must be marked automated")
	}
	if task.CustomerID != c.ID {
		t.Fatal("scheduled task bound to wrong customer")
	}
	if len(res.Notifications) != 1 || !strings.Contains(res.Notifications[0], "promoted") {
		t.Fatalf("unexpected notifications: %v", res.Notifications)
	}
}

func TestApplyHotNonLeadChangesNothing(t *testing.T) {
	c := testCustomer(domain.StatusProspect)
	existing := []domain.Task{
		{ID: "t1", Title: "Send proposal", Automated: false},
		{ID: "t2", Title: "Old follow-up", Automated: true},
	}
	res := Apply(&c, existing, 92, triggerAt)

	if res.Status != domain.StatusProspect {
		t.Fatalf("status changed to %s", res.Status)
	}
	if res.Promoted || res.ScheduledTask != nil {
		t.Fatal("hot non-lead must be a complete no-op")
	}
	if len(res.Tasks) != 2 {
		t.Fatalf("task list changed: %v", res.Tasks)
	}
	if len(res.Notifications) != 0 {
		t.Fatalf("unexpected notifications: %v", res.Notifications)
	}
}

func TestApplyWarmReplacesAutomatedTask(t *testing.T) {
	c := testCustomer(domain.StatusProspect)
	existing := []domain.Task{
		{ID: "t1", Title: "Send proposal", Automated: false},
		{ID: "t2", Title: "Stale nurture", Automated: true},
	}
	res := Apply(&c, existing, 65, triggerAt)

	if res.Status != domain.StatusProspect {
		t.Fatalf("warm must not change status, got %s", res.Status)
	}
	auto := automatedTasks(res.Tasks)
	if len(auto) != 1 {
		t.Fatalf("expected exactly one automated task, got %d", len(auto))
	}
	if auto[0].ID == "t2" {
		t.Fatal("stale automated task was not replaced")
	}
	if auto[0].Priority != domain.PriorityMedium {
		t.Fatalf("expected medium priority, got %s", auto[0].Priority)
	}
	if want := triggerAt.Add(48 * time.Hour); !auto[0].DueAt.Equal(want) {
		t.Fatalf("expected due %s, got %s", want, auto[0].DueAt)
	}
	if res.Tasks[0].ID != "t1" {
		t.Fatal("user task was disturbed")
	}
}

func TestApplyColdSchedulesNurture(t *testing.T) {
	c := testCustomer(domain.StatusLead)
	res := Apply(&c, nil, 20, triggerAt)

	if res.Status != domain.StatusLead {
		t.Fatalf("cold must not change status, got %s", res.Status)
	}
	if res.ScheduledTask == nil {
		t.Fatal("expected a nurture task")
	}
	if res.ScheduledTask.Priority != domain.PriorityLow {
		t.Fatalf("expected low priority, got %s", res.ScheduledTask.Priority)
	}
	if want := triggerAt.Add(7 * 24 * time.Hour); !res.ScheduledTask.DueAt.Equal(want) {
		t.Fatalf("expected due %s, got %s", want, res.ScheduledTask.DueAt)
	}
}

func TestApplyLukewarmIsNoOp(t *testing.T) {
	c := testCustomer(domain.StatusLead)
	existing := []domain.Task{{ID: "t1", Title: "Old nurture", Automated: true}}
	res := Apply(&c, existing, 50, triggerAt)

	if res.Status != domain.StatusLead || res.Promoted || res.ScheduledTask != nil {
		t.Fatal("lukewarm must change nothing")
	}
	if len(res.Tasks) != 1 || res.Tasks[0].ID != "t1" {
		t.Fatalf("lukewarm must keep tasks as-is, got %v", res.Tasks)
	}
}

func TestRepeatedTriggersNeverAccumulate(t *testing.T) {
	c := testCustomer(domain.StatusProspect)
	tasks := []domain.Task{{ID: "u1", Title: "Prep demo", Automated: false}}
	for i := 0; i < 5; i++ {
		res := Apply(&c, tasks, 65, triggerAt.Add(time.Duration(i)*time.Hour))
		tasks = res.Tasks
	}
	if got := len(automatedTasks(tasks)); got != 1 {
		t.Fatalf("expected a single automated task after repeated triggers, got %d", got)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected user task plus one automated task, got %d", len(tasks))
	}
}

func TestRemoveAutomatedKeepsUserOrder(t *testing.T) {
	tasks := []domain.Task{
		{ID: "a", Automated: true},
		{ID: "b"},
		{ID: "c", Automated: true},
		{ID: "d"},
	}
	kept := RemoveAutomated(tasks)
	if len(kept) != 2 || kept[0].ID != "b" || kept[1].ID != "d" {
		t.Fatalf("unexpected result: %v", kept)
	}
}
