package seed

import (
	"testing"

	"crmpulse/internal/crm/repository"
	"crmpulse/platform/logger"
)

func TestLoad(t *testing.T) {
	store := repository.NewStore()
	if err := Load(store, logger.New("test")); err != nil {
		t.Fatalf("load: %v", err)
	}

	customers := store.ListCustomers()
	if len(customers) != 5 {
		t.Fatalf("expected 5 sample customers, got %d", len(customers))
	}
	for _, c := range customers {
		if c.ID.String() == "00000000-0000-0000-0000-000000000000" {
			t.Fatalf("customer %s has no id", c.Name)
		}
		if c.LastContactAt.IsZero() || c.CreatedAt.IsZero() {
			t.Fatalf("customer %s missing timestamps", c.Name)
		}
		for _, d := range c.Deals {
			if d.ID == "" {
				t.Fatalf("deal %q has no id", d.Title)
			}
		}
	}

	tasks := store.AllTasks()
	if len(tasks) != 2 {
		t.Fatalf("expected 2 seeded tasks, got %d", len(tasks))
	}
	for _, task := range tasks {
		if task.Automated {
			t.Fatalf("seeded task %q must not be automated", task.Title)
		}
		if task.ID == "" {
			t.Fatalf("task %q has no id", task.Title)
		}
	}
}
