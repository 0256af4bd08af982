package repository

import (
	"testing"

	"github.com/google/uuid"

	"crmpulse/internal/crm/domain"
	"crmpulse/platform/apperr"
)

func newCustomer(name string) domain.Customer {
	return domain.Customer{ID: uuid.New(), Name: name, Status: domain.StatusLead}
}

func mustCreate(t *testing.T, s *Store, c domain.Customer) {
	t.Helper()
	if err := s.CreateCustomer(c); err != nil {
		t.Fatalf("create %s: %v", c.Name, err)
	}
}

func TestCreateAndGetCustomer(t *testing.T) {
	s := NewStore()
	c := newCustomer("Sarah Chen")
	mustCreate(t, s, c)

	got, err := s.GetCustomer(c.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Sarah Chen" {
		t.Fatalf("unexpected customer: %+v", got)
	}
	if s.Count() != 1 {
		t.Fatalf("expected count 1, got %d", s.Count())
	}
}

func TestCreateDuplicateConflicts(t *testing.T) {
	s := NewStore()
	c := newCustomer("Sarah Chen")
	mustCreate(t, s, c)

	err := s.CreateCustomer(c)
	if !apperr.Is(err, apperr.KindConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestGetUnknownCustomer(t *testing.T) {
	s := NewStore()
	_, err := s.GetCustomer(uuid.New())
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestListCustomersCreationOrder(t *testing.T) {
	s := NewStore()
	names := []string{"Alpha", "Bravo", "Charlie"}
	for _, n := range names {
		mustCreate(t, s, newCustomer(n))
	}
	got := s.ListCustomers()
	if len(got) != 3 {
		t.Fatalf("expected 3 customers, got %d", len(got))
	}
	for i, n := range names {
		if got[i].Name != n {
			t.Fatalf("order broken at %d: %s", i, got[i].Name)
		}
	}
}

func TestSaveCustomerRequiresExisting(t *testing.T) {
	s := NewStore()
	if err := s.SaveCustomer(newCustomer("Ghost")); !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDeleteCustomerCascades(t *testing.T) {
	s := NewStore()
	c := newCustomer("Sarah Chen")
	mustCreate(t, s, c)
	for i := 0; i < 3; i++ {
		if err := s.AppendTask(domain.Task{ID: uuid.NewString(), CustomerID: c.ID}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	dropped, err := s.DeleteCustomer(c.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if dropped != 3 {
		t.Fatalf("expected 3 dropped tasks, got %d", dropped)
	}
	if _, err := s.GetCustomer(c.ID); !apperr.Is(err, apperr.KindNotFound) {
		t.Fatal("customer survived deletion")
	}
	if len(s.AllTasks()) != 0 {
		t.Fatal("tasks survived cascade")
	}
	if _, err := s.DeleteCustomer(c.ID); !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found on double delete, got %v", err)
	}
}

func TestTaskOrderingAndReplace(t *testing.T) {
	s := NewStore()
	c := newCustomer("Sarah Chen")
	mustCreate(t, s, c)

	ids := []string{"t1", "t2", "t3"}
	for _, id := range ids {
		if err := s.AppendTask(domain.Task{ID: id, CustomerID: c.ID}); err != nil {
			t.Fatalf("append %s: %v", id, err)
		}
	}
	tasks, err := s.Tasks(c.ID)
	if err != nil {
		t.Fatalf("tasks: %v", err)
	}
	for i, id := range ids {
		if tasks[i].ID != id {
			t.Fatalf("order broken at %d: %s", i, tasks[i].ID)
		}
	}

	if err := s.ReplaceTasks(c.ID, []domain.Task{{ID: "only", CustomerID: c.ID}}); err != nil {
		t.Fatalf("replace: %v", err)
	}
	tasks, _ = s.Tasks(c.ID)
	if len(tasks) != 1 || tasks[0].ID != "only" {
		t.Fatalf("replace did not swap the list: %v", tasks)
	}
}

func TestCompleteTask(t *testing.T) {
	s := NewStore()
	c := newCustomer("Sarah Chen")
	mustCreate(t, s, c)
	if err := s.AppendTask(domain.Task{ID: "t1", CustomerID: c.ID}); err != nil {
		t.Fatalf("append: %v", err)
	}

	if err := s.CompleteTask(c.ID, "t1"); err != nil {
		t.Fatalf("complete: %v", err)
	}
	tasks, _ := s.Tasks(c.ID)
	if !tasks[0].Completed {
		t.Fatal("task not marked completed")
	}
	if err := s.CompleteTask(c.ID, "nope"); !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found for unknown task, got %v", err)
	}
	if err := s.CompleteTask(uuid.New(), "t1"); !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found for unknown customer, got %v", err)
	}
}

func TestDealsByStage(t *testing.T) {
	s := NewStore()
	a := newCustomer("Alpha")
	a.Deals = []domain.Deal{
		{ID: "d1", Title: "Enterprise License", Value: 25000, Stage: domain.DealStageProposal},
	}
	b := newCustomer("Bravo")
	b.Deals = []domain.Deal{
		{ID: "d2", Title: "Starter Pack", Value: 5000, Stage: domain.DealStageProposal},
		{ID: "d3", Title: "Renewal", Value: 12000, Stage: domain.DealStageNegotiation},
	}
	mustCreate(t, s, a)
	mustCreate(t, s, b)

	board := s.DealsByStage()
	if got := board[domain.DealStageProposal]; len(got) != 2 || got[0].ID != "d1" || got[1].ID != "d2" {
		t.Fatalf("proposal stage wrong: %v", got)
	}
	if got := board[domain.DealStageNegotiation]; len(got) != 1 || got[0].ID != "d3" {
		t.Fatalf("negotiation stage wrong: %v", got)
	}
}

func TestGetReturnsIsolatedCopy(t *testing.T) {
	s := NewStore()
	c := newCustomer("Sarah Chen")
	c.Deals = []domain.Deal{{ID: "d1", Value: 1000, Stage: domain.DealStageLead}}
	mustCreate(t, s, c)

	got, _ := s.GetCustomer(c.ID)
	got.Deals[0].Value = 999999
	got.Name = "Hacked"

	fresh, _ := s.GetCustomer(c.ID)
	if fresh.Name != "Sarah Chen" || fresh.Deals[0].Value != 1000 {
		t.Fatal("mutating a returned copy leaked into the store")
	}
}
