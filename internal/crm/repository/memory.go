// Package repository provides the in-memory store for customers and their
// tasks. The application is a demo with no durability requirements, so the
// store is process-local: a customer map plus a task arena keyed by customer
// id. A mutex guards the maps; per-customer writes are still expected to be
// serialized by the caller.
package repository

import (
	"sync"

	"crmpulse/internal/crm/domain"
	"crmpulse/platform/apperr"

	"github.com/google/uuid"
)

// Store is the in-memory customer and task store.
type Store struct {
	mu        sync.RWMutex
	customers map[uuid.UUID]domain.Customer
	order     []uuid.UUID // creation order
	tasks     map[uuid.UUID][]domain.Task
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		customers: make(map[uuid.UUID]domain.Customer),
		tasks:     make(map[uuid.UUID][]domain.Task),
	}
}

// CreateCustomer inserts a new customer. The id must be set by the caller.
func (s *Store) CreateCustomer(c domain.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.customers[c.ID]; exists {
		return apperr.Conflict("customer already exists").WithOp("store.CreateCustomer")
	}
	s.customers[c.ID] = c
	s.order = append(s.order, c.ID)
	return nil
}

// GetCustomer returns a copy of the customer with the given id.
func (s *Store) GetCustomer(id uuid.UUID) (domain.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.customers[id]
	if !ok {
		return domain.Customer{}, apperr.NotFound("customer not found").WithOp("store.GetCustomer")
	}
	return cloneCustomer(c), nil
}

// SaveCustomer overwrites an existing customer.
func (s *Store) SaveCustomer(c domain.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.customers[c.ID]; !ok {
		return apperr.NotFound("customer not found").WithOp("store.SaveCustomer")
	}
	s.customers[c.ID] = cloneCustomer(c)
	return nil
}

// DeleteCustomer removes a customer and cascades to its tasks. It returns
// the number of tasks dropped.
func (s *Store) DeleteCustomer(id uuid.UUID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.customers[id]; !ok {
		return 0, apperr.NotFound("customer not found").WithOp("store.DeleteCustomer")
	}
	dropped := len(s.tasks[id])
	delete(s.customers, id)
	delete(s.tasks, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return dropped, nil
}

// ListCustomers returns all customers in creation order.
func (s *Store) ListCustomers() []domain.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Customer, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, cloneCustomer(s.customers[id]))
	}
	return out
}

// Tasks returns the customer's tasks in creation order.
func (s *Store) Tasks(customerID uuid.UUID) ([]domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.customers[customerID]; !ok {
		return nil, apperr.NotFound("customer not found").WithOp("store.Tasks")
	}
	return append([]domain.Task(nil), s.tasks[customerID]...), nil
}

// AppendTask adds a task to the end of the customer's task list.
func (s *Store) AppendTask(t domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.customers[t.CustomerID]; !ok {
		return apperr.NotFound("customer not found").WithOp("store.AppendTask")
	}
	s.tasks[t.CustomerID] = append(s.tasks[t.CustomerID], t)
	return nil
}

// ReplaceTasks swaps the customer's entire task list. The workflow trigger
// uses this for its remove-matching-then-insert replacement semantics.
func (s *Store) ReplaceTasks(customerID uuid.UUID, tasks []domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.customers[customerID]; !ok {
		return apperr.NotFound("customer not found").WithOp("store.ReplaceTasks")
	}
	s.tasks[customerID] = append([]domain.Task(nil), tasks...)
	return nil
}

// CompleteTask marks a task as completed.
func (s *Store) CompleteTask(customerID uuid.UUID, taskID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.customers[customerID]; !ok {
		return apperr.NotFound("customer not found").WithOp("store.CompleteTask")
	}
	tasks := s.tasks[customerID]
	for i := range tasks {
		if tasks[i].ID == taskID {
			tasks[i].Completed = true
			return nil
		}
	}
	return apperr.NotFound("task not found").WithOp("store.CompleteTask")
}

// AllTasks returns every task in the arena, ordered by customer creation then
// task creation. Used by the task tracker view.
func (s *Store) AllTasks() []domain.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Task
	for _, id := range s.order {
		out = append(out, s.tasks[id]...)
	}
	return out
}

// Count returns the number of customers.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.customers)
}

// DealsByStage groups every customer's deals by pipeline stage, preserving
// customer creation order within each stage.
func (s *Store) DealsByStage() map[domain.DealStage][]domain.Deal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[domain.DealStage][]domain.Deal)
	for _, id := range s.order {
		for _, d := range s.customers[id].Deals {
			out[d.Stage] = append(out[d.Stage], d)
		}
	}
	return out
}

func cloneCustomer(c domain.Customer) domain.Customer {
	c.Deals = append([]domain.Deal(nil), c.Deals...)
	return c
}
