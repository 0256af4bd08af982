// Package service orchestrates the CRM core: customer lifecycle, on-demand
// scoring, the rescoring entry point and batch actions. All state changes go
// through the in-memory store; notifications leave through the event bus.
package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"crmpulse/internal/crm/domain"
	"crmpulse/internal/crm/repository"
	"crmpulse/internal/crm/scoring"
	"crmpulse/internal/crm/transport"
	"crmpulse/internal/crm/workflow"
	"crmpulse/internal/events"
	"crmpulse/platform/apperr"
	"crmpulse/platform/logger"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// Service provides the CRM operations consumed by host applications.
type Service struct {
	store *repository.Store
	bus   events.Bus
	log   *logger.Logger

	mu      sync.RWMutex
	weights scoring.WeightConfig

	// now is swappable for tests.
	now func() time.Time
}

// New creates the CRM service with the given default weight configuration.
// An invalid default falls back to the built-in weights.
func New(store *repository.Store, bus events.Bus, log *logger.Logger, defaults scoring.WeightConfig) *Service {
	if err := defaults.Validate(); err != nil {
		log.ValidationRejected("default weight configuration", err.Error())
		defaults = scoring.DefaultWeights()
	}
	return &Service{
		store:   store,
		bus:     bus,
		log:     log,
		weights: defaults,
		now:     time.Now,
	}
}

// =============================================================================
// Customer lifecycle
// =============================================================================

// CreateCustomer adds a customer. Attributes left empty in the request are
// set to the domain baselines, and the status defaults to lead.
func (s *Service) CreateCustomer(ctx context.Context, req transport.CreateCustomerRequest) (domain.Customer, error) {
	now := s.now()
	c := domain.Customer{
		ID:            uuid.New(),
		Name:          req.Name,
		Email:         req.Email,
		Company:       req.Company,
		Phone:         req.Phone,
		Notes:         req.Notes,
		Source:        req.Source,
		Status:        domain.StatusLead,
		CompanySize:   domain.BaselineCompanySize,
		Budget:        domain.BaselineBudget,
		Timeline:      domain.BaselineTimeline,
		Industry:      domain.BaselineIndustry,
		LastContactAt: now,
		CreatedAt:     now,
	}
	if req.Status != "" {
		c.Status = domain.Status(req.Status)
	}
	if req.CompanySize != "" {
		c.CompanySize = domain.CompanySize(req.CompanySize)
	}
	if req.Budget != "" {
		c.Budget = domain.Budget(req.Budget)
	}
	if req.Timeline != "" {
		c.Timeline = domain.Timeline(req.Timeline)
	}
	if req.Industry != "" {
		c.Industry = domain.Industry(req.Industry)
	}

	if err := s.store.CreateCustomer(c); err != nil {
		return domain.Customer{}, err
	}

	_ = s.bus.PublishSync(ctx, events.CustomerCreated{
		BaseEvent:  events.NewBaseEvent(),
		CustomerID: c.ID,
		Name:       c.Name,
		Company:    c.Company,
		Status:     string(c.Status),
	})
	return c, nil
}

// GetCustomer fetches one customer.
func (s *Service) GetCustomer(ctx context.Context, id uuid.UUID) (domain.Customer, error) {
	return s.store.GetCustomer(id)
}

// ListCustomers returns customers matching the search term (name, company or
// email substring, case-insensitive) and status filter. Empty arguments
// match everything.
func (s *Service) ListCustomers(ctx context.Context, search string, status domain.Status) []domain.Customer {
	search = strings.ToLower(strings.TrimSpace(search))
	var out []domain.Customer
	for _, c := range s.store.ListCustomers() {
		if status != "" && c.Status != status {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(c.Name), search) &&
			!strings.Contains(strings.ToLower(c.Company), search) &&
			!strings.Contains(strings.ToLower(c.Email), search) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// ChangeStatus sets a customer's status directly and stamps the contact time.
func (s *Service) ChangeStatus(ctx context.Context, id uuid.UUID, status domain.Status) (domain.Customer, error) {
	if !domain.IsKnownStatus(status) {
		return domain.Customer{}, apperr.Validation("unknown status " + string(status))
	}
	c, err := s.store.GetCustomer(id)
	if err != nil {
		return domain.Customer{}, err
	}
	c.Status = status
	c.LastContactAt = s.now()
	if err := s.store.SaveCustomer(c); err != nil {
		return domain.Customer{}, err
	}
	return c, nil
}

// DeleteCustomer removes a customer, cascading to its tasks.
func (s *Service) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	dropped, err := s.store.DeleteCustomer(id)
	if err != nil {
		return err
	}
	_ = s.bus.PublishSync(ctx, events.CustomerDeleted{
		BaseEvent:    events.NewBaseEvent(),
		CustomerID:   id,
		TasksDropped: dropped,
	})
	return nil
}

// =============================================================================
// Tasks and deals
// =============================================================================

// AddTask creates a user task for a customer. Tasks created here are never
// touched by the workflow trigger.
func (s *Service) AddTask(ctx context.Context, customerID uuid.UUID, req transport.CreateTaskRequest) (domain.Task, error) {
	t := domain.Task{
		ID:         ulid.Make().String(),
		CustomerID: customerID,
		Title:      req.Title,
		DueAt:      req.DueAt,
		Priority:   domain.Priority(req.Priority),
		CreatedAt:  s.now(),
	}
	if err := s.store.AppendTask(t); err != nil {
		return domain.Task{}, err
	}
	return t, nil
}

// CompleteTask marks a task done.
func (s *Service) CompleteTask(ctx context.Context, customerID uuid.UUID, taskID string) error {
	return s.store.CompleteTask(customerID, taskID)
}

// ListTasks returns a customer's tasks in creation order.
func (s *Service) ListTasks(ctx context.Context, customerID uuid.UUID) ([]domain.Task, error) {
	return s.store.Tasks(customerID)
}

// AllTasks returns every task in the store for the task tracker view.
func (s *Service) AllTasks(ctx context.Context) []domain.Task {
	return s.store.AllTasks()
}

// AddDeal attaches a deal to a customer, growing its derived deal value.
func (s *Service) AddDeal(ctx context.Context, customerID uuid.UUID, req transport.CreateDealRequest) (domain.Customer, error) {
	c, err := s.store.GetCustomer(customerID)
	if err != nil {
		return domain.Customer{}, err
	}
	c.Deals = append(c.Deals, domain.Deal{
		ID:          ulid.Make().String(),
		Title:       req.Title,
		Value:       req.Value,
		Stage:       domain.DealStage(req.Stage),
		Probability: req.Probability,
	})
	if err := s.store.SaveCustomer(c); err != nil {
		return domain.Customer{}, err
	}
	return c, nil
}

// Pipeline groups all deals by stage for the board view.
func (s *Service) Pipeline(ctx context.Context) map[domain.DealStage][]domain.Deal {
	return s.store.DealsByStage()
}

// PipelineValue sums every deal value in the store.
func (s *Service) PipelineValue(ctx context.Context) int64 {
	var total int64
	for _, deals := range s.store.DealsByStage() {
		for _, d := range deals {
			total += d.Value
		}
	}
	return total
}

// =============================================================================
// Scoring
// =============================================================================

// Score computes the display score for one customer using the fixed variant
// (default weights plus deal-value bonus). Read-only.
func (s *Service) Score(ctx context.Context, id uuid.UUID) (scoring.Result, error) {
	c, err := s.store.GetCustomer(id)
	if err != nil {
		return scoring.Result{}, err
	}
	score := scoring.ComputeFixed(scoring.AttributesOf(&c), c.LastContactAt, c.DealValueTotal(), s.now())
	return scoring.Result{Score: score, Temperature: scoring.Classify(score)}, nil
}

// ScoreAll evaluates every customer with the active weight configuration
// (no deal bonus) and returns them sorted by score, highest first. Read-only.
func (s *Service) ScoreAll(ctx context.Context) []transport.ScoredCustomer {
	now := s.now()
	weights := s.Weights()

	customers := s.store.ListCustomers()
	out := make([]transport.ScoredCustomer, 0, len(customers))
	for _, c := range customers {
		score := scoring.ComputeWeighted(scoring.AttributesOf(&c), c.LastContactAt, now, weights)
		out = append(out, transport.ScoredCustomer{
			Customer: c,
			Result:   scoring.Result{Score: score, Temperature: scoring.Classify(score)},
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Result.Score > out[j].Result.Score })
	return out
}

// Stats summarizes the current scoring run.
func (s *Service) Stats(ctx context.Context) transport.ScoreStats {
	scored := s.ScoreAll(ctx)
	stats := transport.ScoreStats{Total: len(scored)}
	if stats.Total == 0 {
		return stats
	}
	sum := 0
	for _, sc := range scored {
		sum += sc.Result.Score
		switch sc.Result.Temperature {
		case scoring.TemperatureHot:
			stats.Hot++
		case scoring.TemperatureWarm:
			stats.Warm++
		case scoring.TemperatureLukewarm:
			stats.Lukewarm++
		case scoring.TemperatureCold:
			stats.Cold++
		}
	}
	stats.AverageScore = sum / stats.Total
	return stats
}

// Rescore is the single entry point for attribute edits and explicit rescore
// actions. It merges the updates, stamps the contact time, evaluates the
// weighted calculator and classifier, runs the workflow trigger, persists
// the outcome and publishes the collected notifications as events.
//
// Callers must not compose the calculator and trigger themselves: going
// through Rescore guarantees LastContactAt is refreshed before the
// temperature is reevaluated.
func (s *Service) Rescore(ctx context.Context, id uuid.UUID, updates transport.AttributeUpdates) (domain.Customer, scoring.Result, []string, error) {
	c, err := s.store.GetCustomer(id)
	if err != nil {
		return domain.Customer{}, scoring.Result{}, nil, err
	}

	mergeAttributes(&c, updates)
	now := s.now()
	c.LastContactAt = now

	score := scoring.ComputeWeighted(scoring.AttributesOf(&c), c.LastContactAt, now, s.Weights())
	result := scoring.Result{Score: score, Temperature: scoring.Classify(score)}

	tasks, err := s.store.Tasks(id)
	if err != nil {
		return domain.Customer{}, scoring.Result{}, nil, err
	}
	triggered := workflow.Apply(&c, tasks, score, now)
	c.Status = triggered.Status

	if err := s.store.SaveCustomer(c); err != nil {
		return domain.Customer{}, scoring.Result{}, nil, err
	}
	if err := s.store.ReplaceTasks(id, triggered.Tasks); err != nil {
		return domain.Customer{}, scoring.Result{}, nil, err
	}

	s.log.ScoringEvent(c.ID.String(), result.Score, string(result.Temperature))
	s.publishWorkflowEvents(ctx, &c, result, triggered)

	return c, result, triggered.Notifications, nil
}

// BoostEngagement re-stamps every customer's contact time. Returns the
// number of customers touched.
func (s *Service) BoostEngagement(ctx context.Context) int {
	now := s.now()
	customers := s.store.ListCustomers()
	for _, c := range customers {
		c.LastContactAt = now
		// Customers cannot vanish mid-loop in a single-writer host.
		_ = s.store.SaveCustomer(c)
	}
	return len(customers)
}

// =============================================================================
// Weight configuration
// =============================================================================

// Weights returns the active weight configuration.
func (s *Service) Weights() scoring.WeightConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.weights
}

// UpdateWeights validates and atomically applies a new weight configuration.
// A rejected configuration leaves the active one untouched.
func (s *Service) UpdateWeights(ctx context.Context, w scoring.WeightConfig) error {
	if err := w.Validate(); err != nil {
		s.log.ValidationRejected("weight configuration", err.Error())
		return err
	}
	s.mu.Lock()
	s.weights = w
	s.mu.Unlock()

	_ = s.bus.PublishSync(ctx, events.WeightConfigReplaced{
		BaseEvent:   events.NewBaseEvent(),
		CompanySize: w.CompanySize,
		Budget:      w.Budget,
		Timeline:    w.Timeline,
		Industry:    w.Industry,
		Engagement:  w.Engagement,
	})
	return nil
}

// Events are delivered synchronously so short-lived hosts (the CLI) observe
// them before exiting. Handler errors are logged by the bus and ignored here.
func (s *Service) publishWorkflowEvents(ctx context.Context, c *domain.Customer, result scoring.Result, triggered workflow.Result) {
	_ = s.bus.PublishSync(ctx, events.CustomerRescored{
		BaseEvent:   events.NewBaseEvent(),
		CustomerID:  c.ID,
		Score:       result.Score,
		Temperature: string(result.Temperature),
	})
	if triggered.Promoted {
		s.log.WorkflowEvent(c.ID.String(), "promoted", string(c.Status))
		_ = s.bus.PublishSync(ctx, events.LeadPromoted{
			BaseEvent:  events.NewBaseEvent(),
			CustomerID: c.ID,
			Name:       c.Name,
			Score:      result.Score,
		})
	}
	if t := triggered.ScheduledTask; t != nil {
		s.log.WorkflowEvent(c.ID.String(), "task_scheduled", t.Title)
		_ = s.bus.PublishSync(ctx, events.FollowUpScheduled{
			BaseEvent:   events.NewBaseEvent(),
			CustomerID:  c.ID,
			TaskID:      t.ID,
			Title:       t.Title,
			Priority:    string(t.Priority),
			DueAt:       t.DueAt,
			Temperature: string(result.Temperature),
		})
	}
}

func mergeAttributes(c *domain.Customer, updates transport.AttributeUpdates) {
	if updates.CompanySize != nil {
		c.CompanySize = domain.CompanySize(*updates.CompanySize)
	}
	if updates.Budget != nil {
		c.Budget = domain.Budget(*updates.Budget)
	}
	if updates.Timeline != nil {
		c.Timeline = domain.Timeline(*updates.Timeline)
	}
	if updates.Industry != nil {
		c.Industry = domain.Industry(*updates.Industry)
	}
}
