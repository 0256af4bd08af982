// Package transport defines the request and response shapes exchanged with
// host applications. Validation tags are enforced by the platform validator
// before requests reach the service layer.
package transport

import (
	"time"

	"crmpulse/internal/crm/domain"
	"crmpulse/internal/crm/scoring"
)

// CreateCustomerRequest adds a customer. Classification attributes are
// optional; omitted ones fall back to the domain baselines.
type CreateCustomerRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Company string `json:"company" validate:"required"`
	Phone   string `json:"phone" validate:"omitempty"`
	Notes   string `json:"notes" validate:"omitempty"`
	Source  string `json:"source" validate:"omitempty"`

	Status      string `json:"status" validate:"omitempty,oneof=lead prospect active inactive"`
	CompanySize string `json:"companySize" validate:"omitempty,oneof=startup small medium large enterprise"`
	Budget      string `json:"budget" validate:"omitempty,oneof=unknown low medium high"`
	Timeline    string `json:"timeline" validate:"omitempty,oneof=immediate short medium long"`
	Industry    string `json:"industry" validate:"omitempty,oneof=technology healthcare finance manufacturing retail other"`
}

// AttributeUpdates is the partial update merged into a customer by the
// rescoring entry point. Nil fields are left untouched.
type AttributeUpdates struct {
	CompanySize *string `json:"companySize" validate:"omitempty,oneof=startup small medium large enterprise"`
	Budget      *string `json:"budget" validate:"omitempty,oneof=unknown low medium high"`
	Timeline    *string `json:"timeline" validate:"omitempty,oneof=immediate short medium long"`
	Industry    *string `json:"industry" validate:"omitempty,oneof=technology healthcare finance manufacturing retail other"`
}

// UpdateWeightsRequest replaces the active weight configuration. The
// sum-to-100 invariant is checked by the scoring package, not here; tags
// only bound the individual fields.
type UpdateWeightsRequest struct {
	CompanySize int `json:"companySize" validate:"min=0,max=100"`
	Budget      int `json:"budget" validate:"min=0,max=100"`
	Timeline    int `json:"timeline" validate:"min=0,max=100"`
	Industry    int `json:"industry" validate:"min=0,max=100"`
	Engagement  int `json:"engagement" validate:"min=0,max=100"`
}

// Weights converts the request into a scoring value object.
func (r UpdateWeightsRequest) Weights() scoring.WeightConfig {
	return scoring.WeightConfig{
		CompanySize: r.CompanySize,
		Budget:      r.Budget,
		Timeline:    r.Timeline,
		Industry:    r.Industry,
		Engagement:  r.Engagement,
	}
}

// CreateTaskRequest adds a user task to a customer.
type CreateTaskRequest struct {
	Title    string    `json:"title" validate:"required"`
	DueAt    time.Time `json:"dueAt" validate:"required"`
	Priority string    `json:"priority" validate:"required,oneof=low medium high"`
}

// CreateDealRequest attaches a deal to a customer.
type CreateDealRequest struct {
	Title       string `json:"title" validate:"required"`
	Value       int64  `json:"value" validate:"min=0"`
	Stage       string `json:"stage" validate:"required,oneof=lead qualified proposal negotiation closed"`
	Probability int    `json:"probability" validate:"min=0,max=100"`
}

// ScoredCustomer pairs a customer with its on-demand score for list views.
type ScoredCustomer struct {
	Customer domain.Customer
	Result   scoring.Result
}

// ScoreStats summarizes a scoring run over the whole store.
type ScoreStats struct {
	Total        int `json:"total"`
	AverageScore int `json:"averageScore"`
	Hot          int `json:"hot"`
	Warm         int `json:"warm"`
	Lukewarm     int `json:"lukewarm"`
	Cold         int `json:"cold"`
}
