// Package crm provides the CRM bounded context module.
package crm

import (
	"crmpulse/internal/crm/repository"
	"crmpulse/internal/crm/service"
	"crmpulse/internal/events"
	"crmpulse/platform/config"
	"crmpulse/platform/logger"
	"crmpulse/platform/validator"

	"crmpulse/internal/crm/scoring"
)

// Module wires the CRM bounded context: store, service and validator.
type Module struct {
	service *service.Service
	store   *repository.Store
	val     *validator.Validator
}

// NewModule creates and initializes the CRM module.
func NewModule(cfg config.ScoringConfig, val *validator.Validator, bus events.Bus, log *logger.Logger) *Module {
	companySize, budget, timeline, industry, engagement := cfg.GetDefaultWeights()
	defaults := scoring.WeightConfig{
		CompanySize: companySize,
		Budget:      budget,
		Timeline:    timeline,
		Industry:    industry,
		Engagement:  engagement,
	}

	store := repository.NewStore()
	svc := service.New(store, bus, log, defaults)

	return &Module{
		service: svc,
		store:   store,
		val:     val,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "crm"
}

// Service returns the service layer for host applications.
func (m *Module) Service() *service.Service {
	return m.service
}

// Store returns the underlying store, used by the seed loader.
func (m *Module) Store() *repository.Store {
	return m.store
}

// Validator returns the request validator shared with the host.
func (m *Module) Validator() *validator.Validator {
	return m.val
}
