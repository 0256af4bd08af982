// Package seed loads the demo dataset. It is invoked exactly once from the
// host application's startup path; nothing here runs at package init.
package seed

import (
	"time"

	"crmpulse/internal/crm/domain"
	"crmpulse/internal/crm/repository"
	"crmpulse/platform/logger"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// Load inserts the sample customers, deals and tasks into an empty store.
// Contact times are expressed relative to now so the engagement factor
// behaves the same on every run.
func Load(store *repository.Store, log *logger.Logger) error {
	now := time.Now()

	type sample struct {
		customer domain.Customer
		tasks    []domain.Task
	}

	samples := []sample{
		{
			customer: domain.Customer{
				Name:          "Sarah Chen",
				Email:         "sarah.chen@techcorp.com",
				Phone:         "+1 (555) 123-4567",
				Company:       "TechCorp Solutions",
				Status:        domain.StatusProspect,
				CompanySize:   domain.CompanySizeLarge,
				Budget:        domain.BudgetHigh,
				Timeline:      domain.TimelineShort,
				Industry:      domain.IndustryTechnology,
				Source:        "Website",
				Notes:         "Interested in enterprise package. Follow up next week.",
				LastContactAt: now.AddDate(0, 0, -1),
				Deals: []domain.Deal{
					{Title: "Enterprise License", Value: 25000, Stage: domain.DealStageProposal, Probability: 75},
				},
			},
			tasks: []domain.Task{
				{Title: "Send proposal", DueAt: now.AddDate(0, 0, 2), Priority: domain.PriorityHigh},
			},
		},
		{
			customer: domain.Customer{
				Name:          "Marcus Johnson",
				Email:         "m.johnson@innovate.io",
				Phone:         "+1 (555) 987-6543",
				Company:       "Innovate Labs",
				Status:        domain.StatusLead,
				CompanySize:   domain.CompanySizeMedium,
				Budget:        domain.BudgetMedium,
				Timeline:      domain.TimelineMedium,
				Industry:      domain.IndustryTechnology,
				Source:        "Referral",
				Notes:         "Cold lead from website form. Initial interest in consulting services.",
				LastContactAt: now.AddDate(0, 0, -5),
			},
			tasks: []domain.Task{
				{Title: "Initial qualification call", DueAt: now.AddDate(0, 0, 1), Priority: domain.PriorityMedium},
			},
		},
		{
			customer: domain.Customer{
				Name:          "Emily Rodriguez",
				Email:         "emily.r@startupxyz.com",
				Phone:         "+1 (555) 456-7890",
				Company:       "StartupXYZ",
				Status:        domain.StatusLead,
				CompanySize:   domain.CompanySizeStartup,
				Budget:        domain.BudgetLow,
				Timeline:      domain.TimelineImmediate,
				Industry:      domain.IndustryTechnology,
				Source:        "Event",
				Notes:         "Met at tech conference. Very interested in our startup package.",
				LastContactAt: now,
				Deals: []domain.Deal{
					{Title: "Startup Package", Value: 5000, Stage: domain.DealStageNegotiation, Probability: 60},
				},
			},
		},
		{
			customer: domain.Customer{
				Name:          "David Wilson",
				Email:         "d.wilson@healthplus.com",
				Phone:         "+1 (555) 321-0987",
				Company:       "HealthPlus Medical",
				Status:        domain.StatusLead,
				CompanySize:   domain.CompanySizeLarge,
				Budget:        domain.BudgetHigh,
				Timeline:      domain.TimelineLong,
				Industry:      domain.IndustryHealthcare,
				Source:        "LinkedIn",
				LastContactAt: now.AddDate(0, 0, -10),
			},
		},
		{
			customer: domain.Customer{
				Name:          "Lisa Zhang",
				Email:         "l.zhang@financetech.com",
				Phone:         "+1 (555) 654-3210",
				Company:       "FinanceTech Inc",
				Status:        domain.StatusProspect,
				CompanySize:   domain.CompanySizeMedium,
				Budget:        domain.BudgetMedium,
				Timeline:      domain.TimelineShort,
				Industry:      domain.IndustryFinance,
				Source:        "Google Ads",
				LastContactAt: now.AddDate(0, 0, -3),
			},
		},
	}

	for _, smp := range samples {
		c := smp.customer
		c.ID = uuid.New()
		c.CreatedAt = now
		for i := range c.Deals {
			c.Deals[i].ID = ulid.Make().String()
		}
		if err := store.CreateCustomer(c); err != nil {
			return err
		}
		for _, t := range smp.tasks {
			t.ID = ulid.Make().String()
			t.CustomerID = c.ID
			t.CreatedAt = now
			if err := store.AppendTask(t); err != nil {
				return err
			}
		}
	}

	log.Info("sample data loaded", "customers", len(samples))
	return nil
}
