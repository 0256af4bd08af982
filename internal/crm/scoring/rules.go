// Package scoring implements the lead-scoring engine: static rule tables,
// the fixed and weighted score calculators, and the temperature classifier.
// Everything here is pure; callers own all state.
package scoring

import "crmpulse/internal/crm/domain"

// Factor ramps translate each categorical attribute value into the fraction
// of that factor's configured weight it contributes. Values missing from a
// table (corrupted or future attribute values) contribute 0 so a score can
// always be produced for display.

var companySizeRamp = map[domain.CompanySize]float64{
	domain.CompanySizeStartup:    0.4,
	domain.CompanySizeSmall:      0.6,
	domain.CompanySizeMedium:     0.8,
	domain.CompanySizeLarge:      1.0,
	domain.CompanySizeEnterprise: 1.0,
}

var budgetRamp = map[domain.Budget]float64{
	domain.BudgetUnknown: 0.4,
	domain.BudgetLow:     0.2,
	domain.BudgetMedium:  0.6,
	domain.BudgetHigh:    1.0,
}

var timelineRamp = map[domain.Timeline]float64{
	domain.TimelineImmediate: 1.0,
	domain.TimelineShort:     0.75,
	domain.TimelineMedium:    0.5,
	domain.TimelineLong:      0.25,
}

var industryRamp = map[domain.Industry]float64{
	domain.IndustryTechnology:    1.0,
	domain.IndustryHealthcare:    0.8,
	domain.IndustryFinance:       0.67,
	domain.IndustryManufacturing: 0.53,
	domain.IndustryRetail:        0.4,
	domain.IndustryOther:         0.2,
}

// engagementMultiplier returns the fraction of the engagement weight earned
// for a contact that happened the given number of whole days ago.
func engagementMultiplier(daysSinceContact int) float64 {
	switch {
	case daysSinceContact <= 1:
		return 1.0
	case daysSinceContact <= 7:
		return 0.67
	case daysSinceContact <= 30:
		return 0.33
	default:
		return 0
	}
}

// Deal-value bonus tiers for the fixed calculator. Flat points, not scaled
// by any weight.
func dealValueBonus(total int64) int {
	switch {
	case total >= 50000:
		return 10
	case total >= 20000:
		return 7
	case total >= 5000:
		return 4
	default:
		return 0
	}
}
