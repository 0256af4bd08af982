package scoring

import (
	"math"
	"time"

	"crmpulse/internal/crm/domain"
)

// maxScore caps the final score. Factor contributions are all non-negative,
// so no floor is needed.
const maxScore = 100

// Attributes carries the categorical inputs of the score calculators,
// decoupled from the full Customer entity.
type Attributes struct {
	CompanySize domain.CompanySize
	Budget      domain.Budget
	Timeline    domain.Timeline
	Industry    domain.Industry
}

// AttributesOf extracts the scoring attributes from a customer.
func AttributesOf(c *domain.Customer) Attributes {
	return Attributes{
		CompanySize: c.CompanySize,
		Budget:      c.Budget,
		Timeline:    c.Timeline,
		Industry:    c.Industry,
	}
}

// ComputeWeighted is the configurable-weights score calculator. Each factor
// contributes a rounded fraction of its configured weight; engagement decays
// with whole days since last contact. The result is clamped to [0, 100].
//
// This variant carries no deal-value bonus. Callers that need the
// display-oriented formula with the bonus use ComputeFixed instead; the two
// are kept as distinct named variants on purpose.
func ComputeWeighted(attrs Attributes, lastContactAt, now time.Time, w WeightConfig) int {
	score := 0

	score += scaled(w.CompanySize, companySizeRamp[attrs.CompanySize])
	score += scaled(w.Budget, budgetRamp[attrs.Budget])
	score += scaled(w.Timeline, timelineRamp[attrs.Timeline])
	score += scaled(w.Industry, industryRamp[attrs.Industry])
	score += scaled(w.Engagement, engagementMultiplier(daysSinceContact(lastContactAt, now)))

	return clampScore(score)
}

// ComputeFixed is the non-configurable score calculator used for display-only
// contexts. It applies the default weight configuration and adds the flat
// deal-value bonus on top before clamping.
func ComputeFixed(attrs Attributes, lastContactAt time.Time, dealValueTotal int64, now time.Time) int {
	score := 0
	w := DefaultWeights()

	score += scaled(w.CompanySize, companySizeRamp[attrs.CompanySize])
	score += scaled(w.Budget, budgetRamp[attrs.Budget])
	score += scaled(w.Timeline, timelineRamp[attrs.Timeline])
	score += scaled(w.Industry, industryRamp[attrs.Industry])
	score += scaled(w.Engagement, engagementMultiplier(daysSinceContact(lastContactAt, now)))
	score += dealValueBonus(dealValueTotal)

	return clampScore(score)
}

// scaled rounds weight*fraction to the nearest integer point contribution.
func scaled(weight int, fraction float64) int {
	return int(math.Round(float64(weight) * fraction))
}

// daysSinceContact returns whole days between the last contact and the
// evaluation instant, using floor division. A contact in the future counts
// as day zero.
func daysSinceContact(lastContactAt, now time.Time) int {
	elapsed := now.Sub(lastContactAt)
	if elapsed < 0 {
		return 0
	}
	return int(elapsed / (24 * time.Hour))
}

func clampScore(score int) int {
	if score > maxScore {
		return maxScore
	}
	return score
}
