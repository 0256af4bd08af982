package scoring

import (
	"fmt"

	"crmpulse/platform/apperr"
)

// weightTotal is the fixed sum every valid weight configuration must reach.
const weightTotal = 100

// WeightConfig is the per-factor point budget controlling how much each
// attribute can contribute to the final score. A configuration is a value
// object: validate, then swap atomically; never mutate the active one.
type WeightConfig struct {
	CompanySize int
	Budget      int
	Timeline    int
	Industry    int
	Engagement  int
}

// DefaultWeights returns the out-of-the-box weight configuration.
func DefaultWeights() WeightConfig {
	return WeightConfig{
		CompanySize: 25,
		Budget:      25,
		Timeline:    20,
		Industry:    15,
		Engagement:  15,
	}
}

// Total returns the sum of the five weights.
func (w WeightConfig) Total() int {
	return w.CompanySize + w.Budget + w.Timeline + w.Industry + w.Engagement
}

// Validate rejects configurations with negative weights or a total other
// than 100. Validation is a precondition for applying a configuration, not
// a correction: rejected configurations must leave the active one unchanged.
func (w WeightConfig) Validate() error {
	for _, f := range []struct {
		name  string
		value int
	}{
		{"companySize", w.CompanySize},
		{"budget", w.Budget},
		{"timeline", w.Timeline},
		{"industry", w.Industry},
		{"engagement", w.Engagement},
	} {
		if f.value < 0 {
			return apperr.Validation(fmt.Sprintf("weight %s must not be negative, got %d", f.name, f.value))
		}
	}
	if total := w.Total(); total != weightTotal {
		return apperr.Validation(fmt.Sprintf("total must equal %d, got %d", weightTotal, total))
	}
	return nil
}
