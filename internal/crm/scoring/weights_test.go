package scoring

import (
	"strings"
	"testing"
)

func TestDefaultWeightsValid(t *testing.T) {
	w := DefaultWeights()
	if err := w.Validate(); err != nil {
		t.Fatalf("default weights rejected: %v", err)
	}
	if w.Total() != 100 {
		t.Fatalf("expected total 100, got %d", w.Total())
	}
}

func TestValidateAcceptsEvenSplit(t *testing.T) {
	w := WeightConfig{CompanySize: 20, Budget: 20, Timeline: 20, Industry: 20, Engagement: 20}
	if err := w.Validate(); err != nil {
		t.Fatalf("even split rejected: %v", err)
	}
}

func TestValidateRejectsWrongTotal(t *testing.T) {
	w := WeightConfig{CompanySize: 30, Budget: 30, Timeline: 20, Industry: 10, Engagement: 9}
	err := w.Validate()
	if err == nil {
		t.Fatal("expected total mismatch to be rejected")
	}
	if !strings.Contains(err.Error(), "got 99") {
		t.Fatalf("unexpected error message: %v", err)
	}
}

func TestValidateRejectsNegativeWeight(t *testing.T) {
	w := WeightConfig{CompanySize: 105, Budget: -5, Timeline: 0, Industry: 0, Engagement: 0}
	err := w.Validate()
	if err == nil {
		t.Fatal("expected negative weight to be rejected")
	}
	if !strings.Contains(err.Error(), "budget") {
		t.Fatalf("unexpected error message: %v", err)
	}
}
