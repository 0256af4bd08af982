package transport

import (
	"testing"
	"time"

	"crmpulse/platform/validator"
)

func TestCreateCustomerRequestValidation(t *testing.T) {
	val := validator.New()

	valid := CreateCustomerRequest{
		Name:    "Sarah Chen",
		Email:   "sarah@techcorp.example",
		Company: "TechCorp",
	}
	if err := val.Struct(valid); err != nil {
		t.Fatalf("minimal request rejected: %v", err)
	}

	cases := []struct {
		name string
		req  CreateCustomerRequest
	}{
		{"missing name", CreateCustomerRequest{Email: "a@b.example", Company: "X"}},
		{"bad email", CreateCustomerRequest{Name: "A", Email: "not-an-email", Company: "X"}},
		{"bad status", CreateCustomerRequest{Name: "A", Email: "a@b.example", Company: "X", Status: "frozen"}},
		{"bad size", CreateCustomerRequest{Name: "A", Email: "a@b.example", Company: "X", CompanySize: "galactic"}},
		{"bad industry", CreateCustomerRequest{Name: "A", Email: "a@b.example", Company: "X", Industry: "piracy"}},
	}
	for _, tc := range cases {
		if err := val.Struct(tc.req); err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
	}
}

func TestAttributeUpdatesValidation(t *testing.T) {
	val := validator.New()

	if err := val.Struct(AttributeUpdates{}); err != nil {
		t.Fatalf("empty update rejected: %v", err)
	}
	budget := "high"
	if err := val.Struct(AttributeUpdates{Budget: &budget}); err != nil {
		t.Fatalf("valid update rejected: %v", err)
	}
	bad := "infinite"
	if err := val.Struct(AttributeUpdates{Budget: &bad}); err == nil {
		t.Fatal("expected unknown budget to be rejected")
	}
}

func TestUpdateWeightsRequestConversion(t *testing.T) {
	val := validator.New()

	req := UpdateWeightsRequest{CompanySize: 20, Budget: 20, Timeline: 20, Industry: 20, Engagement: 20}
	if err := val.Struct(req); err != nil {
		t.Fatalf("valid weights rejected: %v", err)
	}
	w := req.Weights()
	if w.Total() != 100 {
		t.Fatalf("conversion lost points: %d", w.Total())
	}

	if err := val.Struct(UpdateWeightsRequest{CompanySize: 120}); err == nil {
		t.Fatal("expected out-of-range weight to be rejected")
	}
}

func TestCreateTaskRequestValidation(t *testing.T) {
	val := validator.New()

	req := CreateTaskRequest{Title: "Call back", DueAt: time.Now(), Priority: "high"}
	if err := val.Struct(req); err != nil {
		t.Fatalf("valid task rejected: %v", err)
	}
	req.Priority = "urgent"
	if err := val.Struct(req); err == nil {
		t.Fatal("expected unknown priority to be rejected")
	}
}
