package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorIncludesOp(t *testing.T) {
	err := NotFound("customer not found").WithOp("store.GetCustomer")
	if got := err.Error(); got != "store.GetCustomer: customer not found" {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestGetKind(t *testing.T) {
	if GetKind(Validation("bad input")) != KindValidation {
		t.Fatal("expected validation kind")
	}
	if GetKind(errors.New("plain")) != KindUnknown {
		t.Fatal("plain errors should map to unknown")
	}
	if !Is(Conflict("dup"), KindConflict) {
		t.Fatal("Is failed for conflict")
	}
}

func TestUnwrap(t *testing.T) {
	inner := errors.New("disk full")
	err := Wrap(KindInternal, "save failed", inner)
	if !errors.Is(err, inner) {
		t.Fatal("wrapped error not reachable via errors.Is")
	}
	wrapped := fmt.Errorf("context: %w", err)
	var ae *Error
	if !errors.As(wrapped, &ae) || ae.Kind != KindInternal {
		t.Fatal("errors.As failed through fmt wrapping")
	}
}
