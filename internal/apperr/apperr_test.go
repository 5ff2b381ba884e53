package apperr

import (
	"fmt"
	"testing"
)

func TestKindPredicatesSeeThroughWrapping(t *testing.T) {
	nf := fmt.Errorf("resolving board: %w", NotFound("Board not found"))
	if !IsNotFound(nf) {
		t.Error("IsNotFound did not match wrapped NotFoundError")
	}
	if IsForbidden(nf) || IsValidation(nf) {
		t.Error("NotFoundError matched a foreign kind")
	}

	fb := fmt.Errorf("checking access: %w", Forbidden("no access"))
	if !IsForbidden(fb) {
		t.Error("IsForbidden did not match wrapped ForbiddenError")
	}

	ve := fmt.Errorf("binding: %w", Validation("bad input"))
	if !IsValidation(ve) {
		t.Error("IsValidation did not match wrapped ValidationError")
	}
}

func TestValidationErrorMessage(t *testing.T) {
	if got := Validation("Invalid credentials").Error(); got != "Invalid credentials" {
		t.Errorf("Error() = %q, want %q", got, "Invalid credentials")
	}
	if got := FieldValidation("members", "Member not found").Error(); got != "members: Member not found" {
		t.Errorf("Error() = %q, want %q", got, "members: Member not found")
	}
}
