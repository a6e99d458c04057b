package validation

import (
	"regexp"
	"strings"

	"go-jobboard-backend/pkg/apperror"

	"github.com/google/uuid"
)

// Simple local@domain check, deliberately short of full RFC 5322.
var emailRegex = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+$`)

// UUID fails unless value parses as a syntactically valid UUID.
func UUID(value, field string) error {
	if strings.TrimSpace(value) == "" {
		return apperror.Validation("Field '" + field + "' must be a valid UUID")
	}
	if _, err := uuid.Parse(value); err != nil {
		return apperror.Validation("Field '" + field + "' must be a valid UUID")
	}
	return nil
}

// Required fails when value is empty or blank.
func Required(value, field string) error {
	if strings.TrimSpace(value) == "" {
		return apperror.Validation("Field '" + field + "' is required")
	}
	return nil
}

// Email runs the required check plus a basic shape check.
func Email(value string) error {
	if err := Required(value, "email"); err != nil {
		return err
	}
	if !emailRegex.MatchString(value) {
		return apperror.Validation("Field 'email' must be a valid email address")
	}
	return nil
}

// BlankToNull normalizes blank strings to nil so optional columns store
// true NULLs rather than empty strings.
func BlankToNull(value string) *string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return &value
}
