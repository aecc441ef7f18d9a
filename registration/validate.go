package registration

import (
	"fmt"
	"strings"

	"github.com/iscol-meeting/iscol2025/helpers"
)

// ValidationError represents a validation failure with context.
type ValidationError struct {
	Field   string `json:"field"`   // Field name (e.g., "email")
	Code    string `json:"code"`    // Error code (e.g., "required", "invalid_format")
	Message string `json:"message"` // Human-readable message
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationResult contains all validation findings for a record.
type ValidationResult struct {
	Errors   []ValidationError `json:"errors,omitempty"`
	Warnings []ValidationError `json:"warnings,omitempty"` // Non-fatal oddities worth a manual look
}

// IsValid returns true if there are no errors.
func (r *ValidationResult) IsValid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// Error returns a combined error message, or nil if valid.
func (r *ValidationResult) Error() error {
	if r.IsValid() {
		return nil
	}
	var msgs []string
	for _, e := range r.Errors {
		msgs = append(msgs, e.Error())
	}
	return fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
}

// ValidationOptions configures validation behavior.
type ValidationOptions struct {
	// RequireName requires a non-empty full name
	RequireName bool
	// RequireEmail requires a non-empty email
	RequireEmail bool
	// RequireTimestamp requires a non-empty timestamp
	RequireTimestamp bool
	// ValidateEmailFormat checks the email against the address pattern
	ValidateEmailFormat bool
	// ValidateTimestamps checks that timestamps parse with a known layout
	ValidateTimestamps bool
}

// DefaultValidationOptions returns standard validation options.
func DefaultValidationOptions() ValidationOptions {
	return ValidationOptions{
		RequireName:         true,
		RequireEmail:        false,
		RequireTimestamp:    false,
		ValidateEmailFormat: true,
		ValidateTimestamps:  true,
	}
}

// StrictValidationOptions requires every identifying field.
func StrictValidationOptions() ValidationOptions {
	return ValidationOptions{
		RequireName:         true,
		RequireEmail:        true,
		RequireTimestamp:    true,
		ValidateEmailFormat: true,
		ValidateTimestamps:  true,
	}
}

// UnusualEmailFragments mark an address as suspicious even when it parses.
var UnusualEmailFragments = []string{"..", "--", "__"}

// Validate checks one record according to the given options.
func Validate(r *Record, opts ValidationOptions) *ValidationResult {
	result := &ValidationResult{}

	if opts.RequireName && strings.TrimSpace(r.FullName) == "" {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "full_name",
			Code:    "required",
			Message: "full name is required",
		})
	}

	email := strings.TrimSpace(r.Email)

	if opts.RequireEmail && email == "" {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "email",
			Code:    "required",
			Message: "email is required",
		})
	}

	if opts.RequireTimestamp && strings.TrimSpace(r.Timestamp) == "" {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "timestamp",
			Code:    "required",
			Message: "timestamp is required",
		})
	}

	if opts.ValidateEmailFormat && email != "" {
		if !helpers.IsEmail(email) {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "email",
				Code:    "invalid_format",
				Message: fmt.Sprintf("%q does not look like an email address", r.Email),
			})
		}
		for _, frag := range UnusualEmailFragments {
			if strings.Contains(email, frag) {
				result.Warnings = append(result.Warnings, ValidationError{
					Field:   "email",
					Code:    "unusual_pattern",
					Message: fmt.Sprintf("email contains %q", frag),
				})
				break
			}
		}
	}

	if opts.ValidateTimestamps {
		if ts := strings.TrimSpace(r.Timestamp); ts != "" && ParseTimestamp(ts).IsZero() {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "timestamp",
				Code:    "invalid_format",
				Message: fmt.Sprintf("cannot parse timestamp %q", r.Timestamp),
			})
		}
	}

	if aff := strings.TrimSpace(r.Affiliation); helpers.IsDigits(aff) {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "affiliation",
			Code:    "digits_only",
			Message: fmt.Sprintf("affiliation %q is all digits, possibly a phone number", r.Affiliation),
		})
	}

	return result
}

// ValidateAll validates every record and returns the results for those with
// errors or warnings, keyed by source row.
func ValidateAll(records []*Record, opts ValidationOptions) map[int]*ValidationResult {
	findings := make(map[int]*ValidationResult)
	for _, r := range records {
		result := Validate(r, opts)
		if !result.IsValid() || result.HasWarnings() {
			findings[r.SourceRow] = result
		}
	}
	return findings
}
