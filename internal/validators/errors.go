package validators

import "errors"

// Validation errors carry the exact field-level message returned to API
// clients in 400 responses.
var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrMissingUsername    = errors.New("Username is required")
	ErrMissingFullname    = errors.New("Full name is required")
	ErrInvalidEmail       = errors.New("Valid email is required")
	ErrWeakPassword       = errors.New("Password must be at least 8 characters and contain a letter and a digit")
	ErrMissingAddress     = errors.New("Address is required")
	ErrInvalidPhoneNumber = errors.New("Phone number must contain digits only")

	ErrEmptyFeedbackMessage = errors.New("Feedback message is required")
	ErrInvalidRating        = errors.New("Rating must be between 1 and 5")
)
