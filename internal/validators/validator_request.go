package validators

import (
	"context"
	"net/mail"
	"unicode"

	"github.com/eco-conscious/backend/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a
// subset of fields (field-level scoping).
const (
	FieldUsername    = "username"
	FieldFullname    = "fullname"
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldAddress     = "address"
	FieldPhoneNumber = "phone_number"

	FieldFeedbackMessage = "message"
	FieldFeedbackRating  = "rating"
)

// RequestValidator validates inbound API payloads before they reach the
// service layer. Each failure carries the field-level message returned to
// the client.
type RequestValidator struct {
}

// NewRequestValidator constructs a RequestValidator.
func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)

	case models.Feedback:
		return v.validateFeedback(ctx, value, fields...)
	case *models.Feedback:
		return v.validateFeedback(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateUser(_ context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldFullname, FieldEmail, FieldPassword, FieldAddress, FieldPhoneNumber}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if user.Username == "" {
				return ErrMissingUsername
			}
		case FieldFullname:
			if user.Fullname == "" {
				return ErrMissingFullname
			}
		case FieldEmail:
			if !isValidEmail(user.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if !isStrongPassword(user.Password) {
				return ErrWeakPassword
			}
		case FieldAddress:
			if user.Address == "" {
				return ErrMissingAddress
			}
		case FieldPhoneNumber:
			if !isValidPhoneNumber(user.PhoneNumber) {
				return ErrInvalidPhoneNumber
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateFeedback(_ context.Context, feedback models.Feedback, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldFeedbackMessage, FieldFeedbackRating}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !isValidEmail(feedback.Email) {
				return ErrInvalidEmail
			}
		case FieldFeedbackMessage:
			if feedback.Message == "" {
				return ErrEmptyFeedbackMessage
			}
		case FieldFeedbackRating:
			if feedback.Rating < 1 || feedback.Rating > 5 {
				return ErrInvalidRating
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isValidEmail(email string) bool {
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	// Reject the "Name <addr>" form: the API expects a bare address.
	return err == nil && addr.Address == email
}

// isStrongPassword requires at least 8 characters with at least one letter
// and one digit.
func isStrongPassword(password string) bool {
	if len(password) < 8 {
		return false
	}

	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	return hasLetter && hasDigit
}

func isValidPhoneNumber(phone string) bool {
	if phone == "" {
		return false
	}
	for _, r := range phone {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
