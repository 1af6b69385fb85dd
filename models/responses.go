package models

import "time"

// SignupResponse is the body returned by a successful signup. The account
// exists but remains unusable for verified-only features until the emailed
// verification link is redeemed.
type SignupResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	UserID  string `json:"userId"`
	Email   string `json:"email"`

	// RequiresVerification is always true on signup: the caller must
	// redeem the emailed token before the account is verified.
	RequiresVerification bool `json:"requiresVerification"`
}

// LoginResponse is the body returned by a successful login.
type LoginResponse struct {
	Token string `json:"token"`

	// Verified mirrors the user's verification state so clients can
	// prompt unverified users without an extra profile call.
	Verified bool `json:"verified"`
}

// VerifyResponse is the body returned by a successful email verification.
type VerifyResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Verified bool   `json:"verified"`
}

// MessageResponse is a generic success envelope used by endpoints that
// have no richer payload to return.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// HealthResponse is the body of the /health endpoint.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Database  string    `json:"database"`
}

// ErrorResponse is the JSON envelope returned for unmatched routes and
// centrally handled errors.
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// WelcomeResponse is the body of the root endpoint.
type WelcomeResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
	Health  string `json:"health"`
}
