package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the claim set carried by every token issued by the
// application.
//
// It embeds [jwt.RegisteredClaims] for the standard claim set (sub, exp,
// iat, iss) and adds the private "email" claim used by verification
// tokens. Session tokens leave Email empty.
type TokenClaims struct {
	jwt.RegisteredClaims

	// Email is the address a verification token proves ownership of.
	// Populated only on verification tokens.
	Email string `json:"email,omitempty"`
}

// Token wraps a JWT token with convenience accessors for authentication
// flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [TokenClaims] for claim access.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers or
// embedded in a verification URL.
//
// UserID is a cached copy of the "sub" (subject) claim: the hex form of
// the user's MongoDB document identifier.
type Token struct {
	// Token is the underlying JWT token used for signing and claim
	// inspection. Excluded from JSON serialization because only the
	// compact string form is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// TokenClaims provides access to the claim set of the token.
	TokenClaims

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	// Excluded from JSON serialization; it is an internal server-side cache.
	UserID string `json:"-"`
}

// String returns the compact JWS serialization of the token
// (the signed, base64url-encoded header.payload.signature string).
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
