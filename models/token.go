package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT used to authorize mutating registry operations.
//
// The subject claim names the calling operator or service; the registry
// does not keep user accounts, so no further identity is attached.
type Token struct {
	// Token is the parsed JWT. Excluded from JSON serialization because only
	// the compact string form is meaningful outside the server process.
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS representation (header.payload.signature).
	SignedString string `json:"-"`
}

// Operator returns the subject claim, or an empty string when it is absent.
func (t *Token) Operator() string {
	subject, err := t.GetSubject()
	if err != nil {
		return ""
	}
	return subject
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
