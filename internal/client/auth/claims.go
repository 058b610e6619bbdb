// Package auth decodes the claims carried by a BookHub bearer credential.
//
// Decoding is structural only: the signature is NOT verified and the
// resulting subject must be treated as untrusted input. The API remains the
// authority on who the user is.
package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ErrMissingSubject is returned for a well-formed token without a subject.
var ErrMissingSubject = errors.New("credential has no subject")

// Claims are the fields the client reads from a credential.
type Claims struct {
	jwt.RegisteredClaims
	// UserID is the "id" claim the BookHub API issues.
	UserID string `json:"id"`
}

// SubjectID returns the "id" claim, falling back to "sub".
func (c *Claims) SubjectID() string {
	if c.UserID != "" {
		return c.UserID
	}
	return c.Subject
}

// DecodeError reports a credential that could not be decoded.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode credential: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// DecodeClaims parses token without verifying its signature or expiry.
func DecodeClaims(token string) (*Claims, error) {
	claims := &Claims{}

	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, &DecodeError{Err: err}
	}
	if claims.SubjectID() == "" {
		return nil, &DecodeError{Err: ErrMissingSubject}
	}
	return claims, nil
}
