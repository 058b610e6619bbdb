// Package common contains constants and small helpers shared by the
// BookHub client packages.
package common

const (
	// CredentialKey is the storage key the bearer credential lives under.
	CredentialKey = "user"

	// AuthorizationHeader carries the bearer credential on API requests.
	AuthorizationHeader = "Authorization"

	// BearerPrefix precedes the credential in AuthorizationHeader.
	BearerPrefix = "Bearer "

	// RequestIDHeader tags every outbound request for tracing.
	RequestIDHeader = "X-Request-ID"
)
