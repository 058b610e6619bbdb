// Package client contains the transport side of the BookHub client.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) covering
//     the four endpoints the client consumes: user lookup, owned listings,
//     saved listings and listing creation.
//  2. A concrete HTTP implementation (see HTTPClient) that attaches the bearer
//     credential and a request id, decodes JSON, canonicalizes listing
//     identifiers at the boundary, and maps HTTP statuses to sentinel errors.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) wiring an
//     SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Non-2xx responses surface as *StatusError, which unwraps to one of the
// sentinels below so callers can match with errors.Is: ErrUnauthorized,
// ErrNotFound, ErrUnavailable. Transport failures also map to ErrUnavailable.
//
// All operations accept context.Context and honor cancellation.
package client
