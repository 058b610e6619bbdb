// Package credentials persists the single bearer credential the client
// signs in with. It stands in for the browser's local storage: one value
// under a fixed key, readable and writable by any process sharing the backend.
//
// Store implementations do not validate what they hold. An absent value is
// reported as the empty string with a nil error.
package credentials
