// Package services holds the client's application logic: resolving the
// stored credential into a confirmed identity, the process-wide session
// state machine, role-scoped listing sync and the dashboard view state.
//
// Everything here talks to the API through client.Client and persists
// only through credentials.Store, so tests wire the fake API and an
// in-memory store.
package services
