// Package cli provides the interactive BookHub command-line client.
//
// It wires configuration, the credential store, the API client and the
// session services into a REPL that plays the part of a browser tab: on
// start the stored credential is resolved, a signed-in user lands on the
// dashboard, and everyone else is sent back to the entry view.
//
// Key features:
//   - Sign in by pasting an issued token, sign out
//   - Dashboard with role-scoped tabs (owners: my books and saved; seekers: saved)
//   - Listing a new book through a validated form
//   - Local delete and rented toggles on your own listings
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
