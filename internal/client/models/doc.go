// Package models defines the client-side data models of BookHub: the
// authenticated identity, book listings as returned by the API, and the
// add-book form with its validation schema.
package models
