package client

import (
	"context"

	"github.com/bookhubb/bookhub/internal/client/models"
)

// Client is the BookHub REST API as seen by the client. Every call carries
// the caller's credential; the client itself keeps no session.
type Client interface {
	Close() error
	GetUser(ctx context.Context, credential, userID string) (*models.User, error)
	ListOwnedBooks(ctx context.Context, credential, ownerID string) ([]models.Book, error)
	ListSavedBooks(ctx context.Context, credential, userID string) ([]models.Book, error)
	CreateBook(ctx context.Context, credential string, book models.NewBook) (*models.Book, error)
}
