package services

import (
	"context"

	"github.com/bookhubb/bookhub/internal/client/client"
	"github.com/bookhubb/bookhub/internal/client/models"
)

// Collection names used in FetchError.
const (
	CollectionOwned = "owned"
	CollectionSaved = "saved"
)

// BookService syncs listing collections and creates listings.
type BookService interface {
	SyncOwned(ctx context.Context, user models.User, credential string) ([]models.Book, error)
	SyncSaved(ctx context.Context, user models.User, credential string) ([]models.Book, error)
	Create(ctx context.Context, form models.BookForm, user models.User, credential string) (*models.Book, error)
}

type bookService struct {
	client client.Client
}

func NewBookService(c client.Client) BookService {
	return &bookService{client: c}
}

// SyncOwned fetches the books user has listed. Seekers get ErrNotOwner
// without a request being made.
func (s *bookService) SyncOwned(ctx context.Context, user models.User, credential string) ([]models.Book, error) {
	if !user.IsOwner() {
		return nil, ErrNotOwner
	}
	books, err := s.client.ListOwnedBooks(ctx, credential, user.ID)
	if err != nil {
		return nil, &FetchError{Collection: CollectionOwned, Err: err}
	}
	return models.CanonicalBooks(books), nil
}

func (s *bookService) SyncSaved(ctx context.Context, user models.User, credential string) ([]models.Book, error) {
	books, err := s.client.ListSavedBooks(ctx, credential, user.ID)
	if err != nil {
		return nil, &FetchError{Collection: CollectionSaved, Err: err}
	}
	return models.CanonicalBooks(books), nil
}

// Create validates form and posts it as a listing owned by user. A form that
// fails validation returns *models.ValidationError and sends nothing.
func (s *bookService) Create(ctx context.Context, form models.BookForm, user models.User, credential string) (*models.Book, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}
	if !user.IsOwner() {
		return nil, ErrNotOwner
	}

	created, err := s.client.CreateBook(ctx, credential, models.NewBookFor(form, user))
	if err != nil {
		return nil, err
	}
	book := created.Canonical()
	return &book, nil
}
