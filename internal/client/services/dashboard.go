package services

import (
	"context"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/bookhubb/bookhub/internal/client/models"
	"github.com/bookhubb/bookhub/internal/logging"
)

// Tab is a dashboard section.
type Tab string

const (
	TabMyBooks Tab = "my-books"
	TabSaved   Tab = "saved"
)

// Dashboard is the state behind the dashboard view: the owned and saved
// collections, the loading flag and whether the add form is open.
//
// Delete and ToggleRent change local state only.
type Dashboard struct {
	mu      sync.Mutex
	session *Session
	books   BookService
	log     logging.Logger
	owned   []models.Book
	saved   []models.Book
	loading bool
	adding  bool
}

func NewDashboard(session *Session, books BookService, log logging.Logger) *Dashboard {
	return &Dashboard{
		session: session,
		books:   books,
		log:     log,
		owned:   []models.Book{},
		saved:   []models.Book{},
		loading: true,
	}
}

// Mount syncs the collections for the signed-in user. Owners fetch owned
// and saved books concurrently, seekers only saved ones. A failed fetch is
// logged and leaves that collection as it was. Results are dropped once ctx
// is done.
func (d *Dashboard) Mount(ctx context.Context) error {
	user, ok := d.session.Identity()
	if !ok {
		return ErrNotAuthenticated
	}
	credential, _ := d.session.Credential()

	d.mu.Lock()
	d.loading = true
	d.mu.Unlock()

	var g errgroup.Group

	if user.IsOwner() {
		g.Go(func() error {
			books, err := d.books.SyncOwned(ctx, user, credential)
			if err != nil {
				d.log.Warn(ctx, "owned books sync failed", "user_id", user.ID, "error", err)
				return nil
			}
			d.apply(ctx, func() { d.owned = books })
			return nil
		})
	}

	g.Go(func() error {
		defer func() {
			d.mu.Lock()
			d.loading = false
			d.mu.Unlock()
		}()

		books, err := d.books.SyncSaved(ctx, user, credential)
		if err != nil {
			d.log.Warn(ctx, "saved books sync failed", "user_id", user.ID, "error", err)
			return nil
		}
		d.apply(ctx, func() { d.saved = books })
		return nil
	})

	_ = g.Wait()
	return ctx.Err()
}

func (d *Dashboard) apply(ctx context.Context, fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if ctx.Err() != nil {
		return
	}
	fn()
}

// Tabs lists the sections the signed-in user can see.
func (d *Dashboard) Tabs() []Tab {
	user, ok := d.session.Identity()
	if ok && user.IsOwner() {
		return []Tab{TabMyBooks, TabSaved}
	}
	return []Tab{TabSaved}
}

// OwnedBooks returns the owned collection restricted to the signed-in user.
func (d *Dashboard) OwnedBooks() []models.Book {
	user, ok := d.session.Identity()
	if !ok {
		return []models.Book{}
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]models.Book, 0, len(d.owned))
	for _, b := range d.owned {
		if b.OwnerID == user.ID {
			out = append(out, b)
		}
	}
	return out
}

func (d *Dashboard) SavedBooks() []models.Book {
	d.mu.Lock()
	defer d.mu.Unlock()
	return slices.Clone(d.saved)
}

func (d *Dashboard) Loading() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.loading
}

// ShowAdd opens the add form. Only owners may list books.
func (d *Dashboard) ShowAdd() error {
	user, ok := d.session.Identity()
	if !ok {
		return ErrNotAuthenticated
	}
	if !user.IsOwner() {
		return ErrNotOwner
	}
	d.mu.Lock()
	d.adding = true
	d.mu.Unlock()
	return nil
}

func (d *Dashboard) HideAdd() {
	d.mu.Lock()
	d.adding = false
	d.mu.Unlock()
}

func (d *Dashboard) Adding() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.adding
}

// AddBook creates a listing from form and puts the stored record into the
// owned collection exactly once, then closes the add form. Validation
// failures come back as *models.ValidationError.
func (d *Dashboard) AddBook(ctx context.Context, form models.BookForm) (*models.Book, error) {
	user, ok := d.session.Identity()
	if !ok {
		return nil, ErrNotAuthenticated
	}
	credential, _ := d.session.Credential()

	created, err := d.books.Create(ctx, form, user, credential)
	if err != nil {
		return nil, err
	}

	d.apply(ctx, func() {
		if i := d.indexOwned(created.ID); i >= 0 {
			d.owned[i] = *created
		} else {
			d.owned = append(d.owned, *created)
		}
		d.adding = false
	})

	d.log.Info(ctx, "book listed", "book_id", created.ID, "owner_id", user.ID)
	return created, nil
}

// Delete removes the owned listing with id. It reports whether one was found.
func (d *Dashboard) Delete(id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	i := d.indexOwned(id)
	if i < 0 {
		return false
	}
	d.owned = slices.Delete(d.owned, i, i+1)
	return true
}

// ToggleRent flips the rented flag of the owned listing with id.
func (d *Dashboard) ToggleRent(id string) (models.Book, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	i := d.indexOwned(id)
	if i < 0 {
		return models.Book{}, false
	}
	d.owned[i].IsRented = !d.owned[i].IsRented
	return d.owned[i], true
}

// Reset drops all view state, as after logout.
func (d *Dashboard) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.owned = []models.Book{}
	d.saved = []models.Book{}
	d.loading = true
	d.adding = false
}

// indexOwned must be called with d.mu held.
func (d *Dashboard) indexOwned(id string) int {
	return slices.IndexFunc(d.owned, func(b models.Book) bool { return b.ID == id })
}
