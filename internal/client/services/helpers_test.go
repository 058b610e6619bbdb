package services

import (
	"context"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/bookhubb/bookhub/internal/client/client"
	"github.com/bookhubb/bookhub/internal/client/fakeapi"
	"github.com/bookhubb/bookhub/internal/client/models"
	"github.com/bookhubb/bookhub/internal/client/repositories/credentials"
	"github.com/bookhubb/bookhub/internal/logging"
)

// ---- fakes ----

// recordingStore wraps MemoryStore and counts clears.
type recordingStore struct {
	*credentials.MemoryStore
	mu     sync.Mutex
	clears int
}

func newRecordingStore(credential string) *recordingStore {
	return &recordingStore{MemoryStore: credentials.NewMemoryStore(credential)}
}

func (s *recordingStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.clears++
	s.mu.Unlock()
	return s.MemoryStore.Clear(ctx)
}

func (s *recordingStore) Clears() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clears
}

// routes records every redirect.
type routes struct {
	mu   sync.Mutex
	seen []string
}

func (r *routes) navigate(route string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen = append(r.seen, route)
}

func (r *routes) Seen() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.seen...)
}

// blockingResolver waits for release or ctx before answering.
type blockingResolver struct {
	started chan struct{}
	release chan struct{}
	user    *models.User
}

func newBlockingResolver(user *models.User) *blockingResolver {
	return &blockingResolver{
		started: make(chan struct{}),
		release: make(chan struct{}),
		user:    user,
	}
}

func (r *blockingResolver) Resolve(ctx context.Context, _ string) (*models.User, error) {
	close(r.started)
	select {
	case <-r.release:
		return r.user, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// fakeBooks is a BookService with canned answers and call counters.
type fakeBooks struct {
	mu         sync.Mutex
	owned      []models.Book
	saved      []models.Book
	ownedErr   error
	savedErr   error
	created    *models.Book
	createErr  error
	ownedCalls int
	savedCalls int
	creates    int
}

func (f *fakeBooks) SyncOwned(context.Context, models.User, string) ([]models.Book, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ownedCalls++
	return f.owned, f.ownedErr
}

func (f *fakeBooks) SyncSaved(context.Context, models.User, string) ([]models.Book, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.savedCalls++
	return f.saved, f.savedErr
}

func (f *fakeBooks) Create(_ context.Context, form models.BookForm, _ models.User, _ string) (*models.Book, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := form.Validate(); err != nil {
		return nil, err
	}
	f.creates++
	if f.createErr != nil {
		return nil, f.createErr
	}
	b := *f.created
	return &b, nil
}

// ---- wiring ----

var (
	owner  = models.User{ID: "db-owner", Name: "Ann Lee", Email: "ann@x.io", Role: models.RoleOwner}
	seeker = models.User{ID: "db-seeker", Name: "Bo", Email: "bo@x.io", Role: models.RoleSeeker}
)

type env struct {
	api    *fakeapi.API
	client client.Client
	store  *recordingStore
	routes *routes
}

func newEnv(t *testing.T) *env {
	t.Helper()
	api := fakeapi.New("test-secret")
	api.AddUser(owner, "claims-owner")
	api.AddUser(seeker)
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	c, err := client.NewBookHubClient(srv.URL, client.WithHTTPClient(srv.Client()))
	require.NoError(t, err)

	return &env{api: api, client: c, store: newRecordingStore(""), routes: &routes{}}
}

func (e *env) session() *Session {
	return NewSession(e.store, NewIdentityResolver(e.client), e.routes.navigate, logging.Discard())
}

// signedIn returns an initialized session for the user behind subject.
func (e *env) signedIn(t *testing.T, subject string) *Session {
	t.Helper()
	s := e.session()
	require.NoError(t, s.SignIn(context.Background(), e.api.IssueToken(subject)))
	return s
}

func jwtSubject(sub string) jwt.Claims {
	return jwt.RegisteredClaims{Subject: sub}
}
