package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bookhubb/bookhub/internal/client/models"
	"github.com/bookhubb/bookhub/internal/client/repositories/credentials"
	"github.com/bookhubb/bookhub/internal/logging"
)

// State is where the session is in its lifecycle.
type State int

const (
	StateUnresolved State = iota
	StateResolving
	StateResolved
	StateUnauthenticated
)

func (s State) String() string {
	switch s {
	case StateUnresolved:
		return "unresolved"
	case StateResolving:
		return "resolving"
	case StateResolved:
		return "resolved"
	case StateUnauthenticated:
		return "unauthenticated"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Routes the session redirects to.
const (
	EntryRoute     = "/"
	DashboardRoute = "/dashboard"
)

// Navigator moves the presentation layer to route.
type Navigator func(route string)

var errCredentialAbsent = errors.New("no stored credential")

// Session is the single, process-wide authentication state. Construct it
// once and pass it to every consumer.
//
// A failed resolution clears the stored credential and redirects to
// EntryRoute exactly once. Nothing is retried.
type Session struct {
	mu         sync.Mutex
	store      credentials.Store
	resolver   IdentityResolver
	navigate   Navigator
	log        logging.Logger
	state      State
	user       *models.User
	credential string
	generation uint64
}

func NewSession(store credentials.Store, resolver IdentityResolver, navigate Navigator, log logging.Logger) *Session {
	if navigate == nil {
		navigate = func(string) {}
	}
	return &Session{
		store:    store,
		resolver: resolver,
		navigate: navigate,
		log:      log,
		state:    StateUnresolved,
	}
}

// Init resolves the stored credential into an identity.
//
// If ctx is cancelled mid-way the session returns to StateUnresolved, the
// credential is kept and ctx.Err() is returned. If SignIn, Teardown or
// another Init starts meanwhile, the result is dropped with
// ErrSessionChanged.
func (s *Session) Init(ctx context.Context) error {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.state = StateResolving
	s.user = nil
	s.credential = ""
	s.mu.Unlock()

	credential, err := s.store.Read(ctx)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return s.abort(gen, ctxErr)
	}
	if err != nil {
		return s.fail(ctx, gen, fmt.Errorf("read credential: %w", err))
	}
	if credential == "" {
		return s.fail(ctx, gen, errCredentialAbsent)
	}

	user, err := s.resolver.Resolve(ctx, credential)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return s.abort(gen, ctxErr)
	}
	if err != nil {
		return s.fail(ctx, gen, err)
	}

	s.mu.Lock()
	if s.generation != gen {
		s.mu.Unlock()
		return ErrSessionChanged
	}
	s.state = StateResolved
	s.user = user
	s.credential = credential
	s.mu.Unlock()

	s.log.Info(ctx, "session resolved", "user_id", user.ID, "role", user.Role)
	return nil
}

func (s *Session) abort(gen uint64, err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation == gen {
		s.state = StateUnresolved
	}
	return err
}

func (s *Session) fail(ctx context.Context, gen uint64, cause error) error {
	s.mu.Lock()
	if s.generation != gen {
		s.mu.Unlock()
		return ErrSessionChanged
	}
	s.state = StateUnauthenticated
	s.user = nil
	s.credential = ""
	s.mu.Unlock()

	if errors.Is(cause, errCredentialAbsent) {
		s.log.Debug(ctx, "session not authenticated", "cause", cause)
	} else {
		s.log.Warn(ctx, "session not authenticated", "cause", cause)
	}

	if err := s.store.Clear(ctx); err != nil {
		s.log.Error(ctx, "failed to clear credential", "error", err)
	}
	s.navigate(EntryRoute)
	return ErrNotAuthenticated
}

// SignIn stores credential and resolves it.
func (s *Session) SignIn(ctx context.Context, credential string) error {
	if err := s.store.Write(ctx, credential); err != nil {
		return fmt.Errorf("store credential: %w", err)
	}
	return s.Init(ctx)
}

// Teardown signs out: it forgets the identity, clears the stored credential
// and redirects to EntryRoute. Any resolution in flight is dropped.
func (s *Session) Teardown(ctx context.Context) error {
	s.mu.Lock()
	s.generation++
	s.state = StateUnauthenticated
	s.user = nil
	s.credential = ""
	s.mu.Unlock()

	err := s.store.Clear(ctx)
	s.navigate(EntryRoute)
	if err != nil {
		return fmt.Errorf("clear credential: %w", err)
	}
	return nil
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Loading reports whether the session has not settled yet.
func (s *Session) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == StateUnresolved || s.state == StateResolving
}

// Identity returns the resolved user.
func (s *Session) Identity() (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateResolved || s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

// Credential returns the credential the identity was resolved from.
func (s *Session) Credential() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateResolved {
		return "", false
	}
	return s.credential, true
}
