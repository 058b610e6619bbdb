package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/bookhubb/bookhub/internal/client/client"
	"github.com/bookhubb/bookhub/internal/client/config"
	"github.com/bookhubb/bookhub/internal/client/repositories/credentials"
	"github.com/bookhubb/bookhub/internal/client/services"
	"github.com/bookhubb/bookhub/internal/filex"
	"github.com/bookhubb/bookhub/internal/logging"
)

const databaseFile = "bookhub.db"

type App struct {
	config    *config.Config
	api       client.Client
	session   *services.Session
	books     services.BookService
	dashboard *services.Dashboard
	log       logging.Logger
	reader    *bufio.Reader
	out       io.Writer
	closers   []func() error

	mu    sync.Mutex
	route string
}

// NewApp opens the configured credential store and API client and wires the
// session services on top of them.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	store, closeStore, err := openStore(ctx, c)
	if err != nil {
		return nil, err
	}

	api, err := client.NewBookHubClient(c.APIBaseURL,
		client.WithTimeout(c.RequestTimeout),
		client.WithLogger(log),
	)
	if err != nil {
		_ = closeStore()
		return nil, err
	}

	a := newApp(c, store, api, log, os.Stdin, os.Stdout)
	a.closers = append(a.closers, closeStore)
	return a, nil
}

func newApp(c *config.Config, store credentials.Store, api client.Client, log logging.Logger, in io.Reader, out io.Writer) *App {
	a := &App{
		config: c,
		api:    api,
		books:  services.NewBookService(api),
		log:    log,
		reader: bufio.NewReader(in),
		out:    out,
		route:  services.EntryRoute,
	}
	a.session = services.NewSession(store, services.NewIdentityResolver(api), a.navigate, log)
	a.dashboard = services.NewDashboard(a.session, a.books, log)
	return a
}

func openStore(ctx context.Context, c *config.Config) (credentials.Store, func() error, error) {
	switch c.StoreBackend {
	case config.BackendSQLite:
		dir, err := filex.EnsureDir(c.DataDir)
		if err != nil {
			return nil, nil, err
		}
		db, err := client.InitDatabase(ctx, filepath.Join(dir, databaseFile))
		if err != nil {
			return nil, nil, fmt.Errorf("error initializing database: %w", err)
		}
		return credentials.NewSQLiteStore(db, c.CredentialKey), db.Close, nil

	case config.BackendRedis:
		rdb, err := credentials.NewRedisClient(ctx, c.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		return credentials.NewRedisStore(rdb, c.CredentialKey), rdb.Close, nil

	case config.BackendMemory:
		return credentials.NewMemoryStore(""), func() error { return nil }, nil

	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", c.StoreBackend)
	}
}

// Run resolves the stored session, then serves the REPL until the user
// exits or ctx is done.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	printlnFn("Welcome to BookHub (type 'help' for commands)")
	a.start(ctx)
	runREPL(ctx, a, a.getStatus, a.reader)
	return nil
}

// start is the home view: a resolved session goes straight to the dashboard.
func (a *App) start(ctx context.Context) {
	err := a.session.Init(ctx)
	switch {
	case err == nil:
		a.navigate(services.DashboardRoute)
		_ = a.Dashboard(ctx)
	case errors.Is(err, services.ErrNotAuthenticated):
		printlnFn("You are not signed in. Type 'signin' to paste your token.")
	default:
		a.log.Warn(ctx, "session init interrupted", "error", err)
	}
}

// Close releases the API client and the credential store.
func (a *App) Close() error {
	errs := []error{a.api.Close()}
	for _, c := range a.closers {
		errs = append(errs, c())
	}
	a.closers = nil
	return errors.Join(errs...)
}

func (a *App) navigate(route string) {
	a.mu.Lock()
	a.route = route
	a.mu.Unlock()
	a.log.Debug(context.Background(), "navigate", "route", route)
}

// Route is the view the app currently shows.
func (a *App) Route() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.route
}

func (a *App) isSignedIn() bool {
	_, ok := a.session.Identity()
	return ok
}

func (a *App) isOwner() bool {
	u, ok := a.session.Identity()
	return ok && u.IsOwner()
}

// getStatus renders the navbar: initials and role, or guest.
func (a *App) getStatus() string {
	if a.session.Loading() {
		return "(...)"
	}
	u, ok := a.session.Identity()
	if !ok {
		return "(guest)"
	}
	return fmt.Sprintf("(%s %s)", u.Initials(), u.Role)
}
