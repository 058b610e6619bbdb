// Package fakeapi is an in-memory stand-in for the BookHub REST API. It
// serves the four endpoints the client consumes, issues HS256 tokens,
// records every request and can be told to fail a route with a status.
package fakeapi

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"

	"github.com/bookhubb/bookhub/internal/client/models"
	"github.com/bookhubb/bookhub/internal/common"
)

// Route names accepted by Fail.
const (
	RouteGetUser    = "get-user"
	RouteOwnedBooks = "owned-books"
	RouteSavedBooks = "saved-books"
	RouteCreateBook = "create-book"
)

// Request is a recorded inbound request.
type Request struct {
	Method string
	Path   string
	Header http.Header
	Body   []byte
}

type userRecord struct {
	ID    string      `json:"_id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
}

// API is the fake server state. It implements http.Handler.
type API struct {
	mu       sync.Mutex
	secret   []byte
	users    map[string]userRecord
	aliases  map[string]string
	owned    map[string][]models.Book
	saved    map[string][]models.Book
	failures map[string]int
	requests []Request
	now      func() time.Time
	router   chi.Router
}

// New returns an empty API signing tokens with secret.
func New(secret string) *API {
	a := &API{
		secret:   []byte(secret),
		users:    make(map[string]userRecord),
		aliases:  make(map[string]string),
		owned:    make(map[string][]models.Book),
		saved:    make(map[string][]models.Book),
		failures: make(map[string]int),
		now:      time.Now,
	}

	r := chi.NewRouter()
	r.Use(a.recordMiddleware)
	r.Route("/api", func(r chi.Router) {
		r.Use(a.authMiddleware)
		r.Get("/auth/{userId}", a.getUser)
		r.Get("/books/saved-books/{userId}", a.listSaved)
		r.Get("/books/{ownerId}", a.listOwned)
		r.Post("/books", a.createBook)
	})
	a.router = r
	return a
}

func (a *API) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.router.ServeHTTP(w, r)
}

// AddUser registers u. Lookups by any of aliases resolve to u, which is how
// a token subject that differs from the stored id is simulated.
func (a *API) AddUser(u models.User, aliases ...string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.users[u.ID] = userRecord{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
	for _, alias := range aliases {
		a.aliases[alias] = u.ID
	}
}

// SeedOwned adds books to ownerID's listings as given, so a book with only
// LegacyID set is served with "_id" and one with only ID with "id".
func (a *API) SeedOwned(ownerID string, books ...models.Book) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.owned[ownerID] = append(a.owned[ownerID], books...)
}

func (a *API) SeedSaved(userID string, books ...models.Book) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.saved[userID] = append(a.saved[userID], books...)
}

// Fail makes route respond with status until cleared with status 0.
func (a *API) Fail(route string, status int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if status == 0 {
		delete(a.failures, route)
		return
	}
	a.failures[route] = status
}

// IssueToken signs a token whose "id" claim is subject.
func (a *API) IssueToken(subject string) string {
	token, err := a.IssueTokenWithClaims(jwt.MapClaims{
		"id":  subject,
		"iat": a.now().Unix(),
	})
	if err != nil {
		panic(err)
	}
	return token
}

func (a *API) IssueTokenWithClaims(claims jwt.Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

// Requests returns a copy of every request received so far.
func (a *API) Requests() []Request {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Request, len(a.requests))
	copy(out, a.requests)
	return out
}

// Count returns how many requests matched method and path. An empty path
// matches any path.
func (a *API) Count(method, path string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	n := 0
	for _, r := range a.requests {
		if r.Method == method && (path == "" || r.Path == path) {
			n++
		}
	}
	return n
}

func (a *API) recordMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body []byte
		if r.Body != nil {
			body, _ = io.ReadAll(r.Body)
			r.Body = io.NopCloser(bytes.NewReader(body))
		}
		a.mu.Lock()
		a.requests = append(a.requests, Request{
			Method: r.Method,
			Path:   r.URL.Path,
			Header: r.Header.Clone(),
			Body:   body,
		})
		a.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (a *API) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, ok := strings.CutPrefix(r.Header.Get(common.AuthorizationHeader), common.BearerPrefix)
		if !ok || raw == "" {
			writeError(w, http.StatusUnauthorized, "missing credentials")
			return
		}
		_, err := jwt.Parse(raw, func(*jwt.Token) (any, error) { return a.secret, nil },
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// failed writes the injected status for route, if any.
func (a *API) failed(w http.ResponseWriter, route string) bool {
	a.mu.Lock()
	status, ok := a.failures[route]
	a.mu.Unlock()
	if !ok {
		return false
	}
	writeError(w, status, http.StatusText(status))
	return true
}

func (a *API) getUser(w http.ResponseWriter, r *http.Request) {
	if a.failed(w, RouteGetUser) {
		return
	}
	id := chi.URLParam(r, "userId")

	a.mu.Lock()
	if canonical, ok := a.aliases[id]; ok {
		id = canonical
	}
	u, ok := a.users[id]
	a.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, "user not found")
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (a *API) listOwned(w http.ResponseWriter, r *http.Request) {
	if a.failed(w, RouteOwnedBooks) {
		return
	}
	a.mu.Lock()
	books := append([]models.Book{}, a.owned[chi.URLParam(r, "ownerId")]...)
	a.mu.Unlock()
	writeJSON(w, http.StatusOK, books)
}

func (a *API) listSaved(w http.ResponseWriter, r *http.Request) {
	if a.failed(w, RouteSavedBooks) {
		return
	}
	a.mu.Lock()
	books := append([]models.Book{}, a.saved[chi.URLParam(r, "userId")]...)
	a.mu.Unlock()
	writeJSON(w, http.StatusOK, books)
}

func (a *API) createBook(w http.ResponseWriter, r *http.Request) {
	if a.failed(w, RouteCreateBook) {
		return
	}

	var in models.NewBook
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "malformed body")
		return
	}
	if in.Title == "" || in.OwnerID == "" {
		writeError(w, http.StatusBadRequest, "title and ownerId are required")
		return
	}

	id, err := common.MakeRandHexString(12)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "id generation failed")
		return
	}

	book := models.Book{
		LegacyID:  id,
		Title:     in.Title,
		Author:    in.Author,
		Genre:     in.Genre,
		Location:  in.Location,
		Contact:   in.Contact,
		OwnerID:   in.OwnerID,
		OwnerName: in.OwnerName,
		IsRented:  in.IsRented,
		CoverURL:  in.CoverURL,
		CreatedAt: a.now().UTC(),
	}

	a.mu.Lock()
	a.owned[in.OwnerID] = append(a.owned[in.OwnerID], book)
	a.mu.Unlock()

	writeJSON(w, http.StatusCreated, book)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}
