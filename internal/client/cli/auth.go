package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/bookhubb/bookhub/internal/client/services"
	"github.com/bookhubb/bookhub/internal/common"
)

// getSimpleText and getToken are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var (
	getSimpleText = GetSimpleText
	getToken      = GetToken
)

// SignIn reads a token, stores it and resolves the session. On success the
// app moves to the dashboard. The raw token bytes are wiped before returning.
func (a *App) SignIn(ctx context.Context) error {
	raw, err := getToken(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(raw)

	credential := strings.TrimSpace(string(raw))
	if credential == "" {
		printlnFn("No token entered.")
		return nil
	}

	a.dashboard.Reset()
	if err := a.session.SignIn(ctx, credential); err != nil {
		if errors.Is(err, services.ErrNotAuthenticated) {
			printlnFn("Sign-in failed: the token was not accepted.")
		}
		return err
	}

	a.navigate(services.DashboardRoute)
	return a.Dashboard(ctx)
}

// WhoAmI prints the resolved identity.
func (a *App) WhoAmI(context.Context) error {
	u, ok := a.session.Identity()
	if !ok {
		printlnFn("guest")
		return nil
	}
	printlnFn(u.Name, "<"+u.Email+">", "role:", string(u.Role), "id:", u.ID)
	return nil
}

// Logout tears the session down and drops dashboard state.
func (a *App) Logout(ctx context.Context) error {
	err := a.session.Teardown(ctx)
	a.dashboard.Reset()
	if err != nil {
		printlnFn("Signed out, but the stored token could not be removed:", err)
		return err
	}
	printlnFn("Signed out.")
	return nil
}

// requireSession reports whether a user is signed in, telling them otherwise.
func (a *App) requireSession() bool {
	if a.isSignedIn() {
		return true
	}
	printlnFn("Please sign in first.")
	return false
}
