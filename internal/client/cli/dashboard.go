package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bookhubb/bookhub/internal/client/models"
	"github.com/bookhubb/bookhub/internal/client/services"
)

// Dashboard refreshes both collections and prints the tabs the user can see.
func (a *App) Dashboard(ctx context.Context) error {
	if !a.requireSession() {
		return services.ErrNotAuthenticated
	}
	if err := a.dashboard.Mount(ctx); err != nil {
		return err
	}

	u, _ := a.session.Identity()
	printlnFn(fmt.Sprintf("Welcome, %s (%s)", u.Name, u.Role))
	for _, tab := range a.dashboard.Tabs() {
		switch tab {
		case services.TabMyBooks:
			renderBooks("My books", a.dashboard.OwnedBooks(), "You have not listed any books yet. Type 'add' to list one.")
		case services.TabSaved:
			renderBooks("Saved books", a.dashboard.SavedBooks(), "No saved books yet.")
		}
	}
	return nil
}

// MyBooks prints the owner's listings as last synced.
func (a *App) MyBooks(context.Context) error {
	if !a.requireSession() {
		return services.ErrNotAuthenticated
	}
	if !a.isOwner() {
		printlnFn("Only owners have a My books tab.")
		return services.ErrNotOwner
	}
	renderBooks("My books", a.dashboard.OwnedBooks(), "You have not listed any books yet.")
	return nil
}

// Saved prints the saved collection as last synced.
func (a *App) Saved(context.Context) error {
	if !a.requireSession() {
		return services.ErrNotAuthenticated
	}
	renderBooks("Saved books", a.dashboard.SavedBooks(), "No saved books yet.")
	return nil
}

func renderBooks(title string, books []models.Book, empty string) {
	printlnFn(fmt.Sprintf("%s (%d):", title, len(books)))
	if len(books) == 0 {
		printlnFn("  " + empty)
		return
	}
	for _, b := range books {
		printlnFn("  " + b.String())
	}
}

// Delete removes one of the owner's listings from the dashboard.
func (a *App) Delete(_ context.Context, id string) error {
	if !a.requireSession() {
		return services.ErrNotAuthenticated
	}
	if !a.dashboard.Delete(id) {
		printlnFn("No listing with id", id)
		return nil
	}
	printlnFn("Removed", id)
	return nil
}

// ToggleRent flips a listing between rented and available.
func (a *App) ToggleRent(_ context.Context, id string) error {
	if !a.requireSession() {
		return services.ErrNotAuthenticated
	}
	b, ok := a.dashboard.ToggleRent(id)
	if !ok {
		printlnFn("No listing with id", id)
		return nil
	}
	printlnFn(fmt.Sprintf("%s is now %s", b.ID, b.Status()))
	return nil
}

func (a *App) Genres(context.Context) error {
	printlnFn("Genres: " + strings.Join(models.Genres, ", "))
	return nil
}

// Add opens the add-book form. Fields that fail validation are reported
// and the user may correct them; pressing Enter keeps the previous answer.
func (a *App) Add(ctx context.Context) error {
	if !a.requireSession() {
		return services.ErrNotAuthenticated
	}
	if err := a.dashboard.ShowAdd(); err != nil {
		if errors.Is(err, services.ErrNotOwner) {
			printlnFn("Only owners can list books.")
		}
		return err
	}

	var form models.BookForm
	for {
		var err error
		if form, err = a.readForm(form); err != nil {
			a.dashboard.HideAdd()
			return err
		}

		book, err := a.dashboard.AddBook(ctx, form)
		if err == nil {
			printlnFn("Book listed:", book.String())
			return nil
		}

		var ve *models.ValidationError
		if !errors.As(err, &ve) {
			a.dashboard.HideAdd()
			printlnFn("Could not list the book:", err)
			return err
		}

		for _, f := range ve.Fields {
			printlnFn(fmt.Sprintf("  %s: %s", f.Field, f.Message))
		}
		again, err := getSimpleText(a.reader, "Fix and resubmit? [y/N]", a.out)
		if err != nil || !strings.EqualFold(again, "y") {
			a.dashboard.HideAdd()
			printlnFn("Cancelled.")
			return ve
		}
	}
}

func (a *App) readForm(prev models.BookForm) (models.BookForm, error) {
	fields := []struct {
		label string
		dst   *string
	}{
		{"Title", &prev.Title},
		{"Author", &prev.Author},
		{"Genre (optional, e.g. " + strings.Join(models.Genres[:4], ", ") + ")", &prev.Genre},
		{"Location", &prev.Location},
		{"Contact information", &prev.Contact},
		{"Cover URL (optional)", &prev.CoverURL},
	}

	for _, f := range fields {
		v, err := a.ask(f.label, *f.dst)
		if err != nil {
			return prev, err
		}
		*f.dst = v
	}
	return prev, nil
}

func (a *App) ask(label, current string) (string, error) {
	prompt := label
	if current != "" {
		prompt += fmt.Sprintf(" [%s]", current)
	}
	v, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return "", err
	}
	if v == "" {
		return current, nil
	}
	return v, nil
}
