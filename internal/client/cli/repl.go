package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isSignedIn() bool
	isOwner() bool
	SignIn(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Dashboard(ctx context.Context) error
	MyBooks(ctx context.Context) error
	Saved(ctx context.Context) error
	Add(ctx context.Context) error
	Delete(ctx context.Context, id string) error
	ToggleRent(ctx context.Context, id string) error
	Genres(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the BookHub CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. The loop exits on EOF, when ctx is done, or
// when the user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the navbar status (from statusFn) and accepts commands:
//
//	Signed out:
//	  - help           show available commands
//	  - signin         paste a token to sign in
//	  - exit | quit    leave the program
//
//	Signed in:
//	  - dashboard      refresh and show the dashboard
//	  - mybooks        show your listings (owners)
//	  - saved          show saved books
//	  - add            list a new book (owners)
//	  - delete <id>    remove one of your listings from the view (owners)
//	  - rent <id>      toggle a listing's rented flag (owners)
//	  - genres         show genre suggestions
//	  - whoami         show the signed-in user
//	  - logout         sign out
//
// Errors returned by command handlers are ignored here; handlers report
// them to the user themselves.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("bookhub %s> ", statusFn()))
		line, ok := readLine(reader)
		if !ok {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			switch {
			case a.isSignedIn() && a.isOwner():
				printlnFn("Available commands: dashboard, mybooks, saved, add, delete <id>, rent <id>, genres, whoami, logout, exit")
			case a.isSignedIn():
				printlnFn("Available commands: dashboard, saved, genres, whoami, logout, exit")
			default:
				printlnFn("Available commands: signin, genres, exit")
			}

		case "signin", "login":
			_ = a.SignIn(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "dashboard", "d":
			_ = a.Dashboard(ctx)

		case "mybooks":
			_ = a.MyBooks(ctx)

		case "saved":
			_ = a.Saved(ctx)

		case "add":
			_ = a.Add(ctx)

		case "delete", "rm":
			if len(args) == 0 {
				printlnFn("Usage: delete <id>")
				continue
			}
			_ = a.Delete(ctx, args[0])

		case "rent":
			if len(args) == 0 {
				printlnFn("Usage: rent <id>")
				continue
			}
			_ = a.ToggleRent(ctx, args[0])

		case "genres":
			_ = a.Genres(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
