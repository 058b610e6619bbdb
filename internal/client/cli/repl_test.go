package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	signedIn bool
	owner    bool

	calls []string
	args  []string
}

func (f *fakeExec) isSignedIn() bool { return f.signedIn }
func (f *fakeExec) isOwner() bool    { return f.owner }
func (f *fakeExec) SignIn(context.Context) error {
	f.calls = append(f.calls, "signin")
	f.signedIn = true
	return nil
}
func (f *fakeExec) WhoAmI(context.Context) error    { f.calls = append(f.calls, "whoami"); return nil }
func (f *fakeExec) Dashboard(context.Context) error { f.calls = append(f.calls, "dashboard"); return nil }
func (f *fakeExec) MyBooks(context.Context) error   { f.calls = append(f.calls, "mybooks"); return nil }
func (f *fakeExec) Saved(context.Context) error     { f.calls = append(f.calls, "saved"); return nil }
func (f *fakeExec) Add(context.Context) error       { f.calls = append(f.calls, "add"); return nil }
func (f *fakeExec) Delete(_ context.Context, id string) error {
	f.calls = append(f.calls, "delete")
	f.args = append(f.args, id)
	return nil
}
func (f *fakeExec) ToggleRent(_ context.Context, id string) error {
	f.calls = append(f.calls, "rent")
	f.args = append(f.args, id)
	return nil
}
func (f *fakeExec) Genres(context.Context) error { f.calls = append(f.calls, "genres"); return nil }
func (f *fakeExec) Logout(context.Context) error {
	f.calls = append(f.calls, "logout")
	f.signedIn = false
	return nil
}

// captureOutput swaps printlnFn for a recorder.
func captureOutput(t *testing.T) *strings.Builder {
	t.Helper()
	var out strings.Builder
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) { return fmt.Fprintln(&out, a...) }
	t.Cleanup(func() { printlnFn = orig })
	return &out
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	out := captureOutput(t)

	input := strings.Join([]string{
		"help",
		"signin",
		"",
		"dashboard",
		"mybooks",
		"saved",
		"add",
		"delete b1",
		"rent b2",
		"genres",
		"whoami",
		"foobar",
		"logout",
		"exit",
		"saved",
	}, "\n")

	exec := &fakeExec{owner: true}
	runREPL(context.Background(), exec, func() string { return "(guest)" }, bufio.NewReader(strings.NewReader(input)))

	assert.Equal(t, []string{
		"signin", "dashboard", "mybooks", "saved", "add", "delete", "rent", "genres", "whoami", "logout",
	}, exec.calls, "nothing runs after exit")
	assert.Equal(t, []string{"b1", "b2"}, exec.args)
	assert.Contains(t, out.String(), "bookhub (guest)> ")
	assert.Contains(t, out.String(), "Available commands: signin")
	assert.Contains(t, out.String(), "Unknown command: foobar")
	assert.Contains(t, out.String(), "Bye!")
}

func TestRunREPL_HelpDependsOnRole(t *testing.T) {
	tests := []struct {
		name string
		exec *fakeExec
		want string
	}{
		{"guest", &fakeExec{}, "Available commands: signin, genres, exit"},
		{"seeker", &fakeExec{signedIn: true}, "Available commands: dashboard, saved, genres"},
		{"owner", &fakeExec{signedIn: true, owner: true}, "Available commands: dashboard, mybooks, saved, add"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := captureOutput(t)
			runREPL(context.Background(), tt.exec, func() string { return "" }, bufio.NewReader(strings.NewReader("help\n")))
			assert.Contains(t, out.String(), tt.want)
		})
	}
}

func TestRunREPL_UsageAndQuit(t *testing.T) {
	out := captureOutput(t)

	exec := &fakeExec{signedIn: true, owner: true}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewReader(strings.NewReader("delete\nrent\nquit\n")))

	require.Empty(t, exec.calls)
	assert.Contains(t, out.String(), "Usage: delete <id>")
	assert.Contains(t, out.String(), "Usage: rent <id>")
}

func TestRunREPL_StopsWhenContextDone(t *testing.T) {
	captureOutput(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exec := &fakeExec{}
	runREPL(ctx, exec, func() string { return "" }, bufio.NewReader(strings.NewReader("signin\n")))
	assert.Empty(t, exec.calls)
}
