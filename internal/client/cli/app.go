// Package cli implements the interactive wallboard client. Commands read
// their input with bufio prompts, passwords are read without echo, and the
// session token lives in memory only.
package cli

import (
	"bufio"
	"context"
	"os"

	"wallboard/internal/client/api"
)

type App struct {
	api      *api.Client
	userName string
	reader   *bufio.Reader
}

func NewApp(serverAddr string) *App {
	return &App{
		api:    api.NewClient(serverAddr),
		reader: bufio.NewReader(os.Stdin),
	}
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}

func (a *App) Run(ctx context.Context) {
	printlnFn("Wallboard CLI (type 'help' for commands)")
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

func (a *App) status() string {
	if a.isLoggedIn() {
		return a.userName
	}
	return "not logged in"
}
