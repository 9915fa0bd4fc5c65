package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies it; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Post(ctx context.Context) error
	Wall(ctx context.Context, username string) error
	Users(ctx context.Context) error
	Status(ctx context.Context) error
	Chat(ctx context.Context) error
	Search(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL reads a line from the scanner, parses the first token as the
// command, and dispatches to methods on 'a'. The loop exits on scanner EOF
// or when the user types "exit" or "quit". Errors returned by command
// handlers are ignored here; handlers print their own errors.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("wb> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: post, wall <user>, users, status, chat, search, logout, exit")
			} else {
				printlnFn("Available commands: register, login, wall <user>, users, status, chat, search, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "post":
			_ = a.Post(ctx)

		case "wall":
			if len(args) == 0 {
				printlnFn("Usage: wall <username>")
				continue
			}
			_ = a.Wall(ctx, args[0])

		case "users":
			_ = a.Users(ctx)

		case "status":
			_ = a.Status(ctx)

		case "chat":
			_ = a.Chat(ctx)

		case "search":
			_ = a.Search(ctx)

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
