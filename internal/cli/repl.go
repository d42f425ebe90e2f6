package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. App satisfies
// it; tests can provide a stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	Write(ctx context.Context) error
	Show(ctx context.Context, day string) error
	Days(ctx context.Context) error
	Rate(ctx context.Context, value string) error
	Statistics(ctx context.Context) error
	Analyze(ctx context.Context) error
}

// runREPL reads a line, parses the first token as the command, and
// dispatches. Unknown commands are reported. The loop exits on scanner EOF
// or "exit"/"quit".
//
// Journal commands work while anonymous too (under the guest namespace);
// only the profile commands require a login.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("mood (%s) > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: write, show [day], days, rate <1-10>, stats, analyze, profile, edit, logout, exit")
			} else {
				printlnFn("Available commands: register, login, write, show [day], days, rate <1-10>, stats, analyze, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "edit":
			_ = a.EditProfile(ctx)

		case "w", "write":
			_ = a.Write(ctx)

		case "show":
			day := ""
			if len(args) > 0 {
				day = args[0]
			}
			_ = a.Show(ctx, day)

		case "days":
			_ = a.Days(ctx)

		case "rate":
			if len(args) == 0 {
				printlnFn("Usage: rate <1-10>")
				continue
			}
			_ = a.Rate(ctx, args[0])

		case "stats":
			_ = a.Statistics(ctx)

		case "analyze":
			_ = a.Analyze(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
