package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL drives. *App implements it.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Lock(ctx context.Context) error
	Logout(ctx context.Context) error
	Add(ctx context.Context) error
	List(ctx context.Context) error
	Update(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Match(ctx context.Context, args []string) error
	Export(ctx context.Context, args []string) error
}

var errNotLoggedIn = errors.New("vault is locked, login first")

const (
	helpLocked   = "Available commands: register, login, logout, exit"
	helpUnlocked = "Available commands: add, (l)ist, update [id], delete [id], match <url>, export [file], lock, logout, exit"
)

// runREPL reads commands from reader until EOF or exit/quit and dispatches
// them to a. Command errors are printed and the loop goes on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("gv %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if err := dispatch(ctx, a, cmd, args); err != nil {
			if errors.Is(err, errExit) {
				printlnFn("Bye!")
				return
			}
			printlnFn("Error:", err)
		}
	}
}

var errExit = errors.New("exit")

func dispatch(ctx context.Context, a execIface, cmd string, args []string) error {
	switch cmd {
	case "help":
		if a.isLoggedIn() {
			printlnFn(helpUnlocked)
		} else {
			printlnFn(helpLocked)
		}
		return nil
	case "register":
		return a.Register(ctx)
	case "login":
		return a.Login(ctx)
	case "exit", "quit":
		return errExit
	}

	if !a.isLoggedIn() {
		switch cmd {
		case "lock", "add", "l", "list", "update", "delete", "match", "export":
			return errNotLoggedIn
		}
	}

	switch cmd {
	case "lock":
		return a.Lock(ctx)
	case "logout":
		return a.Logout(ctx)
	case "add":
		return a.Add(ctx)
	case "l", "list":
		return a.List(ctx)
	case "update":
		return a.Update(ctx, args)
	case "delete":
		return a.Delete(ctx, args)
	case "match":
		if len(args) == 0 {
			printlnFn("Usage: match <url>")
			return nil
		}
		return a.Match(ctx, args)
	case "export":
		return a.Export(ctx, args)
	default:
		printlnFn("Unknown command:", cmd)
		return nil
	}
}
