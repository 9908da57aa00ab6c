package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

const helpText = `Available commands:
  (l)ist                     show the comments table
  search <text>              filter by name, email or comment
  clear                      clear the search
  size <10|50|100>           entries per page
  sort <postId|name|email>   cycle sort: asc, desc, none
  page <n>, next, prev, first, last
  reset                      restore default filters
  profile, dashboard         switch view
  reload                     fetch the current view again
  exit`

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	List(ctx context.Context) error
	Search(ctx context.Context, text string) error
	PageSize(ctx context.Context, arg string) error
	Sort(ctx context.Context, arg string) error
	Page(ctx context.Context, arg string) error
	Next(ctx context.Context) error
	Prev(ctx context.Context) error
	First(ctx context.Context) error
	Last(ctx context.Context) error
	Reset(ctx context.Context) error
	Profile(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Reload(ctx context.Context) error
}

// readLines feeds input lines to the returned channel until EOF or
// until ctx is done. Reading happens on its own goroutine so that a blocked
// read does not keep the REPL alive after Ctrl-C.
func readLines(ctx context.Context, in io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()
	return lines
}

// runREPL reads commands from in and dispatches them to a until the input
// ends, the user types "exit" or "quit", or ctx is cancelled.
//
// The first token is the command; the rest are its arguments. "search"
// keeps the whole remainder of the line, inner spaces included. Errors
// returned by handlers are ignored here; handlers report to the user
// themselves.
func runREPL(ctx context.Context, a execIface, statusFn func() string, in io.Reader) {
	readCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := readLines(readCtx, in)
	for {
		printlnFn(fmt.Sprintf("gophdash (%s)> ", statusFn()))

		var line string
		select {
		case <-ctx.Done():
			return
		case l, ok := <-lines:
			if !ok {
				return
			}
			line = l
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "help", "?":
			printlnFn(helpText)

		case "l", "list":
			_ = a.List(ctx)

		case "search", "s":
			if len(args) == 0 {
				printlnFn("Usage: search <text>")
				continue
			}
			_ = a.Search(ctx, searchText(line))

		case "clear":
			_ = a.Search(ctx, "")

		case "size":
			if len(args) != 1 {
				printlnFn("Usage: size <10|50|100>")
				continue
			}
			_ = a.PageSize(ctx, args[0])

		case "sort":
			if len(args) != 1 {
				printlnFn("Usage: sort <postId|name|email>")
				continue
			}
			_ = a.Sort(ctx, args[0])

		case "page", "p":
			if len(args) != 1 {
				printlnFn("Usage: page <n>")
				continue
			}
			_ = a.Page(ctx, args[0])

		case "next", "n":
			_ = a.Next(ctx)

		case "prev":
			_ = a.Prev(ctx)

		case "first":
			_ = a.First(ctx)

		case "last":
			_ = a.Last(ctx)

		case "reset":
			_ = a.Reset(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "dashboard", "home":
			_ = a.Dashboard(ctx)

		case "reload":
			_ = a.Reload(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if ctx.Err() != nil {
			return
		}
	}
}

// searchText returns everything after the command word, trimmed.
func searchText(line string) string {
	line = strings.TrimSpace(line)
	i := strings.IndexFunc(line, func(r rune) bool { return r == ' ' || r == '\t' })
	if i < 0 {
		return ""
	}
	return strings.TrimSpace(line[i:])
}
