// Package cli provides the interactive gophdash terminal client.
//
// It wires configuration, the local settings database, the REST client and
// the dashboard/profile services, then runs a REPL over stdin. The dashboard
// is shown on start; every command that changes the table re-renders it.
//
// Commands:
//   - list | l                  show the comments table
//   - search <text> | clear     filter by name, email or body
//   - size <10|50|100>          change the page size
//   - sort <postId|name|email>  cycle the sort on a column
//   - page <n> | next | prev | first | last
//   - reset                     restore the default filters
//   - profile | dashboard       switch views
//   - reload                    fetch the current view's data again
//   - exit | quit
//
// The REPL is started via App.Run(ctx), which blocks until the user exits or
// ctx is cancelled.
package cli
