// Package client contains client-side building blocks for gophdash.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface) for the two
//     read-only collections the dashboard needs: comments and users.
//  2. A concrete HTTP/JSON implementation (see HTTPClient). Every call is a
//     single GET against the configured base URL, with no retries and no
//     caching. Each request carries a fresh X-Request-ID for log correlation.
//  3. Local persistence bootstrap utilities (OpenDatabase, RunMigrations),
//     wiring an SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// A failed fetch always wraps one of the sentinel errors ErrFetchComments or
// ErrFetchUsers, so callers can match with errors.Is no matter whether the
// transport, the status code or the payload was at fault. ErrUnexpectedStatus
// is wrapped alongside for non-2xx responses.
package client
