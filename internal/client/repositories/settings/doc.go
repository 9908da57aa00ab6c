// Package settings stores named client-side values (slots) in the local
// SQLite database.
//
// A slot is addressed by a string key and holds an opaque byte value that
// is always replaced as a whole. Get returns (nil, nil) for a missing key,
// so callers can tell "not stored yet" apart from a failing database.
package settings
