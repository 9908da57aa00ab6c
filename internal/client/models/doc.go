// Package models defines the records fetched from the remote API and the
// dashboard's table filter state.
package models
