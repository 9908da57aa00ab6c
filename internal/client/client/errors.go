package client

import "errors"

var (
	ErrFetchComments    = errors.New("failed to fetch comments")
	ErrFetchUsers       = errors.New("failed to fetch users")
	ErrUnexpectedStatus = errors.New("unexpected status")
)
