package api

import "errors"

var (
	// ErrNotFound indicates that the requested document or record does not exist on the server
	ErrNotFound = errors.New("not found on server")

	// ErrUnauthorized indicates that the server rejected the API key
	ErrUnauthorized = errors.New("unauthorized")
)
