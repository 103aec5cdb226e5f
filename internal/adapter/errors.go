package adapter

import "errors"

var (
	// ErrUnauthorized maps HTTP 401: the auth token is missing or expired.
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrNotFound maps HTTP 404: the collection or file does not exist
	// remotely (e.g. it was unshared between listing and fetching).
	ErrNotFound = errors.New("remote resource not found")
)
