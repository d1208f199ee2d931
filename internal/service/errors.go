package service

import (
	"errors"

	"wanderlust-backend/internal/repository/ports"
)

// Shared sentinels. Handlers map these to HTTP status codes; anything else
// that escapes a service is an internal error.
var (
	ErrDestinationNotFound = errors.New("destination not found")
)

func isNotFound(err error) bool {
	return errors.Is(err, ports.ErrKeyNotFound)
}
