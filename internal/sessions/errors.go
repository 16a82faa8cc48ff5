package sessions

import "errors"

var (
	// ErrInvalidSessionConfig indicates the config query parameter could
	// not be decoded into a session config object.
	ErrInvalidSessionConfig = errors.New("invalid session config")

	// ErrNilCache indicates a factory was constructed without a cache.
	ErrNilCache = errors.New("session cache is required")
)
