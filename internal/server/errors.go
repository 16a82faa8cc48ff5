package server

import "errors"

var (
	// ErrNoListenAddress indicates the listener was configured without a
	// bind address.
	ErrNoListenAddress = errors.New("listen address is required")

	// ErrNilFactory indicates the listener was configured without a
	// session factory.
	ErrNilFactory = errors.New("session factory is required")

	// ErrNilCache indicates the listener was configured without a session
	// cache.
	ErrNilCache = errors.New("session cache is required")
)
