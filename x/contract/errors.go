package contract

import (
	"github.com/iov-one/mswallet/errors"
)

var (
	// ErrUnknownMethod is returned when a contract does not expose the
	// called method.
	ErrUnknownMethod = errors.Register(1050, "unknown method")

	// ErrUnknownKind is returned when deploying a kind that was never
	// registered.
	ErrUnknownKind = errors.Register(1051, "unknown contract kind")
)
