package multisig

import (
	"github.com/iov-one/mswallet/errors"
)

// Wallet governance errors. Codes 1040-1048 are reserved for this package.
var (
	// ErrOnlyConfigured is returned when an owner operation is attempted
	// before the wallet was configured.
	ErrOnlyConfigured = errors.Register(1040, "only configured")

	// ErrNotConfigured is returned when the initialization phase is not in
	// the state required by the call.
	ErrNotConfigured = errors.Register(1041, "not configured")

	// ErrCannotBeSameAddress is returned when the wallet would become its
	// own owner.
	ErrCannotBeSameAddress = errors.Register(1042, "cannot be same address")

	// ErrOnlyOwners is returned when the caller is not an owner.
	ErrOnlyOwners = errors.Register(1043, "only owners")

	// ErrAlreadyVoted is returned for a repeated vote or approval.
	ErrAlreadyVoted = errors.Register(1044, "already voted")

	// ErrPassedAddressIsNotOwner is returned when a removal targets an
	// account that is not an owner.
	ErrPassedAddressIsNotOwner = errors.Register(1045, "passed address is not owner")

	// ErrNotEnoughVotes is returned when an action is enacted below quorum.
	ErrNotEnoughVotes = errors.Register(1046, "not enough votes")

	// ErrInvalidMethodName is returned when a proposal names a method
	// outside of the allow list.
	ErrInvalidMethodName = errors.Register(1047, "invalid method name")

	// ErrAlreadyExecuted is returned when a transaction is approved or
	// executed after it already ran.
	ErrAlreadyExecuted = errors.Register(1048, "already executed")
)
