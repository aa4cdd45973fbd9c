package vault

import (
	"github.com/covault/covault/errors"
)

var (
	// ErrNotSigner is returned when the transaction author is not in the
	// signer registry of the vault.
	ErrNotSigner = errors.Register(1100, "not a vault signer")

	// ErrNotOwner is returned when a registry or ownership operation is
	// attempted by anyone but the vault owner.
	ErrNotOwner = errors.Register(1101, "not the vault owner")

	// ErrNotPendingOwner is returned when claiming ownership without
	// being the nominated candidate.
	ErrNotPendingOwner = errors.Register(1102, "not the pending owner")

	// ErrAlreadyApproved is returned when a signer approves the same
	// pending transaction twice.
	ErrAlreadyApproved = errors.Register(1103, "already approved")

	// ErrAlreadyExecuted is returned when approving a transaction that
	// was already executed.
	ErrAlreadyExecuted = errors.Register(1104, "already executed")

	// ErrOutOfRange is returned when a signer index does not point into
	// the signer registry.
	ErrOutOfRange = errors.Register(1105, "index out of range")

	// ErrBelowQuorum is returned when removing a signer would leave the
	// registry smaller than the quorum.
	ErrBelowQuorum = errors.Register(1106, "registry below quorum")

	// ErrDuplicateSigner is returned when adding a signer that is
	// already registered.
	ErrDuplicateSigner = errors.Register(1107, "duplicate signer")
)
