package funds

import (
	"github.com/covault/covault/errors"
)

var (
	// ErrInsufficientFunds is returned when the source account does not
	// hold enough coins to complete the operation.
	ErrInsufficientFunds = errors.Register(1200, "insufficient funds")

	// ErrEmptyAccount is returned when moving coins out of an account
	// that holds nothing.
	ErrEmptyAccount = errors.Register(1201, "empty account")

	// ErrInvalidAmount is returned when the coin amount does not make
	// sense for the operation, eg. a non-positive transfer.
	ErrInvalidAmount = errors.Register(1202, "invalid amount")
)
