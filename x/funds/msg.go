package funds

import (
	"github.com/covault/covault"
	"github.com/covault/covault/coin"
	"github.com/covault/covault/errors"
)

// Ensure we implement the Msg interface
var _ covault.Msg = (*SendMsg)(nil)

const (
	sendTxCost int64 = 100

	maxMemoSize int = 128
	maxRefSize  int = 64
)

// SendMsg moves the given amount from the source account
// into the destination account.
type SendMsg struct {
	Src    covault.Address `json:"src"`
	Dest   covault.Address `json:"dest"`
	Amount *coin.Coin      `json:"amount"`
	// Memo is a message attached to the transfer, max 128 characters
	Memo string `json:"memo,omitempty"`
	// Ref is a reference to another transaction, max 64 bytes
	Ref []byte `json:"ref,omitempty"`
}

// Path returns the routing path for this message
func (SendMsg) Path() string {
	return "funds/send"
}

// Validate makes sure that this is sensible
func (s *SendMsg) Validate() error {
	if coin.IsEmpty(s.Amount) || !s.Amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non-positive SendMsg: %#v", s.Amount)
	}
	if err := s.Amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	if err := s.Src.Validate(); err != nil {
		return errors.Wrap(err, "src")
	}
	if err := s.Dest.Validate(); err != nil {
		return errors.Wrap(err, "dest")
	}
	if len(s.Memo) > maxMemoSize {
		return errors.Wrap(errors.ErrState, "memo too long")
	}
	if len(s.Ref) > maxRefSize {
		return errors.Wrap(errors.ErrState, "ref too long")
	}
	return nil
}

// DefaultSource makes sure there is a payer.
// If it was already set, returns s.
// If none was set, returns a new SendMsg with the source set
func (s *SendMsg) DefaultSource(addr []byte) *SendMsg {
	if len(s.Src) != 0 {
		return s
	}
	return &SendMsg{
		Src:    addr,
		Dest:   s.Dest,
		Amount: s.Amount,
		Memo:   s.Memo,
		Ref:    s.Ref,
	}
}
