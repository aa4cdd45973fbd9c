package funds

import (
	"github.com/covault/covault"
	"github.com/covault/covault/errors"
	"github.com/covault/covault/x"
)

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r covault.Registry, auth x.Authenticator, control Controller) {
	r.Handle(SendMsg{}.Path(), NewSendHandler(auth, control))
}

// RegisterQuery will register this bucket as "/wallets"
func RegisterQuery(qr covault.QueryRouter) {
	NewBucket().Register("wallets", qr)
}

// SendHandler will handle sending coins
type SendHandler struct {
	auth    x.Authenticator
	control Controller
}

var _ covault.Handler = SendHandler{}

// NewSendHandler creates a handler for SendMsg
func NewSendHandler(auth x.Authenticator, control Controller) SendHandler {
	return SendHandler{
		auth:    auth,
		control: control,
	}
}

// Check just verifies it is properly formed and returns
// the cost of executing it
func (h SendHandler) Check(ctx covault.Context, store covault.KVStore, tx covault.Tx) (covault.CheckResult, error) {
	var res covault.CheckResult
	if _, err := h.validate(ctx, tx); err != nil {
		return res, err
	}
	res.GasAllocated = sendTxCost
	return res, nil
}

// Deliver moves the tokens from sender to receiver if
// all preconditions are met
func (h SendHandler) Deliver(ctx covault.Context, store covault.KVStore, tx covault.Tx) (covault.DeliverResult, error) {
	var res covault.DeliverResult
	msg, err := h.validate(ctx, tx)
	if err != nil {
		return res, err
	}

	if err := h.control.MoveCoins(store, msg.Src, msg.Dest, *msg.Amount); err != nil {
		return res, err
	}
	return res, nil
}

// validate extracts the message and makes sure it is
// sensible and authorized by the source account.
func (h SendHandler) validate(ctx covault.Context, tx covault.Tx) (*SendMsg, error) {
	rmsg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	msg, ok := rmsg.(*SendMsg)
	if !ok {
		return nil, errors.Wrapf(errors.ErrType, "%T", rmsg)
	}
	if err := msg.Validate(); err != nil {
		return nil, err
	}

	// make sure we have permission from the sender
	if !h.auth.HasAddress(ctx, msg.Src) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "account owner signature missing")
	}
	return msg, nil
}
