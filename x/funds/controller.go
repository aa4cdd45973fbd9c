package funds

import (
	"github.com/covault/covault"
	"github.com/covault/covault/coin"
	"github.com/covault/covault/errors"
)

// Controller is the functionality needed by other extensions that
// hold or move tokens. This access to the ledger keeps the business
// logic free from the storage details.
type Controller interface {
	// MoveCoins removes funds from the source account and adds them to
	// the destination account. This operation is atomic.
	MoveCoins(store covault.KVStore, src covault.Address, dest covault.Address, amount coin.Coin) error

	// IssueCoins increases the number of funds on the destination
	// account. New coins are created out of thin air.
	IssueCoins(store covault.KVStore, dest covault.Address, amount coin.Coin) error

	// Balance returns the amount of funds held by the given account.
	Balance(store covault.KVStore, src covault.Address) (coin.Coins, error)
}

// BaseController is a simple implementation of controller
// wallet must return something that supports AsSet.
type BaseController struct {
	bucket Bucket
}

var _ Controller = BaseController{}

// NewController returns a base controller implementation.
func NewController(bucket Bucket) BaseController {
	return BaseController{bucket: bucket}
}

// Balance returns the amount of funds held by this account.
func (c BaseController) Balance(store covault.KVStore, src covault.Address) (coin.Coins, error) {
	wallet, err := c.bucket.Get(store, src)
	if err != nil {
		return nil, errors.Wrap(err, "cannot get wallet")
	}
	if wallet == nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "no wallet for %s", src)
	}
	return wallet.Coins(), nil
}

// MoveCoins moves the given amount from src to dest.
// If src doesn't exist, or doesn't have sufficient
// coins, it fails.
func (c BaseController) MoveCoins(store covault.KVStore,
	src covault.Address, dest covault.Address, amount coin.Coin) error {

	if !amount.IsPositive() {
		return errors.Wrapf(ErrInvalidAmount, "non-positive transfer: %s", amount)
	}

	sender, err := c.bucket.Get(store, src)
	if err != nil {
		return err
	}
	if sender == nil {
		return errors.Wrapf(ErrEmptyAccount, "%s", src)
	}
	if !sender.Coins().Contains(amount) {
		return errors.Wrapf(ErrInsufficientFunds, "%s requires %s", src, amount)
	}

	// a transfer to self must not touch the balance; loading the same
	// wallet twice would double-count the amount on save
	if src.Equals(dest) {
		return nil
	}

	recipient, err := c.bucket.GetOrCreate(store, dest)
	if err != nil {
		return err
	}
	if err := sender.Subtract(amount); err != nil {
		return err
	}
	if err := recipient.Add(amount); err != nil {
		return err
	}

	// save them and return
	if err := c.bucket.Save(store, sender); err != nil {
		return err
	}
	return c.bucket.Save(store, recipient)
}

// IssueCoins attempts to add the given amount of coins to
// the destination address. Fails if it overflows the wallet.
//
// Note the amount may also be negative:
// "the lord giveth and the lord taketh away"
func (c BaseController) IssueCoins(store covault.KVStore,
	dest covault.Address, amount coin.Coin) error {

	recipient, err := c.bucket.GetOrCreate(store, dest)
	if err != nil {
		return err
	}
	if err := recipient.Add(amount); err != nil {
		return err
	}
	return c.bucket.Save(store, recipient)
}
