package funds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/covault/covault/coin"
	"github.com/covault/covault/covaulttest"
	"github.com/covault/covault/errors"
	"github.com/covault/covault/store"
)

func TestIssueCoins(t *testing.T) {
	db := store.MemStore()
	bucket := NewBucket()
	control := NewController(bucket)

	addr := covaulttest.NewCondition().Address()

	require.NoError(t, control.IssueCoins(db, addr, coin.NewCoin(100, 0, "IOV")))
	require.NoError(t, control.IssueCoins(db, addr, coin.NewCoin(0, 500, "IOV")))

	balance, err := control.Balance(db, addr)
	require.NoError(t, err)
	assert.True(t, balance.Contains(coin.NewCoin(100, 500, "IOV")))

	// issuing can also burn
	require.NoError(t, control.IssueCoins(db, addr, coin.NewCoin(-100, -500, "IOV")))
	balance, err = control.Balance(db, addr)
	require.NoError(t, err)
	assert.True(t, balance.IsEmpty())
}

func TestMoveCoins(t *testing.T) {
	db := store.MemStore()
	bucket := NewBucket()
	control := NewController(bucket)

	src := covaulttest.NewCondition().Address()
	dest := covaulttest.NewCondition().Address()

	require.NoError(t, control.IssueCoins(db, src, coin.NewCoin(100, 0, "IOV")))

	// a proper move
	require.NoError(t, control.MoveCoins(db, src, dest, coin.NewCoin(30, 0, "IOV")))
	got, err := control.Balance(db, src)
	require.NoError(t, err)
	assert.True(t, got.Contains(coin.NewCoin(70, 0, "IOV")))
	got, err = control.Balance(db, dest)
	require.NoError(t, err)
	assert.True(t, got.Contains(coin.NewCoin(30, 0, "IOV")))

	// cannot move more than we have
	err = control.MoveCoins(db, src, dest, coin.NewCoin(500, 0, "IOV"))
	assert.True(t, ErrInsufficientFunds.Is(err), "got %+v", err)

	// cannot move an unknown currency
	err = control.MoveCoins(db, src, dest, coin.NewCoin(1, 0, "BTC"))
	assert.True(t, ErrInsufficientFunds.Is(err), "got %+v", err)

	// cannot move from an empty account
	empty := covaulttest.NewCondition().Address()
	err = control.MoveCoins(db, empty, dest, coin.NewCoin(1, 0, "IOV"))
	assert.True(t, ErrEmptyAccount.Is(err), "got %+v", err)

	// cannot move a non-positive amount
	err = control.MoveCoins(db, src, dest, coin.NewCoin(0, 0, "IOV"))
	assert.True(t, ErrInvalidAmount.Is(err), "got %+v", err)

	// balance of an unknown account errors
	_, err = control.Balance(db, empty)
	assert.True(t, errors.ErrNotFound.Is(err), "got %+v", err)
}

func TestMoveCoinsToSelf(t *testing.T) {
	db := store.MemStore()
	bucket := NewBucket()
	control := NewController(bucket)

	addr := covaulttest.NewCondition().Address()
	require.NoError(t, control.IssueCoins(db, addr, coin.NewCoin(100, 0, "IOV")))

	// moving to the same account must not change the balance
	require.NoError(t, control.MoveCoins(db, addr, addr, coin.NewCoin(30, 0, "IOV")))
	got, err := control.Balance(db, addr)
	require.NoError(t, err)
	assert.True(t, got.Equals(coin.Coins{coin.NewCoinp(100, 0, "IOV")}))

	// funds must still cover the amount
	err = control.MoveCoins(db, addr, addr, coin.NewCoin(500, 0, "IOV"))
	assert.True(t, ErrInsufficientFunds.Is(err), "got %+v", err)
}
