package x

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/covault/covault"
)

// namedAuth authenticates a fixed set of conditions, ignoring the context.
type namedAuth struct {
	conds []covault.Condition
}

var _ Authenticator = namedAuth{}

func (a namedAuth) GetConditions(covault.Context) []covault.Condition {
	return a.conds
}

func (a namedAuth) HasAddress(ctx covault.Context, addr covault.Address) bool {
	for _, c := range a.conds {
		if addr.Equals(c.Address()) {
			return true
		}
	}
	return false
}

func TestChainAuth(t *testing.T) {
	ctx := context.Background()

	a := covault.NewCondition("sigs", "ed25519", []byte("alice"))
	b := covault.NewCondition("sigs", "ed25519", []byte("bob"))
	c := covault.NewCondition("sigs", "ed25519", []byte("carl"))

	auth := ChainAuth(
		namedAuth{conds: []covault.Condition{a}},
		namedAuth{},
		namedAuth{conds: []covault.Condition{b}},
	)

	conds := auth.GetConditions(ctx)
	assert.Equal(t, []covault.Condition{a, b}, conds)

	assert.True(t, auth.HasAddress(ctx, a.Address()))
	assert.True(t, auth.HasAddress(ctx, b.Address()))
	assert.False(t, auth.HasAddress(ctx, c.Address()))
}

func TestMainSigner(t *testing.T) {
	ctx := context.Background()

	a := covault.NewCondition("sigs", "ed25519", []byte("alice"))
	b := covault.NewCondition("sigs", "ed25519", []byte("bob"))

	assert.Nil(t, MainSigner(ctx, namedAuth{}))
	assert.Equal(t, a, MainSigner(ctx, namedAuth{conds: []covault.Condition{a, b}}))
}

func TestGetAddresses(t *testing.T) {
	ctx := context.Background()

	a := covault.NewCondition("sigs", "ed25519", []byte("alice"))
	b := covault.NewCondition("sigs", "ed25519", []byte("bob"))

	addrs := GetAddresses(ctx, namedAuth{conds: []covault.Condition{a, b}})
	assert.Equal(t, []covault.Address{a.Address(), b.Address()}, addrs)
}

func TestHasConditions(t *testing.T) {
	ctx := context.Background()

	a := covault.NewCondition("sigs", "ed25519", []byte("alice"))
	b := covault.NewCondition("sigs", "ed25519", []byte("bob"))
	c := covault.NewCondition("sigs", "ed25519", []byte("carl"))

	auth := namedAuth{conds: []covault.Condition{a, b}}

	assert.True(t, HasAllConditions(ctx, auth, []covault.Condition{a}))
	assert.True(t, HasAllConditions(ctx, auth, []covault.Condition{a, b}))
	assert.False(t, HasAllConditions(ctx, auth, []covault.Condition{a, b, c}))

	// 2 of 3 threshold
	assert.True(t, HasNConditions(ctx, auth, []covault.Condition{a, b, c}, 2))
	assert.False(t, HasNConditions(ctx, auth, []covault.Condition{a, c}, 2))

	// an empty requirement is always fulfilled
	assert.True(t, HasAllConditions(ctx, auth, nil))
}

func TestHasAddresses(t *testing.T) {
	ctx := context.Background()

	a := covault.NewCondition("sigs", "ed25519", []byte("alice"))
	b := covault.NewCondition("sigs", "ed25519", []byte("bob"))
	c := covault.NewCondition("sigs", "ed25519", []byte("carl"))

	auth := namedAuth{conds: []covault.Condition{a, b}}

	assert.True(t, HasAllAddresses(ctx, auth, []covault.Address{a.Address(), b.Address()}))
	assert.False(t, HasAllAddresses(ctx, auth, []covault.Address{a.Address(), c.Address()}))
	assert.True(t, HasNAddresses(ctx, auth, []covault.Address{a.Address(), b.Address(), c.Address()}, 2))
	assert.False(t, HasNAddresses(ctx, auth, []covault.Address{c.Address()}, 1))
}
