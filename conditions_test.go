package covault

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCondition(t *testing.T) {
	cond := NewCondition("sigs", "ed25519", []byte{1, 2, 3})
	assert.Equal(t, Condition("sigs/ed25519/\x01\x02\x03"), cond)

	ext, typ, data, err := cond.Parse()
	require.NoError(t, err)
	assert.Equal(t, "sigs", ext)
	assert.Equal(t, "ed25519", typ)
	assert.Equal(t, []byte{1, 2, 3}, data)
}

func TestConditionAddress(t *testing.T) {
	a := NewCondition("vault", "seq", []byte{0, 0, 0, 0, 0, 0, 0, 1})
	b := NewCondition("vault", "seq", []byte{0, 0, 0, 0, 0, 0, 0, 2})

	assert.Len(t, []byte(a.Address()), AddressLength)
	assert.NoError(t, a.Address().Validate())
	// distinct data hashes to distinct addresses
	assert.False(t, a.Address().Equals(b.Address()))
	// derivation is deterministic
	assert.True(t, a.Address().Equals(NewCondition("vault", "seq", []byte{0, 0, 0, 0, 0, 0, 0, 1}).Address()))
}

func TestConditionValidate(t *testing.T) {
	assert.NoError(t, NewCondition("sigs", "ed25519", []byte("data")).Validate())
	assert.Error(t, Condition("").Validate())
	assert.Error(t, Condition("fooo").Validate())
}

func TestAddressValidate(t *testing.T) {
	assert.Error(t, Address{}.Validate())
	assert.Error(t, Address{1, 2, 3}.Validate())
	assert.NoError(t, NewAddress([]byte("foo")).Validate())
}

func TestAddressClone(t *testing.T) {
	orig := NewAddress([]byte("foo"))
	cpy := orig.Clone()
	require.True(t, orig.Equals(cpy))

	cpy[0]++
	assert.False(t, orig.Equals(cpy))

	var nilAddr Address
	assert.Nil(t, nilAddr.Clone())
}

func TestAddressJSON(t *testing.T) {
	addr := NewAddress([]byte("whatever"))

	raw, err := json.Marshal(addr)
	require.NoError(t, err)

	var loaded Address
	require.NoError(t, json.Unmarshal(raw, &loaded))
	assert.True(t, addr.Equals(loaded))
}

func TestConditionJSON(t *testing.T) {
	cond := NewCondition("sigs", "ed25519", []byte("some-key"))

	raw, err := json.Marshal(cond)
	require.NoError(t, err)

	var loaded Condition
	require.NoError(t, json.Unmarshal(raw, &loaded))
	assert.True(t, cond.Equals(loaded))
}
