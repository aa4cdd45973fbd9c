package vault

import (
	"testing"

	"github.com/covault/covault"
	"github.com/covault/covault/coin"
	"github.com/covault/covault/covaulttest"
	"github.com/covault/covault/covaulttest/assert"
	"github.com/covault/covault/errors"
	"github.com/covault/covault/orm"
)

func TestVaultValidate(t *testing.T) {
	owner := covaulttest.NewCondition().Address()
	a := covaulttest.NewCondition().Address()
	b := covaulttest.NewCondition().Address()

	cases := map[string]struct {
		vault   Vault
		wantErr *errors.Error
	}{
		"valid minimal": {
			vault: Vault{Owner: owner, Signers: []covault.Address{a}, Quorum: 1},
		},
		"valid with pending owner": {
			vault: Vault{Owner: owner, PendingOwner: b, Signers: []covault.Address{a, b}, Quorum: 2},
		},
		"missing owner": {
			vault:   Vault{Signers: []covault.Address{a}, Quorum: 1},
			wantErr: errors.ErrEmpty,
		},
		"no signers": {
			vault:   Vault{Owner: owner, Quorum: 1},
			wantErr: errors.ErrEmpty,
		},
		"duplicate signers": {
			vault:   Vault{Owner: owner, Signers: []covault.Address{a, a}, Quorum: 1},
			wantErr: ErrDuplicateSigner,
		},
		"quorum zero": {
			vault:   Vault{Owner: owner, Signers: []covault.Address{a}, Quorum: 0},
			wantErr: errors.ErrModel,
		},
		"quorum above registry": {
			vault:   Vault{Owner: owner, Signers: []covault.Address{a, b}, Quorum: 3},
			wantErr: errors.ErrModel,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			err := tc.vault.Validate()
			if tc.wantErr == nil {
				assert.Nil(t, err)
			} else {
				assert.IsErr(t, tc.wantErr, err)
			}
		})
	}
}

func TestVaultCopy(t *testing.T) {
	owner := covaulttest.NewCondition().Address()
	a := covaulttest.NewCondition().Address()

	orig := &Vault{Owner: owner, Signers: []covault.Address{a}, Quorum: 1}
	cpy := orig.Copy().(*Vault)
	assert.Equal(t, orig, cpy)

	// mutating the copy must not touch the original
	cpy.Signers[0] = covaulttest.NewCondition().Address()
	cpy.Quorum = 9
	assert.Equal(t, a, orig.Signers[0])
	assert.Equal(t, int32(1), orig.Quorum)
}

func TestTransactionValidate(t *testing.T) {
	a := covaulttest.NewCondition().Address()
	dest := covaulttest.NewCondition().Address()
	vaultID := orm.EncodeSequence(1)

	cases := map[string]struct {
		trans   Transaction
		wantErr *errors.Error
	}{
		"valid pending": {
			trans: Transaction{
				VaultID:     vaultID,
				Amount:      coin.NewCoin(1, 0, "IOV"),
				Destination: dest,
				Approvals:   []covault.Address{a},
				State:       StatePending,
			},
		},
		"valid executed with zero amount": {
			trans: Transaction{
				VaultID:     vaultID,
				Amount:      coin.NewCoin(0, 0, "IOV"),
				Destination: dest,
				Approvals:   []covault.Address{a},
				State:       StateExecuted,
			},
		},
		"bad vault id": {
			trans: Transaction{
				VaultID:     []byte{1, 2},
				Amount:      coin.NewCoin(1, 0, "IOV"),
				Destination: dest,
				Approvals:   []covault.Address{a},
				State:       StatePending,
			},
			wantErr: errors.ErrInput,
		},
		"negative amount": {
			trans: Transaction{
				VaultID:     vaultID,
				Amount:      coin.NewCoin(-1, 0, "IOV"),
				Destination: dest,
				Approvals:   []covault.Address{a},
				State:       StatePending,
			},
			wantErr: errors.ErrAmount,
		},
		"no approvals": {
			trans: Transaction{
				VaultID:     vaultID,
				Amount:      coin.NewCoin(1, 0, "IOV"),
				Destination: dest,
				State:       StatePending,
			},
			wantErr: errors.ErrEmpty,
		},
		"duplicate approvals": {
			trans: Transaction{
				VaultID:     vaultID,
				Amount:      coin.NewCoin(1, 0, "IOV"),
				Destination: dest,
				Approvals:   []covault.Address{a, a},
				State:       StatePending,
			},
			wantErr: ErrAlreadyApproved,
		},
		"unknown state": {
			trans: Transaction{
				VaultID:     vaultID,
				Amount:      coin.NewCoin(1, 0, "IOV"),
				Destination: dest,
				Approvals:   []covault.Address{a},
				State:       0,
			},
			wantErr: errors.ErrState,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			err := tc.trans.Validate()
			if tc.wantErr == nil {
				assert.Nil(t, err)
			} else {
				assert.IsErr(t, tc.wantErr, err)
			}
		})
	}
}

func TestTransactionRoundTrip(t *testing.T) {
	a := covaulttest.NewCondition().Address()
	dest := covaulttest.NewCondition().Address()

	orig := &Transaction{
		VaultID:     orm.EncodeSequence(3),
		Amount:      coin.NewCoin(7, 500, "IOV"),
		Destination: dest,
		Approvals:   []covault.Address{a},
		State:       StatePending,
	}
	raw, err := orig.Marshal()
	assert.Nil(t, err)

	var loaded Transaction
	assert.Nil(t, loaded.Unmarshal(raw))
	assert.Equal(t, orig, &loaded)
}

func TestVaultCondition(t *testing.T) {
	one := VaultCondition(orm.EncodeSequence(1))
	two := VaultCondition(orm.EncodeSequence(2))
	assert.Nil(t, one.Validate())
	assert.Equal(t, false, one.Address().Equals(two.Address()))

	// ids must be sequence values
	assert.Panics(t, func() {
		VaultCondition([]byte("short"))
	})
}
