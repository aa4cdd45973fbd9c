package vault

import (
	"github.com/covault/covault"
	"github.com/covault/covault/coin"
)

const optKey = "vault"

// GenesisVault is used to parse the vault setup from the genesis file.
type GenesisVault struct {
	Owner   covault.Address   `json:"owner"`
	Signers []covault.Address `json:"signers"`
	Quorum  int32             `json:"quorum"`
	// Balance is issued to the vault account on initialization.
	Balance coin.Coins `json:"balance,omitempty"`
}

// Initializer fulfils the covault.Initializer interface to load data
// from the genesis file. Minter is used to issue the initial balances.
type Initializer struct {
	Minter Controller
}

var _ covault.Initializer = Initializer{}

// FromGenesis will parse initial vaults from genesis and save them to
// the database, issuing their starting balances.
func (i Initializer) FromGenesis(opts covault.Options, kv covault.KVStore) error {
	vaults := []GenesisVault{}
	if err := opts.ReadOptions(optKey, &vaults); err != nil {
		return err
	}
	bucket := NewVaultBucket()
	for _, gv := range vaults {
		v := &Vault{
			Owner:   gv.Owner,
			Signers: gv.Signers,
			Quorum:  gv.Quorum,
		}
		obj := bucket.Build(kv, v)
		if err := bucket.Save(kv, obj); err != nil {
			return err
		}
		if gv.Balance.IsEmpty() {
			continue
		}
		addr := VaultCondition(obj.Key()).Address()
		for _, c := range gv.Balance {
			if err := i.Minter.IssueCoins(kv, addr, *c); err != nil {
				return err
			}
		}
	}
	return nil
}
