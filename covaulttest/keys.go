package covaulttest

import (
	"github.com/covault/covault"
	"github.com/covault/covault/crypto"
)

// NewKey returns a new random private key.
func NewKey() crypto.Signer {
	return crypto.GenPrivKeyEd25519()
}

// NewCondition returns the condition of a new random key.
func NewCondition() covault.Condition {
	return NewKey().PublicKey().Condition()
}
