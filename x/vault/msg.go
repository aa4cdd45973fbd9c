package vault

import (
	"github.com/covault/covault"
	"github.com/covault/covault/coin"
	"github.com/covault/covault/errors"
	"github.com/covault/covault/orm"
)

const (
	pathCreateVaultMsg         = "vault/create"
	pathInitiateTransactionMsg = "vault/initiate"
	pathApproveTransactionMsg  = "vault/approve"
	pathTransferOwnershipMsg   = "vault/transfer_owner"
	pathClaimOwnershipMsg      = "vault/claim_owner"
	pathAddSignerMsg           = "vault/add_signer"
	pathRemoveSignerMsg        = "vault/remove_signer"

	creationCost int64 = 300
	initiateCost int64 = 200
	approveCost  int64 = 150
	updateCost   int64 = 100
)

var (
	_ covault.Msg = (*CreateVaultMsg)(nil)
	_ covault.Msg = (*InitiateTransactionMsg)(nil)
	_ covault.Msg = (*ApproveTransactionMsg)(nil)
	_ covault.Msg = (*TransferOwnershipMsg)(nil)
	_ covault.Msg = (*ClaimOwnershipMsg)(nil)
	_ covault.Msg = (*AddSignerMsg)(nil)
	_ covault.Msg = (*RemoveSignerMsg)(nil)
)

// CreateVaultMsg creates a new vault. The main signer of the
// transaction is recorded as the vault owner.
type CreateVaultMsg struct {
	Signers []covault.Address `json:"signers"`
	Quorum  int32             `json:"quorum"`
}

// Path fulfills covault.Msg interface to allow routing
func (CreateVaultMsg) Path() string {
	return pathCreateVaultMsg
}

// Validate enforces quorum and signer constraints
func (m *CreateVaultMsg) Validate() error {
	if err := validateSigners(m.Signers); err != nil {
		return errors.Wrap(err, "signers")
	}
	if m.Quorum <= 0 || int(m.Quorum) > len(m.Signers) {
		return errors.Wrapf(errors.ErrMsg, "quorum %d outside of 1..%d", m.Quorum, len(m.Signers))
	}
	return nil
}

// InitiateTransactionMsg records a new pending transfer out of the
// vault. The initiator's approval is counted immediately.
type InitiateTransactionMsg struct {
	VaultID     []byte          `json:"vault_id"`
	Amount      coin.Coin       `json:"amount"`
	Destination covault.Address `json:"destination"`
}

// Path fulfills covault.Msg interface to allow routing
func (InitiateTransactionMsg) Path() string {
	return pathInitiateTransactionMsg
}

// Validate enforces amount and destination constraints
func (m *InitiateTransactionMsg) Validate() error {
	if err := orm.ValidateSequence(m.VaultID); err != nil {
		return errors.Wrap(err, "vault id")
	}
	if err := m.Amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	if !m.Amount.IsNonNegative() {
		return errors.Wrap(errors.ErrAmount, "negative amount")
	}
	if err := m.Destination.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	return nil
}

// ApproveTransactionMsg adds the approval of one more signer to a
// pending transaction. Reaching the quorum executes the transfer.
type ApproveTransactionMsg struct {
	TransactionID []byte `json:"transaction_id"`
}

// Path fulfills covault.Msg interface to allow routing
func (ApproveTransactionMsg) Path() string {
	return pathApproveTransactionMsg
}

// Validate enforces the transaction id shape
func (m *ApproveTransactionMsg) Validate() error {
	if err := orm.ValidateSequence(m.TransactionID); err != nil {
		return errors.Wrap(err, "transaction id")
	}
	return nil
}

// TransferOwnershipMsg nominates a candidate for the vault ownership.
// A previous nomination, if any, is superseded.
type TransferOwnershipMsg struct {
	VaultID   []byte          `json:"vault_id"`
	Candidate covault.Address `json:"candidate"`
}

// Path fulfills covault.Msg interface to allow routing
func (TransferOwnershipMsg) Path() string {
	return pathTransferOwnershipMsg
}

// Validate enforces a valid candidate address
func (m *TransferOwnershipMsg) Validate() error {
	if err := orm.ValidateSequence(m.VaultID); err != nil {
		return errors.Wrap(err, "vault id")
	}
	if err := m.Candidate.Validate(); err != nil {
		return errors.Wrap(err, "candidate")
	}
	return nil
}

// ClaimOwnershipMsg completes the ownership handshake. Only the
// nominated candidate may claim.
type ClaimOwnershipMsg struct {
	VaultID []byte `json:"vault_id"`
}

// Path fulfills covault.Msg interface to allow routing
func (ClaimOwnershipMsg) Path() string {
	return pathClaimOwnershipMsg
}

// Validate enforces the vault id shape
func (m *ClaimOwnershipMsg) Validate() error {
	if err := orm.ValidateSequence(m.VaultID); err != nil {
		return errors.Wrap(err, "vault id")
	}
	return nil
}

// AddSignerMsg appends a signer to the vault registry.
type AddSignerMsg struct {
	VaultID []byte          `json:"vault_id"`
	Signer  covault.Address `json:"signer"`
}

// Path fulfills covault.Msg interface to allow routing
func (AddSignerMsg) Path() string {
	return pathAddSignerMsg
}

// Validate enforces a valid signer address
func (m *AddSignerMsg) Validate() error {
	if err := orm.ValidateSequence(m.VaultID); err != nil {
		return errors.Wrap(err, "vault id")
	}
	if err := m.Signer.Validate(); err != nil {
		return errors.Wrap(err, "signer")
	}
	return nil
}

// RemoveSignerMsg removes the signer at the given zero-based index of
// the registry. Subsequent signers shift one position down.
type RemoveSignerMsg struct {
	VaultID []byte `json:"vault_id"`
	Index   int32  `json:"index"`
}

// Path fulfills covault.Msg interface to allow routing
func (RemoveSignerMsg) Path() string {
	return pathRemoveSignerMsg
}

// Validate enforces a non-negative index. The upper bound is only
// known once the vault is loaded and is checked by the handler.
func (m *RemoveSignerMsg) Validate() error {
	if err := orm.ValidateSequence(m.VaultID); err != nil {
		return errors.Wrap(err, "vault id")
	}
	if m.Index < 0 {
		return errors.Wrapf(ErrOutOfRange, "index %d", m.Index)
	}
	return nil
}
