package vault

import (
	"github.com/covault/covault"
	"github.com/covault/covault/coin"
	"github.com/covault/covault/errors"
	"github.com/covault/covault/orm"
	"github.com/covault/covault/x"
)

// Controller is the part of the funds ledger the vault engine needs to
// hold and release value.
type Controller interface {
	MoveCoins(store covault.KVStore, src covault.Address, dest covault.Address, amount coin.Coin) error
	IssueCoins(store covault.KVStore, dest covault.Address, amount coin.Coin) error
}

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r covault.Registry, auth x.Authenticator, control Controller) {
	vaults := NewVaultBucket()
	txs := NewTransactionBucket()

	r.Handle(pathCreateVaultMsg, CreateVaultHandler{auth: auth, bucket: vaults})
	r.Handle(pathInitiateTransactionMsg, InitiateTransactionHandler{auth: auth, bucket: vaults, txs: txs, control: control})
	r.Handle(pathApproveTransactionMsg, ApproveTransactionHandler{auth: auth, bucket: vaults, txs: txs, control: control})
	r.Handle(pathTransferOwnershipMsg, TransferOwnershipHandler{auth: auth, bucket: vaults})
	r.Handle(pathClaimOwnershipMsg, ClaimOwnershipHandler{auth: auth, bucket: vaults})
	r.Handle(pathAddSignerMsg, AddSignerHandler{auth: auth, bucket: vaults})
	r.Handle(pathRemoveSignerMsg, RemoveSignerHandler{auth: auth, bucket: vaults})
}

// RegisterQuery will register vaults as "/vaults" and the transaction
// ledger as "/vaulttxs"
func RegisterQuery(qr covault.QueryRouter) {
	NewVaultBucket().Register("vaults", qr)
	NewTransactionBucket().Register("vaulttxs", qr)
}

//--- CreateVaultHandler

// CreateVaultHandler creates a new vault owned by the main signer.
type CreateVaultHandler struct {
	auth   x.Authenticator
	bucket VaultBucket
}

var _ covault.Handler = CreateVaultHandler{}

// Check verifies the message and charges the creation cost
func (h CreateVaultHandler) Check(ctx covault.Context, db covault.KVStore, tx covault.Tx) (covault.CheckResult, error) {
	var res covault.CheckResult
	if _, err := h.validate(ctx, tx); err != nil {
		return res, err
	}
	res.GasAllocated = creationCost
	return res, nil
}

// Deliver persists the new vault, the response data is the vault id
func (h CreateVaultHandler) Deliver(ctx covault.Context, db covault.KVStore, tx covault.Tx) (covault.DeliverResult, error) {
	var res covault.DeliverResult
	msg, err := h.validate(ctx, tx)
	if err != nil {
		return res, err
	}

	main := x.MainSigner(ctx, h.auth)
	if main == nil {
		return res, errors.Wrap(errors.ErrUnauthorized, "no signer")
	}

	obj := h.bucket.Build(db, &Vault{
		Owner:   main.Address(),
		Signers: msg.Signers,
		Quorum:  msg.Quorum,
	})
	if err := h.bucket.Save(db, obj); err != nil {
		return res, err
	}

	res.Data = obj.Key()
	return res, nil
}

func (h CreateVaultHandler) validate(ctx covault.Context, tx covault.Tx) (*CreateVaultMsg, error) {
	rmsg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	msg, ok := rmsg.(*CreateVaultMsg)
	if !ok {
		return nil, errors.Wrapf(errors.ErrType, "%T", rmsg)
	}
	if err := msg.Validate(); err != nil {
		return nil, err
	}
	return msg, nil
}

//--- InitiateTransactionHandler

// InitiateTransactionHandler records a new pending transfer with the
// initiator's approval counted. If the quorum is one, this already
// executes the transfer.
type InitiateTransactionHandler struct {
	auth    x.Authenticator
	bucket  VaultBucket
	txs     TransactionBucket
	control Controller
}

var _ covault.Handler = InitiateTransactionHandler{}

// Check verifies the message and charges the initiation cost
func (h InitiateTransactionHandler) Check(ctx covault.Context, db covault.KVStore, tx covault.Tx) (covault.CheckResult, error) {
	var res covault.CheckResult
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return res, err
	}
	res.GasAllocated = initiateCost
	return res, nil
}

// Deliver appends the transaction to the ledger, the response data is
// the transaction id
func (h InitiateTransactionHandler) Deliver(ctx covault.Context, db covault.KVStore, tx covault.Tx) (covault.DeliverResult, error) {
	var res covault.DeliverResult
	msg, vault, signer, err := h.validate(ctx, db, tx)
	if err != nil {
		return res, err
	}

	trans := &Transaction{
		VaultID:     msg.VaultID,
		Amount:      msg.Amount,
		Destination: msg.Destination,
		Approvals:   []covault.Address{signer},
		State:       StatePending,
	}
	obj := h.txs.Build(db, trans)

	if int32(len(trans.Approvals)) >= vault.Quorum {
		err = executeTransaction(db, h.txs, obj.Key(), trans, h.control)
	} else {
		err = h.txs.Save(db, obj)
	}
	if err != nil {
		return res, err
	}

	res.Data = obj.Key()
	return res, nil
}

func (h InitiateTransactionHandler) validate(ctx covault.Context, db covault.KVStore, tx covault.Tx) (*InitiateTransactionMsg, *Vault, covault.Address, error) {
	rmsg, err := tx.GetMsg()
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "cannot load msg")
	}
	msg, ok := rmsg.(*InitiateTransactionMsg)
	if !ok {
		return nil, nil, nil, errors.Wrapf(errors.ErrType, "%T", rmsg)
	}
	if err := msg.Validate(); err != nil {
		return nil, nil, nil, err
	}

	vault, err := h.bucket.GetVault(db, msg.VaultID)
	if err != nil {
		return nil, nil, nil, err
	}
	if vault == nil {
		return nil, nil, nil, errors.Wrapf(errors.ErrNotFound, "vault %d", orm.DecodeSequence(msg.VaultID))
	}

	signer := authorizedSigner(ctx, h.auth, vault)
	if signer == nil {
		return nil, nil, nil, errors.Wrap(ErrNotSigner, "initiate")
	}
	return msg, vault, signer, nil
}

//--- ApproveTransactionHandler

// ApproveTransactionHandler adds one more approval to a pending
// transaction and executes it once the quorum is reached.
type ApproveTransactionHandler struct {
	auth    x.Authenticator
	bucket  VaultBucket
	txs     TransactionBucket
	control Controller
}

var _ covault.Handler = ApproveTransactionHandler{}

// Check verifies the message and charges the approval cost
func (h ApproveTransactionHandler) Check(ctx covault.Context, db covault.KVStore, tx covault.Tx) (covault.CheckResult, error) {
	var res covault.CheckResult
	if _, _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return res, err
	}
	res.GasAllocated = approveCost
	return res, nil
}

// Deliver adds the approval. Reaching the quorum flips the transaction
// to executed, persists it and only then moves the coins. A failed
// move aborts the delivery so the surrounding savepoint discards every
// write, including the state flip.
func (h ApproveTransactionHandler) Deliver(ctx covault.Context, db covault.KVStore, tx covault.Tx) (covault.DeliverResult, error) {
	var res covault.DeliverResult
	msg, trans, vault, signer, err := h.validate(ctx, db, tx)
	if err != nil {
		return res, err
	}

	trans.Approvals = append(trans.Approvals, signer)

	if int32(len(trans.Approvals)) >= vault.Quorum {
		err = executeTransaction(db, h.txs, msg.TransactionID, trans, h.control)
	} else {
		err = h.txs.Save(db, orm.NewSimpleObj(msg.TransactionID, trans))
	}
	if err != nil {
		return res, err
	}

	res.Data = msg.TransactionID
	return res, nil
}

func (h ApproveTransactionHandler) validate(ctx covault.Context, db covault.KVStore, tx covault.Tx) (*ApproveTransactionMsg, *Transaction, *Vault, covault.Address, error) {
	rmsg, err := tx.GetMsg()
	if err != nil {
		return nil, nil, nil, nil, errors.Wrap(err, "cannot load msg")
	}
	msg, ok := rmsg.(*ApproveTransactionMsg)
	if !ok {
		return nil, nil, nil, nil, errors.Wrapf(errors.ErrType, "%T", rmsg)
	}
	if err := msg.Validate(); err != nil {
		return nil, nil, nil, nil, err
	}

	trans, err := h.txs.GetTransaction(db, msg.TransactionID)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	if trans == nil {
		return nil, nil, nil, nil, errors.Wrapf(errors.ErrNotFound, "transaction %d", orm.DecodeSequence(msg.TransactionID))
	}
	if trans.State == StateExecuted {
		return nil, nil, nil, nil, errors.Wrapf(ErrAlreadyExecuted, "transaction %d", orm.DecodeSequence(msg.TransactionID))
	}

	vault, err := h.bucket.GetVault(db, trans.VaultID)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	if vault == nil {
		return nil, nil, nil, nil, errors.Wrapf(errors.ErrNotFound, "vault %d", orm.DecodeSequence(trans.VaultID))
	}

	signer := authorizedSigner(ctx, h.auth, vault)
	if signer == nil {
		return nil, nil, nil, nil, errors.Wrap(ErrNotSigner, "approve")
	}
	if trans.HasApproved(signer) {
		return nil, nil, nil, nil, errors.Wrapf(ErrAlreadyApproved, "%s", signer)
	}
	return msg, trans, vault, signer, nil
}

// executeTransaction marks the transaction executed and persists it
// before any value moves. Zero amounts execute without a transfer.
func executeTransaction(db covault.KVStore, txs TransactionBucket, id []byte, trans *Transaction, control Controller) error {
	trans.State = StateExecuted
	if err := txs.Save(db, orm.NewSimpleObj(id, trans)); err != nil {
		return err
	}
	if trans.Amount.IsZero() {
		return nil
	}
	src := VaultCondition(trans.VaultID).Address()
	return control.MoveCoins(db, src, trans.Destination, trans.Amount)
}

// authorizedSigner returns the first registry entry the transaction
// author controls, nil if none.
func authorizedSigner(ctx covault.Context, auth x.Authenticator, vault *Vault) covault.Address {
	for _, s := range vault.Signers {
		if auth.HasAddress(ctx, s) {
			return s
		}
	}
	return nil
}

//--- TransferOwnershipHandler

// TransferOwnershipHandler nominates a new owner candidate.
type TransferOwnershipHandler struct {
	auth   x.Authenticator
	bucket VaultBucket
}

var _ covault.Handler = TransferOwnershipHandler{}

// Check verifies the message and charges the update cost
func (h TransferOwnershipHandler) Check(ctx covault.Context, db covault.KVStore, tx covault.Tx) (covault.CheckResult, error) {
	var res covault.CheckResult
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return res, err
	}
	res.GasAllocated = updateCost
	return res, nil
}

// Deliver records the candidate, superseding any previous nomination
func (h TransferOwnershipHandler) Deliver(ctx covault.Context, db covault.KVStore, tx covault.Tx) (covault.DeliverResult, error) {
	var res covault.DeliverResult
	msg, vault, err := h.validate(ctx, db, tx)
	if err != nil {
		return res, err
	}

	vault.PendingOwner = msg.Candidate
	if err := h.bucket.Save(db, orm.NewSimpleObj(msg.VaultID, vault)); err != nil {
		return res, err
	}
	res.Data = msg.VaultID
	return res, nil
}

func (h TransferOwnershipHandler) validate(ctx covault.Context, db covault.KVStore, tx covault.Tx) (*TransferOwnershipMsg, *Vault, error) {
	rmsg, err := tx.GetMsg()
	if err != nil {
		return nil, nil, errors.Wrap(err, "cannot load msg")
	}
	msg, ok := rmsg.(*TransferOwnershipMsg)
	if !ok {
		return nil, nil, errors.Wrapf(errors.ErrType, "%T", rmsg)
	}
	if err := msg.Validate(); err != nil {
		return nil, nil, err
	}

	vault, err := loadVault(db, h.bucket, msg.VaultID)
	if err != nil {
		return nil, nil, err
	}
	if !h.auth.HasAddress(ctx, vault.Owner) {
		return nil, nil, errors.Wrap(ErrNotOwner, "transfer ownership")
	}
	return msg, vault, nil
}

//--- ClaimOwnershipHandler

// ClaimOwnershipHandler completes the two-phase ownership handover.
type ClaimOwnershipHandler struct {
	auth   x.Authenticator
	bucket VaultBucket
}

var _ covault.Handler = ClaimOwnershipHandler{}

// Check verifies the message and charges the update cost
func (h ClaimOwnershipHandler) Check(ctx covault.Context, db covault.KVStore, tx covault.Tx) (covault.CheckResult, error) {
	var res covault.CheckResult
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return res, err
	}
	res.GasAllocated = updateCost
	return res, nil
}

// Deliver promotes the candidate and clears the nomination in one step
func (h ClaimOwnershipHandler) Deliver(ctx covault.Context, db covault.KVStore, tx covault.Tx) (covault.DeliverResult, error) {
	var res covault.DeliverResult
	msg, vault, err := h.validate(ctx, db, tx)
	if err != nil {
		return res, err
	}

	vault.Owner = vault.PendingOwner
	vault.PendingOwner = nil
	if err := h.bucket.Save(db, orm.NewSimpleObj(msg.VaultID, vault)); err != nil {
		return res, err
	}
	res.Data = msg.VaultID
	return res, nil
}

func (h ClaimOwnershipHandler) validate(ctx covault.Context, db covault.KVStore, tx covault.Tx) (*ClaimOwnershipMsg, *Vault, error) {
	rmsg, err := tx.GetMsg()
	if err != nil {
		return nil, nil, errors.Wrap(err, "cannot load msg")
	}
	msg, ok := rmsg.(*ClaimOwnershipMsg)
	if !ok {
		return nil, nil, errors.Wrapf(errors.ErrType, "%T", rmsg)
	}
	if err := msg.Validate(); err != nil {
		return nil, nil, err
	}

	vault, err := loadVault(db, h.bucket, msg.VaultID)
	if err != nil {
		return nil, nil, err
	}
	if len(vault.PendingOwner) == 0 {
		return nil, nil, errors.Wrap(ErrNotPendingOwner, "no handover in progress")
	}
	if !h.auth.HasAddress(ctx, vault.PendingOwner) {
		return nil, nil, errors.Wrap(ErrNotPendingOwner, "claim ownership")
	}
	return msg, vault, nil
}

//--- AddSignerHandler

// AddSignerHandler appends a signer to the registry.
type AddSignerHandler struct {
	auth   x.Authenticator
	bucket VaultBucket
}

var _ covault.Handler = AddSignerHandler{}

// Check verifies the message and charges the update cost
func (h AddSignerHandler) Check(ctx covault.Context, db covault.KVStore, tx covault.Tx) (covault.CheckResult, error) {
	var res covault.CheckResult
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return res, err
	}
	res.GasAllocated = updateCost
	return res, nil
}

// Deliver appends the signer to the end of the registry
func (h AddSignerHandler) Deliver(ctx covault.Context, db covault.KVStore, tx covault.Tx) (covault.DeliverResult, error) {
	var res covault.DeliverResult
	msg, vault, err := h.validate(ctx, db, tx)
	if err != nil {
		return res, err
	}

	vault.Signers = append(vault.Signers, msg.Signer)
	if err := h.bucket.Save(db, orm.NewSimpleObj(msg.VaultID, vault)); err != nil {
		return res, err
	}
	res.Data = msg.VaultID
	return res, nil
}

func (h AddSignerHandler) validate(ctx covault.Context, db covault.KVStore, tx covault.Tx) (*AddSignerMsg, *Vault, error) {
	rmsg, err := tx.GetMsg()
	if err != nil {
		return nil, nil, errors.Wrap(err, "cannot load msg")
	}
	msg, ok := rmsg.(*AddSignerMsg)
	if !ok {
		return nil, nil, errors.Wrapf(errors.ErrType, "%T", rmsg)
	}
	if err := msg.Validate(); err != nil {
		return nil, nil, err
	}

	vault, err := loadVault(db, h.bucket, msg.VaultID)
	if err != nil {
		return nil, nil, err
	}
	if !h.auth.HasAddress(ctx, vault.Owner) {
		return nil, nil, errors.Wrap(ErrNotOwner, "add signer")
	}
	if vault.IsSigner(msg.Signer) {
		return nil, nil, errors.Wrapf(ErrDuplicateSigner, "%s", msg.Signer)
	}
	return msg, vault, nil
}

//--- RemoveSignerHandler

// RemoveSignerHandler removes the signer at a given registry index.
type RemoveSignerHandler struct {
	auth   x.Authenticator
	bucket VaultBucket
}

var _ covault.Handler = RemoveSignerHandler{}

// Check verifies the message and charges the update cost
func (h RemoveSignerHandler) Check(ctx covault.Context, db covault.KVStore, tx covault.Tx) (covault.CheckResult, error) {
	var res covault.CheckResult
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return res, err
	}
	res.GasAllocated = updateCost
	return res, nil
}

// Deliver removes the signer, shifting subsequent entries down.
// Approvals already recorded by the removed signer are kept.
func (h RemoveSignerHandler) Deliver(ctx covault.Context, db covault.KVStore, tx covault.Tx) (covault.DeliverResult, error) {
	var res covault.DeliverResult
	msg, vault, err := h.validate(ctx, db, tx)
	if err != nil {
		return res, err
	}

	i := int(msg.Index)
	vault.Signers = append(vault.Signers[:i], vault.Signers[i+1:]...)
	if err := h.bucket.Save(db, orm.NewSimpleObj(msg.VaultID, vault)); err != nil {
		return res, err
	}
	res.Data = msg.VaultID
	return res, nil
}

func (h RemoveSignerHandler) validate(ctx covault.Context, db covault.KVStore, tx covault.Tx) (*RemoveSignerMsg, *Vault, error) {
	rmsg, err := tx.GetMsg()
	if err != nil {
		return nil, nil, errors.Wrap(err, "cannot load msg")
	}
	msg, ok := rmsg.(*RemoveSignerMsg)
	if !ok {
		return nil, nil, errors.Wrapf(errors.ErrType, "%T", rmsg)
	}
	if err := msg.Validate(); err != nil {
		return nil, nil, err
	}

	vault, err := loadVault(db, h.bucket, msg.VaultID)
	if err != nil {
		return nil, nil, err
	}
	if !h.auth.HasAddress(ctx, vault.Owner) {
		return nil, nil, errors.Wrap(ErrNotOwner, "remove signer")
	}
	if int(msg.Index) >= len(vault.Signers) {
		return nil, nil, errors.Wrapf(ErrOutOfRange, "index %d of %d signers", msg.Index, len(vault.Signers))
	}
	if len(vault.Signers)-1 < int(vault.Quorum) {
		return nil, nil, errors.Wrapf(ErrBelowQuorum, "%d signers left, quorum %d", len(vault.Signers)-1, vault.Quorum)
	}
	return msg, vault, nil
}

// loadVault fetches a vault or fails with not found.
func loadVault(db covault.ReadOnlyKVStore, bucket VaultBucket, id []byte) (*Vault, error) {
	vault, err := bucket.GetVault(db, id)
	if err != nil {
		return nil, err
	}
	if vault == nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "vault %d", orm.DecodeSequence(id))
	}
	return vault, nil
}
