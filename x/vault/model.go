package vault

import (
	"github.com/covault/covault"
	"github.com/covault/covault/coin"
	"github.com/covault/covault/errors"
	"github.com/covault/covault/orm"
)

const (
	// BucketName is where vaults are stored
	BucketName = "vault"
	// TxBucketName is where pending and executed transactions are stored
	TxBucketName = "vaulttx"
	// SequenceName is the name of the id sequence of both buckets
	SequenceName = "id"
)

// State describes the lifecycle of a vault transaction.
// A transaction starts Pending and becomes Executed exactly once,
// there is no way back.
type State int32

const (
	StatePending  State = 1
	StateExecuted State = 2
)

// VaultCondition calculates the condition guarding the funds of the
// vault with this id.
func VaultCondition(id []byte) covault.Condition {
	if err := orm.ValidateSequence(id); err != nil {
		panic(err)
	}
	return covault.NewCondition("vault", "seq", id)
}

//--- Vault

// Vault is a collectively controlled account. The signers approve
// outgoing transfers, the owner maintains the registry.
type Vault struct {
	// Owner may add and remove signers and nominate a new owner.
	Owner covault.Address `json:"owner"`
	// PendingOwner is the candidate of the ownership handshake.
	// Empty unless a handover is in progress.
	PendingOwner covault.Address `json:"pending_owner,omitempty"`
	// Signers are the addresses that may initiate and approve
	// transactions. Ordered, duplicate-free.
	Signers []covault.Address `json:"signers"`
	// Quorum is the number of approvals needed to execute a
	// transaction. Always 0 < Quorum <= len(Signers).
	Quorum int32 `json:"quorum"`
}

var _ orm.CloneableData = (*Vault)(nil)

// Validate enforces quorum and signer registry constraints.
func (v *Vault) Validate() error {
	if err := v.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	if len(v.PendingOwner) != 0 {
		if err := v.PendingOwner.Validate(); err != nil {
			return errors.Wrap(err, "pending owner")
		}
	}
	if err := validateSigners(v.Signers); err != nil {
		return err
	}
	if v.Quorum <= 0 || int(v.Quorum) > len(v.Signers) {
		return errors.Wrapf(errors.ErrModel, "quorum %d outside of 1..%d", v.Quorum, len(v.Signers))
	}
	return nil
}

// Copy makes a deep copy of this vault
func (v *Vault) Copy() orm.CloneableData {
	signers := make([]covault.Address, len(v.Signers))
	copy(signers, v.Signers)
	return &Vault{
		Owner:        v.Owner.Clone(),
		PendingOwner: v.PendingOwner.Clone(),
		Signers:      signers,
		Quorum:       v.Quorum,
	}
}

// IsSigner returns true if this address is in the signer registry.
func (v *Vault) IsSigner(addr covault.Address) bool {
	for _, s := range v.Signers {
		if addr.Equals(s) {
			return true
		}
	}
	return false
}

func validateSigners(signers []covault.Address) error {
	if len(signers) == 0 {
		return errors.Wrap(errors.ErrEmpty, "signers")
	}
	seen := make(map[string]struct{}, len(signers))
	for _, s := range signers {
		if err := s.Validate(); err != nil {
			return errors.Wrap(err, "signer")
		}
		if _, ok := seen[string(s)]; ok {
			return errors.Wrapf(ErrDuplicateSigner, "%s", s)
		}
		seen[string(s)] = struct{}{}
	}
	return nil
}

//--- Transaction

// Transaction is a transfer out of a vault, waiting for enough
// approvals. Amount and Destination are fixed at creation.
type Transaction struct {
	// VaultID references the vault this transaction spends from.
	VaultID []byte `json:"vault_id"`
	// Amount to be moved to the destination. Non-negative, a zero
	// amount executes without moving coins.
	Amount coin.Coin `json:"amount"`
	// Destination receives the amount upon execution.
	Destination covault.Address `json:"destination"`
	// Approvals lists the signers that approved, in approval order.
	// The initiator is always the first entry.
	Approvals []covault.Address `json:"approvals"`
	// State is Pending until quorum is reached, then Executed.
	State State `json:"state"`
}

var _ orm.CloneableData = (*Transaction)(nil)

// Validate enforces the at-rest shape of a transaction.
func (t *Transaction) Validate() error {
	if err := orm.ValidateSequence(t.VaultID); err != nil {
		return errors.Wrap(err, "vault id")
	}
	if err := t.Amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	if !t.Amount.IsNonNegative() {
		return errors.Wrap(errors.ErrAmount, "negative amount")
	}
	if err := t.Destination.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	if len(t.Approvals) == 0 {
		return errors.Wrap(errors.ErrEmpty, "approvals")
	}
	seen := make(map[string]struct{}, len(t.Approvals))
	for _, a := range t.Approvals {
		if err := a.Validate(); err != nil {
			return errors.Wrap(err, "approval")
		}
		if _, ok := seen[string(a)]; ok {
			return errors.Wrapf(ErrAlreadyApproved, "%s", a)
		}
		seen[string(a)] = struct{}{}
	}
	if t.State != StatePending && t.State != StateExecuted {
		return errors.Wrapf(errors.ErrState, "state %d", t.State)
	}
	return nil
}

// Copy makes a deep copy of this transaction
func (t *Transaction) Copy() orm.CloneableData {
	approvals := make([]covault.Address, len(t.Approvals))
	copy(approvals, t.Approvals)
	return &Transaction{
		VaultID:     append([]byte(nil), t.VaultID...),
		Amount:      t.Amount,
		Destination: t.Destination.Clone(),
		Approvals:   approvals,
		State:       t.State,
	}
}

// HasApproved returns true if this address already approved.
func (t *Transaction) HasApproved(addr covault.Address) bool {
	for _, a := range t.Approvals {
		if addr.Equals(a) {
			return true
		}
	}
	return false
}

//--- VaultBucket

// VaultBucket is the persistent store of vaults, keyed by a
// monotonic 8-byte sequence id.
type VaultBucket struct {
	orm.Bucket
	idSeq orm.Sequence
}

// NewVaultBucket initializes a VaultBucket with default name
func NewVaultBucket() VaultBucket {
	bucket := orm.NewBucket(BucketName, orm.NewSimpleObj(nil, new(Vault)))
	return VaultBucket{
		Bucket: bucket,
		idSeq:  bucket.Sequence(SequenceName),
	}
}

// Build assigns an id to given vault instance and returns it as an orm
// object. It does not persist the object in the store.
func (b VaultBucket) Build(db covault.KVStore, v *Vault) orm.Object {
	key := b.idSeq.NextVal(db)
	return orm.NewSimpleObj(key, v)
}

// GetVault returns a vault with given id, nil if none there.
func (b VaultBucket) GetVault(db covault.ReadOnlyKVStore, id []byte) (*Vault, error) {
	obj, err := b.Get(db, id)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, nil
	}
	return AsVault(obj), nil
}

// AsVault extracts a *Vault value or panics on a wrong bucket content.
func AsVault(obj orm.Object) *Vault {
	if obj == nil || obj.Value() == nil {
		return nil
	}
	return obj.Value().(*Vault)
}

//--- TransactionBucket

// TransactionBucket is the append-only ledger of transactions. Keys
// are 8-byte big-endian sequence values, so iteration order is
// creation order and ids are never reused.
type TransactionBucket struct {
	orm.Bucket
	idSeq orm.Sequence
}

// NewTransactionBucket initializes a TransactionBucket with default name
func NewTransactionBucket() TransactionBucket {
	bucket := orm.NewBucket(TxBucketName, orm.NewSimpleObj(nil, new(Transaction)))
	return TransactionBucket{
		Bucket: bucket,
		idSeq:  bucket.Sequence(SequenceName),
	}
}

// Build assigns the next ledger id to given transaction and returns it
// as an orm object. It does not persist the object in the store.
func (b TransactionBucket) Build(db covault.KVStore, t *Transaction) orm.Object {
	key := b.idSeq.NextVal(db)
	return orm.NewSimpleObj(key, t)
}

// GetTransaction returns a transaction with given id, nil if none there.
func (b TransactionBucket) GetTransaction(db covault.ReadOnlyKVStore, id []byte) (*Transaction, error) {
	obj, err := b.Get(db, id)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, nil
	}
	return AsTransaction(obj), nil
}

// ListTransactions returns the transactions of the given vault in
// creation order. A nil vaultID returns the whole ledger.
func (b TransactionBucket) ListTransactions(db covault.ReadOnlyKVStore, vaultID []byte) ([]*Transaction, error) {
	models, err := b.Query(db, covault.PrefixQueryMod, nil)
	if err != nil {
		return nil, err
	}
	prefix := len(b.DBKey(nil))
	var res []*Transaction
	for _, m := range models {
		obj, err := b.Parse(m.Key[prefix:], m.Value)
		if err != nil {
			return nil, err
		}
		t := AsTransaction(obj)
		if vaultID == nil || orm.DecodeSequence(vaultID) == orm.DecodeSequence(t.VaultID) {
			res = append(res, t)
		}
	}
	return res, nil
}

// AsTransaction extracts a *Transaction value or panics on a wrong
// bucket content.
func AsTransaction(obj orm.Object) *Transaction {
	if obj == nil || obj.Value() == nil {
		return nil
	}
	return obj.Value().(*Transaction)
}
