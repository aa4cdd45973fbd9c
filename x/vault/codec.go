package vault

import (
	amino "github.com/tendermint/go-amino"
)

// cdc is the package level codec, all stored and transmitted
// structures of this package serialize through it.
var cdc = amino.NewCodec()

// Marshal implements covault.Persistent.
func (v *Vault) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(v)
}

// Unmarshal implements covault.Persistent.
func (v *Vault) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, v)
}

// Marshal implements covault.Persistent.
func (t *Transaction) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(t)
}

// Unmarshal implements covault.Persistent.
func (t *Transaction) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, t)
}

// Marshal implements covault.Persistent.
func (m *CreateVaultMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

// Unmarshal implements covault.Persistent.
func (m *CreateVaultMsg) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, m)
}

// Marshal implements covault.Persistent.
func (m *InitiateTransactionMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

// Unmarshal implements covault.Persistent.
func (m *InitiateTransactionMsg) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, m)
}

// Marshal implements covault.Persistent.
func (m *ApproveTransactionMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

// Unmarshal implements covault.Persistent.
func (m *ApproveTransactionMsg) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, m)
}

// Marshal implements covault.Persistent.
func (m *TransferOwnershipMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

// Unmarshal implements covault.Persistent.
func (m *TransferOwnershipMsg) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, m)
}

// Marshal implements covault.Persistent.
func (m *ClaimOwnershipMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

// Unmarshal implements covault.Persistent.
func (m *ClaimOwnershipMsg) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, m)
}

// Marshal implements covault.Persistent.
func (m *AddSignerMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

// Unmarshal implements covault.Persistent.
func (m *AddSignerMsg) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, m)
}

// Marshal implements covault.Persistent.
func (m *RemoveSignerMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

// Unmarshal implements covault.Persistent.
func (m *RemoveSignerMsg) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, m)
}
