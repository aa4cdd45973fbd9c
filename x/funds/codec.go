package funds

import (
	amino "github.com/tendermint/go-amino"
)

// cdc is the package level codec, all stored and transmitted
// structures of this package serialize through it.
var cdc = amino.NewCodec()

// Marshal implements covault.Persistent.
func (s *Set) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(s)
}

// Unmarshal implements covault.Persistent.
func (s *Set) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, s)
}

// Marshal implements covault.Persistent.
func (m *SendMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

// Unmarshal implements covault.Persistent.
func (m *SendMsg) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, m)
}
