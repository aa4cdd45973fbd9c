package orm

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/covault/covault/store"
)

func TestSequenceMonotonic(t *testing.T) {
	db := store.MemStore()
	seq := NewSequence("vault", "id")

	var last []byte
	for i := int64(1); i <= 10; i++ {
		val := seq.NextVal(db)
		require.Len(t, val, 8)
		assert.Equal(t, i, DecodeSequence(val))
		if last != nil {
			assert.True(t, bytes.Compare(last, val) < 0, "keys must grow")
		}
		last = val
	}

	latest, raw := seq.Latest(db)
	assert.Equal(t, int64(10), latest)
	assert.Equal(t, last, raw)
}

func TestSequenceIndependence(t *testing.T) {
	db := store.MemStore()
	one := NewSequence("vault", "id")
	two := NewSequence("vaulttx", "id")

	assert.Equal(t, int64(1), one.NextInt(db))
	assert.Equal(t, int64(2), one.NextInt(db))
	// a different bucket sequence starts from scratch
	assert.Equal(t, int64(1), two.NextInt(db))
}

func TestSequenceFreshStartsAtOne(t *testing.T) {
	db := store.MemStore()
	seq := NewSequence("ledger", "id")

	latest, raw := seq.Latest(db)
	assert.Equal(t, int64(0), latest)
	assert.Nil(t, raw)

	assert.Equal(t, int64(1), seq.NextInt(db))
}

func TestValidateSequence(t *testing.T) {
	assert.Error(t, ValidateSequence(nil))
	assert.Error(t, ValidateSequence([]byte{1, 2, 3}))
	assert.NoError(t, ValidateSequence(EncodeSequence(77)))
}
