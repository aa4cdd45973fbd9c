package orm

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/covault/covault"
	"github.com/covault/covault/errors"
	"github.com/covault/covault/store"
)

// counter is a test value object, an int64 in big endian encoding.
type counter struct {
	Count int64
}

var _ CloneableData = (*counter)(nil)

func (c *counter) Validate() error {
	if c.Count < 0 {
		return errors.Wrap(errors.ErrState, "count must be non-negative")
	}
	return nil
}

func (c *counter) Copy() CloneableData {
	return &counter{Count: c.Count}
}

func (c *counter) Marshal() ([]byte, error) {
	raw := make([]byte, 8)
	binary.BigEndian.PutUint64(raw, uint64(c.Count))
	return raw, nil
}

func (c *counter) Unmarshal(raw []byte) error {
	if len(raw) != 8 {
		return errors.Wrap(errors.ErrInput, "expected 8 bytes")
	}
	c.Count = int64(binary.BigEndian.Uint64(raw))
	return nil
}

func TestBucketSaveGetDelete(t *testing.T) {
	db := store.MemStore()
	bucket := NewBucket("cnts", NewSimpleObj(nil, new(counter)))

	// missing key returns nil, not an error
	got, err := bucket.Get(db, []byte("unknown"))
	require.NoError(t, err)
	assert.Nil(t, got)

	obj := NewSimpleObj([]byte("some"), &counter{Count: 55})
	require.NoError(t, bucket.Save(db, obj))

	got, err = bucket.Get(db, []byte("some"))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, []byte("some"), got.Key())
	assert.Equal(t, int64(55), got.Value().(*counter).Count)

	// invalid objects cannot be saved
	bad := NewSimpleObj([]byte("bad"), &counter{Count: -8})
	err = bucket.Save(db, bad)
	assert.True(t, errors.ErrState.Is(err), "got %+v", err)

	require.NoError(t, bucket.Delete(db, []byte("some")))
	got, err = bucket.Get(db, []byte("some"))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestBucketIsolation(t *testing.T) {
	db := store.MemStore()
	alpha := NewBucket("alpha", NewSimpleObj(nil, new(counter)))
	beta := NewBucket("beta", NewSimpleObj(nil, new(counter)))

	key := []byte("shared")
	require.NoError(t, alpha.Save(db, NewSimpleObj(key, &counter{Count: 1})))

	got, err := beta.Get(db, key)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestBucketNameValidation(t *testing.T) {
	assert.Panics(t, func() {
		NewBucket("Bad Name", NewSimpleObj(nil, new(counter)))
	})
	assert.Panics(t, func() {
		NewBucket("x", NewSimpleObj(nil, new(counter)))
	})
}

func TestBucketQuery(t *testing.T) {
	db := store.MemStore()
	bucket := NewBucket("cnts", NewSimpleObj(nil, new(counter)))

	keys := [][]byte{[]byte("aaa"), []byte("abb"), []byte("bbb")}
	for i, key := range keys {
		require.NoError(t, bucket.Save(db, NewSimpleObj(key, &counter{Count: int64(i)})))
	}

	qr := covault.NewQueryRouter()
	bucket.Register("counters", qr)
	h := qr.Handler("/counters")
	require.NotNil(t, h)

	// point query
	models, err := h.Query(db, covault.KeyQueryMod, []byte("abb"))
	require.NoError(t, err)
	require.Len(t, models, 1)
	assert.Equal(t, bucket.DBKey([]byte("abb")), models[0].Key)

	// point query miss
	models, err = h.Query(db, covault.KeyQueryMod, []byte("zzz"))
	require.NoError(t, err)
	assert.Len(t, models, 0)

	// prefix query, in key order
	models, err = h.Query(db, covault.PrefixQueryMod, []byte("a"))
	require.NoError(t, err)
	require.Len(t, models, 2)
	assert.Equal(t, bucket.DBKey([]byte("aaa")), models[0].Key)
	assert.Equal(t, bucket.DBKey([]byte("abb")), models[1].Key)

	// unknown modifier
	_, err = h.Query(db, "unknown", []byte("a"))
	assert.Error(t, err)
}

func TestPrefixRange(t *testing.T) {
	cases := map[string]struct {
		prefix []byte
		start  []byte
		end    []byte
	}{
		"nil":          {nil, nil, nil},
		"simple":       {[]byte{1, 3, 4}, []byte{1, 3, 4}, []byte{1, 3, 5}},
		"trailing max": {[]byte{1, 3, 0xff}, []byte{1, 3, 0xff}, []byte{1, 4}},
		"all max":      {[]byte{0xff, 0xff}, []byte{0xff, 0xff}, nil},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			start, end := prefixRange(tc.prefix)
			assert.Equal(t, tc.start, start)
			assert.Equal(t, tc.end, end)
		})
	}
}
