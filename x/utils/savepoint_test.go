package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/covault/covault"
	"github.com/covault/covault/covaulttest"
	"github.com/covault/covault/errors"
	"github.com/covault/covault/store"
)

// writingHandler writes the given key/value pair and returns the
// configured error.
type writingHandler struct {
	key   []byte
	value []byte
	err   error
}

var _ covault.Handler = writingHandler{}

func (h writingHandler) Check(ctx covault.Context, db covault.KVStore, tx covault.Tx) (covault.CheckResult, error) {
	db.Set(h.key, h.value)
	return covault.CheckResult{}, h.err
}

func (h writingHandler) Deliver(ctx covault.Context, db covault.KVStore, tx covault.Tx) (covault.DeliverResult, error) {
	db.Set(h.key, h.value)
	return covault.DeliverResult{}, h.err
}

func TestSavepoint(t *testing.T) {
	key, value := []byte("key"), []byte("value")
	boom := errors.ErrState.New("boom")

	cases := map[string]struct {
		save      Savepoint
		handler   covault.Handler
		onDeliver bool
		wantErr   *errors.Error
		written   bool
	}{
		"check succeeds, commits": {
			save:    NewSavepoint().OnCheck(),
			handler: writingHandler{key: key, value: value},
			written: true,
		},
		"check fails, rolls back": {
			save:    NewSavepoint().OnCheck(),
			handler: writingHandler{key: key, value: value, err: boom},
			wantErr: errors.ErrState,
			written: false,
		},
		"deliver succeeds, commits": {
			save:      NewSavepoint().OnDeliver(),
			handler:   writingHandler{key: key, value: value},
			onDeliver: true,
			written:   true,
		},
		"deliver fails, rolls back": {
			save:      NewSavepoint().OnDeliver(),
			handler:   writingHandler{key: key, value: value, err: boom},
			onDeliver: true,
			wantErr:   errors.ErrState,
			written:   false,
		},
		"inactive savepoint writes through even on failure": {
			save:      NewSavepoint().OnCheck(),
			handler:   writingHandler{key: key, value: value, err: boom},
			onDeliver: true,
			wantErr:   errors.ErrState,
			written:   true,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			db := store.MemStore()
			tx := &covaulttest.Tx{}

			var err error
			if tc.onDeliver {
				_, err = tc.save.Deliver(ctx, db, tx, tc.handler)
			} else {
				_, err = tc.save.Check(ctx, db, tx, tc.handler)
			}

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.True(t, tc.wantErr.Is(err), "got %+v", err)
			} else {
				require.NoError(t, err)
			}

			if tc.written {
				assert.Equal(t, value, db.Get(key))
			} else {
				assert.Nil(t, db.Get(key))
			}
		})
	}
}
