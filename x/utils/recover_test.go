package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/covault/covault"
	"github.com/covault/covault/covaulttest"
	"github.com/covault/covault/errors"
	"github.com/covault/covault/store"
)

type panicHandler struct{}

var _ covault.Handler = panicHandler{}

func (panicHandler) Check(covault.Context, covault.KVStore, covault.Tx) (covault.CheckResult, error) {
	panic("check panic")
}

func (panicHandler) Deliver(covault.Context, covault.KVStore, covault.Tx) (covault.DeliverResult, error) {
	panic("deliver panic")
}

func TestRecovery(t *testing.T) {
	ctx := context.Background()
	db := store.MemStore()
	tx := &covaulttest.Tx{}

	rec := NewRecovery()

	_, err := rec.Check(ctx, db, tx, panicHandler{})
	assert.True(t, errors.ErrPanic.Is(err), "got %+v", err)

	_, err = rec.Deliver(ctx, db, tx, panicHandler{})
	assert.True(t, errors.ErrPanic.Is(err), "got %+v", err)

	// without a panic the result passes through untouched
	h := &covaulttest.Handler{}
	_, err = rec.Check(ctx, db, tx, h)
	assert.NoError(t, err)
	assert.Equal(t, 1, h.CheckCallCount())
}
