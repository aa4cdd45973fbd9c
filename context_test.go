package covault

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextHeight(t *testing.T) {
	ctx := context.Background()

	_, ok := GetHeight(ctx)
	assert.False(t, ok)

	ctx = WithHeight(ctx, 123)
	val, ok := GetHeight(ctx)
	assert.True(t, ok)
	assert.Equal(t, int64(123), val)

	// height is set once per block
	assert.Panics(t, func() {
		WithHeight(ctx, 456)
	})
}

func TestContextChainID(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, "", GetChainID(ctx))

	ctx = WithChainID(ctx, "test-chain-1")
	assert.Equal(t, "test-chain-1", GetChainID(ctx))

	assert.Panics(t, func() {
		WithChainID(ctx, "other-chain")
	})
}

func TestContextBlockTime(t *testing.T) {
	ctx := context.Background()
	_, ok := BlockTime(ctx)
	assert.False(t, ok)

	now := time.Now()
	ctx = WithBlockTime(ctx, now)
	got, ok := BlockTime(ctx)
	require.True(t, ok)
	assert.Equal(t, now, got)
}

func TestContextLogger(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, DefaultLogger, GetLogger(ctx))

	logger := DefaultLogger.With("module", "test")
	ctx = WithLogger(ctx, logger)
	assert.NotNil(t, GetLogger(ctx))
}
