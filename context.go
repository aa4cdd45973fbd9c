package covault

import (
	"context"
	"time"

	"github.com/tendermint/tendermint/libs/log"
)

// Context is just a polite way to say that we use context.Context
// to pass information between the application, the middleware and
// the handlers.
//
// There should exist two functions for every XYZ of type T
// that we want to support in Context:
//
//   WithXYZ(Context, T) Context
//   GetXYZ(Context) (val T, ok bool)
type Context = context.Context

type contextKey int // local to this package

const (
	contextKeyHeight contextKey = iota
	contextKeyChainID
	contextKeyLogger
	contextKeyTime
)

// DefaultLogger is used for all context that have not
// set anything themselves.
var DefaultLogger = log.NewNopLogger()

// WithHeight sets the block height for the Context.
// Panics if already set.
func WithHeight(ctx Context, height int64) Context {
	if _, ok := GetHeight(ctx); ok {
		panic("Height already set")
	}
	return context.WithValue(ctx, contextKeyHeight, height)
}

// GetHeight returns the current block height, if set.
func GetHeight(ctx Context) (int64, bool) {
	val, ok := ctx.Value(contextKeyHeight).(int64)
	return val, ok
}

// WithChainID sets the chain id for the Context.
// Panics if already set.
func WithChainID(ctx Context, chainID string) Context {
	if ctx.Value(contextKeyChainID) != nil {
		panic("Chain ID already set")
	}
	return context.WithValue(ctx, contextKeyChainID, chainID)
}

// GetChainID returns the chain id, or an empty string if unset.
func GetChainID(ctx Context) string {
	val, _ := ctx.Value(contextKeyChainID).(string)
	return val
}

// WithBlockTime sets the block time for the Context. The block time is
// the agreed upon "current time" of all operations within one block.
func WithBlockTime(ctx Context, t time.Time) Context {
	return context.WithValue(ctx, contextKeyTime, t)
}

// BlockTime returns the block time, if set.
func BlockTime(ctx Context) (time.Time, bool) {
	val, ok := ctx.Value(contextKeyTime).(time.Time)
	return val, ok
}

// WithLogger sets the logger for the Context.
// It may be overridden later, eg. to add more context.
func WithLogger(ctx Context, logger log.Logger) Context {
	return context.WithValue(ctx, contextKeyLogger, logger)
}

// GetLogger returns the logger previously set,
// or the DefaultLogger if none was set.
func GetLogger(ctx Context) log.Logger {
	val, ok := ctx.Value(contextKeyLogger).(log.Logger)
	if !ok {
		return DefaultLogger
	}
	return val
}
