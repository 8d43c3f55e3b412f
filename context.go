/*
Package mswallet holds the types shared by every part of the multisig
wallet: addresses and conditions, store interfaces, messages, handlers,
results and genesis options.

Request scoped values travel in a context.Context. Each has a WithXYZ setter
and a GetXYZ getter here. Height and chain id can be set only once per
context, so lower layers cannot override them.
*/
package mswallet

import (
	"context"
	"regexp"

	"github.com/tendermint/tendermint/libs/log"
)

// Context is the standard context, extended with the helpers below.
type Context = context.Context

type contextKey int // local to this package

const (
	contextKeyLogger contextKey = iota
	contextKeyHeight
	contextKeyChainID
)

var (
	// DefaultLogger is returned for a context without a logger.
	DefaultLogger = log.NewNopLogger()

	// IsValidChainID accepts 6 to 20 characters of [a-zA-Z0-9_-].
	IsValidChainID = regexp.MustCompile(`^[a-zA-Z0-9_\-]{6,20}$`).MatchString
)

// WithHeight sets the block height. It panics if a height is already set.
func WithHeight(ctx Context, height int64) Context {
	if _, ok := GetHeight(ctx); ok {
		panic("Height already set")
	}
	return context.WithValue(ctx, contextKeyHeight, height)
}

// GetHeight returns the block height and whether one was set.
func GetHeight(ctx Context) (int64, bool) {
	val, ok := ctx.Value(contextKeyHeight).(int64)
	return val, ok
}

// WithChainID sets the chain id for the Context.
// It panics on an invalid id or if the id was already set.
func WithChainID(ctx Context, chainID string) Context {
	if ctx.Value(contextKeyChainID) != nil {
		panic("Chain ID already set in Context")
	}
	if !IsValidChainID(chainID) {
		panic("Invalid chain ID")
	}
	return context.WithValue(ctx, contextKeyChainID, chainID)
}

// HasChainID reports whether a chain id was set for the context.
func HasChainID(ctx Context) bool {
	_, ok := ctx.Value(contextKeyChainID).(string)
	return ok
}

// GetChainID returns the chain id. It panics if none was set.
func GetChainID(ctx Context) string {
	if x := ctx.Value(contextKeyChainID); x == nil {
		panic("Chain ID not present in Context")
	}
	return ctx.Value(contextKeyChainID).(string)
}

// WithLogger sets the logger.
func WithLogger(ctx Context, logger log.Logger) Context {
	return context.WithValue(ctx, contextKeyLogger, logger)
}

// WithLogInfo adds key value pairs to the context logger.
func WithLogInfo(ctx Context, keyvals ...interface{}) Context {
	logger := GetLogger(ctx).With(keyvals...)
	return WithLogger(ctx, logger)
}

// GetLogger returns the context logger or DefaultLogger.
func GetLogger(ctx Context) log.Logger {
	val, ok := ctx.Value(contextKeyLogger).(log.Logger)
	if !ok {
		return DefaultLogger
	}
	return val
}
