package weave

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/iov-one/weave-collect/errors"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// Context carries the block information to handlers. Values are attached
// with the WithXYZ functions and read back with their getters. Block level
// values can be set only once, so that a decorator cannot rewrite what the
// application declared.
type Context = context.Context

type contextKey int

const (
	contextKeyHeader contextKey = iota
	contextKeyHeight
	contextKeyChainID
	contextKeyLogger
	contextKeyBlockTime
)

var (
	// DefaultLogger is returned by GetLogger when the context has none.
	DefaultLogger = log.NewNopLogger()

	// IsValidChainID reports whether a chain ID can be used for signing.
	IsValidChainID = regexp.MustCompile(`^[a-zA-Z0-9_\-]{6,25}$`).MatchString
)

// setOnce attaches val under key and panics if the key is already present.
func setOnce(ctx Context, key contextKey, val interface{}) Context {
	if ctx.Value(key) != nil {
		panic(fmt.Sprintf("context value %d already set", key))
	}
	return context.WithValue(ctx, key, val)
}

func WithHeader(ctx Context, header abci.Header) Context {
	return setOnce(ctx, contextKeyHeader, header)
}

func GetHeader(ctx Context) (abci.Header, bool) {
	val, ok := ctx.Value(contextKeyHeader).(abci.Header)
	return val, ok
}

func WithHeight(ctx Context, height int64) Context {
	return setOnce(ctx, contextKeyHeight, height)
}

func GetHeight(ctx Context) (int64, bool) {
	val, ok := ctx.Value(contextKeyHeight).(int64)
	return val, ok
}

// WithBlockTime attaches the block time, converted to UTC. Unlike other
// block values it can be replaced, which tests use to move the clock.
func WithBlockTime(ctx Context, t time.Time) Context {
	return context.WithValue(ctx, contextKeyBlockTime, t.UTC())
}

// BlockTime returns the time declared by the block header. Missing and zero
// values are reported as ErrHuman, because the application must always
// provide one.
func BlockTime(ctx Context) (time.Time, error) {
	val, ok := ctx.Value(contextKeyBlockTime).(time.Time)
	switch {
	case !ok:
		return time.Time{}, errors.Wrap(errors.ErrHuman, "block time not in context")
	case val.IsZero():
		return time.Time{}, errors.Wrap(errors.ErrHuman, "zero block time in context")
	}
	return val, nil
}

// WithChainID attaches the chain ID. It panics on an invalid ID.
func WithChainID(ctx Context, chainID string) Context {
	if !IsValidChainID(chainID) {
		panic(fmt.Sprintf("invalid chain ID: %q", chainID))
	}
	return setOnce(ctx, contextKeyChainID, chainID)
}

// GetChainID returns the chain ID. It panics when none is set, because no
// transaction can be processed without one.
func GetChainID(ctx Context) string {
	id, ok := ctx.Value(contextKeyChainID).(string)
	if !ok {
		panic("chain ID not in context")
	}
	return id
}

func WithLogger(ctx Context, logger log.Logger) Context {
	return context.WithValue(ctx, contextKeyLogger, logger)
}

// GetLogger returns the context logger or DefaultLogger.
func GetLogger(ctx Context) log.Logger {
	if l, ok := ctx.Value(contextKeyLogger).(log.Logger); ok {
		return l
	}
	return DefaultLogger
}

// WithLogInfo adds key value pairs to every entry of the context logger.
func WithLogInfo(ctx Context, keyvals ...interface{}) Context {
	return WithLogger(ctx, GetLogger(ctx).With(keyvals...))
}
