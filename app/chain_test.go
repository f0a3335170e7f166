package app

import (
	"context"
	"testing"

	weave "github.com/iov-one/weave-collect"
	"github.com/iov-one/weave-collect/errors"
	"github.com/iov-one/weave-collect/weavetest"
	"github.com/iov-one/weave-collect/x/utils"
	"github.com/stretchr/testify/assert"
)

// panicAtHeight panics when the context height is at or above the limit.
type panicAtHeight struct {
	height int64
}

func (p panicAtHeight) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx, next weave.Checker) (*weave.CheckResult, error) {
	if h, _ := weave.GetHeight(ctx); h >= p.height {
		panic("too high")
	}
	return next.Check(ctx, db, tx)
}

func (p panicAtHeight) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx, next weave.Deliverer) (*weave.DeliverResult, error) {
	if h, _ := weave.GetHeight(ctx); h >= p.height {
		panic("too high")
	}
	return next.Deliver(ctx, db, tx)
}

func TestChain(t *testing.T) {
	var c1, c2, c3 weavetest.Decorator
	var h weavetest.Handler

	stack := ChainDecorators(
		&c1,
		utils.NewRecovery(),
		&c2,
		panicAtHeight{height: 6},
		&c3,
	).WithHandler(&h)

	bg := context.Background()
	tx := &weavetest.Tx{Msg: &weavetest.Msg{RoutePath: "test/chain"}}

	_, err := stack.Check(weave.WithHeight(bg, 2), nil, tx)
	assert.NoError(t, err)
	_, err = stack.Deliver(weave.WithHeight(bg, 4), nil, tx)
	assert.NoError(t, err)

	assert.Equal(t, 2, c1.CallCount())
	assert.Equal(t, 2, c2.CallCount())
	assert.Equal(t, 2, c3.CallCount())
	assert.Equal(t, 2, h.CallCount())

	// the recovery decorator turns a panic into an error
	ctx := weave.WithHeight(bg, 8)
	_, err = stack.Check(ctx, nil, tx)
	assert.True(t, errors.ErrPanic.Is(err))
	_, err = stack.Deliver(ctx, nil, tx)
	assert.True(t, errors.ErrPanic.Is(err))

	assert.Equal(t, 4, c1.CallCount())
	assert.Equal(t, 4, c2.CallCount())
	// panics happen before c3 is reached
	assert.Equal(t, 2, c3.CallCount())
	assert.Equal(t, 2, h.CallCount())
}

func TestChainNilDecorators(t *testing.T) {
	var d weavetest.Decorator
	var h weavetest.Handler
	var nilDecorator *weavetest.Decorator

	stack := ChainDecorators(nil, &d, nilDecorator).WithHandler(&h)
	_, err := stack.Deliver(context.Background(), nil, &weavetest.Tx{})
	assert.NoError(t, err)
	assert.Equal(t, 1, d.DeliverCallCount())
	assert.Equal(t, 1, h.DeliverCallCount())
}
