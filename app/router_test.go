package app

import (
	"context"
	"testing"

	weave "github.com/iov-one/weave-collect"
	"github.com/iov-one/weave-collect/errors"
	"github.com/iov-one/weave-collect/weavetest"
	"github.com/stretchr/testify/assert"
)

func TestRouter(t *testing.T) {
	r := NewRouter()

	var good weavetest.Handler
	bad := weavetest.Handler{
		CheckErr:   errors.ErrUnauthorized,
		DeliverErr: errors.ErrUnauthorized,
	}
	r.Handle("test/good", &good)
	r.Handle("test/bad", &bad)

	assert.Panics(t, func() { r.Handle("test/good", &good) })
	assert.Panics(t, func() { r.Handle("l:7", &good) })

	ctx := context.Background()
	txFor := func(path string) weave.Tx {
		return &weavetest.Tx{Msg: &weavetest.Msg{RoutePath: path}}
	}

	_, err := r.Check(ctx, nil, txFor("test/good"))
	assert.NoError(t, err)
	_, err = r.Deliver(ctx, nil, txFor("test/good"))
	assert.NoError(t, err)
	assert.Equal(t, 2, good.CallCount())

	_, err = r.Deliver(ctx, nil, txFor("test/bad"))
	assert.True(t, errors.ErrUnauthorized.Is(err))

	_, err = r.Check(ctx, nil, txFor("test/missing"))
	assert.True(t, errors.ErrNotFound.Is(err))

	_, err = r.Deliver(ctx, nil, &weavetest.Tx{})
	assert.True(t, errors.ErrState.Is(err))
}
