package cash

import (
	"testing"

	weave "github.com/iov-one/weave-collect"
	"github.com/iov-one/weave-collect/coin"
	"github.com/iov-one/weave-collect/errors"
	"github.com/iov-one/weave-collect/store"
	"github.com/iov-one/weave-collect/weavetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveCoins(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController(NewBucket())
	a := weavetest.RandomAddr(t)
	b := weavetest.RandomAddr(t)

	require.NoError(t, ctrl.CoinMint(db, a, coin.NewCoin(10, 0, "FOO")))

	cases := map[string]struct {
		src, dest weave.Address
		amount    coin.Coin
		wantErr   *errors.Error
	}{
		"non positive":       {src: a, dest: b, amount: coin.NewCoin(0, 0, "FOO"), wantErr: errors.ErrAmount},
		"unknown sender":     {src: b, dest: a, amount: coin.NewCoin(1, 0, "FOO"), wantErr: errors.ErrEmpty},
		"insufficient funds": {src: a, dest: b, amount: coin.NewCoin(11, 0, "FOO"), wantErr: errors.ErrInsufficientAmount},
		"wrong currency":     {src: a, dest: b, amount: coin.NewCoin(1, 0, "BAR"), wantErr: errors.ErrInsufficientAmount},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			err := ctrl.MoveCoins(db, tc.src, tc.dest, tc.amount)
			assert.True(t, tc.wantErr.Is(err), "got %v", err)
		})
	}

	require.NoError(t, ctrl.MoveCoins(db, a, b, coin.NewCoin(3, 5, "FOO")))
	assertBalance(t, ctrl, db, a, coin.NewCoin(6, 999999995, "FOO"))
	assertBalance(t, ctrl, db, b, coin.NewCoin(3, 5, "FOO"))

	// moving to self keeps the balance
	require.NoError(t, ctrl.MoveCoins(db, b, b, coin.NewCoin(1, 0, "FOO")))
	assertBalance(t, ctrl, db, b, coin.NewCoin(3, 5, "FOO"))
}

func TestCoinMintCannotGoNegative(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController(NewBucket())
	a := weavetest.RandomAddr(t)

	require.NoError(t, ctrl.CoinMint(db, a, coin.NewCoin(2, 0, "FOO")))
	require.NoError(t, ctrl.CoinMint(db, a, coin.NewCoin(-1, 0, "FOO")))
	assertBalance(t, ctrl, db, a, coin.NewCoin(1, 0, "FOO"))

	err := ctrl.CoinMint(db, a, coin.NewCoin(-2, 0, "FOO"))
	assert.True(t, errors.ErrInsufficientAmount.Is(err))
}

func TestTransferFrom(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController(NewBucket())
	owner := weavetest.RandomAddr(t)
	spender := weavetest.RandomAddr(t)
	dest := weavetest.RandomAddr(t)

	require.NoError(t, ctrl.CoinMint(db, owner, coin.NewCoin(100, 0, "FOO")))

	// no allowance
	err := ctrl.TransferFrom(db, spender, owner, dest, coin.NewCoin(1, 0, "FOO"))
	assert.True(t, errors.ErrUnauthorized.Is(err), "got %v", err)

	require.NoError(t, ctrl.Approve(db, owner, spender, coin.NewCoin(10, 0, "FOO")))
	got, err := ctrl.Allowance(db, owner, spender, "FOO")
	require.NoError(t, err)
	assert.Equal(t, coin.NewCoin(10, 0, "FOO"), got)

	require.NoError(t, ctrl.TransferFrom(db, spender, owner, dest, coin.NewCoin(4, 0, "FOO")))
	assertBalance(t, ctrl, db, dest, coin.NewCoin(4, 0, "FOO"))
	assertBalance(t, ctrl, db, owner, coin.NewCoin(96, 0, "FOO"))

	got, err = ctrl.Allowance(db, owner, spender, "FOO")
	require.NoError(t, err)
	assert.Equal(t, coin.NewCoin(6, 0, "FOO"), got)

	// over the allowance
	err = ctrl.TransferFrom(db, spender, owner, dest, coin.NewCoin(7, 0, "FOO"))
	assert.True(t, errors.ErrUnauthorized.Is(err), "got %v", err)

	// allowance of another currency does not apply
	err = ctrl.TransferFrom(db, spender, owner, dest, coin.NewCoin(1, 0, "BAR"))
	assert.True(t, errors.ErrUnauthorized.Is(err), "got %v", err)

	// revoke
	require.NoError(t, ctrl.Approve(db, owner, spender, coin.NewCoin(0, 0, "FOO")))
	got, err = ctrl.Allowance(db, owner, spender, "FOO")
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	err = ctrl.Approve(db, owner, spender, coin.NewCoin(-1, 0, "FOO"))
	assert.True(t, errors.ErrAmount.Is(err), "got %v", err)
}

func TestTransferFromInsufficientFunds(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController(NewBucket())
	owner := weavetest.RandomAddr(t)
	spender := weavetest.RandomAddr(t)

	require.NoError(t, ctrl.CoinMint(db, owner, coin.NewCoin(1, 0, "FOO")))
	require.NoError(t, ctrl.Approve(db, owner, spender, coin.NewCoin(5, 0, "FOO")))

	err := ctrl.TransferFrom(db, spender, owner, spender, coin.NewCoin(2, 0, "FOO"))
	assert.True(t, errors.ErrInsufficientAmount.Is(err), "got %v", err)
}
