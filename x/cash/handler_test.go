package cash

import (
	"context"
	"testing"

	weave "github.com/iov-one/weave-collect"
	"github.com/iov-one/weave-collect/coin"
	"github.com/iov-one/weave-collect/errors"
	"github.com/iov-one/weave-collect/store"
	"github.com/iov-one/weave-collect/weavetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendHandler(t *testing.T) {
	sender := weavetest.NewCondition()
	receiver := weavetest.NewCondition()

	cases := map[string]struct {
		signers    []weave.Condition
		msg        weave.Msg
		wantErr    *errors.Error
		wantSender coin.Coin
	}{
		"wrong message type": {
			signers: []weave.Condition{sender},
			msg:     &weavetest.Msg{RoutePath: pathSendMsg},
			wantErr: errors.ErrType,
		},
		"missing signature": {
			signers: []weave.Condition{receiver},
			msg: &SendMsg{
				Metadata:    &weave.Metadata{Schema: 1},
				Source:      sender.Address(),
				Destination: receiver.Address(),
				Amount:      coin.NewCoinp(1, 0, "FOO"),
			},
			wantErr: errors.ErrUnauthorized,
		},
		"invalid message": {
			signers: []weave.Condition{sender},
			msg: &SendMsg{
				Metadata:    &weave.Metadata{Schema: 1},
				Source:      sender.Address(),
				Destination: receiver.Address(),
			},
			wantErr: errors.ErrAmount,
		},
		"insufficient funds": {
			signers: []weave.Condition{sender},
			msg: &SendMsg{
				Metadata:    &weave.Metadata{Schema: 1},
				Source:      sender.Address(),
				Destination: receiver.Address(),
				Amount:      coin.NewCoinp(11, 0, "FOO"),
			},
			wantErr: errors.ErrInsufficientAmount,
		},
		"success": {
			signers: []weave.Condition{sender},
			msg: &SendMsg{
				Metadata:    &weave.Metadata{Schema: 1},
				Source:      sender.Address(),
				Destination: receiver.Address(),
				Amount:      coin.NewCoinp(4, 0, "FOO"),
				Memo:        "hello",
			},
			wantSender: coin.NewCoin(6, 0, "FOO"),
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			ctrl := NewController(NewBucket())
			require.NoError(t, ctrl.CoinMint(db, sender.Address(), coin.NewCoin(10, 0, "FOO")))

			auth := &weavetest.Auth{Signers: tc.signers}
			h := NewSendHandler(auth, ctrl)
			tx := &weavetest.Tx{Msg: tc.msg}

			cache := db.CacheWrap()
			_, err := h.Check(context.TODO(), cache, tx)
			if tc.wantErr != nil {
				assert.True(t, tc.wantErr.Is(err), "check: %v", err)
			} else {
				assert.NoError(t, err)
			}
			cache.Discard()

			res, err := h.Deliver(context.TODO(), db, tx)
			if tc.wantErr != nil {
				assert.True(t, tc.wantErr.Is(err), "deliver: %v", err)
				assertBalance(t, ctrl, db, sender.Address(), coin.NewCoin(10, 0, "FOO"))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, []weave.KVPair{weave.Tag("cash.sent", []byte("4 FOO"))}, res.Tags)
			assertBalance(t, ctrl, db, sender.Address(), tc.wantSender)
		})
	}
}

func TestApproveHandler(t *testing.T) {
	owner := weavetest.NewCondition()
	spender := weavetest.NewCondition()

	db := store.MemStore()
	ctrl := NewController(NewBucket())
	h := NewApproveHandler(&weavetest.Auth{Signer: owner}, ctrl)

	msg := &ApproveMsg{
		Metadata: &weave.Metadata{Schema: 1},
		Owner:    owner.Address(),
		Spender:  spender.Address(),
		Amount:   coin.NewCoinp(7, 0, "FOO"),
	}
	_, err := h.Deliver(context.TODO(), db, &weavetest.Tx{Msg: msg})
	require.NoError(t, err)

	got, err := ctrl.Allowance(db, owner.Address(), spender.Address(), "FOO")
	require.NoError(t, err)
	assert.Equal(t, coin.NewCoin(7, 0, "FOO"), got)

	// The spender cannot approve on behalf of the owner.
	h = NewApproveHandler(&weavetest.Auth{Signer: spender}, ctrl)
	_, err = h.Deliver(context.TODO(), db, &weavetest.Tx{Msg: msg})
	assert.True(t, errors.ErrUnauthorized.Is(err), "got %v", err)
}

func TestRegisterRoutes(t *testing.T) {
	r := routeRecorder{}
	RegisterRoutes(r, &weavetest.Auth{}, NewController(NewBucket()))
	for _, path := range []string{pathSendMsg, pathApproveMsg, pathUpdateConfigurationMsg} {
		assert.Contains(t, r, path)
	}
}

type routeRecorder map[string]weave.Handler

func (r routeRecorder) Handle(path string, h weave.Handler) {
	r[path] = h
}
