package gconf

import (
	"context"
	"testing"

	weave "github.com/iov-one/weave-collect"
	"github.com/iov-one/weave-collect/coin"
	"github.com/iov-one/weave-collect/errors"
	"github.com/iov-one/weave-collect/store"
	"github.com/iov-one/weave-collect/weavetest"
	"github.com/iov-one/weave-collect/weavetest/assert"
)

func TestUpdateConfigurationHandler(t *testing.T) {
	owner := weavetest.NewCondition()
	current := func() *feeConf {
		return &feeConf{Owner: owner.Address(), FeeBps: 500, Label: "current", MinFee: coin.NewCoinp(10, 0, "IOV")}
	}

	cases := map[string]struct {
		init    *feeConf
		msg     weave.Msg
		signers []weave.Condition
		wantErr *errors.Error
		want    *feeConf
	}{
		"owner replaces all values": {
			init: current(),
			msg: &updateFeeConfMsg{Patch: &feeConf{
				Owner: owner.Address(), FeeBps: 100, Label: "new", MinFee: coin.NewCoinp(1, 5, "ETH"),
			}},
			signers: []weave.Condition{owner},
			want:    &feeConf{Owner: owner.Address(), FeeBps: 100, Label: "new", MinFee: coin.NewCoinp(1, 5, "ETH")},
		},
		"zero values keep the current value": {
			init: current(),
			msg: &updateFeeConfMsg{Patch: &feeConf{
				Owner: owner.Address(), MinFee: coin.NewCoinp(0, 1, "IOV"),
			}},
			signers: []weave.Condition{owner},
			want:    &feeConf{Owner: owner.Address(), FeeBps: 500, Label: "current", MinFee: coin.NewCoinp(0, 1, "IOV")},
		},
		"signer is not the owner": {
			init:    current(),
			msg:     &updateFeeConfMsg{Patch: current()},
			signers: []weave.Condition{weavetest.NewCondition()},
			wantErr: errors.ErrUnauthorized,
			want:    current(),
		},
		"invalid patch": {
			init: current(),
			msg: &updateFeeConfMsg{Patch: &feeConf{
				Owner: owner.Address(), MinFee: &coin.Coin{Whole: 4},
			}},
			signers: []weave.Condition{owner},
			wantErr: errors.ErrCurrency,
			want:    current(),
		},
		"missing configuration without init admin": {
			msg:     &updateFeeConfMsg{Patch: current()},
			signers: []weave.Condition{owner},
			wantErr: errors.ErrUnauthorized,
		},
		"message without patch field": {
			init:    current(),
			msg:     &weavetest.Msg{RoutePath: "test/update_configuration"},
			signers: []weave.Condition{owner},
			wantErr: errors.ErrInput,
			want:    current(),
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			if tc.init != nil {
				assert.Nil(t, Save(db, "fees", tc.init))
			}

			auth := &weavetest.Auth{Signers: tc.signers}
			handler := NewUpdateConfigurationHandler("fees", &feeConf{}, auth, nil)
			ctx := context.Background()
			tx := &weavetest.Tx{Msg: tc.msg}

			cache := db.CacheWrap()
			_, err := handler.Check(ctx, cache, tx)
			assert.IsErr(t, tc.wantErr, err)
			cache.Discard()

			_, err = handler.Deliver(ctx, db, tx)
			assert.IsErr(t, tc.wantErr, err)

			if tc.want != nil {
				var got feeConf
				assert.Nil(t, Load(db, "fees", &got))
				assert.Equal(t, tc.want, &got)
			}
		})
	}
}

func TestUpdateConfigurationInitAdmin(t *testing.T) {
	admin := weavetest.NewCondition()
	initAdmin := func(weave.ReadOnlyKVStore) (weave.Address, error) { return admin.Address(), nil }

	db := store.MemStore()
	auth := &weavetest.CtxAuth{Key: "auth"}
	handler := NewUpdateConfigurationHandler("fees", &feeConf{}, auth, initAdmin)

	tx := &weavetest.Tx{Msg: &updateFeeConfMsg{Patch: &feeConf{
		Owner: admin.Address(), FeeBps: 1, MinFee: coin.NewCoinp(1, 0, "IOV"),
	}}}

	ctx := auth.SetConditions(context.Background(), weavetest.NewCondition())
	_, err := handler.Deliver(ctx, db, tx)
	assert.IsErr(t, errors.ErrUnauthorized, err)

	ctx = auth.SetConditions(context.Background(), admin)
	_, err = handler.Deliver(ctx, db, tx)
	assert.Nil(t, err)

	var got feeConf
	assert.Nil(t, Load(db, "fees", &got))
	assert.Equal(t, int64(1), got.FeeBps)
}
