package cash

import (
	"context"
	"testing"

	weave "github.com/iov-one/weave-collect"
	"github.com/iov-one/weave-collect/coin"
	"github.com/iov-one/weave-collect/errors"
	"github.com/iov-one/weave-collect/gconf"
	"github.com/iov-one/weave-collect/store"
	"github.com/iov-one/weave-collect/weavetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type feeTx struct {
	weavetest.Tx
	Fees *FeeInfo
}

func (tx *feeTx) GetFees() *FeeInfo {
	return tx.Fees
}

func TestFeeDecorator(t *testing.T) {
	payer := weavetest.NewCondition()
	other := weavetest.NewCondition()
	collector := weavetest.RandomAddr(t)

	minFee := coin.NewCoinp(0, 100, "FOO")

	cases := map[string]struct {
		noConf        bool
		signers       []weave.Condition
		fee           *FeeInfo
		wantErr       *errors.Error
		wantCollected coin.Coin
		wantPayment   int64
	}{
		"no configuration, no fee": {
			noConf:  true,
			signers: []weave.Condition{payer},
		},
		"fee required": {
			signers: []weave.Condition{payer},
			wantErr: errors.ErrAmount,
		},
		"fee below minimum": {
			signers: []weave.Condition{payer},
			fee:     &FeeInfo{Fees: coin.NewCoinp(0, 99, "FOO")},
			wantErr: errors.ErrAmount,
		},
		"wrong currency": {
			signers: []weave.Condition{payer},
			fee:     &FeeInfo{Fees: coin.NewCoinp(1, 0, "BAR")},
			wantErr: errors.ErrCurrency,
		},
		"payer did not sign": {
			signers: []weave.Condition{other},
			fee:     &FeeInfo{Payer: payer.Address(), Fees: coin.NewCoinp(1, 0, "FOO")},
			wantErr: errors.ErrUnauthorized,
		},
		"insufficient funds": {
			signers: []weave.Condition{payer},
			fee:     &FeeInfo{Fees: coin.NewCoinp(50, 0, "FOO")},
			wantErr: errors.ErrInsufficientAmount,
		},
		"main signer pays": {
			signers:       []weave.Condition{payer},
			fee:           &FeeInfo{Fees: coin.NewCoinp(1, 0, "FOO")},
			wantCollected: coin.NewCoin(1, 0, "FOO"),
			wantPayment:   coin.FracUnit,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			ctrl := NewController(NewBucket())
			require.NoError(t, ctrl.CoinMint(db, payer.Address(), coin.NewCoin(10, 0, "FOO")))
			if !tc.noConf {
				conf := Configuration{
					Metadata:         &weave.Metadata{Schema: 1},
					CollectorAddress: collector,
					MinimalFee:       minFee,
				}
				require.NoError(t, gconf.Save(db, confPkg, &conf))
			}

			h := &weavetest.Handler{}
			d := NewFeeDecorator(&weavetest.Auth{Signers: tc.signers}, ctrl)
			tx := &feeTx{Fees: tc.fee}

			res, err := d.Check(context.TODO(), db.CacheWrap(), tx, h)
			if tc.wantErr != nil {
				assert.True(t, tc.wantErr.Is(err), "check: %v", err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.wantPayment, res.GasPayment)
			}

			_, err = d.Deliver(context.TODO(), db, tx, h)
			if tc.wantErr != nil {
				assert.True(t, tc.wantErr.Is(err), "deliver: %v", err)
				assert.Equal(t, 0, h.CallCount())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 2, h.CallCount())

			if !tc.wantCollected.IsZero() {
				assertBalance(t, ctrl, db, collector, tc.wantCollected)
			}
		})
	}
}
