package vault

import (
	"testing"

	weave "github.com/iov-one/weave-collect"
	"github.com/iov-one/weave-collect/coin"
	"github.com/iov-one/weave-collect/errors"
	"github.com/iov-one/weave-collect/store"
	"github.com/iov-one/weave-collect/weavetest"
	"github.com/iov-one/weave-collect/x/cash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeposit(t *testing.T) {
	alice := weavetest.RandomAddr(t)

	cases := map[string]struct {
		pool        *Pool
		deposit     coin.Coin
		wantErr     *errors.Error
		wantReceipt coin.Coin
		wantReserve coin.Coin
		wantShares  coin.Coin
	}{
		"first deposit is credited one to one": {
			pool:        &Pool{Metadata: &weave.Metadata{Schema: 1}, Ticker: "IOV", ReceiptTicker: "YIOV"},
			deposit:     coin.NewCoin(3, 500, "IOV"),
			wantReceipt: coin.NewCoin(3, 500, "YIOV"),
			wantReserve: coin.NewCoin(3, 500, "IOV"),
			wantShares:  coin.NewCoin(3, 500, "YIOV"),
		},
		"deposit is credited proportionally": {
			pool: &Pool{
				Metadata:      &weave.Metadata{Schema: 1},
				Ticker:        "IOV",
				ReceiptTicker: "YIOV",
				Reserve:       coin.NewCoinp(20, 0, "IOV"),
				Shares:        coin.NewCoinp(10, 0, "YIOV"),
			},
			deposit:     coin.NewCoin(5, 0, "IOV"),
			wantReceipt: coin.NewCoin(2, 500000000, "YIOV"),
			wantReserve: coin.NewCoin(25, 0, "IOV"),
			wantShares:  coin.NewCoin(12, 500000000, "YIOV"),
		},
		"deposit too small": {
			pool: &Pool{
				Metadata:      &weave.Metadata{Schema: 1},
				Ticker:        "IOV",
				ReceiptTicker: "YIOV",
				Reserve:       coin.NewCoinp(10, 0, "IOV"),
				Shares:        coin.NewCoinp(0, 1, "YIOV"),
			},
			deposit: coin.NewCoin(0, 1, "IOV"),
			wantErr: errors.ErrAmount,
		},
		"unknown pool": {
			pool:    &Pool{Metadata: &weave.Metadata{Schema: 1}, Ticker: "IOV", ReceiptTicker: "YIOV"},
			deposit: coin.NewCoin(1, 0, "ETH"),
			wantErr: errors.ErrNotFound,
		},
		"zero deposit": {
			pool:    &Pool{Metadata: &weave.Metadata{Schema: 1}, Ticker: "IOV", ReceiptTicker: "YIOV"},
			deposit: coin.NewCoin(0, 0, "IOV"),
			wantErr: errors.ErrAmount,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			bucket := NewPoolBucket()
			_, err := bucket.Put(db, []byte(tc.pool.Ticker), tc.pool)
			require.NoError(t, err)

			cashCtrl := cash.NewController(cash.NewBucket())
			ctrl := NewController(cashCtrl)

			receipt, err := ctrl.Deposit(db, alice, tc.deposit)
			if tc.wantErr != nil {
				assert.True(t, tc.wantErr.Is(err), "got %+v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantReceipt, receipt)

			pool, err := bucket.Pool(db, tc.pool.Ticker)
			require.NoError(t, err)
			assert.True(t, tc.wantReserve.Equals(*pool.Reserve), "reserve %s", pool.Reserve)
			assert.True(t, tc.wantShares.Equals(*pool.Shares), "shares %s", pool.Shares)

			balance, err := cashCtrl.Balance(db, alice)
			require.NoError(t, err)
			assert.True(t, coin.Coins{&tc.wantReceipt}.Equals(balance), "balance %v", balance)
		})
	}
}

func TestPoolValidate(t *testing.T) {
	cases := map[string]struct {
		pool    *Pool
		wantErr *errors.Error
	}{
		"valid": {
			pool: &Pool{Metadata: &weave.Metadata{Schema: 1}, Ticker: "IOV", ReceiptTicker: "YIOV"},
		},
		"same tickers": {
			pool:    &Pool{Metadata: &weave.Metadata{Schema: 1}, Ticker: "IOV", ReceiptTicker: "IOV"},
			wantErr: errors.ErrCurrency,
		},
		"reserve of another currency": {
			pool: &Pool{
				Metadata:      &weave.Metadata{Schema: 1},
				Ticker:        "IOV",
				ReceiptTicker: "YIOV",
				Reserve:       coin.NewCoinp(1, 0, "ETH"),
			},
			wantErr: errors.ErrCurrency,
		},
		"missing metadata": {
			pool:    &Pool{Ticker: "IOV", ReceiptTicker: "YIOV"},
			wantErr: errors.ErrMetadata,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := tc.pool.Validate(); !tc.wantErr.Is(err) {
				t.Fatalf("want %v, got %+v", tc.wantErr, err)
			}
		})
	}
}
