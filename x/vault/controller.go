package vault

import (
	sdkmath "cosmossdk.io/math"
	weave "github.com/iov-one/weave-collect"
	"github.com/iov-one/weave-collect/coin"
	"github.com/iov-one/weave-collect/errors"
	"github.com/iov-one/weave-collect/x/cash"
)

// Depositor credits funds already present in a pool reserve.
type Depositor interface {
	// Deposit accounts amount, that must already be held by the reserve
	// account, and mints receipt tokens to the beneficiary. The minted
	// amount is returned.
	Deposit(db weave.KVStore, beneficiary weave.Address, amount coin.Coin) (coin.Coin, error)
}

// CashController is the subset of the cash functionality the vault needs.
type CashController interface {
	cash.CoinMover
	cash.CoinMinter
}

// Controller implements Depositor on top of the pool bucket.
type Controller struct {
	pools *PoolBucket
	cash  CashController
}

var _ Depositor = Controller{}

// NewController returns a vault controller moving and minting coins with ctrl.
func NewController(ctrl CashController) Controller {
	return Controller{
		pools: NewPoolBucket(),
		cash:  ctrl,
	}
}

// Deposit implements Depositor. The first deposit into a pool is credited one
// to one. Following deposits are credited proportionally to the amount of
// shares already minted, rounding down.
func (c Controller) Deposit(db weave.KVStore, beneficiary weave.Address, amount coin.Coin) (coin.Coin, error) {
	if !amount.IsPositive() {
		return coin.Coin{}, errors.Wrapf(errors.ErrAmount, "non-positive deposit: %s", amount)
	}
	pool, err := c.pools.Pool(db, amount.Ticker)
	if err != nil {
		return coin.Coin{}, err
	}

	deposit, err := amount.BaseUnits()
	if err != nil {
		return coin.Coin{}, err
	}
	reserve, err := baseUnits(pool.Reserve)
	if err != nil {
		return coin.Coin{}, errors.Wrap(err, "reserve")
	}
	shares, err := baseUnits(pool.Shares)
	if err != nil {
		return coin.Coin{}, errors.Wrap(err, "shares")
	}

	minted := deposit
	if !reserve.IsZero() && !shares.IsZero() {
		minted = deposit.Mul(shares).Quo(reserve)
	}
	if minted.IsZero() {
		return coin.Coin{}, errors.Wrap(errors.ErrAmount, "deposit too small to mint a share")
	}

	receipt, err := coin.FromBaseUnits(minted, pool.ReceiptTicker)
	if err != nil {
		return coin.Coin{}, errors.Wrap(err, "receipt")
	}
	newReserve, err := coin.FromBaseUnits(reserve.Add(deposit), pool.Ticker)
	if err != nil {
		return coin.Coin{}, errors.Wrap(err, "reserve")
	}
	newShares, err := coin.FromBaseUnits(shares.Add(minted), pool.ReceiptTicker)
	if err != nil {
		return coin.Coin{}, errors.Wrap(err, "shares")
	}
	pool.Reserve = &newReserve
	pool.Shares = &newShares
	if _, err := c.pools.Put(db, []byte(pool.Ticker), pool); err != nil {
		return coin.Coin{}, errors.Wrap(err, "cannot save pool")
	}

	if err := c.cash.CoinMint(db, beneficiary, receipt); err != nil {
		return coin.Coin{}, errors.Wrap(err, "cannot mint receipt")
	}
	return receipt, nil
}

func baseUnits(c *coin.Coin) (sdkmath.Uint, error) {
	if coin.IsEmpty(c) {
		return sdkmath.ZeroUint(), nil
	}
	return c.BaseUnits()
}
