package cash

import (
	weave "github.com/iov-one/weave-collect"
	"github.com/iov-one/weave-collect/coin"
	"github.com/iov-one/weave-collect/errors"
	"github.com/iov-one/weave-collect/x"
)

// FeeTx is implemented by transactions that declare a fee.
type FeeTx interface {
	GetFees() *FeeInfo
}

// FeeDecorator charges the transaction fee before the rest of the stack
// runs. Fees are moved to the collector address of the cash configuration
// and must reach the configured minimal fee. Without a configuration no fee
// is charged.
type FeeDecorator struct {
	auth x.Authenticator
	ctrl CoinMover
}

var _ weave.Decorator = FeeDecorator{}

// NewFeeDecorator returns a decorator charging the transaction fee with
// ctrl. The payer must be authorized by auth.
func NewFeeDecorator(auth x.Authenticator, ctrl CoinMover) FeeDecorator {
	return FeeDecorator{auth: auth, ctrl: ctrl}
}

func (d FeeDecorator) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx, next weave.Checker) (*weave.CheckResult, error) {
	paid, err := d.collect(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	res, err := next.Check(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if paid != nil {
		// Priority grows by one for every fractional unit paid.
		res.GasPayment += paid.Whole*coin.FracUnit + paid.Fractional
	}
	return res, nil
}

func (d FeeDecorator) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx, next weave.Deliverer) (*weave.DeliverResult, error) {
	if _, err := d.collect(ctx, db, tx); err != nil {
		return nil, err
	}
	return next.Deliver(ctx, db, tx)
}

// collect returns the fee moved to the collector, or nil when nothing was
// charged.
func (d FeeDecorator) collect(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*coin.Coin, error) {
	conf, err := loadConf(db)
	if errors.ErrNotFound.Is(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "load configuration")
	}

	info := d.feeInfo(ctx, tx)
	if err := checkFee(info, conf.MinimalFee); err != nil {
		return nil, err
	}
	if coin.IsEmpty(info.GetFees()) {
		return nil, nil
	}
	if !d.auth.HasAddress(ctx, info.Payer) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "fee payer signature missing")
	}
	if err := d.ctrl.MoveCoins(db, info.Payer, conf.CollectorAddress, *info.Fees); err != nil {
		return nil, errors.Wrap(err, "pay fee")
	}
	return info.Fees, nil
}

// feeInfo returns the fee declared by tx. The payer defaults to the main
// signer.
func (d FeeDecorator) feeInfo(ctx weave.Context, tx weave.Tx) *FeeInfo {
	ftx, ok := tx.(FeeTx)
	if !ok {
		return nil
	}
	var payer weave.Address
	if signer := x.MainSigner(ctx, d.auth); signer != nil {
		payer = signer.Address()
	}
	return ftx.GetFees().DefaultPayer(payer)
}

// checkFee ensures the declared fee satisfies the minimal fee. A zero
// minimum accepts any valid fee, including none.
func checkFee(info *FeeInfo, min *coin.Coin) error {
	required := min != nil && !min.IsZero()
	fee := info.GetFees()
	if coin.IsEmpty(fee) {
		if required {
			return errors.Wrap(errors.ErrAmount, "fee required")
		}
		return nil
	}
	if err := info.Validate(); err != nil {
		return errors.Wrap(err, "fee")
	}
	if !required {
		return nil
	}
	switch {
	case min.Ticker == "":
		return errors.Wrap(errors.ErrCurrency, "minimal fee without ticker")
	case !fee.SameType(*min):
		return errors.Wrapf(errors.ErrCurrency, "fee must be paid in %s, got %s", min.Ticker, fee.Ticker)
	case !fee.IsGTE(*min):
		return errors.Wrapf(errors.ErrAmount, "fee %s below minimum %s", fee, min)
	}
	return nil
}
