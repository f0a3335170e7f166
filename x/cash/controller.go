package cash

import (
	weave "github.com/iov-one/weave-collect"
	"github.com/iov-one/weave-collect/coin"
	"github.com/iov-one/weave-collect/errors"
)

// CoinMover is an interface for moving coins between accounts.
type CoinMover interface {
	// MoveCoins removes funds from the source account and adds them to the
	// destination account. This operation is atomic.
	MoveCoins(store weave.KVStore, src weave.Address, dest weave.Address, amount coin.Coin) error
}

// CoinMinter is an interface to create new coins.
type CoinMinter interface {
	CoinMint(store weave.KVStore, dest weave.Address, amount coin.Coin) error
}

// Balancer is an interface to query the amount of coins.
type Balancer interface {
	Balance(store weave.ReadOnlyKVStore, addr weave.Address) (coin.Coins, error)
}

// AllowanceController grants third parties the right to move funds on the
// owner's behalf, up to an approved amount.
type AllowanceController interface {
	// Approve sets the amount of given currency that spender may move
	// from owner's account. The new value replaces the previous one.
	Approve(store weave.KVStore, owner, spender weave.Address, amount coin.Coin) error
	// Allowance returns the amount of given currency spender may still move
	// from owner's account.
	Allowance(store weave.ReadOnlyKVStore, owner, spender weave.Address, ticker string) (coin.Coin, error)
	// TransferFrom moves funds from owner to dest on behalf of spender,
	// consuming spender's allowance.
	TransferFrom(store weave.KVStore, spender, owner, dest weave.Address, amount coin.Coin) error
}

// Controller is the functionality needed by cash.Handler and cash.Decorator.
// BaseController should work plenty fine, but you can add other logic if so
// desired.
type Controller interface {
	CoinMover
	CoinMinter
	Balancer
	AllowanceController
}

// BaseController is a simple implementation of controller wallet must return
// something that supports AddCoins and SubtractCoins.
type BaseController struct {
	bucket     Bucket
	allowances AllowanceBucket
}

var _ Controller = BaseController{}

// NewController returns a controller that uses given bucket to store wallet
// balances and the default allowance bucket.
func NewController(bucket Bucket) BaseController {
	return BaseController{
		bucket:     bucket,
		allowances: NewAllowanceBucket(),
	}
}

// Balance returns the amount of all coins stored under given account address.
func (c BaseController) Balance(db weave.ReadOnlyKVStore, addr weave.Address) (coin.Coins, error) {
	w, err := c.bucket.Get(db, addr)
	if err != nil {
		return nil, errors.Wrap(err, "cannot get account state")
	}
	if w == nil {
		return nil, errors.Wrap(errors.ErrNotFound, "no account")
	}
	return w.Coins(), nil
}

// MoveCoins moves the given amount from src to dest.
// If src doesn't exist, or doesn't have sufficient
// coins, it fails.
func (c BaseController) MoveCoins(store weave.KVStore,
	src weave.Address, dest weave.Address, amount coin.Coin) error {

	if !amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non-positive amount: %s", amount)
	}

	sender, err := c.bucket.Get(store, src)
	if err != nil {
		return errors.Wrap(err, "cannot load sender")
	}
	if sender == nil {
		return errors.Wrapf(errors.ErrEmpty, "empty account %s", src)
	}
	if !sender.Coins().Contains(amount) {
		return errors.Wrap(errors.ErrInsufficientAmount, "funds")
	}
	if err := sender.Subtract(amount); err != nil {
		return err
	}
	if err := c.bucket.Save(store, sender); err != nil {
		return errors.Wrap(err, "cannot save sender")
	}

	// Recipient is loaded after the sender is saved so that moving funds
	// to self is a noop.
	recipient, err := c.bucket.GetOrCreate(store, dest)
	if err != nil {
		return errors.Wrap(err, "cannot load recipient")
	}
	if err := recipient.Add(amount); err != nil {
		return err
	}
	return c.bucket.Save(store, recipient)
}

// CoinMint attempts to add the given amount of coins to the destination
// address. Fails if it overflows the wallet.
//
// Note the amount may also be negative:
// "the lord giveth and the lord taketh away"
func (c BaseController) CoinMint(store weave.KVStore,
	dest weave.Address, amount coin.Coin) error {

	recipient, err := c.bucket.GetOrCreate(store, dest)
	if err != nil {
		return err
	}
	if err := recipient.Add(amount); err != nil {
		return err
	}
	if !recipient.Coins().IsNonNegative() {
		return errors.Wrap(errors.ErrInsufficientAmount, "balance cannot be negative")
	}
	return c.bucket.Save(store, recipient)
}

// Approve sets spender's allowance over owner's funds in the currency of the
// amount.
func (c BaseController) Approve(store weave.KVStore, owner, spender weave.Address, amount coin.Coin) error {
	if err := amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	if !amount.IsNonNegative() {
		return errors.Wrap(errors.ErrAmount, "negative allowance")
	}
	a, err := c.allowances.Load(store, owner, spender)
	if err != nil {
		return errors.Wrap(err, "cannot load allowance")
	}
	if err := a.setAmount(amount); err != nil {
		return err
	}
	_, err = c.allowances.Put(store, AllowanceKey(owner, spender), a)
	return err
}

// Allowance returns how much of given currency spender may move from owner's
// account.
func (c BaseController) Allowance(store weave.ReadOnlyKVStore, owner, spender weave.Address, ticker string) (coin.Coin, error) {
	a, err := c.allowances.Load(store, owner, spender)
	if err != nil {
		return coin.Coin{}, errors.Wrap(err, "cannot load allowance")
	}
	return a.Amount(ticker), nil
}

// TransferFrom moves the amount from owner to dest. Spender must hold a
// sufficient allowance, which is reduced by the amount.
func (c BaseController) TransferFrom(store weave.KVStore, spender, owner, dest weave.Address, amount coin.Coin) error {
	if !amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non-positive amount: %s", amount)
	}
	a, err := c.allowances.Load(store, owner, spender)
	if err != nil {
		return errors.Wrap(err, "cannot load allowance")
	}
	left, err := a.Amount(amount.Ticker).Subtract(amount)
	if err != nil {
		return err
	}
	if !left.IsNonNegative() {
		return errors.Wrapf(errors.ErrUnauthorized, "allowance of %s exceeded", spender)
	}
	if err := a.setAmount(left); err != nil {
		return err
	}
	if _, err := c.allowances.Put(store, AllowanceKey(owner, spender), a); err != nil {
		return errors.Wrap(err, "cannot save allowance")
	}
	return c.MoveCoins(store, owner, dest, amount)
}
