package vault

import (
	weave "github.com/iov-one/weave-collect"
	"github.com/iov-one/weave-collect/coin"
	"github.com/iov-one/weave-collect/errors"
	"github.com/iov-one/weave-collect/orm"
)

var _ orm.Model = (*Pool)(nil)

func (p *Pool) Validate() error {
	var err error
	err = errors.AppendField(err, "Metadata", p.Metadata.Validate())
	if !coin.IsCC(p.Ticker) {
		err = errors.Append(err, errors.Field("Ticker", errors.ErrCurrency, "invalid ticker %q", p.Ticker))
	}
	if !coin.IsCC(p.ReceiptTicker) {
		err = errors.Append(err, errors.Field("ReceiptTicker", errors.ErrCurrency, "invalid ticker %q", p.ReceiptTicker))
	} else if p.ReceiptTicker == p.Ticker {
		err = errors.Append(err, errors.Field("ReceiptTicker", errors.ErrCurrency, "must differ from the underlying ticker"))
	}
	err = errors.AppendField(err, "Reserve", validateTotal(p.Reserve, p.Ticker))
	err = errors.AppendField(err, "Shares", validateTotal(p.Shares, p.ReceiptTicker))
	return err
}

func validateTotal(c *coin.Coin, ticker string) error {
	if coin.IsEmpty(c) {
		return nil
	}
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Ticker != ticker {
		return errors.Wrapf(errors.ErrCurrency, "want %s, got %s", ticker, c.Ticker)
	}
	if !c.IsNonNegative() {
		return errors.Wrap(errors.ErrAmount, "negative total")
	}
	return nil
}

// ReserveAddress returns the address of the account that holds all funds
// deposited into the pool of given ticker.
func ReserveAddress(ticker string) weave.Address {
	return weave.NewCondition("vault", "reserve", []byte(ticker)).Address()
}

// PoolBucket stores pools, using the underlying ticker as the key.
type PoolBucket struct {
	orm.ModelBucket
}

func NewPoolBucket() *PoolBucket {
	return &PoolBucket{
		ModelBucket: orm.NewModelBucket("vault", &Pool{}),
	}
}

// Pool returns the pool of given underlying ticker. ErrNotFound is returned
// if no such pool exists.
func (b *PoolBucket) Pool(db weave.ReadOnlyKVStore, ticker string) (*Pool, error) {
	var p Pool
	if err := b.One(db, []byte(ticker), &p); err != nil {
		return nil, errors.Wrapf(err, "pool %s", ticker)
	}
	return &p, nil
}

// Create stores a new, empty pool.
func (b *PoolBucket) Create(db weave.KVStore, p *Pool) error {
	switch err := b.Has(db, []byte(p.Ticker)); {
	case err == nil:
		return errors.Wrapf(errors.ErrDuplicate, "pool %s", p.Ticker)
	case !errors.ErrNotFound.Is(err):
		return err
	}
	_, err := b.Put(db, []byte(p.Ticker), p)
	return err
}
