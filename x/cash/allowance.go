package cash

import (
	weave "github.com/iov-one/weave-collect"
	"github.com/iov-one/weave-collect/coin"
	"github.com/iov-one/weave-collect/errors"
	"github.com/iov-one/weave-collect/orm"
)

// AllowanceBucketName is where the spending allowances are stored.
const AllowanceBucketName = "allowance"

// Validate ensures the allowance references both parties and declares
// a normalized, non negative set of coins.
func (a *Allowance) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", a.Metadata.Validate())
	errs = errors.AppendField(errs, "Owner", a.Owner.Validate())
	errs = errors.AppendField(errs, "Spender", a.Spender.Validate())
	cs := coin.Coins(a.Coins)
	if err := cs.Validate(); err != nil {
		errs = errors.AppendField(errs, "Coins", err)
	} else if !cs.IsNonNegative() {
		errs = errors.Append(errs, errors.Field("Coins", errors.ErrAmount, "negative allowance"))
	}
	return errs
}

// AllowanceKey returns the storage key of an allowance granted by owner to
// spender.
func AllowanceKey(owner, spender weave.Address) []byte {
	key := make([]byte, 0, len(owner)+len(spender))
	key = append(key, owner...)
	return append(key, spender...)
}

// AllowanceBucket stores allowances under the owner|spender key.
type AllowanceBucket struct {
	orm.ModelBucket
}

// NewAllowanceBucket returns a bucket for managing allowances.
func NewAllowanceBucket() AllowanceBucket {
	return AllowanceBucket{
		ModelBucket: orm.NewModelBucket(AllowanceBucketName, &Allowance{}),
	}
}

// Load returns the allowance granted by owner to spender. If none exists, an
// empty allowance is returned.
func (b AllowanceBucket) Load(db weave.ReadOnlyKVStore, owner, spender weave.Address) (*Allowance, error) {
	var a Allowance
	switch err := b.One(db, AllowanceKey(owner, spender), &a); {
	case err == nil:
		return &a, nil
	case errors.ErrNotFound.Is(err):
		return &Allowance{
			Metadata: &weave.Metadata{Schema: 1},
			Owner:    owner,
			Spender:  spender,
		}, nil
	default:
		return nil, err
	}
}

// Amount returns how much of given currency spender may still move.
func (a *Allowance) Amount(ticker string) coin.Coin {
	for _, c := range a.Coins {
		if c.Ticker == ticker {
			return *c
		}
	}
	return coin.NewCoin(0, 0, ticker)
}

// setAmount replaces the allowance of the currency of c. A zero value
// removes the currency.
func (a *Allowance) setAmount(c coin.Coin) error {
	cs := make(coin.Coins, 0, len(a.Coins))
	for _, have := range a.Coins {
		if have.Ticker != c.Ticker {
			cs = append(cs, have)
		}
	}
	if !c.IsZero() {
		cpy := c
		cs = append(cs, &cpy)
	}
	normalized, err := coin.NormalizeCoins(cs)
	if err != nil {
		return err
	}
	a.Coins = normalized
	return nil
}
