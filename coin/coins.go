package coin

import (
	"sort"

	"github.com/iov-one/weave-collect/errors"
)

// Coins holds amounts of distinct currencies. The set is kept sorted by
// ticker and never contains a zero amount.
type Coins []*Coin

func (cs Coins) Clone() Coins {
	if cs == nil {
		return nil
	}
	res := make(Coins, len(cs))
	for i, c := range cs {
		res[i] = c.Clone()
	}
	return res
}

// find returns the position of ticker in the set, or where it would be
// inserted.
func (cs Coins) find(ticker string) (int, bool) {
	i := sort.Search(len(cs), func(i int) bool { return cs[i].Ticker >= ticker })
	return i, i < len(cs) && cs[i].Ticker == ticker
}

// Add returns a new set increased by c. A currency summing up to zero
// leaves the set.
func (cs Coins) Add(c Coin) (Coins, error) {
	if c.IsZero() {
		return cs, nil
	}
	i, found := cs.find(c.Ticker)
	if !found {
		res := make(Coins, 0, len(cs)+1)
		res = append(res, cs[:i]...)
		res = append(res, c.Clone())
		return append(res, cs[i:]...), nil
	}

	sum, err := cs[i].Add(c)
	if err != nil {
		return nil, err
	}
	res := make(Coins, 0, len(cs))
	res = append(res, cs[:i]...)
	if !sum.IsZero() {
		res = append(res, &sum)
	}
	return append(res, cs[i+1:]...), nil
}

// Subtract returns a new set decreased by c. Amounts may become negative.
func (cs Coins) Subtract(c Coin) (Coins, error) {
	return cs.Add(c.Negative())
}

// Combine returns the sum of both sets.
func (cs Coins) Combine(o Coins) (Coins, error) {
	res := cs
	for _, c := range o {
		var err error
		if res, err = res.Add(*c); err != nil {
			return nil, err
		}
	}
	return res.Clone(), nil
}

// Contains returns true if the set holds at least c.
func (cs Coins) Contains(c Coin) bool {
	i, found := cs.find(c.Ticker)
	return found && cs[i].IsGTE(c)
}

func (cs Coins) IsEmpty() bool {
	return len(cs) == 0
}

// IsPositive returns true for a non empty set of positive amounts.
func (cs Coins) IsPositive() bool {
	return len(cs) > 0 && cs.IsNonNegative()
}

// IsNonNegative returns true if every amount is positive. An empty set
// qualifies.
func (cs Coins) IsNonNegative() bool {
	for _, c := range cs {
		if !c.IsPositive() {
			return false
		}
	}
	return true
}

func (cs Coins) Equals(o Coins) bool {
	if len(cs) != len(o) {
		return false
	}
	for i, c := range cs {
		if !c.Equals(*o[i]) {
			return false
		}
	}
	return true
}

// Validate requires every coin to be valid and the set to be normalized.
func (cs Coins) Validate() error {
	var errs error
	for i, c := range cs {
		if err := c.Validate(); err != nil {
			errs = errors.Append(errs, errors.Wrapf(err, "coin %d", i))
		}
		if c.IsZero() {
			errs = errors.Append(errs, errors.Wrapf(errors.ErrState, "coin %d is zero", i))
		}
		if i > 0 && cs[i-1].Ticker >= c.Ticker {
			errs = errors.Append(errs, errors.Wrapf(errors.ErrState, "coin %d out of order", i))
		}
	}
	return errs
}

// NormalizeCoins sums coins of the same currency into a normalized set.
// Nil and zero values are dropped.
func NormalizeCoins(cs Coins) (Coins, error) {
	var res Coins
	for _, c := range cs {
		if IsEmpty(c) {
			continue
		}
		var err error
		if res, err = res.Add(*c); err != nil {
			return nil, errors.Wrap(err, "normalize")
		}
	}
	return res, nil
}
