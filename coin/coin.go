package coin

import (
	"regexp"

	"github.com/iov-one/weave-collect/errors"
)

// IsCC returns true for a valid currency code, three or four upper case
// letters.
var IsCC = regexp.MustCompile(`^[A-Z]{3,4}$`).MatchString

// FracUnit is the number of fractional units in one whole.
const FracUnit int64 = 1000000000

// A coin value is bound to (-10^15, 10^15) wholes.
const (
	maxWhole int64 = 999999999999999
	maxFrac        = FracUnit - 1
)

func NewCoin(whole, fractional int64, ticker string) Coin {
	return Coin{Whole: whole, Fractional: fractional, Ticker: ticker}
}

func NewCoinp(whole, fractional int64, ticker string) *Coin {
	return &Coin{Whole: whole, Fractional: fractional, Ticker: ticker}
}

// IsEmpty returns true for a nil or zero coin.
func IsEmpty(c *Coin) bool {
	return c == nil || c.IsZero()
}

func (c *Coin) Clone() *Coin {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}

// Add sums two coins of the same currency. A zero coin without a ticker
// is neutral and can be added to any currency.
func (c Coin) Add(o Coin) (Coin, error) {
	switch {
	case isBlank(c):
		return o, nil
	case isBlank(o):
		return c, nil
	case !c.SameType(o):
		return Coin{}, errors.Wrapf(errors.ErrCurrency, "cannot add %s to %s", o.Ticker, c.Ticker)
	}
	sum := Coin{Whole: c.Whole + o.Whole, Fractional: c.Fractional + o.Fractional, Ticker: c.Ticker}
	return sum.normalize()
}

func isBlank(c Coin) bool {
	return c.Ticker == "" && c.IsZero()
}

// Subtract returns c decreased by amount. The result may be negative.
func (c Coin) Subtract(amount Coin) (Coin, error) {
	return c.Add(amount.Negative())
}

func (c Coin) Negative() Coin {
	return Coin{Whole: -c.Whole, Fractional: -c.Fractional, Ticker: c.Ticker}
}

func (c Coin) Equals(o Coin) bool   { return c == o }
func (c Coin) SameType(o Coin) bool { return c.Ticker == o.Ticker }
func (c Coin) IsZero() bool         { return c.Whole == 0 && c.Fractional == 0 }
func (c Coin) IsPositive() bool     { return c.sign() > 0 }
func (c Coin) IsNonNegative() bool  { return c.sign() >= 0 }

// sign of a normalized coin.
func (c Coin) sign() int {
	switch {
	case c.Whole > 0, c.Whole == 0 && c.Fractional > 0:
		return 1
	case c.Whole < 0, c.Fractional < 0:
		return -1
	}
	return 0
}

// IsGTE returns true if c is at least o and both are of the same currency.
// Both coins must be normalized.
func (c Coin) IsGTE(o Coin) bool {
	if !c.SameType(o) {
		return false
	}
	return c.Whole > o.Whole || (c.Whole == o.Whole && c.Fractional >= o.Fractional)
}

// Validate checks the currency code and the value range. Negative values
// are valid but both parts must share a sign.
func (c Coin) Validate() error {
	var errs error
	if !IsCC(c.Ticker) {
		errs = errors.Append(errs, errors.Wrapf(errors.ErrCurrency, "invalid currency code %q", c.Ticker))
	}
	if outOfRange(c.Whole, maxWhole) {
		errs = errors.Append(errs, errors.Wrap(errors.ErrOverflow, "whole"))
	}
	if outOfRange(c.Fractional, maxFrac) {
		errs = errors.Append(errs, errors.Wrap(errors.ErrOverflow, "fractional"))
	}
	if (c.Whole > 0 && c.Fractional < 0) || (c.Whole < 0 && c.Fractional > 0) {
		errs = errors.Append(errs, errors.Wrap(errors.ErrState, "whole and fractional signs differ"))
	}
	return errs
}

func outOfRange(v, limit int64) bool {
	return v > limit || v < -limit
}

// normalize moves fractional overflow into the whole part and gives both
// parts the same sign.
func (c Coin) normalize() (Coin, error) {
	c.Whole, c.Fractional = c.Whole+c.Fractional/FracUnit, c.Fractional%FracUnit
	if c.Whole > 0 && c.Fractional < 0 {
		c.Whole, c.Fractional = c.Whole-1, c.Fractional+FracUnit
	}
	if c.Whole < 0 && c.Fractional > 0 {
		c.Whole, c.Fractional = c.Whole+1, c.Fractional-FracUnit
	}
	if outOfRange(c.Whole, maxWhole) {
		return Coin{}, errors.ErrOverflow
	}
	return c, nil
}
