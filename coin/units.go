package coin

import (
	sdkmath "cosmossdk.io/math"
	"github.com/iov-one/weave-collect/errors"
)

var fracUnit = sdkmath.NewUint(uint64(FracUnit))

// BaseUnits returns the amount of a non negative coin expressed in the
// smallest indivisible unit (10^-9 of a whole).
func (c Coin) BaseUnits() (sdkmath.Uint, error) {
	n, err := c.normalize()
	if err != nil {
		return sdkmath.ZeroUint(), err
	}
	if !n.IsNonNegative() {
		return sdkmath.ZeroUint(), errors.Wrap(errors.ErrAmount, "negative amount has no base units")
	}
	whole := sdkmath.NewUint(uint64(n.Whole)).Mul(fracUnit)
	return whole.Add(sdkmath.NewUint(uint64(n.Fractional))), nil
}

// FromBaseUnits builds a coin of given ticker out of an amount expressed in
// base units. The result is validated against the coin value range.
func FromBaseUnits(units sdkmath.Uint, ticker string) (Coin, error) {
	whole := units.Quo(fracUnit)
	if whole.GT(sdkmath.NewUint(uint64(maxWhole))) {
		return Coin{}, errors.Wrap(errors.ErrOverflow, "base units out of coin range")
	}
	frac := units.Mod(fracUnit)
	c := NewCoin(int64(whole.Uint64()), int64(frac.Uint64()), ticker)
	if err := c.Validate(); err != nil {
		return Coin{}, err
	}
	return c, nil
}

// MulDivFloor returns floor(units * num / den). It panics when den is zero.
func MulDivFloor(units sdkmath.Uint, num, den uint64) sdkmath.Uint {
	if den == 0 {
		panic("zero denominator")
	}
	return units.MulUint64(num).QuoUint64(den)
}
