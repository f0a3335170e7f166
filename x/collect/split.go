package collect

import (
	sdkmath "cosmossdk.io/math"
	"github.com/iov-one/weave-collect/coin"
	"github.com/iov-one/weave-collect/errors"
)

const (
	// BpsMax is the basis points value representing 100%.
	BpsMax = 10000

	// MaxRecipients is the maximum number of recipients of a single
	// publication.
	MaxRecipients = 5
)

// Cuts is the result of splitting a collection amount.
type Cuts struct {
	Treasury   coin.Coin
	Referral   coin.Coin
	Recipients []coin.Coin
}

// Split divides amount between the treasury, the referrer and the
// recipients. The treasury cut is taken first, the referral cut is taken from
// what is left and the rest is divided between recipients according to their
// shares. Every cut is rounded down, so the sum of all cuts can be less than
// the amount by at most one base unit per recipient.
//
// The referral cut is zero unless referral is true.
func Split(amount coin.Coin, treasuryFeeBps, referralFeeBps uint32, referral bool, recipients []*Recipient) (*Cuts, error) {
	if treasuryFeeBps > BpsMax {
		return nil, errors.Wrapf(ErrInvalidParameters, "treasury fee %d bps", treasuryFeeBps)
	}
	if referralFeeBps > BpsMax {
		return nil, errors.Wrapf(ErrInvalidParameters, "referral fee %d bps", referralFeeBps)
	}
	total, err := amount.BaseUnits()
	if err != nil {
		return nil, errors.Wrap(err, "amount")
	}

	treasury := coin.MulDivFloor(total, uint64(treasuryFeeBps), BpsMax)
	afterTreasury := total.Sub(treasury)

	referralCut := sdkmath.ZeroUint()
	if referral && referralFeeBps > 0 {
		referralCut = coin.MulDivFloor(afterTreasury, uint64(referralFeeBps), BpsMax)
	}
	distributable := afterTreasury.Sub(referralCut)

	cuts := Cuts{
		Recipients: make([]coin.Coin, len(recipients)),
	}
	if cuts.Treasury, err = coin.FromBaseUnits(treasury, amount.Ticker); err != nil {
		return nil, errors.Wrap(err, "treasury cut")
	}
	if cuts.Referral, err = coin.FromBaseUnits(referralCut, amount.Ticker); err != nil {
		return nil, errors.Wrap(err, "referral cut")
	}
	for i, r := range recipients {
		if r.ShareBps > BpsMax {
			return nil, errors.Wrapf(ErrInvalidRecipientSplits, "recipient %d share %d bps", i, r.ShareBps)
		}
		units := coin.MulDivFloor(distributable, uint64(r.ShareBps), BpsMax)
		if cuts.Recipients[i], err = coin.FromBaseUnits(units, amount.Ticker); err != nil {
			return nil, errors.Wrapf(err, "recipient %d cut", i)
		}
	}
	return &cuts, nil
}

// Total returns the sum of all cuts.
func (c *Cuts) Total() (coin.Coin, error) {
	total, err := c.Treasury.Add(c.Referral)
	if err != nil {
		return coin.Coin{}, err
	}
	for _, r := range c.Recipients {
		if total, err = total.Add(r); err != nil {
			return coin.Coin{}, err
		}
	}
	return total, nil
}
