package coin

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/iov-one/weave-collect/errors"
)

var humanCoinFormatRx = regexp.MustCompile(`^(-?)\s*(\d+)(?:\.(\d{1,9}))?\s*([A-Z]{3,4})$`)

// ParseHumanFormat parses a human readable coin representation in the
// format "<whole>[.<fractional>] <ticker>", for example "12.5 IOV".
func ParseHumanFormat(h string) (Coin, error) {
	m := humanCoinFormatRx.FindStringSubmatch(strings.TrimSpace(h))
	if m == nil {
		return Coin{}, errors.Wrapf(errors.ErrInput, "invalid coin format %q", h)
	}

	whole, err := strconv.ParseInt(m[2], 10, 64)
	if err != nil {
		return Coin{}, errors.Wrapf(errors.ErrInput, "invalid whole value: %s", err)
	}
	var frac int64
	if m[3] != "" {
		// right pad to nine digits, "5" is 500000000 base units
		frac, err = strconv.ParseInt(m[3]+strings.Repeat("0", 9-len(m[3])), 10, 64)
		if err != nil {
			return Coin{}, errors.Wrapf(errors.ErrInput, "invalid fractional value: %s", err)
		}
	}
	if m[1] == "-" {
		whole, frac = -whole, -frac
	}
	return NewCoin(whole, frac, m[4]), nil
}

// String provides a human readable representation of the coin. For a valid
// coin the result can be parsed back with ParseHumanFormat.
func (c Coin) String() string {
	if n, err := c.normalize(); err == nil {
		c = n
	}

	var b strings.Builder
	if c.Whole == 0 && c.Fractional < 0 {
		b.WriteString("-")
	}
	b.WriteString(strconv.FormatInt(c.Whole, 10))
	if f := c.Fractional; f != 0 {
		if f < 0 {
			f = -f
		}
		digits := strconv.FormatInt(f, 10)
		digits = strings.Repeat("0", 9-len(digits)) + digits
		b.WriteString("." + strings.TrimRight(digits, "0"))
	}
	if c.Ticker != "" {
		b.WriteString(" " + c.Ticker)
	}
	return b.String()
}

// UnmarshalJSON accepts both the human readable string format and the
// structured object format.
func (c *Coin) UnmarshalJSON(raw []byte) error {
	var human string
	if err := json.Unmarshal(raw, &human); err == nil {
		parsed, err := ParseHumanFormat(human)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	}

	// An alias type drops the UnmarshalJSON method and avoids recursion.
	type plain Coin
	var p plain
	if err := json.Unmarshal(raw, &p); err != nil {
		return err
	}
	*c = Coin(p)
	return nil
}
