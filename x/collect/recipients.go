package collect

import (
	"github.com/iov-one/weave-collect/errors"
)

// NormalizedRecipients returns the recipients list of the configuration. A
// configuration declaring a single recipient is converted into a list with
// one recipient owning the whole share.
func (c *InitConfig) NormalizedRecipients() ([]*Recipient, error) {
	if len(c.Recipient) != 0 {
		if len(c.Recipients) != 0 {
			return nil, errors.Wrap(ErrInvalidParameters, "both recipient and recipients declared")
		}
		return []*Recipient{{Address: c.Recipient, ShareBps: BpsMax}}, nil
	}
	rs := make([]*Recipient, len(c.Recipients))
	for i, r := range c.Recipients {
		if r == nil {
			return nil, errors.Wrapf(ErrInvalidParameters, "recipient %d missing", i)
		}
		rs[i] = &Recipient{Address: r.Address, ShareBps: r.ShareBps}
	}
	return rs, nil
}
