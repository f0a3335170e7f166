package cash

import (
	"github.com/iov-one/weave-collect/coin"
	"github.com/iov-one/weave-collect/errors"
	"github.com/iov-one/weave-collect/gconf"
)

// confPkg is the gconf package name of the cash configuration.
const confPkg = "cash"

func (c *Configuration) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", c.Metadata.Validate())
	if len(c.Owner) != 0 {
		errs = errors.AppendField(errs, "Owner", c.Owner.Validate())
	}
	errs = errors.AppendField(errs, "CollectorAddress", c.CollectorAddress.Validate())
	if !coin.IsEmpty(c.MinimalFee) {
		errs = errors.AppendField(errs, "MinimalFee", validateNonNegative(*c.MinimalFee))
	}
	return errs
}

func loadConf(db gconf.ReadStore) (*Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, confPkg, &conf); err != nil {
		return nil, err
	}
	return &conf, nil
}
