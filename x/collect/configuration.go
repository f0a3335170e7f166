package collect

import (
	"github.com/iov-one/weave-collect/errors"
	"github.com/iov-one/weave-collect/gconf"
)

const confPkg = "collect"

func (c *Configuration) Validate() error {
	var err error
	err = errors.AppendField(err, "Metadata", c.Metadata.Validate())
	if len(c.Owner) != 0 {
		err = errors.AppendField(err, "Owner", c.Owner.Validate())
	}
	err = errors.AppendField(err, "Hub", c.Hub.Validate())
	err = errors.AppendField(err, "Treasury", c.Treasury.Validate())
	if c.TreasuryFeeBps > BpsMax {
		err = errors.Append(err, errors.Field("TreasuryFeeBps", errors.ErrInput, "cannot exceed %d", BpsMax))
	}
	return err
}

func loadConf(db gconf.ReadStore) (*Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, confPkg, &conf); err != nil {
		return nil, errors.Wrap(err, "load configuration")
	}
	return &conf, nil
}
