package collect

import (
	weave "github.com/iov-one/weave-collect"
	"github.com/iov-one/weave-collect/errors"
	"github.com/iov-one/weave-collect/gconf"
	"github.com/iov-one/weave-collect/x/currency"
)

const optKey = "collect"

// GenesisPublication is a publication configuration loaded from the genesis
// file.
type GenesisPublication struct {
	OwnerID uint64    `json:"owner_id"`
	PubID   uint64    `json:"pub_id"`
	Config  FeeConfig `json:"config"`
}

// Initializer fulfils the Initializer interface to load data from the genesis
// file.
type Initializer struct{}

var _ weave.Initializer = (*Initializer)(nil)

// FromGenesis loads the collect configuration and all publications declared
// in the genesis file. Publications are stored as they are, including the
// collection counter. The currency of every publication must already be
// registered, so the currency genesis has to be loaded first.
func (*Initializer) FromGenesis(opts weave.Options, params weave.GenesisParams, kv weave.KVStore) error {
	var conf Configuration
	switch err := gconf.InitConfig(kv, opts, confPkg, &conf); {
	case err == nil, errors.ErrNotFound.Is(err):
	default:
		return errors.Wrap(err, "init config")
	}

	var pubs []GenesisPublication
	if err := opts.ReadOptions(optKey, &pubs); err != nil {
		return err
	}
	bucket := NewFeeConfigBucket()
	tokens := currency.NewTokenInfoBucket()
	for i, p := range pubs {
		if p.OwnerID == 0 || p.PubID == 0 {
			return errors.Wrapf(errors.ErrInput, "publication %d: owner and publication IDs required", i)
		}
		c := p.Config
		if c.Metadata == nil {
			c.Metadata = &weave.Metadata{Schema: 1}
		}
		if err := c.Validate(); err != nil {
			return errors.Wrapf(err, "publication %d", i)
		}
		switch ok, err := tokens.IsRegistered(kv, c.Amount.Ticker); {
		case err != nil:
			return errors.Wrapf(err, "publication %d", i)
		case !ok:
			return errors.Wrapf(ErrInvalidParameters, "publication %d: currency %q not whitelisted", i, c.Amount.Ticker)
		}
		if err := bucket.Create(kv, PublicationKey(p.OwnerID, p.PubID), &c); err != nil {
			return errors.Wrapf(err, "publication %d", i)
		}
	}
	return nil
}
