package currency

import (
	weave "github.com/iov-one/weave-collect"
	"github.com/iov-one/weave-collect/errors"
)

// GenesisToken is a "currencies" genesis entry.
type GenesisToken struct {
	Ticker string `json:"ticker"`
	Name   string `json:"name"`
}

// Initializer registers the genesis tokens. The registered tickers are the
// currencies accepted as publication prices.
type Initializer struct{}

var _ weave.Initializer = Initializer{}

func (Initializer) FromGenesis(opts weave.Options, params weave.GenesisParams, db weave.KVStore) error {
	var tokens []GenesisToken
	if err := opts.ReadOptions("currencies", &tokens); err != nil {
		return errors.Wrap(err, "currencies")
	}
	bucket := NewTokenInfoBucket()
	for i, t := range tokens {
		if err := bucket.Create(db, t.Ticker, newTokenInfo(t.Name)); err != nil {
			return errors.Wrapf(err, "token %d (%s)", i, t.Ticker)
		}
	}
	return nil
}
