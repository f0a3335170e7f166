package vault

import (
	weave "github.com/iov-one/weave-collect"
	"github.com/iov-one/weave-collect/errors"
)

// Initializer fulfils the Initializer interface to load data from the genesis
// file
type Initializer struct{}

var _ weave.Initializer = (*Initializer)(nil)

// FromGenesis creates an empty pool for every declared underlying ticker.
func (*Initializer) FromGenesis(opts weave.Options, params weave.GenesisParams, kv weave.KVStore) error {
	var pools []struct {
		Ticker        string `json:"ticker"`
		ReceiptTicker string `json:"receipt_ticker"`
	}
	if err := opts.ReadOptions("vaults", &pools); err != nil {
		return err
	}
	bucket := NewPoolBucket()
	for _, p := range pools {
		pool := &Pool{
			Metadata:      &weave.Metadata{Schema: 1},
			Ticker:        p.Ticker,
			ReceiptTicker: p.ReceiptTicker,
		}
		if err := bucket.Create(kv, pool); err != nil {
			return errors.Wrapf(err, "pool %q", p.Ticker)
		}
	}
	return nil
}
