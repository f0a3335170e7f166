package vault

import (
	"encoding/json"
	"testing"

	weave "github.com/iov-one/weave-collect"
	"github.com/iov-one/weave-collect/coin"
	"github.com/iov-one/weave-collect/store"
)

func TestGenesis(t *testing.T) {
	const genesis = `
		{
			"vaults": [
				{"ticker": "IOV", "receipt_ticker": "YIOV"}
			]
		}
	`
	var opts weave.Options
	if err := json.Unmarshal([]byte(genesis), &opts); err != nil {
		t.Fatalf("cannot unmarshal genesis: %s", err)
	}

	db := store.MemStore()
	var ini Initializer
	if err := ini.FromGenesis(opts, weave.GenesisParams{}, db); err != nil {
		t.Fatalf("cannot load genesis: %s", err)
	}

	pool, err := NewPoolBucket().Pool(db, "IOV")
	if err != nil {
		t.Fatalf("cannot load pool: %s", err)
	}
	if pool.ReceiptTicker != "YIOV" {
		t.Fatalf("unexpected receipt ticker: %q", pool.ReceiptTicker)
	}
	if !coin.IsEmpty(pool.GetReserve()) {
		t.Fatalf("unexpected reserve: %v", pool.Reserve)
	}
}
