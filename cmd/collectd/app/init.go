package app

import (
	"encoding/json"
	"fmt"

	weave "github.com/iov-one/weave-collect"
	"github.com/iov-one/weave-collect/app"
	"github.com/iov-one/weave-collect/coin"
	"github.com/iov-one/weave-collect/crypto"
	"github.com/iov-one/weave-collect/x/cash"
	"github.com/iov-one/weave-collect/x/collect"
	"github.com/iov-one/weave-collect/x/currency"
	"github.com/iov-one/weave-collect/x/vault"
)

// GenInitOptions will produce some basic options for one rich
// account, to use for dev mode. The same account acts as the
// collection hub, the treasury and the configuration owner.
//
// You can set the ticker as the first argument and the account
// address (hex) as the second.
func GenInitOptions(args []string) (json.RawMessage, error) {
	ticker := "IOV"
	if len(args) > 0 {
		ticker = args[0]
		// the yield receipt ticker is derived by prefixing a Y
		if !coin.IsCC(ticker) || !coin.IsCC("Y"+ticker) {
			return nil, fmt.Errorf("invalid ticker %s", ticker)
		}
	}

	var addr weave.Address
	if len(args) > 1 {
		a, err := weave.ParseAddress(args[1])
		if err != nil {
			return nil, err
		}
		addr = a
	} else {
		// if no address provided, auto-generate one
		// and print out the keys
		bz, keys, err := GenerateCoinKey()
		if err != nil {
			return nil, err
		}
		addr = bz
		fmt.Println(keys)
	}

	return GenesisState(addr, ticker, 123456789)
}

// GenesisState returns the application state of a chain with one funded
// account that also administers every extension.
func GenesisState(admin weave.Address, ticker string, whole int64) (json.RawMessage, error) {
	state := map[string]interface{}{
		"cash": []cash.GenesisAccount{
			{Address: admin, Coins: []*coin.Coin{coin.NewCoinp(whole, 0, ticker)}},
		},
		"currencies": []map[string]string{
			{"ticker": ticker, "name": "Main token"},
			{"ticker": "Y" + ticker, "name": "Yield receipt"},
		},
		"vaults": []map[string]string{
			{"ticker": ticker, "receipt_ticker": "Y" + ticker},
		},
		"conf": map[string]interface{}{
			"cash": cash.Configuration{
				Metadata:         &weave.Metadata{Schema: 1},
				Owner:            admin,
				CollectorAddress: admin,
			},
			"collect": collect.Configuration{
				Metadata:       &weave.Metadata{Schema: 1},
				Owner:          admin,
				Hub:            admin,
				Treasury:       admin,
				TreasuryFeeBps: 500,
			},
		},
		"collect": []collect.GenesisPublication{},
	}
	return json.MarshalIndent(state, "", "  ")
}

// Initializers returns the genesis loaders of every extension.
func Initializers() weave.Initializer {
	return app.ChainInitializers(
		&cash.Initializer{},
		currency.Initializer{},
		&vault.Initializer{},
		&collect.Initializer{},
	)
}

type output struct {
	Pubkey *crypto.PublicKey  `json:"pub_key"`
	Secret *crypto.PrivateKey `json:"secret"`
}

// GenerateCoinKey returns the address of a public key,
// along with a json representation of the keys.
// You can give coins to this address and
// import the keys in the js client to use them
func GenerateCoinKey() (weave.Address, string, error) {
	privKey := crypto.GenPrivKeyEd25519()
	pubKey := privKey.PublicKey()
	addr := pubKey.Address()

	out := output{Pubkey: pubKey, Secret: privKey}
	keys, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, "", err
	}

	return addr, string(keys), nil
}
