package collect

import (
	"context"
	"testing"
	"time"

	"github.com/gogo/protobuf/proto"
	weave "github.com/iov-one/weave-collect"
	"github.com/iov-one/weave-collect/coin"
	"github.com/iov-one/weave-collect/errors"
	"github.com/iov-one/weave-collect/gconf"
	"github.com/iov-one/weave-collect/store"
	"github.com/iov-one/weave-collect/weavetest"
	"github.com/iov-one/weave-collect/x/cash"
	"github.com/iov-one/weave-collect/x/currency"
	"github.com/iov-one/weave-collect/x/vault"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

type staticSnapshot struct {
	whitelist      map[string]bool
	treasury       weave.Address
	treasuryFeeBps uint32
	hub            weave.Address
}

func (s *staticSnapshot) IsWhitelisted(ticker string) (bool, error) { return s.whitelist[ticker], nil }
func (s *staticSnapshot) Treasury() weave.Address                   { return s.treasury }
func (s *staticSnapshot) TreasuryFeeBps() uint32                    { return s.treasuryFeeBps }
func (s *staticSnapshot) Hub() weave.Address                        { return s.hub }

func rawConfig(t testing.TB, ic *InitConfig) []byte {
	t.Helper()
	raw, err := proto.Marshal(ic)
	require.NoError(t, err)
	return raw
}

// chain is a fully configured state with the cash, currency and vault
// extensions ready to serve collections.
type chain struct {
	db       weave.CacheableKVStore
	ctx      weave.Context
	cash     cash.BaseController
	vault    vault.Controller
	hub      weave.Condition
	treasury weave.Address
}

func newChain(t testing.TB, treasuryFeeBps uint32) *chain {
	t.Helper()
	db := store.MemStore()
	c := &chain{
		db:       db,
		ctx:      weave.WithBlockTime(context.Background(), now),
		cash:     cash.NewController(cash.NewBucket()),
		hub:      weavetest.NewCondition(),
		treasury: weavetest.NewCondition().Address(),
	}
	c.vault = vault.NewController(c.cash)

	conf := &Configuration{
		Metadata:       &weave.Metadata{Schema: 1},
		Hub:            c.hub.Address(),
		Treasury:       c.treasury,
		TreasuryFeeBps: treasuryFeeBps,
	}
	require.NoError(t, gconf.Save(db, confPkg, conf))

	tokens := currency.NewTokenInfoBucket()
	for _, ticker := range []string{"IOV", "ETH"} {
		info := &currency.TokenInfo{Metadata: &weave.Metadata{Schema: 1}, Name: ticker + " token"}
		require.NoError(t, tokens.Create(db, ticker, info))
	}

	pool := &vault.Pool{Metadata: &weave.Metadata{Schema: 1}, Ticker: "IOV", ReceiptTicker: "YIOV"}
	require.NoError(t, vault.NewPoolBucket().Create(db, pool))
	return c
}

// fund mints coins to the collector and approves the engine to spend them.
func (c *chain) fund(t testing.TB, collector weave.Address, amount coin.Coin) {
	t.Helper()
	require.NoError(t, c.cash.CoinMint(c.db, collector, amount))
	require.NoError(t, c.cash.Approve(c.db, collector, EngineAddress, amount))
}

func (c *chain) initialize(t testing.TB, ownerID, pubID uint64, ic *InitConfig) {
	t.Helper()
	h := NewInitializeHandler(&weavetest.Auth{Signer: c.hub}, NewRegistry())
	tx := &weavetest.Tx{Msg: &InitializeMsg{
		Metadata:  &weave.Metadata{Schema: 1},
		OwnerID:   ownerID,
		PubID:     pubID,
		RawConfig: rawConfig(t, ic),
	}}
	_, err := h.Deliver(c.ctx, c.db, tx)
	require.NoError(t, err)
}

func (c *chain) balance(t testing.TB, addr weave.Address, ticker string) coin.Coin {
	t.Helper()
	coins, err := c.cash.Balance(c.db, addr)
	if errors.ErrNotFound.Is(err) {
		return coin.NewCoin(0, 0, ticker)
	}
	require.NoError(t, err)
	for _, have := range coins {
		if have.Ticker == ticker {
			return *have
		}
	}
	return coin.NewCoin(0, 0, ticker)
}

func (c *chain) assertBalance(t testing.TB, addr weave.Address, want coin.Coin) {
	t.Helper()
	got := c.balance(t, addr, want.Ticker)
	if !want.Equals(got) {
		t.Fatalf("want %s balance, got %s", want, got)
	}
}
