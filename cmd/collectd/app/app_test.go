package app

import (
	"testing"
	"time"

	"github.com/gogo/protobuf/proto"
	weave "github.com/iov-one/weave-collect"
	"github.com/iov-one/weave-collect/coin"
	"github.com/iov-one/weave-collect/crypto"
	"github.com/iov-one/weave-collect/store/iavl"
	"github.com/iov-one/weave-collect/weavetest"
	"github.com/iov-one/weave-collect/x/cash"
	"github.com/iov-one/weave-collect/x/collect"
	"github.com/iov-one/weave-collect/x/sigs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/libs/log"
)

const chainID = "collect-test-chain"

// signer keeps track of the sequence of a private key.
type signer struct {
	key *crypto.PrivateKey
	seq int64
}

func newSigner() *signer {
	return &signer{key: crypto.GenPrivKeyEd25519()}
}

func (s *signer) address() weave.Address {
	return s.key.PublicKey().Address()
}

func (s *signer) sign(t testing.TB, tx *Tx) *Tx {
	t.Helper()
	sig, err := sigs.SignTx(s.key, tx, chainID, s.seq)
	require.NoError(t, err)
	tx.Signatures = append(tx.Signatures, sig)
	s.seq++
	return tx
}

func TestCollectApp(t *testing.T) {
	hub := newSigner()
	collector := newSigner()
	recipient := weavetest.NewCondition().Address()

	state, err := GenesisState(hub.address(), "IOV", 1000)
	require.NoError(t, err)

	runner := weavetest.NewWeaveRunner(t,
		NewApplication(iavl.MockCommitStore(), log.NewNopLogger(), false),
		chainID,
		time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC))
	runner.InitChain(state)

	// The hub funds the collector, who then allows the collection engine
	// to pull the price of a single collection.
	runner.InBlock(func(wapp weavetest.WeaveApp) error {
		return wapp.DeliverTx(hub.sign(t, &Tx{
			CashSendMsg: &cash.SendMsg{
				Metadata:    &weave.Metadata{Schema: 1},
				Source:      hub.address(),
				Destination: collector.address(),
				Amount:      coin.NewCoinp(100, 0, "IOV"),
			},
		}))
	})
	runner.InBlock(func(wapp weavetest.WeaveApp) error {
		return wapp.DeliverTx(collector.sign(t, &Tx{
			CashApproveMsg: &cash.ApproveMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Owner:    collector.address(),
				Spender:  collect.EngineAddress,
				Amount:   coin.NewCoinp(10, 0, "IOV"),
			},
		}))
	})

	raw, err := proto.Marshal(&collect.InitConfig{
		Amount:    coin.NewCoinp(10, 0, "IOV"),
		Recipient: recipient,
	})
	require.NoError(t, err)
	runner.InBlock(func(wapp weavetest.WeaveApp) error {
		return wapp.DeliverTx(hub.sign(t, &Tx{
			CollectInitializeMsg: &collect.InitializeMsg{
				Metadata:  &weave.Metadata{Schema: 1},
				OwnerID:   1,
				PubID:     1,
				RawConfig: raw,
			},
		}))
	})

	collectTx := func(declared coin.Coin) *Tx {
		return hub.sign(t, &Tx{
			CollectCollectMsg: &collect.CollectMsg{
				Metadata:  &weave.Metadata{Schema: 1},
				OwnerID:   1,
				PubID:     1,
				Collector: collector.address(),
				Declared:  &declared,
			},
		})
	}

	// A declared price that differs from the configured one is rejected
	// before any state is changed.
	require.Error(t, runner.CheckTx(collectTx(coin.NewCoin(5, 0, "IOV"))))
	hub.seq--

	runner.InBlock(func(wapp weavetest.WeaveApp) error {
		return wapp.DeliverTx(collectTx(coin.NewCoin(10, 0, "IOV")))
	})

	// The default treasury fee is 500 basis points.
	assertBalance(t, runner, recipient, coin.NewCoin(9, 500000000, "IOV"))
	assertBalance(t, runner, collector.address(), coin.NewCoin(90, 0, "IOV"))
	assertBalance(t, runner, hub.address(), coin.NewCoin(900, 500000000, "IOV"))

	models, err := runner.Query("/collectconfigs", collect.PublicationKey(1, 1))
	require.NoError(t, err)
	require.Len(t, models, 1)
	var conf collect.FeeConfig
	require.NoError(t, proto.Unmarshal(models[0].Value, &conf))
	assert.Equal(t, uint64(1), conf.CurrentCollects)

	models, err = runner.Query("/collects?prefix", collect.PublicationKey(1, 1))
	require.NoError(t, err)
	require.Len(t, models, 1)
	var record collect.CollectRecord
	require.NoError(t, proto.Unmarshal(models[0].Value, &record))
	assert.Equal(t, uint64(1), record.Number)
	assert.Len(t, record.Movements, 2)
}

func assertBalance(t testing.TB, runner *weavetest.WeaveRunner, addr weave.Address, want coin.Coin) {
	t.Helper()
	models, err := runner.Query("/wallets", addr)
	require.NoError(t, err)
	require.Len(t, models, 1)
	var set cash.Set
	require.NoError(t, proto.Unmarshal(models[0].Value, &set))
	coins := coin.Coins(set.Coins)
	assert.True(t, coins.Equals(coin.Coins{&want}), "want %s, got %v", want, coins)
}
