package collect

import (
	weave "github.com/iov-one/weave-collect"
	"github.com/iov-one/weave-collect/coin"
	"github.com/iov-one/weave-collect/errors"
	"github.com/iov-one/weave-collect/x/vault"
)

// EngineAddress is the spender that collectors must approve an allowance
// for. All funds of a collection are pulled by this address.
var EngineAddress = weave.NewCondition("collect", "engine", nil).Address()

// AllowanceSpender moves funds on behalf of an owner, within the limits of
// the allowance granted to the spender.
type AllowanceSpender interface {
	TransferFrom(db weave.KVStore, spender, owner, dest weave.Address, amount coin.Coin) error
}

// DistributionSink credits a single cut of a collection.
type DistributionSink interface {
	// Credit pulls amount from the collector and credits the recipient.
	Credit(db weave.KVStore, collector, recipient weave.Address, amount coin.Coin) error
}

// TransferSink credits recipients by transferring the funds directly.
type TransferSink struct {
	cash AllowanceSpender
}

var _ DistributionSink = TransferSink{}

// NewTransferSink returns a sink paying recipients in the collected coin.
func NewTransferSink(cash AllowanceSpender) TransferSink {
	return TransferSink{cash: cash}
}

// Credit moves amount from the collector allowance to recipient.
func (s TransferSink) Credit(db weave.KVStore, collector, recipient weave.Address, amount coin.Coin) error {
	return s.cash.TransferFrom(db, EngineAddress, collector, recipient, amount)
}

// YieldSink deposits the funds into the vault and credits the recipient with
// the vault receipt.
type YieldSink struct {
	cash  AllowanceSpender
	vault vault.Depositor
}

var _ DistributionSink = YieldSink{}

// NewYieldSink returns a sink depositing collected funds with v.
func NewYieldSink(cash AllowanceSpender, v vault.Depositor) YieldSink {
	return YieldSink{cash: cash, vault: v}
}

// Credit moves amount to the pool reserve of its ticker and deposits it
// for recipient.
func (s YieldSink) Credit(db weave.KVStore, collector, recipient weave.Address, amount coin.Coin) error {
	reserve := vault.ReserveAddress(amount.Ticker)
	if err := s.cash.TransferFrom(db, EngineAddress, collector, reserve, amount); err != nil {
		return err
	}
	if _, err := s.vault.Deposit(db, recipient, amount); err != nil {
		return errors.Wrap(err, "vault deposit")
	}
	return nil
}

// Sinks maps every supported sink kind to its implementation.
type Sinks map[Sink]DistributionSink

// NewSinks returns all sinks backed by the cash and the vault extensions.
func NewSinks(cash AllowanceSpender, v vault.Depositor) Sinks {
	return Sinks{
		Sink_TRANSFER: NewTransferSink(cash),
		Sink_YIELD:    NewYieldSink(cash, v),
	}
}
