package vault

import (
	weave "github.com/iov-one/weave-collect"
	"github.com/iov-one/weave-collect/errors"
	"github.com/iov-one/weave-collect/x"
)

const depositCost = 100

// RegisterQuery registers pools under "/vaults".
func RegisterQuery(qr weave.QueryRouter) {
	NewPoolBucket().Register("vaults", qr)
}

// RegisterRoutes registers the deposit handler.
func RegisterRoutes(r weave.Registry, auth x.Authenticator, ctrl CashController) {
	r.Handle(pathDepositMsg, &depositHandler{
		auth:  auth,
		cash:  ctrl,
		vault: NewController(ctrl),
	})
}

type depositHandler struct {
	auth  x.Authenticator
	cash  CashController
	vault Depositor
}

var _ weave.Handler = (*depositHandler)(nil)

func (h *depositHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: depositCost}, nil
}

func (h *depositHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	if err := h.cash.MoveCoins(db, msg.Depositor, ReserveAddress(msg.Amount.Ticker), *msg.Amount); err != nil {
		return nil, errors.Wrap(err, "cannot fund reserve")
	}
	receipt, err := h.vault.Deposit(db, msg.Depositor, *msg.Amount)
	if err != nil {
		return nil, err
	}
	tags := []weave.KVPair{
		weave.Tag("vault.minted", []byte(receipt.String())),
	}
	return &weave.DeliverResult{Tags: tags}, nil
}

func (h *depositHandler) validate(ctx weave.Context, tx weave.Tx) (*DepositMsg, error) {
	var msg DepositMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Depositor) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "depositor signature missing")
	}
	return &msg, nil
}
