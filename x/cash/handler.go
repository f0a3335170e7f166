package cash

import (
	weave "github.com/iov-one/weave-collect"
	"github.com/iov-one/weave-collect/errors"
	"github.com/iov-one/weave-collect/gconf"
	"github.com/iov-one/weave-collect/x"
)

// RegisterRoutes registers the send, approve and configuration handlers.
func RegisterRoutes(r weave.Registry, auth x.Authenticator, control Controller) {
	r.Handle(pathSendMsg, NewSendHandler(auth, control))
	r.Handle(pathApproveMsg, NewApproveHandler(auth, control))
	r.Handle(pathUpdateConfigurationMsg, NewConfigHandler(auth))
}

// RegisterQuery exposes wallets under "/wallets" and allowances under
// "/allowances".
func RegisterQuery(qr weave.QueryRouter) {
	NewBucket().Register("wallets", qr)
	NewAllowanceBucket().Register("allowances", qr)
}

// SendHandler moves coins out of a wallet signed by its owner.
type SendHandler struct {
	auth    x.Authenticator
	control CoinMover
}

var _ weave.Handler = SendHandler{}

// NewSendHandler returns a handler moving coins between wallets.
func NewSendHandler(auth x.Authenticator, control CoinMover) SendHandler {
	return SendHandler{auth: auth, control: control}
}

func (h SendHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.load(ctx, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: sendTxCost}, nil
}

func (h SendHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.load(ctx, tx)
	if err != nil {
		return nil, err
	}
	if err := h.control.MoveCoins(db, msg.Source, msg.Destination, *msg.Amount); err != nil {
		return nil, err
	}
	return &weave.DeliverResult{
		Tags: []weave.KVPair{weave.Tag("cash.sent", []byte(msg.Amount.String()))},
	}, nil
}

func (h SendHandler) load(ctx weave.Context, tx weave.Tx) (*SendMsg, error) {
	var msg SendMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Source) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "source signature missing")
	}
	return &msg, nil
}

// ApproveHandler sets how much a spender may take from the owner's wallet.
type ApproveHandler struct {
	auth    x.Authenticator
	control AllowanceController
}

var _ weave.Handler = ApproveHandler{}

// NewApproveHandler returns a handler setting spending allowances.
func NewApproveHandler(auth x.Authenticator, control AllowanceController) ApproveHandler {
	return ApproveHandler{auth: auth, control: control}
}

func (h ApproveHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.load(ctx, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: approveTxCost}, nil
}

func (h ApproveHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.load(ctx, tx)
	if err != nil {
		return nil, err
	}
	if err := h.control.Approve(db, msg.Owner, msg.Spender, *msg.Amount); err != nil {
		return nil, err
	}
	return &weave.DeliverResult{}, nil
}

func (h ApproveHandler) load(ctx weave.Context, tx weave.Tx) (*ApproveMsg, error) {
	var msg ApproveMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Owner) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "owner signature missing")
	}
	return &msg, nil
}

// NewConfigHandler updates the cash configuration. Only the configured
// owner may change it.
func NewConfigHandler(auth x.Authenticator) weave.Handler {
	return gconf.NewUpdateConfigurationHandler(confPkg, &Configuration{}, auth, nil)
}
