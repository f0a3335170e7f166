package currency

import (
	weave "github.com/iov-one/weave-collect"
	"github.com/iov-one/weave-collect/errors"
	"github.com/iov-one/weave-collect/x"
)

const createTokenCost = 100

// RegisterQuery exposes registered tokens under "/tokens".
func RegisterQuery(qr weave.QueryRouter) {
	NewTokenInfoBucket().Register("tokens", qr)
}

// RegisterRoutes registers the token creation handler. A non nil issuer is
// the only address allowed to register tokens.
func RegisterRoutes(r weave.Registry, auth x.Authenticator, issuer weave.Address) {
	r.Handle(pathCreateMsg, NewCreateHandler(auth, issuer))
}

// CreateHandler adds a ticker to the token registry.
type CreateHandler struct {
	auth   x.Authenticator
	issuer weave.Address
	tokens *TokenInfoBucket
}

var _ weave.Handler = CreateHandler{}

// NewCreateHandler returns a handler registering tokens. When issuer is
// set, only issuer may register a token.
func NewCreateHandler(auth x.Authenticator, issuer weave.Address) CreateHandler {
	return CreateHandler{auth: auth, issuer: issuer, tokens: NewTokenInfoBucket()}
}

func (h CreateHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	msg, err := h.load(ctx, tx)
	if err != nil {
		return nil, err
	}
	registered, err := h.tokens.IsRegistered(db, msg.Ticker)
	if err != nil {
		return nil, err
	}
	if registered {
		return nil, errors.Wrapf(errors.ErrDuplicate, "ticker %s", msg.Ticker)
	}
	return &weave.CheckResult{GasAllocated: createTokenCost}, nil
}

func (h CreateHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.load(ctx, tx)
	if err != nil {
		return nil, err
	}
	if err := h.tokens.Create(db, msg.Ticker, newTokenInfo(msg.Name)); err != nil {
		return nil, err
	}
	return &weave.DeliverResult{}, nil
}

func (h CreateHandler) load(ctx weave.Context, tx weave.Tx) (*CreateMsg, error) {
	var msg CreateMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if h.issuer != nil && !h.auth.HasAddress(ctx, h.issuer) {
		return nil, errors.Wrapf(errors.ErrUnauthorized, "tokens are issued by %s", h.issuer)
	}
	return &msg, nil
}

func newTokenInfo(name string) *TokenInfo {
	return &TokenInfo{Metadata: &weave.Metadata{Schema: 1}, Name: name}
}
