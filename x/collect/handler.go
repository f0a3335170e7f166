package collect

import (
	"encoding/json"

	weave "github.com/iov-one/weave-collect"
	"github.com/iov-one/weave-collect/errors"
	"github.com/iov-one/weave-collect/gconf"
	"github.com/iov-one/weave-collect/x"
	"github.com/iov-one/weave-collect/x/vault"
)

// RegisterQuery registers publication configurations under /collectconfigs
// and collection records under /collects.
func RegisterQuery(qr weave.QueryRouter) {
	NewFeeConfigBucket().Register("collectconfigs", qr)
	NewCollectRecordBucket().Register("collects", qr)
}

// RegisterRoutes registers handlers for all messages of this extension.
func RegisterRoutes(r weave.Registry, auth x.Authenticator, cash AllowanceSpender, v vault.Depositor) {
	reg := NewRegistry()
	r.Handle(pathInitializeMsg, NewInitializeHandler(auth, reg))
	r.Handle(pathCollectMsg, NewCollectHandler(auth, reg, NewExecutor(cash, NewSinks(cash, v))))
	r.Handle(pathUpdateConfigurationMsg, NewConfigHandler(auth))
}

// NewConfigHandler returns a handler that updates the collect configuration.
func NewConfigHandler(auth x.Authenticator) weave.Handler {
	var conf Configuration
	return gconf.NewUpdateConfigurationHandler(confPkg, &conf, auth, nil)
}

// NewInitializeHandler returns a handler that stores the fee configuration
// of a new publication.
func NewInitializeHandler(auth x.Authenticator, reg Registry) weave.Handler {
	return &initializeHandler{
		auth:    auth,
		reg:     reg,
		configs: NewFeeConfigBucket(),
	}
}

// InitializedEvent is the value of the collect.initialized tag.
type InitializedEvent struct {
	OwnerID uint64     `json:"owner_id"`
	PubID   uint64     `json:"pub_id"`
	Config  *FeeConfig `json:"config"`
}

type initializeHandler struct {
	auth    x.Authenticator
	reg     Registry
	configs *FeeConfigBucket
}

var _ weave.Handler = (*initializeHandler)(nil)

func (h *initializeHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: initializeCost}, nil
}

func (h *initializeHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (res *weave.DeliverResult, err error) {
	defer func() { initializationsTotal.WithLabelValues(status(err)).Inc() }()

	msg, conf, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.configs.Create(db, PublicationKey(msg.OwnerID, msg.PubID), conf); err != nil {
		return nil, err
	}
	raw, err := json.Marshal(InitializedEvent{OwnerID: msg.OwnerID, PubID: msg.PubID, Config: conf})
	if err != nil {
		return nil, errors.Wrap(errors.ErrHuman, "cannot serialize configuration")
	}
	weave.GetLogger(ctx).Debug("publication initialized",
		"owner", msg.OwnerID, "pub", msg.PubID, "amount", conf.Amount.String())
	tags := []weave.KVPair{
		weave.Tag("collect.initialized", raw),
	}
	return &weave.DeliverResult{Tags: tags}, nil
}

func (h *initializeHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*InitializeMsg, *FeeConfig, error) {
	var msg InitializeMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	snap, err := h.reg.Snapshot(db)
	if err != nil {
		return nil, nil, errors.Wrap(err, "registry")
	}
	if !h.auth.HasAddress(ctx, snap.Hub()) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "hub signature required")
	}
	ic, err := DecodeInitConfig(msg.RawConfig)
	if err != nil {
		return nil, nil, err
	}
	conf, err := BuildFeeConfig(ctx, snap, ic)
	if err != nil {
		return nil, nil, err
	}
	switch err := h.configs.Has(db, PublicationKey(msg.OwnerID, msg.PubID)); {
	case err == nil:
		return nil, nil, errors.Wrapf(errors.ErrDuplicate, "publication %d/%d", msg.OwnerID, msg.PubID)
	case !errors.ErrNotFound.Is(err):
		return nil, nil, err
	}
	return &msg, conf, nil
}

// NewCollectHandler returns a handler that processes collections.
func NewCollectHandler(auth x.Authenticator, reg Registry, exec *Executor) weave.Handler {
	return &collectHandler{
		reg:  reg,
		gate: NewGate(auth),
		exec: exec,
	}
}

type collectHandler struct {
	reg  Registry
	gate Gate
	exec *Executor
}

var _ weave.Handler = (*collectHandler)(nil)

func (h *collectHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: collectCost}, nil
}

func (h *collectHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (res *weave.DeliverResult, err error) {
	defer func() { collectionsTotal.WithLabelValues(status(err)).Inc() }()

	msg, snap, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	record, err := h.exec.Execute(ctx, db, snap, msg)
	if err != nil {
		weave.GetLogger(ctx).Info("collection failed",
			"owner", msg.OwnerID, "pub", msg.PubID, "err", err)
		return nil, err
	}
	raw, err := json.Marshal(record)
	if err != nil {
		return nil, errors.Wrap(errors.ErrHuman, "cannot serialize collect record")
	}
	weave.GetLogger(ctx).Debug("publication collected",
		"owner", msg.OwnerID, "pub", msg.PubID, "number", record.Number)
	tags := []weave.KVPair{
		weave.Tag("collect.collected", raw),
	}
	return &weave.DeliverResult{Tags: tags}, nil
}

func (h *collectHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*CollectMsg, RegistrySnapshot, error) {
	var msg CollectMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	snap, err := h.reg.Snapshot(db)
	if err != nil {
		return nil, nil, errors.Wrap(err, "registry")
	}
	if _, err := h.gate.Check(ctx, db, snap, &msg); err != nil {
		return nil, nil, err
	}
	return &msg, snap, nil
}
