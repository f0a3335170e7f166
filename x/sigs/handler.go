package sigs

import (
	weave "github.com/iov-one/weave-collect"
	"github.com/iov-one/weave-collect/errors"
	"github.com/iov-one/weave-collect/orm"
	"github.com/iov-one/weave-collect/x"
)

// RegisterRoutes registers the sequence bump handler.
func RegisterRoutes(r weave.Registry, auth x.Authenticator) {
	r.Handle(pathBumpSequenceMsg, bumpSequenceHandler{bucket: NewBucket(), auth: auth})
}

// bumpSequenceHandler moves the main signer sequence forward so that
// signed but unsubmitted transactions become invalid.
type bumpSequenceHandler struct {
	auth   x.Authenticator
	bucket Bucket
}

func (h bumpSequenceHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{}, nil
}

func (h bumpSequenceHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	user, msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	// The Decorator already consumed one sequence for this transaction.
	if extra := int64(msg.Increment) - 1; extra > 0 {
		user.Sequence += extra
		if err := h.bucket.Save(db, orm.NewSimpleObj(user.Pubkey.Address(), user)); err != nil {
			return nil, errors.Wrap(err, "save account")
		}
	}
	return &weave.DeliverResult{}, nil
}

func (h bumpSequenceHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*UserData, *BumpSequenceMsg, error) {
	var msg BumpSequenceMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	signer := x.MainSigner(ctx, h.auth)
	if signer == nil {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "missing signature")
	}
	obj, err := h.bucket.Get(db, signer.Address())
	if err != nil {
		return nil, nil, errors.Wrap(err, "load account")
	}
	user := AsUser(obj)
	if user == nil {
		return nil, nil, errors.Wrap(errors.ErrNotFound, "account")
	}
	if user.Sequence+int64(msg.Increment) > maxSequence {
		return nil, nil, errors.Wrap(errors.ErrOverflow, "sequence")
	}
	return user, &msg, nil
}
