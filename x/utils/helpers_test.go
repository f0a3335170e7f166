package utils

import (
	weave "github.com/iov-one/weave-collect"
)

// recordHandler stores key and then fails with err, if set.
type recordHandler struct {
	key []byte
	err error
}

var _ weave.Handler = recordHandler{}

func (h recordHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if err := db.Set(h.key, []byte("recorded")); err != nil {
		return nil, err
	}
	return &weave.CheckResult{}, h.err
}

func (h recordHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	if err := db.Set(h.key, []byte("recorded")); err != nil {
		return nil, err
	}
	return &weave.DeliverResult{}, h.err
}

// recordDecorator stores key before calling next or, when after is set,
// only once next succeeded.
type recordDecorator struct {
	key   []byte
	after bool
}

var _ weave.Decorator = recordDecorator{}

func (d recordDecorator) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx, next weave.Checker) (res *weave.CheckResult, err error) {
	err = d.around(db, func() (err error) {
		res, err = next.Check(ctx, db, tx)
		return err
	})
	return res, err
}

func (d recordDecorator) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx, next weave.Deliverer) (res *weave.DeliverResult, err error) {
	err = d.around(db, func() (err error) {
		res, err = next.Deliver(ctx, db, tx)
		return err
	})
	return res, err
}

func (d recordDecorator) around(db weave.KVStore, call func() error) error {
	if !d.after {
		if err := db.Set(d.key, []byte("recorded")); err != nil {
			return err
		}
	}
	if err := call(); err != nil {
		return err
	}
	if d.after {
		return db.Set(d.key, []byte("recorded"))
	}
	return nil
}

type panicHandler struct{}

var _ weave.Handler = panicHandler{}

func (panicHandler) Check(weave.Context, weave.KVStore, weave.Tx) (*weave.CheckResult, error) {
	panic("check panic")
}

func (panicHandler) Deliver(weave.Context, weave.KVStore, weave.Tx) (*weave.DeliverResult, error) {
	panic("deliver panic")
}
