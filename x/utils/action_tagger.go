package utils

import (
	weave "github.com/iov-one/weave-collect"
)

// ActionKey is the tag key holding the path of the delivered message, for
// example "collect/collect". Clients subscribe to it.
const ActionKey = "action"

// ActionTagger tags successful deliveries with the message path.
type ActionTagger struct{}

var _ weave.Decorator = ActionTagger{}

// NewActionTagger returns an ActionTagger decorator.
func NewActionTagger() ActionTagger {
	return ActionTagger{}
}

// Check does nothing.
func (ActionTagger) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx, next weave.Checker) (*weave.CheckResult, error) {
	return next.Check(ctx, db, tx)
}

// Deliver adds the action tag once next succeeded.
func (ActionTagger) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx, next weave.Deliverer) (*weave.DeliverResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}
	res, err := next.Deliver(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	res.Tags = append(res.Tags, weave.Tag(ActionKey, []byte(msg.Path())))
	return res, nil
}
