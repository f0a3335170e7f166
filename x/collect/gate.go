package collect

import (
	weave "github.com/iov-one/weave-collect"
	"github.com/iov-one/weave-collect/errors"
	"github.com/iov-one/weave-collect/x"
)

// Gate decides whether a collection can be processed. It never modifies the
// state.
type Gate struct {
	auth    x.Authenticator
	configs *FeeConfigBucket
}

// NewGate returns a Gate authorizing collections with auth.
func NewGate(auth x.Authenticator) Gate {
	return Gate{
		auth:    auth,
		configs: NewFeeConfigBucket(),
	}
}

// Check returns the configuration of the collected publication if all
// preconditions are met. Checks are done in a fixed order and the first
// failure is returned.
func (g Gate) Check(ctx weave.Context, db weave.ReadOnlyKVStore, snap RegistrySnapshot, msg *CollectMsg) (*FeeConfig, error) {
	if !g.auth.HasAddress(ctx, snap.Hub()) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "hub signature required")
	}
	conf, err := g.configs.GetConfig(db, PublicationKey(msg.OwnerID, msg.PubID))
	if err != nil {
		return nil, err
	}
	if conf.FollowerOnly && !msg.CollectorFollows {
		return nil, errors.Wrapf(ErrFollowerRequired, "%s does not follow %d", msg.Collector, msg.OwnerID)
	}
	if conf.EndTimestamp != 0 {
		now, err := weave.BlockTime(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "block time")
		}
		if weave.AsUnixTime(now) > conf.EndTimestamp {
			return nil, errors.Wrapf(ErrCollectionExpired, "ended at %s", conf.EndTimestamp)
		}
	}
	if conf.CollectLimit != 0 && conf.CurrentCollects >= conf.CollectLimit {
		return nil, errors.Wrapf(ErrLimitExceeded, "limit of %d reached", conf.CollectLimit)
	}
	if msg.Declared == nil || !msg.Declared.Equals(*conf.Amount) {
		return nil, errors.Wrapf(ErrParameterMismatch, "declared %v, required %s", msg.Declared, conf.Amount)
	}
	return conf, nil
}
