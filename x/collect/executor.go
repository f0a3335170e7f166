package collect

import (
	weave "github.com/iov-one/weave-collect"
	"github.com/iov-one/weave-collect/coin"
	"github.com/iov-one/weave-collect/errors"
	"github.com/iov-one/weave-collect/orm"
)

// Roles of a movement.
const (
	RoleTreasury  = "treasury"
	RoleReferral  = "referral"
	RoleRecipient = "recipient"
)

// Executor processes collections that passed the gate.
type Executor struct {
	configs  *FeeConfigBucket
	records  orm.ModelBucket
	transfer DistributionSink
	sinks    Sinks
}

// NewExecutor returns an executor pulling funds with cash and crediting
// recipients through sinks.
func NewExecutor(cash AllowanceSpender, sinks Sinks) *Executor {
	return &Executor{
		configs:  NewFeeConfigBucket(),
		records:  NewCollectRecordBucket(),
		transfer: NewTransferSink(cash),
		sinks:    sinks,
	}
}

type plannedMovement struct {
	Movement
	sink     DistributionSink
	sinkName string
}

// Execute processes a collection in two steps. First the collection counter
// is incremented and the collection record is stored. Only then the funds are
// moved from the collector, so a reentrant call always observes the updated
// counter.
//
// Cuts rounded down to zero are not moved. Rounding remainder is never
// pulled from the collector.
func (e *Executor) Execute(ctx weave.Context, db weave.KVStore, snap RegistrySnapshot, msg *CollectMsg) (*CollectRecord, error) {
	now, err := weave.BlockTime(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "block time")
	}

	conf, err := e.configs.IncrementCollects(db, PublicationKey(msg.OwnerID, msg.PubID))
	if err != nil {
		return nil, err
	}
	recipientSink, ok := e.sinks[conf.Sink]
	if !ok {
		return nil, errors.Wrapf(ErrInvalidParameters, "sink %s not available", conf.Sink)
	}

	referral := msg.HasReferral()
	cuts, err := Split(*conf.Amount, snap.TreasuryFeeBps(), conf.ReferralFeeBps, referral, conf.Recipients)
	if err != nil {
		return nil, errors.Wrap(err, "split")
	}

	var plan []plannedMovement
	add := func(role string, dest weave.Address, amount coin.Coin, sink DistributionSink, sinkName Sink) {
		if amount.IsZero() {
			return
		}
		plan = append(plan, plannedMovement{
			Movement: Movement{Role: role, Destination: dest, Amount: &amount},
			sink:     sink,
			sinkName: sinkName.String(),
		})
	}
	add(RoleTreasury, snap.Treasury(), cuts.Treasury, e.transfer, Sink_TRANSFER)
	if referral {
		add(RoleReferral, msg.Referrer, cuts.Referral, e.transfer, Sink_TRANSFER)
	}
	for i, r := range conf.Recipients {
		add(RoleRecipient, r.Address, cuts.Recipients[i], recipientSink, conf.Sink)
	}

	paid, err := cuts.Total()
	if err != nil {
		return nil, errors.Wrap(err, "total")
	}
	record := &CollectRecord{
		Metadata:    &weave.Metadata{Schema: 1},
		OwnerID:     msg.OwnerID,
		PubID:       msg.PubID,
		Collector:   msg.Collector,
		Number:      conf.CurrentCollects,
		Paid:        &paid,
		CollectedAt: weave.AsUnixTime(now),
	}
	for i := range plan {
		m := plan[i].Movement
		record.Movements = append(record.Movements, &m)
	}
	key := CollectRecordKey(msg.OwnerID, msg.PubID, conf.CurrentCollects)
	if _, err := e.records.Put(db, key, record); err != nil {
		return nil, errors.Wrap(err, "cannot save collect record")
	}

	for _, m := range plan {
		if err := m.sink.Credit(db, msg.Collector, m.Destination, *m.Amount); err != nil {
			return nil, errors.Wrapf(err, "%s movement to %s", m.Role, m.Destination)
		}
		movementsTotal.WithLabelValues(m.Role, m.sinkName).Inc()
	}
	return record, nil
}
