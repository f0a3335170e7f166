package collect

import (
	"encoding/binary"

	weave "github.com/iov-one/weave-collect"
	"github.com/iov-one/weave-collect/coin"
	"github.com/iov-one/weave-collect/errors"
	"github.com/iov-one/weave-collect/orm"
)

var _ orm.Model = (*FeeConfig)(nil)

func (c *FeeConfig) Validate() error {
	if err := c.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := validateAmount(c.Amount); err != nil {
		return err
	}
	if err := validateRecipients(c.Recipients); err != nil {
		return err
	}
	if c.ReferralFeeBps > BpsMax {
		return errors.Wrapf(ErrInvalidParameters, "referral fee %d bps", c.ReferralFeeBps)
	}
	if err := c.EndTimestamp.Validate(); err != nil {
		return errors.Wrap(err, "end timestamp")
	}
	if c.CollectLimit != 0 && c.CurrentCollects > c.CollectLimit {
		return errors.Wrapf(ErrLimitExceeded, "%d collects above %d limit", c.CurrentCollects, c.CollectLimit)
	}
	if _, ok := Sink_name[int32(c.Sink)]; !ok {
		return errors.Wrapf(ErrInvalidParameters, "unknown sink %d", c.Sink)
	}
	return nil
}

func validateAmount(c *coin.Coin) error {
	if c == nil {
		return errors.Wrap(ErrInvalidParameters, "amount required")
	}
	if err := c.Validate(); err != nil {
		return errors.Wrapf(ErrInvalidParameters, "amount: %s", err)
	}
	if !c.IsNonNegative() {
		return errors.Wrap(ErrInvalidParameters, "negative amount")
	}
	return nil
}

// validateRecipients returns an error if given list of recipients cannot be
// used to split a collection.
func validateRecipients(rs []*Recipient) error {
	switch n := len(rs); {
	case n == 0:
		return errors.Wrap(ErrInvalidParameters, "no recipients")
	case n > MaxRecipients:
		return errors.Wrapf(ErrTooManyRecipients, "%d recipients, max %d", n, MaxRecipients)
	}
	var sum uint64
	for i, r := range rs {
		if r == nil || len(r.Address) == 0 {
			return errors.Wrapf(ErrInvalidParameters, "recipient %d address missing", i)
		}
		if err := r.Address.Validate(); err != nil {
			return errors.Wrapf(ErrInvalidParameters, "recipient %d address: %s", i, err)
		}
		if r.ShareBps == 0 {
			return errors.Wrapf(ErrRecipientSplitCannotBeZero, "recipient %d", i)
		}
		sum += uint64(r.ShareBps)
	}
	if sum != BpsMax {
		return errors.Wrapf(ErrInvalidRecipientSplits, "shares sum to %d bps", sum)
	}
	return nil
}

// PublicationKey returns the key a publication configuration is stored
// under.
func PublicationKey(ownerID, pubID uint64) []byte {
	key := make([]byte, 16)
	binary.BigEndian.PutUint64(key, ownerID)
	binary.BigEndian.PutUint64(key[8:], pubID)
	return key
}

// FeeConfigBucket stores configurations of all publications.
type FeeConfigBucket struct {
	orm.ModelBucket
}

// NewFeeConfigBucket returns a bucket storing publication configurations.
func NewFeeConfigBucket() *FeeConfigBucket {
	return &FeeConfigBucket{
		ModelBucket: orm.NewModelBucket("feeconfig", &FeeConfig{}),
	}
}

// Create stores the configuration of a new publication. A publication can be
// initialized only once.
func (b *FeeConfigBucket) Create(db weave.KVStore, key []byte, c *FeeConfig) error {
	switch err := b.Has(db, key); {
	case err == nil:
		return errors.Wrapf(errors.ErrDuplicate, "publication %X already initialized", key)
	case !errors.ErrNotFound.Is(err):
		return err
	}
	_, err := b.Put(db, key, c)
	return err
}

// GetConfig returns the configuration of a publication.
// ErrPublicationNotFound is returned if it was never initialized.
func (b *FeeConfigBucket) GetConfig(db weave.ReadOnlyKVStore, key []byte) (*FeeConfig, error) {
	var c FeeConfig
	switch err := b.One(db, key, &c); {
	case err == nil:
		return &c, nil
	case errors.ErrNotFound.Is(err):
		return nil, errors.Wrapf(ErrPublicationNotFound, "publication %X", key)
	default:
		return nil, err
	}
}

// IncrementCollects increments and persists the collection counter of a
// publication. The updated configuration is returned.
func (b *FeeConfigBucket) IncrementCollects(db weave.KVStore, key []byte) (*FeeConfig, error) {
	c, err := b.GetConfig(db, key)
	if err != nil {
		return nil, err
	}
	if c.CollectLimit != 0 && c.CurrentCollects >= c.CollectLimit {
		return nil, errors.Wrapf(ErrLimitExceeded, "limit of %d reached", c.CollectLimit)
	}
	c.CurrentCollects++
	if _, err := b.Put(db, key, c); err != nil {
		return nil, errors.Wrap(err, "cannot save configuration")
	}
	return c, nil
}

var _ orm.Model = (*CollectRecord)(nil)

func (r *CollectRecord) Validate() error {
	var err error
	err = errors.AppendField(err, "Metadata", r.Metadata.Validate())
	err = errors.AppendField(err, "Collector", r.Collector.Validate())
	if r.Number == 0 {
		err = errors.Append(err, errors.Field("Number", errors.ErrModel, "must be positive"))
	}
	if r.Paid == nil {
		err = errors.Append(err, errors.Field("Paid", errors.ErrEmpty, "required"))
	}
	for i, m := range r.Movements {
		if coin.IsEmpty(m.Amount) || !m.Amount.IsPositive() {
			err = errors.Append(err, errors.Field("Movements", errors.ErrAmount, "movement %d without value", i))
		}
		if e := m.Destination.Validate(); e != nil {
			err = errors.Append(err, errors.Field("Movements", e, "movement %d destination", i))
		}
	}
	return err
}

// CollectRecordKey returns the key of the n-th collection of a publication.
// All records of a publication share the PublicationKey prefix.
func CollectRecordKey(ownerID, pubID, n uint64) []byte {
	key := make([]byte, 24)
	copy(key, PublicationKey(ownerID, pubID))
	binary.BigEndian.PutUint64(key[16:], n)
	return key
}

// NewCollectRecordBucket returns a bucket for managing collection records.
func NewCollectRecordBucket() orm.ModelBucket {
	return orm.NewModelBucket("collects", &CollectRecord{})
}
