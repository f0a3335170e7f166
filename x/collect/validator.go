package collect

import (
	"github.com/gogo/protobuf/proto"
	weave "github.com/iov-one/weave-collect"
	"github.com/iov-one/weave-collect/errors"
)

// DecodeInitConfig parses a protobuf serialized InitConfig.
func DecodeInitConfig(raw []byte) (*InitConfig, error) {
	if len(raw) == 0 {
		return nil, errors.Wrap(ErrInvalidParameters, "empty configuration")
	}
	var ic InitConfig
	if err := proto.Unmarshal(raw, &ic); err != nil {
		return nil, errors.Wrapf(ErrInvalidParameters, "cannot decode configuration: %s", err)
	}
	return &ic, nil
}

// BuildFeeConfig validates a raw configuration and returns the configuration
// a publication is stored with. Recipients are normalized and the collection
// counter starts at zero.
func BuildFeeConfig(ctx weave.Context, snap RegistrySnapshot, ic *InitConfig) (*FeeConfig, error) {
	if err := validateAmount(ic.Amount); err != nil {
		return nil, err
	}
	switch ok, err := snap.IsWhitelisted(ic.Amount.Ticker); {
	case err != nil:
		return nil, errors.Wrap(err, "whitelist")
	case !ok:
		return nil, errors.Wrapf(ErrInvalidParameters, "currency %s not whitelisted", ic.Amount.Ticker)
	}
	if ic.ReferralFeeBps > BpsMax {
		return nil, errors.Wrapf(ErrInvalidParameters, "referral fee %d bps", ic.ReferralFeeBps)
	}
	if ic.EndTimestamp < 0 {
		return nil, errors.Wrap(ErrInvalidParameters, "negative end timestamp")
	}
	if ic.EndTimestamp != 0 {
		now, err := weave.BlockTime(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "block time")
		}
		if ic.EndTimestamp <= weave.AsUnixTime(now) {
			return nil, errors.Wrapf(ErrInvalidParameters, "end timestamp %s is not in the future", ic.EndTimestamp)
		}
	}
	if _, ok := Sink_name[int32(ic.Sink)]; !ok {
		return nil, errors.Wrapf(ErrInvalidParameters, "unknown sink %d", ic.Sink)
	}

	recipients, err := ic.NormalizedRecipients()
	if err != nil {
		return nil, err
	}
	if err := validateRecipients(recipients); err != nil {
		return nil, err
	}

	amount := *ic.Amount
	return &FeeConfig{
		Metadata:        &weave.Metadata{Schema: 1},
		Amount:          &amount,
		Recipients:      recipients,
		ReferralFeeBps:  ic.ReferralFeeBps,
		FollowerOnly:    ic.FollowerOnly,
		EndTimestamp:    ic.EndTimestamp,
		CollectLimit:    ic.CollectLimit,
		CurrentCollects: 0,
		Sink:            ic.Sink,
	}, nil
}
