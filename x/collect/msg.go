package collect

import (
	weave "github.com/iov-one/weave-collect"
	"github.com/iov-one/weave-collect/errors"
)

var _ weave.Msg = (*InitializeMsg)(nil)
var _ weave.Msg = (*CollectMsg)(nil)
var _ weave.Msg = (*UpdateConfigurationMsg)(nil)

const (
	pathInitializeMsg          = "collect/initialize"
	pathCollectMsg             = "collect/collect"
	pathUpdateConfigurationMsg = "collect/update_configuration"

	initializeCost int64 = 100
	collectCost    int64 = 200
)

func (InitializeMsg) Path() string {
	return pathInitializeMsg
}

func (m *InitializeMsg) Validate() error {
	var err error
	err = errors.AppendField(err, "Metadata", m.Metadata.Validate())
	if m.OwnerID == 0 {
		err = errors.Append(err, errors.Field("OwnerID", errors.ErrEmpty, "required"))
	}
	if m.PubID == 0 {
		err = errors.Append(err, errors.Field("PubID", errors.ErrEmpty, "required"))
	}
	if len(m.RawConfig) == 0 {
		err = errors.Append(err, errors.Field("RawConfig", errors.ErrEmpty, "required"))
	}
	return err
}

func (CollectMsg) Path() string {
	return pathCollectMsg
}

func (m *CollectMsg) Validate() error {
	var err error
	err = errors.AppendField(err, "Metadata", m.Metadata.Validate())
	if m.OwnerID == 0 {
		err = errors.Append(err, errors.Field("OwnerID", errors.ErrEmpty, "required"))
	}
	if m.PubID == 0 {
		err = errors.Append(err, errors.Field("PubID", errors.ErrEmpty, "required"))
	}
	err = errors.AppendField(err, "Collector", m.Collector.Validate())
	if m.Declared != nil {
		err = errors.AppendField(err, "Declared", m.Declared.Validate())
	}
	if m.HasReferral() {
		err = errors.AppendField(err, "Referrer", m.Referrer.Validate())
	}
	return err
}

// HasReferral returns true if the collection was made through a mirror of
// another owner. A mirror of the owner's own publication is not a referral.
func (m *CollectMsg) HasReferral() bool {
	return m.ReferrerOwnerID != 0 && m.ReferrerOwnerID != m.OwnerID
}

func (UpdateConfigurationMsg) Path() string {
	return pathUpdateConfigurationMsg
}

func (m *UpdateConfigurationMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if m.Patch == nil {
		return errors.Wrap(errors.ErrEmpty, "patch")
	}
	var err error
	c := m.Patch
	if len(c.Owner) != 0 {
		err = errors.AppendField(err, "Patch.Owner", c.Owner.Validate())
	}
	if len(c.Hub) != 0 {
		err = errors.AppendField(err, "Patch.Hub", c.Hub.Validate())
	}
	if len(c.Treasury) != 0 {
		err = errors.AppendField(err, "Patch.Treasury", c.Treasury.Validate())
	}
	if c.TreasuryFeeBps > BpsMax {
		err = errors.Append(err, errors.Field("Patch.TreasuryFeeBps", errors.ErrInput, "cannot exceed %d", BpsMax))
	}
	return err
}
