package cash

import (
	weave "github.com/iov-one/weave-collect"
	"github.com/iov-one/weave-collect/coin"
	"github.com/iov-one/weave-collect/errors"
)

var (
	_ weave.Msg = (*SendMsg)(nil)
	_ weave.Msg = (*ApproveMsg)(nil)
	_ weave.Msg = (*UpdateConfigurationMsg)(nil)
)

const (
	pathSendMsg                = "cash/send"
	pathApproveMsg             = "cash/approve"
	pathUpdateConfigurationMsg = "cash/update_configuration"
)

const (
	sendTxCost    int64 = 100
	approveTxCost int64 = 50
)

const (
	maxMemoSize = 128
	maxRefSize  = 64
)

func (SendMsg) Path() string                { return pathSendMsg }
func (ApproveMsg) Path() string             { return pathApproveMsg }
func (UpdateConfigurationMsg) Path() string { return pathUpdateConfigurationMsg }

func (m *SendMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Amount", validatePositive(m.Amount))
	errs = errors.AppendField(errs, "Source", m.Source.Validate())
	errs = errors.AppendField(errs, "Destination", m.Destination.Validate())
	if len(m.Memo) > maxMemoSize {
		errs = errors.Append(errs, errors.Field("Memo", errors.ErrInput, "longer than %d", maxMemoSize))
	}
	if len(m.Ref) > maxRefSize {
		errs = errors.Append(errs, errors.Field("Ref", errors.ErrInput, "longer than %d", maxRefSize))
	}
	return errs
}

// Validate accepts a zero amount, which revokes the allowance.
func (m *ApproveMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Owner", m.Owner.Validate())
	errs = errors.AppendField(errs, "Spender", m.Spender.Validate())
	if m.Amount == nil {
		return errors.Append(errs, errors.Field("Amount", errors.ErrEmpty, "required"))
	}
	return errors.AppendField(errs, "Amount", validateNonNegative(*m.Amount))
}

// Validate checks only the fields set in the patch.
func (m *UpdateConfigurationMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if m.Patch == nil {
		return errors.Append(errs, errors.Field("Patch", errors.ErrEmpty, "required"))
	}
	if len(m.Patch.Owner) != 0 {
		errs = errors.AppendField(errs, "Owner", m.Patch.Owner.Validate())
	}
	if len(m.Patch.CollectorAddress) != 0 {
		errs = errors.AppendField(errs, "CollectorAddress", m.Patch.CollectorAddress.Validate())
	}
	if !coin.IsEmpty(m.Patch.MinimalFee) {
		errs = errors.AppendField(errs, "MinimalFee", validateNonNegative(*m.Patch.MinimalFee))
	}
	return errs
}

// DefaultPayer returns fee info paid by addr unless a payer is already set.
func (f *FeeInfo) DefaultPayer(addr []byte) *FeeInfo {
	if len(f.GetPayer()) != 0 {
		return f
	}
	return &FeeInfo{Payer: addr, Fees: f.GetFees()}
}

// Validate requires a payer and a fee, which may be zero.
func (f *FeeInfo) Validate() error {
	if f == nil {
		return errors.Wrap(errors.ErrInput, "nil fee info")
	}
	var errs error
	if f.Fees == nil {
		errs = errors.Append(errs, errors.Field("Fees", errors.ErrAmount, "required"))
	} else {
		errs = errors.AppendField(errs, "Fees", validateNonNegative(*f.Fees))
	}
	return errors.AppendField(errs, "Payer", f.Payer.Validate())
}

func validatePositive(c *coin.Coin) error {
	if coin.IsEmpty(c) || !c.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "must be positive, got %v", c)
	}
	return c.Validate()
}

func validateNonNegative(c coin.Coin) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if !c.IsNonNegative() {
		return errors.Wrapf(errors.ErrAmount, "negative amount %s", c)
	}
	return nil
}
