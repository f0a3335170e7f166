package vault

import (
	weave "github.com/iov-one/weave-collect"
	"github.com/iov-one/weave-collect/coin"
	"github.com/iov-one/weave-collect/errors"
)

var _ weave.Msg = (*DepositMsg)(nil)

const pathDepositMsg = "vault/deposit"

func (DepositMsg) Path() string {
	return pathDepositMsg
}

func (m *DepositMsg) Validate() error {
	var err error
	err = errors.AppendField(err, "Metadata", m.Metadata.Validate())
	err = errors.AppendField(err, "Depositor", m.Depositor.Validate())
	if coin.IsEmpty(m.Amount) || !m.Amount.IsPositive() {
		err = errors.Append(err, errors.Field("Amount", errors.ErrAmount, "must be positive"))
	} else {
		err = errors.AppendField(err, "Amount", m.Amount.Validate())
	}
	return err
}
