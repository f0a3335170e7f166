package app

import (
	"github.com/gogo/protobuf/proto"
	weave "github.com/iov-one/weave-collect"
	"github.com/iov-one/weave-collect/errors"
	"github.com/iov-one/weave-collect/x/cash"
	"github.com/iov-one/weave-collect/x/collect"
	"github.com/iov-one/weave-collect/x/currency"
	"github.com/iov-one/weave-collect/x/sigs"
	"github.com/iov-one/weave-collect/x/vault"
)

// Tx contains the message along with the fee and signatures. Exactly one
// message field must be set.
type Tx struct {
	Fees       *cash.FeeInfo        `protobuf:"bytes,1,opt,name=fees,proto3" json:"fees,omitempty"`
	Signatures []*sigs.StdSignature `protobuf:"bytes,2,rep,name=signatures,proto3" json:"signatures,omitempty"`

	CashSendMsg                   *cash.SendMsg                   `protobuf:"bytes,51,opt,name=cash_send_msg,json=cashSendMsg,proto3" json:"cash_send_msg,omitempty"`
	CashApproveMsg                *cash.ApproveMsg                `protobuf:"bytes,52,opt,name=cash_approve_msg,json=cashApproveMsg,proto3" json:"cash_approve_msg,omitempty"`
	CashUpdateConfigurationMsg    *cash.UpdateConfigurationMsg    `protobuf:"bytes,53,opt,name=cash_update_configuration_msg,json=cashUpdateConfigurationMsg,proto3" json:"cash_update_configuration_msg,omitempty"`
	CurrencyCreateMsg             *currency.CreateMsg             `protobuf:"bytes,54,opt,name=currency_create_msg,json=currencyCreateMsg,proto3" json:"currency_create_msg,omitempty"`
	VaultDepositMsg               *vault.DepositMsg               `protobuf:"bytes,55,opt,name=vault_deposit_msg,json=vaultDepositMsg,proto3" json:"vault_deposit_msg,omitempty"`
	SigsBumpSequenceMsg           *sigs.BumpSequenceMsg           `protobuf:"bytes,56,opt,name=sigs_bump_sequence_msg,json=sigsBumpSequenceMsg,proto3" json:"sigs_bump_sequence_msg,omitempty"`
	CollectInitializeMsg          *collect.InitializeMsg          `protobuf:"bytes,60,opt,name=collect_initialize_msg,json=collectInitializeMsg,proto3" json:"collect_initialize_msg,omitempty"`
	CollectCollectMsg             *collect.CollectMsg             `protobuf:"bytes,61,opt,name=collect_collect_msg,json=collectCollectMsg,proto3" json:"collect_collect_msg,omitempty"`
	CollectUpdateConfigurationMsg *collect.UpdateConfigurationMsg `protobuf:"bytes,62,opt,name=collect_update_configuration_msg,json=collectUpdateConfigurationMsg,proto3" json:"collect_update_configuration_msg,omitempty"`
}

func (m *Tx) Reset()         { *m = Tx{} }
func (m *Tx) String() string { return proto.CompactTextString(m) }
func (*Tx) ProtoMessage()    {}

func init() {
	proto.RegisterType((*Tx)(nil), "collectd.Tx")
}

// TxDecoder creates a Tx and unmarshals bytes into it
func TxDecoder(bz []byte) (weave.Tx, error) {
	tx := new(Tx)
	if err := proto.Unmarshal(bz, tx); err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return tx, nil
}

// make sure tx fulfills all interfaces
var _ weave.Tx = (*Tx)(nil)
var _ cash.FeeTx = (*Tx)(nil)
var _ sigs.SignedTx = (*Tx)(nil)

// GetMsg returns the single message carried by the transaction.
func (tx *Tx) GetMsg() (weave.Msg, error) {
	var found []weave.Msg
	add := func(m weave.Msg, set bool) {
		if set {
			found = append(found, m)
		}
	}
	add(tx.CashSendMsg, tx.CashSendMsg != nil)
	add(tx.CashApproveMsg, tx.CashApproveMsg != nil)
	add(tx.CashUpdateConfigurationMsg, tx.CashUpdateConfigurationMsg != nil)
	add(tx.CurrencyCreateMsg, tx.CurrencyCreateMsg != nil)
	add(tx.VaultDepositMsg, tx.VaultDepositMsg != nil)
	add(tx.SigsBumpSequenceMsg, tx.SigsBumpSequenceMsg != nil)
	add(tx.CollectInitializeMsg, tx.CollectInitializeMsg != nil)
	add(tx.CollectCollectMsg, tx.CollectCollectMsg != nil)
	add(tx.CollectUpdateConfigurationMsg, tx.CollectUpdateConfigurationMsg != nil)

	switch len(found) {
	case 0:
		return nil, errors.Wrap(errors.ErrState, "no message")
	case 1:
		return found[0], nil
	default:
		return nil, errors.Wrapf(errors.ErrInput, "%d messages in a single transaction", len(found))
	}
}

// GetFees returns the fee declared by the transaction.
func (tx *Tx) GetFees() *cash.FeeInfo {
	return tx.Fees
}

// GetSignatures returns all signatures attached to the transaction.
func (tx *Tx) GetSignatures() []*sigs.StdSignature {
	return tx.Signatures
}

// GetSignBytes returns the bytes to sign...
func (tx *Tx) GetSignBytes() ([]byte, error) {
	// temporarily unset the signatures, as the sign bytes
	// should only come from the data itself, not previous signatures
	signatures := tx.Signatures
	tx.Signatures = nil

	bz, err := proto.Marshal(tx)

	// reset the signatures after calculating the bytes
	tx.Signatures = signatures
	return bz, err
}
