package cash

import (
	proto "github.com/gogo/protobuf/proto"
	weave "github.com/iov-one/weave-collect"
	"github.com/iov-one/weave-collect/coin"
)

// Set may contain Coin of many different currencies.
// It handles adding and subtracting sets of currencies.
type Set struct {
	Metadata *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Coins    []*coin.Coin    `protobuf:"bytes,2,rep,name=coins,proto3" json:"coins,omitempty"`
}

func (m *Set) Reset()         { *m = Set{} }
func (m *Set) String() string { return proto.CompactTextString(m) }
func (*Set) ProtoMessage()    {}

func (m *Set) GetCoins() []*coin.Coin {
	if m != nil {
		return m.Coins
	}
	return nil
}

// Allowance is the amount an owner permits a spender to move out of the
// owner's wallet. It is consumed by every transfer made on owner's behalf.
type Allowance struct {
	Metadata *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Owner    weave.Address   `protobuf:"bytes,2,opt,name=owner,proto3,casttype=github.com/iov-one/weave-collect.Address" json:"owner,omitempty"`
	Spender  weave.Address   `protobuf:"bytes,3,opt,name=spender,proto3,casttype=github.com/iov-one/weave-collect.Address" json:"spender,omitempty"`
	Coins    []*coin.Coin    `protobuf:"bytes,4,rep,name=coins,proto3" json:"coins,omitempty"`
}

func (m *Allowance) Reset()         { *m = Allowance{} }
func (m *Allowance) String() string { return proto.CompactTextString(m) }
func (*Allowance) ProtoMessage()    {}

// SendMsg is a request to move these coins from the given
// source to the given destination address.
// memo is an optional human-readable message
// ref is optional binary data, that can refer to another
// eg. tx hash
type SendMsg struct {
	Metadata    *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Source      weave.Address   `protobuf:"bytes,2,opt,name=source,proto3,casttype=github.com/iov-one/weave-collect.Address" json:"source,omitempty"`
	Destination weave.Address   `protobuf:"bytes,3,opt,name=destination,proto3,casttype=github.com/iov-one/weave-collect.Address" json:"destination,omitempty"`
	Amount      *coin.Coin      `protobuf:"bytes,4,opt,name=amount,proto3" json:"amount,omitempty"`
	Memo        string          `protobuf:"bytes,5,opt,name=memo,proto3" json:"memo,omitempty"`
	Ref         []byte          `protobuf:"bytes,6,opt,name=ref,proto3" json:"ref,omitempty"`
}

func (m *SendMsg) Reset()         { *m = SendMsg{} }
func (m *SendMsg) String() string { return proto.CompactTextString(m) }
func (*SendMsg) ProtoMessage()    {}

// ApproveMsg sets the allowance of a spender over owner's funds. The amount
// replaces any previous allowance of the same currency. A zero amount revokes
// the allowance.
type ApproveMsg struct {
	Metadata *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Owner    weave.Address   `protobuf:"bytes,2,opt,name=owner,proto3,casttype=github.com/iov-one/weave-collect.Address" json:"owner,omitempty"`
	Spender  weave.Address   `protobuf:"bytes,3,opt,name=spender,proto3,casttype=github.com/iov-one/weave-collect.Address" json:"spender,omitempty"`
	Amount   *coin.Coin      `protobuf:"bytes,4,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *ApproveMsg) Reset()         { *m = ApproveMsg{} }
func (m *ApproveMsg) String() string { return proto.CompactTextString(m) }
func (*ApproveMsg) ProtoMessage()    {}

// FeeInfo records who pays what fees to have this
// message processed
type FeeInfo struct {
	Payer weave.Address `protobuf:"bytes,2,opt,name=payer,proto3,casttype=github.com/iov-one/weave-collect.Address" json:"payer,omitempty"`
	Fees  *coin.Coin    `protobuf:"bytes,3,opt,name=fees,proto3" json:"fees,omitempty"`
}

func (m *FeeInfo) Reset()         { *m = FeeInfo{} }
func (m *FeeInfo) String() string { return proto.CompactTextString(m) }
func (*FeeInfo) ProtoMessage()    {}

func (m *FeeInfo) GetPayer() weave.Address {
	if m != nil {
		return m.Payer
	}
	return nil
}

func (m *FeeInfo) GetFees() *coin.Coin {
	if m != nil {
		return m.Fees
	}
	return nil
}

// Configuration of the cash extension.
type Configuration struct {
	Metadata *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	// Owner is present to implement gconf.OwnedConfig interface
	// This defines the Address that is allowed to update the Configuration object and is
	// needed to make use of gconf.NewUpdateConfigurationHandler
	Owner weave.Address `protobuf:"bytes,2,opt,name=owner,proto3,casttype=github.com/iov-one/weave-collect.Address" json:"owner,omitempty"`
	// CollectorAddress receives all transaction fees.
	CollectorAddress weave.Address `protobuf:"bytes,3,opt,name=collector_address,json=collectorAddress,proto3,casttype=github.com/iov-one/weave-collect.Address" json:"collector_address,omitempty"`
	// MinimalFee is the lowest fee a transaction must pay. Zero disables it.
	MinimalFee *coin.Coin `protobuf:"bytes,4,opt,name=minimal_fee,json=minimalFee,proto3" json:"minimal_fee,omitempty"`
}

func (m *Configuration) Reset()         { *m = Configuration{} }
func (m *Configuration) String() string { return proto.CompactTextString(m) }
func (*Configuration) ProtoMessage()    {}

func (m *Configuration) GetOwner() weave.Address {
	if m != nil {
		return m.Owner
	}
	return nil
}

// UpdateConfigurationMsg is used by the gconf extension to update the
// configuration.
type UpdateConfigurationMsg struct {
	Metadata *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Patch    *Configuration  `protobuf:"bytes,2,opt,name=patch,proto3" json:"patch,omitempty"`
}

func (m *UpdateConfigurationMsg) Reset()         { *m = UpdateConfigurationMsg{} }
func (m *UpdateConfigurationMsg) String() string { return proto.CompactTextString(m) }
func (*UpdateConfigurationMsg) ProtoMessage()    {}

func init() {
	proto.RegisterType((*Set)(nil), "cash.Set")
	proto.RegisterType((*Allowance)(nil), "cash.Allowance")
	proto.RegisterType((*SendMsg)(nil), "cash.SendMsg")
	proto.RegisterType((*ApproveMsg)(nil), "cash.ApproveMsg")
	proto.RegisterType((*FeeInfo)(nil), "cash.FeeInfo")
	proto.RegisterType((*Configuration)(nil), "cash.Configuration")
	proto.RegisterType((*UpdateConfigurationMsg)(nil), "cash.UpdateConfigurationMsg")
}
