package vault

import (
	"github.com/gogo/protobuf/proto"
	weave "github.com/iov-one/weave-collect"
	"github.com/iov-one/weave-collect/coin"
)

// Pool tracks deposits of a single underlying token. Deposited funds are held
// by the reserve account of the pool and depositors are credited receipt
// tokens that represent their share of the reserve.
type Pool struct {
	Metadata *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	// Ticker of the underlying token.
	Ticker string `protobuf:"bytes,2,opt,name=ticker,proto3" json:"ticker,omitempty"`
	// ReceiptTicker is the ticker of the token minted for depositors.
	ReceiptTicker string `protobuf:"bytes,3,opt,name=receipt_ticker,json=receiptTicker,proto3" json:"receipt_ticker,omitempty"`
	// Reserve is the total amount of the underlying token deposited.
	Reserve *coin.Coin `protobuf:"bytes,4,opt,name=reserve,proto3" json:"reserve,omitempty"`
	// Shares is the total amount of receipt tokens minted.
	Shares *coin.Coin `protobuf:"bytes,5,opt,name=shares,proto3" json:"shares,omitempty"`
}

func (m *Pool) Reset()         { *m = Pool{} }
func (m *Pool) String() string { return proto.CompactTextString(m) }
func (*Pool) ProtoMessage()    {}

func (m *Pool) GetReserve() *coin.Coin {
	if m != nil {
		return m.Reserve
	}
	return nil
}

func (m *Pool) GetShares() *coin.Coin {
	if m != nil {
		return m.Shares
	}
	return nil
}

// DepositMsg moves funds of the depositor into the pool reserve and credits
// the depositor with receipt tokens.
type DepositMsg struct {
	Metadata  *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Depositor weave.Address   `protobuf:"bytes,2,opt,name=depositor,proto3,casttype=github.com/iov-one/weave-collect.Address" json:"depositor,omitempty"`
	Amount    *coin.Coin      `protobuf:"bytes,3,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *DepositMsg) Reset()         { *m = DepositMsg{} }
func (m *DepositMsg) String() string { return proto.CompactTextString(m) }
func (*DepositMsg) ProtoMessage()    {}

func init() {
	proto.RegisterType((*Pool)(nil), "vault.Pool")
	proto.RegisterType((*DepositMsg)(nil), "vault.DepositMsg")
}
