package collect

import (
	"github.com/gogo/protobuf/proto"
	weave "github.com/iov-one/weave-collect"
	"github.com/iov-one/weave-collect/coin"
)

// Sink selects how recipients of a publication are credited.
type Sink int32

const (
	// Sink_TRANSFER moves the cut directly to the recipient.
	Sink_TRANSFER Sink = 0
	// Sink_YIELD deposits the cut into the vault and credits the recipient
	// with the receipt.
	Sink_YIELD Sink = 1
)

var Sink_name = map[int32]string{
	0: "TRANSFER",
	1: "YIELD",
}

var Sink_value = map[string]int32{
	"TRANSFER": 0,
	"YIELD":    1,
}

func (x Sink) String() string {
	return proto.EnumName(Sink_name, int32(x))
}

// Recipient is entitled to a share of the distributable amount of every
// collection.
type Recipient struct {
	Address  weave.Address `protobuf:"bytes,1,opt,name=address,proto3,casttype=github.com/iov-one/weave-collect.Address" json:"address,omitempty"`
	ShareBps uint32        `protobuf:"varint,2,opt,name=share_bps,json=shareBps,proto3" json:"share_bps,omitempty"`
}

func (m *Recipient) Reset()         { *m = Recipient{} }
func (m *Recipient) String() string { return proto.CompactTextString(m) }
func (*Recipient) ProtoMessage()    {}

// FeeConfig is the collection configuration of a single publication.
type FeeConfig struct {
	Metadata *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	// Amount is the price of a single collection. Its ticker is the
	// currency the price is paid in.
	Amount         *coin.Coin   `protobuf:"bytes,2,opt,name=amount,proto3" json:"amount,omitempty"`
	Recipients     []*Recipient `protobuf:"bytes,3,rep,name=recipients,proto3" json:"recipients,omitempty"`
	ReferralFeeBps uint32       `protobuf:"varint,4,opt,name=referral_fee_bps,json=referralFeeBps,proto3" json:"referral_fee_bps,omitempty"`
	FollowerOnly   bool         `protobuf:"varint,5,opt,name=follower_only,json=followerOnly,proto3" json:"follower_only,omitempty"`
	// EndTimestamp is the last moment a collection is allowed. Zero means
	// no expiration.
	EndTimestamp weave.UnixTime `protobuf:"varint,6,opt,name=end_timestamp,json=endTimestamp,proto3,casttype=github.com/iov-one/weave-collect.UnixTime" json:"end_timestamp,omitempty"`
	// CollectLimit is the maximum number of collections. Zero means
	// unlimited.
	CollectLimit    uint64 `protobuf:"varint,7,opt,name=collect_limit,json=collectLimit,proto3" json:"collect_limit,omitempty"`
	CurrentCollects uint64 `protobuf:"varint,8,opt,name=current_collects,json=currentCollects,proto3" json:"current_collects,omitempty"`
	Sink            Sink   `protobuf:"varint,9,opt,name=sink,proto3,enum=collect.Sink" json:"sink,omitempty"`
}

func (m *FeeConfig) Reset()         { *m = FeeConfig{} }
func (m *FeeConfig) String() string { return proto.CompactTextString(m) }
func (*FeeConfig) ProtoMessage()    {}

func (m *FeeConfig) GetAmount() *coin.Coin {
	if m != nil {
		return m.Amount
	}
	return nil
}

func (m *FeeConfig) GetRecipients() []*Recipient {
	if m != nil {
		return m.Recipients
	}
	return nil
}

// InitConfig is the raw configuration a publication is initialized with.
// A single recipient can be declared using the Recipient field, which is
// equivalent to a Recipients list with one entry owning the whole share.
type InitConfig struct {
	Amount         *coin.Coin     `protobuf:"bytes,1,opt,name=amount,proto3" json:"amount,omitempty"`
	Recipient      weave.Address  `protobuf:"bytes,2,opt,name=recipient,proto3,casttype=github.com/iov-one/weave-collect.Address" json:"recipient,omitempty"`
	Recipients     []*Recipient   `protobuf:"bytes,3,rep,name=recipients,proto3" json:"recipients,omitempty"`
	ReferralFeeBps uint32         `protobuf:"varint,4,opt,name=referral_fee_bps,json=referralFeeBps,proto3" json:"referral_fee_bps,omitempty"`
	FollowerOnly   bool           `protobuf:"varint,5,opt,name=follower_only,json=followerOnly,proto3" json:"follower_only,omitempty"`
	EndTimestamp   weave.UnixTime `protobuf:"varint,6,opt,name=end_timestamp,json=endTimestamp,proto3,casttype=github.com/iov-one/weave-collect.UnixTime" json:"end_timestamp,omitempty"`
	CollectLimit   uint64         `protobuf:"varint,7,opt,name=collect_limit,json=collectLimit,proto3" json:"collect_limit,omitempty"`
	Sink           Sink           `protobuf:"varint,8,opt,name=sink,proto3,enum=collect.Sink" json:"sink,omitempty"`
}

func (m *InitConfig) Reset()         { *m = InitConfig{} }
func (m *InitConfig) String() string { return proto.CompactTextString(m) }
func (*InitConfig) ProtoMessage()    {}

// Movement is a single token transfer executed as part of a collection.
type Movement struct {
	Role        string        `protobuf:"bytes,1,opt,name=role,proto3" json:"role,omitempty"`
	Destination weave.Address `protobuf:"bytes,2,opt,name=destination,proto3,casttype=github.com/iov-one/weave-collect.Address" json:"destination,omitempty"`
	Amount      *coin.Coin    `protobuf:"bytes,3,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *Movement) Reset()         { *m = Movement{} }
func (m *Movement) String() string { return proto.CompactTextString(m) }
func (*Movement) ProtoMessage()    {}

// CollectRecord describes a processed collection.
type CollectRecord struct {
	Metadata  *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	OwnerID   uint64          `protobuf:"varint,2,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	PubID     uint64          `protobuf:"varint,3,opt,name=pub_id,json=pubId,proto3" json:"pub_id,omitempty"`
	Collector weave.Address   `protobuf:"bytes,4,opt,name=collector,proto3,casttype=github.com/iov-one/weave-collect.Address" json:"collector,omitempty"`
	// Number is the ordinal of this collection for the publication,
	// starting with 1.
	Number      uint64         `protobuf:"varint,5,opt,name=number,proto3" json:"number,omitempty"`
	Paid        *coin.Coin     `protobuf:"bytes,6,opt,name=paid,proto3" json:"paid,omitempty"`
	Movements   []*Movement    `protobuf:"bytes,7,rep,name=movements,proto3" json:"movements,omitempty"`
	CollectedAt weave.UnixTime `protobuf:"varint,8,opt,name=collected_at,json=collectedAt,proto3,casttype=github.com/iov-one/weave-collect.UnixTime" json:"collected_at,omitempty"`
}

func (m *CollectRecord) Reset()         { *m = CollectRecord{} }
func (m *CollectRecord) String() string { return proto.CompactTextString(m) }
func (*CollectRecord) ProtoMessage()    {}

// Configuration of the collect extension.
type Configuration struct {
	Metadata *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	// Owner is allowed to update the configuration.
	Owner weave.Address `protobuf:"bytes,2,opt,name=owner,proto3,casttype=github.com/iov-one/weave-collect.Address" json:"owner,omitempty"`
	// Hub is the only party allowed to initialize publications and to
	// request collections.
	Hub weave.Address `protobuf:"bytes,3,opt,name=hub,proto3,casttype=github.com/iov-one/weave-collect.Address" json:"hub,omitempty"`
	// Treasury receives the protocol fee of every collection.
	Treasury       weave.Address `protobuf:"bytes,4,opt,name=treasury,proto3,casttype=github.com/iov-one/weave-collect.Address" json:"treasury,omitempty"`
	TreasuryFeeBps uint32        `protobuf:"varint,5,opt,name=treasury_fee_bps,json=treasuryFeeBps,proto3" json:"treasury_fee_bps,omitempty"`
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

// InitializeMsg is sent by the hub when a publication is created.
type InitializeMsg struct {
	Metadata *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	OwnerID  uint64          `protobuf:"varint,2,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	PubID    uint64          `protobuf:"varint,3,opt,name=pub_id,json=pubId,proto3" json:"pub_id,omitempty"`
	// RawConfig is a protobuf serialized InitConfig.
	RawConfig []byte `protobuf:"bytes,4,opt,name=raw_config,json=rawConfig,proto3" json:"raw_config,omitempty"`
}

func (m *InitializeMsg) Reset()         { *m = InitializeMsg{} }
func (m *InitializeMsg) String() string { return proto.CompactTextString(m) }
func (*InitializeMsg) ProtoMessage()    {}

// CollectMsg is sent by the hub when a collector collects a publication.
type CollectMsg struct {
	Metadata  *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	OwnerID   uint64          `protobuf:"varint,2,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	PubID     uint64          `protobuf:"varint,3,opt,name=pub_id,json=pubId,proto3" json:"pub_id,omitempty"`
	Collector weave.Address   `protobuf:"bytes,4,opt,name=collector,proto3,casttype=github.com/iov-one/weave-collect.Address" json:"collector,omitempty"`
	// CollectorFollows is the hub evidence that the collector follows the
	// publication owner.
	CollectorFollows bool `protobuf:"varint,5,opt,name=collector_follows,json=collectorFollows,proto3" json:"collector_follows,omitempty"`
	// Declared is the price the collector agreed to pay.
	Declared *coin.Coin `protobuf:"bytes,6,opt,name=declared,proto3" json:"declared,omitempty"`
	// ReferrerOwnerID is the owner of the mirror the collection was made
	// through. Zero when collecting the original publication.
	ReferrerOwnerID uint64        `protobuf:"varint,7,opt,name=referrer_owner_id,json=referrerOwnerId,proto3" json:"referrer_owner_id,omitempty"`
	Referrer        weave.Address `protobuf:"bytes,8,opt,name=referrer,proto3,casttype=github.com/iov-one/weave-collect.Address" json:"referrer,omitempty"`
}

func (m *CollectMsg) Reset()         { *m = CollectMsg{} }
func (m *CollectMsg) String() string { return proto.CompactTextString(m) }
func (*CollectMsg) ProtoMessage()    {}

func init() {
	proto.RegisterEnum("collect.Sink", Sink_name, Sink_value)
	proto.RegisterType((*Recipient)(nil), "collect.Recipient")
	proto.RegisterType((*FeeConfig)(nil), "collect.FeeConfig")
	proto.RegisterType((*InitConfig)(nil), "collect.InitConfig")
	proto.RegisterType((*Movement)(nil), "collect.Movement")
	proto.RegisterType((*CollectRecord)(nil), "collect.CollectRecord")
	proto.RegisterType((*Configuration)(nil), "collect.Configuration")
	proto.RegisterType((*UpdateConfigurationMsg)(nil), "collect.UpdateConfigurationMsg")
	proto.RegisterType((*InitializeMsg)(nil), "collect.InitializeMsg")
	proto.RegisterType((*CollectMsg)(nil), "collect.CollectMsg")
}
