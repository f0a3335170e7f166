package weave

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/weave-collect/errors"
)

// Metadata is carried by every model and message. Schema declares the
// version of the serialization format used to create the entity.
type Metadata struct {
	Schema uint32 `protobuf:"varint,1,opt,name=schema,proto3" json:"schema,omitempty"`
}

func (m *Metadata) Reset()         { *m = Metadata{} }
func (m *Metadata) String() string { return proto.CompactTextString(m) }
func (*Metadata) ProtoMessage()    {}

// Validate returns an error if the metadata is missing or declares an
// unsupported schema version.
func (m *Metadata) Validate() error {
	if m == nil {
		return errors.Wrap(errors.ErrMetadata, "missing metadata")
	}
	if m.Schema < 1 {
		return errors.Wrap(errors.ErrMetadata, "schema must be greater than zero")
	}
	return nil
}
