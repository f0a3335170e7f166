package app

import (
	"github.com/gogo/protobuf/proto"
	weave "github.com/iov-one/weave-collect"
	"github.com/iov-one/weave-collect/errors"
)

// ResultSet is the query response encoding of a list of keys or values.
type ResultSet struct {
	Results [][]byte `protobuf:"bytes,1,rep,name=results,proto3" json:"results,omitempty"`
}

func (m *ResultSet) Reset()         { *m = ResultSet{} }
func (m *ResultSet) String() string { return proto.CompactTextString(m) }
func (*ResultSet) ProtoMessage()    {}

func init() {
	proto.RegisterType((*ResultSet)(nil), "app.ResultSet")
}

// splitModels returns the keys and the values of models as two result sets
// of the same order.
func splitModels(models []weave.Model) (keys, values *ResultSet) {
	keys = &ResultSet{Results: make([][]byte, len(models))}
	values = &ResultSet{Results: make([][]byte, len(models))}
	for i, m := range models {
		keys.Results[i] = m.Key
		values.Results[i] = m.Value
	}
	return keys, values
}

// JoinResults is the client side inverse of a query response, pairing keys
// with values.
func JoinResults(keys, values *ResultSet) ([]weave.Model, error) {
	if len(keys.Results) != len(values.Results) {
		return nil, errors.Wrapf(errors.ErrState, "%d keys and %d values", len(keys.Results), len(values.Results))
	}
	models := make([]weave.Model, len(keys.Results))
	for i := range models {
		models[i] = weave.Pair(keys.Results[i], values.Results[i])
	}
	return models, nil
}
