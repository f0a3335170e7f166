package weave

import (
	"testing"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/weave-collect/errors"
	"github.com/iov-one/weave-collect/weavetest/assert"
)

type publishMsg struct {
	OwnerID int64  `protobuf:"varint,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	Title   string `protobuf:"bytes,2,opt,name=title,proto3" json:"title,omitempty"`
	err     error
}

var _ Msg = (*publishMsg)(nil)

func (m *publishMsg) Reset()          { *m = publishMsg{} }
func (m *publishMsg) String() string  { return proto.CompactTextString(m) }
func (*publishMsg) ProtoMessage()     {}
func (*publishMsg) Path() string      { return "test/publish" }
func (m *publishMsg) Validate() error { return m.err }

type otherMsg struct {
	publishMsg
}

type txStub struct {
	Tx
	msg Msg
	err error
}

func (tx *txStub) GetMsg() (Msg, error) { return tx.msg, tx.err }

func TestGetPath(t *testing.T) {
	assert.Equal(t, "test/publish", GetPath(&txStub{msg: &publishMsg{}}))
	assert.Equal(t, "(missing)", GetPath(&txStub{}))
	assert.Equal(t, "(missing)", GetPath(&txStub{msg: &publishMsg{}, err: errors.ErrInput}))
}

func TestLoadMsg(t *testing.T) {
	cases := map[string]struct {
		tx      Tx
		dest    interface{}
		want    interface{}
		wantErr *errors.Error
	}{
		"pointer destination": {
			tx:   &txStub{msg: &publishMsg{OwnerID: 4, Title: "news"}},
			dest: &publishMsg{},
			want: &publishMsg{OwnerID: 4, Title: "news"},
		},
		"pointer to pointer destination": {
			tx:      &txStub{msg: &publishMsg{OwnerID: 4}},
			dest:    new(*publishMsg),
			wantErr: errors.ErrType,
		},
		"tx error": {
			tx:      &txStub{err: errors.ErrInput},
			dest:    &publishMsg{},
			wantErr: errors.ErrInput,
		},
		"nil message": {
			tx:      &txStub{},
			dest:    &publishMsg{},
			wantErr: errors.ErrState,
		},
		"typed nil message": {
			tx:      &txStub{msg: (*publishMsg)(nil)},
			dest:    &publishMsg{},
			wantErr: errors.ErrState,
		},
		"invalid message": {
			tx:      &txStub{msg: &publishMsg{err: errors.ErrAmount}},
			dest:    &publishMsg{},
			wantErr: errors.ErrAmount,
		},
		"destination is not a pointer": {
			tx:      &txStub{msg: &publishMsg{}},
			dest:    publishMsg{},
			wantErr: errors.ErrType,
		},
		"destination is a nil pointer": {
			tx:      &txStub{msg: &publishMsg{}},
			dest:    (*publishMsg)(nil),
			wantErr: errors.ErrType,
		},
		"destination is nil": {
			tx:      &txStub{msg: &publishMsg{}},
			wantErr: errors.ErrType,
		},
		"destination of another type": {
			tx:      &txStub{msg: &publishMsg{}},
			dest:    &otherMsg{},
			wantErr: errors.ErrType,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := LoadMsg(tc.tx, tc.dest)
			assert.IsErr(t, tc.wantErr, err)
			if tc.wantErr == nil {
				assert.Equal(t, tc.want, tc.dest)
			}
		})
	}
}
