package orm

import (
	"encoding/binary"

	weave "github.com/iov-one/weave-collect"
)

// Sequence is a persisted counter stored under "_s.<bucket>:<name>".
// Encoded values are 8 byte big endian so byte order follows numeric order
// and they can be used directly as keys.
type Sequence struct {
	key []byte
}

func NewSequence(bucket, name string) Sequence {
	return Sequence{key: []byte("_s." + bucket + ":" + name)}
}

// NextVal advances the counter and returns the new value encoded.
func (s Sequence) NextVal(db weave.KVStore) ([]byte, error) {
	n, err := s.NextInt(db)
	if err != nil {
		return nil, err
	}
	return EncodeSequence(n), nil
}

// NextInt advances the counter and returns the new value.
func (s Sequence) NextInt(db weave.KVStore) (int64, error) {
	n, err := s.Latest(db)
	if err != nil {
		return 0, err
	}
	n++
	return n, db.Set(s.key, EncodeSequence(n))
}

// Latest returns the last value handed out, zero for an unused sequence.
func (s Sequence) Latest(db weave.ReadOnlyKVStore) (int64, error) {
	raw, err := db.Get(s.key)
	if err != nil {
		return 0, err
	}
	return DecodeSequence(raw), nil
}

func EncodeSequence(n int64) []byte {
	raw := make([]byte, 8)
	binary.BigEndian.PutUint64(raw, uint64(n))
	return raw
}

// DecodeSequence returns zero for an empty value.
func DecodeSequence(raw []byte) int64 {
	if len(raw) == 0 {
		return 0
	}
	return int64(binary.BigEndian.Uint64(raw))
}
