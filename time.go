package weave

import (
	"encoding/json"
	"time"

	"github.com/iov-one/weave-collect/errors"
)

// UnixTime is a second precision POSIX timestamp. Protobuf messages declare
// it with gogoproto casttype on an int64 field.
type UnixTime int64

func AsUnixTime(t time.Time) UnixTime {
	return UnixTime(t.Unix())
}

func (t UnixTime) Time() time.Time {
	return time.Unix(int64(t), 0).UTC()
}

func (t UnixTime) IsZero() bool {
	return t == 0
}

func (t UnixTime) Validate() error {
	if t < 0 {
		return errors.Wrap(errors.ErrState, "before epoch")
	}
	return nil
}

func (t UnixTime) String() string {
	return t.Time().Format(time.RFC3339)
}

// UnmarshalJSON accepts either a number of seconds or an RFC 3339 string.
// Genesis files use the string form.
func (t *UnixTime) UnmarshalJSON(raw []byte) error {
	var secs int64
	if err := json.Unmarshal(raw, &secs); err != nil {
		var moment time.Time
		if err := json.Unmarshal(raw, &moment); err != nil {
			return errors.Wrap(errors.ErrInput, "time must be a number or an RFC 3339 string")
		}
		secs = moment.Unix()
	}
	if secs < 0 {
		return errors.Wrap(errors.ErrInput, "before epoch")
	}
	*t = UnixTime(secs)
	return nil
}
