package weave_test

import (
	"fmt"
	"testing"

	weave "github.com/iov-one/weave-collect"
	"github.com/iov-one/weave-collect/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrorResponses(t *testing.T) {
	cases := map[string]struct {
		err      error
		debug    bool
		wantCode uint32
		wantLog  string
	}{
		"internal error is hidden": {
			err:      fmt.Errorf("disk full"),
			wantCode: 1,
			wantLog:  "internal error",
		},
		"internal error in debug mode": {
			err:      fmt.Errorf("disk full"),
			debug:    true,
			wantCode: 1,
			wantLog:  "disk full",
		},
		"registered error": {
			err:      errors.Wrap(errors.ErrAmount, "declared price"),
			wantCode: 13,
			wantLog:  "declared price: invalid amount",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			d := weave.DeliverOrError(nil, tc.err, tc.debug)
			assert.True(t, d.IsErr())
			assert.Equal(t, tc.wantCode, d.Code)
			assert.Equal(t, "cannot deliver tx: "+tc.wantLog, d.Log)

			c := weave.CheckOrError(nil, tc.err, tc.debug)
			assert.True(t, c.IsErr())
			assert.Equal(t, tc.wantCode, c.Code)
			assert.Equal(t, "cannot check tx: "+tc.wantLog, c.Log)
		})
	}
}

func TestSuccessResponses(t *testing.T) {
	deliver := weave.DeliverOrError(&weave.DeliverResult{
		Data: []byte("record"),
		Log:  "collected",
		Tags: []weave.KVPair{weave.Tag("collect", []byte("pub"))},
	}, nil, false)
	assert.False(t, deliver.IsErr())
	assert.Equal(t, []byte("record"), deliver.Data)
	assert.Equal(t, "collected", deliver.Log)
	assert.Equal(t, []byte("collect"), deliver.Tags[0].Key)

	check := weave.CheckOrError(&weave.CheckResult{Log: "ok", GasAllocated: 300}, nil, false)
	assert.False(t, check.IsErr())
	assert.Equal(t, int64(300), check.GasWanted)
	assert.Equal(t, "ok", check.Log)
}
