package utils

import (
	"context"
	"testing"

	weave "github.com/iov-one/weave-collect"
	"github.com/iov-one/weave-collect/errors"
	"github.com/iov-one/weave-collect/store"
	"github.com/iov-one/weave-collect/weavetest"
	"github.com/stretchr/testify/assert"
)

func TestActionTagger(t *testing.T) {
	cases := map[string]struct {
		handler *weavetest.Handler
		tx      weave.Tx
		wantErr *errors.Error
		tags    []weave.KVPair
	}{
		"simple call": {
			handler: &weavetest.Handler{},
			tx:      &weavetest.Tx{Msg: &weavetest.Msg{RoutePath: "collect/collect"}},
			tags:    []weave.KVPair{weave.Tag(ActionKey, []byte("collect/collect"))},
		},
		"passes through error": {
			handler: &weavetest.Handler{DeliverErr: errors.ErrHuman},
			tx:      &weavetest.Tx{Msg: &weavetest.Msg{RoutePath: "collect/collect"}},
			wantErr: errors.ErrHuman,
		},
		"tags are additive": {
			handler: &weavetest.Handler{
				DeliverResult: weave.DeliverResult{Tags: []weave.KVPair{weave.Tag("collect.pub", []byte("1"))}},
			},
			tx: &weavetest.Tx{Msg: &weavetest.Msg{RoutePath: "collect/initialize"}},
			tags: []weave.KVPair{
				weave.Tag("collect.pub", []byte("1")),
				weave.Tag(ActionKey, []byte("collect/initialize")),
			},
		},
		"tx error is reported before dispatching": {
			handler: &weavetest.Handler{},
			tx:      &weavetest.Tx{Err: errors.ErrInput},
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			stack := weavetest.Decorate(tc.handler, NewActionTagger())
			res, err := stack.Deliver(context.Background(), store.MemStore(), tc.tx)
			if !tc.wantErr.Is(err) {
				t.Fatalf("want %v, got %+v", tc.wantErr, err)
			}
			if tc.wantErr != nil {
				return
			}
			assert.Equal(t, tc.tags, res.Tags)
		})
	}
}
