package weavetest

import (
	"context"
	"testing"

	weave "github.com/iov-one/weave-collect"
	"github.com/stretchr/testify/assert"
)

func TestAuth(t *testing.T) {
	a, b, c := NewCondition(), NewCondition(), NewCondition()

	cases := map[string]struct {
		auth    Auth
		want    []weave.Condition
		outside weave.Condition
	}{
		"nothing signed":       {auth: Auth{}, want: nil, outside: a},
		"single signer":        {auth: Auth{Signer: a}, want: []weave.Condition{a}, outside: b},
		"many signers":         {auth: Auth{Signers: []weave.Condition{a, b}}, want: []weave.Condition{a, b}, outside: c},
		"signer after signers": {auth: Auth{Signer: c, Signers: []weave.Condition{a, b}}, want: []weave.Condition{a, b, c}, outside: NewCondition()},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.auth.GetConditions(nil))
			for _, cond := range tc.want {
				assert.True(t, tc.auth.HasAddress(nil, cond.Address()))
			}
			assert.False(t, tc.auth.HasAddress(nil, tc.outside.Address()))
		})
	}
}

func TestCtxAuth(t *testing.T) {
	a, b := NewCondition(), NewCondition()
	publisher := &CtxAuth{Key: "publisher"}
	collector := &CtxAuth{Key: "collector"}

	ctx := publisher.SetConditions(context.Background(), a)

	assert.Equal(t, []weave.Condition{a}, publisher.GetConditions(ctx))
	assert.True(t, publisher.HasAddress(ctx, a.Address()))
	assert.False(t, publisher.HasAddress(ctx, b.Address()))

	assert.Nil(t, collector.GetConditions(ctx))
	assert.False(t, collector.HasAddress(ctx, a.Address()))

	broken := context.WithValue(context.Background(), "publisher", "not conditions")
	assert.Panics(t, func() { publisher.GetConditions(broken) })
}
