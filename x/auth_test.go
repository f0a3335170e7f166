package x

import (
	"context"
	"testing"

	weave "github.com/iov-one/weave-collect"
	"github.com/iov-one/weave-collect/weavetest"
	"github.com/stretchr/testify/assert"
)

func TestChainAuth(t *testing.T) {
	publisher := weavetest.NewCondition()
	collector := weavetest.NewCondition()
	stranger := weavetest.NewCondition()

	signed := &weavetest.CtxAuth{Key: "signed"}
	ctx := signed.SetConditions(context.Background(), collector)

	cases := map[string]struct {
		auth Authenticator
		want []weave.Condition
	}{
		"nothing proven": {
			auth: ChainAuth(),
			want: nil,
		},
		"single authenticator": {
			auth: ChainAuth(&weavetest.Auth{Signer: publisher}),
			want: []weave.Condition{publisher},
		},
		"conditions keep authenticator order": {
			auth: ChainAuth(&weavetest.Auth{Signer: publisher}, signed),
			want: []weave.Condition{publisher, collector},
		},
		"context authenticator first": {
			auth: ChainAuth(signed, &weavetest.Auth{Signer: publisher}),
			want: []weave.Condition{collector, publisher},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got := tc.auth.GetConditions(ctx)
			assert.Equal(t, tc.want, got)

			for _, c := range tc.want {
				assert.True(t, tc.auth.HasAddress(ctx, c.Address()))
			}
			assert.False(t, tc.auth.HasAddress(ctx, stranger.Address()))

			if len(tc.want) == 0 {
				assert.Nil(t, MainSigner(ctx, tc.auth))
			} else {
				assert.Equal(t, tc.want[0], MainSigner(ctx, tc.auth))
			}
		})
	}
}
