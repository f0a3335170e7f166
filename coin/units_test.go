package coin

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/iov-one/weave-collect/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseUnits(t *testing.T) {
	cases := map[string]struct {
		coin    Coin
		want    uint64
		wantErr *errors.Error
	}{
		"zero":            {coin: NewCoin(0, 0, "ETH"), want: 0},
		"whole only":      {coin: NewCoin(3, 0, "ETH"), want: 3000000000},
		"with fractional": {coin: NewCoin(1, 250, "ETH"), want: 1000000250},
		"negative":        {coin: NewCoin(-1, 0, "ETH"), wantErr: errors.ErrAmount},
		"overflow":        {coin: NewCoin(maxWhole+1, 0, "ETH"), wantErr: errors.ErrOverflow},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := tc.coin.BaseUnits()
			if tc.wantErr != nil {
				require.Error(t, err)
				assert.True(t, tc.wantErr.Is(err), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.Uint64())
		})
	}
}

func TestFromBaseUnits(t *testing.T) {
	c, err := FromBaseUnits(sdkmath.NewUint(7000000123), "DOT")
	require.NoError(t, err)
	assert.Equal(t, NewCoin(7, 123, "DOT"), c)

	_, err = FromBaseUnits(sdkmath.NewUint(1), "bad")
	assert.True(t, errors.ErrCurrency.Is(err))

	huge := sdkmath.NewUint(uint64(maxWhole)).Mul(sdkmath.NewUint(uint64(FracUnit))).Add(sdkmath.NewUint(uint64(FracUnit)))
	_, err = FromBaseUnits(huge, "DOT")
	assert.True(t, errors.ErrOverflow.Is(err))
}

func TestMulDivFloor(t *testing.T) {
	assert.Equal(t, uint64(33), MulDivFloor(sdkmath.NewUint(100), 3333, 10000).Uint64())
	assert.Equal(t, uint64(0), MulDivFloor(sdkmath.NewUint(1), 1, 10000).Uint64())
	assert.Equal(t, uint64(100), MulDivFloor(sdkmath.NewUint(100), 10000, 10000).Uint64())
	// The intermediate product does not fit in 64 bits.
	assert.Equal(t, ^uint64(0), MulDivFloor(sdkmath.NewUint(^uint64(0)), 9999, 9999).Uint64())
	assert.Panics(t, func() { MulDivFloor(sdkmath.NewUint(1), 1, 0) })
}
