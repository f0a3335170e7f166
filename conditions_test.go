package weave_test

import (
	"encoding/json"
	"strings"
	"testing"

	weave "github.com/iov-one/weave-collect"
	"github.com/iov-one/weave-collect/errors"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConditionFormat(t *testing.T) {
	Convey("Given the collect engine condition", t, func() {
		cond := weave.NewCondition("collect", "engine", []byte{0xCA, 0xFE})

		Convey("It parses back into its sections", func() {
			ext, typ, data, err := cond.Parse()
			So(err, ShouldBeNil)
			So(ext, ShouldEqual, "collect")
			So(typ, ShouldEqual, "engine")
			So(data, ShouldResemble, []byte{0xCA, 0xFE})
		})

		Convey("It prints data as upper case hex", func() {
			So(cond.String(), ShouldEqual, "collect/engine/CAFE")
		})

		Convey("Its address is a stable digest", func() {
			addr := cond.Address()
			So(addr.Validate(), ShouldBeNil)
			So(addr, ShouldResemble, weave.NewCondition("collect", "engine", []byte{0xCA, 0xFE}).Address())
			So(addr.Equals(weave.NewCondition("collect", "other", nil).Address()), ShouldBeFalse)
		})
	})

	Convey("Malformed conditions are rejected", t, func() {
		for _, raw := range []string{"ab/engine/x", "collect/engine", "collect/a b/data"} {
			So(errors.ErrInput.Is(weave.Condition(raw).Validate()), ShouldBeTrue)
		}
	})
}

func TestConditionJSON(t *testing.T) {
	engine := weave.NewCondition("collect", "engine", []byte("pub"))

	raw, err := json.Marshal(engine)
	require.NoError(t, err)
	assert.Equal(t, `"collect/engine/707562"`, string(raw))

	var got weave.Condition
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.True(t, engine.Equals(got))

	raw, err = json.Marshal(weave.Condition(nil))
	require.NoError(t, err)
	assert.Equal(t, `""`, string(raw))
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Nil(t, got)

	assert.True(t, errors.ErrInput.Is(json.Unmarshal([]byte(`"collect/707562"`), &got)))
	assert.True(t, errors.ErrInput.Is(json.Unmarshal([]byte(`"collect/engine/zz"`), &got)))
}

func TestParseAddress(t *testing.T) {
	engine := weave.NewCondition("collect", "engine", []byte("pub"))
	addr := engine.Address()
	bech, err := addr.Bech32String("iov")
	require.NoError(t, err)

	cases := map[string]struct {
		enc     string
		want    weave.Address
		wantErr *errors.Error
	}{
		"bare hex":          {enc: addr.String(), want: addr},
		"lower case hex":    {enc: "hex:" + strings.ToLower(addr.String()), want: addr},
		"condition":         {enc: "cond:collect/engine/707562", want: addr},
		"bech32":            {enc: "bech32:" + bech, want: addr},
		"empty":             {enc: "", want: nil},
		"empty with prefix": {enc: "cond:", want: nil},
		"short hex":         {enc: "hex:CAFE", wantErr: errors.ErrInput},
		"not hex":           {enc: "xyz", wantErr: errors.ErrInput},
		"bad condition":     {enc: "cond:collect/707562", wantErr: errors.ErrInput},
		"bad bech32":        {enc: "bech32:iov1qqqq", wantErr: errors.ErrInput},
		"unknown format":    {enc: "base64:AAAA", wantErr: errors.ErrType},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := weave.ParseAddress(tc.enc)
			if tc.wantErr != nil {
				assert.True(t, tc.wantErr.Is(err), "got %+v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestAddressJSON(t *testing.T) {
	addr := weave.NewCondition("sigs", "ed25519", []byte{1, 2, 3}).Address()

	raw, err := json.Marshal(addr)
	require.NoError(t, err)
	assert.Equal(t, `"`+addr.String()+`"`, string(raw))

	var got weave.Address
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, addr, got)

	assert.Equal(t, "(nil)", weave.Address(nil).String())
	assert.True(t, errors.ErrEmpty.Is(weave.Address(nil).Validate()))
}
