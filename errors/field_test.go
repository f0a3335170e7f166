package errors

import (
	"reflect"
	"testing"
)

func TestFieldErrors(t *testing.T) {
	var (
		priceErr     = Field("Price", ErrAmount, "must be positive")
		tickerErr    = Field("Price", ErrCurrency, "not whitelisted")
		addressErr   = Field("Address", ErrEmpty, "required")
		recipientErr = Field("Recipients.0", Append(
			tickerErr,
			Append(addressErr, ErrInput),
		), "invalid recipient")
		nestedErr = Field("Address", addressErr, "outer")
	)

	cases := map[string]struct {
		err   error
		field string
		want  []error
	}{
		"single match": {
			err:   priceErr,
			field: "Price",
			want:  []error{priceErr},
		},
		"all matches of a multi error": {
			err:   Append(priceErr, tickerErr),
			field: "Price",
			want:  []error{priceErr, tickerErr},
		},
		"field wrapping a multi error": {
			err:   recipientErr,
			field: "Recipients.0",
			want:  []error{recipientErr},
		},
		"match deep in the tree": {
			err:   recipientErr,
			field: "Address",
			want:  []error{addressErr},
		},
		"match behind a wrap": {
			err:   Wrap(Wrap(priceErr, "first"), "second"),
			field: "Price",
			want:  []error{priceErr},
		},
		"outermost match wins": {
			err:   nestedErr,
			field: "Address",
			want:  []error{nestedErr},
		},
		"no match": {
			err:   Append(priceErr, ErrNotFound),
			field: "Owner",
			want:  nil,
		},
		"nil error": {
			err:   nil,
			field: "Price",
			want:  nil,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got := FieldErrors(tc.err, tc.field)
			if !reflect.DeepEqual(tc.want, got) {
				t.Fatalf("want %v, got %v", tc.want, got)
			}
		})
	}
}

func TestFieldErrorMessage(t *testing.T) {
	if err := Field("Price", nil, "ignored"); err != nil {
		t.Fatalf("want nil, got %v", err)
	}
	err := Field("Price", ErrAmount, "got %d", -3)
	if want := `field "Price": got -3: invalid amount`; err.Error() != want {
		t.Fatalf("want %q, got %q", want, err.Error())
	}
	if !ErrAmount.Is(err) {
		t.Fatal("field error must keep its kind")
	}
	if got := AppendField(nil, "Price", nil); got != nil {
		t.Fatalf("want nil, got %v", got)
	}
}
