package errors

import (
	"testing"
)

func TestAppend(t *testing.T) {
	cases := map[string]struct {
		errs     []error
		wantNil  bool
		wantSize int
	}{
		"nothing": {
			errs:    nil,
			wantNil: true,
		},
		"nil values are ignored": {
			errs:    []error{nil, nil},
			wantNil: true,
		},
		"single error is returned unchanged": {
			errs:     []error{ErrNotFound, nil},
			wantSize: 1,
		},
		"two errors": {
			errs:     []error{ErrNotFound, ErrMsg},
			wantSize: 2,
		},
		"multi error is flattened": {
			errs:     []error{Append(ErrNotFound, ErrMsg), ErrState},
			wantSize: 3,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := Append(tc.errs...)
			if tc.wantNil {
				if err != nil {
					t.Fatalf("want nil, got %v", err)
				}
				return
			}
			size := 1
			if m, ok := err.(multiErr); ok {
				size = len(m)
			}
			if size != tc.wantSize {
				t.Fatalf("want %d errors, got %d", tc.wantSize, size)
			}
		})
	}
}

func TestMultiErrABCICode(t *testing.T) {
	err := Append(Wrap(ErrEmpty, "first"), ErrNotFound)
	if got := abciCode(err); got != ErrEmpty.code {
		t.Fatalf("want %d code, got %d", ErrEmpty.code, got)
	}
}
