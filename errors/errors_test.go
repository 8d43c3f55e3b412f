package errors

import (
	stdlib "errors"
	"fmt"
	"testing"

	"github.com/pkg/errors"
)

func TestIsFollowsWraps(t *testing.T) {
	std := stdlib.New("disk full")
	walletGone := Wrap(Wrapf(ErrNotFound, "wallet %X", []byte{1}), "execute")

	cases := map[string]struct {
		root   *Error
		err    error
		wantIs bool
		cause  error
	}{
		"root matches itself": {
			root: ErrNotFound, err: ErrNotFound, wantIs: true, cause: ErrNotFound,
		},
		"root matches through wraps": {
			root: ErrNotFound, err: walletGone, wantIs: true, cause: ErrNotFound,
		},
		"wrapped with pkg errors": {
			root: ErrState, err: errors.Wrap(ErrState, "pool"), wantIs: true, cause: ErrState,
		},
		"other root": {
			root: ErrState, err: walletGone, cause: ErrNotFound,
		},
		"stdlib root": {
			root: ErrDatabase, err: Wrap(std, "save"), cause: std,
		},
		"nil root matches nil": {
			root: nil, err: nil, wantIs: true,
		},
		"nil root matches typed nil": {
			root: nil, err: (*typedNil)(nil), wantIs: true, cause: (*typedNil)(nil),
		},
		"nil root does not match an error": {
			root: nil, err: ErrState, cause: ErrState,
		},
		"root does not match nil": {
			root: ErrState, err: nil,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if got := tc.root.Is(tc.err); got != tc.wantIs {
				t.Fatalf("want %v, got %v", tc.wantIs, got)
			}
			if got := errors.Cause(tc.err); got != tc.cause {
				t.Fatalf("want %v cause, got %v", tc.cause, got)
			}
		})
	}
}

type typedNil struct{}

func (*typedNil) Error() string { return "typed nil" }

func TestWrapEmpty(t *testing.T) {
	if err := Wrap(nil, "wrapping <nil>"); err != nil {
		t.Fatal(err)
	}
}

func TestRegisterDuplicatedCode(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("registering the same code twice must panic")
		}
	}()
	Register(ErrNotFound.code, "again")
}

func TestRecover(t *testing.T) {
	run := func() (err error) {
		defer Recover(&err)
		panic("unexpected")
	}
	err := run()
	if !ErrPanic.Is(err) {
		t.Fatalf("want panic error, got %+v", err)
	}
	if code, log := ABCIInfo(Redact(err, false), false); code != internalABCICode || log != internalABCILog {
		t.Fatalf("panic must be redacted, got %d %q", code, log)
	}
}

func TestWrapAttachesStackOnce(t *testing.T) {
	inner := Wrap(ErrState, "inner")
	outer := Wrap(inner, "outer")
	if stackTrace(inner) == nil {
		t.Fatal("missing stack trace")
	}
	if fmt.Sprintf("%v", stackTrace(outer)) != fmt.Sprintf("%v", stackTrace(inner)) {
		t.Fatal("outer wrap must reuse the inner stack trace")
	}
	if got := outer.Error(); got != "outer: inner: invalid state" {
		t.Fatalf("unexpected message %q", got)
	}
}
