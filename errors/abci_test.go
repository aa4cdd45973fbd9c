package errors

import (
	"fmt"
	"strings"
	"testing"
)

func TestABCIInfo(t *testing.T) {
	cases := map[string]struct {
		err      error
		debug    bool
		wantCode uint32
		wantLog  string
	}{
		"nil error": {
			err:      nil,
			debug:    false,
			wantCode: SuccessABCICode,
			wantLog:  "",
		},
		"registered error": {
			err:      Wrap(ErrNotFound, "vault"),
			debug:    false,
			wantCode: ErrNotFound.ABCICode(),
			wantLog:  "vault: not found",
		},
		"stdlib is hidden": {
			err:      fmt.Errorf("lost connection"),
			debug:    false,
			wantCode: internalABCICode,
			wantLog:  internalABCILog,
		},
		"stdlib is exposed in debug mode": {
			err:      fmt.Errorf("lost connection"),
			debug:    true,
			wantCode: internalABCICode,
			wantLog:  "lost connection",
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			code, log := ABCIInfo(tc.err, tc.debug)
			if code != tc.wantCode {
				t.Fatalf("unexpected code: %d", code)
			}
			if !strings.HasPrefix(log, tc.wantLog) {
				t.Fatalf("unexpected log: %q", log)
			}
		})
	}
}

func TestRedact(t *testing.T) {
	if err := Redact(ErrPanic.New("boom"), false); strings.Contains(err.Error(), "boom") {
		t.Fatal("panic content must be redacted")
	}
	if err := Redact(fmt.Errorf("custom"), false); strings.Contains(err.Error(), "custom") {
		t.Fatal("unregistered errors must be redacted")
	}

	// redact is a noop in debug mode
	if err := Redact(ErrPanic.New("boom"), true); !strings.Contains(err.Error(), "boom") {
		t.Fatal("no redact in debug mode")
	}

	notFound := Wrap(ErrNotFound, "vault")
	if err := Redact(notFound, false); err != notFound {
		t.Fatal("registered errors must pass through")
	}
}
