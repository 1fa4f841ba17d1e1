package errors

import (
	stderrors "errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidColor, "invalid color: %s", "#zzz")
	if got, want := err.Error(), "INVALID_COLOR: invalid color: #zzz"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !Is(err, ErrCodeInvalidColor) {
		t.Error("Is(err, ErrCodeInvalidColor) = false, want true")
	}
	if Is(err, ErrCodeInternal) {
		t.Error("Is(err, ErrCodeInternal) = true, want false")
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := Wrap(ErrCodeCache, cause, "failed to store artifact")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error does not match cause via errors.Is")
	}
	if got := GetCode(err); got != ErrCodeCache {
		t.Errorf("GetCode = %q, want %q", got, ErrCodeCache)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidFamily, "unknown pattern family")
	if got, want := UserMessage(err), "unknown pattern family"; got != want {
		t.Errorf("UserMessage = %q, want %q", got, want)
	}

	plain := stderrors.New("plain error")
	if got, want := UserMessage(plain), "plain error"; got != want {
		t.Errorf("UserMessage(plain) = %q, want %q", got, want)
	}
}

func TestGetCode_NonStructured(t *testing.T) {
	if got := GetCode(stderrors.New("boom")); got != "" {
		t.Errorf("GetCode(plain) = %q, want empty", got)
	}
}
