package vcmp

import (
	"errors"
	"testing"
)

func TestStateTokenRoundTrip(t *testing.T) {
	enc, err := NewEncoder([]byte("test-key"))
	if err != nil {
		t.Fatalf("NewEncoder() error = %v", err)
	}

	s := NewSchema("Item").
		Attr("class", Tag()).
		Attr("theme", Default("notice"))
	item := s.New(map[string]any{"class": "item"})

	token, err := StateToken(enc, item.Attrs(), false)
	if err != nil {
		t.Fatalf("StateToken() error = %v", err)
	}

	state, err := ParseStateToken(enc, token, false)
	if err != nil {
		t.Fatalf("ParseStateToken() error = %v", err)
	}

	// Tokens reconstruct valid constructor input.
	rebuilt := s.New(state)
	if got := rebuilt.Attr("class"); got != "item" {
		t.Errorf("class = %v, want item", got)
	}
	if got := rebuilt.Attr("theme"); got != "notice" {
		t.Errorf("theme = %v, want notice", got)
	}
}

func TestParseStateTokenSentinels(t *testing.T) {
	enc, err := NewEncoder([]byte("test-key"))
	if err != nil {
		t.Fatalf("NewEncoder() error = %v", err)
	}

	_, terr := ParseStateToken(enc, "not-a-token", false)
	if !errors.Is(terr, ErrInvalidToken) {
		t.Errorf("error = %v, want ErrInvalidToken", terr)
	}
	if !IsTokenError(terr) {
		t.Error("IsTokenError() = false for malformed token")
	}

	other, err := NewEncoder([]byte("other-key"))
	if err != nil {
		t.Fatalf("NewEncoder() error = %v", err)
	}
	token, err := StateToken(other, NewSchema("X").Attr("a", Default("b")).NewAttrs(nil), true)
	if err != nil {
		t.Fatalf("StateToken() error = %v", err)
	}
	if _, err := ParseStateToken(enc, token, true); !errors.Is(err, ErrDecryptFailed) {
		t.Errorf("error = %v, want ErrDecryptFailed", err)
	}
}
