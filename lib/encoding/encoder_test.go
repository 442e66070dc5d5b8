package encoding

import (
	"errors"
	"strings"
	"testing"
)

func testState() map[string]any {
	return map[string]any{
		"class": "card",
		"theme": "notice",
		"count": int64(3),
	}
}

func TestEncoderRoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		sensitive bool
	}{
		{"signed", false},
		{"encrypted", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc, err := NewEncoder([]byte("test-key"))
			if err != nil {
				t.Fatalf("NewEncoder() error = %v", err)
			}

			token, err := enc.EncodeState(testState(), tt.sensitive)
			if err != nil {
				t.Fatalf("EncodeState() error = %v", err)
			}

			state, err := enc.DecodeState(token, tt.sensitive)
			if err != nil {
				t.Fatalf("DecodeState() error = %v", err)
			}

			if state["class"] != "card" {
				t.Errorf("class = %v, want card", state["class"])
			}
			if state["theme"] != "notice" {
				t.Errorf("theme = %v, want notice", state["theme"])
			}
		})
	}
}

func TestDecodeRejectsTamperedSignedToken(t *testing.T) {
	enc, err := NewEncoder([]byte("test-key"))
	if err != nil {
		t.Fatalf("NewEncoder() error = %v", err)
	}

	token, err := enc.EncodeState(testState(), false)
	if err != nil {
		t.Fatalf("EncodeState() error = %v", err)
	}

	// Flip a payload character without touching the signature.
	payload := token[:strings.Index(token, ".")]
	flipped := "A"
	if strings.HasPrefix(payload, "A") {
		flipped = "B"
	}
	tampered := flipped + token[1:]

	if _, err := enc.DecodeState(tampered, false); !errors.Is(err, ErrSignatureInvalid) && !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("DecodeState(tampered) error = %v, want signature or format error", err)
	}
}

func TestDecodeRejectsMalformedTokens(t *testing.T) {
	enc, err := NewEncoder([]byte("test-key"))
	if err != nil {
		t.Fatalf("NewEncoder() error = %v", err)
	}

	tests := []struct {
		name      string
		token     string
		sensitive bool
	}{
		{"missing signature separator", "bm9zaWc", false},
		{"garbage base64", "!!!.???", false},
		{"short ciphertext", "c2hvcnQ", true},
		{"garbage ciphertext base64", "!!!", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := enc.DecodeState(tt.token, tt.sensitive); !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("DecodeState() error = %v, want ErrInvalidFormat", err)
			}
		})
	}
}

func TestDecodeWrongKeyFailsDecryption(t *testing.T) {
	enc1, err := NewEncoder([]byte("key-one"))
	if err != nil {
		t.Fatalf("NewEncoder() error = %v", err)
	}
	enc2, err := NewEncoder([]byte("key-two"))
	if err != nil {
		t.Fatalf("NewEncoder() error = %v", err)
	}

	token, err := enc1.EncodeState(testState(), true)
	if err != nil {
		t.Fatalf("EncodeState() error = %v", err)
	}

	if _, err := enc2.DecodeState(token, true); !errors.Is(err, ErrDecryptFailed) {
		t.Errorf("DecodeState() with wrong key error = %v, want ErrDecryptFailed", err)
	}
}
