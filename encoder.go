package vcmp

import (
	"errors"

	"github.com/pthm/vcmp/lib/encoding"
)

// Encoder is an alias for encoding.Encoder for convenience.
type Encoder = encoding.Encoder

// NewEncoder creates a new state-token encoder with the given key.
func NewEncoder(key []byte) (*Encoder, error) {
	return encoding.NewEncoder(key)
}

// StateToken serializes an instance's attribute state into an opaque
// token, typically emitted under a data-state attribute so a later
// request can reconstruct the element server-side:
//
//	token, err := vcmp.StateToken(enc, item.Attrs(), false)
//	item.TagAttrs().Add(map[string]any{"data": map[string]any{"state": token}})
//
// With sensitive true the token is encrypted rather than signed.
func StateToken(enc *Encoder, attrs *Attrs, sensitive bool) (string, error) {
	token, err := enc.EncodeState(attrs.Values(), sensitive)
	if err != nil {
		return "", err
	}
	return token, nil
}

// ParseStateToken decodes a state token back into constructor input for
// Schema.New. Tampered or malformed tokens return a sentinel error
// (ErrSignatureInvalid, ErrDecryptFailed, ErrInvalidToken).
func ParseStateToken(enc *Encoder, token string, sensitive bool) (map[string]any, error) {
	state, err := enc.DecodeState(token, sensitive)
	if err != nil {
		return nil, wrapEncodingError(err)
	}
	return state, nil
}

// wrapEncodingError maps encoding package errors to vcmp sentinels.
func wrapEncodingError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, encoding.ErrInvalidFormat) {
		return ErrInvalidToken
	}
	if errors.Is(err, encoding.ErrSignatureInvalid) {
		return ErrSignatureInvalid
	}
	if errors.Is(err, encoding.ErrDecryptFailed) {
		return ErrDecryptFailed
	}
	return err
}
