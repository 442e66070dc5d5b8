package vcmp

import "errors"

// Sentinel errors for element access and state tokens.
var (
	ErrUnknownElement     = errors.New("vcmp: unknown element")
	ErrElementCardinality = errors.New("vcmp: element cardinality mismatch")
	ErrInvalidToken       = errors.New("vcmp: invalid state token format")
	ErrSignatureInvalid   = errors.New("vcmp: state token signature verification failed")
	ErrDecryptFailed      = errors.New("vcmp: state token decryption failed")
)

// IsTokenError checks if err came from state token verification,
// decryption, or parsing.
func IsTokenError(err error) bool {
	return errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrSignatureInvalid) ||
		errors.Is(err, ErrDecryptFailed)
}
