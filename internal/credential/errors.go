package credential

import (
	"errors"
	"fmt"
)

var (
	ErrMissingCredential  = errors.New("no credentials provided or secret key missing")
	ErrInvalidKeyLength   = errors.New("invalid secret key length")
	ErrInvalidKeyMaterial = errors.New("invalid secret key material")
	ErrUndecodable        = errors.New("secret key is neither a JSON byte array nor a base58 string")
)

// LengthError reports a secret that decoded to the wrong number of bytes.
type LengthError struct {
	Got int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("%s: expected %d bytes, got %d", ErrInvalidKeyLength, SecretKeySize, e.Got)
}

func (e *LengthError) Unwrap() error {
	return ErrInvalidKeyLength
}
