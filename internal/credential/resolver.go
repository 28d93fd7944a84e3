// Package credential turns user-supplied Solana secret keys into signing keypairs.
//
// A secret is accepted either as a JSON array of 64 byte values (the format
// written by solana-keygen) or as a base58 string of the same 64 bytes (the
// format exported by most wallets). Resolve is pure and safe for concurrent
// use.
package credential

import (
	"fmt"
	"strings"
)

// Resolve decodes raw and returns the keypair it describes. Every failure is
// reported as a single "failed to load signer" message naming the cause, and
// can be classified with errors.Is against the package's Err values.
func Resolve(raw string) (*Keypair, error) {
	kp, err := resolve(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to load signer: %w", err)
	}
	return kp, nil
}

func resolve(raw string) (*Keypair, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrMissingCredential
	}

	secret, err := decodeSecret(raw)
	if err != nil {
		return nil, err
	}
	return NewKeypairFromSecret(secret)
}
