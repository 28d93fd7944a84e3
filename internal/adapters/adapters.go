package adapters

import (
	"context"
	"errors"
	"fmt"

	"github.com/joaquinsoza/vaultsolana/internal/credential"
)

var (
	ErrInvalidPayload   = errors.New("invalid payload format")
	ErrMissingParameter = errors.New("missing required parameter")
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrUpstream         = errors.New("upstream failure")
)

type BlockchainAdapter interface {
	DeriveWallet() (*Wallet, error)
	ImportWallet(secretKey string) (*Wallet, error)
	CreateSignedTransaction(kp *credential.Keypair, payload string, requireAllSigners bool) (string, error)
	WalletInfo(ctx context.Context, kp *credential.Keypair, endpoint *Endpoint) (*WalletInfo, error)
}

// UpstreamError wraps a failure surfaced by the Solana SDK or the RPC transport.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

func (e *UpstreamError) Is(target error) bool {
	return target == ErrUpstream
}

func missingParameter(name, reason string) error {
	if reason == "" {
		return fmt.Errorf("%w: %s", ErrMissingParameter, name)
	}
	return fmt.Errorf("%w: %s %s", ErrMissingParameter, name, reason)
}
