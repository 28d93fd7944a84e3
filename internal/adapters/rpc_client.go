package adapters

import (
	"context"
	"errors"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// ChainClient is the slice of the Solana JSON-RPC API the plugin reads from.
type ChainClient interface {
	GetBalance(ctx context.Context, account solana.PublicKey) (uint64, error)

	// GetAccountInfo returns nil, nil when the account does not exist.
	GetAccountInfo(ctx context.Context, account solana.PublicKey) (*AccountInfo, error)

	Close() error
}

// ClientFactory opens a ChainClient against an RPC endpoint URL.
type ClientFactory func(endpoint string) ChainClient

type rpcChainClient struct {
	client *rpc.Client
}

func NewRPCClient(endpoint string) ChainClient {
	return &rpcChainClient{client: rpc.New(endpoint)}
}

func (c *rpcChainClient) GetBalance(ctx context.Context, account solana.PublicKey) (uint64, error) {
	out, err := c.client.GetBalance(ctx, account, rpc.CommitmentFinalized)
	if err != nil {
		return 0, err
	}
	return out.Value, nil
}

func (c *rpcChainClient) GetAccountInfo(ctx context.Context, account solana.PublicKey) (*AccountInfo, error) {
	out, err := c.client.GetAccountInfoWithOpts(ctx, account, &rpc.GetAccountInfoOpts{
		Commitment: rpc.CommitmentFinalized,
	})
	if errors.Is(err, rpc.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	info := &AccountInfo{
		Owner:      out.Value.Owner.String(),
		Executable: out.Value.Executable,
		DataLength: len(out.GetBinary()),
	}
	if out.Value.RentEpoch != nil {
		info.RentEpoch = out.Value.RentEpoch.Uint64()
	}
	return info, nil
}

func (c *rpcChainClient) Close() error {
	return c.client.Close()
}
