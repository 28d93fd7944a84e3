package vaultsolana

import (
	"context"
	"strings"

	"github.com/hashicorp/vault/sdk/framework"
	"github.com/hashicorp/vault/sdk/logical"

	"github.com/joaquinsoza/vaultsolana/internal/adapters"
)

const backendHelp = `
The Solana secrets engine keeps ed25519 wallet secrets in seal-wrapped
storage and signs Solana transactions with them. Secrets never leave the
engine: callers get public keys, signed transactions and wallet balances.
`

func Factory(ctx context.Context, conf *logical.BackendConfig) (logical.Backend, error) {
	b := backend()
	if err := b.Setup(ctx, conf); err != nil {
		return nil, err
	}
	return b, nil
}

type pluginBackend struct {
	*framework.Backend
	adapter adapters.BlockchainAdapter
}

func backend() *pluginBackend {
	return newBackend(adapters.NewRPCClient)
}

// newBackend builds the backend with newClient opening the RPC connections
// used for wallet info lookups.
func newBackend(newClient adapters.ClientFactory) *pluginBackend {
	var b = pluginBackend{
		adapter: adapters.NewSolanaAdapter(newClient),
	}

	b.Backend = &framework.Backend{
		Help: strings.TrimSpace(backendHelp),
		PathsSpecial: &logical.Paths{
			SealWrapStorage: []string{
				"wallets/",
				"config/",
			},
		},
		Paths: framework.PathAppend(
			pathConfig(&b),
			walletsPaths(&b),
			pathSign(&b),
			pathWalletInfo(&b),
		),
		Secrets:     []*framework.Secret{},
		BackendType: logical.TypeLogical,
	}
	return &b
}
