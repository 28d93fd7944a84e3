package vaultsolana

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashicorp/vault/sdk/framework"
	"github.com/hashicorp/vault/sdk/logical"

	"github.com/joaquinsoza/vaultsolana/internal/adapters"
)

const rpcConfigPath = "config/rpc"

func pathConfig(b *pluginBackend) []*framework.Path {
	return []*framework.Path{
		{
			Pattern:      "config/rpc",
			HelpSynopsis: "Configure the RPC endpoint used when wallet info asks for a custom network.",
			HelpDescription: `
	GET    - read the stored RPC configuration
	POST   - store a named network, or 'custom' with customRpcUrl
	DELETE - remove the stored RPC configuration

`,
			Fields: map[string]*framework.FieldSchema{
				"network": {
					Type:          framework.TypeString,
					Default:       adapters.NetworkMainnetBeta.String(),
					Description:   "Network of the RPC endpoint: 'mainnet-beta', 'devnet', 'testnet' or 'custom'.",
					AllowedValues: adapters.AllowedNetworks(),
				},
				"customRpcUrl": {
					Type:        framework.TypeString,
					Default:     Empty,
					Description: "RPC URL, required when network is 'custom'.",
				},
			},

			Callbacks: map[logical.Operation]framework.OperationFunc{
				logical.ReadOperation:   b.readRPCConfig,
				logical.UpdateOperation: b.writeRPCConfig,
				logical.DeleteOperation: b.deleteRPCConfig,
			},
		},
	}
}

func (b *pluginBackend) readRPCConfig(ctx context.Context, req *logical.Request, d *framework.FieldData) (*logical.Response, error) {
	config, err := b.getRPCConfig(ctx, req.Storage)
	if err != nil {
		return nil, err
	}
	if config == nil {
		return nil, nil
	}

	return &logical.Response{
		Data: map[string]interface{}{
			"network":      config.Network.String(),
			"customRpcUrl": config.CustomRPCURL,
		},
	}, nil
}

func (b *pluginBackend) writeRPCConfig(ctx context.Context, req *logical.Request, d *framework.FieldData) (*logical.Response, error) {
	config := &adapters.RPCConfig{
		Network:      adapters.Network(d.Get("network").(string)),
		CustomRPCURL: strings.TrimSpace(d.Get("customRpcUrl").(string)),
	}
	if err := config.Validate(); err != nil {
		return nil, codedError(err)
	}

	entry, err := logical.StorageEntryJSON(rpcConfigPath, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage entry for rpc config: %w", err)
	}
	if err := req.Storage.Put(ctx, entry); err != nil {
		b.Logger().Error("Failed to save the rpc config", "error", err)
		return nil, err
	}
	b.Logger().Debug("Stored rpc config", "network", config.Network)

	return nil, nil
}

func (b *pluginBackend) deleteRPCConfig(ctx context.Context, req *logical.Request, d *framework.FieldData) (*logical.Response, error) {
	if err := req.Storage.Delete(ctx, rpcConfigPath); err != nil {
		b.Logger().Error("Failed to delete the rpc config", "error", err)
		return nil, err
	}
	return nil, nil
}

func (b *pluginBackend) getRPCConfig(ctx context.Context, s logical.Storage) (*adapters.RPCConfig, error) {
	entry, err := s.Get(ctx, rpcConfigPath)
	if err != nil {
		b.Logger().Error("Failed to retrieve the rpc config", "error", err)
		return nil, err
	}
	if entry == nil {
		return nil, nil
	}

	var config adapters.RPCConfig
	if err := entry.DecodeJSON(&config); err != nil {
		return nil, fmt.Errorf("failed to decode rpc config: %w", err)
	}
	return &config, nil
}
