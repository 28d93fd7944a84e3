package vaultsolana

import (
	"context"
	"fmt"

	"github.com/hashicorp/vault/sdk/framework"
	"github.com/hashicorp/vault/sdk/logical"

	"github.com/joaquinsoza/vaultsolana/internal/adapters"
)

func pathWalletInfo(b *pluginBackend) []*framework.Path {
	return []*framework.Path{
		{
			Pattern:      "wallets/" + framework.GenericNameRegex("name") + "/info",
			HelpSynopsis: "Report a wallet's public key, or its balance and account state on a Solana network.",
			HelpDescription: `
	GET, POST - with operation=publicKeyOnly return the public key without any
	            network call; with operation=walletInfo also query the balance
	            and account of the wallet on the selected network

`,
			Fields: map[string]*framework.FieldSchema{
				"name": {
					Type:        framework.TypeString,
					Required:    true,
					Description: "Name of the wallet.",
				},
				"operation": {
					Type:          framework.TypeString,
					Default:       adapters.OperationPublicKeyOnly.String(),
					Description:   "What to report: 'publicKeyOnly' or 'walletInfo'.",
					AllowedValues: adapters.AllowedOperations(),
				},
				"network": {
					Type:          framework.TypeString,
					Default:       adapters.NetworkMainnetBeta.String(),
					Description:   "Network to query: 'mainnet-beta', 'devnet', 'testnet' or 'custom'.",
					AllowedValues: adapters.AllowedNetworks(),
				},
				"customRpcUrl": {
					Type:        framework.TypeString,
					Default:     Empty,
					Description: "RPC URL used when network is 'custom'. Falls back to the URL in config/rpc.",
				},
			},

			Callbacks: map[logical.Operation]framework.OperationFunc{
				logical.ReadOperation:   b.walletInfo,
				logical.UpdateOperation: b.walletInfo,
			},
		},
	}
}

func (b *pluginBackend) walletInfo(ctx context.Context, req *logical.Request, d *framework.FieldData) (*logical.Response, error) {
	name := d.Get("name").(string)

	operation := adapters.Operation(d.Get("operation").(string))
	if !operation.IsValid() {
		return nil, codedError(fmt.Errorf("%w: unsupported operation %q", adapters.ErrInvalidParameter, operation))
	}

	kp, err := b.loadKeypair(ctx, req.Storage, name)
	if err != nil {
		return nil, err
	}
	if kp == nil {
		return nil, walletNotFound(name)
	}

	if operation == adapters.OperationPublicKeyOnly {
		return &logical.Response{
			Data: map[string]interface{}{
				"publicKey": kp.Address(),
			},
		}, nil
	}

	network := adapters.Network(d.Get("network").(string))
	var stored *adapters.RPCConfig
	if network == adapters.NetworkCustom {
		if stored, err = b.getRPCConfig(ctx, req.Storage); err != nil {
			return nil, err
		}
	}

	endpoint, err := adapters.ResolveEndpoint(network, d.Get("customRpcUrl").(string), stored)
	if err != nil {
		return nil, codedError(err)
	}

	info, err := b.adapter.WalletInfo(ctx, kp, endpoint)
	if err != nil {
		b.Logger().Error("Failed to get wallet information", "name", name, "network", endpoint.Label, "error", err)
		return nil, codedError(err)
	}

	return &logical.Response{
		Data: walletInfoResponse(info),
	}, nil
}

func walletInfoResponse(info *adapters.WalletInfo) map[string]interface{} {
	data := map[string]interface{}{
		"publicKey": info.PublicKey,
		"balance": map[string]interface{}{
			"lamports": info.Balance.Lamports,
			"sol":      info.Balance.SOLFloat(),
		},
		"network":       info.Network,
		"accountExists": info.AccountExists,
	}
	if info.AccountInfo != nil {
		data["accountInfo"] = map[string]interface{}{
			"owner":      info.AccountInfo.Owner,
			"executable": info.AccountInfo.Executable,
			"rentEpoch":  info.AccountInfo.RentEpoch,
			"dataLength": info.AccountInfo.DataLength,
		}
	}
	return data
}
