package vaultsolana

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/hashicorp/vault/sdk/framework"
	"github.com/hashicorp/vault/sdk/logical"

	"github.com/joaquinsoza/vaultsolana/internal/adapters"
	"github.com/joaquinsoza/vaultsolana/internal/credential"
)

const (
	Empty = ""

	walletsPrefix = "wallets/"
)

func walletPath(name string) string {
	return walletsPrefix + name
}

func walletsPaths(b *pluginBackend) []*framework.Path {
	return []*framework.Path{
		{
			Pattern:      "wallets/?$",
			HelpSynopsis: "List the wallets maintained by the plugin backend.",
			HelpDescription: `

    LIST - list the names of all stored wallets

`,
			Callbacks: map[logical.Operation]framework.OperationFunc{
				logical.ListOperation: b.listWallets,
			},
		},
		{
			Pattern:      "wallets/" + framework.GenericNameRegex("name"),
			HelpSynopsis: "Create, import, read or delete a Solana wallet.",
			HelpDescription: `

    POST   - create a wallet. Without secretKey a new keypair is generated;
             otherwise secretKey is imported as a JSON byte array or base58 string.
    GET    - return the wallet's public key
    DELETE - delete the wallet and its secret

`,
			Fields: map[string]*framework.FieldSchema{
				"name": {
					Type:        framework.TypeString,
					Required:    true,
					Description: "Name of the wallet.",
				},
				"secretKey": {
					Type:        framework.TypeString,
					Default:     Empty,
					Description: "64-byte ed25519 secret key, as a JSON array of 64 integers or a base58 string. If not provided, one is generated.",
					DisplayAttrs: &framework.DisplayAttributes{
						Sensitive: true,
					},
				},
			},

			Callbacks: map[logical.Operation]framework.OperationFunc{
				logical.ReadOperation:   b.readWallet,
				logical.UpdateOperation: b.createWallet,
				logical.DeleteOperation: b.deleteWallet,
			},
		},
	}
}

func (b *pluginBackend) listWallets(ctx context.Context, req *logical.Request, d *framework.FieldData) (*logical.Response, error) {
	vals, err := req.Storage.List(ctx, walletsPrefix)
	if err != nil {
		b.Logger().Error("Failed to retrieve the list of wallets", "error", err)
		return nil, err
	}

	return logical.ListResponse(vals), nil
}

func (b *pluginBackend) createWallet(ctx context.Context, req *logical.Request, d *framework.FieldData) (*logical.Response, error) {
	name := d.Get("name").(string)

	existing, err := b.getWallet(ctx, req.Storage, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, logical.CodedError(http.StatusBadRequest, fmt.Sprintf("wallet %q already exists", name))
	}

	var wallet *adapters.Wallet
	if secretKey := d.Get("secretKey").(string); strings.TrimSpace(secretKey) != Empty {
		wallet, err = b.adapter.ImportWallet(secretKey)
	} else {
		wallet, err = b.adapter.DeriveWallet()
	}
	if err != nil {
		return nil, codedError(err)
	}

	entry, err := logical.StorageEntryJSON(walletPath(name), wallet)
	if err != nil {
		b.Logger().Error("Failed to create storage entry for wallet", "name", name, "error", err)
		return nil, fmt.Errorf("failed to create storage entry for wallet: %w", err)
	}

	if err := req.Storage.Put(ctx, entry); err != nil {
		b.Logger().Error("Failed to save the wallet to storage", "name", name, "error", err)
		return nil, err
	}
	b.Logger().Debug("Stored wallet", "name", name, "public_key", wallet.PublicKey)

	return &logical.Response{
		Data: map[string]interface{}{
			"publicKey": wallet.PublicKey,
		},
	}, nil
}

func (b *pluginBackend) readWallet(ctx context.Context, req *logical.Request, d *framework.FieldData) (*logical.Response, error) {
	kp, err := b.loadKeypair(ctx, req.Storage, d.Get("name").(string))
	if err != nil {
		return nil, err
	}
	if kp == nil {
		return nil, nil
	}

	return &logical.Response{
		Data: map[string]interface{}{
			"publicKey": kp.Address(),
		},
	}, nil
}

func (b *pluginBackend) deleteWallet(ctx context.Context, req *logical.Request, d *framework.FieldData) (*logical.Response, error) {
	name := d.Get("name").(string)
	if err := req.Storage.Delete(ctx, walletPath(name)); err != nil {
		b.Logger().Error("Failed to delete wallet", "name", name, "error", err)
		return nil, err
	}
	return nil, nil
}

func (b *pluginBackend) getWallet(ctx context.Context, s logical.Storage, name string) (*adapters.Wallet, error) {
	entry, err := s.Get(ctx, walletPath(name))
	if err != nil {
		b.Logger().Error("Failed to retrieve the wallet", "name", name, "error", err)
		return nil, err
	}
	if entry == nil {
		return nil, nil
	}

	var wallet adapters.Wallet
	if err := entry.DecodeJSON(&wallet); err != nil {
		return nil, fmt.Errorf("failed to decode wallet %q: %w", name, err)
	}
	return &wallet, nil
}

// loadKeypair resolves the stored secret of a wallet into a keypair. It
// returns nil, nil when no wallet has that name.
func (b *pluginBackend) loadKeypair(ctx context.Context, s logical.Storage, name string) (*credential.Keypair, error) {
	wallet, err := b.getWallet(ctx, s, name)
	if err != nil || wallet == nil {
		return nil, err
	}

	kp, err := credential.Resolve(wallet.PrivateKey)
	if err != nil {
		return nil, codedError(err)
	}
	return kp, nil
}

func walletNotFound(name string) error {
	return logical.CodedError(http.StatusNotFound, fmt.Sprintf("no wallet found with name: %s", name))
}
