package vaultsolana

import (
	"context"

	"github.com/hashicorp/vault/sdk/framework"
	"github.com/hashicorp/vault/sdk/logical"
)

func pathSign(b *pluginBackend) []*framework.Path {
	return []*framework.Path{
		{
			Pattern:      "wallets/" + framework.GenericNameRegex("name") + "/sign",
			HelpSynopsis: "Sign a Solana transaction using a wallet maintained by the plugin backend.",
			HelpDescription: `
	POST - sign a base64 encoded transaction as its fee payer and return it re-encoded

`,
			Fields: map[string]*framework.FieldSchema{
				"name": {
					Type:        framework.TypeString,
					Required:    true,
					Description: "Name of the wallet that pays the fee and signs.",
				},
				"transaction": {
					Type:        framework.TypeString,
					Required:    true,
					Description: "The base64 encoded serialized transaction to sign.",
				},
				"requireAllSigners": {
					Type:        framework.TypeBool,
					Default:     true,
					Description: "Fail unless the signed transaction carries every required signature. Disable to return a partially signed transaction for other signers.",
				},
			},

			Callbacks: map[logical.Operation]framework.OperationFunc{
				logical.UpdateOperation: b.signTxn,
			},
		},
	}
}

func (b *pluginBackend) signTxn(ctx context.Context, req *logical.Request, d *framework.FieldData) (*logical.Response, error) {
	name := d.Get("name").(string)

	kp, err := b.loadKeypair(ctx, req.Storage, name)
	if err != nil {
		return nil, err
	}
	if kp == nil {
		return nil, walletNotFound(name)
	}

	signed, err := b.adapter.CreateSignedTransaction(kp, d.Get("transaction").(string), d.Get("requireAllSigners").(bool))
	if err != nil {
		b.Logger().Error("Failed to sign transaction", "name", name, "public_key", kp.Address(), "error", err)
		return nil, codedError(err)
	}
	b.Logger().Debug("Signed transaction", "name", name, "public_key", kp.Address())

	return &logical.Response{
		Data: map[string]interface{}{
			"signedTransaction": signed,
		},
	}, nil
}
