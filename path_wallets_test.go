package vaultsolana

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/hashicorp/vault/sdk/logical"
	"github.com/stretchr/testify/require"

	"github.com/joaquinsoza/vaultsolana/internal/credential"
)

func jsonSecret(secret []byte) string {
	parts := make([]string, len(secret))
	for i, v := range secret {
		parts[i] = fmt.Sprint(v)
	}
	return "[" + strings.Join(parts, ",") + "]"
}

func TestWallets(t *testing.T) {
	b, s := getTestBackend(t)

	t.Run("List All Wallets", func(t *testing.T) {
		for i := 1; i <= 10; i++ {
			_, err := testWalletCreate(t, b, s, fmt.Sprintf("wallet-%d", i), map[string]interface{}{})
			require.NoError(t, err)
		}

		resp, err := testListWallets(t, b, s)
		require.NoError(t, err)
		require.Len(t, resp.Data["keys"].([]string), 10)
	})

	t.Run("Create Wallet - generated", func(t *testing.T) {
		resp, err := testWalletCreate(t, b, s, "generated", map[string]interface{}{})
		require.NoError(t, err)
		require.NotNil(t, resp)
		require.Nil(t, resp.Error())
		require.NotEmpty(t, resp.Data["publicKey"])

		read, err := testWalletRead(t, b, s, "generated")
		require.NoError(t, err)
		require.Equal(t, resp.Data["publicKey"], read.Data["publicKey"])
	})

	t.Run("Import Wallet - base58 and JSON resolve to the same key", func(t *testing.T) {
		kp, err := credential.GenerateKeypair()
		require.NoError(t, err)

		resp, err := testWalletCreate(t, b, s, "imported-base58", map[string]interface{}{
			"secretKey": kp.Encode(),
		})
		require.NoError(t, err)
		require.Equal(t, kp.Address(), resp.Data["publicKey"])

		resp, err = testWalletCreate(t, b, s, "imported-json", map[string]interface{}{
			"secretKey": jsonSecret(*kp.PrivateKey()),
		})
		require.NoError(t, err)
		require.Equal(t, kp.Address(), resp.Data["publicKey"])
	})

	t.Run("Import Wallet - raw secret is stored as supplied", func(t *testing.T) {
		kp, err := credential.GenerateKeypair()
		require.NoError(t, err)
		secret := jsonSecret(*kp.PrivateKey())

		_, err = testWalletCreate(t, b, s, "raw", map[string]interface{}{"secretKey": secret})
		require.NoError(t, err)

		wallet, err := b.getWallet(context.Background(), s, "raw")
		require.NoError(t, err)
		require.Equal(t, secret, wallet.PrivateKey)
		require.Equal(t, kp.Address(), wallet.PublicKey)
	})

	t.Run("Import Wallet - invalid secret", func(t *testing.T) {
		tests := []struct {
			name   string
			secret string
		}{
			{name: "short base58", secret: "3yZe7d"},
			{name: "short json", secret: "[1,2,3]"},
			{name: "garbage", secret: "not a key!"},
			{name: "mismatched public half", secret: jsonSecret(make([]byte, 64))},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := testWalletCreate(t, b, s, "invalid", map[string]interface{}{"secretKey": tt.secret})
				requireCodedError(t, err, http.StatusBadRequest)
				require.Contains(t, err.Error(), "failed to load signer")
			})
		}

		resp, err := testWalletRead(t, b, s, "invalid")
		require.NoError(t, err)
		require.Nil(t, resp)
	})

	t.Run("Create Wallet - existing name", func(t *testing.T) {
		_, err := testWalletCreate(t, b, s, "taken", map[string]interface{}{})
		require.NoError(t, err)

		_, err = testWalletCreate(t, b, s, "taken", map[string]interface{}{})
		requireCodedError(t, err, http.StatusBadRequest)
	})

	t.Run("Delete Wallet", func(t *testing.T) {
		_, err := testWalletCreate(t, b, s, "doomed", map[string]interface{}{})
		require.NoError(t, err)

		_, err = b.HandleRequest(context.Background(), &logical.Request{
			Operation: logical.DeleteOperation,
			Path:      "wallets/doomed",
			Storage:   s,
		})
		require.NoError(t, err)

		resp, err := testWalletRead(t, b, s, "doomed")
		require.NoError(t, err)
		require.Nil(t, resp)
	})
}

func testWalletCreate(t *testing.T, b *pluginBackend, s logical.Storage, name string, d map[string]interface{}) (*logical.Response, error) {
	t.Helper()
	resp, err := b.HandleRequest(context.Background(), &logical.Request{
		Operation: logical.UpdateOperation,
		Path:      "wallets/" + name,
		Data:      d,
		Storage:   s,
	})

	if err != nil {
		return nil, err
	}

	return resp, nil
}

func testWalletRead(t *testing.T, b *pluginBackend, s logical.Storage, name string) (*logical.Response, error) {
	t.Helper()
	return b.HandleRequest(context.Background(), &logical.Request{
		Operation: logical.ReadOperation,
		Path:      "wallets/" + name,
		Storage:   s,
	})
}

func testListWallets(t *testing.T, b *pluginBackend, s logical.Storage) (*logical.Response, error) {
	t.Helper()
	return b.HandleRequest(context.Background(), &logical.Request{
		Operation: logical.ListOperation,
		Path:      "wallets/",
		Storage:   s,
	})
}
