package adapters

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rpcRequest struct {
	ID     json.RawMessage   `json:"id"`
	Method string            `json:"method"`
	Params []json.RawMessage `json:"params"`
}

// newRPCServer answers JSON-RPC calls with the result registered for the
// method, or a JSON-RPC error when the method has none.
func newRPCServer(t *testing.T, results map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		id := string(req.ID)
		if id == "" {
			id = "null"
		}

		w.Header().Set("Content-Type", "application/json")
		result, ok := results[req.Method]
		if !ok {
			_, _ = w.Write([]byte(`{"jsonrpc":"2.0","error":{"code":-32601,"message":"Method not found"},"id":` + id + `}`))
			return
		}
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","result":` + result + `,"id":` + id + `}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRPCClientGetBalance(t *testing.T) {
	srv := newRPCServer(t, map[string]string{
		"getBalance": `{"context":{"slot":1},"value":2500000000}`,
	})

	client := NewRPCClient(srv.URL)
	defer client.Close()

	lamports, err := client.GetBalance(context.Background(), solana.NewWallet().PublicKey())
	require.NoError(t, err)
	assert.Equal(t, uint64(2_500_000_000), lamports)
}

func TestRPCClientGetAccountInfo(t *testing.T) {
	t.Run("existing account", func(t *testing.T) {
		srv := newRPCServer(t, map[string]string{
			"getAccountInfo": `{"context":{"slot":1},"value":{` +
				`"data":["AQID","base64"],"executable":false,"lamports":1000,` +
				`"owner":"11111111111111111111111111111111","rentEpoch":361}}`,
		})

		client := NewRPCClient(srv.URL)
		defer client.Close()

		info, err := client.GetAccountInfo(context.Background(), solana.NewWallet().PublicKey())
		require.NoError(t, err)
		require.NotNil(t, info)
		assert.Equal(t, solana.SystemProgramID.String(), info.Owner)
		assert.False(t, info.Executable)
		assert.Equal(t, uint64(361), info.RentEpoch)
		assert.Equal(t, 3, info.DataLength)
	})

	t.Run("missing account", func(t *testing.T) {
		srv := newRPCServer(t, map[string]string{
			"getAccountInfo": `{"context":{"slot":1},"value":null}`,
		})

		client := NewRPCClient(srv.URL)
		defer client.Close()

		info, err := client.GetAccountInfo(context.Background(), solana.NewWallet().PublicKey())
		require.NoError(t, err)
		assert.Nil(t, info)
	})

	t.Run("rpc error", func(t *testing.T) {
		srv := newRPCServer(t, nil)

		client := NewRPCClient(srv.URL)
		defer client.Close()

		_, err := client.GetAccountInfo(context.Background(), solana.NewWallet().PublicKey())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Method not found")
	})
}

func TestWalletInfoOverRPC(t *testing.T) {
	srv := newRPCServer(t, map[string]string{
		"getBalance":     `{"context":{"slot":1},"value":0}`,
		"getAccountInfo": `{"context":{"slot":1},"value":null}`,
	})

	kp := newTestKeypair(t)
	info, err := NewSolanaAdapter(nil).WalletInfo(context.Background(), kp, &Endpoint{URL: srv.URL, Label: srv.URL})
	require.NoError(t, err)
	assert.False(t, info.AccountExists)
	assert.Nil(t, info.AccountInfo)
	assert.Equal(t, srv.URL, info.Network)
}
