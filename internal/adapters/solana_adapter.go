package adapters

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/gagliardetto/solana-go"
	"golang.org/x/sync/errgroup"

	"github.com/joaquinsoza/vaultsolana/internal/credential"
)

const (
	opSignTransaction = "sign transaction"
	opWalletInfo      = "get wallet information"

	feePayerHint = "Make sure the transaction has a fee payer set and the signer address matches the fee payer address."
)

var errNoFeePayer = errors.New("transaction has no fee payer")

type solanaAdapter struct {
	newClient ClientFactory
}

// NewSolanaAdapter returns the Solana adapter. newClient opens the RPC client
// used for wallet info; nil means the solana-go JSON-RPC client.
func NewSolanaAdapter(newClient ClientFactory) *solanaAdapter {
	if newClient == nil {
		newClient = NewRPCClient
	}
	return &solanaAdapter{newClient: newClient}
}

func (a *solanaAdapter) DeriveWallet() (*Wallet, error) {
	kp, err := credential.GenerateKeypair()
	if err != nil {
		return nil, err
	}
	return &Wallet{
		PrivateKey: kp.Encode(),
		PublicKey:  kp.Address(),
	}, nil
}

// ImportWallet validates a user supplied secret and keeps it as given, so the
// stored credential is exactly what the user entered.
func (a *solanaAdapter) ImportWallet(secretKey string) (*Wallet, error) {
	kp, err := credential.Resolve(secretKey)
	if err != nil {
		return nil, err
	}
	return &Wallet{
		PrivateKey: strings.TrimSpace(secretKey),
		PublicKey:  kp.Address(),
	}, nil
}

func (a *solanaAdapter) validatePayload(payload string) (*solana.Transaction, error) {
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return nil, missingParameter("transaction", "")
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: transaction is not valid base64: %v", ErrInvalidPayload, err)
	}

	tx, err := solana.TransactionFromBytes(raw)
	if err != nil {
		return nil, &UpstreamError{Op: opSignTransaction, Err: fmt.Errorf("failed to deserialize transaction: %w", err)}
	}
	return tx, nil
}

// CreateSignedTransaction signs a base64 encoded transaction (legacy or v0)
// as its fee payer and returns it base64 encoded. With requireAllSigners the
// result must carry every required signature; without it, slots belonging to
// other signers may stay empty for them to fill.
func (a *solanaAdapter) CreateSignedTransaction(kp *credential.Keypair, payload string, requireAllSigners bool) (string, error) {
	tx, err := a.validatePayload(payload)
	if err != nil {
		return "", err
	}

	if err := signTransaction(tx, kp, requireAllSigners); err != nil {
		return "", &UpstreamError{Op: opSignTransaction, Err: err}
	}

	signed, err := tx.MarshalBinary()
	if err != nil {
		return "", &UpstreamError{Op: opSignTransaction, Err: fmt.Errorf("failed to encode transaction: %w", err)}
	}
	return base64.StdEncoding.EncodeToString(signed), nil
}

func signTransaction(tx *solana.Transaction, kp *credential.Keypair, requireAllSigners bool) error {
	required := int(tx.Message.Header.NumRequiredSignatures)
	if required == 0 || len(tx.Message.AccountKeys) < required {
		return fmt.Errorf("%w. %s", errNoFeePayer, feePayerHint)
	}

	feePayer := tx.Message.AccountKeys[0]
	if !feePayer.Equals(kp.PublicKey()) {
		return fmt.Errorf("fee payer mismatch: transaction fee payer %s does not match signer %s. %s",
			feePayer, kp.Address(), feePayerHint)
	}

	_, err := tx.PartialSign(func(key solana.PublicKey) *solana.PrivateKey {
		if key.Equals(kp.PublicKey()) {
			return kp.PrivateKey()
		}
		return nil
	})
	if err != nil {
		return err
	}

	if !requireAllSigners {
		return nil
	}

	var missing []string
	for i, sig := range tx.Signatures {
		if sig.IsZero() {
			missing = append(missing, tx.Message.AccountKeys[i].String())
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("transaction is missing signatures from %s; disable requireAllSigners to return a partially signed transaction",
			strings.Join(missing, ", "))
	}
	return nil
}

// WalletInfo fetches balance and account state for kp from endpoint. The two
// reads are independent and run concurrently against one client.
func (a *solanaAdapter) WalletInfo(ctx context.Context, kp *credential.Keypair, endpoint *Endpoint) (*WalletInfo, error) {
	client := a.newClient(endpoint.URL)
	defer client.Close()

	var (
		lamports uint64
		account  *AccountInfo
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		lamports, err = client.GetBalance(gctx, kp.PublicKey())
		return err
	})
	g.Go(func() error {
		var err error
		account, err = client.GetAccountInfo(gctx, kp.PublicKey())
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, &UpstreamError{Op: opWalletInfo, Err: err}
	}

	return &WalletInfo{
		PublicKey:     kp.Address(),
		Balance:       NewBalance(lamports),
		Network:       endpoint.Label,
		AccountExists: account != nil || lamports > 0,
		AccountInfo:   account,
	}, nil
}
