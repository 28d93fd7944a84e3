package credential

import (
	"bytes"
	"crypto/ed25519"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/gagliardetto/solana-go"
)

const (
	SecretKeySize = ed25519.PrivateKeySize
	PublicKeySize = ed25519.PublicKeySize
)

// Keypair is an ed25519 signing key together with its Solana public key.
// It lives for a single request and is never stored.
type Keypair struct {
	public  solana.PublicKey
	private solana.PrivateKey
}

// NewKeypairFromSecret builds a Keypair from a 64-byte secret: a 32-byte seed
// followed by the matching 32-byte public key.
func NewKeypairFromSecret(secret []byte) (*Keypair, error) {
	if len(secret) != SecretKeySize {
		return nil, &LengthError{Got: len(secret)}
	}

	if _, err := solana.ValidatePrivateKey(secret); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKeyMaterial, err)
	}

	derived := ed25519.NewKeyFromSeed(secret[:ed25519.SeedSize])
	if !bytes.Equal(derived[ed25519.SeedSize:], secret[ed25519.SeedSize:]) {
		return nil, fmt.Errorf("%w: public key does not match the secret seed", ErrInvalidKeyMaterial)
	}

	private := make(solana.PrivateKey, SecretKeySize)
	copy(private, secret)

	return &Keypair{
		public:  solana.PublicKeyFromBytes(private[ed25519.SeedSize:]),
		private: private,
	}, nil
}

func GenerateKeypair() (*Keypair, error) {
	private, err := solana.NewRandomPrivateKey()
	if err != nil {
		return nil, fmt.Errorf("failed to generate keypair: %w", err)
	}
	return NewKeypairFromSecret(private)
}

// PublicKey returns the keypair's public key
func (kp *Keypair) PublicKey() solana.PublicKey {
	return kp.public
}

// Address returns the base58 public key, the wallet's on-chain address
func (kp *Keypair) Address() string {
	return kp.public.String()
}

// PrivateKey returns the 64-byte secret in the form solana-go signs with
func (kp *Keypair) PrivateKey() *solana.PrivateKey {
	return &kp.private
}

// Encode dumps the secret as base58, the form the Solana CLI prints
func (kp *Keypair) Encode() string {
	return base58.Encode(kp.private)
}

func (kp *Keypair) Sign(message []byte) (solana.Signature, error) {
	return kp.private.Sign(message)
}

// String returns the address so that formatting a Keypair never prints the secret.
func (kp *Keypair) String() string {
	return kp.Address()
}
