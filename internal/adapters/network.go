package adapters

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/gagliardetto/solana-go/rpc"
)

var defaultRPCURLs = map[Network]string{
	NetworkMainnetBeta: rpc.MainNetBeta_RPC,
	NetworkDevnet:      rpc.DevNet_RPC,
	NetworkTestnet:     rpc.TestNet_RPC,
}

// RPCConfig is the stored RPC credential: a named network, or custom with a URL.
type RPCConfig struct {
	Network      Network `json:"network"`
	CustomRPCURL string  `json:"customRpcUrl"`
}

// Endpoint is an RPC URL together with the label reported back to callers.
type Endpoint struct {
	URL   string
	Label string
}

// DefaultRPCURL returns the public endpoint of a named network. custom has no
// default and neither does any unknown name.
func DefaultRPCURL(network Network) (string, error) {
	u, ok := defaultRPCURLs[network]
	if !ok {
		return "", fmt.Errorf("%w: no default RPC URL for network %q", ErrInvalidParameter, network)
	}
	return u, nil
}

func (c *RPCConfig) Validate() error {
	if !c.Network.IsValid() {
		return fmt.Errorf("%w: unsupported network %q", ErrInvalidParameter, c.Network)
	}
	if c.Network != NetworkCustom {
		return nil
	}
	if strings.TrimSpace(c.CustomRPCURL) == "" {
		return missingParameter("customRpcUrl", "is required when network is custom")
	}
	return ValidateRPCURL(c.CustomRPCURL)
}

// URL returns the endpoint this credential points at.
func (c *RPCConfig) URL() (string, error) {
	if err := c.Validate(); err != nil {
		return "", err
	}
	if c.Network == NetworkCustom {
		return strings.TrimSpace(c.CustomRPCURL), nil
	}
	return DefaultRPCURL(c.Network)
}

func ValidateRPCURL(raw string) error {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("%w: customRpcUrl: %v", ErrInvalidParameter, err)
	}
	switch u.Scheme {
	case "http", "https":
	default:
		return fmt.Errorf("%w: customRpcUrl must be an http or https URL, got %q", ErrInvalidParameter, raw)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: customRpcUrl has no host: %q", ErrInvalidParameter, raw)
	}
	return nil
}

// ResolveEndpoint picks the RPC endpoint for a wallet info request.
//
// A named network always uses its fixed public URL and is reported by name.
// custom uses customURL when given, otherwise the stored RPC credential, and
// is reported by URL. It never falls back to mainnet.
func ResolveEndpoint(network Network, customURL string, stored *RPCConfig) (*Endpoint, error) {
	if network != NetworkCustom {
		u, err := DefaultRPCURL(network)
		if err != nil {
			return nil, err
		}
		return &Endpoint{URL: u, Label: network.String()}, nil
	}

	customURL = strings.TrimSpace(customURL)
	if customURL != "" {
		if err := ValidateRPCURL(customURL); err != nil {
			return nil, err
		}
		return &Endpoint{URL: customURL, Label: customURL}, nil
	}

	if stored == nil {
		return nil, missingParameter("customRpcUrl", "is required when network is custom and no RPC credential is configured")
	}
	u, err := stored.URL()
	if err != nil {
		return nil, err
	}
	return &Endpoint{URL: u, Label: u}, nil
}
