package adapters

type Network string

type Operation string

type Wallet struct {
	PublicKey  string `json:"public_key"`
	PrivateKey string `json:"private_key"`
}

const (
	NetworkMainnetBeta Network = "mainnet-beta"
	NetworkDevnet      Network = "devnet"
	NetworkTestnet     Network = "testnet"
	NetworkCustom      Network = "custom"
)

const (
	OperationPublicKeyOnly Operation = "publicKeyOnly"
	OperationWalletInfo    Operation = "walletInfo"
)

var SupportedNetworks = []Network{
	NetworkMainnetBeta,
	NetworkDevnet,
	NetworkTestnet,
	NetworkCustom,
}

var SupportedOperations = []Operation{
	OperationPublicKeyOnly,
	OperationWalletInfo,
}

func (n Network) IsValid() bool {
	for _, valid := range SupportedNetworks {
		if n == valid {
			return true
		}
	}
	return false
}

func (n Network) String() string {
	return string(n)
}

func (o Operation) IsValid() bool {
	for _, valid := range SupportedOperations {
		if o == valid {
			return true
		}
	}
	return false
}

func (o Operation) String() string {
	return string(o)
}

func AllowedNetworks() []interface{} {
	allowed := make([]interface{}, len(SupportedNetworks))
	for i, network := range SupportedNetworks {
		allowed[i] = network.String()
	}
	return allowed
}

func AllowedOperations() []interface{} {
	allowed := make([]interface{}, len(SupportedOperations))
	for i, op := range SupportedOperations {
		allowed[i] = op.String()
	}
	return allowed
}

// WalletInfo is the balance and account state of a wallet on one network.
type WalletInfo struct {
	PublicKey     string
	Balance       Balance
	Network       string
	AccountExists bool
	AccountInfo   *AccountInfo // nil when the account does not exist on chain
}

type AccountInfo struct {
	Owner      string
	Executable bool
	RentEpoch  uint64
	DataLength int
}
