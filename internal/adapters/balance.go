package adapters

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// lamports per SOL is 10^9
const solDecimals = 9

type Balance struct {
	Lamports uint64
	SOL      decimal.Decimal
}

func NewBalance(lamports uint64) Balance {
	return Balance{
		Lamports: lamports,
		SOL:      decimal.NewFromBigInt(new(big.Int).SetUint64(lamports), -solDecimals),
	}
}

// SOLFloat returns the balance in SOL as a float for JSON output.
func (b Balance) SOLFloat() float64 {
	f, _ := b.SOL.Float64()
	return f
}
