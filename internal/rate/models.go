package rate

import (
	"math/big"
	"time"

	"github.com/shopspring/decimal"
)

const (
	SourceCache = "cache"
	SourceFixed = "fixed"
)

const weiDecimals = 18

// Rate is the number of THB one ETH buys.
type Rate struct {
	THBPerETH decimal.Decimal `json:"thbPerEth"`
	Source    string          `json:"source"`
	FetchedAt time.Time       `json:"fetchedAt"`
	Stale     bool            `json:"stale"`
}

// THBToETH converts a THB amount to ETH, truncated to wei precision.
func (r Rate) THBToETH(thb decimal.Decimal) decimal.Decimal {
	if !r.THBPerETH.IsPositive() {
		return decimal.Zero
	}
	return thb.DivRound(r.THBPerETH, weiDecimals+2).Truncate(weiDecimals)
}

// THBToWei converts a THB amount to wei.
func (r Rate) THBToWei(thb decimal.Decimal) *big.Int {
	return r.THBToETH(thb).Shift(weiDecimals).BigInt()
}

// WeiToTHB converts wei back to THB, rounded to satang.
func (r Rate) WeiToTHB(wei *big.Int) decimal.Decimal {
	if wei == nil {
		return decimal.Zero
	}
	return WeiToETH(wei).Mul(r.THBPerETH).Round(2)
}

func WeiToETH(wei *big.Int) decimal.Decimal {
	return decimal.NewFromBigInt(wei, -weiDecimals)
}
