package token

import (
	solanago "github.com/gagliardetto/solana-go"
	"github.com/krazyTry/protoland-go/curve"
)

// ReserveToken is the currency buyers pay into the curve.
type ReserveToken struct {
	Ticker       string             `json:"tokenTicker" yaml:"tokenTicker"`
	Name         string             `json:"tokenName" yaml:"tokenName"`
	Mint         solanago.PublicKey `json:"mint" yaml:"mint"`
	Denomination int32              `json:"denomination" yaml:"denomination"`
}

func (r ReserveToken) CurveToken() curve.ReserveToken {
	return curve.ReserveToken{Ticker: r.Ticker, Denomination: r.Denomination}
}
