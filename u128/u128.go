package u128

import (
	"errors"
	"fmt"
	"math/big"

	binary "github.com/gagliardetto/binary"
	dmath "github.com/krazyTry/protoland-go/decimal_math"
	"github.com/shopspring/decimal"
)

type Uint128 binary.Uint128

func (u *Uint128) Scan(s fmt.ScanState, ch rune) error {
	i := new(big.Int)
	if err := i.Scan(s, ch); err != nil {
		return err
	}
	return u.setBig(i)
}

func (u *Uint128) setBig(i *big.Int) error {
	if i.Sign() < 0 {
		return errors.New("value cannot be negative")
	} else if i.BitLen() > 128 {
		return errors.New("value overflows Uint128")
	}
	u.Lo = i.Uint64()
	u.Hi = new(big.Int).Rsh(i, 64).Uint64()
	return nil
}

func GenUint128FromString(num string) binary.Uint128 {
	u128 := binary.NewUint128LittleEndian()
	if _, err := fmt.Sscan(num, (*Uint128)(u128)); err != nil {
		panic(err)
	}
	return *u128
}

// FromDecimal converts a token quantity into integer units of the given
// decimals, truncating anything finer than one unit.
func FromDecimal(amount decimal.Decimal, decimals int32) (binary.Uint128, error) {
	units := amount.Mul(dmath.Pow10(decimals)).Truncate(0)
	u128 := binary.NewUint128LittleEndian()
	if err := (*Uint128)(u128).setBig(units.BigInt()); err != nil {
		return binary.Uint128{}, fmt.Errorf("%s with %d decimals: %w", amount, decimals, err)
	}
	return *u128, nil
}

func ToDecimal(u binary.Uint128, decimals int32) decimal.Decimal {
	return decimal.NewFromBigInt(u.BigInt(), -decimals)
}
