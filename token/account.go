package token

import (
	"bytes"

	binary "github.com/gagliardetto/binary"
	solanago "github.com/gagliardetto/solana-go"
	"github.com/krazyTry/protoland-go/curve"
	"github.com/krazyTry/protoland-go/u128"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const CurveAccountVersion uint8 = 1

var curveConfigSeed = []byte("curve_config")

// CurveAccount is the Borsh layout of a token's curve configuration.
type CurveAccount struct {
	Version         uint8
	CurveType       uint8
	TokenMint       solanago.PublicKey
	ReserveMint     solanago.PublicKey
	TokenDecimals   uint8
	ReserveDecimals uint8
	MaxSupply       binary.Uint128
	LpAllocation    binary.Uint128
	Steps           []StepUnits
}

// NewCurveAccount builds the account from settings whose Steps are already generated.
func NewCurveAccount(s Settings) (CurveAccount, error) {
	if len(s.Steps) == 0 {
		return CurveAccount{}, errors.New("settings have no generated steps")
	}
	if s.Denomination < 0 || s.Denomination > curve.MaxDecimalPoints {
		return CurveAccount{}, errors.Errorf("token denomination %d out of range", s.Denomination)
	}
	if s.ReserveToken.Denomination < 0 || s.ReserveToken.Denomination > curve.MaxDecimalPoints {
		return CurveAccount{}, errors.Errorf("reserve denomination %d out of range", s.ReserveToken.Denomination)
	}

	maxSupply, err := u128.FromDecimal(decimal.NewFromFloat(s.Curve.MaxSupply), s.Denomination)
	if err != nil {
		return CurveAccount{}, errors.Wrap(err, "maxSupply")
	}
	lpAllocation, err := u128.FromDecimal(decimal.NewFromFloat(s.Curve.LpAllocation), s.Denomination)
	if err != nil {
		return CurveAccount{}, errors.Wrap(err, "lpAllocation")
	}
	steps, err := ToUnits(s.Steps, s.Denomination, s.ReserveToken.Denomination)
	if err != nil {
		return CurveAccount{}, err
	}

	return CurveAccount{
		Version:         CurveAccountVersion,
		CurveType:       uint8(s.Curve.CurveType),
		TokenMint:       s.TokenMint,
		ReserveMint:     s.ReserveToken.Mint,
		TokenDecimals:   uint8(s.Denomination),
		ReserveDecimals: uint8(s.ReserveToken.Denomination),
		MaxSupply:       maxSupply,
		LpAllocation:    lpAllocation,
		Steps:           steps,
	}, nil
}

func EncodeCurveAccount(a CurveAccount) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := binary.NewBorshEncoder(buf).Encode(a); err != nil {
		return nil, errors.Wrap(err, "encode curve account")
	}
	return buf.Bytes(), nil
}

func DecodeCurveAccount(data []byte) (CurveAccount, error) {
	var a CurveAccount
	if err := binary.NewBorshDecoder(data).Decode(&a); err != nil {
		return CurveAccount{}, errors.Wrap(err, "decode curve account")
	}
	if a.Version != CurveAccountVersion {
		return CurveAccount{}, errors.Errorf("unsupported curve account version %d", a.Version)
	}
	if !curve.CurveType(a.CurveType).IsValid() {
		return CurveAccount{}, errors.Errorf("unknown curve type %d", a.CurveType)
	}
	return a, nil
}

// CurveSteps returns the step table back in token and reserve quantities.
func (a CurveAccount) CurveSteps() []curve.CurveStep {
	return FromUnits(a.Steps, int32(a.TokenDecimals), int32(a.ReserveDecimals))
}

func DeriveCurveConfigAddress(programID, tokenMint solanago.PublicKey) (solanago.PublicKey, uint8, error) {
	return solanago.FindProgramAddress([][]byte{curveConfigSeed, tokenMint[:]}, programID)
}
