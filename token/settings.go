package token

import (
	"os"
	"path/filepath"
	"strings"

	solanago "github.com/gagliardetto/solana-go"
	jsoniter "github.com/json-iterator/go"
	"github.com/krazyTry/protoland-go/curve"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Settings is the token configuration payload stored alongside a repository.
type Settings struct {
	TokenName    string               `json:"tokenName" yaml:"tokenName"`
	TokenTicker  string               `json:"tokenTicker" yaml:"tokenTicker"`
	Denomination int32                `json:"denomination" yaml:"denomination"`
	TokenMint    solanago.PublicKey   `json:"tokenMint" yaml:"tokenMint"`
	ReserveToken ReserveToken         `json:"reserveToken" yaml:"reserveToken"`
	Curve        curve.CurveParameter `json:"curveParameter" yaml:"curveParameter"`
	Steps        []curve.CurveStep    `json:"steps,omitempty" yaml:"steps,omitempty"`
}

// Generate regenerates Steps from Curve. Supply positions keep the token's
// own denomination.
func (s *Settings) Generate() (curve.GenerateStepResult, error) {
	if s.Denomination < 0 || s.Denomination > curve.MaxDecimalPoints {
		return curve.GenerateStepResult{}, errors.Wrapf(curve.ErrInvalidCurveParameter, "token denomination must be within [0, %d], got %d", curve.MaxDecimalPoints, s.Denomination)
	}
	supplyDecimals := s.Denomination
	res, err := curve.GenerateSteps(curve.GenerateStepArgs{
		ReserveToken:   s.ReserveToken.CurveToken(),
		CurveData:      s.Curve,
		SupplyDecimals: &supplyDecimals,
	})
	if err != nil {
		return curve.GenerateStepResult{}, errors.Wrapf(err, "generate steps for %s", s.TokenTicker)
	}
	s.Steps = res.StepData
	return res, nil
}

func MarshalSettings(s Settings) ([]byte, error) {
	return json.Marshal(s)
}

func UnmarshalSettings(data []byte) (Settings, error) {
	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return Settings{}, errors.Wrap(err, "decode settings")
	}
	return s, nil
}

// ParseSettingsJSON reads a settings payload as produced by web forms, where
// numbers frequently arrive as strings and optional fields are missing.
func ParseSettingsJSON(data []byte) (Settings, error) {
	if !gjson.ValidBytes(data) {
		return Settings{}, errors.New("settings payload is not valid JSON")
	}
	root := gjson.ParseBytes(data)

	var (
		s   Settings
		err error
	)
	s.TokenName = root.Get("tokenName").String()
	s.TokenTicker = root.Get("tokenTicker").String()
	s.Denomination = int32(root.Get("denomination").Int())
	if s.TokenMint, err = parseMint(root.Get("tokenMint")); err != nil {
		return Settings{}, errors.Wrap(err, "tokenMint")
	}

	reserve := root.Get("reserveToken")
	s.ReserveToken = ReserveToken{
		Ticker:       reserve.Get("tokenTicker").String(),
		Name:         reserve.Get("tokenName").String(),
		Denomination: int32(reserve.Get("denomination").Int()),
	}
	if s.ReserveToken.Mint, err = parseMint(reserve.Get("mint")); err != nil {
		return Settings{}, errors.Wrap(err, "reserveToken.mint")
	}

	c := root.Get("curveParameter")
	if !c.Exists() {
		return Settings{}, errors.New("settings payload has no curveParameter")
	}
	if s.Curve.CurveType, err = curve.ParseCurveType(c.Get("curveType").String()); err != nil {
		return Settings{}, err
	}
	s.Curve.StepCount = int(c.Get("stepCount").Int())
	s.Curve.InitialPrice = c.Get("initialPrice").Float()
	s.Curve.FinalPrice = c.Get("finalPrice").Float()
	s.Curve.LpAllocation = c.Get("lpAllocation").Float()
	s.Curve.MaxSupply = c.Get("maxSupply").Float()

	root.Get("steps").ForEach(func(_, step gjson.Result) bool {
		s.Steps = append(s.Steps, curve.CurveStep{
			RangeTo: step.Get("rangeTo").Float(),
			Price:   step.Get("price").Float(),
		})
		return true
	})
	return s, nil
}

func parseMint(r gjson.Result) (solanago.PublicKey, error) {
	if r.String() == "" {
		return solanago.PublicKey{}, nil
	}
	return solanago.PublicKeyFromBase58(r.String())
}

func LoadSettingsYAML(data []byte) (Settings, error) {
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, errors.Wrap(err, "decode settings yaml")
	}
	return s, nil
}

func MarshalSettingsYAML(s Settings) ([]byte, error) {
	return yaml.Marshal(s)
}

// LoadSettingsFile picks the decoder from the file extension; anything that
// is not .yaml or .yml is read as JSON.
func LoadSettingsFile(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, errors.Wrapf(err, "read settings %s", path)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadSettingsYAML(data)
	default:
		return ParseSettingsJSON(data)
	}
}
