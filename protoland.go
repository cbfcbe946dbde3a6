package protoland

import (
	"github.com/krazyTry/protoland-go/curve"
	"github.com/krazyTry/protoland-go/token"
)

// GenerateSteps builds the step table of a bonding curve.
//
// Example:
//
// res, _ := GenerateSteps(curve.GenerateStepArgs{CurveData: param, ReserveToken: reserve})
//
// rows := GenerateTableData(res.StepData)
var GenerateSteps = curve.GenerateSteps

// GenerateTableData turns a step table into rows with per-step locked value.
var GenerateTableData = curve.GenerateTableData

var CalculateTotalLockedValue = curve.CalculateTotalLockedValue

// BuyQuote prices buying tokens along the step table.
//
// Example:
//
// q, _ := BuyQuote(res.StepData, currentSupply, 100)
var BuyQuote = curve.BuyQuote

var SellQuote = curve.SellQuote

// LoadSettings reads a token settings file (.json or .yaml).
//
// Example:
//
// s, _ := LoadSettings("token.yaml")
//
// s.Generate()
//
// account, _ := NewCurveAccount(s)
var LoadSettings = token.LoadSettingsFile

var NewCurveAccount = token.NewCurveAccount
