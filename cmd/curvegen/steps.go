package main

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/krazyTry/protoland-go/curve"
	"github.com/krazyTry/protoland-go/token"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newStepsCommand(opts *rootOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "steps",
		Short: "Generate the step table of a token curve",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.loadSettings()
			if err != nil {
				opts.log.With(zap.Error(err)).Warn("failed to generate steps")
				return err
			}

			switch output {
			case "json":
				data, err := token.MarshalSettings(s)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return err
			case "table":
				renderSteps(cmd.OutOrStdout(), s)
				return nil
			default:
				return errors.Errorf("unknown output %q, expected table or json", output)
			}
		},
	}
	addSettingsFlag(cmd.Flags(), opts)
	cmd.Flags().StringVarP(&output, "output", "o", "table", "output format: table or json")
	return cmd
}

func renderSteps(w io.Writer, s token.Settings) {
	rows := curve.GenerateTableData(s.Steps)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(fmt.Sprintf("%s / %s %s curve", s.TokenTicker, s.ReserveToken.Ticker, s.Curve.CurveType))
	t.AppendHeader(table.Row{"#", "Start", "End", "Price", "TVL"})
	for i, r := range rows.Data {
		t.AppendRow(table.Row{i + 1, r.Start, r.End, r.Price, r.TVL})
	}
	t.AppendFooter(table.Row{"", "", "", "Total", rows.TotalTVL})
	t.Render()

	a := curve.SummarizeAllocation(s.Curve, s.Steps)
	summary := table.NewWriter()
	summary.SetOutputMirror(w)
	summary.AppendRows([]table.Row{
		{"Max supply", a.MaxSupply},
		{"LP allocation", a.LpAllocation},
		{"Curve supply", a.CurveSupply},
		{"Total locked value", a.TotalLockedValue},
		{"Sell-out cost", a.SellOutCost},
		{"Fully diluted value", a.FullyDilutedValue},
	})
	summary.Render()
}
