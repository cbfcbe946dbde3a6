package main

import (
	"fmt"

	"github.com/krazyTry/protoland-go/curve"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newQuoteCommand(opts *rootOptions) *cobra.Command {
	var supply, amount float64

	cmd := &cobra.Command{
		Use:       "quote (buy|sell)",
		Short:     "Price a purchase or sale against the curve",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"buy", "sell"},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.loadSettings()
			if err != nil {
				return err
			}

			var q curve.Quote
			if args[0] == "buy" {
				q, err = curve.BuyQuote(s.Steps, supply, amount)
			} else {
				q, err = curve.SellQuote(s.Steps, supply, amount)
			}
			if err != nil {
				opts.log.With(zap.Error(err)).Warn("quote rejected",
					zap.String("side", args[0]),
					zap.Float64("supply", supply),
					zap.Float64("amount", amount),
				)
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %v %s at supply %v\n", args[0], q.Amount, s.TokenTicker, supply)
			fmt.Fprintf(out, "cost:          %v %s\n", q.Cost, s.ReserveToken.Ticker)
			fmt.Fprintf(out, "average price: %v\n", q.AveragePrice)
			fmt.Fprintf(out, "start price:   %v\n", q.StartPrice)
			fmt.Fprintf(out, "end price:     %v\n", q.EndPrice)
			return nil
		},
	}
	addSettingsFlag(cmd.Flags(), opts)
	cmd.Flags().Float64Var(&supply, "supply", 0, "tokens already sold")
	cmd.Flags().Float64Var(&amount, "amount", 0, "tokens to buy or sell")
	return cmd
}
