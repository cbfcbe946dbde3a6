package main

import (
	"encoding/base64"
	"fmt"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/krazyTry/protoland-go/token"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newAccountCommand(opts *rootOptions) *cobra.Command {
	var program string

	cmd := &cobra.Command{
		Use:   "account",
		Short: "Print the curve config address and its Borsh payload",
		RunE: func(cmd *cobra.Command, args []string) error {
			programID, err := solanago.PublicKeyFromBase58(program)
			if err != nil {
				return errors.Wrap(err, "--program")
			}
			s, err := opts.loadSettings()
			if err != nil {
				return err
			}

			address, bump, err := token.DeriveCurveConfigAddress(programID, s.TokenMint)
			if err != nil {
				return err
			}
			account, err := token.NewCurveAccount(s)
			if err != nil {
				return err
			}
			data, err := token.EncodeCurveAccount(account)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "address: %s\n", address)
			fmt.Fprintf(out, "bump:    %d\n", bump)
			fmt.Fprintf(out, "size:    %d\n", len(data))
			fmt.Fprintf(out, "data:    %s\n", base64.StdEncoding.EncodeToString(data))
			return nil
		},
	}
	addSettingsFlag(cmd.Flags(), opts)
	cmd.Flags().StringVar(&program, "program", "", "curve program id (base58)")
	_ = cmd.MarkFlagRequired("program")
	return cmd
}
