package main

import (
	"fmt"
	"os"

	"github.com/krazyTry/protoland-go/token"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

type rootOptions struct {
	verbose      bool
	settingsPath string
	log          *zap.Logger
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{log: zap.NewNop()}

	cmd := &cobra.Command{
		Use:           "curvegen",
		Short:         "Generate and inspect token bonding curves",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(opts.verbose)
			if err != nil {
				return err
			}
			opts.log = log
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = opts.log.Sync()
		},
	}
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(
		newStepsCommand(opts),
		newQuoteCommand(opts),
		newAccountCommand(opts),
	)
	return cmd
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

func addSettingsFlag(fs *pflag.FlagSet, opts *rootOptions) {
	fs.StringVarP(&opts.settingsPath, "file", "f", "", "token settings file (.json, .yaml)")
}

// loadSettings reads the settings file and generates its step table.
func (o *rootOptions) loadSettings() (token.Settings, error) {
	if o.settingsPath == "" {
		return token.Settings{}, errors.New("--file is required")
	}
	s, err := token.LoadSettingsFile(o.settingsPath)
	if err != nil {
		return token.Settings{}, err
	}
	o.log.Debug("loaded settings",
		zap.String("path", o.settingsPath),
		zap.String("ticker", s.TokenTicker),
		zap.Stringer("curveType", s.Curve.CurveType),
	)

	res, err := s.Generate()
	if err != nil {
		return token.Settings{}, err
	}
	o.log.Info("generated steps",
		zap.Int("steps", len(res.StepData)),
		zap.Int("merged", res.MergeCount),
	)
	return s, nil
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
