package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "mutassert",
		Short:         "Check analyzer mutability findings against declared assumptions",
		SilenceUsage:  true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log accepted findings")

	newLogger := func() (*zap.Logger, error) {
		cfg := zap.NewDevelopmentConfig()
		cfg.DisableStacktrace = true
		if !verbose {
			cfg.Level.SetLevel(zap.WarnLevel)
		}
		return cfg.Build()
	}

	root.AddCommand(newCheckCmd(newLogger))
	return root
}
