package main

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arloliu/sdsl/storage"
)

type app struct {
	verbose bool
	logger  *zap.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:           "sdsl",
		Short:         "Build and query succinct integer vector files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !a.verbose {
				return nil
			}

			logger, err := zap.NewDevelopment()
			if err != nil {
				return errors.Wrap(err, "create logger")
			}
			a.logger = logger

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable development logging")

	root.AddCommand(
		newBuildCommand(a),
		newInfoCommand(a),
		newGetCommand(a),
		newDumpCommand(a),
	)

	return root
}

func (a *app) storageOptions(opts ...storage.Option) []storage.Option {
	return append(opts, storage.WithLogger(a.logger))
}
