package cli

import (
	"log"

	"github.com/sirkon/errors"
	"github.com/spf13/cobra"

	"github.com/sirkon/ulib"
	"github.com/sirkon/ulib/internal/config"
	"github.com/sirkon/ulib/internal/logging"
)

// RootOptions общие флаги команд.
type RootOptions struct {
	Config  string
	Verbose bool
}

// NewRootCommand корневая команда.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "ulibdemo",
		Short:         "POSIX-like user space playground",
		Long:          "Runs programs against descriptor table, select and printf family of the ulib runtime.",
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.Config, "config", "c", "", "path to YAML config")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewDemoCommand(opts))
	cmd.AddCommand(NewRandCommand(opts))

	return cmd
}

// Создание среды с выводом в потоки команды.
func newSystem(opts *RootOptions, cmd *cobra.Command) (*ulib.System, error) {
	cfg := config.Default()
	if opts.Config != "" {
		var err error
		cfg, err = config.Load(opts.Config)
		if err != nil {
			return nil, errors.Wrap(err, "load config")
		}
	}
	if opts.Verbose {
		cfg.Verbose = true
	}

	sys, err := ulib.New(
		cfg,
		ulib.WithStdin(cmd.InOrStdin()),
		ulib.WithStdout(cmd.OutOrStdout()),
		ulib.WithStderr(cmd.ErrOrStderr()),
		ulib.WithLogger(logging.NewStd(log.New(cmd.ErrOrStderr(), "ulib: ", log.LstdFlags), cfg.Verbose)),
	)
	if err != nil {
		return nil, errors.Wrap(err, "set up runtime")
	}

	return sys, nil
}
