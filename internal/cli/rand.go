package cli

import (
	"github.com/sirkon/errors"
	"github.com/spf13/cobra"
)

// NewRandCommand команда вывода последовательности генератора.
func NewRandCommand(rootOpts *RootOptions) *cobra.Command {
	var seed uint32
	var count int

	cmd := &cobra.Command{
		Use:          "rand",
		Short:        "Print pseudo random sequence",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 0 {
				return errors.New("count must not be negative").Int("count", count)
			}

			sys, err := newSystem(rootOpts, cmd)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("seed") {
				sys.Srand(seed)
			}
			for i := 0; i < count; i++ {
				sys.Printf("%d\n", sys.Rand())
			}

			return nil
		},
	}

	cmd.Flags().Uint32VarP(&seed, "seed", "s", 1, "generator seed")
	cmd.Flags().IntVarP(&count, "count", "n", 10, "numbers to print")

	return cmd
}
