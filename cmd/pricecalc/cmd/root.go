// Package cmd provides the commands of the pricecalc CLI.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Simplici0/pricing-calculator/internal/logging"
)

const version = "0.1.0"

// app carries state shared by every subcommand of one invocation.
type app struct {
	verbose bool
	logger  *zap.Logger
}

// NewRootCmd builds the command tree. Each call returns fresh flag state.
func NewRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "pricecalc",
		Short: "Price handmade products from their costs",
		Long: `pricecalc adds up materials, packaging, labor and other costs, then
applies markup, discount and sales tax to suggest a selling price.

Examples:
  pricecalc estimate --material "Yarn,20,10,5" --labor "Knitting,12.5,2" --markup 50
  pricecalc estimate --format json --material "Wax,8,1,2" --tax 8
  pricecalc states CA --search new`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := "warn"
			if a.verbose {
				level = "debug"
			}
			a.logger = logging.NewWriter(logging.Config{Level: level, Format: "console"}, cmd.ErrOrStderr())
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")

	root.AddCommand(newEstimateCmd(a))
	root.AddCommand(newStatesCmd(a))
	root.AddCommand(newVersionCmd())

	return root
}

// Execute runs the CLI.
func Execute() error {
	return NewRootCmd().Execute()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "pricecalc version %s\n", version)
		},
	}
}
