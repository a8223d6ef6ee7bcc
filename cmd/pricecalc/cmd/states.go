package cmd

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Simplici0/pricing-calculator/internal/db"
	"github.com/Simplici0/pricing-calculator/internal/migrations"
	"github.com/Simplici0/pricing-calculator/internal/regions"
	"github.com/Simplici0/pricing-calculator/internal/seed"
)

func newStatesCmd(a *app) *cobra.Command {
	var (
		search string
		dbPath string
	)

	c := &cobra.Command{
		Use:   "states <country>",
		Short: "List the states or provinces of a country",
		Long: `List first-level subdivisions for a two-letter country code.

Without --db the bundled reference data is loaded into memory.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStates(cmd.Context(), cmd.OutOrStdout(), a.logger, dbPath, args[0], search)
		},
	}

	c.Flags().StringVarP(&search, "search", "s", "", "filter by name or code")
	c.Flags().StringVar(&dbPath, "db", db.MemoryPath, "reference database path")

	return c
}

func runStates(ctx context.Context, out io.Writer, logger *zap.Logger, dbPath, country, search string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	database, err := db.Open(ctx, dbPath)
	if err != nil {
		return err
	}
	defer database.Close()

	if _, err := migrations.Up(ctx, database, logger); err != nil {
		return err
	}
	stats, err := seed.Run(ctx, database, seed.DefaultDataset())
	if err != nil {
		return err
	}
	logger.Debug("reference data ready", zap.String("db", dbPath), zap.Int("inserts", stats.Inserts), zap.Int("updates", stats.Updates))

	subs, err := regions.NewStore(database).Search(ctx, country, search)
	if err != nil {
		return err
	}

	if len(subs) == 0 {
		if search != "" {
			_, err := fmt.Fprintf(out, "No states/provinces match %q\n", search)
			return err
		}
		_, err := fmt.Fprintln(out, "No states/provinces available for this country")
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CODE\tNAME\tTYPE")
	for _, s := range subs {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", s.Code, s.Name, s.Type)
	}
	return tw.Flush()
}
