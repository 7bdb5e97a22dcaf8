package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balanza-dev/balanza/internal/flow"
	"github.com/balanza-dev/balanza/internal/invest"
	"github.com/balanza-dev/balanza/internal/journal"
	"github.com/balanza-dev/balanza/internal/ledger"
)

func newSummaryCommand() *cobra.Command {
	var dataDir string
	var includeHidden bool

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Compute account balances from all recorded data",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummary(dataDir, includeHidden)
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", ".", "data directory")
	cmd.Flags().BoolVar(&includeHidden, "all", false, "include hidden accounts in the listing")

	return cmd
}

func runSummary(dataDir string, includeHidden bool) error {
	e, err := loadEnv(dataDir)
	if err != nil {
		return err
	}

	movements, err := journal.NewService(e.dataRoot, e.validator).ReadAll()
	if err != nil {
		return err
	}

	investSvc := invest.NewService(e.dataRoot)
	purchases, err := investSvc.Purchases()
	if err != nil {
		return err
	}
	credits, err := investSvc.Credits()
	if err != nil {
		return err
	}

	summarizer := ledger.NewSummarizer(e.catalog, flow.DefaultPairs())
	summary := summarizer.Summarize(ledger.Input{
		Movements: movements,
		Purchases: purchases,
		Credits:   credits,
	})

	fmt.Printf("%-24s %12s %12s %12s\n", "ACCOUNT", "BALANCE", "INFLOWS", "OUTFLOWS")
	for _, ab := range summary.Accounts {
		if ab.Account.Hidden && !includeHidden {
			continue
		}
		fmt.Printf("%-24s %12s %12s %12s\n",
			ab.Account.Label,
			ab.Balance.StringFixed(2),
			ab.Inflows.StringFixed(2),
			ab.Outflows.StringFixed(2))
	}

	fmt.Printf("\nTotals (%s): debits %s, credits %s, net %s\n",
		e.cfg.Profile.Currency,
		summary.Totals.Debits.StringFixed(2),
		summary.Totals.Credits.StringFixed(2),
		summary.Totals.Net.StringFixed(2))
	fmt.Printf("Recognized investment profit: %s\n", summary.InvestmentProfit.StringFixed(2))

	if len(summary.Warnings) > 0 {
		fmt.Printf("\nWarnings:\n")
		for _, w := range summary.Warnings {
			fmt.Printf("  - [%s %s] %s\n", w.Source, w.ID, w.Message)
		}
	}
	return nil
}
