package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/balanza-dev/balanza/internal/accounts"
	"github.com/balanza-dev/balanza/internal/invest"
	"github.com/balanza-dev/balanza/internal/journal"
	"github.com/balanza-dev/balanza/internal/model"
)

func newPurchaseCommand() *cobra.Command {
	purchaseCmd := &cobra.Command{
		Use:   "purchase",
		Short: "Manage buy-to-resell investments",
	}
	purchaseCmd.AddCommand(newPurchaseAddCommand())
	purchaseCmd.AddCommand(newPurchaseListCommand())
	purchaseCmd.AddCommand(newPurchaseRecognizeCommand())
	return purchaseCmd
}

func newPurchaseAddCommand() *cobra.Command {
	var dataDir string
	var date string
	var description string
	var capital string
	var salePrice string
	var notes string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a purchase investment",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPurchaseAdd(dataDir, date, description, capital, salePrice, notes)
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", ".", "data directory")
	cmd.Flags().StringVar(&date, "date", "", "purchase date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&description, "desc", "", "description (required)")
	_ = cmd.MarkFlagRequired("desc")
	cmd.Flags().StringVar(&capital, "capital", "", "capital committed (required)")
	_ = cmd.MarkFlagRequired("capital")
	cmd.Flags().StringVar(&salePrice, "sale-price", "0", "expected or realized sale price")
	cmd.Flags().StringVar(&notes, "notes", "", "free-form notes")

	return cmd
}

func runPurchaseAdd(dataDir, date, description, capital, salePrice, notes string) error {
	e, err := loadEnv(dataDir)
	if err != nil {
		return err
	}

	when, err := parseDate(date)
	if err != nil {
		return err
	}

	capitalValue, err := decimal.NewFromString(capital)
	if err != nil {
		return fmt.Errorf("parsing capital %q: %w", capital, err)
	}
	if capitalValue.Sign() <= 0 {
		return fmt.Errorf("capital must be greater than zero")
	}

	saleValue, err := decimal.NewFromString(salePrice)
	if err != nil {
		return fmt.Errorf("parsing sale price %q: %w", salePrice, err)
	}

	purchaseID, err := invest.NewService(e.dataRoot).AddPurchase(model.Purchase{
		Date:        when,
		Description: description,
		Capital:     capitalValue,
		SalePrice:   saleValue,
		Notes:       notes,
	})
	if err != nil {
		return err
	}

	if err := e.recordAudit("purchase-add", description, purchaseID); err != nil {
		return err
	}

	fmt.Printf("Recorded purchase %s\n", purchaseID)
	return nil
}

func newPurchaseListCommand() *cobra.Command {
	var dataDir string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List purchase investments",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPurchaseList(dataDir)
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", ".", "data directory")
	return cmd
}

func runPurchaseList(dataDir string) error {
	e, err := loadEnv(dataDir)
	if err != nil {
		return err
	}

	purchases, err := invest.NewService(e.dataRoot).Purchases()
	if err != nil {
		return err
	}

	fmt.Printf("%-8s %-12s %-28s %12s %12s %12s\n", "ID", "DATE", "DESCRIPTION", "CAPITAL", "SALE", "PROFIT")
	for _, p := range purchases {
		fmt.Printf("%-8s %-12s %-28s %12s %12s %12s\n",
			p.ID, p.Date.Format("2006-01-02"), p.Description,
			p.Capital.StringFixed(2), p.SalePrice.StringFixed(2), p.Profit().StringFixed(2))
	}
	return nil
}

func newPurchaseRecognizeCommand() *cobra.Command {
	var dataDir string
	var date string
	var destination string

	cmd := &cobra.Command{
		Use:   "recognize <purchase-id>",
		Short: "Book a purchase's realized profit as an income movement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPurchaseRecognize(dataDir, args[0], date, destination)
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", ".", "data directory")
	cmd.Flags().StringVar(&date, "date", "", "recognition date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&destination, "to", accounts.IDInvestmentFund, "liquid asset account receiving the profit")

	return cmd
}

func runPurchaseRecognize(dataDir, purchaseID, date, destination string) error {
	e, err := loadEnv(dataDir)
	if err != nil {
		return err
	}

	when, err := parseDate(date)
	if err != nil {
		return err
	}

	investSvc := invest.NewService(e.dataRoot)
	purchases, err := investSvc.Purchases()
	if err != nil {
		return err
	}

	var purchase *model.Purchase
	for i := range purchases {
		if purchases[i].ID == purchaseID {
			purchase = &purchases[i]
			break
		}
	}
	if purchase == nil {
		return fmt.Errorf("purchase not found: %s", purchaseID)
	}
	if purchase.ProfitMovementID != "" {
		return fmt.Errorf("profit for %s is already recognized (movement %s)", purchaseID, purchase.ProfitMovementID)
	}

	profit := purchase.Profit()
	if profit.Sign() <= 0 {
		return fmt.Errorf("purchase %s has no profit to recognize", purchaseID)
	}

	movementID, err := journal.NewService(e.dataRoot, e.validator).Add(journal.AddParams{
		Date:        when,
		Type:        model.MovementInvestmentProfit,
		Description: "Profit on " + purchase.Description,
		FromAccount: accounts.IDInvestmentGains,
		ToAccount:   destination,
		Amount:      profit,
	})
	if err != nil {
		return err
	}

	if err := investSvc.MarkProfitRecognized(purchaseID, movementID); err != nil {
		return err
	}

	if err := e.recordAudit("purchase-recognize", "profit "+profit.StringFixed(2), purchaseID); err != nil {
		return err
	}

	fmt.Printf("Recognized profit %s for %s (movement %s)\n", profit.StringFixed(2), purchaseID, movementID)
	return nil
}
