package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/balanza-dev/balanza/internal/invest"
	"github.com/balanza-dev/balanza/internal/model"
)

func newCreditCommand() *cobra.Command {
	creditCmd := &cobra.Command{
		Use:   "credit",
		Short: "Manage loans granted to third parties",
	}
	creditCmd.AddCommand(newCreditAddCommand())
	creditCmd.AddCommand(newCreditPayCommand())
	creditCmd.AddCommand(newCreditListCommand())
	return creditCmd
}

func newCreditAddCommand() *cobra.Command {
	var dataDir string
	var date string
	var borrower string
	var principal string
	var interest string
	var notes string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a loan granted to a borrower",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreditAdd(dataDir, date, borrower, principal, interest, notes)
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", ".", "data directory")
	cmd.Flags().StringVar(&date, "date", "", "loan date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&borrower, "borrower", "", "borrower name (required)")
	_ = cmd.MarkFlagRequired("borrower")
	cmd.Flags().StringVar(&principal, "principal", "", "principal amount (required)")
	_ = cmd.MarkFlagRequired("principal")
	cmd.Flags().StringVar(&interest, "interest", "0", "agreed interest amount")
	cmd.Flags().StringVar(&notes, "notes", "", "free-form notes")

	return cmd
}

func runCreditAdd(dataDir, date, borrower, principal, interest, notes string) error {
	e, err := loadEnv(dataDir)
	if err != nil {
		return err
	}

	when, err := parseDate(date)
	if err != nil {
		return err
	}

	principalValue, err := decimal.NewFromString(principal)
	if err != nil {
		return fmt.Errorf("parsing principal %q: %w", principal, err)
	}
	if principalValue.Sign() <= 0 {
		return fmt.Errorf("principal must be greater than zero")
	}

	interestValue, err := decimal.NewFromString(interest)
	if err != nil {
		return fmt.Errorf("parsing interest %q: %w", interest, err)
	}

	creditID, err := invest.NewService(e.dataRoot).AddCredit(model.Credit{
		Date:      when,
		Borrower:  borrower,
		Principal: principalValue,
		Interest:  interestValue,
		Notes:     notes,
	})
	if err != nil {
		return err
	}

	if err := e.recordAudit("credit-add", borrower+" "+principalValue.StringFixed(2), creditID); err != nil {
		return err
	}

	fmt.Printf("Recorded credit %s\n", creditID)
	return nil
}

func newCreditPayCommand() *cobra.Command {
	var dataDir string
	var amount string

	cmd := &cobra.Command{
		Use:   "pay <credit-id>",
		Short: "Record a payment against a credit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreditPay(dataDir, args[0], amount)
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", ".", "data directory")
	cmd.Flags().StringVar(&amount, "amount", "", "payment amount (required)")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func runCreditPay(dataDir, creditID, amount string) error {
	e, err := loadEnv(dataDir)
	if err != nil {
		return err
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("parsing amount %q: %w", amount, err)
	}

	credit, err := invest.NewService(e.dataRoot).RecordPayment(creditID, value)
	if err != nil {
		return err
	}

	if err := e.recordAudit("credit-pay", "payment "+value.StringFixed(2), creditID); err != nil {
		return err
	}

	fmt.Printf("Recorded payment %s on %s (remaining %s, %s)\n",
		value.StringFixed(2), creditID, credit.Remaining().StringFixed(2), credit.Status)
	return nil
}

func newCreditListCommand() *cobra.Command {
	var dataDir string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List credits",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreditList(dataDir)
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", ".", "data directory")
	return cmd
}

func runCreditList(dataDir string) error {
	e, err := loadEnv(dataDir)
	if err != nil {
		return err
	}

	credits, err := invest.NewService(e.dataRoot).Credits()
	if err != nil {
		return err
	}

	fmt.Printf("%-8s %-12s %-20s %12s %12s %12s %-10s\n", "ID", "DATE", "BORROWER", "PRINCIPAL", "PAID", "REMAINING", "STATUS")
	for _, c := range credits {
		fmt.Printf("%-8s %-12s %-20s %12s %12s %12s %-10s\n",
			c.ID, c.Date.Format("2006-01-02"), c.Borrower,
			c.Principal.StringFixed(2), c.TotalPaid.StringFixed(2), c.Remaining().StringFixed(2), c.Status)
	}
	return nil
}
