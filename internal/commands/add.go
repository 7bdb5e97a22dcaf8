package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/balanza-dev/balanza/internal/journal"
	"github.com/balanza-dev/balanza/internal/model"
)

func newAddCommand() *cobra.Command {
	var dataDir string
	var date string
	var movementType string
	var from string
	var to string
	var amount string
	var description string
	var reference string
	var notes string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a movement between two accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(dataDir, date, movementType, from, to, amount, description, reference, notes)
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", ".", "data directory")
	cmd.Flags().StringVar(&date, "date", "", "movement date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&movementType, "type", "", "movement type (required)")
	_ = cmd.MarkFlagRequired("type")
	cmd.Flags().StringVar(&from, "from", "", "source account (required)")
	_ = cmd.MarkFlagRequired("from")
	cmd.Flags().StringVar(&to, "to", "", "destination account (required)")
	_ = cmd.MarkFlagRequired("to")
	cmd.Flags().StringVar(&amount, "amount", "", "amount (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&description, "desc", "", "description")
	cmd.Flags().StringVar(&reference, "ref", "", "external reference")
	cmd.Flags().StringVar(&notes, "notes", "", "free-form notes")

	return cmd
}

func runAdd(dataDir, date, movementType, from, to, amount, description, reference, notes string) error {
	e, err := loadEnv(dataDir)
	if err != nil {
		return err
	}

	when, err := parseDate(date)
	if err != nil {
		return err
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("parsing amount %q: %w", amount, err)
	}

	svc := journal.NewService(e.dataRoot, e.validator)
	movementID, err := svc.Add(journal.AddParams{
		Date:        when,
		Type:        model.MovementType(movementType),
		Description: description,
		FromAccount: from,
		ToAccount:   to,
		Amount:      value,
		Reference:   reference,
		Notes:       notes,
	})
	if err != nil {
		return err
	}

	if err := e.recordAudit("add", fmt.Sprintf("%s %s -> %s %s", movementType, from, to, value.StringFixed(2)), movementID); err != nil {
		return err
	}

	fmt.Printf("Recorded movement %s\n", movementID)
	return nil
}
