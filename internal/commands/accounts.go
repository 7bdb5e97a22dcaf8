package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balanza-dev/balanza/internal/flow"
	"github.com/balanza-dev/balanza/internal/model"
)

func newAccountsCommand() *cobra.Command {
	var dataDir string
	var movementType string
	var direction string
	var includeHidden bool

	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "List the chart of accounts",
		Long: `List the chart of accounts. With --type, only the accounts
permitted as the given side of that movement type are shown.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAccounts(dataDir, movementType, direction, includeHidden)
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", ".", "data directory")
	cmd.Flags().StringVar(&movementType, "type", "", "filter to accounts allowed for this movement type")
	cmd.Flags().StringVar(&direction, "direction", "from", "rule side to filter on: from or to")
	cmd.Flags().BoolVar(&includeHidden, "hidden", false, "include hidden accounts")

	return cmd
}

func runAccounts(dataDir, movementType, direction string, includeHidden bool) error {
	e, err := loadEnv(dataDir)
	if err != nil {
		return err
	}

	var accts []model.Account
	if movementType != "" {
		dir := flow.DirectionFrom
		if direction == "to" {
			dir = flow.DirectionTo
		} else if direction != "from" {
			return fmt.Errorf("invalid direction %q: must be from or to", direction)
		}
		accts = e.validator.AllowedAccounts(model.MovementType(movementType), dir)
	} else {
		accts = e.catalog.All(includeHidden)
	}

	fmt.Printf("%-22s %-24s %-12s %-7s\n", "ID", "LABEL", "CATEGORY", "NATURE")
	for _, a := range accts {
		hidden := ""
		if a.Hidden {
			hidden = " (hidden)"
		}
		fmt.Printf("%-22s %-24s %-12s %-7s%s\n", a.ID, a.Label, a.Category, a.Nature, hidden)
	}
	return nil
}
