package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/balanza-dev/balanza/internal/importer"
	"github.com/balanza-dev/balanza/internal/journal"
)

func newImportCommand() *cobra.Command {
	var dataDir string
	var format string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import bank CSV files from the import directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(dataDir, format)
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", ".", "data directory")
	cmd.Flags().StringVar(&format, "format", "generic", "bank CSV format")

	return cmd
}

func runImport(dataDir, format string) error {
	e, err := loadEnv(dataDir)
	if err != nil {
		return err
	}

	parser := importer.DefaultRegistry().Get(format)
	if parser == nil {
		return fmt.Errorf("unknown import format %q", format)
	}

	files, err := importer.Scan(e.dataRoot)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Println("Nothing to import")
		return nil
	}

	svc := journal.NewService(e.dataRoot, e.validator)

	total := 0
	for _, file := range files {
		f, err := os.Open(file.Path)
		if err != nil {
			return fmt.Errorf("opening %s: %w", file.Name, err)
		}

		movements, err := parser.Parse(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("parsing %s: %w", file.Name, err)
		}

		// Imported movements carry no accounts; the summary's default
		// pairs place them and flag the fallback.
		for _, m := range movements {
			if _, err := svc.Record(m); err != nil {
				return fmt.Errorf("recording movement from %s: %w", file.Name, err)
			}
		}

		if err := importer.MarkProcessed(e.dataRoot, file.Name); err != nil {
			return err
		}

		if err := e.recordAudit("import", fmt.Sprintf("%d movements from %s", len(movements), file.Name), file.Name); err != nil {
			return err
		}
		total += len(movements)
	}

	fmt.Printf("Imported %d movements from %d files\n", total, len(files))
	return nil
}
