package commands

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/balanza-dev/balanza/internal/accounts"
	"github.com/balanza-dev/balanza/internal/auditlog"
	"github.com/balanza-dev/balanza/internal/config"
	"github.com/balanza-dev/balanza/internal/flow"
	"github.com/balanza-dev/balanza/internal/gitops"
)

// env bundles the services every recording command needs.
type env struct {
	dataRoot  string
	cfg       *config.Config
	catalog   *accounts.Catalog
	validator *flow.Validator
}

// loadEnv loads config and catalog from a data directory and wires the
// flow validator with the configured strictness.
func loadEnv(dataDir string) (*env, error) {
	absDir, err := filepath.Abs(dataDir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.Load(filepath.Join(absDir, "balanza.yaml"))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	catalog, err := accounts.Load(absDir)
	if err != nil {
		return nil, fmt.Errorf("loading accounts: %w", err)
	}

	return &env{
		dataRoot:  absDir,
		cfg:       cfg,
		catalog:   catalog,
		validator: flow.NewValidator(catalog, flow.DefaultRules(), cfg.Ledger.StrictRules),
	}, nil
}

// recordAudit commits the data directory when auto-commit is on and
// appends an audit log entry for the operation.
func (e *env) recordAudit(command, details, subjectID string) error {
	hash := ""
	if e.cfg.Git.AutoCommit && gitops.IsRepo(e.dataRoot) {
		changed, err := gitops.HasChanges(e.dataRoot)
		if err != nil {
			return err
		}
		if changed {
			hash, err = gitops.CommitAll(e.dataRoot, command+": "+subjectID, e.cfg.Git.AuthorName, e.cfg.Git.AuthorEmail)
			if err != nil {
				return fmt.Errorf("auto-commit: %w", err)
			}
		}
	}

	return auditlog.Append(e.dataRoot, []auditlog.Entry{{
		Timestamp:  time.Now(),
		Command:    command,
		Details:    details,
		SubjectID:  subjectID,
		CommitHash: hash,
	}})
}

// parseDate parses a --date flag value, defaulting to today when empty.
func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Now(), nil
	}
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", value, err)
	}
	return date, nil
}
