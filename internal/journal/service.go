package journal

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/balanza-dev/balanza/internal/flow"
	"github.com/balanza-dev/balanza/internal/id"
	"github.com/balanza-dev/balanza/internal/model"
)

// Service provides business logic for the movement journal. Movements are
// stored per month under <dataRoot>/<year>/<month>/movements.csv.
type Service struct {
	dataRoot  string
	validator *flow.Validator
}

// NewService creates a journal Service.
func NewService(dataRoot string, validator *flow.Validator) *Service {
	return &Service{dataRoot: dataRoot, validator: validator}
}

// AddParams holds parameters for recording a user movement.
type AddParams struct {
	Date        time.Time
	Type        model.MovementType
	Description string
	FromAccount string
	ToAccount   string
	Amount      decimal.Decimal
	Reference   string
	Notes       string
}

// Add validates a movement against the flow rules and appends it to the
// month's movements.csv. Returns the assigned movement ID.
func (s *Service) Add(params AddParams) (string, error) {
	if verr := s.validator.Validate(params.Type, params.FromAccount, params.ToAccount, params.Amount); verr != nil {
		return "", verr
	}

	return s.Record(model.Movement{
		Date:        params.Date,
		Type:        params.Type,
		Description: params.Description,
		FromAccount: params.FromAccount,
		ToAccount:   params.ToAccount,
		Amount:      params.Amount,
		Reference:   params.Reference,
		Notes:       params.Notes,
	})
}

// Record assigns the next sequential ID for the movement's month and
// appends it without flow validation. Imported movements take this path:
// they carry no accounts and resolve through the ledger's default pairs.
func (s *Service) Record(m model.Movement) (string, error) {
	year := m.Date.Year()
	month := int(m.Date.Month())

	seq, err := s.NextSeq(year, month)
	if err != nil {
		return "", err
	}
	m.ID = id.FormatMovementID(year, month, seq)

	path := s.monthPath(year, month)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("creating journal dir: %w", err)
	}

	isNew := false
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		isNew = true
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return "", fmt.Errorf("opening journal: %w", err)
	}
	defer f.Close()

	if isNew {
		if _, err := fmt.Fprintln(f, Header); err != nil {
			return "", fmt.Errorf("writing header: %w", err)
		}
	}

	if err := AppendMovements(f, []model.Movement{m}); err != nil {
		return "", fmt.Errorf("appending movement: %w", err)
	}

	return m.ID, nil
}

// ReadMonth reads all movements for a given year/month.
func (s *Service) ReadMonth(year, month int) ([]model.Movement, error) {
	path := s.monthPath(year, month)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening journal %s: %w", path, err)
	}
	defer f.Close()

	movements, err := ReadMovements(f)
	if err != nil {
		return nil, fmt.Errorf("reading journal %s: %w", path, err)
	}
	return movements, nil
}

// ReadAll reads every movement in the data directory, ordered by
// year, month, then file order within the month.
func (s *Service) ReadAll() ([]model.Movement, error) {
	entries, err := os.ReadDir(s.dataRoot)
	if err != nil {
		return nil, fmt.Errorf("reading data dir: %w", err)
	}

	var years []int
	for _, e := range entries {
		if !e.IsDir() || len(e.Name()) != 4 {
			continue
		}
		year, err := strconv.Atoi(e.Name())
		if err != nil {
			continue
		}
		years = append(years, year)
	}
	sort.Ints(years)

	var all []model.Movement
	for _, year := range years {
		for month := 1; month <= 12; month++ {
			movements, err := s.ReadMonth(year, month)
			if err != nil {
				return nil, err
			}
			all = append(all, movements...)
		}
	}
	return all, nil
}

// NextSeq returns the next available sequence number for a month.
func (s *Service) NextSeq(year, month int) (int, error) {
	movements, err := s.ReadMonth(year, month)
	if err != nil {
		return 0, err
	}

	maxSeq := 0
	for _, m := range movements {
		_, _, seq, err := id.ParseMovementID(m.ID)
		if err != nil {
			continue
		}
		if seq > maxSeq {
			maxSeq = seq
		}
	}
	return maxSeq + 1, nil
}

func (s *Service) monthPath(year, month int) string {
	return filepath.Join(s.dataRoot, fmt.Sprintf("%04d", year), fmt.Sprintf("%02d", month), "movements.csv")
}
