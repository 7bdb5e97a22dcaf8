package invest

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"github.com/balanza-dev/balanza/internal/id"
	"github.com/balanza-dev/balanza/internal/model"
)

const (
	investDir     = "invest"
	purchasesFile = "purchases.csv"
	creditsFile   = "credits.csv"
)

// ErrCreditNotFound is returned when a payment targets an unknown credit.
var ErrCreditNotFound = errors.New("credit not found")

// Service manages the purchase and credit registries of a data directory.
type Service struct {
	dataRoot string
}

// NewService creates an invest Service rooted at dataRoot.
func NewService(dataRoot string) *Service {
	return &Service{dataRoot: dataRoot}
}

// Purchases returns all recorded purchases.
func (s *Service) Purchases() ([]model.Purchase, error) {
	return readPurchasesFile(filepath.Join(s.dataRoot, investDir, purchasesFile))
}

// Credits returns all recorded credits.
func (s *Service) Credits() ([]model.Credit, error) {
	return readCreditsFile(filepath.Join(s.dataRoot, investDir, creditsFile))
}

// AddPurchase records a purchase and returns its assigned ID.
func (s *Service) AddPurchase(p model.Purchase) (string, error) {
	purchases, err := s.Purchases()
	if err != nil {
		return "", err
	}

	p.ID = id.FormatSeqID("P", nextSeq(purchaseIDs(purchases)))
	purchases = append(purchases, p)

	if err := s.savePurchases(purchases); err != nil {
		return "", err
	}
	return p.ID, nil
}

// AddCredit records a credit and returns its assigned ID. New credits
// start active with nothing paid.
func (s *Service) AddCredit(c model.Credit) (string, error) {
	credits, err := s.Credits()
	if err != nil {
		return "", err
	}

	c.ID = id.FormatSeqID("C", nextSeq(creditIDs(credits)))
	c.TotalPaid = decimal.Zero
	c.Status = model.CreditActive
	credits = append(credits, c)

	if err := s.saveCredits(credits); err != nil {
		return "", err
	}
	return c.ID, nil
}

// RecordPayment adds a payment to a credit's paid total and marks the
// credit completed once principal plus interest is covered. Returns the
// updated credit.
func (s *Service) RecordPayment(creditID string, amount decimal.Decimal) (model.Credit, error) {
	if amount.Sign() <= 0 {
		return model.Credit{}, fmt.Errorf("payment amount must be greater than zero")
	}

	credits, err := s.Credits()
	if err != nil {
		return model.Credit{}, err
	}

	for i, c := range credits {
		if c.ID != creditID {
			continue
		}

		c.TotalPaid = c.TotalPaid.Add(amount)
		if c.TotalPaid.GreaterThanOrEqual(c.TotalDue()) {
			c.Status = model.CreditCompleted
		} else {
			c.Status = model.CreditActive
		}
		credits[i] = c

		if err := s.saveCredits(credits); err != nil {
			return model.Credit{}, err
		}
		return c, nil
	}

	return model.Credit{}, fmt.Errorf("%w: %s", ErrCreditNotFound, creditID)
}

// MarkProfitRecognized links a purchase to the movement that booked its
// realized profit, making the profit count toward the investment total.
func (s *Service) MarkProfitRecognized(purchaseID, movementID string) error {
	purchases, err := s.Purchases()
	if err != nil {
		return err
	}

	for i, p := range purchases {
		if p.ID != purchaseID {
			continue
		}
		purchases[i].ProfitMovementID = movementID
		return s.savePurchases(purchases)
	}
	return fmt.Errorf("purchase not found: %s", purchaseID)
}

func (s *Service) savePurchases(purchases []model.Purchase) error {
	return writeFile(filepath.Join(s.dataRoot, investDir, purchasesFile), func(f *os.File) error {
		return WritePurchases(f, purchases)
	})
}

func (s *Service) saveCredits(credits []model.Credit) error {
	return writeFile(filepath.Join(s.dataRoot, investDir, creditsFile), func(f *os.File) error {
		return WriteCredits(f, credits)
	})
}

func writeFile(path string, write func(*os.File) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating invest dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	return write(f)
}

func readPurchasesFile(path string) ([]model.Purchase, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	return ReadPurchases(f)
}

func readCreditsFile(path string) ([]model.Credit, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	return ReadCredits(f)
}

func purchaseIDs(purchases []model.Purchase) []string {
	ids := make([]string, len(purchases))
	for i, p := range purchases {
		ids[i] = p.ID
	}
	return ids
}

func creditIDs(credits []model.Credit) []string {
	ids := make([]string, len(credits))
	for i, c := range credits {
		ids[i] = c.ID
	}
	return ids
}

func nextSeq(ids []string) int {
	maxSeq := 0
	for _, s := range ids {
		seq, err := id.ParseSeqID(s)
		if err != nil {
			continue
		}
		if seq > maxSeq {
			maxSeq = seq
		}
	}
	return maxSeq + 1
}
