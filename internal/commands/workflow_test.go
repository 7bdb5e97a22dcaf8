package commands_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balanza-dev/balanza/internal/auditlog"
)

// initDir initializes a fresh data directory for workflow tests.
func initDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	out, err := runBalanza(t, "init", dir, "--name", "Acme")
	require.NoError(t, err, out)
	return dir
}

func TestAdd_RecordsMovement(t *testing.T) {
	dir := initDir(t)

	out, err := runBalanza(t, "add", "--data", dir,
		"--date", "2025-03-05", "--type", "income",
		"--from", "ordinary-income", "--to", "bank",
		"--amount", "1250.00", "--desc", "march invoice")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Recorded movement 2025-03-001")

	data, err := os.ReadFile(filepath.Join(dir, "2025", "03", "movements.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "2025-03-001")
	assert.Contains(t, string(data), "march invoice")
}

func TestAdd_RejectsDisallowedFlow(t *testing.T) {
	dir := initDir(t)

	out, err := runBalanza(t, "add", "--data", dir,
		"--date", "2025-03-05", "--type", "expense",
		"--from", "food", "--to", "bank",
		"--amount", "25.00")
	require.Error(t, err)
	assert.Contains(t, out, "flow-not-allowed")

	_, err = os.Stat(filepath.Join(dir, "2025", "03", "movements.csv"))
	assert.True(t, os.IsNotExist(err), "rejected movement must not be written")
}

func TestAdd_AppendsAuditLog(t *testing.T) {
	dir := initDir(t)

	out, err := runBalanza(t, "add", "--data", dir,
		"--date", "2025-03-05", "--type", "income",
		"--from", "ordinary-income", "--to", "bank",
		"--amount", "100.00")
	require.NoError(t, err, out)

	entries, err := auditlog.Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "add", entries[0].Command)
	assert.Equal(t, "2025-03-001", entries[0].SubjectID)
	assert.NotEmpty(t, entries[0].CommitHash, "auto-commit records a hash")
}

func TestSummary_EndToEnd(t *testing.T) {
	dir := initDir(t)

	out, err := runBalanza(t, "add", "--data", dir,
		"--date", "2025-03-05", "--type", "income",
		"--from", "ordinary-income", "--to", "bank",
		"--amount", "1250.00")
	require.NoError(t, err, out)

	out, err = runBalanza(t, "add", "--data", dir,
		"--date", "2025-03-09", "--type", "expense",
		"--from", "bank", "--to", "food",
		"--amount", "80.50")
	require.NoError(t, err, out)

	out, err = runBalanza(t, "summary", "--data", dir)
	require.NoError(t, err, out)

	assert.Contains(t, out, "Bank")
	assert.Contains(t, out, "1169.50")
	assert.Contains(t, out, "80.50")
	assert.Contains(t, out, "debits 1250.00, credits 1250.00", "debit and credit totals stay balanced")
	assert.NotContains(t, out, "Product investments", "hidden accounts stay out without --all")

	out, err = runBalanza(t, "summary", "--data", dir, "--all")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Product investments")
}

func TestPurchaseRecognize_EndToEnd(t *testing.T) {
	dir := initDir(t)

	out, err := runBalanza(t, "purchase", "add", "--data", dir,
		"--date", "2025-03-01", "--desc", "resale lot",
		"--capital", "200", "--sale-price", "260")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Recorded purchase P-001")

	out, err = runBalanza(t, "purchase", "recognize", "P-001", "--data", dir, "--date", "2025-03-20")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Recognized profit 60.00")

	// Second recognition of the same purchase is rejected.
	out, err = runBalanza(t, "purchase", "recognize", "P-001", "--data", dir)
	require.Error(t, err)
	assert.Contains(t, out, "already recognized")

	out, err = runBalanza(t, "summary", "--data", dir)
	require.NoError(t, err, out)
	assert.Contains(t, out, "Recognized investment profit: 60.00")
}

func TestCreditPay_EndToEnd(t *testing.T) {
	dir := initDir(t)

	out, err := runBalanza(t, "credit", "add", "--data", dir,
		"--date", "2025-03-01", "--borrower", "ana",
		"--principal", "300", "--interest", "30")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Recorded credit C-001")

	out, err = runBalanza(t, "credit", "pay", "C-001", "--data", dir, "--amount", "330")
	require.NoError(t, err, out)
	assert.Contains(t, out, "remaining 0.00")
	assert.Contains(t, out, "completed")

	out, err = runBalanza(t, "credit", "list", "--data", dir)
	require.NoError(t, err, out)
	assert.Contains(t, out, "ana")
}

func TestImport_EndToEnd(t *testing.T) {
	dir := initDir(t)

	csv := "date,description,amount\n2025-01-03,ACME PAYROLL,2500.00\n2025-01-05,Coffee,-4.75\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "import", "jan.csv"), []byte(csv), 0o644))

	out, err := runBalanza(t, "import", "--data", dir)
	require.NoError(t, err, out)
	assert.Contains(t, out, "Imported 2 movements from 1 files")

	_, err = os.Stat(filepath.Join(dir, "import", "processed", "jan.csv"))
	require.NoError(t, err, "imported file moves to processed/")

	data, err := os.ReadFile(filepath.Join(dir, "2025", "01", "movements.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "2025-01-001")
	assert.Contains(t, string(data), "2025-01-002")

	// Account-less imports land on the default pairs and get flagged.
	out, err = runBalanza(t, "summary", "--data", dir)
	require.NoError(t, err, out)
	assert.Contains(t, out, "Warnings:")
}

func TestAccounts_List(t *testing.T) {
	dir := initDir(t)

	out, err := runBalanza(t, "accounts", "--data", dir)
	require.NoError(t, err, out)
	assert.Contains(t, out, "bank")
	assert.NotContains(t, out, "product-investments")

	out, err = runBalanza(t, "accounts", "--data", dir, "--type", "income", "--direction", "to")
	require.NoError(t, err, out)
	assert.Contains(t, out, "bank")
	assert.NotContains(t, out, "food")
}
