package commands_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	accountsCSV "github.com/balanza-dev/balanza/internal/accounts"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build the binary once for all tests.
	tmpDir, err := os.MkdirTemp("", "balanza-test-*")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(tmpDir)

	binaryPath = filepath.Join(tmpDir, "balanza")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/balanza")
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		panic("failed to build binary: " + err.Error())
	}

	os.Exit(m.Run())
}

func runBalanza(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

func TestInit_CreatesStructure(t *testing.T) {
	dir := t.TempDir()
	_, err := runBalanza(t, "init", dir, "--name", "Acme")
	require.NoError(t, err)

	expectedDirs := []string{
		"accounts",
		"invest",
		"logs",
		"import",
		filepath.Join("import", "processed"),
	}
	for _, d := range expectedDirs {
		info, err := os.Stat(filepath.Join(dir, d))
		require.NoError(t, err, "directory %s should exist", d)
		assert.True(t, info.IsDir(), "%s should be a directory", d)
	}
}

func TestInit_Config(t *testing.T) {
	dir := t.TempDir()
	_, err := runBalanza(t, "init", dir, "--name", "Acme Consulting", "--currency", "EUR")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "balanza.yaml"))
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "name: Acme Consulting")
	assert.Contains(t, contents, "currency: EUR")
	assert.Contains(t, contents, "auto_commit: true")
}

func TestInit_Accounts(t *testing.T) {
	dir := t.TempDir()
	_, err := runBalanza(t, "init", dir, "--name", "Acme")
	require.NoError(t, err)

	f, err := os.Open(filepath.Join(dir, "accounts", "chart-of-accounts.csv"))
	require.NoError(t, err)
	defer f.Close()

	accts, err := accountsCSV.ReadAccounts(f)
	require.NoError(t, err)
	assert.Len(t, accts, 15, "default chart has 15 accounts")
}

func TestInit_GitRepo(t *testing.T) {
	dir := t.TempDir()
	_, err := runBalanza(t, "init", dir, "--name", "Acme")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, ".git"))
	require.NoError(t, err, ".git should exist")

	log := exec.Command("git", "log", "--format=%s|%an <%ae>", "-1")
	log.Dir = dir
	out, err := log.Output()
	require.NoError(t, err)
	assert.Contains(t, string(out), "init: Initialize Acme")
	assert.Contains(t, string(out), "Balanza CLI <cli@balanza.dev>")
}

func TestInit_Gitignore(t *testing.T) {
	dir := t.TempDir()
	_, err := runBalanza(t, "init", dir, "--name", "Acme")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
	require.NoError(t, err)

	for _, pattern := range []string{"exports/", ".balanza-cache/"} {
		assert.Contains(t, string(data), pattern)
	}
}

func TestInit_RequiresName(t *testing.T) {
	dir := t.TempDir()
	_, err := runBalanza(t, "init", dir)
	require.Error(t, err, "init without --name should fail")
}
