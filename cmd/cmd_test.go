package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/theirongolddev/fintrack/internal/config"
	"github.com/theirongolddev/fintrack/internal/ledger"
	"github.com/theirongolddev/fintrack/internal/model"
	"github.com/theirongolddev/fintrack/internal/store"
)

func TestShortID(t *testing.T) {
	if got := shortID("0190f6c2-7a1b-7c3d-9e8f-0123456789ab"); got != "456789ab" {
		t.Errorf("shortID = %q, want 456789ab", got)
	}
	if got := shortID("abc"); got != "abc" {
		t.Errorf("shortID(abc) = %q", got)
	}
}

func TestResolveID(t *testing.T) {
	txs := []model.Transaction{
		{ID: "0190f6c2-7a1b-7c3d-9e8f-0123456789ab"},
		{ID: "0190f6c2-7a1b-7c3d-9e8f-ffffffff0000"},
		{ID: "short"},
	}

	tests := []struct {
		ref     string
		want    string
		wantErr error
	}{
		{"short", "short", nil},
		{"456789ab", txs[0].ID, nil},
		{"ffff0000", txs[1].ID, nil},
		{"0190f6c2", "", errAmbiguousID},
		{"nope", "", ledger.ErrNotFound},
		{"  ", "", ledger.ErrNotFound},
	}
	for _, tt := range tests {
		got, err := resolveID(txs, tt.ref)
		if tt.wantErr != nil {
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("resolveID(%q) error = %v, want %v", tt.ref, err, tt.wantErr)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("resolveID(%q) = %q, %v, want %q", tt.ref, got, err, tt.want)
		}
	}
}

func run(t *testing.T, args ...string) {
	t.Helper()
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("fintrack %s: %v", strings.Join(args, " "), err)
	}
}

func readBack(t *testing.T, dataDir string) []model.Transaction {
	t.Helper()
	db, err := store.Open(filepath.Join(dataDir, config.DBFile))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	txs, err := ledger.New(db, ledger.Options{}).List()
	if err != nil {
		t.Fatal(err)
	}
	return txs
}

func TestCommandsEndToEnd(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "config"))
	t.Setenv(config.EnvDataDir, "")
	t.Setenv(config.EnvCurrency, "$")
	dataDir := filepath.Join(tmp, "data")

	run(t, "-d", dataDir, "-q", "add", "-t", "income", "-c", "💰 Salary", "-a", "5000", "--date", "2024-03-01")
	run(t, "-d", dataDir, "-q", "add", "-t", "expense", "-c", "🛒 Groceries", "-a", "80.25", "--date", "2024-03-02", "-m", "weekly")

	txs := readBack(t, dataDir)
	if len(txs) != 2 {
		t.Fatalf("stored %d transactions, want 2", len(txs))
	}

	run(t, "-d", dataDir, "-q", "edit", shortID(txs[1].ID), "--json", `{"amount":"90"}`)
	txs = readBack(t, dataDir)
	if txs[1].Amount.String() != "90" {
		t.Errorf("amount after edit = %s, want 90", txs[1].Amount)
	}

	run(t, "-d", dataDir, "-q", "summary")
	run(t, "-d", dataDir, "-q", "list", "--month", "2024-03")
	run(t, "-d", dataDir, "-q", "monthly", "-n", "3")
	run(t, "-d", dataDir, "-q", "categories")
	run(t, "-d", dataDir, "-q", "settings", "budget", "1000")

	out := filepath.Join(tmp, "export.csv")
	run(t, "-d", dataDir, "-q", "export", "-o", out)
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "Date,Type,Category,Amount,Description\n") {
		t.Errorf("export header = %q", strings.SplitN(string(data), "\n", 2)[0])
	}

	run(t, "-d", dataDir, "-q", "clear", "--yes")
	if got := readBack(t, dataDir); len(got) != 0 {
		t.Fatalf("stored %d transactions after clear, want 0", len(got))
	}

	run(t, "-d", dataDir, "-q", "import", out)
	got := readBack(t, dataDir)
	if len(got) != 2 {
		t.Fatalf("stored %d transactions after import, want 2", len(got))
	}
	if got[1].Description != "weekly" || got[1].Amount.String() != "90" {
		t.Errorf("imported row = %+v", got[1])
	}

	run(t, "-d", dataDir, "-q", "delete", "--yes", shortID(got[0].ID))
	if left := readBack(t, dataDir); len(left) != 1 {
		t.Errorf("stored %d transactions after delete, want 1", len(left))
	}
}
